// Package query composes the requests sent to the remote sake catalog.
//
// Building a query never fails and never validates ranges; identical parameters always
// produce an identical, order-stable encoding.
package query

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

const (
	DefaultSortBy    = "rating"
	DefaultSortOrder = "desc"
	DefaultLimit     = 50
	DefaultOffset    = 0

	SortAscending  = "asc"
	SortDescending = "desc"
)

type Param struct {
	Name  string
	Value string
}

type Query struct {
	Path   string
	Params []Param
}

type ListParams struct {
	Classification *string
	Prefecture     *string
	MinPrice       *float64
	MaxPrice       *float64
	MinRating      *float64
	Search         *string
	SortBy         string
	SortOrder      string
	Limit          int
	Offset         int
}

func DefaultListParams() ListParams {
	return ListParams{
		SortBy:    DefaultSortBy,
		SortOrder: DefaultSortOrder,
		Limit:     DefaultLimit,
		Offset:    DefaultOffset,
	}
}

// ApplyDefaults fills unset sort and paging fields. A zero limit is treated as unset.
func (p *ListParams) ApplyDefaults() {
	if len(p.SortBy) == 0 {
		p.SortBy = DefaultSortBy
	}

	if len(p.SortOrder) == 0 {
		p.SortOrder = DefaultSortOrder
	}

	if p.Limit == 0 {
		p.Limit = DefaultLimit
	}
}

func BuildListQuery(params ListParams) Query {
	params.ApplyDefaults()

	query := Query{Path: "/sake"}
	query.addString("classification", params.Classification)
	query.addString("prefecture", params.Prefecture)
	query.addFloat("minPrice", params.MinPrice)
	query.addFloat("maxPrice", params.MaxPrice)
	query.addFloat("minRating", params.MinRating)
	query.addString("search", params.Search)
	query.add("sortBy", params.SortBy)
	query.add("sortOrder", params.SortOrder)
	query.add("limit", strconv.Itoa(params.Limit))
	query.add("offset", strconv.Itoa(params.Offset))

	return query
}

func BuildDetailQuery(id uuid.UUID) Query {
	return Query{Path: "/sake/" + id.String()}
}

func BuildBreweryListQuery(prefecture *string, limit int, offset int) Query {
	query := Query{Path: "/breweries"}
	query.addString("prefecture", prefecture)
	query.add("limit", strconv.Itoa(limit))
	query.add("offset", strconv.Itoa(offset))

	return query
}

func BuildBreweryQuery(id uuid.UUID) Query {
	return Query{Path: "/breweries/" + id.String()}
}

func BuildBrewerySakeQuery(breweryID uuid.UUID) Query {
	return Query{Path: "/breweries/" + breweryID.String() + "/sake"}
}

func BuildFoodPairingsQuery() Query {
	return Query{Path: "/food-pairings"}
}

func BuildStatsQuery() Query {
	return Query{Path: "/stats"}
}

func BuildClassificationsQuery() Query {
	return Query{Path: "/classifications"}
}

func BuildPrefecturesQuery() Query {
	return Query{Path: "/prefectures"}
}

// Encode renders the path and parameters in emission order.
func (q Query) Encode() string {
	if len(q.Params) == 0 {
		return q.Path
	}

	var builder strings.Builder

	builder.WriteString(q.Path)

	for index, param := range q.Params {
		if index == 0 {
			builder.WriteByte('?')
		} else {
			builder.WriteByte('&')
		}

		builder.WriteString(url.QueryEscape(param.Name))
		builder.WriteByte('=')
		builder.WriteString(url.QueryEscape(param.Value))
	}

	return builder.String()
}

func (q Query) URL(baseURL string) string {
	return strings.TrimSuffix(baseURL, "/") + q.Encode()
}

func (q Query) Values() url.Values {
	values := make(url.Values, len(q.Params))

	for _, param := range q.Params {
		values.Add(param.Name, param.Value)
	}

	return values
}

func (q Query) Get(name string) (string, bool) {
	for _, param := range q.Params {
		if param.Name == name {
			return param.Value, true
		}
	}

	return "", false
}

func (q *Query) add(name string, value string) {
	q.Params = append(q.Params, Param{Name: name, Value: value})
}

func (q *Query) addString(name string, value *string) {
	if value != nil {
		q.add(name, *value)
	}
}

func (q *Query) addFloat(name string, value *float64) {
	if value != nil {
		q.add(name, strconv.FormatFloat(*value, 'f', -1, 64))
	}
}
