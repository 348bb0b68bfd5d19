package server

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.openly.dev/pointy"
	"go.uber.org/multierr"

	"droscher.com/Umami/pkg/query"
)

func idParam(r *http.Request) (uuid.UUID, error) {
	raw := strings.TrimSpace(chi.URLParam(r, "id"))

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: invalid id %q", ErrInvalidInput, raw)
	}

	return id, nil
}

// listParams maps request parameters onto catalog list parameters. A sort preset is
// applied before explicit sortBy/sortOrder so the explicit values win.
func listParams(values url.Values) (query.ListParams, error) {
	var errs error

	params := query.DefaultListParams()
	params.Classification = optionalString(values, "classification")
	params.Prefecture = optionalString(values, "prefecture")
	params.Search = optionalString(values, "search")
	params.MinPrice = optionalFloat(values, "minPrice", &errs)
	params.MaxPrice = optionalFloat(values, "maxPrice", &errs)
	params.MinRating = optionalFloat(values, "minRating", &errs)

	if preset := values.Get("sort"); len(preset) > 0 {
		option, found := query.ParseSortOption(preset)
		if !found {
			multierr.AppendInto(&errs, fmt.Errorf("%w: unknown sort %q", ErrInvalidInput, preset))
		}

		option.Apply(&params)
	}

	if sortBy := values.Get("sortBy"); len(sortBy) > 0 {
		params.SortBy = sortBy
	}

	if sortOrder := values.Get("sortOrder"); len(sortOrder) > 0 {
		params.SortOrder = sortOrder
	}

	params.Limit = intParam(values, "limit", query.DefaultLimit, &errs)
	params.Offset = intParam(values, "offset", query.DefaultOffset, &errs)

	return params, errs
}

func optionalString(values url.Values, name string) *string {
	value := values.Get(name)
	if len(value) == 0 {
		return nil
	}

	return pointy.String(value)
}

func optionalFloat(values url.Values, name string, errs *error) *float64 {
	raw := values.Get(name)
	if len(raw) == 0 {
		return nil
	}

	parsed, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		multierr.AppendInto(errs, fmt.Errorf("%w: %s must be a number", ErrInvalidInput, name))

		return nil
	}

	return pointy.Float64(parsed)
}

func intParam(values url.Values, name string, fallback int, errs *error) int {
	raw := values.Get(name)
	if len(raw) == 0 {
		return fallback
	}

	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed < 0 {
		multierr.AppendInto(errs, fmt.Errorf("%w: %s must be a non-negative integer", ErrInvalidInput, name))

		return fallback
	}

	return parsed
}
