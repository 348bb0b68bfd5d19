package model

import "strings"

type Pagination struct {
	Total  *int
	Limit  int
	Offset int
}

type SakePage struct {
	Sakes      []Sake
	Pagination *Pagination
}

type BreweryPage struct {
	Breweries  []Brewery
	Pagination *Pagination
}

type Stats struct {
	Sake      int
	Breweries int
	Reviews   int
}

func preferNonEmpty(primary string, fallback string) string {
	if len(primary) > 0 {
		return primary
	}

	return fallback
}

func toCode(label string) string {
	return strings.ReplaceAll(strings.ToLower(label), " ", "_")
}
