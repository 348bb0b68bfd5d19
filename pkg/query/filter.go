package query

import (
	"go.openly.dev/pointy"

	"droscher.com/Umami/pkg/model"
)

const (
	DefaultMinimumPrice = 0.0
	DefaultMaximumPrice = 1000.0
)

type PriceRange struct {
	Min float64
	Max float64
}

// Contains treats a bound still at its default as open, so an untouched range excludes nothing.
func (r PriceRange) Contains(price float64) bool {
	if r.Min != DefaultMinimumPrice && price < r.Min {
		return false
	}

	return r.Max == DefaultMaximumPrice || price <= r.Max
}

// FilterOptions is the state of one browse session's filter sheet. It is never persisted.
type FilterOptions struct {
	Classifications map[model.Classification]struct{}
	Prefectures     map[string]struct{}
	RiceVarieties   map[string]struct{}
	MinRating       float64
	PriceRange      PriceRange
	OnlyOffers      bool
}

func NewFilterOptions() FilterOptions {
	return FilterOptions{
		Classifications: map[model.Classification]struct{}{},
		Prefectures:     map[string]struct{}{},
		RiceVarieties:   map[string]struct{}{},
		PriceRange:      PriceRange{Min: DefaultMinimumPrice, Max: DefaultMaximumPrice},
	}
}

func (f *FilterOptions) ToggleClassification(classification model.Classification) {
	toggle(&f.Classifications, classification)
}

func (f *FilterOptions) TogglePrefecture(prefecture string) {
	toggle(&f.Prefectures, prefecture)
}

func (f *FilterOptions) ToggleRiceVariety(variety string) {
	toggle(&f.RiceVarieties, variety)
}

func (f FilterOptions) IsDefault() bool {
	return len(f.Classifications) == 0 &&
		len(f.Prefectures) == 0 &&
		len(f.RiceVarieties) == 0 &&
		f.MinRating == 0 &&
		f.PriceRange == PriceRange{Min: DefaultMinimumPrice, Max: DefaultMaximumPrice} &&
		!f.OnlyOffers
}

// ListParams narrows base with what the remote catalog can filter on. Sets only map to a
// server-side parameter when exactly one member is selected; Apply handles the rest locally.
func (f FilterOptions) ListParams(base ListParams) ListParams {
	params := base

	if classification, single := only(f.Classifications); single {
		params.Classification = pointy.String(string(classification))
	}

	if prefecture, single := only(f.Prefectures); single {
		params.Prefecture = pointy.String(prefecture)
	}

	if f.MinRating > 0 {
		params.MinRating = pointy.Float64(f.MinRating)
	}

	if f.PriceRange.Min != DefaultMinimumPrice {
		params.MinPrice = pointy.Float64(f.PriceRange.Min)
	}

	if f.PriceRange.Max != DefaultMaximumPrice {
		params.MaxPrice = pointy.Float64(f.PriceRange.Max)
	}

	return params
}

// Matches reports whether a sake passes every selected filter. OnlyOffers has no
// counterpart in the catalog data and is not evaluated.
func (f FilterOptions) Matches(sake model.Sake) bool {
	if !contains(f.Classifications, sake.Classification) {
		return false
	}

	if !contains(f.Prefectures, sake.Prefecture) {
		return false
	}

	if !contains(f.RiceVarieties, sake.RiceVariety) {
		return false
	}

	return sake.Rating >= f.MinRating && f.PriceRange.Contains(sake.Price)
}

func (f FilterOptions) Apply(sakes []model.Sake) []model.Sake {
	filtered := make([]model.Sake, 0, len(sakes))

	for _, sake := range sakes {
		if f.Matches(sake) {
			filtered = append(filtered, sake)
		}
	}

	return filtered
}

func toggle[K comparable](set *map[K]struct{}, key K) {
	if *set == nil {
		*set = map[K]struct{}{}
	}

	if _, found := (*set)[key]; found {
		delete(*set, key)
	} else {
		(*set)[key] = struct{}{}
	}
}

// contains treats an empty set as "no filter".
func contains[K comparable](set map[K]struct{}, key K) bool {
	if len(set) == 0 {
		return true
	}

	_, found := set[key]

	return found
}

func only[K comparable](set map[K]struct{}) (K, bool) {
	var zero K

	if len(set) != 1 {
		return zero, false
	}

	for key := range set {
		return key, true
	}

	return zero, false
}
