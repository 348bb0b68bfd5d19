package query

type SortOption string

const (
	HighestRated   SortOption = "highest_rated"
	MostReviewed   SortOption = "most_reviewed"
	PriceLowToHigh SortOption = "price_low_to_high"
	PriceHighToLow SortOption = "price_high_to_low"
	Alphabetical   SortOption = "alphabetical"
	Newest         SortOption = "newest"
)

type sortSpec struct {
	sortBy    string
	sortOrder string
}

var sortSpecs = map[SortOption]sortSpec{
	HighestRated:   {sortBy: "rating", sortOrder: SortDescending},
	MostReviewed:   {sortBy: "review_count", sortOrder: SortDescending},
	PriceLowToHigh: {sortBy: "price", sortOrder: SortAscending},
	PriceHighToLow: {sortBy: "price", sortOrder: SortDescending},
	Alphabetical:   {sortBy: "name_english", sortOrder: SortAscending},
	Newest:         {sortBy: "created_at", sortOrder: SortDescending},
}

func SortOptions() []SortOption {
	return []SortOption{HighestRated, MostReviewed, PriceLowToHigh, PriceHighToLow, Alphabetical, Newest}
}

func ParseSortOption(value string) (SortOption, bool) {
	option := SortOption(value)
	_, found := sortSpecs[option]

	return option, found
}

// Apply overwrites the sort key and direction; unknown options leave params untouched.
func (o SortOption) Apply(params *ListParams) {
	spec, found := sortSpecs[o]
	if !found {
		return
	}

	params.SortBy = spec.sortBy
	params.SortOrder = spec.sortOrder
}
