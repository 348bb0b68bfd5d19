// Package api holds the JSON shapes served by the HTTP surface.
package api

type Envelope struct {
	Data       any         `json:"data"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

type Pagination struct {
	Total  *int `json:"total,omitempty"`
	Limit  int  `json:"limit"`
	Offset int  `json:"offset"`
}

type Error struct {
	Error string `json:"error"`
	Retry string `json:"retry,omitempty"`
}

type FlavorProfile struct {
	Sweetness            int    `json:"sweetness"`
	Acidity              int    `json:"acidity"`
	Body                 int    `json:"body"`
	Umami                int    `json:"umami"`
	AromaIntensity       int    `json:"aroma_intensity"`
	SweetnessDescription string `json:"sweetness_description"`
}

type Sake struct {
	ID                  string        `json:"id"`
	NameJapanese        string        `json:"name_japanese"`
	NameEnglish         string        `json:"name_english"`
	DisplayName         string        `json:"display_name"`
	LocalizedName       string        `json:"localized_name"`
	BreweryID           *string       `json:"brewery_id"`
	BreweryName         string        `json:"brewery_name"`
	Prefecture          string        `json:"prefecture"`
	LocalizedPrefecture string        `json:"localized_prefecture"`
	Classification      string        `json:"classification"`
	ClassificationCode  string        `json:"classification_code"`
	ClassificationLabel string        `json:"classification_label"`
	RiceVariety         string        `json:"rice_variety"`
	PolishRatio         int           `json:"polish_ratio"`
	AlcoholContent      float64       `json:"alcohol_content"`
	FlavorProfile       FlavorProfile `json:"flavor_profile"`
	ImageURL            string        `json:"image_url"`
	Price               float64       `json:"price"`
	FormattedPrice      string        `json:"formatted_price"`
	PriceCategory       string        `json:"price_category"`
	Rating              float64       `json:"rating"`
	ReviewCount         int           `json:"review_count"`
	Description         string        `json:"description"`
	ServingTemperature  []string      `json:"serving_temperature"`
	Availability        string        `json:"availability"`
	AvailabilityCode    string        `json:"availability_code"`
	IsFavorite          bool          `json:"is_favorite"`
}

type Brewery struct {
	ID                   string  `json:"id"`
	NameJapanese         string  `json:"name_japanese"`
	NameEnglish          string  `json:"name_english"`
	DisplayName          string  `json:"display_name"`
	Prefecture           string  `json:"prefecture"`
	Region               string  `json:"region"`
	Established          *int    `json:"established"`
	FormattedEstablished string  `json:"formatted_established"`
	Description          string  `json:"description"`
	ImageURL             string  `json:"image_url"`
	HeroImageURL         string  `json:"hero_image_url"`
	SakeCount            int     `json:"sake_count"`
	TotalRatings         int     `json:"total_ratings"`
	Website              *string `json:"website"`
	Email                *string `json:"email"`
	Phone                *string `json:"phone"`
}

type FoodPairing struct {
	ID                 string   `json:"id"`
	DishName           string   `json:"dish_name"`
	DishNameJapanese   *string  `json:"dish_name_japanese"`
	DisplayName        string   `json:"display_name"`
	Category           string   `json:"category"`
	CategoryIcon       string   `json:"category_icon"`
	ImageURL           string   `json:"image_url"`
	RecommendedSakeIDs []string `json:"recommended_sake_ids"`
	Description        string   `json:"description"`
}

type Stats struct {
	Sake      int `json:"sake"`
	Breweries int `json:"breweries"`
	Reviews   int `json:"reviews"`
}

type Favorite struct {
	ID         string `json:"id"`
	IsFavorite bool   `json:"is_favorite"`
}

type Language struct {
	Code        string `json:"code"`
	DisplayName string `json:"display_name"`
}
