package api

import (
	"github.com/google/uuid"
	"go.openly.dev/pointy"

	"droscher.com/Umami/pkg/model"
)

// Favorites reports membership for the is_favorite flag. A nil Favorites marks nothing.
type Favorites func(id uuid.UUID) bool

func SakesFromModel(sakes []model.Sake, language model.Language, favorites Favorites) []Sake {
	apiSakes := make([]Sake, 0, len(sakes))

	for _, sake := range sakes {
		apiSakes = append(apiSakes, SakeFromModel(sake, language, favorites))
	}

	return apiSakes
}

func SakeFromModel(sake model.Sake, language model.Language, favorites Favorites) Sake {
	apiSake := Sake{
		ID:                  sake.ID.String(),
		NameJapanese:        sake.NameJapanese,
		NameEnglish:         sake.NameEnglish,
		DisplayName:         sake.DisplayName(),
		LocalizedName:       sake.LocalizedName(language),
		BreweryName:         sake.BreweryName,
		Prefecture:          sake.Prefecture,
		LocalizedPrefecture: sake.LocalizedPrefecture(language),
		Classification:      string(sake.Classification),
		ClassificationCode:  sake.Classification.Code(),
		ClassificationLabel: sake.Classification.Label(language),
		RiceVariety:         sake.RiceVariety,
		PolishRatio:         sake.PolishRatio,
		AlcoholContent:      sake.AlcoholContent,
		FlavorProfile: FlavorProfile{
			Sweetness:            sake.FlavorProfile.Sweetness,
			Acidity:              sake.FlavorProfile.Acidity,
			Body:                 sake.FlavorProfile.Body,
			Umami:                sake.FlavorProfile.Umami,
			AromaIntensity:       sake.FlavorProfile.AromaIntensity,
			SweetnessDescription: sake.FlavorProfile.SweetnessDescription(),
		},
		ImageURL:           sake.ImageURL,
		Price:              sake.Price,
		FormattedPrice:     sake.FormattedPrice(),
		PriceCategory:      sake.PriceCategory(),
		Rating:             sake.Rating,
		ReviewCount:        sake.ReviewCount,
		Description:        sake.Description,
		ServingTemperature: sake.ServingTemperature,
		Availability:       string(sake.Availability),
		AvailabilityCode:   sake.Availability.Code(),
	}

	if sake.HasBrewery() {
		apiSake.BreweryID = pointy.String(sake.BreweryID.String())
	}

	if favorites != nil {
		apiSake.IsFavorite = favorites(sake.ID)
	}

	return apiSake
}

func BreweriesFromModel(breweries []model.Brewery) []Brewery {
	apiBreweries := make([]Brewery, 0, len(breweries))

	for _, brewery := range breweries {
		apiBreweries = append(apiBreweries, BreweryFromModel(brewery))
	}

	return apiBreweries
}

func BreweryFromModel(brewery model.Brewery) Brewery {
	return Brewery{
		ID:                   brewery.ID.String(),
		NameJapanese:         brewery.NameJapanese,
		NameEnglish:          brewery.NameEnglish,
		DisplayName:          brewery.DisplayName(),
		Prefecture:           brewery.Prefecture,
		Region:               brewery.Region,
		Established:          brewery.Established,
		FormattedEstablished: brewery.FormattedEstablished(),
		Description:          brewery.Description,
		ImageURL:             brewery.ImageURL,
		HeroImageURL:         brewery.HeroImageURL,
		SakeCount:            brewery.SakeCount,
		TotalRatings:         brewery.TotalRatings,
		Website:              brewery.Website,
		Email:                brewery.Email,
		Phone:                brewery.Phone,
	}
}

func FoodPairingsFromModel(pairings []model.FoodPairing) []FoodPairing {
	apiPairings := make([]FoodPairing, 0, len(pairings))

	for _, pairing := range pairings {
		recommended := make([]string, 0, len(pairing.RecommendedSakeIDs))
		for _, id := range pairing.RecommendedSakeIDs {
			recommended = append(recommended, id.String())
		}

		apiPairings = append(apiPairings, FoodPairing{
			ID:                 pairing.ID.String(),
			DishName:           pairing.DishName,
			DishNameJapanese:   pairing.DishNameJapanese,
			DisplayName:        pairing.DisplayName(),
			Category:           string(pairing.Category),
			CategoryIcon:       pairing.Category.Icon(),
			ImageURL:           pairing.ImageURL,
			RecommendedSakeIDs: recommended,
			Description:        pairing.Description,
		})
	}

	return apiPairings
}

func PaginationFromModel(pagination *model.Pagination) *Pagination {
	if pagination == nil {
		return nil
	}

	return &Pagination{Total: pagination.Total, Limit: pagination.Limit, Offset: pagination.Offset}
}

func StatsFromModel(stats model.Stats) Stats {
	return Stats{Sake: stats.Sake, Breweries: stats.Breweries, Reviews: stats.Reviews}
}

func IDsFromModel(ids []uuid.UUID) []string {
	idStrings := make([]string, 0, len(ids))

	for _, id := range ids {
		idStrings = append(idStrings, id.String())
	}

	return idStrings
}
