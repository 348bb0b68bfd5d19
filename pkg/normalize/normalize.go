// Package normalize turns raw catalog records into canonical domain entities.
//
// Decoding is total: every field has a default, so a record with nothing but an empty
// object still produces a valid entity. Functions here are pure and safe for concurrent use.
package normalize

import (
	"strings"

	"github.com/google/uuid"

	"droscher.com/Umami/pkg/model"
)

const (
	BottleBucketBaseURL = "https://storage.googleapis.com/umami-sake-assets/bottles/"
	bottleImageSuffix   = "_bottle.png"

	DefaultRiceVariety    = "Unknown"
	DefaultPolishRatio    = 60
	DefaultAlcoholContent = 15.0
	DefaultFlavorAxis     = 3
)

// Rules run in order. image_url must stay after name_english because its fallback is derived from it.
var sakeRules = []rule[model.Sake]{
	uuidRule[model.Sake]{key: "id", fallback: uuid.Nil, assign: func(s *model.Sake, v uuid.UUID) { s.ID = v }},
	stringRule[model.Sake]{key: "name_japanese", assign: func(s *model.Sake, v string) { s.NameJapanese = v }},
	stringRule[model.Sake]{key: "name_english", assign: func(s *model.Sake, v string) { s.NameEnglish = v }},
	uuidRule[model.Sake]{key: "brewery_id", fallback: model.UnknownBreweryID, assign: func(s *model.Sake, v uuid.UUID) { s.BreweryID = v }},
	stringRule[model.Sake]{key: "brewery_name", assign: func(s *model.Sake, v string) { s.BreweryName = v }},
	stringRule[model.Sake]{key: "prefecture", assign: func(s *model.Sake, v string) { s.Prefecture = v }},
	enumRule[model.Sake, model.Classification]{
		key: "classification", parse: model.ParseClassification, fallback: model.Junmai,
		assign: func(s *model.Sake, v model.Classification) { s.Classification = v },
	},
	stringRule[model.Sake]{key: "rice_variety", fallback: DefaultRiceVariety, assign: func(s *model.Sake, v string) { s.RiceVariety = v }},
	intRule[model.Sake]{key: "polish_ratio", fallback: DefaultPolishRatio, assign: func(s *model.Sake, v int) { s.PolishRatio = v }},
	floatRule[model.Sake]{key: "alcohol_content", fallback: DefaultAlcoholContent, assign: func(s *model.Sake, v float64) { s.AlcoholContent = v }},
	intRule[model.Sake]{key: "sweetness", fallback: DefaultFlavorAxis, assign: func(s *model.Sake, v int) { s.FlavorProfile.Sweetness = v }},
	intRule[model.Sake]{key: "acidity", fallback: DefaultFlavorAxis, assign: func(s *model.Sake, v int) { s.FlavorProfile.Acidity = v }},
	intRule[model.Sake]{key: "body", fallback: DefaultFlavorAxis, assign: func(s *model.Sake, v int) { s.FlavorProfile.Body = v }},
	intRule[model.Sake]{key: "umami", fallback: DefaultFlavorAxis, assign: func(s *model.Sake, v int) { s.FlavorProfile.Umami = v }},
	intRule[model.Sake]{key: "aroma_intensity", fallback: DefaultFlavorAxis, assign: func(s *model.Sake, v int) { s.FlavorProfile.AromaIntensity = v }},
	floatRule[model.Sake]{key: "price", assign: func(s *model.Sake, v float64) { s.Price = v }},
	floatRule[model.Sake]{key: "rating", assign: func(s *model.Sake, v float64) { s.Rating = v }},
	intRule[model.Sake]{key: "review_count", assign: func(s *model.Sake, v int) { s.ReviewCount = v }},
	stringRule[model.Sake]{key: "description", assign: func(s *model.Sake, v string) { s.Description = v }},
	stringsRule[model.Sake]{key: "serving_temperature", assign: func(s *model.Sake, v []string) { s.ServingTemperature = v }},
	enumRule[model.Sake, model.Availability]{
		key: "availability", parse: model.ParseAvailability, fallback: model.InStock,
		assign: func(s *model.Sake, v model.Availability) { s.Availability = v },
	},
	nonEmptyStringRule[model.Sake]{
		key:      "image_url",
		fallback: func(s *model.Sake) string { return SakeImageURL(s.NameEnglish) },
		assign:   func(s *model.Sake, v string) { s.ImageURL = v },
	},
}

var breweryRules = []rule[model.Brewery]{
	uuidRule[model.Brewery]{key: "id", fallback: uuid.Nil, assign: func(b *model.Brewery, v uuid.UUID) { b.ID = v }},
	stringRule[model.Brewery]{key: "name_japanese", assign: func(b *model.Brewery, v string) { b.NameJapanese = v }},
	stringRule[model.Brewery]{key: "name_english", assign: func(b *model.Brewery, v string) { b.NameEnglish = v }},
	stringRule[model.Brewery]{key: "prefecture", assign: func(b *model.Brewery, v string) { b.Prefecture = v }},
	stringRule[model.Brewery]{key: "region", assign: func(b *model.Brewery, v string) { b.Region = v }},
	optionalIntRule[model.Brewery]{key: "established", assign: func(b *model.Brewery, v *int) { b.Established = v }},
	stringRule[model.Brewery]{key: "description", assign: func(b *model.Brewery, v string) { b.Description = v }},
	stringRule[model.Brewery]{key: "image_url", assign: func(b *model.Brewery, v string) { b.ImageURL = v }},
	stringRule[model.Brewery]{key: "hero_image_url", assign: func(b *model.Brewery, v string) { b.HeroImageURL = v }},
	intRule[model.Brewery]{key: "sake_count", assign: func(b *model.Brewery, v int) { b.SakeCount = v }},
	intRule[model.Brewery]{key: "total_ratings", assign: func(b *model.Brewery, v int) { b.TotalRatings = v }},
	optionalStringRule[model.Brewery]{key: "website", assign: func(b *model.Brewery, v *string) { b.Website = v }},
	optionalStringRule[model.Brewery]{key: "email", assign: func(b *model.Brewery, v *string) { b.Email = v }},
	optionalStringRule[model.Brewery]{key: "phone", assign: func(b *model.Brewery, v *string) { b.Phone = v }},
}

var foodPairingRules = []rule[model.FoodPairing]{
	uuidRule[model.FoodPairing]{key: "id", fallback: uuid.Nil, assign: func(f *model.FoodPairing, v uuid.UUID) { f.ID = v }},
	stringRule[model.FoodPairing]{key: "dish_name", assign: func(f *model.FoodPairing, v string) { f.DishName = v }},
	optionalStringRule[model.FoodPairing]{key: "dish_name_japanese", assign: func(f *model.FoodPairing, v *string) { f.DishNameJapanese = v }},
	enumRule[model.FoodPairing, model.FoodCategory]{
		key: "category", parse: model.ParseFoodCategory, fallback: model.Sushi,
		assign: func(f *model.FoodPairing, v model.FoodCategory) { f.Category = v },
	},
	stringRule[model.FoodPairing]{key: "image_url", assign: func(f *model.FoodPairing, v string) { f.ImageURL = v }},
	stringRule[model.FoodPairing]{key: "description", assign: func(f *model.FoodPairing, v string) { f.Description = v }},
}

var statsRules = []rule[model.Stats]{
	intRule[model.Stats]{key: "sake", assign: func(s *model.Stats, v int) { s.Sake = v }},
	intRule[model.Stats]{key: "breweries", assign: func(s *model.Stats, v int) { s.Breweries = v }},
	intRule[model.Stats]{key: "reviews", assign: func(s *model.Stats, v int) { s.Reviews = v }},
}

var paginationRules = []rule[model.Pagination]{
	optionalIntRule[model.Pagination]{key: "total", assign: func(p *model.Pagination, v *int) { p.Total = v }},
	intRule[model.Pagination]{key: "limit", assign: func(p *model.Pagination, v int) { p.Limit = v }},
	intRule[model.Pagination]{key: "offset", assign: func(p *model.Pagination, v int) { p.Offset = v }},
}

func Sake(record Record) model.Sake {
	return applyRules(record, sakeRules)
}

func Brewery(record Record) model.Brewery {
	return applyRules(record, breweryRules)
}

// FoodPairing never fills RecommendedSakeIDs; the wire format does not carry them.
func FoodPairing(record Record) model.FoodPairing {
	pairing := applyRules(record, foodPairingRules)
	pairing.RecommendedSakeIDs = []uuid.UUID{}

	return pairing
}

func Stats(record Record) model.Stats {
	return applyRules(record, statsRules)
}

// Pagination returns nil when the envelope carried no pagination object.
func Pagination(record Record) *model.Pagination {
	if record == nil {
		return nil
	}

	pagination := applyRules(record, paginationRules)

	return &pagination
}

func Sakes(records []Record) []model.Sake {
	return mapRecords(records, Sake)
}

func Breweries(records []Record) []model.Brewery {
	return mapRecords(records, Brewery)
}

func FoodPairings(records []Record) []model.FoodPairing {
	return mapRecords(records, FoodPairing)
}

// SakeImageURL derives the bucket object name for a bottle shot from an English name.
// The double underscore collapse is a single left-to-right pass, matching existing asset names.
func SakeImageURL(nameEnglish string) string {
	slug := strings.ReplaceAll(strings.ToLower(nameEnglish), " ", "_")
	slug = strings.ReplaceAll(slug, "__", "_")

	return BottleBucketBaseURL + slug + bottleImageSuffix
}

func mapRecords[E any](records []Record, decode func(Record) E) []E {
	entities := make([]E, 0, len(records))

	for _, record := range records {
		entities = append(entities, decode(record))
	}

	return entities
}
