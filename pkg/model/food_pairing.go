package model

import "github.com/google/uuid"

type FoodPairing struct {
	ID                 uuid.UUID
	DishName           string
	DishNameJapanese   *string
	Category           FoodCategory
	ImageURL           string
	RecommendedSakeIDs []uuid.UUID
	Description        string
}

func (f FoodPairing) DisplayName() string {
	if f.DishNameJapanese != nil {
		return *f.DishNameJapanese
	}

	return f.DishName
}

type FoodCategory string

const (
	Sushi    FoodCategory = "Sushi"
	Sashimi  FoodCategory = "Sashimi"
	Tempura  FoodCategory = "Tempura"
	Yakitori FoodCategory = "Yakitori"
	Ramen    FoodCategory = "Ramen"
	Kaiseki  FoodCategory = "Kaiseki"
	Izakaya  FoodCategory = "Izakaya"
	Chinese  FoodCategory = "Chinese"
	Korean   FoodCategory = "Korean"
	Thai     FoodCategory = "Thai"
	Italian  FoodCategory = "Italian"
	French   FoodCategory = "French"
	American FoodCategory = "American"
	Fusion   FoodCategory = "Fusion"
)

var foodCategoryIcons = map[FoodCategory]string{
	Sushi:    "🍣",
	Sashimi:  "🐟",
	Tempura:  "🍤",
	Yakitori: "🍢",
	Ramen:    "🍜",
	Kaiseki:  "🍱",
	Izakaya:  "🏮",
	Chinese:  "🥟",
	Korean:   "🍲",
	Thai:     "🍛",
	Italian:  "🍝",
	French:   "🥖",
	American: "🍔",
	Fusion:   "🌏",
}

func ParseFoodCategory(value string) (FoodCategory, bool) {
	category := FoodCategory(value)
	if _, found := foodCategoryIcons[category]; found {
		return category, true
	}

	for known := range foodCategoryIcons {
		if value == toCode(string(known)) {
			return known, true
		}
	}

	return "", false
}

func (f FoodCategory) Icon() string {
	return foodCategoryIcons[f]
}
