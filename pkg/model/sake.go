package model

import (
	"fmt"

	"github.com/google/uuid"
)

type Sake struct {
	ID                 uuid.UUID
	NameJapanese       string
	NameEnglish        string
	BreweryID          uuid.UUID
	BreweryName        string
	Prefecture         string
	Classification     Classification
	RiceVariety        string
	PolishRatio        int
	AlcoholContent     float64
	FlavorProfile      FlavorProfile
	ImageURL           string
	Price              float64
	Rating             float64
	ReviewCount        int
	Description        string
	ServingTemperature []string
	Availability       Availability
}

func (s Sake) DisplayName() string {
	return preferNonEmpty(s.NameEnglish, s.NameJapanese)
}

func (s Sake) LocalizedName(language Language) string {
	if language == Japanese {
		return preferNonEmpty(s.NameJapanese, s.NameEnglish)
	}

	return preferNonEmpty(s.NameEnglish, s.NameJapanese)
}

func (s Sake) LocalizedPrefecture(language Language) string {
	if language == Japanese {
		return PrefectureJapaneseName(s.Prefecture)
	}

	return s.Prefecture
}

func (s Sake) FormattedPrice() string {
	return fmt.Sprintf("$%.2f", s.Price)
}

// Price tiers are half-open: [0,30) $, [30,60) $$, [60,100) $$$, everything else $$$$.
func (s Sake) PriceCategory() string {
	switch {
	case s.Price >= 0 && s.Price < 30:
		return "$"
	case s.Price >= 30 && s.Price < 60:
		return "$$"
	case s.Price >= 60 && s.Price < 100:
		return "$$$"
	default:
		return "$$$$"
	}
}

func (s Sake) HasBrewery() bool {
	return s.BreweryID != UnknownBreweryID
}

type FlavorProfile struct {
	Sweetness      int
	Acidity        int
	Body           int
	Umami          int
	AromaIntensity int
}

func (f FlavorProfile) SweetnessDescription() string {
	switch f.Sweetness {
	case 1:
		return "Very Dry"
	case 2:
		return "Dry"
	case 4:
		return "Sweet"
	case 5:
		return "Very Sweet"
	default:
		return "Balanced"
	}
}

type Classification string

const (
	Junmai           Classification = "Junmai"
	JunmaiGinjo      Classification = "Junmai Ginjo"
	JunmaiDaiginjo   Classification = "Junmai Daiginjo"
	Honjozo          Classification = "Honjozo"
	Ginjo            Classification = "Ginjo"
	Daiginjo         Classification = "Daiginjo"
	TokubetsuJunmai  Classification = "Tokubetsu Junmai"
	TokubetsuHonjozo Classification = "Tokubetsu Honjozo"
	Namazake         Classification = "Namazake"
	Nigori           Classification = "Nigori"
	Sparkling        Classification = "Sparkling"
)

var classifications = []Classification{
	Junmai, JunmaiGinjo, JunmaiDaiginjo, Honjozo, Ginjo, Daiginjo,
	TokubetsuJunmai, TokubetsuHonjozo, Namazake, Nigori, Sparkling,
}

var classificationLabelsJapanese = map[Classification]string{
	Junmai:           "純米",
	JunmaiGinjo:      "純米吟醸",
	JunmaiDaiginjo:   "純米大吟醸",
	Honjozo:          "本醸造",
	Ginjo:            "吟醸",
	Daiginjo:         "大吟醸",
	TokubetsuJunmai:  "特別純米",
	TokubetsuHonjozo: "特別本醸造",
	Namazake:         "生酒",
	Nigori:           "にごり酒",
	Sparkling:        "スパークリング",
}

func Classifications() []Classification {
	return append([]Classification(nil), classifications...)
}

// ParseClassification accepts either the wire label ("Junmai Ginjo") or its code ("junmai_ginjo").
func ParseClassification(value string) (Classification, bool) {
	for _, classification := range classifications {
		if value == string(classification) || value == classification.Code() {
			return classification, true
		}
	}

	return "", false
}

func (c Classification) Code() string {
	return toCode(string(c))
}

func (c Classification) JapaneseLabel() string {
	return classificationLabelsJapanese[c]
}

func (c Classification) Label(language Language) string {
	if language == Japanese {
		return c.JapaneseLabel()
	}

	return string(c)
}

type Availability string

const (
	InStock        Availability = "In Stock"
	Rare           Availability = "Rare"
	Seasonal       Availability = "Seasonal"
	LimitedEdition Availability = "Limited Edition"
	OutOfStock     Availability = "Out of Stock"
)

var availabilities = []Availability{InStock, Rare, Seasonal, LimitedEdition, OutOfStock}

func ParseAvailability(value string) (Availability, bool) {
	for _, availability := range availabilities {
		if value == string(availability) || value == availability.Code() {
			return availability, true
		}
	}

	return "", false
}

func (a Availability) Code() string {
	return toCode(string(a))
}
