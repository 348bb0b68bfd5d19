package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.openly.dev/pointy"

	"droscher.com/Umami/pkg/model"
)

func TestPriceCategory_Boundaries(t *testing.T) {
	cases := map[float64]string{
		0:      "$",
		29.99:  "$",
		30.00:  "$$",
		59.99:  "$$",
		60.00:  "$$$",
		99.99:  "$$$",
		100.00: "$$$$",
		450:    "$$$$",
	}

	for price, expected := range cases {
		assert.Equal(t, expected, model.Sake{Price: price}.PriceCategory(), "price %v", price)
	}
}

func TestFormattedPrice(t *testing.T) {
	assert.Equal(t, "$0.00", model.Sake{}.FormattedPrice())
	assert.Equal(t, "$42.50", model.Sake{Price: 42.5}.FormattedPrice())
	assert.Equal(t, "$19.99", model.Sake{Price: 19.989}.FormattedPrice())
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Dassai 45", model.Sake{NameEnglish: "Dassai 45", NameJapanese: "獺祭 45"}.DisplayName())
	assert.Equal(t, "獺祭 45", model.Sake{NameJapanese: "獺祭 45"}.DisplayName())
	assert.Empty(t, model.Sake{}.DisplayName())

	assert.Equal(t, "Kokuryu", model.Brewery{NameEnglish: "Kokuryu", NameJapanese: "黒龍"}.DisplayName())
	assert.Equal(t, "黒龍", model.Brewery{NameJapanese: "黒龍"}.DisplayName())
	assert.Empty(t, model.Brewery{}.DisplayName())
}

func TestLocalizedName(t *testing.T) {
	sake := model.Sake{NameEnglish: "Dassai 45", NameJapanese: "獺祭 45", Prefecture: "Yamaguchi"}

	assert.Equal(t, "Dassai 45", sake.LocalizedName(model.English))
	assert.Equal(t, "獺祭 45", sake.LocalizedName(model.Japanese))
	assert.Equal(t, "Yamaguchi", sake.LocalizedPrefecture(model.English))
	assert.Equal(t, "山口県", sake.LocalizedPrefecture(model.Japanese))

	englishOnly := model.Sake{NameEnglish: "Mio", Prefecture: "Atlantis"}
	assert.Equal(t, "Mio", englishOnly.LocalizedName(model.Japanese))
	assert.Equal(t, "Atlantis", englishOnly.LocalizedPrefecture(model.Japanese))
}

func TestFormattedEstablished(t *testing.T) {
	assert.Equal(t, "Est. 1804", model.Brewery{Established: pointy.Int(1804)}.FormattedEstablished())
	assert.Equal(t, "N/A", model.Brewery{}.FormattedEstablished())
}

func TestParseClassification(t *testing.T) {
	classification, found := model.ParseClassification("Junmai Daiginjo")
	assert.True(t, found)
	assert.Equal(t, model.JunmaiDaiginjo, classification)

	classification, found = model.ParseClassification("tokubetsu_honjozo")
	assert.True(t, found)
	assert.Equal(t, model.TokubetsuHonjozo, classification)

	_, found = model.ParseClassification("Futsushu")
	assert.False(t, found)

	_, found = model.ParseClassification("junmai ginjo")
	assert.False(t, found)

	assert.Len(t, model.Classifications(), 11)
	assert.Equal(t, "純米大吟醸", model.JunmaiDaiginjo.JapaneseLabel())
	assert.Equal(t, "にごり酒", model.Nigori.Label(model.Japanese))
	assert.Equal(t, "Nigori", model.Nigori.Label(model.English))
}

func TestParseAvailability(t *testing.T) {
	availability, found := model.ParseAvailability("Limited Edition")
	assert.True(t, found)
	assert.Equal(t, model.LimitedEdition, availability)

	availability, found = model.ParseAvailability("out_of_stock")
	assert.True(t, found)
	assert.Equal(t, model.OutOfStock, availability)

	_, found = model.ParseAvailability("Discontinued")
	assert.False(t, found)
}

func TestFoodPairing(t *testing.T) {
	pairing := model.FoodPairing{DishName: "Grilled eel"}
	assert.Equal(t, "Grilled eel", pairing.DisplayName())

	pairing.DishNameJapanese = pointy.String("鰻の蒲焼")
	assert.Equal(t, "鰻の蒲焼", pairing.DisplayName())

	category, found := model.ParseFoodCategory("Yakitori")
	assert.True(t, found)
	assert.Equal(t, "🍢", category.Icon())

	category, found = model.ParseFoodCategory("kaiseki")
	assert.True(t, found)
	assert.Equal(t, model.Kaiseki, category)

	_, found = model.ParseFoodCategory("Pizza")
	assert.False(t, found)
}

func TestLanguage(t *testing.T) {
	language, found := model.ParseLanguage("ja")
	assert.True(t, found)
	assert.Equal(t, model.Japanese, language)

	language, found = model.ParseLanguage("fr")
	assert.False(t, found)
	assert.Equal(t, model.DefaultLanguage, language)

	assert.Equal(t, model.Japanese, model.English.Toggle())
	assert.Equal(t, model.English, model.Japanese.Toggle())
}

func TestSweetnessDescription(t *testing.T) {
	assert.Equal(t, "Very Dry", model.FlavorProfile{Sweetness: 1}.SweetnessDescription())
	assert.Equal(t, "Balanced", model.FlavorProfile{Sweetness: 3}.SweetnessDescription())
	assert.Equal(t, "Very Sweet", model.FlavorProfile{Sweetness: 5}.SweetnessDescription())
	assert.Equal(t, "Balanced", model.FlavorProfile{Sweetness: 9}.SweetnessDescription())
}
