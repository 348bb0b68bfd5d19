package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"droscher.com/Umami/pkg/model"
)

func TestValidate_ShippedTablesAreComplete(t *testing.T) {
	require.NoError(t, Validate())
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	incomplete := Table{}
	for key, text := range english {
		incomplete[key] = text
	}

	delete(incomplete, KeyRetry)
	incomplete[KeyLoading] = "  "
	incomplete[Key("legacy")] = "Legacy"

	err := validateTables(map[model.Language]Table{model.English: incomplete})

	require.ErrorIs(t, err, ErrMissingTranslation)
	assert.ErrorContains(t, err, `en has no text for "retry"`)
	assert.ErrorContains(t, err, `en has no text for "loading"`)
	assert.ErrorContains(t, err, `en has unknown key "legacy"`)
	assert.ErrorContains(t, err, "no table for ja")
}

func TestNewTranslator_FailsOnIncompleteTables(t *testing.T) {
	translator, err := newTranslator(map[model.Language]Table{model.English: english})

	assert.Nil(t, translator)
	assert.ErrorIs(t, err, ErrMissingTranslation)
}

func TestTranslator_Get(t *testing.T) {
	translator, err := NewTranslator()
	require.NoError(t, err)

	assert.Equal(t, "Favorites", translator.Get(model.English, KeyFavorites))
	assert.Equal(t, "お気に入り", translator.Get(model.Japanese, KeyFavorites))
	assert.Equal(t, "Retry", translator.Get(model.Language("fr"), KeyRetry))
	assert.Equal(t, "unknownKey", translator.Get(model.English, Key("unknownKey")))
}

func TestTranslator_Format(t *testing.T) {
	translator, err := NewTranslator()
	require.NoError(t, err)

	assert.Equal(t, "Show 12 sake", translator.Format(model.English, KeyShowSake, map[string]any{"Count": 12}))
	assert.Equal(t, "12件の日本酒を表示", translator.Format(model.Japanese, KeyShowSake, map[string]any{"Count": 12}))
}

func TestTranslator_Table(t *testing.T) {
	translator, err := NewTranslator()
	require.NoError(t, err)

	table := translator.Table(model.Japanese)

	assert.Len(t, table, len(Keys()))
	assert.Equal(t, "{count}件の日本酒を表示", table["showSake"])
	assert.Equal(t, "再試行", table["retry"])
}
