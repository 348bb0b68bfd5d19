package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"droscher.com/Umami/pkg/i18n"
	"droscher.com/Umami/pkg/model"
)

const (
	nameWidth           = 34
	classificationWidth = 22
	prefectureWidth     = 14
	priceWidth          = 10
	labelWidth          = 22
)

var (
	crimson = lipgloss.Color("#9B1B30")
	gold    = lipgloss.Color("#C9A227")

	headingStyle  = lipgloss.NewStyle().Bold(true).Foreground(crimson)
	labelStyle    = lipgloss.NewStyle().Faint(true)
	favoriteStyle = lipgloss.NewStyle().Foreground(gold)
	footerStyle   = lipgloss.NewStyle().Italic(true)
)

// printer writes localized, column-aligned catalog output for the one-shot commands.
type printer struct {
	out        io.Writer
	language   model.Language
	translator *i18n.Translator
}

func newPrinter(out io.Writer, language model.Language, translator *i18n.Translator) *printer {
	return &printer{out: out, language: language, translator: translator}
}

func (p *printer) text(key i18n.Key) string {
	return p.translator.Get(p.language, key)
}

func (p *printer) line(parts ...string) {
	_, _ = fmt.Fprintln(p.out, strings.TrimRight(lipgloss.JoinHorizontal(lipgloss.Top, parts...), " "))
}

// cell truncates wide values so every row stays on one line.
func cell(value string, width int) string {
	return lipgloss.NewStyle().Width(width).Render(ansi.Truncate(value, width-1, "…"))
}

func star(isFavorite bool) string {
	if isFavorite {
		return favoriteStyle.Render("★ ")
	}

	return "  "
}

func (p *printer) sakeList(sakes []model.Sake, isFavorite func(sake model.Sake) bool) {
	for _, sake := range sakes {
		p.line(
			star(isFavorite(sake)),
			cell(sake.LocalizedName(p.language), nameWidth),
			cell(sake.Classification.Label(p.language), classificationWidth),
			cell(sake.LocalizedPrefecture(p.language), prefectureWidth),
			cell(sake.FormattedPrice(), priceWidth),
			strconv.FormatFloat(sake.Rating, 'f', 1, 64),
		)
	}

	p.line(footerStyle.Render(p.translator.Format(p.language, i18n.KeyShowSake, map[string]any{"Count": len(sakes)})))
}

func (p *printer) field(key i18n.Key, value string) {
	if len(value) == 0 {
		return
	}

	p.line(labelStyle.Render(cell(p.text(key), labelWidth)), value)
}

func (p *printer) sakeDetail(sake model.Sake, isFavorite bool) {
	p.line(star(isFavorite), headingStyle.Render(sake.LocalizedName(p.language)))

	if sake.LocalizedName(p.language) != sake.DisplayName() {
		p.line("  ", sake.DisplayName())
	}

	p.line(headingStyle.Render(p.text(i18n.KeyDetails)))
	p.field(i18n.KeyType, sake.Classification.Label(p.language))
	p.field(i18n.KeyPrefecture, sake.LocalizedPrefecture(p.language))
	p.field(i18n.KeyRiceVariety, sake.RiceVariety)
	p.field(i18n.KeyPrice, fmt.Sprintf("%s (%s)", sake.FormattedPrice(), sake.PriceCategory()))
	p.field(i18n.KeyRating, fmt.Sprintf("%.1f (%d)", sake.Rating, sake.ReviewCount))
	p.field(i18n.KeyServingTemperature, strings.Join(sake.ServingTemperature, ", "))

	p.line(headingStyle.Render(p.text(i18n.KeyFlavorProfile)))
	p.field(i18n.KeySweetness, fmt.Sprintf("%d/5 %s", sake.FlavorProfile.Sweetness, sake.FlavorProfile.SweetnessDescription()))
	p.field(i18n.KeyAcidity, score(sake.FlavorProfile.Acidity))
	p.field(i18n.KeyBody, score(sake.FlavorProfile.Body))
	p.field(i18n.KeyUmami, score(sake.FlavorProfile.Umami))
	p.field(i18n.KeyAroma, score(sake.FlavorProfile.AromaIntensity))

	if len(sake.Description) > 0 {
		p.line(headingStyle.Render(p.text(i18n.KeyAbout)))
		p.line(sake.Description)
	}
}

func score(value int) string {
	return strconv.Itoa(value) + "/5"
}

func (p *printer) breweryList(breweries []model.Brewery) {
	for _, brewery := range breweries {
		p.line(
			cell(brewery.DisplayName(), nameWidth),
			cell(brewery.Prefecture, prefectureWidth),
			cell(p.text(i18n.KeyEstablished)+" "+brewery.FormattedEstablished(), classificationWidth),
			strconv.Itoa(brewery.SakeCount),
		)
	}
}

func (p *printer) pairingList(pairings []model.FoodPairing) {
	for _, pairing := range pairings {
		p.line(
			cell(pairing.Category.Icon(), 3),
			cell(pairing.DisplayName(), nameWidth),
			cell(string(pairing.Category), classificationWidth),
			strconv.Itoa(len(pairing.RecommendedSakeIDs)),
		)
	}
}

func (p *printer) stats(stats model.Stats) {
	p.line(labelStyle.Render(cell("sake", labelWidth)), strconv.Itoa(stats.Sake))
	p.line(labelStyle.Render(cell("breweries", labelWidth)), strconv.Itoa(stats.Breweries))
	p.line(labelStyle.Render(cell(p.text(i18n.KeyReviews), labelWidth)), strconv.Itoa(stats.Reviews))
}

func (p *printer) favorites(ids []string) {
	if len(ids) == 0 {
		p.line(p.text(i18n.KeyNoFavorites))

		return
	}

	p.line(headingStyle.Render(p.text(i18n.KeyFavorites)))

	for _, id := range ids {
		p.line(star(true), id)
	}
}
