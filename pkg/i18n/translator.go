package i18n

import (
	"errors"
	"fmt"
	"strings"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"go.uber.org/multierr"
	"golang.org/x/text/language"

	"droscher.com/Umami/pkg/model"
)

var ErrMissingTranslation = errors.New("missing translation")

// Translator renders keys for a display language. It is safe for concurrent use.
type Translator struct {
	localizers map[model.Language]*goi18n.Localizer
}

// Validate reports every key that is missing, empty or unknown in any language table.
func Validate() error {
	return validateTables(tables)
}

func validateTables(tables map[model.Language]Table) error {
	var errs error

	known := make(map[Key]struct{}, len(keys))
	for _, key := range keys {
		known[key] = struct{}{}
	}

	for _, lang := range model.Languages() {
		table, found := tables[lang]
		if !found {
			multierr.AppendInto(&errs, fmt.Errorf("%w: no table for %s", ErrMissingTranslation, lang))

			continue
		}

		for _, key := range keys {
			if len(strings.TrimSpace(table[key])) == 0 {
				multierr.AppendInto(&errs, fmt.Errorf("%w: %s has no text for %q", ErrMissingTranslation, lang, key))
			}
		}

		for key := range table {
			if _, isKnown := known[key]; !isKnown {
				multierr.AppendInto(&errs, fmt.Errorf("%w: %s has unknown key %q", ErrMissingTranslation, lang, key))
			}
		}
	}

	return errs
}

func NewTranslator() (*Translator, error) {
	return newTranslator(tables)
}

func newTranslator(tables map[model.Language]Table) (*Translator, error) {
	if err := validateTables(tables); err != nil {
		return nil, err
	}

	bundle := goi18n.NewBundle(language.English)
	translator := &Translator{localizers: make(map[model.Language]*goi18n.Localizer, len(tables))}

	for _, lang := range model.Languages() {
		tag, err := language.Parse(lang.String())
		if err != nil {
			return nil, err
		}

		messages := make([]*goi18n.Message, 0, len(keys))
		for _, key := range keys {
			messages = append(messages, &goi18n.Message{ID: string(key), Other: tables[lang][key]})
		}

		if err = bundle.AddMessages(tag, messages...); err != nil {
			return nil, err
		}

		translator.localizers[lang] = goi18n.NewLocalizer(bundle, lang.String())
	}

	return translator, nil
}

func (t *Translator) Get(lang model.Language, key Key) string {
	return t.Format(lang, key, nil)
}

// Format renders key with data as template input. Unknown languages use the default language.
func (t *Translator) Format(lang model.Language, key Key, data map[string]any) string {
	localizer, found := t.localizers[lang]
	if !found {
		localizer = t.localizers[model.DefaultLanguage]
	}

	text, err := localizer.Localize(&goi18n.LocalizeConfig{MessageID: string(key), TemplateData: data})
	if err != nil {
		return string(key)
	}

	return text
}

// Table renders every key for lang. Template fields are left as {name} placeholders.
func (t *Translator) Table(lang model.Language) map[string]string {
	placeholders := map[string]any{"Count": "{count}"}
	rendered := make(map[string]string, len(keys))

	for _, key := range keys {
		rendered[string(key)] = t.Format(lang, key, placeholders)
	}

	return rendered
}
