package cmd

import (
	"context"
	"fmt"

	"droscher.com/Umami/pkg/i18n"
	"droscher.com/Umami/pkg/model"
	"droscher.com/Umami/pkg/server/api"
)

type FavoriteCmd struct {
	CommonFlags `embed:""`

	ID string `arg:"" help:"Sake id to add to or remove from favorites"`
}

func (f *FavoriteCmd) Run(c *Context) error {
	id, err := parseID(f.ID)
	if err != nil {
		return err
	}

	return f.run(c, func(ctx context.Context, env *environment, out *printer) error {
		isFavorite := env.preferences.ToggleFavorite(ctx, id)
		out.line(star(isFavorite), id.String())

		return nil
	})
}

type FavoritesCmd struct {
	CommonFlags `embed:""`
}

func (f *FavoritesCmd) Run(c *Context) error {
	return f.run(c, func(_ context.Context, env *environment, out *printer) error {
		out.favorites(api.IDsFromModel(env.preferences.Favorites()))

		return nil
	})
}

type LanguageCmd struct {
	ConfigFile string `default:".Umami.toml" help:"Path to config file" short:"c"`

	Code   string `arg:""                                              help:"Language to switch to (en or ja)" optional:""`
	Toggle bool   `help:"Switch between English and Japanese"`
}

func (l *LanguageCmd) Run(c *Context) error {
	var (
		lang  model.Language
		found bool
	)

	if len(l.Code) > 0 {
		if lang, found = model.ParseLanguage(l.Code); !found {
			return fmt.Errorf("%w: unsupported language %q", ErrInvalidArgument, l.Code)
		}
	}

	flags := CommonFlags{ConfigFile: l.ConfigFile}

	return flags.run(c, func(ctx context.Context, env *environment, _ *printer) error {
		switch {
		case l.Toggle:
			lang = env.preferences.ToggleLanguage(ctx)
		case found:
			env.preferences.SetLanguage(ctx, lang)
		default:
			lang = env.preferences.Language()
		}

		newPrinter(c.Stdout, lang, env.translator).line(
			labelStyle.Render(cell(env.translator.Get(lang, i18n.KeyLanguage), labelWidth)),
			fmt.Sprintf("%s (%s)", lang.DisplayName(), lang),
		)

		return nil
	})
}
