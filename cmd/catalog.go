package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/google/uuid"
	"go.openly.dev/pointy"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"droscher.com/Umami/pkg/i18n"
	"droscher.com/Umami/pkg/model"
	"droscher.com/Umami/pkg/query"
)

var ErrInvalidArgument = errors.New("invalid argument")

type CommonFlags struct {
	ConfigFile string `default:".Umami.toml" help:"Path to config file"                                 short:"c"`
	Lang       string `help:"Display language (en or ja); defaults to the saved preference" short:"l"`
}

// run loads the environment, resolves the display language and hands both to fn.
func (f CommonFlags) run(c *Context, fn func(ctx context.Context, env *environment, out *printer) error) error {
	logger := newLogger(false, c.Debug)
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	env, err := newEnvironment(ctx, f.ConfigFile, logger)
	if err != nil {
		return err
	}
	defer env.Close()

	language := env.preferences.Language()

	if len(f.Lang) > 0 {
		parsed, found := model.ParseLanguage(f.Lang)
		if !found {
			return fmt.Errorf("%w: unsupported language %q", ErrInvalidArgument, f.Lang)
		}

		language = parsed
	}

	err = fn(ctx, env, newPrinter(c.Stdout, language, env.translator))
	if err != nil {
		logger.Debug("command failed", zap.Error(err))
	}

	return err
}

func parseID(value string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: invalid id %q", ErrInvalidArgument, value)
	}

	return id, nil
}

type BrowseCmd struct {
	CommonFlags `embed:""`

	Classification []string `help:"Only show these classifications; may be repeated"`
	Prefecture     []string `help:"Only show sake from these prefectures; may be repeated"`
	RiceVariety    []string `help:"Only show these rice varieties; may be repeated"       name:"rice"`
	MinPrice       float64  `default:"0"                                                  help:"Minimum price"`
	MaxPrice       float64  `default:"1000"                                               help:"Maximum price"`
	MinRating      float64  `help:"Minimum rating"`
	Search         string   `help:"Free text search"                                      short:"s"`
	Sort           string   `default:"highest_rated"                                      help:"Sort preset"`
	Limit          int      `default:"50"                                                 help:"Page size"`
	Offset         int      `default:"0"                                                  help:"Page offset"`
	Favorites      bool     `help:"Only show favorites"`
}

// listParams folds the flags through FilterOptions, so single-member sets reach the catalog
// and the rest are applied locally.
func (b *BrowseCmd) listParams() (query.ListParams, query.FilterOptions, error) {
	var errs error

	params := query.DefaultListParams()
	params.Limit = b.Limit
	params.Offset = b.Offset

	sort, found := query.ParseSortOption(b.Sort)
	if !found {
		multierr.AppendInto(&errs, fmt.Errorf("%w: unknown sort %q", ErrInvalidArgument, b.Sort))
	}

	sort.Apply(&params)

	if b.Limit < 0 || b.Offset < 0 {
		multierr.AppendInto(&errs, fmt.Errorf("%w: limit and offset must not be negative", ErrInvalidArgument))
	}

	if len(b.Search) > 0 {
		params.Search = pointy.String(b.Search)
	}

	filter := query.NewFilterOptions()
	filter.MinRating = b.MinRating
	filter.PriceRange = query.PriceRange{Min: b.MinPrice, Max: b.MaxPrice}

	if b.MinPrice > b.MaxPrice {
		multierr.AppendInto(&errs, fmt.Errorf("%w: min price is above max price", ErrInvalidArgument))
	}

	for _, value := range b.Classification {
		classification, ok := model.ParseClassification(value)
		if !ok {
			multierr.AppendInto(&errs, fmt.Errorf("%w: unknown classification %q", ErrInvalidArgument, value))

			continue
		}

		filter.ToggleClassification(classification)
	}

	for _, prefecture := range b.Prefecture {
		filter.TogglePrefecture(prefecture)
	}

	for _, variety := range b.RiceVariety {
		filter.ToggleRiceVariety(variety)
	}

	return filter.ListParams(params), filter, errs
}

func (b *BrowseCmd) Run(c *Context) error {
	params, filter, err := b.listParams()
	if err != nil {
		return err
	}

	return b.run(c, func(ctx context.Context, env *environment, out *printer) error {
		page, err := env.catalog.FetchSakeList(ctx, params)
		if err != nil {
			out.line(out.text(i18n.KeyErrorLoading))

			return err
		}

		sakes := filter.Apply(page.Sakes)

		if b.Favorites {
			favorites := make([]model.Sake, 0, len(sakes))

			for _, sake := range sakes {
				if env.preferences.IsFavorite(sake.ID) {
					favorites = append(favorites, sake)
				}
			}

			sakes = favorites
		}

		out.sakeList(sakes, func(sake model.Sake) bool { return env.preferences.IsFavorite(sake.ID) })

		return nil
	})
}

type ShowCmd struct {
	CommonFlags `embed:""`

	ID string `arg:"" help:"Sake id"`
}

func (s *ShowCmd) Run(c *Context) error {
	id, err := parseID(s.ID)
	if err != nil {
		return err
	}

	return s.run(c, func(ctx context.Context, env *environment, out *printer) error {
		sake, err := env.catalog.FetchSake(ctx, id)
		if err != nil {
			out.line(out.text(i18n.KeyErrorLoading))

			return err
		}

		out.sakeDetail(*sake, env.preferences.IsFavorite(sake.ID))

		if !sake.HasBrewery() {
			return nil
		}

		if brewery, err := env.catalog.FetchBrewery(ctx, sake.BreweryID); err == nil {
			out.field(i18n.KeyEstablished, brewery.DisplayName()+" "+brewery.FormattedEstablished())
		}

		return nil
	})
}

type BreweriesCmd struct {
	CommonFlags `embed:""`

	Prefecture string `help:"Only list breweries in this prefecture"`
	Limit      int    `default:"50"                                   help:"Page size"`
	Offset     int    `default:"0"                                    help:"Page offset"`
}

func (b *BreweriesCmd) Run(c *Context) error {
	if b.Limit < 0 || b.Offset < 0 {
		return fmt.Errorf("%w: limit and offset must not be negative", ErrInvalidArgument)
	}

	var prefecture *string
	if len(b.Prefecture) > 0 {
		prefecture = pointy.String(b.Prefecture)
	}

	return b.run(c, func(ctx context.Context, env *environment, out *printer) error {
		page, err := env.catalog.FetchBreweries(ctx, prefecture, b.Limit, b.Offset)
		if err != nil {
			out.line(out.text(i18n.KeyErrorLoading))

			return err
		}

		out.breweryList(page.Breweries)

		return nil
	})
}

type PairingsCmd struct {
	CommonFlags `embed:""`
}

func (p *PairingsCmd) Run(c *Context) error {
	return p.run(c, func(ctx context.Context, env *environment, out *printer) error {
		pairings, err := env.catalog.FetchFoodPairings(ctx)
		if err != nil {
			out.line(out.text(i18n.KeyErrorLoading))

			return err
		}

		out.pairingList(pairings)

		return nil
	})
}

type StatsCmd struct {
	CommonFlags `embed:""`
}

func (s *StatsCmd) Run(c *Context) error {
	return s.run(c, func(ctx context.Context, env *environment, out *printer) error {
		stats, err := env.catalog.FetchStats(ctx)
		if err != nil {
			out.line(out.text(i18n.KeyErrorLoading))

			return err
		}

		out.stats(*stats)

		return nil
	})
}
