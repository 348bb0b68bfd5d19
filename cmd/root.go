package cmd

import "io"

type Context struct {
	Debug  bool
	Stdout io.Writer
}

var CLI struct {
	Debug bool `help:"Enable debug mode"`

	Serve     ServeCmd     `cmd:"" default:"1"                            help:"Run the server"`
	Migrate   MigrateCmd   `cmd:"" help:"Run database migrations"`
	Browse    BrowseCmd    `cmd:"" help:"List sake from the catalog"`
	Show      ShowCmd      `cmd:"" help:"Show a single sake"`
	Breweries BreweriesCmd `cmd:"" help:"List breweries"`
	Pairings  PairingsCmd  `cmd:"" help:"List food pairings"`
	Stats     StatsCmd     `cmd:"" help:"Show catalog statistics"`
	Favorite  FavoriteCmd  `cmd:"" help:"Toggle a favorite sake"`
	Favorites FavoritesCmd `cmd:"" help:"List favorite sake"`
	Language  LanguageCmd  `cmd:"" help:"Show or change the display language"`
}
