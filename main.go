package main

import (
	"os"

	"github.com/alecthomas/kong"

	"droscher.com/Umami/cmd"
)

func main() {
	ctx := kong.Parse(&cmd.CLI, kong.Name("Umami"), kong.Description("Umami is a sake catalog browser."))
	err := ctx.Run(&cmd.Context{Debug: cmd.CLI.Debug, Stdout: os.Stdout})
	ctx.FatalIfErrorf(err)
}
