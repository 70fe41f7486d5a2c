package main

import (
	"errors"
	"flag"
	"fmt"
	"net/http"
	"time"

	"github.com/design-toolkit/api/api"
	"github.com/design-toolkit/api/calculators"
	"github.com/design-toolkit/api/colors"
	"github.com/design-toolkit/api/console"
	"github.com/design-toolkit/api/models"
	"github.com/design-toolkit/api/palettegen"
	"github.com/design-toolkit/api/scheduler"
)

var errUsage = errors.New("usage: toolkit [serve | convert <hex> | harmony <hex> [scheme] | token [-ttl 24h] [-sub name]]")

// run dispatches a subcommand. No arguments means serve.
func run(args []string, cfg settings) error {
	if len(args) == 0 {
		return runServe(cfg)
	}

	switch args[0] {
	case "serve":
		return runServe(cfg)
	case "convert":
		return runConvert(args[1:])
	case "harmony":
		return runHarmony(args[1:])
	case "token":
		return runToken(args[1:], cfg)
	default:
		return errUsage
	}
}

func runServe(cfg settings) error {
	console.PrintBanner(version)

	store := calculators.NewStore(calculators.DefaultCatalog())
	reloader := scheduler.NewScheduler(cfg.PresetsFile, cfg.PresetsRefresh, store)
	if _, err := reloader.Reload(); err != nil {
		return err
	}

	app := &api.Application{
		Config:  cfg.API,
		Presets: store,
	}

	console.LogSection("Configuration")
	console.LogItem("Port", cfg.API.HTTPPort)
	console.LogItem("Dev mode", fmt.Sprint(cfg.API.DevMode))
	console.LogItem("Presets", cfg.PresetsFile)

	if cfg.Palette.APIKey != "" {
		app.Palettes = palettegen.NewClient(cfg.Palette)
		console.LogItem("AI model", cfg.Palette.Model)
	} else {
		console.LogStatus("warning", "no GEMINI_API_KEY set, AI palettes disabled")
	}

	if cfg.API.PaletteTokenSecret == "" {
		console.LogStatus("warning", "PALETTE_TOKEN_SECRET unset, AI palette endpoint is open")
	}

	reloader.Start()
	defer reloader.Stop()

	return app.Serve(http.NewServeMux())
}

func runConvert(args []string) error {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errUsage
	}

	hex, err := colors.NormalizeHex(fs.Arg(0))
	if err != nil {
		return err
	}
	r, err := colors.Describe(hex)
	if err != nil {
		return err
	}

	console.LogSection("Color")
	console.LogItem("Swatch", console.Swatch(r.Hex))
	console.LogItem("RGB", r.RGB.String())
	console.LogItem("HSL", r.HSL.String())
	console.LogItem("CMYK", r.CMYK.String())
	return nil
}

func runHarmony(args []string) error {
	fs := flag.NewFlagSet("harmony", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 || fs.NArg() > 2 {
		return errUsage
	}

	name := string(colors.Complementary)
	if fs.NArg() == 2 {
		name = fs.Arg(1)
	}
	scheme, err := colors.ParseScheme(name)
	if err != nil {
		return err
	}

	hex, err := colors.NormalizeHex(fs.Arg(0))
	if err != nil {
		return err
	}

	console.PrintPalette(fmt.Sprintf("%s of %s", scheme, hex), colors.GenerateHarmony(hex, scheme))
	return nil
}

func runToken(args []string, cfg settings) error {
	fs := flag.NewFlagSet("token", flag.ContinueOnError)
	ttl := fs.Duration("ttl", 24*time.Hour, "token lifetime")
	subject := fs.String("sub", "cli", "token subject")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if cfg.API.PaletteTokenSecret == "" {
		return errors.New("PALETTE_TOKEN_SECRET must be set to mint palette tokens")
	}

	token, expiry, err := models.NewPaletteToken(cfg.API.PaletteTokenSecret, *subject, *ttl)
	if err != nil {
		return err
	}

	console.LogSection("Palette token")
	console.LogItem("Subject", *subject)
	console.LogItem("Expires", expiry.Format(time.RFC3339))
	fmt.Fprintln(console.Output, token)
	return nil
}
