//go:build !tinygo

package main

import (
	"github.com/alecthomas/kong"
	kongtoml "github.com/alecthomas/kong-toml"

	"niceview/app"
)

var cli struct {
	Scale     int    `default:"4" help:"Window scale factor."`
	Halves    int    `default:"1" help:"Display halves to simulate (a split keyboard has two)."`
	Rotate180 bool   `help:"Render for a display mounted upside down."`
	Interval  uint32 `default:"100" help:"Minimum keypress redraw spacing in milliseconds."`
	Headless  bool   `help:"Run without a window."`
	Ticks     uint64 `default:"0" help:"Stop after N frames in headless mode (0 = run forever)."`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("niceview"),
		kong.Description("Keyboard status display demo. Type to see keys; Ctrl+1..5 select a profile, Ctrl+T toggles USB/BLE, Ctrl+U USB power, Ctrl+C/B connected/bonded, Ctrl+L cycles layers, Ctrl+D drains the battery."),
		kong.UsageOnError(),
		kong.Configuration(kongtoml.Loader, "niceview.toml", "~/.config/niceview/config.toml"),
	)

	err := app.RunHost(app.HostConfig{
		Config: app.Config{
			Halves:     cli.Halves,
			IntervalMS: cli.Interval,
		},
		Rotated:  cli.Rotate180,
		Scale:    cli.Scale,
		Headless: cli.Headless,
		Ticks:    cli.Ticks,
	})
	ctx.FatalIfErrorf(err)
}
