//go:build tinygo

package main

import "niceview/app"

func main() {
	if err := app.Run(app.Config{}); err != nil {
		panic(err)
	}
}
