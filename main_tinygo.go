//go:build tinygo

package main

import (
	"github.com/463N7/CYD-wifi-monitor/app"
	"github.com/463N7/CYD-wifi-monitor/hal"
)

func main() {
	app.Run(hal.New())
}
