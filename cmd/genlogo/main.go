// Package main regenerates the bundled splash logo (assets/images/splash.png).
//
// Usage:
//
//	go run ./cmd/genlogo [flags]
//
// Flags:
//
//	--out <path>    Output file (default: "assets/images/splash.png")
//	--width <px>    Logo width (default: 400)
//	--height <px>   Logo height (default: 200)
package main

import (
	"flag"
	"image/color"
	"log"
	"math"

	"github.com/fogleman/gg"
)

var (
	outFlag    = flag.String("out", "assets/images/splash.png", "Output PNG path")
	widthFlag  = flag.Int("width", 400, "Logo width in pixels")
	heightFlag = flag.Int("height", 200, "Logo height in pixels")
)

// logoColor Ebitengine 橙色
var logoColor = color.RGBA{R: 231, G: 60, B: 0, A: 255}

func main() {
	flag.Parse()

	if *widthFlag <= 0 || *heightFlag <= 0 {
		log.Fatalf("invalid logo size %dx%d", *widthFlag, *heightFlag)
	}

	dc := renderLogo(*widthFlag, *heightFlag)
	if err := dc.SavePNG(*outFlag); err != nil {
		log.Fatalf("failed to save logo: %v", err)
	}
	log.Printf("wrote %dx%d logo to %s", *widthFlag, *heightFlag, *outFlag)
}

// renderLogo draws a framed disc on a transparent background.
// Hard edges only, the splash screen scales it with nearest filtering.
func renderLogo(width, height int) *gg.Context {
	w, h := float64(width), float64(height)
	border := math.Max(2, math.Round(math.Min(w, h)/25))

	dc := gg.NewContext(width, height)
	dc.SetColor(logoColor)

	// 外框
	dc.DrawRectangle(0, 0, w, border)
	dc.DrawRectangle(0, h-border, w, border)
	dc.DrawRectangle(0, 0, border, h)
	dc.DrawRectangle(w-border, 0, border, h)
	dc.Fill()

	// 中心圆
	dc.DrawCircle(w/2, h/2, math.Min(w, h)*0.35)
	dc.Fill()

	return dc
}
