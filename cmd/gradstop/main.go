// Command gradstop computes and displays gradient stop sequences.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/al-siv/gradstop"
	"github.com/al-siv/gradstop/emit"
	"github.com/al-siv/gradstop/parse"
	"github.com/al-siv/gradstop/render"
)

func main() {
	var (
		start   = flag.String("start", "red", "start color (hex, rgb(), or name)")
		end     = flag.String("end", "blue", "end color (hex, rgb(), or name)")
		stops   = flag.Int("stops", 5, "number of stops")
		mode    = flag.String("mode", "smart", "stop placement mode: simple or smart")
		metric  = flag.String("metric", "delta-e-2000", "distance metric: delta-e-76, delta-e-2000, euclidean-lab, lch")
		easeIn  = flag.Float64("ease-in", 0.65, "timing curve ease-in control value")
		easeOut = flag.Float64("ease-out", 0.35, "timing curve ease-out control value")
		from    = flag.Int("from", 0, "start position in percent (0-100)")
		to      = flag.Int("to", 100, "end position in percent (0-100)")
		format  = flag.String("format", "table", "output format: table, json, png, svg")
		output  = flag.String("output", "", "output file (png/svg formats)")
		width   = flag.Int("width", 800, "image width (png/svg formats)")
		height  = flag.Int("height", 80, "image height (png/svg formats)")
		dense   = flag.Bool("dense", false, "merge stops at half-percent resolution")
	)
	flag.Parse()

	names := parse.DefaultNames()

	startColor, err := parse.Parse(*start, names)
	if err != nil {
		log.Fatalf("start color: %v", err)
	}
	endColor, err := parse.Parse(*end, names)
	if err != nil {
		log.Fatalf("end color: %v", err)
	}

	req := gradstop.Request{
		StartColor:   startColor,
		EndColor:     endColor,
		StartPercent: percent(*from),
		EndPercent:   percent(*to),
		EaseIn:       *easeIn,
		EaseOut:      *easeOut,
		StopCount:    *stops,
		Mode:         parseMode(*mode),
		Metric:       parseMetric(*metric),
	}

	var opts []gradstop.Option
	if *dense {
		opts = append(opts, gradstop.WithDenseMerge())
	}
	seq := gradstop.Sequence(req, opts...)

	switch *format {
	case "table":
		fmt.Println(emit.Table(seq))
		fmt.Println(emit.Ramp(seq, 64))
	case "json":
		if err := emit.JSON(os.Stdout, seq); err != nil {
			log.Fatalf("encode: %v", err)
		}
	case "png", "svg":
		if *output == "" {
			log.Fatalf("-output is required for %s format", *format)
		}
		f, err := os.Create(*output)
		if err != nil {
			log.Fatalf("create %s: %v", *output, err)
		}
		defer f.Close()
		if *format == "png" {
			err = render.PNG(f, seq, *width, *height)
		} else {
			err = render.SVG(f, seq, *width, *height)
		}
		if err != nil {
			log.Fatalf("render: %v", err)
		}
		log.Printf("Gradient saved to %s (%dx%d)\n", *output, *width, *height)
	default:
		log.Fatalf("unknown format %q", *format)
	}
}

func percent(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return uint8(v)
}

func parseMode(s string) gradstop.Mode {
	if s == "simple" {
		return gradstop.ModeSimple
	}
	return gradstop.ModeSmart
}

func parseMetric(s string) gradstop.Metric {
	switch s {
	case "delta-e-76":
		return gradstop.DeltaE76
	case "euclidean-lab":
		return gradstop.EuclideanLab
	case "lch":
		return gradstop.CylindricalLCH
	default:
		return gradstop.DeltaE2000
	}
}
