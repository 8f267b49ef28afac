// Command slimefield runs a default slime-mold simulation window.
package main

import (
	"flag"
	"log"

	"github.com/phanxgames/slimefield"
)

func main() {
	width := flag.Int("width", 512, "map width in pixels")
	height := flag.Int("height", 512, "map height in pixels")
	showFPS := flag.Bool("fps", true, "show the FPS/TPS overlay")
	flag.Parse()

	cfg := slimefield.DefaultConfigState(*width, *height)
	pipeline, err := slimefield.NewFramePipeline(cfg)
	if err != nil {
		log.Fatal(err)
	}

	log.Fatal(slimefield.Run(pipeline, slimefield.RunConfig{
		Title:   "slimefield",
		Width:   *width,
		Height:  *height,
		ShowFPS: *showFPS,
	}))
}
