package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog"

	"github.com/abaddouh/placehold/internal/fonts"
	"github.com/abaddouh/placehold/internal/render"
)

func main() {
	width := flag.Int("width", render.DefaultWidth, "Width of the placeholder image")
	height := flag.Int("height", render.DefaultHeight, "Height of the placeholder image")
	text := flag.String("text", render.DefaultText, "Text to display on the placeholder image")
	fgcolor := flag.String("fgcolor", render.DefaultForeground, "Text color as 6 hex digits")
	bgcolor := flag.String("bgcolor", render.DefaultBackground, "Background color as 6 hex digits")
	fontPath := flag.String("font", "", "Path to a TTF font file (default: embedded Go Regular)")
	outputPath := flag.String("output", "placeholder.png", "Output path for the placeholder image")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	src := fonts.Default()
	if *fontPath != "" {
		var err error
		src, err = fonts.Load(*fontPath)
		if err != nil {
			log.Fatal().Err(err).Msg("load font")
		}
	}

	data, err := render.New(src).RenderPNG(render.Params{
		Width:      *width,
		Height:     *height,
		Text:       *text,
		Foreground: render.ParseHex(*fgcolor),
		Background: render.ParseHex(*bgcolor),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("render placeholder image")
	}

	if err := os.WriteFile(*outputPath, data, 0o644); err != nil {
		log.Fatal().Err(err).Msg("write placeholder image")
	}

	log.Info().Str("output", *outputPath).Msg("placeholder image created")
}
