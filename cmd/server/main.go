package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/abaddouh/placehold/internal/fonts"
	"github.com/abaddouh/placehold/internal/intercept"
	"github.com/abaddouh/placehold/internal/render"
	"github.com/abaddouh/placehold/internal/server"
)

func main() {
	port := flag.Int("port", 8080, "Port to serve placeholder images on")
	fontPath := flag.String("font", os.Getenv("PLACEHOLD_FONT"), "Path to a TTF font file (default: embedded Go Regular)")
	logFile := flag.String("logfile", os.Getenv("PLACEHOLD_LOGFILE"), "Optional rotating log file")
	debug := flag.Bool("debug", false, "Enable debug logging")

	flag.Parse()

	log := newLogger(*logFile, *debug)

	src := fonts.Default()
	if *fontPath != "" {
		var err error
		src, err = fonts.Load(*fontPath)
		if err != nil {
			log.Fatal().Err(err).Msg("load font")
		}
	}

	ic := intercept.New(render.New(src), log)
	srv := server.New(*port, ic, log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := src.Watch(ctx, log); err != nil {
			log.Error().Err(err).Msg("font watcher error")
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := srv.Start(ctx); err != nil {
			log.Error().Err(err).Msg("server error")
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c
	log.Info().Msg("shutting down")
	cancel()

	wg.Wait()
	log.Info().Msg("shutdown complete")
}

func newLogger(logFile string, debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	var w zerolog.LevelWriter = zerolog.MultiLevelWriter(zerolog.ConsoleWriter{Out: os.Stderr})
	if logFile != "" {
		w = zerolog.MultiLevelWriter(
			zerolog.ConsoleWriter{Out: os.Stderr},
			&lumberjack.Logger{Filename: logFile, MaxSize: 10, MaxBackups: 3},
		)
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
