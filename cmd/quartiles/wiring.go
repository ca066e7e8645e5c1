package main

import (
	"context"
	"time"

	"svw.info/quartiles/internal/config"
	"svw.info/quartiles/internal/dictionary"
	"svw.info/quartiles/internal/generator"
	"svw.info/quartiles/internal/hint"
	"svw.info/quartiles/internal/infrastructure/storage"
	"svw.info/quartiles/internal/solver"
	"svw.info/quartiles/internal/usecase"
	"svw.info/quartiles/internal/validator"
)

// buildService loads the dictionary and wires providers into the
// usecase service, mirroring the engine's intended host wiring.
func buildService(cfg config.Config) (*usecase.Service, error) {
	start := time.Now()
	lex, err := dictionary.Load(cfg.DictionaryPath)
	if err != nil {
		return nil, err
	}
	logger.Debug("dictionary loaded", "words", lex.Len(), "dur", time.Since(start).Round(time.Millisecond))

	gcfg := cfg.GeneratorConfig()
	s := solver.NewWordFinder(lex)
	g := generator.New(lex, s, gcfg)
	v := validator.New(gcfg.MinTotalPoints)
	h := hint.NewQuartileHinter(lex)
	st := storage.NewFS(cfg.PuzzleDir)
	return usecase.NewService(s, g, v, h, st), nil
}

func contextWithTimeout(parent context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	if d <= 0 {
		return context.WithCancel(parent)
	}
	return context.WithTimeout(parent, d)
}
