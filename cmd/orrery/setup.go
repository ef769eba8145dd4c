package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/san-kum/orrery/internal/catalog"
	"github.com/san-kum/orrery/internal/config"
	"github.com/san-kum/orrery/internal/present"
	"github.com/san-kum/orrery/internal/sim"
)

// loadConfig layers the preset, config file, environment and flags.
func loadConfig() (*config.Config, error) {
	base := config.DefaultConfig()
	if preset != "" {
		base = config.GetPreset(preset)
		if base == nil {
			return nil, fmt.Errorf("unknown preset %q (have %s)", preset, strings.Join(config.ListPresets(), ", "))
		}
	}

	cfg, err := config.LoadOver(configFile, base)
	if err != nil {
		return nil, err
	}
	if catalogFile != "" {
		cfg.Catalog.File = catalogFile
	}
	if seed != 0 {
		cfg.Sim.Seed = seed
	}
	return cfg, nil
}

// loadBodies reads the catalog file if one is configured and fetches from
// the API otherwise. The returned source names where the bodies came from.
func loadBodies(ctx context.Context, cfg *config.Config, logger *slog.Logger) ([]catalog.Body, string, error) {
	if cfg.Catalog.File != "" {
		bodies, err := catalog.LoadFile(cfg.Catalog.File)
		if err != nil {
			return nil, "", fmt.Errorf("loading catalog: %w", err)
		}
		logger.Info("catalog loaded", "file", cfg.Catalog.File, "bodies", len(bodies))
		return bodies, cfg.Catalog.File, nil
	}

	client := catalog.NewClient(cfg.Catalog.APIURL, cfg.Catalog.Timeout, cfg.Catalog.RequestsPerSecond, logger)
	bodies, err := client.Fetch(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("fetching catalog: %w", err)
	}
	return bodies, client.BaseURL(), nil
}

type session struct {
	cfg    *config.Config
	logger *slog.Logger
	bodies []catalog.Body
	source string
	seed   int64
	state  *sim.State
}

// setup loads config and bodies and lays out the orbits.
func setup(ctx context.Context) (*session, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	logger := cfg.Log.NewLogger(os.Stderr)

	bodies, source, err := loadBodies(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	layoutSeed := cfg.Sim.Seed
	if layoutSeed == 0 {
		layoutSeed = time.Now().UnixNano()
	}
	state, err := sim.Layout(bodies, cfg.Sim.Speeds, rand.New(rand.NewSource(layoutSeed)))
	if err != nil {
		return nil, err
	}
	logger.Debug("layout ready", "seed", layoutSeed, "orbits", len(state.MajorRadii))

	return &session{
		cfg:    cfg,
		logger: logger,
		bodies: bodies,
		source: source,
		seed:   layoutSeed,
		state:  state,
	}, nil
}

func (s *session) offset() present.Vec3 {
	o := s.cfg.Sim.CentralOffset
	return present.Vec3{X: o[0], Y: o[1], Z: o[2]}
}
