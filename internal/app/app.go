package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/five82/mosdash/internal/config"
	"github.com/five82/mosdash/internal/palette"
	"github.com/five82/mosdash/internal/rotation"
	"github.com/five82/mosdash/internal/state"
	"github.com/five82/mosdash/internal/ui"
	"github.com/five82/mosdash/internal/weather"
	"github.com/five82/mosdash/internal/widget"
	"github.com/five82/mosdash/internal/worldclock"
)

// Options configure the mosdash application.
type Options struct {
	ConfigPath string
	Seed       uint64 // zero picks a random tile layout
}

// Run boots the widget until the context is cancelled or the user quits.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	closeLog, err := setupLogging(cfg.LogFile)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer closeLog()

	clock, err := worldclock.NewClient(worldclock.Options{BaseURL: cfg.TimeURL, Zone: cfg.TimeZone})
	if err != nil {
		return fmt.Errorf("init time client: %w", err)
	}
	temps, err := weather.NewClient(weather.Options{
		BaseURL: cfg.WeatherURL,
		CityID:  cfg.CityID,
		Keys:    cfg.APIKeys,
	})
	if err != nil {
		return fmt.Errorf("init weather client: %w", err)
	}

	pool, err := rotation.New(palette.Reference(), rotation.DefaultSlots, newRand(opts.Seed))
	if err != nil {
		return fmt.Errorf("init tiles: %w", err)
	}

	store := &state.Store{}
	controller := widget.NewController(pool, store)
	controller.Paint()

	g, gctx := errgroup.WithContext(ctx)
	runCtx, cancel := context.WithCancel(gctx)
	defer cancel()

	g.Go(func() error {
		RunPoller(runCtx, "time", timePollInterval,
			publishJob("time", clock.Now, controller.PublishTime))
		return nil
	})
	g.Go(func() error {
		RunPoller(runCtx, "temperature", temperaturePollInterval,
			publishJob("temperature", temps.Temperature, controller.PublishTemperature))
		return nil
	})
	g.Go(func() error {
		// Quitting the UI stops the pollers.
		defer cancel()
		err := ui.Run(ui.Options{
			Context:    runCtx,
			Store:      store,
			Controller: controller,
			ThemeName:  cfg.Theme,
		})
		if errors.Is(err, tea.ErrProgramKilled) && runCtx.Err() != nil {
			return nil
		}
		return err
	})

	return g.Wait()
}

func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed))
}

// setupLogging sends the standard logger to path. The terminal belongs to the
// UI, so with no path logs are discarded.
func setupLogging(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	f, err := tea.LogToFile(path, "mosdash")
	if err != nil {
		return nil, err
	}
	return func() { _ = f.Close() }, nil
}
