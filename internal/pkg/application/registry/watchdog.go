package registry

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/opentransit/region-mgmt/internal/pkg/infrastructure/logging"
)

const DefaultCheckInterval = 1 * time.Hour

// Watchdog forces a reload of the region catalog once the last successful
// refresh from the server is older than the configured max age. The bundled
// and stored catalogs never count as fresh.
type Watchdog interface {
	Start()
	Stop()
}

type watchdogImpl struct {
	done chan bool
	log  zerolog.Logger

	registry      RegionRegistry
	maxAge        time.Duration
	checkInterval time.Duration
}

func NewWatchdog(registry RegionRegistry, maxAge time.Duration, log zerolog.Logger) Watchdog {
	w := &watchdogImpl{
		log:           log,
		registry:      registry,
		maxAge:        maxAge,
		checkInterval: DefaultCheckInterval,
		done:          make(chan bool),
	}

	return w
}

func (w *watchdogImpl) Start() {
	go backgroundWorker(w, w.done)
}

func (w *watchdogImpl) Stop() {
	w.done <- true
}

func backgroundWorker(w *watchdogImpl, done <-chan bool) {
	ticker := time.NewTicker(w.checkInterval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			lastRefresh := w.registry.LastRefresh()
			if time.Since(lastRefresh) < w.maxAge {
				continue
			}

			w.log.Info().Msgf("region catalog is older than %s, forcing a reload", w.maxAge)

			ctx := logging.NewContextWithLogger(context.Background(), w.log)

			_, err := w.registry.Regions(ctx, true)
			if err != nil {
				w.log.Error().Err(err).Msg("scheduled reload of region catalog failed")
			}
		}
	}
}
