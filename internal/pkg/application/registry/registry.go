package registry

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/opentransit/region-mgmt/internal/pkg/application/events"
	"github.com/opentransit/region-mgmt/internal/pkg/infrastructure/logging"
	"github.com/opentransit/region-mgmt/pkg/types"
)

var ErrCatalogUnavailable = errors.New("region catalog could not be retrieved from any source")

//go:generate moq -rm -out regionstore_mock.go . RegionStore

// RegionStore is the durable home of the region catalog. GetAll returns the
// stored catalog in id order, or an empty list when nothing usable is stored.
// ReplaceAll atomically swaps the stored catalog for the given one.
type RegionStore interface {
	GetAll(ctx context.Context) ([]types.Region, error)
	ReplaceAll(ctx context.Context, regions []types.Region) error
}

//go:generate moq -rm -out regionsource_mock.go . RegionSource

// RegionSource provides region catalogs from outside the store: Remote
// fetches from the regions REST API, Bundled reads the static catalog that
// ships with the deployment. Bundled data is a last resort and is never
// fresher than remote or stored data.
type RegionSource interface {
	Remote(ctx context.Context) ([]types.Region, error)
	Bundled(ctx context.Context) ([]types.Region, error)
}

//go:generate moq -rm -out regionregistry_mock.go . RegionRegistry

type RegionRegistry interface {
	Regions(ctx context.Context, forceReload bool) ([]types.Region, error)
	ClosestRegion(ctx context.Context, loc *types.Location) (*types.Region, error)
	LastRefresh() time.Time
	RegisterTopicMessageHandlers() error
}

type registry struct {
	store     RegionStore
	source    RegionSource
	messenger messaging.MsgContext
	notifier  events.EventSender

	experimentalOptIn bool

	// guards the whole resolve/persist path so that a reader never races a
	// half committed catalog
	mu          sync.Mutex
	lastRefresh time.Time
	now         func() time.Time
}

func New(store RegionStore, source RegionSource, messenger messaging.MsgContext, notifier events.EventSender, experimentalOptIn bool) RegionRegistry {
	return &registry{
		store:             store,
		source:            source,
		messenger:         messenger,
		notifier:          notifier,
		experimentalOptIn: experimentalOptIn,
		now:               time.Now,
	}
}

// Regions returns the region catalog from the server, the local store, or if
// both fail, the regions file bundled with the deployment. The store is
// preferred unless forceReload is set, with the server as first fallback, so
// repeated calls stay cheap until a caller forces a reload.
func (r *registry) Regions(ctx context.Context, forceReload bool) ([]types.Region, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	logger := logging.GetLoggerFromContext(ctx)

	if !forceReload {
		if regions, ok := r.fromStore(ctx); ok {
			logger.Debug().Msg("retrieved region catalog from local store")
			return regions, nil
		}
	}

	regions, err := r.source.Remote(ctx)
	if err != nil || len(regions) == 0 {
		if err != nil {
			logger.Error().Err(err).Msg("could not retrieve region catalog from server")
		} else {
			logger.Info().Msg("region catalog retrieved from server was empty")
		}

		if forceReload {
			// the store read was skipped above, so give it a second chance
			// before falling back to bundled data
			if stored, ok := r.fromStore(ctx); ok {
				logger.Debug().Msg("retrieved region catalog from local store")
				return stored, nil
			}
		}

		regions, err = r.source.Bundled(ctx)
		if err != nil || len(regions) == 0 {
			if err != nil {
				logger.Error().Err(err).Msg("could not retrieve bundled region catalog")
			}
			return nil, ErrCatalogUnavailable
		}

		logger.Info().Msgf("recovered %d regions from the bundled catalog", len(regions))

		return r.commit(ctx, regions, "bundled")
	}

	logger.Info().Msgf("retrieved %d regions from server", len(regions))
	r.lastRefresh = r.now()

	return r.commit(ctx, regions, "remote")
}

// ClosestRegion resolves the catalog without forcing a reload and returns
// the closest usable region, or nil if none qualifies.
func (r *registry) ClosestRegion(ctx context.Context, loc *types.Location) (*types.Region, error) {
	regions, err := r.Regions(ctx, false)
	if err != nil {
		return nil, err
	}

	return ClosestRegion(ctx, regions, loc, r.experimentalOptIn), nil
}

func (r *registry) LastRefresh() time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.lastRefresh
}

func (r *registry) RegisterTopicMessageHandlers() error {
	if r.messenger == nil {
		return nil
	}

	r.messenger.RegisterTopicMessageHandler((&types.ReloadRequested{}).TopicName(), ReloadRequestedHandler(r.messenger, r))
	return nil
}

func (r *registry) fromStore(ctx context.Context) ([]types.Region, bool) {
	regions, err := r.store.GetAll(ctx)
	if err != nil {
		// a broken store is not fatal here, the fallback chain continues
		logger := logging.GetLoggerFromContext(ctx)
		logger.Error().Err(err).Msg("could not read region catalog from store")
		return nil, false
	}

	return regions, len(regions) > 0
}

// commit persists a catalog that originated outside the store and announces
// the refresh. The catalog is returned as is, including regions the store
// chose not to persist.
func (r *registry) commit(ctx context.Context, regions []types.Region, origin string) ([]types.Region, error) {
	logger := logging.GetLoggerFromContext(ctx)

	err := r.store.ReplaceAll(ctx, regions)
	if err != nil {
		// the catalog in hand is still good, so serve it and let the next
		// resolve try persisting again
		logger.Error().Err(err).Msg("could not save region catalog to store")
		return regions, nil
	}

	evt := &types.CatalogUpdated{
		Source:      origin,
		RegionCount: len(regions),
		Timestamp:   r.now().UTC(),
	}

	if r.messenger != nil {
		if err := r.messenger.PublishOnTopic(ctx, evt); err != nil {
			logger.Error().Err(err).Msg("could not publish catalog updated message")
		}
	}

	if r.notifier != nil {
		if err := r.notifier.Send(ctx, *evt); err != nil {
			logger.Error().Err(err).Msg("could not notify catalog subscribers")
		}
	}

	return regions, nil
}
