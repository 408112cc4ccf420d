package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"

	"github.com/opentransit/region-mgmt/internal/pkg/application/registry"
	"github.com/opentransit/region-mgmt/internal/pkg/infrastructure/logging"
	"github.com/opentransit/region-mgmt/internal/pkg/presentation/api/auth"
	"github.com/opentransit/region-mgmt/pkg/types"
)

var tracer = otel.Tracer("region-mgmt/api")

func RegisterHandlers(ctx context.Context, router *chi.Mux, policies io.Reader, svc registry.RegionRegistry) (*chi.Mux, error) {

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	logger := logging.GetLoggerFromContext(ctx)

	// Handle valid / invalid tokens.
	authenticator, err := auth.NewAuthenticator(ctx, logger, policies)
	if err != nil {
		return nil, fmt.Errorf("failed to create api authenticator: %w", err)
	}

	router.Route("/api/v0", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(authenticator)

			r.Route("/regions", func(r chi.Router) {
				r.Get("/", getRegionsHandler(logger, svc))
				r.Get("/closest", getClosestRegionHandler(logger, svc))
			})
		})
	})

	return router, nil
}

func getRegionsHandler(log zerolog.Logger, svc registry.RegionRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "get-regions")
		defer func() {
			if err != nil {
				span.RecordError(err)
			}
			span.End()
		}()

		ctx = logging.NewContextWithLogger(ctx, log)

		forceReload, _ := strconv.ParseBool(r.URL.Query().Get("forceReload"))

		regions, err := svc.Regions(ctx, forceReload)
		if err != nil {
			if errors.Is(err, registry.ErrCatalogUnavailable) {
				log.Error().Err(err).Msg("region catalog unavailable")
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}

			log.Error().Err(err).Msg("unable to fetch regions")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeRegionsResponse(w, log, regions)
	}
}

func getClosestRegionHandler(log zerolog.Logger, svc registry.RegionRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "get-closest-region")
		defer func() {
			if err != nil {
				span.RecordError(err)
			}
			span.End()
		}()

		ctx = logging.NewContextWithLogger(ctx, log)

		lat, latErr := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
		lon, lonErr := strconv.ParseFloat(r.URL.Query().Get("lon"), 64)

		if latErr != nil || lonErr != nil {
			err = errors.New("lat and lon are required query parameters")
			log.Info().Msg(err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		closest, err := svc.ClosestRegion(ctx, &types.Location{Latitude: lat, Longitude: lon})
		if err != nil {
			if errors.Is(err, registry.ErrCatalogUnavailable) {
				log.Error().Err(err).Msg("region catalog unavailable")
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}

			log.Error().Err(err).Msg("unable to find closest region")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		if closest == nil {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		b, err := json.Marshal(closest)
		if err != nil {
			log.Error().Err(err).Msg("unable to marshal region")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(b)
	}
}

func writeRegionsResponse(w http.ResponseWriter, log zerolog.Logger, regions []types.Region) {
	response := types.RegionsResponse{
		Version:     2,
		Code:        http.StatusOK,
		Text:        "OK",
		CurrentTime: time.Now().UnixMilli(),
	}
	response.Data.List = regions

	b, err := json.Marshal(response)
	if err != nil {
		log.Error().Err(err).Msg("unable to marshal regions")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
