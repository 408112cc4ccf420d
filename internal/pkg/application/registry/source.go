package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/opentransit/region-mgmt/internal/pkg/infrastructure/logging"
	"github.com/opentransit/region-mgmt/pkg/client"
	"github.com/opentransit/region-mgmt/pkg/types"
)

// NewSource returns a RegionSource backed by the regions REST API for remote
// fetches and a regions file on disk for the bundled fallback.
func NewSource(c client.RegionsClient, bundledFilePath string) RegionSource {
	return &source{
		client:          c,
		bundledFilePath: bundledFilePath,
	}
}

type source struct {
	client          client.RegionsClient
	bundledFilePath string
}

func (s *source) Remote(ctx context.Context) ([]types.Region, error) {
	return s.client.Regions(ctx)
}

func (s *source) Bundled(ctx context.Context) ([]types.Region, error) {
	logger := logging.GetLoggerFromContext(ctx)

	f, err := os.Open(s.bundledFilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open bundled regions file: %w", err)
	}
	defer f.Close()

	response := types.RegionsResponse{}

	err = json.NewDecoder(f).Decode(&response)
	if err != nil {
		return nil, fmt.Errorf("failed to decode bundled regions file: %w", err)
	}

	logger.Debug().Msgf("read %d regions from %s", len(response.Data.List), s.bundledFilePath)

	return response.Data.List, nil
}
