package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"

	"github.com/opentransit/region-mgmt/internal/pkg/infrastructure/logging"
	"github.com/opentransit/region-mgmt/pkg/types"
)

var tracer = otel.Tracer("region-mgmt-client")

// RegionsClient fetches the current region catalog from a regions REST API
// endpoint, such as https://regions.onebusaway.org/regions-v3.json.
type RegionsClient interface {
	Regions(ctx context.Context) ([]types.Region, error)
}

type regionsClient struct {
	url        string
	httpClient http.Client
}

func NewRegionsClient(regionsURL string) RegionsClient {
	return &regionsClient{
		url: regionsURL,
		httpClient: http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   30 * time.Second,
		},
	}
}

func (c *regionsClient) Regions(ctx context.Context) ([]types.Region, error) {
	var err error
	ctx, span := tracer.Start(ctx, "fetch-regions")
	defer func() {
		if err != nil {
			span.RecordError(err)
		}
		span.End()
	}()

	logger := logging.GetLoggerFromContext(ctx)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		err = fmt.Errorf("failed to create http request: %w", err)
		return nil, err
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		err = fmt.Errorf("failed to retrieve regions from server: %w", err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err = fmt.Errorf("regions request failed with status code %d", resp.StatusCode)
		return nil, err
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		err = fmt.Errorf("failed to read response body: %w", err)
		return nil, err
	}

	response := types.RegionsResponse{}

	err = json.Unmarshal(respBody, &response)
	if err != nil {
		err = fmt.Errorf("failed to unmarshal response body: %w", err)
		return nil, err
	}

	if response.Code != 0 && response.Code != http.StatusOK {
		err = fmt.Errorf("regions api responded with code %d: %s", response.Code, response.Text)
		return nil, err
	}

	logger.Debug().Msgf("server returned %d regions", len(response.Data.List))

	return response.Data.List, nil
}
