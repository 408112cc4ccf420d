package events

import (
	"context"
	"errors"
	"fmt"
	"io"

	cloudevents "github.com/cloudevents/sdk-go/v2"
	"golang.org/x/sys/unix"
	yaml "gopkg.in/yaml.v2"

	"github.com/opentransit/region-mgmt/internal/pkg/infrastructure/logging"
	"github.com/opentransit/region-mgmt/pkg/types"
)

const catalogUpdatedEventType string = "transit.regions.catalogUpdated"

// EventSender notifies external subscribers that the region catalog has been
// refreshed, so that they can re-resolve their region if needed.
type EventSender interface {
	Send(ctx context.Context, msg types.CatalogUpdated) error
}

type eventSender struct {
	subscribers map[string][]SubscriberConfig
}

func New(cfg *Config) EventSender {
	e := &eventSender{
		subscribers: make(map[string][]SubscriberConfig),
	}

	if cfg != nil {
		for _, n := range cfg.Notifications {
			e.subscribers[n.Type] = n.Subscribers
		}
	}

	return e
}

func (e *eventSender) Send(ctx context.Context, msg types.CatalogUpdated) error {
	if s, ok := e.subscribers[catalogUpdatedEventType]; !ok || len(s) == 0 {
		return nil
	}

	c, err := cloudevents.NewClientHTTP()
	if err != nil {
		return err
	}

	event := cloudevents.NewEvent()
	event.SetID(fmt.Sprintf("%s:%d", msg.Source, msg.Timestamp.Unix()))
	event.SetTime(msg.Timestamp)
	event.SetSource("github.com/opentransit/region-mgmt")
	event.SetType(catalogUpdatedEventType)

	err = event.SetData(cloudevents.ApplicationJSON, msg)
	if err != nil {
		return err
	}

	logger := logging.GetLoggerFromContext(ctx)

	for _, s := range e.subscribers[catalogUpdatedEventType] {
		ctxWithTarget := cloudevents.ContextWithTarget(ctx, s.Endpoint)

		result := c.Send(ctxWithTarget, event)
		if cloudevents.IsUndelivered(result) || errors.Is(result, unix.ECONNREFUSED) {
			logger.Error().Err(result).Msgf("failed to send event to %s", s.Endpoint)
			err = fmt.Errorf("%w", result)
		}
	}

	return err
}

type SubscriberConfig struct {
	Endpoint string `yaml:"endpoint"`
}

type Notification struct {
	ID          string             `yaml:"id"`
	Name        string             `yaml:"name"`
	Type        string             `yaml:"type"`
	Subscribers []SubscriberConfig `yaml:"subscribers"`
}

type Config struct {
	Notifications []Notification `yaml:"notifications"`
}

func LoadConfiguration(data io.Reader) (*Config, error) {
	buf, err := io.ReadAll(data)
	if err != nil {
		return nil, err
	}

	cfg := Config{}
	if err := yaml.Unmarshal(buf, &cfg); err == nil {
		return &cfg, nil
	} else {
		return nil, err
	}
}
