package registry

import (
	"context"
	"encoding/json"

	"github.com/diwise/messaging-golang/pkg/messaging"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"

	"github.com/opentransit/region-mgmt/internal/pkg/infrastructure/logging"
	"github.com/opentransit/region-mgmt/pkg/types"
)

func ReloadRequestedHandler(messenger messaging.MsgContext, svc RegionRegistry) messaging.TopicMessageHandler {
	return func(ctx context.Context, msg amqp.Delivery, logger zerolog.Logger) {
		request := types.ReloadRequested{}

		err := json.Unmarshal(msg.Body, &request)
		if err != nil {
			logger.Error().Err(err).Msgf("failed to unmarshal message from %s", msg.RoutingKey)
			return
		}

		if request.RequestedBy != "" {
			logger = logger.With().Str("requestedBy", request.RequestedBy).Logger()
		}

		ctx = logging.NewContextWithLogger(ctx, logger)

		regions, err := svc.Regions(ctx, true)
		if err != nil {
			logger.Error().Err(err).Msg("forced reload of region catalog failed")
			return
		}

		logger.Info().Msgf("forced reload produced a catalog of %d regions", len(regions))
	}
}
