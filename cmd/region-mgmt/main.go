package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"runtime/debug"
	"strconv"
	"time"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/go-chi/chi/v5"
	"github.com/opentransit/region-mgmt/internal/pkg/application/events"
	"github.com/opentransit/region-mgmt/internal/pkg/application/registry"
	"github.com/opentransit/region-mgmt/internal/pkg/infrastructure/logging"
	"github.com/opentransit/region-mgmt/internal/pkg/infrastructure/repositories/database"
	"github.com/opentransit/region-mgmt/internal/pkg/infrastructure/repositories/database/regions"
	"github.com/opentransit/region-mgmt/internal/pkg/infrastructure/router"
	"github.com/opentransit/region-mgmt/internal/pkg/infrastructure/tracing"
	"github.com/opentransit/region-mgmt/internal/pkg/presentation/api"
	"github.com/opentransit/region-mgmt/pkg/client"
	"github.com/rs/zerolog"
)

const serviceName string = "region-mgmt"

const defaultRegionsURL string = "https://regions.onebusaway.org/regions-v3.json"

var regionsFilePath string
var policiesFilePath string
var notificationsFilePath string

func main() {
	serviceVersion := version()

	ctx, logger := logging.NewLogger(context.Background(), serviceName, serviceVersion)
	logger.Info().Msg("starting up ...")

	cleanup, err := tracing.Init(ctx, logger, serviceName, serviceVersion)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to init tracing")
	}
	defer cleanup()

	flag.StringVar(&regionsFilePath, "regions", "/opt/opentransit/config/regions.json", "A bundled catalog of known regions")
	flag.StringVar(&policiesFilePath, "policies", "/opt/opentransit/config/authz.rego", "An authorization policy file")
	flag.StringVar(&notificationsFilePath, "notifications", "/opt/opentransit/config/notifications.yaml", "Configuration file for catalog update notifications")
	flag.Parse()

	messenger, err := messaging.Initialize(messaging.LoadConfiguration(serviceName, logger))
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to init messenger")
	}

	svc, r := initialize(ctx, logger, messenger, policiesFilePath, notificationsFilePath)

	maxAge := catalogMaxAge(logger)
	watchdog := registry.NewWatchdog(svc, maxAge, logger)
	watchdog.Start()
	defer watchdog.Stop()

	apiPort := env.GetVariableOrDefault(logger, "SERVICE_PORT", "8080")

	logger.Info().Str("port", apiPort).Msg("starting to listen for connections")

	err = http.ListenAndServe(":"+apiPort, r)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to listen for connections")
	}
}

func initialize(ctx context.Context, logger zerolog.Logger, messenger messaging.MsgContext, policiesFile, notificationsFile string) (registry.RegionRegistry, *chi.Mux) {
	experimentalOptIn, _ := strconv.ParseBool(env.GetVariableOrDefault(logger, "REGIONS_EXPERIMENTAL_OPTIN", "false"))

	repo, err := regions.NewRegionRepository(newConnector(logger), experimentalOptIn)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	regionsURL := env.GetVariableOrDefault(logger, "REGIONS_API_URL", defaultRegionsURL)
	source := registry.NewSource(client.NewRegionsClient(regionsURL), regionsFilePath)

	svc := registry.New(repo, source, messenger, newNotifier(logger, notificationsFile), experimentalOptIn)

	err = svc.RegisterTopicMessageHandlers()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to register topic message handlers")
	}

	policies, err := os.Open(policiesFile)
	if err != nil {
		logger.Fatal().Err(err).Msg("unable to open opa policy file")
	}
	defer policies.Close()

	r, err := api.RegisterHandlers(ctx, router.New(serviceName), policies, svc)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to register handlers")
	}

	return svc, r
}

func newConnector(logger zerolog.Logger) database.ConnectorFunc {
	if os.Getenv("REGIONS_SQLDB_HOST") != "" {
		return database.NewPostgreSQLConnector(logger)
	}

	logger.Info().Msg("no sql database configured, using in memory sqlite")
	return database.NewSQLiteConnector(logger)
}

func newNotifier(logger zerolog.Logger, notificationsFile string) events.EventSender {
	cfgFile, err := os.Open(notificationsFile)
	if err != nil {
		logger.Warn().Err(err).Msg("catalog update notifications are disabled")
		return nil
	}
	defer cfgFile.Close()

	cfg, err := events.LoadConfiguration(cfgFile)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to parse notification configuration")
	}

	return events.New(cfg)
}

func catalogMaxAge(logger zerolog.Logger) time.Duration {
	maxAge, err := time.ParseDuration(env.GetVariableOrDefault(logger, "REGIONS_MAX_AGE", "168h"))
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid catalog max age")
	}
	return maxAge
}

func version() string {
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}

	buildSettings := buildInfo.Settings
	infoMap := map[string]string{}
	for _, s := range buildSettings {
		infoMap[s.Key] = s.Value
	}

	sha := infoMap["vcs.revision"]
	if infoMap["vcs.modified"] == "true" {
		sha += "+"
	}

	return sha
}
