package regions

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/opentransit/region-mgmt/internal/pkg/infrastructure/logging"
	"github.com/opentransit/region-mgmt/internal/pkg/infrastructure/repositories/database"
	"github.com/opentransit/region-mgmt/pkg/types"
)

var ErrRepositoryError = fmt.Errorf("could not fetch data from repository")

//go:generate moq -rm -out regionrepository_mock.go . RegionRepository

// RegionRepository stores the region catalog in a relational database, one
// row per region plus one row per coverage patch.
type RegionRepository interface {
	GetAll(ctx context.Context) ([]types.Region, error)
	ReplaceAll(ctx context.Context, regions []types.Region) error
}

func NewRegionRepository(connect database.ConnectorFunc, experimentalOptIn bool) (RegionRepository, error) {
	impl, _, err := connect()
	if err != nil {
		return nil, err
	}

	err = impl.AutoMigrate(&Region{}, &RegionBounds{})
	if err != nil {
		return nil, err
	}

	return &regionRepository{
		db:                impl,
		experimentalOptIn: experimentalOptIn,
	}, nil
}

type regionRepository struct {
	db                *gorm.DB
	experimentalOptIn bool
}

func (r *regionRepository) GetAll(ctx context.Context) ([]types.Region, error) {
	logger := logging.GetLoggerFromContext(ctx)

	var entities []Region

	result := r.db.WithContext(ctx).Preload("Bounds").Order("region_id").Find(&entities)
	if result.Error != nil {
		logger.Error().Err(result.Error).Msg("gorm error")
		return nil, ErrRepositoryError
	}

	regions := make([]types.Region, 0, len(entities))
	for _, e := range entities {
		regions = append(regions, toModel(e))
	}

	return regions, nil
}

// ReplaceAll deletes every stored region and bound and inserts the usable
// subset of the given catalog, all within a single transaction. Regions that
// fail the usability check are never written.
func (r *regionRepository) ReplaceAll(ctx context.Context, regions []types.Region) error {
	logger := logging.GetLoggerFromContext(ctx)

	entities := make([]Region, 0, len(regions))

	for _, region := range regions {
		if !region.IsUsable(r.experimentalOptIn) {
			logger.Debug().Msgf("skipping persist of region %s", region.RegionName)
			continue
		}

		entities = append(entities, toEntity(region))
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		session := tx.Session(&gorm.Session{AllowGlobalUpdate: true})

		if err := session.Delete(&RegionBounds{}).Error; err != nil {
			return err
		}

		if err := session.Delete(&Region{}).Error; err != nil {
			return err
		}

		if len(entities) == 0 {
			return nil
		}

		return tx.Create(&entities).Error
	})

	if err != nil {
		logger.Error().Err(err).Msg("gorm error")
		return ErrRepositoryError
	}

	logger.Debug().Msgf("saved %d regions to store", len(entities))

	return nil
}
