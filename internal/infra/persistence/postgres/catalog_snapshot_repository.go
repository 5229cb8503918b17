// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	domainerrors "coshare/internal/domain/errors"
	"coshare/internal/domain/repository"
	"coshare/internal/infra/persistence/model"
	"coshare/internal/util"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// catalogSnapshotRepository implements the repository.CatalogSnapshotRepository interface.
type catalogSnapshotRepository struct {
	db  *gorm.DB
	key string
}

// NewCatalogSnapshotRepository is the constructor for catalogSnapshotRepository.
func NewCatalogSnapshotRepository(db *gorm.DB, key string) repository.CatalogSnapshotRepository {
	return &catalogSnapshotRepository{
		db:  db,
		key: key,
	}
}

// Load retrieves the snapshot row for the configured key.
func (repo *catalogSnapshotRepository) Load(ctx context.Context) ([]byte, error) {
	var snapshotM model.CatalogSnapshotModel

	if err := repo.db.WithContext(ctx).
		Where("key = ?", repo.key).
		First(&snapshotM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSnapshotNotFound
		}

		return nil, errors.Wrap(err, "failed to find catalog snapshot")
	}

	return []byte(snapshotM.Payload), nil
}

// Save upserts the snapshot row in a single statement.
func (repo *catalogSnapshotRepository) Save(ctx context.Context, snapshot []byte) error {
	snapshotM := &model.CatalogSnapshotModel{
		Key:       repo.key,
		Payload:   datatypes.JSON(snapshot),
		Checksum:  util.Checksum(snapshot),
		Size:      int64(len(snapshot)),
		UpdatedAt: time.Now().UTC(),
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "checksum", "size", "updated_at"}),
		}).
		Create(snapshotM).Error
	if err != nil {
		switch {
		case isInvalidJSON(err):
			return domainerrors.NewDatabaseExecuteError(err, "catalog snapshot is not valid JSON")
		case isNotNullConstraintViolation(err), isCheckConstraintViolation(err):
			return domainerrors.NewDatabaseExecuteError(err, "catalog snapshot violates table constraints")
		default:
			return domainerrors.NewDatabaseExecuteError(err, "failed to save catalog snapshot")
		}
	}

	return nil
}
