// Package model contains the GORM models of the persistence layer.
package model

import (
	"time"

	"gorm.io/datatypes"
)

// CatalogSnapshotModel is the GORM-specific struct for the 'catalog_snapshots' table.
// Each row holds one full catalog document keyed by its storage key.
type CatalogSnapshotModel struct {
	Key       string         `gorm:"type:varchar(128);primaryKey"`
	Payload   datatypes.JSON `gorm:"type:jsonb;not null"`
	Checksum  string         `gorm:"type:char(64);not null"`
	Size      int64          `gorm:"not null;check:size >= 0"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CatalogSnapshotModel) TableName() string {
	return "catalog_snapshots"
}
