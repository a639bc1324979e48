package archive

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/temponet/pkg/config"
	apperrors "github.com/temponet/pkg/errors"
)

// Archive records and looks up run_records. A nil *Archive (Open with
// Enabled=false) is a valid no-op archive: Record silently does nothing,
// letting callers skip an `if archive.enabled` check at every call site.
type Archive struct {
	db *gorm.DB
}

// Open connects to cfg's backend and migrates the run_records table. If
// cfg.Enabled is false, Open returns a nil *Archive and a nil error; every
// method on a nil *Archive is then a no-op.
func Open(cfg config.ArchiveConfig) (*Archive, error) {
	if !cfg.Enabled {
		return nil, nil
	}

	db, err := newGormDB(cfg)
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&RunRecord{}); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeArchiveError, "failed to migrate run_records", err)
	}

	return &Archive{db: db}, nil
}

// Record inserts a completed run's summary. A nil receiver does nothing.
func (a *Archive) Record(ctx context.Context, rec *RunRecord) error {
	if a == nil {
		return nil
	}
	if err := a.db.WithContext(ctx).Create(rec).Error; err != nil {
		return apperrors.Wrap(apperrors.CodeArchiveError, "failed to record run", err)
	}
	return nil
}

// Lookup retrieves a previously recorded run by UUID. A nil receiver
// always reports not found.
func (a *Archive) Lookup(ctx context.Context, runUUID string) (*RunRecord, error) {
	if a == nil {
		return nil, apperrors.ErrNotFound
	}
	var rec RunRecord
	err := a.db.WithContext(ctx).Where("run_uuid = ?", runUUID).First(&rec).Error
	if err != nil {
		return nil, fmt.Errorf("archive: lookup %s: %w", runUUID, err)
	}
	return &rec, nil
}

// Close releases the underlying database connection. A nil receiver does
// nothing.
func (a *Archive) Close() error {
	if a == nil {
		return nil
	}
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
