// Package storage defines persistence contracts for sprawl content catalogs.
package storage

import (
	"context"
	"time"

	apperrors "github.com/louisbranch/sprawlsheet/internal/platform/errors"
	"github.com/louisbranch/sprawlsheet/internal/systems/shadowrun"
)

// ErrNotFound indicates a requested catalog record is missing.
var ErrNotFound = apperrors.New(apperrors.CodeNotFound, "record not found")

// QualityEntry is one stored quality definition with its catalog provenance.
type QualityEntry struct {
	Locale     string
	Source     string
	Definition shadowrun.QualityDefinition
	UpdatedAt  time.Time
}

// QualityPage is one page of quality entries ordered by name.
type QualityPage struct {
	Entries       []QualityEntry
	NextPageToken string
}

// ContentStore persists quality catalogs per locale.
type ContentStore interface {
	PutQuality(ctx context.Context, entry QualityEntry) error
	PutQualities(ctx context.Context, entries []QualityEntry) error
	GetQuality(ctx context.Context, locale, name string) (QualityEntry, error)
	ListQualities(ctx context.Context, locale string, pageSize int, pageToken string) (QualityPage, error)
	LoadGameData(ctx context.Context, locale string) (*shadowrun.GameData, error)
}
