package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/louisbranch/sprawlsheet/internal/storage"
	"github.com/louisbranch/sprawlsheet/internal/systems/shadowrun"
)

const qualityColumns = `locale, name, source, category, cost, instance_limit,
        effects_json, excludes_json, requires_json, updated_at`

// querier is the subset of *sql.DB and *sql.Tx the write path needs.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// PutQuality inserts or replaces one quality entry.
func (s *Store) PutQuality(ctx context.Context, entry storage.QualityEntry) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	return s.putQuality(ctx, s.sqlDB, entry)
}

// PutQualities writes every entry in one transaction; either all land or
// none do.
func (s *Store) PutQualities(ctx context.Context, entries []storage.QualityEntry) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin quality import: %w", err)
	}
	for _, entry := range entries {
		if err := s.putQuality(ctx, tx, entry); err != nil {
			_ = tx.Rollback()
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit quality import: %w", err)
	}
	return nil
}

func (s *Store) putQuality(ctx context.Context, q querier, entry storage.QualityEntry) error {
	locale := strings.TrimSpace(entry.Locale)
	def := entry.Definition
	name := strings.TrimSpace(def.Name)
	if locale == "" {
		return fmt.Errorf("locale is required")
	}
	if name == "" {
		return fmt.Errorf("quality name is required")
	}

	effectsJSON, err := shadowrun.EncodeEffects(def.Effects)
	if err != nil {
		return fmt.Errorf("encode quality %s effects: %w", name, err)
	}
	excludesJSON, err := marshalNames(def.Excludes)
	if err != nil {
		return fmt.Errorf("marshal quality %s excludes: %w", name, err)
	}
	requiresJSON, err := marshalNames(def.Requires)
	if err != nil {
		return fmt.Errorf("marshal quality %s requires: %w", name, err)
	}
	updatedAt := entry.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = s.now()
	}

	_, err = q.ExecContext(ctx,
		`INSERT INTO qualities (`+qualityColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (locale, name) DO UPDATE SET
		   source = excluded.source,
		   category = excluded.category,
		   cost = excluded.cost,
		   instance_limit = excluded.instance_limit,
		   effects_json = excluded.effects_json,
		   excludes_json = excluded.excludes_json,
		   requires_json = excluded.requires_json,
		   updated_at = excluded.updated_at`,
		locale,
		name,
		strings.TrimSpace(entry.Source),
		string(def.Category),
		def.Cost,
		def.Limit,
		string(effectsJSON),
		excludesJSON,
		requiresJSON,
		toMillis(updatedAt),
	)
	if err != nil {
		return fmt.Errorf("put quality %s: %w", name, err)
	}
	return nil
}

// GetQuality returns one quality entry by locale and name.
func (s *Store) GetQuality(ctx context.Context, locale, name string) (storage.QualityEntry, error) {
	if err := s.ready(ctx); err != nil {
		return storage.QualityEntry{}, err
	}
	locale = strings.TrimSpace(locale)
	name = shadowrun.BaseQualityName(name)
	if name == "" {
		return storage.QualityEntry{}, fmt.Errorf("quality name is required")
	}

	row := s.sqlDB.QueryRowContext(ctx,
		`SELECT `+qualityColumns+`
		   FROM qualities
		  WHERE locale = ? AND name = ?`,
		locale, name,
	)
	entry, err := scanQuality(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.QualityEntry{}, storage.ErrNotFound
		}
		return storage.QualityEntry{}, fmt.Errorf("get quality %s: %w", name, err)
	}
	return entry, nil
}

// ListQualities returns one page of a locale's qualities ordered by name.
func (s *Store) ListQualities(ctx context.Context, locale string, pageSize int, pageToken string) (storage.QualityPage, error) {
	if err := s.ready(ctx); err != nil {
		return storage.QualityPage{}, err
	}
	if pageSize <= 0 {
		return storage.QualityPage{}, fmt.Errorf("page size must be greater than zero")
	}

	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT `+qualityColumns+`
		   FROM qualities
		  WHERE locale = ? AND name > ?
		  ORDER BY name ASC
		  LIMIT ?`,
		strings.TrimSpace(locale), strings.TrimSpace(pageToken), pageSize+1,
	)
	if err != nil {
		return storage.QualityPage{}, fmt.Errorf("list qualities: %w", err)
	}
	defer rows.Close()

	page := storage.QualityPage{Entries: make([]storage.QualityEntry, 0, pageSize)}
	for rows.Next() {
		entry, err := scanQuality(rows)
		if err != nil {
			return storage.QualityPage{}, fmt.Errorf("list qualities: %w", err)
		}
		page.Entries = append(page.Entries, entry)
	}
	if err := rows.Err(); err != nil {
		return storage.QualityPage{}, fmt.Errorf("list qualities: %w", err)
	}
	if len(page.Entries) > pageSize {
		page.Entries = page.Entries[:pageSize]
		page.NextPageToken = page.Entries[pageSize-1].Definition.Name
	}
	return page, nil
}

// LoadGameData reads every quality stored for a locale into a game data
// table.
func (s *Store) LoadGameData(ctx context.Context, locale string) (*shadowrun.GameData, error) {
	const pageSize = 200
	var (
		defs  []shadowrun.QualityDefinition
		token string
	)
	for {
		page, err := s.ListQualities(ctx, locale, pageSize, token)
		if err != nil {
			return nil, err
		}
		for _, entry := range page.Entries {
			defs = append(defs, entry.Definition)
		}
		if page.NextPageToken == "" {
			return shadowrun.NewGameData(defs), nil
		}
		token = page.NextPageToken
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanQuality(row rowScanner) (storage.QualityEntry, error) {
	var (
		entry        storage.QualityEntry
		category     string
		effectsJSON  string
		excludesJSON string
		requiresJSON string
		updatedAt    int64
	)
	def := &entry.Definition
	if err := row.Scan(
		&entry.Locale,
		&def.Name,
		&entry.Source,
		&category,
		&def.Cost,
		&def.Limit,
		&effectsJSON,
		&excludesJSON,
		&requiresJSON,
		&updatedAt,
	); err != nil {
		return storage.QualityEntry{}, err
	}

	effects, err := shadowrun.DecodeEffects([]byte(effectsJSON))
	if err != nil {
		return storage.QualityEntry{}, fmt.Errorf("decode quality %s effects: %w", def.Name, err)
	}
	if err := json.Unmarshal([]byte(excludesJSON), &def.Excludes); err != nil {
		return storage.QualityEntry{}, fmt.Errorf("decode quality %s excludes: %w", def.Name, err)
	}
	if err := json.Unmarshal([]byte(requiresJSON), &def.Requires); err != nil {
		return storage.QualityEntry{}, fmt.Errorf("decode quality %s requires: %w", def.Name, err)
	}
	def.Category = shadowrun.QualityCategory(category)
	def.Effects = effects
	entry.UpdatedAt = fromMillis(updatedAt)
	return entry, nil
}

func marshalNames(names []string) (string, error) {
	if names == nil {
		names = []string{}
	}
	data, err := json.Marshal(names)
	return string(data), err
}
