package journal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"bloom/core/cycle"
	"bloom/core/kv"
	"bloom/feature/journal/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ConfigKey is the key-value store key holding the cycle configuration.
const ConfigKey = "cycle.config"

// Service handles journal operations.
type Service struct {
	db       *gorm.DB
	settings *kv.Store
	logger   *zap.Logger
	onChange []func(date string)
}

// OnChange registers a callback invoked after an entry is written or deleted
// and after the cycle configuration changes. date is the affected day, or ""
// for a configuration change. Used by view features to drop stale rendered
// state.
func (s *Service) OnChange(fn func(date string)) {
	s.onChange = append(s.onChange, fn)
}

func (s *Service) notify(date string) {
	for _, fn := range s.onChange {
		fn(date)
	}
}

// NewService creates the journal service and migrates its schema.
func NewService(db *gorm.DB, settings *kv.Store, logger *zap.Logger) (*Service, error) {
	if err := db.AutoMigrate(&models.LogEntry{}); err != nil {
		return nil, fmt.Errorf("failed to migrate journal schema: %w", err)
	}
	return &Service{db: db, settings: settings, logger: logger}, nil
}

// Upsert creates or overwrites the entry for date. An entry with no marker,
// no symptoms, no mood and no notes is deleted instead: empty entries are
// not retained.
func (s *Service) Upsert(ctx context.Context, date string, entry cycle.Entry) error {
	if _, err := cycle.ParseDate(date); err != nil {
		return err
	}
	if !entry.Marker.IsValid() {
		return fmt.Errorf("invalid period marker %q", entry.Marker)
	}

	if entry.IsEmpty() {
		if err := s.delete(ctx, date); err != nil {
			return err
		}
		s.notify(date)
		return nil
	}

	row := models.FromEntry(date, entry)
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"marker", "symptoms", "mood", "notes", "updated_at"}),
		}).
		Create(&row).Error
	if err != nil {
		return fmt.Errorf("failed to save entry for %s: %w", date, err)
	}
	s.notify(date)
	return nil
}

func (s *Service) delete(ctx context.Context, date string) error {
	if err := s.db.WithContext(ctx).Delete(&models.LogEntry{}, "date = ?", date).Error; err != nil {
		return fmt.Errorf("failed to delete entry for %s: %w", date, err)
	}
	return nil
}

// Get returns the entry for date. The second result is false when no entry
// exists.
func (s *Service) Get(ctx context.Context, date string) (cycle.Entry, bool, error) {
	var row models.LogEntry
	err := s.db.WithContext(ctx).First(&row, "date = ?", date).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return cycle.Entry{}, false, nil
	}
	if err != nil {
		return cycle.Entry{}, false, fmt.Errorf("failed to read entry for %s: %w", date, err)
	}
	return row.ToEntry(), true, nil
}

// Range returns all entries with from <= date <= to, keyed by date. Empty
// bounds are open.
func (s *Service) Range(ctx context.Context, from, to string) (map[string]cycle.Entry, error) {
	q := s.db.WithContext(ctx).Model(&models.LogEntry{})
	if from != "" {
		q = q.Where("date >= ?", from)
	}
	if to != "" {
		q = q.Where("date <= ?", to)
	}

	var rows []models.LogEntry
	if err := q.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}

	log := make(map[string]cycle.Entry, len(rows))
	for _, row := range rows {
		log[row.Date] = row.ToEntry()
	}
	return log, nil
}

// Log returns the full log history keyed by date, the shape the phase
// calculator consumes.
func (s *Service) Log(ctx context.Context) (map[string]cycle.Entry, error) {
	return s.Range(ctx, "", "")
}

// CycleConfig returns the stored cycle configuration. A missing value falls
// back to defaults; a corrupted value is cleared and also falls back.
func (s *Service) CycleConfig(ctx context.Context) cycle.Config {
	raw, found, err := s.settings.Get(ctx, ConfigKey)
	if err != nil || !found {
		return cycle.DefaultConfig()
	}

	var cfg cycle.Config
	if err := json.Unmarshal([]byte(raw), &cfg); err != nil || cfg.CycleLengthDays <= 0 || cfg.PeriodLengthDays <= 0 {
		s.logger.Warn("Clearing corrupted cycle configuration", zap.String("key", ConfigKey))
		_ = s.settings.Remove(ctx, ConfigKey)
		return cycle.DefaultConfig()
	}
	return cfg
}

// SetCycleConfig stores the cycle configuration.
func (s *Service) SetCycleConfig(ctx context.Context, cfg cycle.Config) error {
	if cfg.CycleLengthDays <= 0 || cfg.PeriodLengthDays <= 0 {
		return fmt.Errorf("cycle and period lengths must be positive")
	}
	raw, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode cycle configuration: %w", err)
	}
	if err := s.settings.Set(ctx, ConfigKey, string(raw)); err != nil {
		return err
	}
	// New lengths shift every derived phase and prediction.
	s.notify("")
	return nil
}

// PhaseFor derives the phase info for a date from the stored log history
// and configuration.
func (s *Service) PhaseFor(ctx context.Context, date string) (cycle.PhaseInfo, error) {
	target, err := cycle.ParseDate(date)
	if err != nil {
		return cycle.PhaseInfo{}, err
	}

	log, err := s.Log(ctx)
	if err != nil {
		return cycle.PhaseInfo{}, err
	}

	return cycle.ComputePhase(target, s.CycleConfig(ctx), log), nil
}

// PhaseToday derives the phase info for the current day.
func (s *Service) PhaseToday(ctx context.Context) (cycle.PhaseInfo, error) {
	return s.PhaseFor(ctx, time.Now().Format(cycle.DateLayout))
}
