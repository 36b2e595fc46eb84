package draft

import (
	"context"
	"errors"

	"github.com/shenikar/report_intake/internal/models"
	"github.com/sirupsen/logrus"
)

// DefaultKeyPrefix - префикс единственного слота черновика заявителя
const DefaultKeyPrefix = "report_draft"

// Repository определяет контракт долговременного хранилища черновиков.
// Get возвращает models.ErrDraftNotFound, если слот пуст.
type Repository interface {
	Put(ctx context.Context, slot string, payload []byte) error
	Get(ctx context.Context, slot string) ([]byte, error)
	Delete(ctx context.Context, slot string) error
}

// SlotFor возвращает ключ слота для заявителя
func SlotFor(prefix, reporter string) string {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return prefix + ":" + reporter
}

// Store хранит один черновик в одном известном слоте
type Store struct {
	repo   Repository
	slot   string
	logger *logrus.Logger
}

func NewStore(repo Repository, slot string, logger *logrus.Logger) *Store {
	return &Store{
		repo:   repo,
		slot:   slot,
		logger: logger,
	}
}

// Slot возвращает ключ слота
func (s *Store) Slot() string {
	return s.slot
}

// Save сохраняет черновик. Поля, которые не удалось сериализовать, отбрасываются,
// остальные сохраняются.
func (s *Store) Save(ctx context.Context, d *models.ReportDraft) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "draft",
		"method":  "Save",
		"slot":    s.slot,
	})
	if d == nil {
		return &models.PersistenceError{Op: "save", Err: errors.New("nil draft")}
	}

	payload, dropped := Encode(d)
	if len(dropped) > 0 {
		log.WithField("dropped_fields", dropped).Warn("Some draft fields could not be serialized and were dropped")
	}

	if err := s.repo.Put(ctx, s.slot, payload); err != nil {
		log.WithError(err).Error("Failed to persist draft")
		return &models.PersistenceError{Op: "save", Err: err}
	}
	log.WithField("draft_id", d.ID).Debug("Draft persisted")
	return nil
}

// Load читает черновик. Возвращает nil без ошибки, если черновика нет.
func (s *Store) Load(ctx context.Context) (*models.ReportDraft, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "draft",
		"method":  "Load",
		"slot":    s.slot,
	})

	payload, err := s.repo.Get(ctx, s.slot)
	if err != nil {
		if errors.Is(err, models.ErrDraftNotFound) {
			return nil, nil
		}
		log.WithError(err).Error("Failed to read draft")
		return nil, &models.PersistenceError{Op: "load", Err: err}
	}

	d, dropped, err := Decode(payload)
	if err != nil {
		log.WithError(err).Error("Stored draft is corrupted")
		return nil, &models.PersistenceError{Op: "load", Err: err}
	}
	if len(dropped) > 0 {
		log.WithField("dropped_fields", dropped).Warn("Some draft dates could not be restored")
	}
	log.WithField("draft_id", d.ID).Debug("Draft restored")
	return d, nil
}

// Clear удаляет черновик из слота
func (s *Store) Clear(ctx context.Context) error {
	if err := s.repo.Delete(ctx, s.slot); err != nil {
		s.logger.WithFields(logrus.Fields{
			"service": "draft",
			"method":  "Clear",
			"slot":    s.slot,
		}).WithError(err).Error("Failed to clear draft")
		return &models.PersistenceError{Op: "clear", Err: err}
	}
	return nil
}
