package submission

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/shenikar/report_intake/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	DefaultMaxAttempts = 3
	DefaultBaseDelay   = time.Second
)

// Config - параметры протокола отправки
type Config struct {
	MaxAttempts int
	BaseDelay   time.Duration
	// Sleep ожидает перед повтором. По умолчанию - таймер с учетом ctx.
	Sleep func(ctx context.Context, d time.Duration) error
}

// Result - итог отправки
type Result struct {
	Success  bool            `json:"success"`
	Report   json.RawMessage `json:"report,omitempty"`
	Attempts int             `json:"attempts"`
	// ClearDraft сообщает вызывающему, что черновик можно удалить
	ClearDraft bool `json:"-"`
}

// Coordinator отправляет заявление с ограниченным числом попыток.
// Ключа идемпотентности нет: если ответ потерян после успешной записи, повтор создаст дубликат.
type Coordinator struct {
	api         ReportAPI
	opener      AttachmentOpener
	maxAttempts int
	baseDelay   time.Duration
	sleep       func(ctx context.Context, d time.Duration) error
	logger      *logrus.Logger
	inFlight    atomic.Bool
}

func NewCoordinator(api ReportAPI, opener AttachmentOpener, cfg Config, logger *logrus.Logger) *Coordinator {
	c := &Coordinator{
		api:         api,
		opener:      opener,
		maxAttempts: cfg.MaxAttempts,
		baseDelay:   cfg.BaseDelay,
		sleep:       cfg.Sleep,
		logger:      logger,
	}
	if c.maxAttempts < 1 {
		c.maxAttempts = DefaultMaxAttempts
	}
	if c.baseDelay <= 0 {
		c.baseDelay = DefaultBaseDelay
	}
	if c.sleep == nil {
		c.sleep = sleepContext
	}
	return c
}

// Submitting сообщает, идет ли отправка
func (c *Coordinator) Submitting() bool {
	return c.inFlight.Load()
}

// Submit собирает форму и отправляет ее. Попытки идут строго последовательно,
// перед повтором номер n ожидание составляет baseDelay*n. Одновременно выполняется
// не более одной отправки, вторая получает ErrSubmissionInProgress.
func (c *Coordinator) Submit(ctx context.Context, d *models.ReportDraft) (*Result, error) {
	if !c.inFlight.CompareAndSwap(false, true) {
		return nil, models.ErrSubmissionInProgress
	}
	defer c.inFlight.Store(false)

	log := c.logger.WithFields(logrus.Fields{
		"service":  "submission",
		"method":   "Submit",
		"draft_id": d.ID,
		"reporter": d.Reporter,
	})

	payload, err := BuildPayload(d, c.opener)
	if err != nil {
		log.WithError(err).Error("Failed to build report payload")
		return nil, fmt.Errorf("submission: %w", err)
	}

	var lastErr error
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		if attempt > 1 {
			delay := c.baseDelay * time.Duration(attempt-1)
			log.WithField("delay", delay).Infof("Retrying report submission, attempt %d of %d", attempt, c.maxAttempts)
			if err := c.sleep(ctx, delay); err != nil {
				return &Result{Attempts: attempt - 1}, errors.Join(err, lastErr)
			}
		}

		resp, err := c.api.CreateReport(ctx, payload)
		if err != nil {
			lastErr = err
			log.WithError(err).Warnf("Report submission attempt %d failed", attempt)
			continue
		}

		log.WithField("attempts", attempt).Info("Report submitted successfully")
		return &Result{
			Success:    true,
			Report:     resp.Data,
			Attempts:   attempt,
			ClearDraft: true,
		}, nil
	}

	log.WithError(lastErr).Errorf("Report submission failed after %d attempts", c.maxAttempts)
	return &Result{Attempts: c.maxAttempts}, lastErr
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
