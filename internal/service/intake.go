package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/report_intake/internal/consent"
	"github.com/shenikar/report_intake/internal/models"
	"github.com/shenikar/report_intake/internal/station"
	"github.com/shenikar/report_intake/internal/submission"
	"github.com/shenikar/report_intake/internal/webhook"
	"github.com/shenikar/report_intake/internal/wizard"
	"github.com/sirupsen/logrus"
)

var ErrReporterRequired = errors.New("reporter id is required")

// WizardSession определяет контракт мастера одного заявителя
type WizardSession interface {
	Restore(ctx context.Context) *models.ReportDraft
	State() wizard.State
	Draft() *models.ReportDraft
	Advance(ctx context.Context, current models.Step, out wizard.StepOutput) (wizard.StepResult, error)
	GoBack(current models.Step) models.Step
	AddAdditionalImage(img models.Attachment) (*models.ReportDraft, error)
	RemoveAdditionalImage(index int) (*models.ReportDraft, error)
	UseAutomaticStation() *models.ReportDraft
	UseManualStation() (*models.ReportDraft, error)
	SearchStations(ctx context.Context, origin station.Origin, locator station.Locator) (*wizard.SearchResult, error)
	SelectStation(id string) (*models.ReportDraft, error)
	RequestConsent() consent.Prompt
	DecideConsent(decision bool) *models.ReportDraft
	Submit(ctx context.Context) (*submission.Result, error)
	Close()
}

// SessionFactory создает мастер для заявителя
type SessionFactory func(reporter string) WizardSession

// IntakeService определяет контракт приема заявлений
type IntakeService interface {
	Open(ctx context.Context, reporter string) (wizard.State, error)
	Advance(ctx context.Context, reporter string, step models.Step, out wizard.StepOutput) (wizard.StepResult, error)
	GoBack(ctx context.Context, reporter string, step models.Step) (wizard.State, error)
	AddImage(ctx context.Context, reporter string, img models.Attachment) (*models.ReportDraft, error)
	RemoveImage(ctx context.Context, reporter string, index int) (*models.ReportDraft, error)
	UseAutomaticStation(ctx context.Context, reporter string) (*models.ReportDraft, error)
	UseManualStation(ctx context.Context, reporter string) (*models.ReportDraft, error)
	SearchStations(ctx context.Context, reporter string, origin station.Origin, locator station.Locator) (*wizard.SearchResult, error)
	SelectStation(ctx context.Context, reporter, stationID string) (*models.ReportDraft, error)
	ConsentPrompt(ctx context.Context, reporter string) (consent.Prompt, error)
	DecideConsent(ctx context.Context, reporter string, decision bool) (*models.ReportDraft, error)
	Submit(ctx context.Context, reporter string) (*submission.Result, error)
	EvictIdle(maxIdle time.Duration) int
	Close()
}

type openSession struct {
	WizardSession
	lastUsed time.Time
}

type intakeService struct {
	newSession SessionFactory
	publisher  webhook.EventPublisher
	logger     *logrus.Logger
	now        func() time.Time

	mu       sync.Mutex
	sessions map[string]*openSession
}

func NewIntakeService(newSession SessionFactory, publisher webhook.EventPublisher, logger *logrus.Logger) IntakeService {
	return &intakeService{
		newSession: newSession,
		publisher:  publisher,
		logger:     logger,
		now:        time.Now,
		sessions:   make(map[string]*openSession),
	}
}

// session возвращает мастер заявителя. При первом обращении черновик поднимается из хранилища.
func (s *intakeService) session(ctx context.Context, reporter string) (WizardSession, error) {
	reporter = strings.TrimSpace(reporter)
	if reporter == "" {
		return nil, ErrReporterRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.sessions[reporter]; ok {
		sess.lastUsed = s.now()
		return sess.WizardSession, nil
	}
	sess := s.newSession(reporter)
	sess.Restore(ctx)
	s.sessions[reporter] = &openSession{WizardSession: sess, lastUsed: s.now()}

	s.logger.WithFields(logrus.Fields{
		"service":  "intake",
		"method":   "session",
		"reporter": reporter,
	}).Info("Wizard session opened")
	return sess, nil
}

// Open возвращает текущее состояние мастера, при необходимости восстанавливая черновик
func (s *intakeService) Open(ctx context.Context, reporter string) (wizard.State, error) {
	sess, err := s.session(ctx, reporter)
	if err != nil {
		return wizard.State{}, err
	}
	return sess.State(), nil
}

// Advance завершает шаг
func (s *intakeService) Advance(ctx context.Context, reporter string, step models.Step, out wizard.StepOutput) (wizard.StepResult, error) {
	sess, err := s.session(ctx, reporter)
	if err != nil {
		return wizard.StepResult{}, err
	}
	return sess.Advance(ctx, step, out)
}

// GoBack возвращается на предыдущий шаг
func (s *intakeService) GoBack(ctx context.Context, reporter string, step models.Step) (wizard.State, error) {
	sess, err := s.session(ctx, reporter)
	if err != nil {
		return wizard.State{}, err
	}
	sess.GoBack(step)
	return sess.State(), nil
}

func (s *intakeService) AddImage(ctx context.Context, reporter string, img models.Attachment) (*models.ReportDraft, error) {
	sess, err := s.session(ctx, reporter)
	if err != nil {
		return nil, err
	}
	return sess.AddAdditionalImage(img)
}

func (s *intakeService) RemoveImage(ctx context.Context, reporter string, index int) (*models.ReportDraft, error) {
	sess, err := s.session(ctx, reporter)
	if err != nil {
		return nil, err
	}
	return sess.RemoveAdditionalImage(index)
}

func (s *intakeService) UseAutomaticStation(ctx context.Context, reporter string) (*models.ReportDraft, error) {
	sess, err := s.session(ctx, reporter)
	if err != nil {
		return nil, err
	}
	return sess.UseAutomaticStation(), nil
}

func (s *intakeService) UseManualStation(ctx context.Context, reporter string) (*models.ReportDraft, error) {
	sess, err := s.session(ctx, reporter)
	if err != nil {
		return nil, err
	}
	return sess.UseManualStation()
}

func (s *intakeService) SearchStations(ctx context.Context, reporter string, origin station.Origin, locator station.Locator) (*wizard.SearchResult, error) {
	sess, err := s.session(ctx, reporter)
	if err != nil {
		return nil, err
	}
	return sess.SearchStations(ctx, origin, locator)
}

func (s *intakeService) SelectStation(ctx context.Context, reporter, stationID string) (*models.ReportDraft, error) {
	sess, err := s.session(ctx, reporter)
	if err != nil {
		return nil, err
	}
	return sess.SelectStation(stationID)
}

func (s *intakeService) ConsentPrompt(ctx context.Context, reporter string) (consent.Prompt, error) {
	sess, err := s.session(ctx, reporter)
	if err != nil {
		return consent.Prompt{}, err
	}
	return sess.RequestConsent(), nil
}

func (s *intakeService) DecideConsent(ctx context.Context, reporter string, decision bool) (*models.ReportDraft, error) {
	sess, err := s.session(ctx, reporter)
	if err != nil {
		return nil, err
	}
	return sess.DecideConsent(decision), nil
}

// Submit отправляет заявление и публикует событие об успешной отправке.
// Ошибка публикации только логируется.
func (s *intakeService) Submit(ctx context.Context, reporter string) (*submission.Result, error) {
	sess, err := s.session(ctx, reporter)
	if err != nil {
		return nil, err
	}
	log := s.logger.WithFields(logrus.Fields{
		"service":  "intake",
		"method":   "Submit",
		"reporter": reporter,
	})

	submitted := sess.Draft()
	res, err := sess.Submit(ctx)
	if err != nil {
		return res, fmt.Errorf("service: could not submit report: %w", err)
	}

	event := webhook.SubmissionEvent{
		EventID:     uuid.New(),
		DraftID:     submitted.ID,
		ReportID:    reportID(res.Report),
		Reporter:    submitted.Reporter,
		Type:        submitted.Type,
		Attempts:    res.Attempts,
		SubmittedAt: s.now().UTC(),
	}
	if submitted.BroadcastConsent != nil {
		event.BroadcastConsent = *submitted.BroadcastConsent
	}
	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, event); err != nil {
			log.WithError(err).Warn("Failed to publish submission event")
		}
	}

	log.WithField("report_id", event.ReportID).Info("Report submitted")
	// Отправленный мастер больше не нужен, следующее обращение начнет новый
	s.evict(strings.TrimSpace(reporter), sess)
	return res, nil
}

// evict выгружает мастер заявителя, если в карте лежит именно он
func (s *intakeService) evict(reporter string, sess WizardSession) {
	s.mu.Lock()
	cur, ok := s.sessions[reporter]
	if !ok || cur.WizardSession != sess {
		s.mu.Unlock()
		return
	}
	delete(s.sessions, reporter)
	s.mu.Unlock()

	sess.Close()
}

// EvictIdle выгружает мастера, к которым не обращались дольше maxIdle.
// Черновики остаются в хранилище и поднимаются при следующем обращении.
func (s *intakeService) EvictIdle(maxIdle time.Duration) int {
	if maxIdle <= 0 {
		return 0
	}
	cutoff := s.now().Add(-maxIdle)

	s.mu.Lock()
	var idle []WizardSession
	for reporter, sess := range s.sessions {
		if sess.lastUsed.Before(cutoff) {
			idle = append(idle, sess.WizardSession)
			delete(s.sessions, reporter)
		}
	}
	s.mu.Unlock()

	for _, sess := range idle {
		sess.Close()
	}
	if len(idle) > 0 {
		s.logger.WithFields(logrus.Fields{
			"service": "intake",
			"method":  "EvictIdle",
			"evicted": len(idle),
		}).Info("Idle wizard sessions evicted")
	}
	return len(idle)
}

// Close закрывает все мастера, дожидаясь записи черновиков
func (s *intakeService) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for reporter, sess := range s.sessions {
		sess.Close()
		delete(s.sessions, reporter)
	}
}

// reportID достает идентификатор созданного заявления из ответа бэкенда
func reportID(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var ref struct {
		MongoID string `json:"_id"`
		ID      string `json:"id"`
	}
	if err := json.Unmarshal(raw, &ref); err != nil {
		return ""
	}
	if ref.MongoID != "" {
		return ref.MongoID
	}
	return ref.ID
}
