package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"testing/fstest"
	"time"

	"github.com/shenikar/report_intake/internal/consent"
	draftmocks "github.com/shenikar/report_intake/internal/draft/mocks"
	"github.com/shenikar/report_intake/internal/models"
	"github.com/shenikar/report_intake/internal/service/mocks"
	"github.com/shenikar/report_intake/internal/station"
	"github.com/shenikar/report_intake/internal/submission"
	"github.com/shenikar/report_intake/internal/validation"
	"github.com/shenikar/report_intake/internal/webhook"
	webhook_mocks "github.com/shenikar/report_intake/internal/webhook/mocks"
	"github.com/shenikar/report_intake/internal/wizard"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestIntakeService создает сервис, у которого каждый заявитель получает один и тот же мок мастера
func newTestIntakeService(t *testing.T) (*intakeService, *mocks.MockWizardSession, *webhook_mocks.MockEventPublisher, *[]string) {
	ctrl := gomock.NewController(t)
	sessionMock := mocks.NewMockWizardSession(ctrl)
	publisherMock := webhook_mocks.NewMockEventPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	var created []string
	factory := func(reporter string) WizardSession {
		created = append(created, reporter)
		return sessionMock
	}

	svc := NewIntakeService(factory, publisherMock, logger).(*intakeService)
	svc.now = func() time.Time { return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC) }
	return svc, sessionMock, publisherMock, &created
}

func TestOpen_RestoresOncePerReporter(t *testing.T) {
	// Подготовка
	svc, sessionMock, _, created := newTestIntakeService(t)
	ctx := context.Background()
	state := wizard.State{Step: models.StepLocation, Draft: models.NewReportDraft("rep-1")}

	// Ожидания
	sessionMock.EXPECT().Restore(ctx).Return(state.Draft).Times(1)
	sessionMock.EXPECT().State().Return(state).Times(2)

	// Действие
	first, err1 := svc.Open(ctx, "rep-1")
	second, err2 := svc.Open(ctx, " rep-1 ")

	// Проверки
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, state, first)
	assert.Equal(t, state, second)
	assert.Equal(t, []string{"rep-1"}, *created)
}

func TestOpen_RequiresReporter(t *testing.T) {
	svc, _, _, created := newTestIntakeService(t)

	_, err := svc.Open(context.Background(), "  ")

	assert.ErrorIs(t, err, ErrReporterRequired)
	assert.Empty(t, *created)
}

func TestAdvance_DelegatesToSession(t *testing.T) {
	svc, sessionMock, _, _ := newTestIntakeService(t)
	ctx := context.Background()
	out := wizard.LocationDetails{Location: models.Location{Address: models.Address{City: "Pasig"}}}
	verr := &models.ValidationError{Step: "location", Fields: map[string]string{"zipCode": "Zip code is required"}}

	sessionMock.EXPECT().Restore(ctx).Return(nil).Times(1)
	sessionMock.EXPECT().Advance(ctx, models.StepLocation, out).Return(wizard.StepResult{}, verr).Times(1)

	_, err := svc.Advance(ctx, "rep-1", models.StepLocation, out)

	assert.Same(t, verr, err)
}

func TestSubmit_PublishesEvent(t *testing.T) {
	svc, sessionMock, publisherMock, _ := newTestIntakeService(t)
	ctx := context.Background()
	d := models.NewReportDraft("rep-1")
	d.Type = models.ReportTypeKidnapped
	yes := true
	d.BroadcastConsent = &yes
	res := &submission.Result{Success: true, Attempts: 2, Report: json.RawMessage(`{"_id":"665f1c0a"}`), ClearDraft: true}

	sessionMock.EXPECT().Restore(ctx).Return(nil)
	sessionMock.EXPECT().Draft().Return(d)
	sessionMock.EXPECT().Submit(ctx).Return(res, nil)
	sessionMock.EXPECT().Close().Times(1)
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, event webhook.SubmissionEvent) error {
			assert.Equal(t, "665f1c0a", event.ReportID)
			assert.Equal(t, d.ID, event.DraftID)
			assert.Equal(t, "rep-1", event.Reporter)
			assert.Equal(t, models.ReportTypeKidnapped, event.Type)
			assert.True(t, event.BroadcastConsent)
			assert.Equal(t, 2, event.Attempts)
			assert.Equal(t, time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC), event.SubmittedAt)
			return nil
		}).Times(1)

	got, err := svc.Submit(ctx, "rep-1")

	require.NoError(t, err)
	assert.Same(t, res, got)
}

func TestSubmit_PublishFailureIsIgnored(t *testing.T) {
	svc, sessionMock, publisherMock, _ := newTestIntakeService(t)
	ctx := context.Background()

	sessionMock.EXPECT().Restore(ctx).Return(nil)
	sessionMock.EXPECT().Draft().Return(models.NewReportDraft("rep-1"))
	sessionMock.EXPECT().Submit(ctx).Return(&submission.Result{Success: true, Attempts: 1}, nil)
	sessionMock.EXPECT().Close().Times(1)
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(errors.New("redis is down"))

	res, err := svc.Submit(ctx, "rep-1")

	require.NoError(t, err)
	assert.True(t, res.Success)
}

func TestSubmit_FailureIsNotPublished(t *testing.T) {
	svc, sessionMock, publisherMock, _ := newTestIntakeService(t)
	ctx := context.Background()
	rejection := &models.ServerRejection{StatusCode: 400, Message: "bad payload"}

	sessionMock.EXPECT().Restore(ctx).Return(nil)
	sessionMock.EXPECT().Draft().Return(models.NewReportDraft("rep-1"))
	sessionMock.EXPECT().Submit(ctx).Return(&submission.Result{Attempts: 3}, rejection)
	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)
	sessionMock.EXPECT().Close().Times(0)

	res, err := svc.Submit(ctx, "rep-1")

	var got *models.ServerRejection
	require.ErrorAs(t, err, &got)
	assert.Equal(t, 3, res.Attempts)
	assert.Contains(t, svc.sessions, "rep-1")
}

func TestSubmit_SuccessEvictsSession(t *testing.T) {
	// Подготовка
	svc, sessionMock, publisherMock, created := newTestIntakeService(t)
	ctx := context.Background()
	fresh := wizard.State{Step: models.StepReportType, Draft: models.NewReportDraft("rep-1")}

	// Ожидания
	gomock.InOrder(
		sessionMock.EXPECT().Restore(ctx).Return(nil),
		sessionMock.EXPECT().Draft().Return(models.NewReportDraft("rep-1")),
		sessionMock.EXPECT().Submit(ctx).Return(&submission.Result{Success: true, Attempts: 1, ClearDraft: true}, nil),
		sessionMock.EXPECT().Close().Times(1),
		sessionMock.EXPECT().Restore(ctx).Return(nil),
		sessionMock.EXPECT().State().Return(fresh),
	)
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil)

	// Действие
	_, err := svc.Submit(ctx, " rep-1 ")
	require.NoError(t, err)
	evicted := len(svc.sessions)
	state, err := svc.Open(ctx, "rep-1")

	// Проверки
	require.NoError(t, err)
	assert.Zero(t, evicted)
	assert.Equal(t, fresh, state)
	assert.Equal(t, []string{"rep-1", "rep-1"}, *created)
}

func TestEvictIdle_ClosesOnlyIdleSessions(t *testing.T) {
	// Подготовка
	ctrl := gomock.NewController(t)
	stale := mocks.NewMockWizardSession(ctrl)
	active := mocks.NewMockWizardSession(ctrl)
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	bySession := map[string]WizardSession{"rep-stale": stale, "rep-active": active}
	svc := NewIntakeService(func(reporter string) WizardSession { return bySession[reporter] }, nil, logger).(*intakeService)
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }
	ctx := context.Background()

	// Ожидания
	stale.EXPECT().Restore(ctx).Return(nil)
	stale.EXPECT().State().Return(wizard.State{})
	stale.EXPECT().Close().Times(1)
	active.EXPECT().Restore(ctx).Return(nil)
	active.EXPECT().State().Return(wizard.State{}).Times(2)
	active.EXPECT().Close().Times(0)

	// Действие
	_, err := svc.Open(ctx, "rep-stale")
	require.NoError(t, err)
	_, err = svc.Open(ctx, "rep-active")
	require.NoError(t, err)
	now = now.Add(20 * time.Minute)
	_, err = svc.Open(ctx, "rep-active")
	require.NoError(t, err)
	now = now.Add(15 * time.Minute)

	disabled := svc.EvictIdle(0)
	evicted := svc.EvictIdle(30 * time.Minute)

	// Проверки
	assert.Zero(t, disabled)
	assert.Equal(t, 1, evicted)
	assert.NotContains(t, svc.sessions, "rep-stale")
	assert.Contains(t, svc.sessions, "rep-active")
}

func TestClose_ClosesSessions(t *testing.T) {
	svc, sessionMock, _, _ := newTestIntakeService(t)
	ctx := context.Background()

	sessionMock.EXPECT().Restore(ctx).Return(nil)
	sessionMock.EXPECT().RequestConsent().Return(consent.DefaultPrompt)
	sessionMock.EXPECT().Close().Times(1)

	prompt, err := svc.ConsentPrompt(ctx, "rep-1")
	require.NoError(t, err)
	assert.Equal(t, consent.DefaultPrompt, prompt)

	svc.Close()
	assert.Empty(t, svc.sessions)
}

func TestSessionFactory_UsesReporterSlot(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := draftmocks.NewMockRepository(ctrl)
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	factory := NewSessionFactory(SessionDeps{
		Drafts:    repo,
		KeyPrefix: "intake_draft",
		Validator: validation.NewEngine(),
		Resolver:  station.NewResolver(nil, station.DefaultCoordinates, logger),
		Consent:   consent.NewGate(consent.DefaultPrompt, logger),
		Opener:    submission.FSOpener{FS: fstest.MapFS{}},
		Logger:    logger,
	})

	repo.EXPECT().Get(gomock.Any(), "intake_draft:rep-9").Return(nil, models.ErrDraftNotFound).Times(1)

	sess := factory("rep-9")
	defer sess.Close()

	assert.Nil(t, sess.Restore(context.Background()))
	assert.Equal(t, "rep-9", sess.Draft().Reporter)
}
