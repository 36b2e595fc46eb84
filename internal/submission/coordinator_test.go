package submission_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"testing/fstest"
	"time"

	"github.com/shenikar/report_intake/internal/models"
	"github.com/shenikar/report_intake/internal/submission"
	"github.com/shenikar/report_intake/internal/submission/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
)

type sleepRecorder struct {
	mu     sync.Mutex
	delays []time.Duration
}

func (r *sleepRecorder) Sleep(ctx context.Context, d time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.delays = append(r.delays, d)
	return ctx.Err()
}

func (r *sleepRecorder) total() time.Duration {
	var sum time.Duration
	for _, d := range r.delays {
		sum += d
	}
	return sum
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	return logger
}

func readyDraft() *models.ReportDraft {
	d := models.NewReportDraft("reporter-7")
	d.PersonInvolved.FirstName = "Jun"
	d.PersonInvolved.LastName = "Cruz"
	d.PersonInvolved.Relationship = models.RelationshipSibling
	d.PersonInvolved.SetDateOfBirth(time.Date(2010, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	seen := time.Date(2024, 2, 28, 0, 0, 0, 0, time.UTC)
	d.PersonInvolved.LastSeenDate = &seen
	d.PersonInvolved.LastKnownLocation = "Quiapo"
	d.PersonInvolved.MostRecentPhoto = &models.Attachment{LocalURI: "file:///p.jpg", MimeType: "image/jpeg", Filename: "p.jpg"}
	d.Location.Address = models.Address{StreetAddress: "Hidalgo St", Barangay: "306", City: "Manila", ZipCode: "1001"}
	return d
}

func newCoordinator(t *testing.T, cfg submission.Config) (*submission.Coordinator, *mocks.MockReportAPI) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockReportAPI(ctrl)
	opener := submission.FSOpener{FS: fstest.MapFS{"p.jpg": {Data: []byte("jpeg")}}}
	return submission.NewCoordinator(api, opener, cfg, quietLogger()), api
}

func TestSubmit_FirstAttemptSucceeds(t *testing.T) {
	// Подготовка
	rec := &sleepRecorder{}
	coord, api := newCoordinator(t, submission.Config{Sleep: rec.Sleep})
	ctx := context.Background()

	// Ожидания
	api.EXPECT().CreateReport(ctx, gomock.Any()).
		Return(&submission.CreateResponse{Success: true, Data: json.RawMessage(`{"_id":"r-1"}`)}, nil).
		Times(1)

	// Действие
	res, err := coord.Submit(ctx, readyDraft())

	// Проверки
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.True(t, res.ClearDraft)
	assert.Equal(t, 1, res.Attempts)
	assert.JSONEq(t, `{"_id":"r-1"}`, string(res.Report))
	assert.Empty(t, rec.delays)
	assert.False(t, coord.Submitting())
}

func TestSubmit_SucceedsOnThirdAttempt(t *testing.T) {
	rec := &sleepRecorder{}
	coord, api := newCoordinator(t, submission.Config{Sleep: rec.Sleep})
	ctx := context.Background()

	var bodies [][]byte
	capture := func(_ context.Context, p *submission.Payload) {
		bodies = append(bodies, p.Body)
	}
	gomock.InOrder(
		api.EXPECT().CreateReport(ctx, gomock.Any()).Do(capture).Return(nil, &models.NetworkError{Op: "create report", Err: errors.New("timeout")}),
		api.EXPECT().CreateReport(ctx, gomock.Any()).Do(capture).Return(nil, &models.ServerRejection{StatusCode: 503, Message: "busy"}),
		api.EXPECT().CreateReport(ctx, gomock.Any()).Do(capture).Return(&submission.CreateResponse{Success: true}, nil),
	)

	res, err := coord.Submit(ctx, readyDraft())

	require.NoError(t, err)
	assert.Equal(t, 3, res.Attempts)
	assert.True(t, res.ClearDraft)
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second}, rec.delays)
	assert.Equal(t, 3*time.Second, rec.total())
	require.Len(t, bodies, 3)
	assert.Equal(t, bodies[0], bodies[2])
}

func TestSubmit_ExhaustsAttempts(t *testing.T) {
	rec := &sleepRecorder{}
	coord, api := newCoordinator(t, submission.Config{Sleep: rec.Sleep})
	ctx := context.Background()
	last := &models.ServerRejection{StatusCode: 400, Message: "invalid zip code"}

	gomock.InOrder(
		api.EXPECT().CreateReport(ctx, gomock.Any()).Return(nil, errors.New("first")),
		api.EXPECT().CreateReport(ctx, gomock.Any()).Return(nil, errors.New("second")),
		api.EXPECT().CreateReport(ctx, gomock.Any()).Return(nil, last),
	)

	res, err := coord.Submit(ctx, readyDraft())

	assert.Same(t, last, err)
	assert.False(t, res.Success)
	assert.False(t, res.ClearDraft)
	assert.Equal(t, 3, res.Attempts)
	assert.Len(t, rec.delays, 2)
}

func TestSubmit_RealDelaysBetweenAttempts(t *testing.T) {
	const base = 20 * time.Millisecond
	coord, api := newCoordinator(t, submission.Config{BaseDelay: base})
	ctx := context.Background()

	var calls []time.Time
	api.EXPECT().CreateReport(ctx, gomock.Any()).
		DoAndReturn(func(context.Context, *submission.Payload) (*submission.CreateResponse, error) {
			calls = append(calls, time.Now())
			if len(calls) < 3 {
				return nil, errors.New("unavailable")
			}
			return &submission.CreateResponse{Success: true}, nil
		}).Times(3)

	_, err := coord.Submit(ctx, readyDraft())

	require.NoError(t, err)
	require.Len(t, calls, 3)
	assert.GreaterOrEqual(t, calls[1].Sub(calls[0]), base)
	assert.GreaterOrEqual(t, calls[2].Sub(calls[1]), 2*base)
	assert.GreaterOrEqual(t, calls[2].Sub(calls[0]), 3*base)
}

func TestSubmit_RejectsConcurrentSubmission(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	coord, api := newCoordinator(t, submission.Config{})
	ctx := context.Background()
	started := make(chan struct{})
	release := make(chan struct{})

	api.EXPECT().CreateReport(ctx, gomock.Any()).
		DoAndReturn(func(context.Context, *submission.Payload) (*submission.CreateResponse, error) {
			close(started)
			<-release
			return &submission.CreateResponse{Success: true}, nil
		}).Times(1)

	var wg sync.WaitGroup
	wg.Add(1)
	var firstErr error
	go func() {
		defer wg.Done()
		_, firstErr = coord.Submit(ctx, readyDraft())
	}()
	<-started

	assert.True(t, coord.Submitting())
	_, err := coord.Submit(ctx, readyDraft())
	assert.ErrorIs(t, err, models.ErrSubmissionInProgress)

	close(release)
	wg.Wait()
	assert.NoError(t, firstErr)
	assert.False(t, coord.Submitting())
}

func TestSubmit_CancelledWhileWaiting(t *testing.T) {
	coord, api := newCoordinator(t, submission.Config{BaseDelay: time.Hour})
	ctx, cancel := context.WithCancel(context.Background())
	apiErr := errors.New("unavailable")

	api.EXPECT().CreateReport(ctx, gomock.Any()).
		DoAndReturn(func(context.Context, *submission.Payload) (*submission.CreateResponse, error) {
			cancel()
			return nil, apiErr
		}).Times(1)

	res, err := coord.Submit(ctx, readyDraft())

	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, err, apiErr)
	assert.Equal(t, 1, res.Attempts)
	assert.False(t, coord.Submitting())
}

func TestSubmit_PayloadBuildFailure(t *testing.T) {
	coord, api := newCoordinator(t, submission.Config{})
	d := readyDraft()
	d.PersonInvolved.MostRecentPhoto.LocalURI = "file:///missing.jpg"

	api.EXPECT().CreateReport(gomock.Any(), gomock.Any()).Times(0)

	res, err := coord.Submit(context.Background(), d)

	assert.Nil(t, res)
	assert.ErrorContains(t, err, "failed to open attachment")
}
