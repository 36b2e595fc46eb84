package wizard

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shenikar/report_intake/internal/consent"
	"github.com/shenikar/report_intake/internal/models"
	"github.com/shenikar/report_intake/internal/station"
	stationmocks "github.com/shenikar/report_intake/internal/station/mocks"
	"github.com/shenikar/report_intake/internal/submission"
	"github.com/shenikar/report_intake/internal/validation"
	"github.com/shenikar/report_intake/internal/wizard/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// removedFiles запоминает удаленные вложения
type removedFiles struct {
	uris []string
}

func (r *removedFiles) Remove(a models.Attachment) error {
	r.uris = append(r.uris, a.LocalURI)
	return nil
}

type fakeDirectory struct {
	barangays map[string][]string
	err       error
}

func (d fakeDirectory) Cities() ([]string, error) {
	var cities []string
	for c := range d.barangays {
		cities = append(cities, c)
	}
	return cities, d.err
}

func (d fakeDirectory) Barangays(city string) ([]string, error) {
	return d.barangays[city], d.err
}

type fixture struct {
	ctrl      *Controller
	store     *mocks.MockDraftStore
	submitter *mocks.MockSubmitter
	search    *stationmocks.MockSearchClient
	files     *removedFiles
	now       time.Time
}

func newFixture(t *testing.T) *fixture {
	mc := gomock.NewController(t)
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	f := &fixture{
		store:     mocks.NewMockDraftStore(mc),
		submitter: mocks.NewMockSubmitter(mc),
		search:    stationmocks.NewMockSearchClient(mc),
		files:     &removedFiles{},
		now:       time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
	}
	f.ctrl = NewController("reporter-1", Deps{
		Validator:   validation.NewEngine(),
		Store:       f.store,
		Resolver:    station.NewResolver(f.search, station.DefaultCoordinates, logger),
		Consent:     consent.NewGate(consent.DefaultPrompt, logger),
		Submitter:   f.submitter,
		Attachments: f.files,
		Logger:      logger,
		Now:         func() time.Time { return f.now },
	})
	return f
}

func personOutput() PersonDetails {
	dob := time.Date(1990, 11, 20, 0, 0, 0, 0, time.UTC)
	seen := time.Date(2024, 5, 30, 0, 0, 0, 0, time.UTC)
	return PersonDetails{
		Type: models.ReportTypeMissing,
		Person: models.PersonInvolved{
			FirstName:         "Ramon",
			LastName:          "Dizon",
			Relationship:      models.RelationshipSpouse,
			DateOfBirth:       &dob,
			LastSeenDate:      &seen,
			LastKnownLocation: "Market-Market",
			MostRecentPhoto:   &models.Attachment{LocalURI: "file:///r.jpg", MimeType: "image/jpeg", Filename: "r.jpg"},
		},
	}
}

func locationOutput(city string) LocationDetails {
	return LocationDetails{Location: models.Location{
		Address: models.Address{StreetAddress: "McKinley Pkwy", Barangay: "Fort Bonifacio", City: city, ZipCode: "1634"},
	}}
}

// fillSteps проходит шаги сведений и места происшествия
func (f *fixture) fillSteps(t *testing.T, city string) {
	t.Helper()
	ctx := context.Background()
	_, err := f.ctrl.Advance(ctx, models.StepPersonDetails, personOutput())
	require.NoError(t, err)
	_, err = f.ctrl.Advance(ctx, models.StepLocation, locationOutput(city))
	require.NoError(t, err)
}

func TestAdvance_PersonDetails(t *testing.T) {
	// Подготовка
	f := newFixture(t)
	ctx := context.Background()
	var saved *models.ReportDraft

	// Ожидания
	f.store.EXPECT().Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, d *models.ReportDraft) error {
			saved = d
			return nil
		}).Times(1)

	// Действие
	res, err := f.ctrl.Advance(ctx, models.StepPersonDetails, personOutput())
	f.ctrl.Close()

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.StepLocation, res.Next)
	require.NotNil(t, res.Draft.PersonInvolved.Age)
	assert.Equal(t, 34, *res.Draft.PersonInvolved.Age)
	require.NotNil(t, saved)
	assert.Equal(t, "Ramon", saved.PersonInvolved.FirstName)
	assert.Equal(t, f.now, saved.UpdatedAt)
}

func TestAdvance_ValidationFailureKeepsState(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	out := personOutput()
	out.Person.MostRecentPhoto = nil

	f.store.EXPECT().Save(gomock.Any(), gomock.Any()).Times(0)

	before := f.ctrl.Draft()
	_, err := f.ctrl.Advance(ctx, models.StepPersonDetails, out)
	f.ctrl.Close()

	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "mostRecentPhoto")
	assert.Equal(t, before, f.ctrl.Draft())
	assert.Equal(t, models.StepPersonDetails, f.ctrl.step)
}

func TestAdvance_AgeIsSnapshot(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	defer f.ctrl.Close()

	_, err := f.ctrl.Advance(ctx, models.StepPersonDetails, personOutput())
	require.NoError(t, err)

	f.now = f.now.AddDate(3, 0, 0)
	f.ctrl.GoBack(models.StepLocation)
	res, err := f.ctrl.Advance(ctx, models.StepPersonDetails, personOutput())

	require.NoError(t, err)
	assert.Equal(t, 34, *res.Draft.PersonInvolved.Age)
}

func TestAdvance_LocationCheckedAgainstDirectory(t *testing.T) {
	known := map[string][]string{"Taguig": {"Fort Bonifacio", "Ususan"}, "Pateros": nil}
	tests := []struct {
		name      string
		directory fakeDirectory
		city      string
		barangay  string
		field     string
	}{
		{name: "known address", directory: fakeDirectory{barangays: known}, city: "taguig ", barangay: "fort bonifacio"},
		{name: "unknown city", directory: fakeDirectory{barangays: known}, city: "Makati", barangay: "Fort Bonifacio", field: "city"},
		{name: "barangay of another city", directory: fakeDirectory{barangays: known}, city: "Taguig", barangay: "San Antonio", field: "barangay"},
		{name: "city without barangay list", directory: fakeDirectory{barangays: known}, city: "Pateros", barangay: "Aguho"},
		{name: "directory unavailable", directory: fakeDirectory{err: errors.New("lookup failed")}, city: "Makati", barangay: "Poblacion"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Подготовка
			f := newFixture(t)
			f.ctrl.addresses = tt.directory
			ctx := context.Background()
			f.store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			defer f.ctrl.Close()
			_, err := f.ctrl.Advance(ctx, models.StepPersonDetails, personOutput())
			require.NoError(t, err)
			out := locationOutput(tt.city)
			out.Location.Address.Barangay = tt.barangay

			// Действие
			_, err = f.ctrl.Advance(ctx, models.StepLocation, out)

			// Проверки
			if tt.field == "" {
				require.NoError(t, err)
				assert.Equal(t, models.StepPoliceStation, f.ctrl.step)
				return
			}
			var verr *models.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Fields, tt.field)
			assert.Equal(t, models.StepLocation, f.ctrl.step)
			assert.Empty(t, f.ctrl.Draft().Location.Address.City)
		})
	}
}

func TestAdvance_RejectsWrongStep(t *testing.T) {
	f := newFixture(t)
	defer f.ctrl.Close()
	ctx := context.Background()

	_, err := f.ctrl.Advance(ctx, models.StepLocation, personOutput())
	assert.ErrorIs(t, err, ErrStepMismatch)

	_, err = f.ctrl.Advance(ctx, models.StepPreview, nil)
	assert.ErrorIs(t, err, ErrFinalStep)
}

func TestAdvance_CannotSkipSteps(t *testing.T) {
	// Подготовка
	f := newFixture(t)
	ctx := context.Background()

	// Ожидания
	f.store.EXPECT().Save(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	_, err := f.ctrl.Advance(ctx, models.StepPoliceStation, StationSelection{
		Assignment: models.PoliceStationAssignment{IsAutoAssign: true},
	})
	_, errLocation := f.ctrl.Advance(ctx, models.StepLocation, locationOutput("Taguig"))
	f.ctrl.Close()

	// Проверки
	assert.ErrorIs(t, err, ErrStepMismatch)
	assert.ErrorIs(t, errLocation, ErrStepMismatch)
	assert.Equal(t, models.StepPersonDetails, f.ctrl.step)
	assert.Empty(t, f.ctrl.Draft().Location.Address.City)
}

func TestGoBack_KeepsEnteredData(t *testing.T) {
	f := newFixture(t)
	f.store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	defer f.ctrl.Close()
	f.fillSteps(t, "Taguig")

	assert.Equal(t, models.StepLocation, f.ctrl.GoBack(models.StepPoliceStation))
	assert.Equal(t, models.StepPersonDetails, f.ctrl.GoBack(models.StepLocation))
	assert.Equal(t, models.StepPersonDetails, f.ctrl.GoBack(models.StepPersonDetails))

	d := f.ctrl.Draft()
	assert.Equal(t, "Ramon", d.PersonInvolved.FirstName)
	assert.Equal(t, "Taguig", d.Location.Address.City)
}

func TestAddAdditionalImage_AtMostFive(t *testing.T) {
	f := newFixture(t)
	f.store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	defer f.ctrl.Close()

	var lastErr error
	for i := 0; i < 10; i++ {
		_, lastErr = f.ctrl.AddAdditionalImage(models.Attachment{LocalURI: "file:///img.png", MimeType: "image/png", Filename: "img.png"})
	}

	assert.ErrorIs(t, lastErr, ErrImageLimit)
	assert.Len(t, f.ctrl.Draft().AdditionalImages, models.MaxAdditionalImages)

	d, err := f.ctrl.RemoveAdditionalImage(0)
	require.NoError(t, err)
	assert.Len(t, d.AdditionalImages, models.MaxAdditionalImages-1)

	_, err = f.ctrl.RemoveAdditionalImage(9)
	assert.ErrorIs(t, err, ErrImageNotFound)
	// остальные фото ссылаются на тот же файл
	assert.Empty(t, f.files.uris)
}

func TestRemoveAdditionalImage_DeletesFile(t *testing.T) {
	f := newFixture(t)
	f.store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	defer f.ctrl.Close()

	for _, name := range []string{"a.png", "b.png"} {
		_, err := f.ctrl.AddAdditionalImage(models.Attachment{LocalURI: "file:///" + name, MimeType: "image/png", Filename: name})
		require.NoError(t, err)
	}

	d, err := f.ctrl.RemoveAdditionalImage(0)

	require.NoError(t, err)
	require.Len(t, d.AdditionalImages, 1)
	assert.Equal(t, "b.png", d.AdditionalImages[0].Filename)
	assert.Equal(t, []string{"file:///a.png"}, f.files.uris)
}

func TestSearchStations_AutoSelectsNearestAndSwitchBackClears(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	defer f.ctrl.Close()
	f.fillSteps(t, "Taguig")

	f.search.EXPECT().
		Search(ctx, station.SearchRequest{
			Coordinates: []float64{121.0509, 14.5176},
			Address:     "McKinley Pkwy, Fort Bonifacio, Taguig, 1634",
		}).
		Return([]models.StationCandidate{
			{ID: "far", Name: "Station 2", EstimatedRoadDistance: 5.4},
			{ID: "near", Name: "Station 7", EstimatedRoadDistance: 1.2},
		}, nil).Times(1)

	_, err := f.ctrl.UseManualStation()
	require.NoError(t, err)
	res, err := f.ctrl.SearchStations(ctx, station.OriginIncident, nil)

	require.NoError(t, err)
	require.Len(t, res.Candidates, 2)
	assert.Equal(t, "near", res.Candidates[0].ID)
	require.NotNil(t, res.Draft.PoliceStationAssignment.AssignedStation)
	assert.Equal(t, "near", res.Draft.PoliceStationAssignment.AssignedStation.ID)

	d, err := f.ctrl.SelectStation("far")
	require.NoError(t, err)
	assert.Equal(t, "far", d.PoliceStationAssignment.AssignedStation.ID)

	d = f.ctrl.UseAutomaticStation()
	assert.True(t, d.PoliceStationAssignment.IsAutoAssign)
	assert.Nil(t, d.PoliceStationAssignment.AssignedStation)

	_, err = f.ctrl.SelectStation("far")
	assert.ErrorIs(t, err, ErrUnknownStation)
}

func TestSearchStations_RequiresManualMode(t *testing.T) {
	f := newFixture(t)
	defer f.ctrl.Close()

	_, err := f.ctrl.SearchStations(context.Background(), station.OriginIncident, nil)

	assert.ErrorIs(t, err, ErrManualModeRequired)
}

func TestSearchStations_PermissionDenied(t *testing.T) {
	f := newFixture(t)
	f.store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	defer f.ctrl.Close()
	f.fillSteps(t, "Taguig")
	_, err := f.ctrl.UseManualStation()
	require.NoError(t, err)

	_, err = f.ctrl.SearchStations(context.Background(), station.OriginDevice, station.DeviceFix{PermissionGranted: false})

	var perr *models.PermissionError
	assert.ErrorAs(t, err, &perr)
	assert.Nil(t, f.ctrl.Draft().PoliceStationAssignment.AssignedStation)
}

func TestUseManualStation_WithoutCityStaysAutomatic(t *testing.T) {
	f := newFixture(t)
	f.store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	defer f.ctrl.Close()

	d, err := f.ctrl.UseManualStation()

	assert.ErrorIs(t, err, models.ErrAddressRequired)
	assert.True(t, d.PoliceStationAssignment.IsAutoAssign)
}

func TestSubmit_RequiresConsent(t *testing.T) {
	f := newFixture(t)
	f.store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	defer f.ctrl.Close()
	f.fillSteps(t, "Taguig")

	f.submitter.EXPECT().Submit(gomock.Any(), gomock.Any()).Times(0)

	_, err := f.ctrl.Submit(context.Background())

	assert.ErrorIs(t, err, models.ErrConsentRequired)
}

func TestSubmit_ManualWithoutStation(t *testing.T) {
	f := newFixture(t)
	f.store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	defer f.ctrl.Close()
	f.fillSteps(t, "Taguig")
	_, err := f.ctrl.UseManualStation()
	require.NoError(t, err)
	f.ctrl.DecideConsent(true)

	f.submitter.EXPECT().Submit(gomock.Any(), gomock.Any()).Times(0)

	_, err = f.ctrl.Submit(context.Background())

	assert.ErrorIs(t, err, models.ErrStationRequired)
}

func TestSubmit_SuccessClearsDraft(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.fillSteps(t, "Taguig")
	_, err := f.ctrl.AddAdditionalImage(models.Attachment{LocalURI: "file:///scene.png", MimeType: "image/png", Filename: "scene.png"})
	require.NoError(t, err)
	f.ctrl.DecideConsent(false)
	f.ctrl.DecideConsent(true)

	f.submitter.EXPECT().Submit(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, d *models.ReportDraft) (*submission.Result, error) {
			assert.True(t, *d.BroadcastConsent)
			assert.True(t, d.PoliceStationAssignment.IsAutoAssign)
			return &submission.Result{Success: true, Attempts: 1, ClearDraft: true}, nil
		}).Times(1)
	f.store.EXPECT().Clear(gomock.Any()).Return(nil).Times(1)

	res, err := f.ctrl.Submit(ctx)
	f.ctrl.Close()

	require.NoError(t, err)
	assert.True(t, res.Success)
	d := f.ctrl.Draft()
	assert.Empty(t, d.PersonInvolved.FirstName)
	assert.Nil(t, d.BroadcastConsent)
	assert.Equal(t, "reporter-1", d.Reporter)
	assert.ElementsMatch(t, []string{"file:///r.jpg", "file:///scene.png"}, f.files.uris)
}

func TestSubmit_FailureKeepsDraft(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.fillSteps(t, "Taguig")
	f.ctrl.DecideConsent(true)
	apiErr := &models.NetworkError{Op: "create report", Err: errors.New("timeout")}

	f.submitter.EXPECT().Submit(ctx, gomock.Any()).Return(&submission.Result{Attempts: 3}, apiErr).Times(1)
	f.store.EXPECT().Clear(gomock.Any()).Times(0)

	_, err := f.ctrl.Submit(ctx)
	f.ctrl.Close()

	assert.ErrorIs(t, err, apiErr)
	assert.Equal(t, "Ramon", f.ctrl.Draft().PersonInvolved.FirstName)
	assert.Empty(t, f.files.uris)
}

func TestPersist_LatestWins(t *testing.T) {
	f := newFixture(t)
	started := make(chan struct{})
	release := make(chan struct{})
	var saved []*models.ReportDraft

	first := f.store.EXPECT().Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, d *models.ReportDraft) error {
			saved = append(saved, d)
			close(started)
			<-release
			return nil
		})
	f.store.EXPECT().Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, d *models.ReportDraft) error {
			saved = append(saved, d)
			return nil
		}).After(first)

	img := models.Attachment{LocalURI: "file:///x.png", MimeType: "image/png", Filename: "x.png"}
	_, err := f.ctrl.AddAdditionalImage(img)
	require.NoError(t, err)
	<-started
	for i := 0; i < 3; i++ {
		_, err = f.ctrl.AddAdditionalImage(img)
		require.NoError(t, err)
	}
	close(release)
	f.ctrl.Close()

	require.Len(t, saved, 2)
	assert.Len(t, saved[0].AdditionalImages, 1)
	assert.Len(t, saved[1].AdditionalImages, 4)
}

func TestPersist_FailureIsIgnored(t *testing.T) {
	f := newFixture(t)
	f.store.EXPECT().Save(gomock.Any(), gomock.Any()).
		Return(&models.PersistenceError{Op: "save", Err: errors.New("disk full")}).Times(1)

	res, err := f.ctrl.Advance(context.Background(), models.StepPersonDetails, personOutput())
	f.ctrl.Close()

	require.NoError(t, err)
	assert.Equal(t, models.StepLocation, res.Next)
}

func TestRestore(t *testing.T) {
	f := newFixture(t)
	defer f.ctrl.Close()
	stored := models.NewReportDraft("someone-else")
	stored.PersonInvolved.FirstName = "Ana"

	f.store.EXPECT().Load(gomock.Any()).Return(stored, nil).Times(1)

	d := f.ctrl.Restore(context.Background())

	require.NotNil(t, d)
	assert.Equal(t, "Ana", d.PersonInvolved.FirstName)
	assert.Equal(t, "reporter-1", d.Reporter)
	assert.Equal(t, stored.ID, f.ctrl.Draft().ID)
}

func TestRestore_StoreErrorStartsFresh(t *testing.T) {
	f := newFixture(t)
	defer f.ctrl.Close()

	f.store.EXPECT().Load(gomock.Any()).Return(nil, &models.PersistenceError{Op: "load", Err: errors.New("corrupted")}).Times(1)

	assert.Nil(t, f.ctrl.Restore(context.Background()))
	assert.Empty(t, f.ctrl.Draft().PersonInvolved.FirstName)
}
