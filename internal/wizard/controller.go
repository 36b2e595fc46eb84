package wizard

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/shenikar/report_intake/internal/consent"
	"github.com/shenikar/report_intake/internal/models"
	"github.com/shenikar/report_intake/internal/station"
	"github.com/shenikar/report_intake/internal/submission"
	"github.com/sirupsen/logrus"
)

var (
	ErrFinalStep          = errors.New("preview is the final step, submit the report instead")
	ErrStepMismatch       = errors.New("step output does not belong to the current step")
	ErrManualModeRequired = errors.New("station search is only available in manual mode")
	ErrUnknownStation     = errors.New("station is not among the latest search results")
	ErrImageLimit         = fmt.Errorf("no more than %d additional images are allowed", models.MaxAdditionalImages)
	ErrImageNotFound      = errors.New("additional image not found")
)

// Validator проверяет обязательные поля шага
type Validator interface {
	Check(step models.Step, draft *models.ReportDraft) error
}

// DraftStore - слот черновика заявителя
type DraftStore interface {
	Save(ctx context.Context, d *models.ReportDraft) error
	Load(ctx context.Context) (*models.ReportDraft, error)
	Clear(ctx context.Context) error
}

// StationResolver назначает полицейский участок
type StationResolver interface {
	ResolveAutomatic() models.PoliceStationAssignment
	UseManual(d *models.ReportDraft) (models.PoliceStationAssignment, error)
	SearchManual(ctx context.Context, origin station.Origin, locator station.Locator, d *models.ReportDraft) ([]models.StationCandidate, error)
	SelectCandidate(c models.StationCandidate) models.PoliceStationAssignment
}

// ConsentGate - решение о согласии на оповещение
type ConsentGate interface {
	RequestConsent() consent.Prompt
	Decide(d *models.ReportDraft, consent bool) *models.ReportDraft
	Require(d *models.ReportDraft) error
}

// Submitter отправляет заявление
type Submitter interface {
	Submit(ctx context.Context, d *models.ReportDraft) (*submission.Result, error)
	Submitting() bool
}

// AttachmentRemover удаляет файлы вложений, которые больше не нужны
type AttachmentRemover interface {
	Remove(a models.Attachment) error
}

// Wizard - навигация по шагам и отправка
type Wizard interface {
	Advance(ctx context.Context, current models.Step, out StepOutput) (StepResult, error)
	GoBack(current models.Step) models.Step
	Submit(ctx context.Context) (*submission.Result, error)
}

var _ Wizard = (*Controller)(nil)

// Deps - зависимости контроллера
type Deps struct {
	Validator Validator
	Store     DraftStore
	Resolver  StationResolver
	Consent   ConsentGate
	Submitter Submitter
	// Attachments - хранилище загруженных фото, может быть nil
	Attachments AttachmentRemover
	// Addresses - справочник городов и барангаев, может быть nil
	Addresses models.AddressDirectory
	Logger    *logrus.Logger
	// Now - источник текущего времени, по умолчанию time.Now
	Now func() time.Time
}

// State - текущее состояние мастера
type State struct {
	Step       models.Step               `json:"step"`
	Draft      *models.ReportDraft       `json:"draft"`
	Candidates []models.StationCandidate `json:"candidates,omitempty"`
	Submitting bool                      `json:"submitting"`
}

// SearchResult - итог ручного поиска участков
type SearchResult struct {
	Candidates []models.StationCandidate `json:"candidates"`
	Draft      *models.ReportDraft       `json:"draft"`
}

// Controller ведет черновик одного заявителя по шагам.
// Черновик - единственный источник истины, наружу отдаются только копии.
type Controller struct {
	reporter    string
	validator   Validator
	store       DraftStore
	resolver    StationResolver
	consent     ConsentGate
	submitter   Submitter
	attachments AttachmentRemover
	addresses   models.AddressDirectory
	logger      *logrus.Logger
	now         func() time.Time
	persist     *persister

	mu         sync.Mutex
	step       models.Step
	draft      *models.ReportDraft
	candidates []models.StationCandidate
}

func NewController(reporter string, deps Deps) *Controller {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	return &Controller{
		reporter:    reporter,
		validator:   deps.Validator,
		store:       deps.Store,
		resolver:    deps.Resolver,
		consent:     deps.Consent,
		submitter:   deps.Submitter,
		attachments: deps.Attachments,
		addresses:   deps.Addresses,
		logger:      deps.Logger,
		now:         now,
		persist:     newPersister(deps.Store, deps.Logger),
		step:        models.StepPersonDetails,
		draft:       models.NewReportDraft(reporter),
	}
}

func (c *Controller) log(method string) *logrus.Entry {
	return c.logger.WithFields(logrus.Fields{
		"service":  "wizard",
		"method":   method,
		"reporter": c.reporter,
	})
}

// Restore поднимает сохраненный черновик и возвращает его копию.
// Ошибки хранилища логируются, мастер продолжает с пустым черновиком.
func (c *Controller) Restore(ctx context.Context) *models.ReportDraft {
	log := c.log("Restore")

	d, err := c.store.Load(ctx)
	if err != nil {
		log.WithError(err).Warn("Failed to restore draft, starting from scratch")
		return nil
	}
	if d == nil {
		log.Debug("No saved draft")
		return nil
	}
	d.Reporter = c.reporter

	c.mu.Lock()
	defer c.mu.Unlock()
	c.draft = d
	c.step = models.StepPersonDetails
	c.candidates = nil
	log.WithField("draft_id", d.ID).Info("Draft restored")
	return d.Clone()
}

// State возвращает копию текущего состояния
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return State{
		Step:       c.step,
		Draft:      c.draft.Clone(),
		Candidates: append([]models.StationCandidate(nil), c.candidates...),
		Submitting: c.submitter.Submitting(),
	}
}

// Draft возвращает копию черновика
func (c *Controller) Draft() *models.ReportDraft {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft.Clone()
}

// Advance вливает вывод шага в черновик и переходит дальше. Если проверка
// не пройдена, черновик и шаг не меняются и ничего не сохраняется.
func (c *Controller) Advance(_ context.Context, current models.Step, out StepOutput) (StepResult, error) {
	log := c.log("Advance").WithField("step", current.String())

	if current == models.StepPreview {
		return StepResult{}, ErrFinalStep
	}
	if !current.Valid() || out == nil || out.Step() != current {
		return StepResult{}, ErrStepMismatch
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if current != c.step {
		log.WithField("current", c.step.String()).Warn("Step is not the current one")
		return StepResult{}, ErrStepMismatch
	}

	candidate := c.draft.Clone()
	out.apply(candidate, c.now())
	if err := c.validator.Check(current, candidate); err != nil {
		log.WithError(err).Info("Step rejected by validation")
		return StepResult{}, err
	}
	if current == models.StepLocation {
		if err := c.checkAddress(candidate.Location.Address); err != nil {
			log.WithError(err).Info("Address rejected by directory")
			return StepResult{}, err
		}
	}

	candidate.UpdatedAt = c.now()
	c.draft = candidate
	c.step = current + 1
	c.persist.save(candidate.Clone())

	log.WithField("next", c.step.String()).Info("Step completed")
	return StepResult{Next: c.step, Draft: candidate.Clone()}, nil
}

// checkAddress сверяет город и барангай со справочником. Недоступный
// справочник не блокирует шаг. Город без списка барангаев принимает любой.
func (c *Controller) checkAddress(addr models.Address) error {
	if c.addresses == nil {
		return nil
	}
	log := c.log("checkAddress")
	reject := func(field, msg string) error {
		return &models.ValidationError{Step: models.StepLocation.String(), Fields: map[string]string{field: msg}}
	}

	cities, err := c.addresses.Cities()
	if err != nil {
		log.WithError(err).Warn("Address directory unavailable, skipping check")
		return nil
	}
	city, ok := lookupName(cities, addr.City)
	if !ok {
		return reject("city", "Unknown city")
	}

	barangays, err := c.addresses.Barangays(city)
	if err != nil {
		log.WithError(err).Warn("Address directory unavailable, skipping check")
		return nil
	}
	if len(barangays) == 0 {
		return nil
	}
	if _, ok := lookupName(barangays, addr.Barangay); !ok {
		return reject("barangay", "Unknown barangay for "+city)
	}
	return nil
}

func lookupName(names []string, want string) (string, bool) {
	want = strings.TrimSpace(want)
	for _, n := range names {
		if strings.EqualFold(n, want) {
			return n, true
		}
	}
	return "", false
}

// GoBack возвращает предыдущий шаг. Введенные данные остаются в черновике.
func (c *Controller) GoBack(current models.Step) models.Step {
	prev := current - 1
	if prev < models.StepPersonDetails || !current.Valid() {
		prev = models.StepPersonDetails
	}
	c.mu.Lock()
	c.step = prev
	c.mu.Unlock()
	return prev
}

// mutate применяет изменение к черновику и ставит его в очередь на сохранение
func (c *Controller) mutate(fn func(d *models.ReportDraft) error) (*models.ReportDraft, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	candidate := c.draft.Clone()
	if err := fn(candidate); err != nil {
		return c.draft.Clone(), err
	}
	candidate.UpdatedAt = c.now()
	c.draft = candidate
	c.persist.save(candidate.Clone())
	return candidate.Clone(), nil
}

// AddAdditionalImage добавляет фото места происшествия
func (c *Controller) AddAdditionalImage(img models.Attachment) (*models.ReportDraft, error) {
	return c.mutate(func(d *models.ReportDraft) error {
		if !d.AddAdditionalImage(img) {
			return ErrImageLimit
		}
		return nil
	})
}

// RemoveAdditionalImage удаляет фото по индексу вместе с его файлом
func (c *Controller) RemoveAdditionalImage(index int) (*models.ReportDraft, error) {
	var removed models.Attachment
	d, err := c.mutate(func(d *models.ReportDraft) error {
		if index >= 0 && index < len(d.AdditionalImages) {
			removed = d.AdditionalImages[index]
		}
		if !d.RemoveAdditionalImage(index) {
			return ErrImageNotFound
		}
		return nil
	})
	if err != nil {
		return d, err
	}
	c.discard(d, removed)
	return d, nil
}

// discard удаляет файлы вложений, на которые черновик keep больше не ссылается.
// Ошибки удаления только логируются.
func (c *Controller) discard(keep *models.ReportDraft, atts ...models.Attachment) {
	if c.attachments == nil {
		return
	}
	inUse := make(map[string]bool)
	if keep != nil {
		if p := keep.PersonInvolved.MostRecentPhoto; p != nil {
			inUse[p.LocalURI] = true
		}
		for _, img := range keep.AdditionalImages {
			inUse[img.LocalURI] = true
		}
	}
	for _, a := range atts {
		if a.LocalURI == "" || inUse[a.LocalURI] {
			continue
		}
		inUse[a.LocalURI] = true
		if err := c.attachments.Remove(a); err != nil {
			c.log("discard").WithError(err).WithField("filename", a.Filename).Warn("Failed to remove attachment file")
		}
	}
}

// UseAutomaticStation включает автоназначение и сбрасывает выбранный участок
func (c *Controller) UseAutomaticStation() *models.ReportDraft {
	d, _ := c.mutate(func(d *models.ReportDraft) error {
		d.PoliceStationAssignment = c.resolver.ResolveAutomatic()
		return nil
	})
	c.mu.Lock()
	c.candidates = nil
	c.mu.Unlock()
	return d
}

// UseManualStation включает ручной выбор. Без города остается автоназначение
// и возвращается ErrAddressRequired.
func (c *Controller) UseManualStation() (*models.ReportDraft, error) {
	var guardErr error
	d, _ := c.mutate(func(d *models.ReportDraft) error {
		assignment, err := c.resolver.UseManual(d)
		d.PoliceStationAssignment = assignment
		guardErr = err
		return nil
	})
	if guardErr != nil {
		c.log("UseManualStation").WithError(guardErr).Warn("Manual station mode rejected")
	}
	return d, guardErr
}

// SearchStations ищет участки и предварительно выбирает ближайший.
// Блокировка на время сетевого запроса не удерживается.
func (c *Controller) SearchStations(ctx context.Context, origin station.Origin, locator station.Locator) (*SearchResult, error) {
	log := c.log("SearchStations").WithField("origin", origin.String())

	snapshot := c.Draft()
	if snapshot.PoliceStationAssignment.IsAutoAssign {
		return nil, ErrManualModeRequired
	}

	candidates, err := c.resolver.SearchManual(ctx, origin, locator, snapshot)
	if err != nil {
		log.WithError(err).Warn("Station search failed")
		return nil, err
	}

	c.mu.Lock()
	c.candidates = candidates
	c.mu.Unlock()

	d := c.Draft()
	if nearest, ok := station.DefaultCandidate(candidates); ok {
		d, _ = c.mutate(func(d *models.ReportDraft) error {
			// режим мог смениться, пока шел поиск
			if !d.PoliceStationAssignment.IsAutoAssign {
				d.PoliceStationAssignment = c.resolver.SelectCandidate(nearest)
			}
			return nil
		})
	}
	log.WithField("count", len(candidates)).Info("Station search completed")
	return &SearchResult{Candidates: candidates, Draft: d}, nil
}

// SelectStation назначает участок из последних результатов поиска
func (c *Controller) SelectStation(id string) (*models.ReportDraft, error) {
	c.mu.Lock()
	var found *models.StationCandidate
	for i := range c.candidates {
		if c.candidates[i].ID == id {
			found = &c.candidates[i]
			break
		}
	}
	c.mu.Unlock()
	if found == nil {
		return c.Draft(), ErrUnknownStation
	}
	selected := *found
	return c.mutate(func(d *models.ReportDraft) error {
		d.PoliceStationAssignment = c.resolver.SelectCandidate(selected)
		return nil
	})
}

// RequestConsent возвращает запрос согласия
func (c *Controller) RequestConsent() consent.Prompt {
	return c.consent.RequestConsent()
}

// DecideConsent записывает решение о согласии, действует последнее
func (c *Controller) DecideConsent(decision bool) *models.ReportDraft {
	d, _ := c.mutate(func(d *models.ReportDraft) error {
		*d = *c.consent.Decide(d, decision)
		return nil
	})
	return d
}

// Submit отправляет черновик. При успехе черновик удаляется из хранилища и мастер
// начинает новый, при ошибке черновик сохраняется для повторной отправки.
func (c *Controller) Submit(ctx context.Context) (*submission.Result, error) {
	log := c.log("Submit")
	d := c.Draft()

	if err := c.consent.Require(d); err != nil {
		return nil, err
	}
	if a := d.PoliceStationAssignment; !a.IsAutoAssign && a.AssignedStation == nil {
		return nil, models.ErrStationRequired
	}
	if d.PersonInvolved.MostRecentPhoto == nil {
		return nil, models.ErrPhotoRequired
	}
	for _, step := range []models.Step{models.StepPersonDetails, models.StepLocation} {
		if err := c.validator.Check(step, d); err != nil {
			return nil, err
		}
	}

	res, err := c.submitter.Submit(ctx, d)
	if err != nil {
		if !errors.Is(err, models.ErrSubmissionInProgress) {
			log.WithError(err).Error("Report submission failed, draft kept for retry")
		}
		return res, err
	}

	if res.ClearDraft {
		c.mu.Lock()
		c.draft = models.NewReportDraft(c.reporter)
		c.step = models.StepPersonDetails
		c.candidates = nil
		c.persist.clear()
		c.mu.Unlock()

		sent := append([]models.Attachment(nil), d.AdditionalImages...)
		if p := d.PersonInvolved.MostRecentPhoto; p != nil {
			sent = append(sent, *p)
		}
		c.discard(nil, sent...)
	}
	log.WithField("attempts", res.Attempts).Info("Report submitted, draft cleared")
	return res, nil
}

// Close дожидается последней записи черновика
func (c *Controller) Close() {
	c.persist.close()
}
