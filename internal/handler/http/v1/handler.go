package v1

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/report_intake/internal/attachment"
	"github.com/shenikar/report_intake/internal/config"
	"github.com/shenikar/report_intake/internal/models"
	"github.com/shenikar/report_intake/internal/service"
	"github.com/shenikar/report_intake/internal/wizard"
	"github.com/sirupsen/logrus"
)

// maxUploadSize - предел размера одного загружаемого фото
const maxUploadSize = 10 << 20

// AttachmentStore сохраняет загруженные фото и проверяет ссылки на них
type AttachmentStore interface {
	Save(filename, contentType string, r io.Reader) (models.Attachment, error)
	Verify(a models.Attachment) error
}

type Handler struct {
	intakeService service.IntakeService
	attachments   AttachmentStore
	logger        *logrus.Logger
	validate      *validator.Validate
	cfg           *config.Config
}

func NewHandler(intakeService service.IntakeService, attachments AttachmentStore, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		intakeService: intakeService,
		attachments:   attachments,
		logger:        logger,
		validate:      validator.New(),
		cfg:           cfg,
	}
}

// bind разбирает и проверяет тело запроса, при ошибке сам пишет ответ
func (h *Handler) bind(c *gin.Context, log *logrus.Entry, input any) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// verifyAttachment принимает только фото, загруженные через /wizard/attachments
func (h *Handler) verifyAttachment(c *gin.Context, log *logrus.Entry, a *models.Attachment) bool {
	if a == nil {
		return true
	}
	if err := h.attachments.Verify(*a); err != nil {
		log.WithError(err).Warn("Rejected attachment reference")
		c.JSON(http.StatusBadRequest, gin.H{"error": attachment.ErrForeignAttachment.Error()})
		return false
	}
	return true
}

// writeError переводит ошибки мастера в HTTP-статусы
func (h *Handler) writeError(c *gin.Context, log *logrus.Entry, err error) {
	var (
		validationErr *models.ValidationError
		permissionErr *models.PermissionError
		networkErr    *models.NetworkError
		rejection     *models.ServerRejection
	)
	switch {
	case errors.As(err, &validationErr):
		log.WithError(err).Info("Step validation failed")
		c.JSON(http.StatusUnprocessableEntity, ValidationErrorResponse{
			Error:  "validation failed",
			Step:   validationErr.Step,
			Errors: validationErr.Fields,
		})
	case errors.As(err, &permissionErr):
		log.WithError(err).Warn("Permission denied")
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrSubmissionInProgress):
		c.JSON(http.StatusTooManyRequests, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrReporterRequired):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, wizard.ErrImageNotFound), errors.Is(err, wizard.ErrUnknownStation):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrConsentRequired),
		errors.Is(err, models.ErrStationRequired),
		errors.Is(err, models.ErrPhotoRequired),
		errors.Is(err, models.ErrAddressRequired),
		errors.Is(err, wizard.ErrManualModeRequired),
		errors.Is(err, wizard.ErrImageLimit),
		errors.Is(err, wizard.ErrFinalStep),
		errors.Is(err, wizard.ErrStepMismatch):
		log.WithError(err).Info("Wizard precondition not met")
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.As(err, &rejection), errors.As(err, &networkErr):
		log.WithError(err).Error("Upstream report service failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	default:
		log.WithError(err).Error("Unexpected wizard error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func (h *Handler) entry(c *gin.Context, method string) *logrus.Entry {
	return h.logger.WithFields(logrus.Fields{
		"method":   method,
		"reporter": reporterFrom(c),
	})
}

// @Summary Get the current wizard state
// @Description Restores the saved draft on first access and returns the current step and draft.
// @Tags Wizard
// @Produce json
// @Security ApiKeyAuth
// @Param X-Reporter-ID header string true "Reporter id"
// @Success 200 {object} StateResponse
// @Failure 400 {object} map[string]string "Reporter id missing"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /wizard/draft [get]
func (h *Handler) getDraft(c *gin.Context) {
	log := h.entry(c, "getDraft")

	state, err := h.intakeService.Open(c.Request.Context(), reporterFrom(c))
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, StateToResponse(state))
}

// @Summary Complete the person details step
// @Tags Wizard
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param X-Reporter-ID header string true "Reporter id"
// @Param step body PersonStepRequest true "Person details"
// @Success 200 {object} StepResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 422 {object} ValidationErrorResponse "Required fields missing"
// @Router /wizard/steps/person [post]
func (h *Handler) advancePerson(c *gin.Context) {
	log := h.entry(c, "advancePerson")
	var input PersonStepRequest
	if !h.bind(c, log, &input) {
		return
	}

	person := DTOToPersonDetails(input)
	if !h.verifyAttachment(c, log, person.Person.MostRecentPhoto) {
		return
	}

	res, err := h.intakeService.Advance(c.Request.Context(), reporterFrom(c), models.StepPersonDetails, person)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, StepResultToResponse(res))
}

// @Summary Complete the incident location step
// @Tags Wizard
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param X-Reporter-ID header string true "Reporter id"
// @Param step body LocationStepRequest true "Incident location"
// @Success 200 {object} StepResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 422 {object} ValidationErrorResponse "Required fields missing"
// @Router /wizard/steps/location [post]
func (h *Handler) advanceLocation(c *gin.Context) {
	log := h.entry(c, "advanceLocation")
	var input LocationStepRequest
	if !h.bind(c, log, &input) {
		return
	}

	res, err := h.intakeService.Advance(c.Request.Context(), reporterFrom(c), models.StepLocation, DTOToLocationDetails(input))
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, StepResultToResponse(res))
}

// @Summary Complete the police station step
// @Tags Wizard
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param X-Reporter-ID header string true "Reporter id"
// @Param step body StationStepRequest true "Station assignment"
// @Success 200 {object} StepResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Router /wizard/steps/station [post]
func (h *Handler) advanceStation(c *gin.Context) {
	log := h.entry(c, "advanceStation")
	var input StationStepRequest
	if !h.bind(c, log, &input) {
		return
	}

	res, err := h.intakeService.Advance(c.Request.Context(), reporterFrom(c), models.StepPoliceStation, DTOToStationSelection(input))
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, StepResultToResponse(res))
}

// @Summary Go back one step
// @Description Entered data stays in the draft.
// @Tags Wizard
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param X-Reporter-ID header string true "Reporter id"
// @Param step body BackRequest true "Current step"
// @Success 200 {object} StateResponse
// @Router /wizard/back [post]
func (h *Handler) goBack(c *gin.Context) {
	log := h.entry(c, "goBack")
	var input BackRequest
	if !h.bind(c, log, &input) {
		return
	}
	step, _ := models.ParseStep(input.Step)

	state, err := h.intakeService.GoBack(c.Request.Context(), reporterFrom(c), step)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, StateToResponse(state))
}

// @Summary Upload a photo
// @Description Stores the photo on the gateway and returns an attachment reference for the wizard steps.
// @Tags Wizard
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param X-Reporter-ID header string true "Reporter id"
// @Param file formData file true "Image file"
// @Success 201 {object} AttachmentDTO
// @Failure 400 {object} map[string]string "Missing or unsupported file"
// @Router /wizard/attachments [post]
func (h *Handler) uploadAttachment(c *gin.Context) {
	log := h.entry(c, "uploadAttachment")
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	fh, err := c.FormFile("file")
	if err != nil {
		log.WithError(err).Warn("Missing upload file")
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	src, err := fh.Open()
	if err != nil {
		log.WithError(err).Error("Failed to open upload")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	defer src.Close()

	att, err := h.attachments.Save(fh.Filename, fh.Header.Get("Content-Type"), src)
	if err != nil {
		if errors.Is(err, attachment.ErrUnsupportedType) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.WithError(err).Error("Failed to store upload")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, AttachmentDTO{LocalURI: att.LocalURI, MimeType: att.MimeType, Filename: att.Filename})
}

// @Summary Add an additional incident image
// @Tags Wizard
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param X-Reporter-ID header string true "Reporter id"
// @Param image body AttachmentDTO true "Attachment"
// @Success 200 {object} DraftResponse
// @Failure 400 {object} map[string]string "Attachment was not uploaded to this gateway"
// @Failure 409 {object} map[string]string "Image limit reached"
// @Router /wizard/images [post]
func (h *Handler) addImage(c *gin.Context) {
	log := h.entry(c, "addImage")
	var input AttachmentDTO
	if !h.bind(c, log, &input) {
		return
	}

	img := DTOToAttachment(&input)
	if !h.verifyAttachment(c, log, img) {
		return
	}

	d, err := h.intakeService.AddImage(c.Request.Context(), reporterFrom(c), *img)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, DraftResponse{Draft: d})
}

// @Summary Remove an additional incident image
// @Tags Wizard
// @Produce json
// @Security ApiKeyAuth
// @Param X-Reporter-ID header string true "Reporter id"
// @Param index path int true "Image index"
// @Success 200 {object} DraftResponse
// @Failure 404 {object} map[string]string "Image not found"
// @Router /wizard/images/{index} [delete]
func (h *Handler) removeImage(c *gin.Context) {
	log := h.entry(c, "removeImage")
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid image index"})
		return
	}

	d, err := h.intakeService.RemoveImage(c.Request.Context(), reporterFrom(c), index)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, DraftResponse{Draft: d})
}

// @Summary Switch to automatic station assignment
// @Description Discards any selected station.
// @Tags Wizard
// @Produce json
// @Security ApiKeyAuth
// @Param X-Reporter-ID header string true "Reporter id"
// @Success 200 {object} DraftResponse
// @Router /wizard/station/auto [post]
func (h *Handler) useAutomaticStation(c *gin.Context) {
	log := h.entry(c, "useAutomaticStation")

	d, err := h.intakeService.UseAutomaticStation(c.Request.Context(), reporterFrom(c))
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, DraftResponse{Draft: d})
}

// @Summary Switch to manual station selection
// @Description Rejected with 409 when the incident city is empty, the draft stays on automatic assignment.
// @Tags Wizard
// @Produce json
// @Security ApiKeyAuth
// @Param X-Reporter-ID header string true "Reporter id"
// @Success 200 {object} DraftResponse
// @Failure 409 {object} map[string]string "City is required"
// @Router /wizard/station/manual [post]
func (h *Handler) useManualStation(c *gin.Context) {
	log := h.entry(c, "useManualStation")

	d, err := h.intakeService.UseManualStation(c.Request.Context(), reporterFrom(c))
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, DraftResponse{Draft: d})
}

// @Summary Search police stations
// @Description Searches from the incident location or the device position. The nearest result is preselected.
// @Tags Wizard
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param X-Reporter-ID header string true "Reporter id"
// @Param search body StationSearchRequest true "Search origin"
// @Success 200 {object} SearchResponse
// @Failure 403 {object} map[string]string "Location permission denied"
// @Failure 409 {object} map[string]string "Manual mode or city required"
// @Failure 502 {object} map[string]string "Search service failed"
// @Router /wizard/station/search [post]
func (h *Handler) searchStations(c *gin.Context) {
	log := h.entry(c, "searchStations")
	var input StationSearchRequest
	if !h.bind(c, log, &input) {
		return
	}
	origin, locator := DTOToOrigin(input)

	res, err := h.intakeService.SearchStations(c.Request.Context(), reporterFrom(c), origin, locator)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, SearchResponse{Candidates: res.Candidates, Draft: res.Draft})
}

// @Summary Select a station from the latest search
// @Tags Wizard
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param X-Reporter-ID header string true "Reporter id"
// @Param station body SelectStationRequest true "Station id"
// @Success 200 {object} DraftResponse
// @Failure 404 {object} map[string]string "Station not among search results"
// @Router /wizard/station/select [post]
func (h *Handler) selectStation(c *gin.Context) {
	log := h.entry(c, "selectStation")
	var input SelectStationRequest
	if !h.bind(c, log, &input) {
		return
	}

	d, err := h.intakeService.SelectStation(c.Request.Context(), reporterFrom(c), input.StationID)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, DraftResponse{Draft: d})
}

// @Summary Get the broadcast consent prompt
// @Tags Wizard
// @Produce json
// @Security ApiKeyAuth
// @Param X-Reporter-ID header string true "Reporter id"
// @Success 200 {object} consent.Prompt
// @Router /wizard/consent [get]
func (h *Handler) consentPrompt(c *gin.Context) {
	log := h.entry(c, "consentPrompt")

	prompt, err := h.intakeService.ConsentPrompt(c.Request.Context(), reporterFrom(c))
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, prompt)
}

// @Summary Record the broadcast consent decision
// @Description Skip is recorded as false. The latest decision wins.
// @Tags Wizard
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param X-Reporter-ID header string true "Reporter id"
// @Param consent body ConsentRequest true "Decision"
// @Success 200 {object} DraftResponse
// @Router /wizard/consent [post]
func (h *Handler) decideConsent(c *gin.Context) {
	log := h.entry(c, "decideConsent")
	var input ConsentRequest
	if !h.bind(c, log, &input) {
		return
	}

	d, err := h.intakeService.DecideConsent(c.Request.Context(), reporterFrom(c), *input.Consent)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, DraftResponse{Draft: d})
}

// @Summary Submit the report
// @Description Sends the draft with up to 3 attempts. The draft is cleared on success and kept on failure.
// @Tags Wizard
// @Produce json
// @Security ApiKeyAuth
// @Param X-Reporter-ID header string true "Reporter id"
// @Success 200 {object} SubmitResponse
// @Failure 409 {object} map[string]string "Consent or station missing"
// @Failure 429 {object} map[string]string "Submission already in progress"
// @Failure 502 {object} map[string]string "Report service failed after all attempts"
// @Router /wizard/submit [post]
func (h *Handler) submit(c *gin.Context) {
	log := h.entry(c, "submit")

	res, err := h.intakeService.Submit(c.Request.Context(), reporterFrom(c))
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ResultToSubmitResponse(res))
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
