package v1

import (
	"encoding/json"
	"time"

	"github.com/shenikar/report_intake/internal/models"
	"github.com/shenikar/report_intake/internal/station"
)

// AttachmentDTO DTO вложения, выбранного на устройстве
// @Description DTO вложения
type AttachmentDTO struct {
	LocalURI string `json:"localUri" validate:"required"`
	MimeType string `json:"mimeType" validate:"required"`
	Filename string `json:"filename" validate:"required,max=255"`
}

// PersonStepRequest DTO шага сведений о пропавшем
// @Description DTO шага сведений о пропавшем
type PersonStepRequest struct {
	Type              string         `json:"type,omitempty" validate:"omitempty,max=32"`
	FirstName         string         `json:"firstName" validate:"max=255"`
	MiddleName        string         `json:"middleName,omitempty" validate:"max=255"`
	LastName          string         `json:"lastName" validate:"max=255"`
	Alias             string         `json:"alias,omitempty" validate:"max=255"`
	Relationship      string         `json:"relationship" validate:"max=32"`
	DateOfBirth       *time.Time     `json:"dateOfBirth,omitempty"`
	Age               *int           `json:"age,omitempty" validate:"omitempty,gte=0,lte=150"`
	LastSeenDate      *time.Time     `json:"lastSeenDate,omitempty"`
	LastSeenTime      *time.Time     `json:"lastSeenTime,omitempty"`
	LastKnownLocation string         `json:"lastKnownLocation" validate:"max=512"`
	MostRecentPhoto   *AttachmentDTO `json:"mostRecentPhoto,omitempty"`
	Gender            string         `json:"gender,omitempty" validate:"max=64"`
	Race              string         `json:"race,omitempty" validate:"max=64"`
	Height            string         `json:"height,omitempty" validate:"max=64"`
	Weight            string         `json:"weight,omitempty" validate:"max=64"`
	EyeColor          string         `json:"eyeColor,omitempty" validate:"max=64"`
	HairColor         string         `json:"hairColor,omitempty" validate:"max=64"`
	ScarsMarksTattoos string         `json:"scarsMarksTattoos,omitempty" validate:"max=1024"`
	BirthDefects      string         `json:"birthDefects,omitempty" validate:"max=1024"`
	Prosthetics       string         `json:"prosthetics,omitempty" validate:"max=1024"`
	Medications       string         `json:"medications,omitempty" validate:"max=1024"`
	LastKnownClothing string         `json:"lastKnownClothing,omitempty" validate:"max=1024"`
	OtherInformation  string         `json:"otherInformation,omitempty" validate:"max=2048"`
}

// LocationStepRequest DTO шага места происшествия
// @Description DTO шага места происшествия
type LocationStepRequest struct {
	Coordinates   []float64 `json:"coordinates,omitempty" validate:"omitempty,len=2"`
	StreetAddress string    `json:"streetAddress" validate:"max=255"`
	Barangay      string    `json:"barangay" validate:"max=255"`
	City          string    `json:"city" validate:"max=255"`
	ZipCode       string    `json:"zipCode" validate:"max=16"`
}

// StationRefDTO DTO выбранного участка
// @Description DTO выбранного участка
type StationRefDTO struct {
	ID      string `json:"id" validate:"required"`
	Name    string `json:"name" validate:"required"`
	Address string `json:"address,omitempty"`
}

// StationStepRequest DTO шага выбора участка
// @Description DTO шага выбора участка
type StationStepRequest struct {
	IsAutoAssign    bool           `json:"isAutoAssign"`
	AssignedStation *StationRefDTO `json:"assignedStation,omitempty"`
}

// BackRequest DTO возврата на предыдущий шаг
// @Description DTO возврата на предыдущий шаг
type BackRequest struct {
	Step string `json:"step" validate:"required,oneof=person_details location police_station preview"`
}

// StationSearchRequest DTO ручного поиска участков
// @Description DTO ручного поиска участков
type StationSearchRequest struct {
	Origin string             `json:"origin" validate:"omitempty,oneof=incident device"`
	Device *station.DeviceFix `json:"device,omitempty"`
}

// SelectStationRequest DTO выбора участка из результатов поиска
// @Description DTO выбора участка
type SelectStationRequest struct {
	StationID string `json:"stationId" validate:"required"`
}

// ConsentRequest DTO решения о согласии на оповещение
// @Description DTO решения о согласии
type ConsentRequest struct {
	Consent *bool `json:"consent" validate:"required"`
}

// StateResponse DTO состояния мастера
// @Description DTO состояния мастера
type StateResponse struct {
	Step       string                    `json:"step"`
	Draft      *models.ReportDraft       `json:"draft"`
	Candidates []models.StationCandidate `json:"candidates,omitempty"`
	Submitting bool                      `json:"submitting"`
}

// StepResponse DTO результата перехода
// @Description DTO результата перехода
type StepResponse struct {
	Next  string              `json:"next"`
	Draft *models.ReportDraft `json:"draft"`
}

// DraftResponse DTO черновика
// @Description DTO черновика
type DraftResponse struct {
	Draft *models.ReportDraft `json:"draft"`
}

// SearchResponse DTO результатов поиска участков
// @Description DTO результатов поиска участков
type SearchResponse struct {
	Candidates []models.StationCandidate `json:"candidates"`
	Draft      *models.ReportDraft       `json:"draft"`
}

// SubmitResponse DTO результата отправки
// @Description DTO результата отправки
type SubmitResponse struct {
	Success  bool            `json:"success"`
	Attempts int             `json:"attempts"`
	Report   json.RawMessage `json:"report,omitempty" swaggertype:"object"`
}

// ValidationErrorResponse DTO ошибок проверки шага
// @Description DTO ошибок проверки шага
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Step   string            `json:"step"`
	Errors map[string]string `json:"errors"`
}
