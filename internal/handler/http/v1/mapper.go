package v1

import (
	"github.com/shenikar/report_intake/internal/models"
	"github.com/shenikar/report_intake/internal/station"
	"github.com/shenikar/report_intake/internal/submission"
	"github.com/shenikar/report_intake/internal/wizard"
)

// DTOToAttachment преобразует DTO вложения в доменную модель
func DTOToAttachment(dto *AttachmentDTO) *models.Attachment {
	if dto == nil {
		return nil
	}
	return &models.Attachment{
		LocalURI: dto.LocalURI,
		MimeType: dto.MimeType,
		Filename: dto.Filename,
	}
}

// DTOToPersonDetails преобразует DTO шага в вывод шага мастера.
// Возраст, если он не передан, мастер вычислит сам по дате рождения.
func DTOToPersonDetails(dto PersonStepRequest) wizard.PersonDetails {
	return wizard.PersonDetails{
		Type: models.ReportType(dto.Type),
		Person: models.PersonInvolved{
			FirstName:         dto.FirstName,
			MiddleName:        dto.MiddleName,
			LastName:          dto.LastName,
			Alias:             dto.Alias,
			Relationship:      models.Relationship(dto.Relationship),
			DateOfBirth:       dto.DateOfBirth,
			Age:               dto.Age,
			LastSeenDate:      dto.LastSeenDate,
			LastSeenTime:      dto.LastSeenTime,
			LastKnownLocation: dto.LastKnownLocation,
			MostRecentPhoto:   DTOToAttachment(dto.MostRecentPhoto),
			Gender:            dto.Gender,
			Race:              dto.Race,
			Height:            dto.Height,
			Weight:            dto.Weight,
			EyeColor:          dto.EyeColor,
			HairColor:         dto.HairColor,
			ScarsMarksTattoos: dto.ScarsMarksTattoos,
			BirthDefects:      dto.BirthDefects,
			Prosthetics:       dto.Prosthetics,
			Medications:       dto.Medications,
			LastKnownClothing: dto.LastKnownClothing,
			OtherInformation:  dto.OtherInformation,
		},
	}
}

// DTOToLocationDetails преобразует DTO шага места происшествия
func DTOToLocationDetails(dto LocationStepRequest) wizard.LocationDetails {
	point := models.Point{Type: "Point"}
	if len(dto.Coordinates) == 2 {
		point = models.NewPoint(dto.Coordinates[0], dto.Coordinates[1])
	}
	return wizard.LocationDetails{Location: models.Location{
		Point: point,
		Address: models.Address{
			StreetAddress: dto.StreetAddress,
			Barangay:      dto.Barangay,
			City:          dto.City,
			ZipCode:       dto.ZipCode,
		},
	}}
}

// DTOToStationSelection преобразует DTO шага выбора участка
func DTOToStationSelection(dto StationStepRequest) wizard.StationSelection {
	a := models.PoliceStationAssignment{IsAutoAssign: dto.IsAutoAssign}
	if dto.AssignedStation != nil {
		a.AssignedStation = &models.StationRef{
			ID:      dto.AssignedStation.ID,
			Name:    dto.AssignedStation.Name,
			Address: dto.AssignedStation.Address,
		}
	}
	return wizard.StationSelection{Assignment: a}
}

// DTOToOrigin выбирает точку отсчета поиска и источник геолокации
func DTOToOrigin(dto StationSearchRequest) (station.Origin, station.Locator) {
	if dto.Origin == station.OriginDevice.String() {
		fix := station.DeviceFix{}
		if dto.Device != nil {
			fix = *dto.Device
		}
		return station.OriginDevice, fix
	}
	return station.OriginIncident, nil
}

// StateToResponse преобразует состояние мастера в DTO
func StateToResponse(s wizard.State) *StateResponse {
	return &StateResponse{
		Step:       s.Step.String(),
		Draft:      s.Draft,
		Candidates: s.Candidates,
		Submitting: s.Submitting,
	}
}

// StepResultToResponse преобразует итог перехода в DTO
func StepResultToResponse(r wizard.StepResult) *StepResponse {
	return &StepResponse{
		Next:  r.Next.String(),
		Draft: r.Draft,
	}
}

// ResultToSubmitResponse преобразует итог отправки в DTO
func ResultToSubmitResponse(r *submission.Result) *SubmitResponse {
	return &SubmitResponse{
		Success:  r.Success,
		Attempts: r.Attempts,
		Report:   r.Report,
	}
}
