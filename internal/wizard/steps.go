package wizard

import (
	"time"

	"github.com/shenikar/report_intake/internal/models"
)

// StepOutput - данные, собранные формой одного шага
type StepOutput interface {
	Step() models.Step
	apply(d *models.ReportDraft, now time.Time)
}

// StepResult - итог успешного перехода
type StepResult struct {
	Next  models.Step         `json:"next"`
	Draft *models.ReportDraft `json:"draft"`
}

// PersonDetails - вывод шага сведений о пропавшем
type PersonDetails struct {
	Type   models.ReportType
	Person models.PersonInvolved
}

func (PersonDetails) Step() models.Step { return models.StepPersonDetails }

// Возраст вычисляется только при выборе новой даты рождения, иначе сохраняется прежний.
func (o PersonDetails) apply(d *models.ReportDraft, now time.Time) {
	if o.Type != "" {
		d.Type = o.Type
	}
	person := o.Person
	prev := d.PersonInvolved
	if person.DateOfBirth != nil && person.Age == nil {
		if prev.DateOfBirth != nil && prev.Age != nil && prev.DateOfBirth.Equal(*person.DateOfBirth) {
			age := *prev.Age
			person.Age = &age
		} else {
			person.SetDateOfBirth(*person.DateOfBirth, now)
		}
	}
	d.PersonInvolved = person
}

// LocationDetails - вывод шага места происшествия
type LocationDetails struct {
	Location models.Location
}

func (LocationDetails) Step() models.Step { return models.StepLocation }

func (o LocationDetails) apply(d *models.ReportDraft, _ time.Time) {
	loc := o.Location
	if loc.Type == "" {
		loc.Type = "Point"
	}
	d.Location = loc
}

// StationSelection - вывод шага выбора участка
type StationSelection struct {
	Assignment models.PoliceStationAssignment
}

func (StationSelection) Step() models.Step { return models.StepPoliceStation }

func (o StationSelection) apply(d *models.ReportDraft, _ time.Time) {
	a := o.Assignment
	if a.IsAutoAssign {
		a.AssignedStation = nil
	}
	d.PoliceStationAssignment = a
}
