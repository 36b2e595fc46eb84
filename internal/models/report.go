package models

import (
	"time"

	"github.com/google/uuid"
)

// ReportType - категория заявления
type ReportType string

const (
	ReportTypeMissing   ReportType = "Missing"
	ReportTypeAbsent    ReportType = "Absent"
	ReportTypeAbducted  ReportType = "Abducted"
	ReportTypeKidnapped ReportType = "Kidnapped"
	ReportTypeHitAndRun ReportType = "Hit-and-Run"
)

// Relationship - кем заявитель приходится пропавшему
type Relationship string

const (
	RelationshipParent    Relationship = "Parent"
	RelationshipChild     Relationship = "Child"
	RelationshipSibling   Relationship = "Sibling"
	RelationshipSpouse    Relationship = "Spouse"
	RelationshipRelative  Relationship = "Relative"
	RelationshipFriend    Relationship = "Friend"
	RelationshipColleague Relationship = "Colleague"
	RelationshipNeighbor  Relationship = "Neighbor"
	RelationshipGuardian  Relationship = "Guardian"
	RelationshipOther     Relationship = "Other"
)

// MaxAdditionalImages - предел дополнительных фотографий места происшествия
const MaxAdditionalImages = 5

// Attachment - файл, выбранный на устройстве
type Attachment struct {
	LocalURI string `json:"localUri"`
	MimeType string `json:"mimeType"`
	Filename string `json:"filename"`
}

// PersonInvolved - данные о пропавшем человеке
type PersonInvolved struct {
	FirstName         string       `json:"firstName" validate:"required"`
	MiddleName        string       `json:"middleName,omitempty"`
	LastName          string       `json:"lastName" validate:"required"`
	Alias             string       `json:"alias,omitempty"`
	Relationship      Relationship `json:"relationship" validate:"required,relationship"`
	DateOfBirth       *time.Time   `json:"dateOfBirth" validate:"required"`
	Age               *int         `json:"age" validate:"required,gte=0"`
	LastSeenDate      *time.Time   `json:"lastSeenDate" validate:"required"`
	LastSeenTime      *time.Time   `json:"lastSeenTime,omitempty"`
	LastKnownLocation string       `json:"lastKnownLocation" validate:"required"`
	MostRecentPhoto   *Attachment  `json:"mostRecentPhoto" validate:"required"`

	Gender            string `json:"gender,omitempty"`
	Race              string `json:"race,omitempty"`
	Height            string `json:"height,omitempty"`
	Weight            string `json:"weight,omitempty"`
	EyeColor          string `json:"eyeColor,omitempty"`
	HairColor         string `json:"hairColor,omitempty"`
	ScarsMarksTattoos string `json:"scarsMarksTattoos,omitempty"`
	BirthDefects      string `json:"birthDefects,omitempty"`
	Prosthetics       string `json:"prosthetics,omitempty"`
	Medications       string `json:"medications,omitempty"`
	LastKnownClothing string `json:"lastKnownClothing,omitempty"`
	OtherInformation  string `json:"otherInformation,omitempty"`
}

// SetDateOfBirth фиксирует дату рождения и возраст на момент выбора даты.
// Возраст больше не пересчитывается, в том числе при отправке.
func (p *PersonInvolved) SetDateOfBirth(dob, now time.Time) {
	age := now.Year() - dob.Year()
	p.DateOfBirth = &dob
	p.Age = &age
}

// Point - точка в формате GeoJSON, координаты [lon, lat]
type Point struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

// NewPoint создает точку из долготы и широты
func NewPoint(lon, lat float64) Point {
	return Point{Type: "Point", Coordinates: []float64{lon, lat}}
}

// HasCoordinates сообщает, заданы ли координаты
func (p Point) HasCoordinates() bool {
	return len(p.Coordinates) == 2
}

// Address - структурированный адрес места происшествия
type Address struct {
	StreetAddress string `json:"streetAddress" validate:"required"`
	Barangay      string `json:"barangay" validate:"required"`
	City          string `json:"city" validate:"required"`
	ZipCode       string `json:"zipCode" validate:"required,numeric"`
}

// Location - место происшествия
type Location struct {
	Point
	Address Address `json:"address"`
}

// StationRef - ссылка на выбранный полицейский участок
type StationRef struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
}

// PoliceStationAssignment - способ назначения участка
type PoliceStationAssignment struct {
	IsAutoAssign    bool        `json:"isAutoAssign"`
	AssignedStation *StationRef `json:"assignedStation,omitempty"`
}

// ReportDraft - накапливаемый по шагам черновик заявления
type ReportDraft struct {
	ID                      uuid.UUID               `json:"id"`
	Reporter                string                  `json:"reporter"`
	Type                    ReportType              `json:"type,omitempty"`
	PersonInvolved          PersonInvolved          `json:"personInvolved"`
	Location                Location                `json:"location"`
	AdditionalImages        []Attachment            `json:"additionalImages"`
	PoliceStationAssignment PoliceStationAssignment `json:"policeStationAssignment"`
	BroadcastConsent        *bool                   `json:"broadcastConsent,omitempty"`
	UpdatedAt               time.Time               `json:"updatedAt"`
}

// NewReportDraft создает пустой черновик для заявителя.
// По умолчанию участок назначается автоматически.
func NewReportDraft(reporter string) *ReportDraft {
	return &ReportDraft{
		ID:       uuid.New(),
		Reporter: reporter,
		Type:     ReportTypeMissing,
		Location: Location{Point: Point{Type: "Point"}},
		PoliceStationAssignment: PoliceStationAssignment{
			IsAutoAssign: true,
		},
	}
}

// Clone возвращает глубокую копию черновика
func (d *ReportDraft) Clone() *ReportDraft {
	if d == nil {
		return nil
	}
	c := *d
	c.PersonInvolved.DateOfBirth = cloneTime(d.PersonInvolved.DateOfBirth)
	c.PersonInvolved.LastSeenDate = cloneTime(d.PersonInvolved.LastSeenDate)
	c.PersonInvolved.LastSeenTime = cloneTime(d.PersonInvolved.LastSeenTime)
	if d.PersonInvolved.Age != nil {
		age := *d.PersonInvolved.Age
		c.PersonInvolved.Age = &age
	}
	if d.PersonInvolved.MostRecentPhoto != nil {
		photo := *d.PersonInvolved.MostRecentPhoto
		c.PersonInvolved.MostRecentPhoto = &photo
	}
	if d.Location.Coordinates != nil {
		c.Location.Coordinates = append([]float64(nil), d.Location.Coordinates...)
	}
	if d.AdditionalImages != nil {
		c.AdditionalImages = append([]Attachment(nil), d.AdditionalImages...)
	}
	if d.PoliceStationAssignment.AssignedStation != nil {
		station := *d.PoliceStationAssignment.AssignedStation
		c.PoliceStationAssignment.AssignedStation = &station
	}
	if d.BroadcastConsent != nil {
		consent := *d.BroadcastConsent
		c.BroadcastConsent = &consent
	}
	return &c
}

// AddAdditionalImage добавляет фото, пока не достигнут предел.
// Возвращает false, если фото не добавлено.
func (d *ReportDraft) AddAdditionalImage(img Attachment) bool {
	if len(d.AdditionalImages) >= MaxAdditionalImages {
		return false
	}
	d.AdditionalImages = append(d.AdditionalImages, img)
	return true
}

// RemoveAdditionalImage удаляет фото по индексу
func (d *ReportDraft) RemoveAdditionalImage(index int) bool {
	if index < 0 || index >= len(d.AdditionalImages) {
		return false
	}
	d.AdditionalImages = append(d.AdditionalImages[:index], d.AdditionalImages[index+1:]...)
	return true
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
