package draft

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shenikar/report_intake/internal/models"
)

// field - одно значение документа черновика. Кодируется отдельно от остальных.
type field struct {
	name  string
	value any
}

// encoder собирает документ черновика, пропуская поля, которые не удалось закодировать
type encoder struct {
	dropped []string
}

func (e *encoder) object(prefix string, fields []field) json.RawMessage {
	out := make(map[string]json.RawMessage, len(fields))
	for _, f := range fields {
		if f.value == nil {
			continue
		}
		if raw, ok := f.value.(json.RawMessage); ok {
			out[f.name] = raw
			continue
		}
		raw, err := json.Marshal(f.value)
		if err != nil {
			e.dropped = append(e.dropped, joinPath(prefix, f.name))
			continue
		}
		out[f.name] = raw
	}
	// map[string]json.RawMessage с валидными значениями кодируется всегда
	raw, _ := json.Marshal(out)
	return raw
}

// Encode сериализует черновик. Даты переводятся в ISO-8601 (UTC).
// Возвращает пути полей, которые пришлось отбросить.
func Encode(d *models.ReportDraft) ([]byte, []string) {
	e := &encoder{}
	p := d.PersonInvolved

	person := e.object("personInvolved", []field{
		{"firstName", p.FirstName},
		{"middleName", optString(p.MiddleName)},
		{"lastName", p.LastName},
		{"alias", optString(p.Alias)},
		{"relationship", optString(string(p.Relationship))},
		{"dateOfBirth", isoTime(p.DateOfBirth)},
		{"age", optInt(p.Age)},
		{"lastSeenDate", isoTime(p.LastSeenDate)},
		{"lastSeenTime", isoTime(p.LastSeenTime)},
		{"lastKnownLocation", p.LastKnownLocation},
		{"mostRecentPhoto", optAttachment(p.MostRecentPhoto)},
		{"gender", optString(p.Gender)},
		{"race", optString(p.Race)},
		{"height", optString(p.Height)},
		{"weight", optString(p.Weight)},
		{"eyeColor", optString(p.EyeColor)},
		{"hairColor", optString(p.HairColor)},
		{"scarsMarksTattoos", optString(p.ScarsMarksTattoos)},
		{"birthDefects", optString(p.BirthDefects)},
		{"prosthetics", optString(p.Prosthetics)},
		{"medications", optString(p.Medications)},
		{"lastKnownClothing", optString(p.LastKnownClothing)},
		{"otherInformation", optString(p.OtherInformation)},
	})

	address := e.object("location.address", []field{
		{"streetAddress", d.Location.Address.StreetAddress},
		{"barangay", d.Location.Address.Barangay},
		{"city", d.Location.Address.City},
		{"zipCode", d.Location.Address.ZipCode},
	})
	var coordinates any
	if len(d.Location.Coordinates) > 0 {
		coordinates = d.Location.Coordinates
	}
	location := e.object("location", []field{
		{"type", d.Location.Type},
		{"coordinates", coordinates},
		{"address", address},
	})

	assignment := e.object("policeStationAssignment", []field{
		{"isAutoAssign", d.PoliceStationAssignment.IsAutoAssign},
		{"assignedStation", optStation(d.PoliceStationAssignment.AssignedStation)},
	})

	var images any
	if len(d.AdditionalImages) > 0 {
		images = d.AdditionalImages
	}
	var consent any
	if d.BroadcastConsent != nil {
		consent = *d.BroadcastConsent
	}
	var updatedAt any
	if !d.UpdatedAt.IsZero() {
		updatedAt = isoTime(&d.UpdatedAt)
	}

	doc := e.object("", []field{
		{"id", d.ID},
		{"reporter", d.Reporter},
		{"type", optString(string(d.Type))},
		{"personInvolved", person},
		{"location", location},
		{"additionalImages", images},
		{"policeStationAssignment", assignment},
		{"broadcastConsent", consent},
		{"updatedAt", updatedAt},
	})
	return doc, e.dropped
}

type storedPerson struct {
	models.PersonInvolved
	DateOfBirth  string `json:"dateOfBirth,omitempty"`
	LastSeenDate string `json:"lastSeenDate,omitempty"`
	LastSeenTime string `json:"lastSeenTime,omitempty"`
}

type storedDraft struct {
	models.ReportDraft
	PersonInvolved storedPerson `json:"personInvolved"`
	UpdatedAt      string       `json:"updatedAt,omitempty"`
}

// Decode восстанавливает черновик. Даты, которые не удалось разобрать, отбрасываются
// и перечисляются во втором возвращаемом значении.
func Decode(data []byte) (*models.ReportDraft, []string, error) {
	var stored storedDraft
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, nil, fmt.Errorf("failed to unmarshal draft: %w", err)
	}

	var dropped []string
	parse := func(name, value string) *time.Time {
		if value == "" {
			return nil
		}
		t, err := time.Parse(time.RFC3339Nano, value)
		if err != nil {
			dropped = append(dropped, name)
			return nil
		}
		return &t
	}

	d := stored.ReportDraft
	d.PersonInvolved = stored.PersonInvolved.PersonInvolved
	d.PersonInvolved.DateOfBirth = parse("personInvolved.dateOfBirth", stored.PersonInvolved.DateOfBirth)
	d.PersonInvolved.LastSeenDate = parse("personInvolved.lastSeenDate", stored.PersonInvolved.LastSeenDate)
	d.PersonInvolved.LastSeenTime = parse("personInvolved.lastSeenTime", stored.PersonInvolved.LastSeenTime)
	if t := parse("updatedAt", stored.UpdatedAt); t != nil {
		d.UpdatedAt = *t
	}
	if d.Location.Type == "" {
		d.Location.Type = "Point"
	}
	return &d, dropped, nil
}

func joinPath(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}

func isoTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func optString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func optInt(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}

func optAttachment(a *models.Attachment) any {
	if a == nil {
		return nil
	}
	return a
}

func optStation(s *models.StationRef) any {
	if s == nil {
		return nil
	}
	return s
}
