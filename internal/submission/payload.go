package submission

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"mime/multipart"
	"net/textproto"
	"strconv"
	"strings"
	"time"

	"github.com/shenikar/report_intake/internal/models"
)

// Payload - готовое multipart-тело запроса. Одно и то же тело отправляется при повторах.
type Payload struct {
	ContentType string
	Body        []byte
}

// AttachmentOpener открывает файл вложения по его localUri
type AttachmentOpener interface {
	Open(a models.Attachment) (io.ReadCloser, error)
}

// FSOpener читает вложения из fs.FS, путь берется из localUri без схемы и ведущего "/"
type FSOpener struct {
	FS fs.FS
}

func (o FSOpener) Open(a models.Attachment) (io.ReadCloser, error) {
	name := strings.TrimPrefix(strings.TrimPrefix(a.LocalURI, "file://"), "/")
	return o.FS.Open(name)
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

type formBuilder struct {
	w      *multipart.Writer
	opener AttachmentOpener
	err    error
}

func (b *formBuilder) field(name, value string) {
	if b.err != nil {
		return
	}
	b.err = b.w.WriteField(name, value)
}

func (b *formBuilder) optional(name, value string) {
	if value != "" {
		b.field(name, value)
	}
}

func (b *formBuilder) date(name string, t *time.Time) {
	if t != nil {
		b.field(name, t.UTC().Format(time.RFC3339Nano))
	}
}

func (b *formBuilder) file(name string, a models.Attachment) {
	if b.err != nil {
		return
	}
	src, err := b.opener.Open(a)
	if err != nil {
		b.err = fmt.Errorf("failed to open attachment %s: %w", a.Filename, err)
		return
	}
	defer src.Close()

	mimeType := a.MimeType
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		quoteEscaper.Replace(name), quoteEscaper.Replace(a.Filename)))
	h.Set("Content-Type", mimeType)

	part, err := b.w.CreatePart(h)
	if err != nil {
		b.err = err
		return
	}
	if _, err := io.Copy(part, src); err != nil {
		b.err = fmt.Errorf("failed to copy attachment %s: %w", a.Filename, err)
	}
}

// BuildPayload собирает multipart-форму из всего черновика.
// Вложенные поля разворачиваются в ключи вида personInvolved[firstName], location[address][city].
func BuildPayload(d *models.ReportDraft, opener AttachmentOpener) (*Payload, error) {
	var buf bytes.Buffer
	b := &formBuilder{w: multipart.NewWriter(&buf), opener: opener}

	b.field("reporter", d.Reporter)
	b.optional("type", string(d.Type))
	consent := false
	if d.BroadcastConsent != nil {
		consent = *d.BroadcastConsent
	}
	b.field("broadcastConsent", strconv.FormatBool(consent))

	p := d.PersonInvolved
	person := func(key string) string { return "personInvolved[" + key + "]" }
	b.field(person("firstName"), p.FirstName)
	b.optional(person("middleName"), p.MiddleName)
	b.field(person("lastName"), p.LastName)
	b.optional(person("alias"), p.Alias)
	b.field(person("relationship"), string(p.Relationship))
	b.date(person("dateOfBirth"), p.DateOfBirth)
	if p.Age != nil {
		b.field(person("age"), strconv.Itoa(*p.Age))
	}
	b.date(person("lastSeenDate"), p.LastSeenDate)
	b.date(person("lastSeenTime"), p.LastSeenTime)
	b.field(person("lastKnownLocation"), p.LastKnownLocation)
	for _, f := range []struct{ key, value string }{
		{"gender", p.Gender},
		{"race", p.Race},
		{"height", p.Height},
		{"weight", p.Weight},
		{"eyeColor", p.EyeColor},
		{"hairColor", p.HairColor},
		{"scarsMarksTattoos", p.ScarsMarksTattoos},
		{"birthDefects", p.BirthDefects},
		{"prosthetics", p.Prosthetics},
		{"medications", p.Medications},
		{"lastKnownClothing", p.LastKnownClothing},
		{"otherInformation", p.OtherInformation},
	} {
		b.optional(person(f.key), f.value)
	}
	if p.MostRecentPhoto != nil {
		b.file(person("mostRecentPhoto"), *p.MostRecentPhoto)
	}

	locType := d.Location.Type
	if locType == "" {
		locType = "Point"
	}
	b.field("location[type]", locType)
	if d.Location.HasCoordinates() {
		coords, err := json.Marshal(d.Location.Coordinates)
		if err != nil {
			return nil, fmt.Errorf("failed to encode coordinates: %w", err)
		}
		b.field("location[coordinates]", string(coords))
	}
	addr := d.Location.Address
	b.field("location[address][streetAddress]", addr.StreetAddress)
	b.field("location[address][barangay]", addr.Barangay)
	b.field("location[address][city]", addr.City)
	b.field("location[address][zipCode]", addr.ZipCode)

	if a := d.PoliceStationAssignment; !a.IsAutoAssign && a.AssignedStation != nil {
		b.field("assignedPoliceStation", a.AssignedStation.ID)
	}

	for _, img := range d.AdditionalImages {
		b.file("additionalImages", img)
	}

	if b.err != nil {
		return nil, fmt.Errorf("failed to build report payload: %w", b.err)
	}
	if err := b.w.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize report payload: %w", err)
	}
	return &Payload{ContentType: b.w.FormDataContentType(), Body: buf.Bytes()}, nil
}
