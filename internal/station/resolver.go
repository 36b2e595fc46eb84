package station

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/shenikar/report_intake/internal/models"
	"github.com/sirupsen/logrus"
)

// Origin - откуда берутся координаты для поиска
type Origin int

const (
	// OriginIncident - координаты места происшествия
	OriginIncident Origin = iota
	// OriginDevice - текущее положение устройства
	OriginDevice
)

func (o Origin) String() string {
	if o == OriginDevice {
		return "device"
	}
	return "incident"
}

// DefaultCoordinates подставляются, если у происшествия нет координат
var DefaultCoordinates = [2]float64{121.0509, 14.5176}

const coordinatePrecision = 1e7

// Resolver выбирает между автоматическим и ручным назначением участка
type Resolver struct {
	client   SearchClient
	fallback [2]float64
	logger   *logrus.Logger
}

func NewResolver(client SearchClient, fallback [2]float64, logger *logrus.Logger) *Resolver {
	return &Resolver{
		client:   client,
		fallback: fallback,
		logger:   logger,
	}
}

// ResolveAutomatic возвращает автоназначение. Ближайший участок выберет бэкенд при отправке.
func (r *Resolver) ResolveAutomatic() models.PoliceStationAssignment {
	return models.PoliceStationAssignment{IsAutoAssign: true}
}

// UseManual переключает на ручной выбор. Без города переключение отклоняется
// и возвращается автоназначение вместе с ErrAddressRequired.
func (r *Resolver) UseManual(d *models.ReportDraft) (models.PoliceStationAssignment, error) {
	if strings.TrimSpace(d.Location.Address.City) == "" {
		r.logger.WithFields(logrus.Fields{
			"service": "station",
			"method":  "UseManual",
		}).Warn("Manual station mode requested without a city, reverting to auto-assign")
		return r.ResolveAutomatic(), models.ErrAddressRequired
	}
	current := d.PoliceStationAssignment
	if current.IsAutoAssign {
		current = models.PoliceStationAssignment{}
	}
	current.IsAutoAssign = false
	return current, nil
}

// SelectCandidate назначает выбранный участок
func (r *Resolver) SelectCandidate(c models.StationCandidate) models.PoliceStationAssignment {
	return models.PoliceStationAssignment{
		IsAutoAssign:    false,
		AssignedStation: c.Ref(),
	}
}

// SearchManual ищет участки от одной из точек отсчета. Результат отсортирован
// по расчетному расстоянию по дорогам. Для повторного поиска метод вызывается заново.
func (r *Resolver) SearchManual(ctx context.Context, origin Origin, locator Locator, d *models.ReportDraft) ([]models.StationCandidate, error) {
	log := r.logger.WithFields(logrus.Fields{
		"service": "station",
		"method":  "SearchManual",
		"origin":  origin.String(),
	})

	if strings.TrimSpace(d.Location.Address.City) == "" {
		return nil, models.ErrAddressRequired
	}

	coords, err := r.originCoordinates(ctx, origin, locator, d)
	if err != nil {
		log.WithError(err).Warn("Failed to resolve search origin")
		return nil, err
	}

	req := SearchRequest{
		Coordinates: []float64{roundCoordinate(coords[0]), roundCoordinate(coords[1])},
		Address:     FormatAddress(d.Location.Address),
	}
	log = log.WithField("coordinates", req.Coordinates)
	log.Info("Searching police stations")

	candidates, err := r.client.Search(ctx, req)
	if err != nil {
		log.WithError(err).Error("Police station search failed")
		return nil, fmt.Errorf("station: search failed: %w", err)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].EstimatedRoadDistance < candidates[j].EstimatedRoadDistance
	})
	log.WithField("count", len(candidates)).Info("Police station search completed")
	return candidates, nil
}

func (r *Resolver) originCoordinates(ctx context.Context, origin Origin, locator Locator, d *models.ReportDraft) ([]float64, error) {
	switch origin {
	case OriginDevice:
		if locator == nil {
			return nil, fmt.Errorf("station: device origin requires a locator")
		}
		return locator.CurrentPosition(ctx)
	case OriginIncident:
		if d.Location.HasCoordinates() {
			return d.Location.Coordinates, nil
		}
		return []float64{r.fallback[0], r.fallback[1]}, nil
	}
	return nil, fmt.Errorf("station: unknown search origin %d", origin)
}

// DefaultCandidate возвращает ближайший участок для предварительного выбора
func DefaultCandidate(candidates []models.StationCandidate) (models.StationCandidate, bool) {
	if len(candidates) == 0 {
		return models.StationCandidate{}, false
	}
	return candidates[0], true
}

// FormatAddress собирает адрес в строку для поиска
func FormatAddress(a models.Address) string {
	parts := make([]string, 0, 4)
	for _, p := range []string{a.StreetAddress, a.Barangay, a.City, a.ZipCode} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

func roundCoordinate(v float64) float64 {
	return math.Round(v*coordinatePrecision) / coordinatePrecision
}
