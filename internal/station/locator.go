package station

import (
	"context"
	"errors"
	"fmt"

	"github.com/shenikar/report_intake/internal/models"
)

// LocationPermission - имя разрешения на геолокацию
const LocationPermission = "location"

// Locator возвращает текущее положение устройства [lon, lat].
// При запрете доступа возвращает *models.PermissionError.
type Locator interface {
	CurrentPosition(ctx context.Context) ([]float64, error)
}

// DeviceFix - результат запроса геолокации, полученный от приложения
type DeviceFix struct {
	PermissionGranted bool      `json:"permissionGranted"`
	Coordinates       []float64 `json:"coordinates,omitempty"`
	Error             string    `json:"error,omitempty"`
}

// CurrentPosition реализует Locator поверх уже полученного приложением результата
func (f DeviceFix) CurrentPosition(_ context.Context) ([]float64, error) {
	if !f.PermissionGranted {
		return nil, &models.PermissionError{Permission: LocationPermission}
	}
	if f.Error != "" {
		return nil, fmt.Errorf("failed to acquire device position: %s", f.Error)
	}
	if len(f.Coordinates) != 2 {
		return nil, errors.New("failed to acquire device position: no coordinates reported")
	}
	return f.Coordinates, nil
}
