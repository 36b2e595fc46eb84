package models

// StationCandidate - участок из результатов поиска, живет только в рамках сессии мастера
type StationCandidate struct {
	ID                    string    `json:"_id"`
	Name                  string    `json:"name"`
	Address               string    `json:"address"`
	Coordinates           []float64 `json:"coordinates"`
	EstimatedRoadDistance float64   `json:"estimatedRoadDistance"`
}

// Ref возвращает ссылку на участок для назначения
func (c StationCandidate) Ref() *StationRef {
	return &StationRef{ID: c.ID, Name: c.Name, Address: c.Address}
}

// AddressDirectory - внешний справочник городов и барангаев.
// Ядру нужны только строки, источник значений не важен.
type AddressDirectory interface {
	Cities() ([]string, error)
	Barangays(city string) ([]string, error)
}
