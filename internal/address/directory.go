package address

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileDirectory - справочник городов и барангаев из YAML-файла вида
//
//	Taguig:
//	  - Fort Bonifacio
//	  - Ususan
type FileDirectory struct {
	cities    []string
	barangays map[string][]string
}

// LoadFile читает справочник с диска
func LoadFile(path string) (*FileDirectory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("address: failed to read directory file: %w", err)
	}
	return Parse(data)
}

// Parse разбирает справочник. Пустые имена пропускаются.
func Parse(data []byte) (*FileDirectory, error) {
	raw := make(map[string][]string)
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("address: failed to parse directory: %w", err)
	}

	d := &FileDirectory{barangays: make(map[string][]string, len(raw))}
	for city, list := range raw {
		city = strings.TrimSpace(city)
		if city == "" {
			continue
		}
		var names []string
		for _, b := range list {
			if b = strings.TrimSpace(b); b != "" {
				names = append(names, b)
			}
		}
		sort.Strings(names)
		d.cities = append(d.cities, city)
		d.barangays[key(city)] = names
	}
	sort.Strings(d.cities)
	return d, nil
}

func key(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func (d *FileDirectory) Cities() ([]string, error) {
	return append([]string(nil), d.cities...), nil
}

// Barangays возвращает барангаи города. Для неизвестного города - пустой список.
func (d *FileDirectory) Barangays(city string) ([]string, error) {
	return append([]string(nil), d.barangays[key(city)]...), nil
}
