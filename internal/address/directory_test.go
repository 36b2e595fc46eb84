package address

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
Taguig:
  - Ususan
  - Fort Bonifacio
Pasig:
  - San Antonio
"  ":
  - Nowhere
`

func TestParse_SortsAndLooksUpCaseInsensitive(t *testing.T) {
	// Действие
	d, err := Parse([]byte(sample))
	require.NoError(t, err)

	cities, _ := d.Cities()
	barangays, _ := d.Barangays(" taguig ")
	unknown, _ := d.Barangays("Makati")

	// Проверки
	assert.Equal(t, []string{"Pasig", "Taguig"}, cities)
	assert.Equal(t, []string{"Fort Bonifacio", "Ususan"}, barangays)
	assert.Empty(t, unknown)
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := Parse([]byte("Taguig: [unterminated"))

	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "addresses.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	d, err := LoadFile(path)
	require.NoError(t, err)
	cities, _ := d.Cities()
	assert.Len(t, cities, 2)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
