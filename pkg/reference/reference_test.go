package reference

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadTable(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Table
		wantErr string
	}{
		{
			name:  "plain rows",
			input: "2021,Max Verstappen\n2020,Lewis Hamilton\n",
			want:  Table{2021: "Max Verstappen", 2020: "Lewis Hamilton"},
		},
		{
			name:  "byte order mark and padding",
			input: "\uFEFF1950, Giuseppe Farina \r\n1951,Juan Manuel Fangio\r\n",
			want:  Table{1950: "Giuseppe Farina", 1951: "Juan Manuel Fangio"},
		},
		{
			name:  "empty name skipped",
			input: "1958,Vanwall\n1957,\n",
			want:  Table{1958: "Vanwall"},
		},
		{
			name:  "later year wins",
			input: "2009,Brawn\n2009,Brawn GP\n",
			want:  Table{2009: "Brawn GP"},
		},
		{
			name:  "empty input",
			input: "",
			want:  Table{},
		},
		{
			name:    "bad year",
			input:   "2021,Max Verstappen\nyear,name\n",
			wantErr: "line 2: invalid year",
		},
		{
			name:    "wrong field count",
			input:   "2021,Max,Verstappen\n",
			wantErr: "wrong number of fields",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadTable(strings.NewReader(tt.input))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadLookup(t *testing.T) {
	dir := t.TempDir()
	champions := filepath.Join(dir, "f1info.csv")
	require.NoError(t, os.WriteFile(champions, []byte("2008,Lewis Hamilton\n2007,Kimi Raikkonen\n"), 0o600))

	l := LoadLookup(champions, filepath.Join(dir, "missing.csv"))

	name, ok := l.Champion(2007)
	assert.True(t, ok)
	assert.Equal(t, "Kimi Raikkonen", name)

	_, ok = l.Champion(1900)
	assert.False(t, ok)

	_, ok = l.Constructor(2008)
	assert.False(t, ok)

	nc, nk := l.Len()
	assert.Equal(t, 2, nc)
	assert.Equal(t, 0, nk)
}

func TestLookupIsDetachedFromInput(t *testing.T) {
	champions := Table{1988: "Ayrton Senna"}
	l := NewLookup(champions, Table{1988: "McLaren"})
	champions[1988] = "Alain Prost"

	name, ok := l.Champion(1988)
	assert.True(t, ok)
	assert.Equal(t, "Ayrton Senna", name)

	name, ok = l.Constructor(1988)
	assert.True(t, ok)
	assert.Equal(t, "McLaren", name)
}
