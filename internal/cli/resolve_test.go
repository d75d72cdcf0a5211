package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveID(t *testing.T) {
	candidates := []idName{
		{id: "a1b2c3", name: "Forklift"},
		{id: "a1ffff", name: "Harness"},
		{id: "b99999", name: "a1b2c3x"},
	}

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr string
	}{
		{"exact id", "a1b2c3", "a1b2c3", ""},
		{"name any case", "HARNESS", "a1ffff", ""},
		{"unique prefix", "b9", "b99999", ""},
		{"ambiguous prefix", "a1", "", "ambiguous"},
		{"unknown", "zz", "", "not found"},
		{"empty", "", "", "required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveID("equipment", tt.input, candidates)
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

func TestParseDateFlag(t *testing.T) {
	d, err := parseDateFlag("date", "")
	require.NoError(t, err)
	assert.Nil(t, d)

	d, err = parseDateFlag("date", "2024-02-29")
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, 29, d.Day())

	_, err = parseDateFlag("service", "2024-02-30")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--service")
}

func TestFormValidators(t *testing.T) {
	assert.NoError(t, validateOptionalDate(""))
	assert.NoError(t, validateOptionalDate("2025-06-30"))
	assert.Error(t, validateOptionalDate("30/06/2025"))

	required := validateRequired("name")
	assert.Error(t, required("  "))
	assert.NoError(t, required("Forklift"))
}
