package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOptionalDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *time.Time
		wantErr  bool
	}{
		{name: "Vazio retorna nil", input: "", expected: nil},
		{name: "Somente data", input: "2024-01-15", expected: timePtr(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))},
		{name: "Data e hora", input: "2024-01-15 10:30:00", expected: timePtr(time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC))},
		{name: "RFC3339", input: "2024-01-15T10:30:00Z", expected: timePtr(time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC))},
		{name: "Formato inválido", input: "15/01/2024", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseOptionalDate(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.expected == nil {
				assert.Nil(t, result)
				return
			}
			require.NotNil(t, result)
			assert.True(t, tt.expected.Equal(*result))
		})
	}
}

func TestEndOfDay(t *testing.T) {
	result := EndOfDay(time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC))

	assert.Equal(t, time.Date(2024, 1, 15, 23, 59, 59, 999999999, time.UTC), result)
}

func TestGetFirstDayOfMonth(t *testing.T) {
	result := GetFirstDayOfMonth(time.Date(2024, 12, 31, 23, 59, 59, 999, time.UTC))

	assert.Equal(t, time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC), result)
}

func TestGenerateID(t *testing.T) {
	id, err := GenerateID()
	require.NoError(t, err)
	assert.Len(t, id, 6)
}

func timePtr(t time.Time) *time.Time {
	return &t
}
