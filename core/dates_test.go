package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int64
	}{
		{"dot separated", "27.11.2025", 20251127},
		{"slash separated", "27/11/2025", 20251127},
		{"iso", "2025-11-27", 20251127},
		{"single digit day", "01.02.2021", 20210201},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ConvertDate(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestConvertDateRejectsMalformed(t *testing.T) {
	for _, input := range []string{"", "not a date", "2025.11.27", "32.01.2021", "27-11-2025"} {
		_, err := ConvertDate(input)
		assert.ErrorIs(t, err, ErrInvalidDate, "input %q", input)
	}
}

func TestDateIntRoundTrip(t *testing.T) {
	dates := []time.Time{
		time.Date(1949, time.September, 7, 0, 0, 0, 0, time.UTC),
		time.Date(2021, time.October, 26, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.March, 22, 0, 0, 0, 0, time.UTC),
	}
	for _, d := range dates {
		back, err := DateFromInt(DateInt(d))
		require.NoError(t, err)
		assert.True(t, d.Equal(back))
	}
}

func TestDateFromIntRejectsOverflowedDates(t *testing.T) {
	for _, d := range []int64{20230231, 20231301, 20230100, 0, -1} {
		_, err := DateFromInt(d)
		assert.ErrorIs(t, err, ErrInvalidDate, "date %d", d)
	}
}
