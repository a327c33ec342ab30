//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"turnera/internal/domain/schedule"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeWeekday(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"monday", "Lunes"},
		{" Lunes ", "Lunes"},
		{"MIÉRCOLES", "Miércoles"},
		{"miercoles", "Miércoles"},
		{"Saturday", "Sábado"},
		{"domingo", "Domingo"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := schedule.NormalizeWeekday(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := schedule.NormalizeWeekday("funday")
	assert.ErrorIs(t, err, schedule.ErrInvalidWeekday)
}

func TestNewWorkingHours(t *testing.T) {
	providerID := uuid.New()

	t.Run("valid range", func(t *testing.T) {
		w, err := schedule.NewWorkingHours(providerID, "tuesday", "09:00", "13:30:00")
		require.NoError(t, err)
		assert.Equal(t, "Martes", w.Weekday())
		assert.Equal(t, 9*time.Hour, w.Start())
		assert.Equal(t, 13*time.Hour+30*time.Minute, w.End())
		assert.Equal(t, "13:30:00", schedule.FormatTimeOfDay(w.End()))
	})

	errCases := []struct {
		name       string
		day        string
		start, end string
		errIs      error
	}{
		{"unknown day", "someday", "09:00", "10:00", schedule.ErrInvalidWeekday},
		{"bad start", "lunes", "9am", "10:00", schedule.ErrInvalidTimeOfDay},
		{"bad end", "lunes", "09:00", "25:00", schedule.ErrInvalidTimeOfDay},
		{"empty range", "lunes", "10:00", "10:00", schedule.ErrEmptyRange},
		{"inverted range", "lunes", "18:00", "09:00", schedule.ErrEmptyRange},
	}
	for _, tc := range errCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := schedule.NewWorkingHours(providerID, tc.day, tc.start, tc.end)
			assert.ErrorIs(t, err, tc.errIs)
		})
	}
}
