package schedule

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidWeekday   = errors.New("invalid weekday")
	ErrInvalidTimeOfDay = errors.New("time of day must be HH:MM or HH:MM:SS")
	ErrEmptyRange       = errors.New("start must be before end")
)

// Weekdays are stored in canonical Spanish title case.
var weekdays = map[string]string{
	"monday": "Lunes", "tuesday": "Martes", "wednesday": "Miércoles",
	"thursday": "Jueves", "friday": "Viernes", "saturday": "Sábado", "sunday": "Domingo",
	"lunes": "Lunes", "martes": "Martes", "miercoles": "Miércoles",
	"jueves": "Jueves", "viernes": "Viernes", "sabado": "Sábado", "domingo": "Domingo",
}

var accentFolder = strings.NewReplacer("á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u")

// NormalizeWeekday accepts English or Spanish names in any case, with or
// without accents.
func NormalizeWeekday(s string) (string, error) {
	key := accentFolder.Replace(strings.ToLower(strings.TrimSpace(s)))
	day, ok := weekdays[key]
	if !ok {
		return "", ErrInvalidWeekday
	}
	return day, nil
}

// ParseTimeOfDay returns the offset from midnight.
func ParseTimeOfDay(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	layout := "15:04"
	if strings.Count(s, ":") == 2 {
		layout = "15:04:05"
	}
	t, err := time.Parse(layout, s)
	if err != nil {
		return 0, ErrInvalidTimeOfDay
	}
	return time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second, nil
}

func FormatTimeOfDay(d time.Duration) string {
	return time.Date(0, 1, 1, 0, 0, 0, 0, time.UTC).Add(d).Format("15:04:05")
}

type WorkingHours struct {
	id         uuid.UUID
	providerID uuid.UUID
	weekday    string
	start      time.Duration
	end        time.Duration
}

func NewWorkingHours(providerID uuid.UUID, weekday, start, end string) (*WorkingHours, error) {
	day, err := NormalizeWeekday(weekday)
	if err != nil {
		return nil, err
	}
	from, err := ParseTimeOfDay(start)
	if err != nil {
		return nil, err
	}
	to, err := ParseTimeOfDay(end)
	if err != nil {
		return nil, err
	}
	if from >= to {
		return nil, ErrEmptyRange
	}
	return &WorkingHours{
		id:         uuid.New(),
		providerID: providerID,
		weekday:    day,
		start:      from,
		end:        to,
	}, nil
}

func (w *WorkingHours) ID() uuid.UUID         { return w.id }
func (w *WorkingHours) ProviderID() uuid.UUID { return w.providerID }
func (w *WorkingHours) Weekday() string       { return w.weekday }
func (w *WorkingHours) Start() time.Duration  { return w.start }
func (w *WorkingHours) End() time.Duration    { return w.end }
