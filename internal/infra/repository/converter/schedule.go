package converter

import (
	"turnera/internal/domain/schedule"
	"turnera/internal/infra/query"
	"turnera/internal/pkg/pgconv"
)

func WorkingHoursToInfra(w *schedule.WorkingHours, position int) query.CreateWorkingHourParams {
	return query.CreateWorkingHourParams{
		ID:         w.ID(),
		ProviderID: w.ProviderID(),
		Weekday:    w.Weekday(),
		StartTime:  pgconv.TimeOfDayToPgtype(w.Start()),
		EndTime:    pgconv.TimeOfDayToPgtype(w.End()),
		Position:   toInt32(position),
	}
}
