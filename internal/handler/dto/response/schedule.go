package response

import (
	"turnera/internal/usecase/queries"

	"github.com/google/uuid"
)

type WorkingHoursResponse struct {
	ID      uuid.UUID `json:"id"`
	Weekday string    `json:"weekday"`
	Start   string    `json:"start"`
	End     string    `json:"end"`
}

func FromWorkingHoursViews(views []*queries.WorkingHoursView) []*WorkingHoursResponse {
	res := make([]*WorkingHoursResponse, len(views))
	for i, v := range views {
		res[i] = &WorkingHoursResponse{ID: v.ID, Weekday: v.Weekday, Start: v.Start, End: v.End}
	}
	return res
}
