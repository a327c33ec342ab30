package response

import (
	"turnera/internal/pkg/utctime"
	"turnera/internal/usecase/commands"
	"turnera/internal/usecase/queries"

	"github.com/google/uuid"
)

// AdmissionResponse is what both admission endpoints return.
type AdmissionResponse struct {
	ID         uuid.UUID `json:"id"`
	SlotID     uuid.UUID `json:"slotId"`
	CustomerID uuid.UUID `json:"customerId"`
}

func FromAdmissionResult(r *commands.AdmissionResult) *AdmissionResponse {
	return &AdmissionResponse{
		ID:         r.ReservationID,
		SlotID:     r.SlotID,
		CustomerID: r.CustomerID,
	}
}

type ReservationResponse struct {
	ID           uuid.UUID    `json:"id"`
	SlotID       uuid.UUID    `json:"slotId"`
	CustomerID   uuid.UUID    `json:"customerId"`
	ServiceID    uuid.UUID    `json:"serviceId"`
	ServiceName  string       `json:"serviceName"`
	ProviderID   uuid.UUID    `json:"providerId"`
	BusinessName string       `json:"businessName"`
	Start        utctime.Time `json:"start"`
	End          utctime.Time `json:"end"`
	CreatedAt    utctime.Time `json:"createdAt"`
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:           v.ID,
		SlotID:       v.SlotID,
		CustomerID:   v.CustomerID,
		ServiceID:    v.ServiceID,
		ServiceName:  v.ServiceName,
		ProviderID:   v.ProviderID,
		BusinessName: v.BusinessName,
		Start:        utctime.From(v.Start),
		End:          utctime.From(v.End),
		CreatedAt:    utctime.From(v.CreatedAt),
	}
}

func FromReservationViews(views []*queries.ReservationView) []*ReservationResponse {
	res := make([]*ReservationResponse, len(views))
	for i, v := range views {
		res[i] = FromReservationView(v)
	}
	return res
}
