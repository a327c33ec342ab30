package response

import (
	"turnera/internal/pkg/utctime"
	"turnera/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ServiceResponse struct {
	ID          uuid.UUID    `json:"id"`
	ProviderID  uuid.UUID    `json:"providerId"`
	Name        string       `json:"name"`
	Description *string      `json:"description,omitempty"`
	DurationMin int          `json:"durationMin"`
	PriceCents  int64        `json:"priceCents"`
	CreatedAt   utctime.Time `json:"createdAt" copier:"-"`
}

type SlotResponse struct {
	ID               uuid.UUID    `json:"id"`
	ServiceID        uuid.UUID    `json:"serviceId"`
	ProviderID       uuid.UUID    `json:"providerId"`
	Start            utctime.Time `json:"start"`
	End              utctime.Time `json:"end"`
	DurationMin      int          `json:"durationMin"`
	Capacity         int          `json:"capacity"`
	PriceCents       int64        `json:"priceCents"`
	ReservationCount int          `json:"reservationCount"`
}

type CreatedResponse struct {
	ID uuid.UUID `json:"id"`
}

func FromServiceView(v *queries.ServiceView) *ServiceResponse {
	res := &ServiceResponse{}
	_ = copier.Copy(res, v)
	res.CreatedAt = utctime.From(v.CreatedAt)
	return res
}

func FromServiceViews(views []*queries.ServiceView) []*ServiceResponse {
	res := make([]*ServiceResponse, len(views))
	for i, v := range views {
		res[i] = FromServiceView(v)
	}
	return res
}

func FromSlotViews(views []*queries.SlotView) []*SlotResponse {
	res := make([]*SlotResponse, len(views))
	for i, v := range views {
		res[i] = &SlotResponse{
			ID:               v.ID,
			ServiceID:        v.ServiceID,
			ProviderID:       v.ProviderID,
			Start:            utctime.From(v.Start),
			End:              utctime.From(v.End),
			DurationMin:      v.DurationMin,
			Capacity:         v.Capacity,
			PriceCents:       v.PriceCents,
			ReservationCount: v.Reserved,
		}
	}
	return res
}
