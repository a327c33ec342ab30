package request

import (
	"turnera/internal/pkg/utctime"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	SlotID uuid.UUID `json:"slotId" binding:"required"`
}

type AdHocReservationRequest struct {
	ServiceID uuid.UUID `json:"serviceId" binding:"required"`
	// Start accepts RFC 3339 or a naive timestamp read as UTC.
	Start utctime.Time `json:"start"`
}
