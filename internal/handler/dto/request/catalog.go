package request

import (
	"turnera/internal/pkg/utctime"

	"github.com/google/uuid"
)

type CreateServiceRequest struct {
	Name        string  `json:"name" binding:"required,max=200"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
	DurationMin int     `json:"durationMin" binding:"min=0,max=1440"`
	PriceCents  int64   `json:"priceCents" binding:"min=0"`
}

type CreateSlotRequest struct {
	ServiceID   uuid.UUID    `json:"serviceId" binding:"required"`
	Start       utctime.Time `json:"start"`
	DurationMin int          `json:"durationMin" binding:"min=0,max=1440"`
	Capacity    int          `json:"capacity" binding:"min=0"`
	PriceCents  *int64       `json:"priceCents" binding:"omitempty,min=0"`
}

// UpdateSlotRequest leaves absent fields unchanged.
type UpdateSlotRequest struct {
	Start       *utctime.Time `json:"start"`
	DurationMin *int          `json:"durationMin" binding:"omitempty,min=0,max=1440"`
	Capacity    *int          `json:"capacity" binding:"omitempty,min=1"`
	PriceCents  *int64        `json:"priceCents" binding:"omitempty,min=0"`
}
