package converter

import (
	"turnera/internal/domain/reservation"
	"turnera/internal/infra/query"

	"github.com/jackc/pgx/v5/pgtype"
)

func ReservationToInfra(res *reservation.Reservation) query.CreateReservationParams {
	return query.CreateReservationParams{
		ID:         res.ID(),
		SlotID:     res.SlotID(),
		CustomerID: res.CustomerID(),
		CreatedAt:  pgtype.Timestamptz{Time: res.CreatedAt(), Valid: true},
	}
}
