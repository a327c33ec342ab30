package converter

import (
	"fmt"
	"math"

	"turnera/internal/domain/catalog"
	"turnera/internal/infra/query"
	"turnera/internal/pkg/pgconv"
)

func ServiceToInfra(s *catalog.Service) query.CreateServiceParams {
	return query.CreateServiceParams{
		ID:          s.ID(),
		ProviderID:  s.ProviderID(),
		Name:        s.Name(),
		Description: pgconv.StringPtrToPgtype(s.Description()),
		DurationMin: toInt32(s.DurationMin()),
		PriceCents:  s.PriceCents(),
	}
}

func SlotToInfra(s *catalog.Slot) query.CreateSlotParams {
	return query.CreateSlotParams{
		ID:          s.ID(),
		ServiceID:   s.ServiceID(),
		StartAt:     pgconv.TimestampToPgtype(s.Start()),
		DurationMin: toInt32(s.DurationMin()),
		Capacity:    toInt32(s.Capacity()),
		PriceCents:  s.PriceCents(),
	}
}

func SlotUpdateToInfra(s *catalog.Slot) query.UpdateSlotParams {
	return query.UpdateSlotParams{
		ID:          s.ID(),
		StartAt:     pgconv.TimestampToPgtype(s.Start()),
		DurationMin: toInt32(s.DurationMin()),
		Capacity:    toInt32(s.Capacity()),
		PriceCents:  s.PriceCents(),
	}
}

func toInt32(v int) int32 {
	if v > math.MaxInt32 || v < math.MinInt32 {
		panic(fmt.Sprintf("value out of int32 range: %d", v))
	}
	return int32(v)
}
