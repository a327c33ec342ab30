package queries

import (
	"context"
	"time"

	"turnera/internal/domain/booking"
	"turnera/internal/pkg/clock"
	"turnera/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrServiceNotFound = errs.New("service not found")
	ErrSlotNotFound    = errs.New("slot not found")
)

type CatalogQueries interface {
	GetService(ctx context.Context, id uuid.UUID) (*ServiceView, error)
	ListServicesByProvider(ctx context.Context, providerID uuid.UUID) ([]*ServiceView, error)
	ListServicesByCode(ctx context.Context, code string) ([]*ServiceView, error)
	ListSlotsByService(ctx context.Context, serviceID uuid.UUID) ([]*SlotView, error)
	// ListAvailableSlots returns upcoming slots that still pass the capacity gate.
	ListAvailableSlots(ctx context.Context, serviceID uuid.UUID) ([]*SlotView, error)
	ListMySlots(ctx context.Context, ownerID uuid.UUID) ([]*SlotView, error)
}

type ServiceReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ServiceView, error)
	ListByProvider(ctx context.Context, providerID uuid.UUID) ([]*ServiceView, error)
}

type SlotReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*SlotView, error)
	ListByService(ctx context.Context, serviceID uuid.UUID) ([]*SlotView, error)
	ListUpcomingByService(ctx context.Context, serviceID uuid.UUID, now time.Time) ([]*SlotView, error)
	ListByProvider(ctx context.Context, providerID uuid.UUID) ([]*SlotView, error)
}

type catalogQueriesImpl struct {
	services  ServiceReadStore
	slots     SlotReadStore
	providers ProviderQueries
	clock     clock.Clock
}

func NewCatalogQueries(services ServiceReadStore, slots SlotReadStore, providers ProviderQueries, clock clock.Clock) CatalogQueries {
	return &catalogQueriesImpl{
		services:  services,
		slots:     slots,
		providers: providers,
		clock:     clock,
	}
}

func (q *catalogQueriesImpl) GetService(ctx context.Context, id uuid.UUID) (*ServiceView, error) {
	view, err := q.services.FindByID(ctx, id)
	return notFoundAs(view, err, ErrServiceNotFound)
}

func (q *catalogQueriesImpl) ListServicesByProvider(ctx context.Context, providerID uuid.UUID) ([]*ServiceView, error) {
	if _, err := q.providers.GetByID(ctx, providerID); err != nil {
		return nil, err
	}
	return q.services.ListByProvider(ctx, providerID)
}

func (q *catalogQueriesImpl) ListServicesByCode(ctx context.Context, code string) ([]*ServiceView, error) {
	p, err := q.providers.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	return q.services.ListByProvider(ctx, p.ID)
}

func (q *catalogQueriesImpl) ListSlotsByService(ctx context.Context, serviceID uuid.UUID) ([]*SlotView, error) {
	if _, err := q.GetService(ctx, serviceID); err != nil {
		return nil, err
	}
	return q.slots.ListByService(ctx, serviceID)
}

func (q *catalogQueriesImpl) ListAvailableSlots(ctx context.Context, serviceID uuid.UUID) ([]*SlotView, error) {
	if _, err := q.GetService(ctx, serviceID); err != nil {
		return nil, err
	}

	upcoming, err := q.slots.ListUpcomingByService(ctx, serviceID, q.clock.Now())
	if err != nil {
		return nil, err
	}

	available := make([]*SlotView, 0, len(upcoming))
	for _, s := range upcoming {
		if booking.HasRoom(s.Reserved, s.Capacity) {
			available = append(available, s)
		}
	}
	return available, nil
}

func (q *catalogQueriesImpl) ListMySlots(ctx context.Context, ownerID uuid.UUID) ([]*SlotView, error) {
	p, err := q.providers.GetMine(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return q.slots.ListByProvider(ctx, p.ID)
}
