package commands

import (
	"context"
	"log/slog"
	"time"

	"turnera/internal/domain/booking"
	"turnera/internal/domain/catalog"
	"turnera/internal/pkg/errs"
	"turnera/internal/pkg/patch"
	"turnera/internal/pkg/utctime"
	"turnera/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateServiceInput struct {
	Name        string
	Description *string
	DurationMin int
	PriceCents  int64
}

type CreateSlotInput struct {
	ServiceID   uuid.UUID
	Start       time.Time
	DurationMin int
	Capacity    int
	// PriceCents defaults to the service price when nil.
	PriceCents *int64
}

// UpdateSlotInput is a partial update; nil fields keep their stored value.
type UpdateSlotInput struct {
	Start       *time.Time
	DurationMin *int
	Capacity    *int
	PriceCents  *int64
}

type CatalogCommands interface {
	CreateService(ctx context.Context, ownerID uuid.UUID, in CreateServiceInput) (uuid.UUID, error)
	DeleteService(ctx context.Context, serviceID, actorID uuid.UUID) error
	CreateSlot(ctx context.Context, actorID uuid.UUID, in CreateSlotInput) (uuid.UUID, error)
	UpdateSlot(ctx context.Context, slotID, actorID uuid.UUID, in UpdateSlotInput) error
	DeleteSlot(ctx context.Context, slotID, actorID uuid.UUID) error
}

type catalogUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewCatalogCommands(uow shared.UnitOfWork) CatalogCommands {
	return &catalogUseCaseImpl{uow: uow}
}

func (uc *catalogUseCaseImpl) CreateService(ctx context.Context, ownerID uuid.UUID, in CreateServiceInput) (uuid.UUID, error) {
	var id uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := tx.Reads().ProviderByOwner(ctx, ownerID)
		if err != nil {
			return notFoundAs(err, ErrProviderNotFound)
		}

		svc, err := catalog.NewService(p.ID, in.Name, in.Description, in.DurationMin, in.PriceCents)
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}
		if err := tx.Services().Create(ctx, tx.DB(), svc); err != nil {
			return err
		}
		id = svc.ID()
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (uc *catalogUseCaseImpl) DeleteService(ctx context.Context, serviceID, actorID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		svc, err := tx.Reads().ServiceByID(ctx, serviceID)
		if err != nil {
			return notFoundAs(err, ErrServiceNotFound)
		}
		if err := requireOwner(ctx, tx.Reads(), actorID, svc.ProviderID); err != nil {
			return err
		}

		// Same order as ad-hoc admission: provider, then slots.
		db := tx.DB()
		if err := tx.Providers().Lock(ctx, db, svc.ProviderID); err != nil {
			return notFoundAs(err, ErrProviderNotFound)
		}
		if err := tx.Slots().LockByService(ctx, db, serviceID); err != nil {
			return err
		}
		if err := tx.Reservations().DeleteByService(ctx, db, serviceID); err != nil {
			return err
		}
		if err := tx.Slots().DeleteByService(ctx, db, serviceID); err != nil {
			return err
		}
		if err := tx.Services().Delete(ctx, db, serviceID); err != nil {
			return notFoundAs(err, ErrServiceNotFound)
		}
		slog.Info("service deleted", "service_id", serviceID.String())
		return nil
	})
}

func (uc *catalogUseCaseImpl) CreateSlot(ctx context.Context, actorID uuid.UUID, in CreateSlotInput) (uuid.UUID, error) {
	capacity := in.Capacity
	if capacity == 0 {
		capacity = booking.DefaultCapacity
	}

	var id uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		svc, err := tx.Reads().ServiceByID(ctx, in.ServiceID)
		if err != nil {
			return notFoundAs(err, ErrServiceNotFound)
		}
		if err := requireOwner(ctx, tx.Reads(), actorID, svc.ProviderID); err != nil {
			return err
		}

		price := svc.PriceCents
		if in.PriceCents != nil {
			price = *in.PriceCents
		}
		slot, err := catalog.NewSlot(in.ServiceID, utctime.Normalize(in.Start), in.DurationMin, capacity, price)
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}
		if err := tx.Slots().Create(ctx, tx.DB(), slot); err != nil {
			return err
		}
		id = slot.ID()
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (uc *catalogUseCaseImpl) UpdateSlot(ctx context.Context, slotID, actorID uuid.UUID, in UpdateSlotInput) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		slot, err := tx.Reads().SlotByID(ctx, slotID)
		if err != nil {
			return notFoundAs(err, ErrSlotNotFound)
		}
		if err := requireOwner(ctx, tx.Reads(), actorID, slot.ProviderID); err != nil {
			return err
		}

		// Admissions count under the same row lock, so Reserved is stable from here on.
		if err := tx.Slots().Lock(ctx, tx.DB(), slotID); err != nil {
			return notFoundAs(err, ErrSlotNotFound)
		}
		if slot, err = tx.Reads().SlotByID(ctx, slotID); err != nil {
			return notFoundAs(err, ErrSlotNotFound)
		}

		start := slot.Start
		if in.Start != nil {
			start = utctime.Normalize(*in.Start)
		}
		updated, err := catalog.RestoreSlot(slot.ID, slot.ServiceID, start,
			patch.Value(in.DurationMin, slot.DurationMin),
			patch.Value(in.Capacity, slot.Capacity),
			patch.Value(in.PriceCents, slot.PriceCents))
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}
		if err := updated.Holds(slot.Reserved); err != nil {
			return errs.Mark(errs.Wrapf(err, "%d reserved", slot.Reserved), ErrDomainValidation)
		}
		if err := tx.Slots().Update(ctx, tx.DB(), updated); err != nil {
			return notFoundAs(err, ErrSlotNotFound)
		}
		slog.Info("slot updated", "slot_id", slotID.String(), "capacity", updated.Capacity())
		return nil
	})
}

func (uc *catalogUseCaseImpl) DeleteSlot(ctx context.Context, slotID, actorID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		slot, err := tx.Reads().SlotByID(ctx, slotID)
		if err != nil {
			return notFoundAs(err, ErrSlotNotFound)
		}
		if err := requireOwner(ctx, tx.Reads(), actorID, slot.ProviderID); err != nil {
			return err
		}

		if err := tx.Slots().Lock(ctx, tx.DB(), slotID); err != nil {
			return notFoundAs(err, ErrSlotNotFound)
		}
		if err := tx.Reservations().DeleteBySlot(ctx, tx.DB(), slotID); err != nil {
			return err
		}
		return notFoundAs(tx.Slots().Delete(ctx, tx.DB(), slotID), ErrSlotNotFound)
	})
}

func requireOwner(ctx context.Context, reads shared.CommandReads, actorID, providerID uuid.UUID) error {
	isOwner, err := reads.IsOwnerOf(ctx, actorID, providerID)
	if err != nil {
		return err
	}
	if !isOwner {
		return ErrForbidden
	}
	return nil
}
