package commands

import (
	"context"
	"log/slog"
	"time"

	"turnera/internal/domain/booking"
	"turnera/internal/domain/catalog"
	"turnera/internal/domain/reservation"
	"turnera/internal/pkg/clock"
	"turnera/internal/pkg/errs"
	"turnera/internal/pkg/utctime"
	"turnera/internal/usecase/shared"

	"github.com/google/uuid"
)

type AdmissionResult struct {
	ReservationID uuid.UUID
	SlotID        uuid.UUID
	CustomerID    uuid.UUID
}

// AdmissionCommands decides whether a reservation may be accepted. Every
// rejection is a *booking.Rejection.
type AdmissionCommands interface {
	AdmitReservation(ctx context.Context, slotID, customerID uuid.UUID) (*AdmissionResult, error)
	AdmitAdHoc(ctx context.Context, serviceID, customerID uuid.UUID, start time.Time) (*AdmissionResult, error)
	CancelReservation(ctx context.Context, reservationID, actorID uuid.UUID) error
}

type admissionUseCaseImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	policy booking.Policy
}

func NewAdmissionCommands(uow shared.UnitOfWork, clk clock.Clock, policy booking.Policy) AdmissionCommands {
	return &admissionUseCaseImpl{
		uow:    uow,
		clock:  clk,
		policy: policy.Normalized(),
	}
}

// AdmitReservation books an existing slot.
// Locks: (customer, provider) pair for non-owners, then the slot row.
func (uc *admissionUseCaseImpl) AdmitReservation(ctx context.Context, slotID, customerID uuid.UUID) (*AdmissionResult, error) {
	var result *AdmissionResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		reads := tx.Reads()

		slot, err := reads.SlotByID(ctx, slotID)
		if err != nil {
			return rejectNotFound(err, "slot")
		}
		if _, err := reads.UserByID(ctx, customerID); err != nil {
			return rejectNotFound(err, "account")
		}

		isOwner, err := reads.IsOwnerOf(ctx, customerID, slot.ProviderID)
		if err != nil {
			return err
		}
		if !isOwner {
			if err := tx.Locks().LockCustomerProvider(ctx, tx.DB(), customerID, slot.ProviderID); err != nil {
				return err
			}
		}
		if err := tx.Slots().Lock(ctx, tx.DB(), slotID); err != nil {
			return rejectNotFound(err, "slot")
		}

		reserved, err := reads.CountReservations(ctx, slotID)
		if err != nil {
			return err
		}
		if !booking.HasRoom(reserved, slot.Capacity) {
			return booking.ErrSlotFull
		}

		exists, err := reads.HasReservation(ctx, slotID, customerID)
		if err != nil {
			return err
		}
		if exists {
			return booking.ErrDuplicateBooking
		}

		now := uc.clock.Now()
		if err := uc.checkLimit(ctx, reads, isOwner, customerID, slot.ProviderID, now); err != nil {
			return err
		}

		res := reservation.New(slotID, customerID, now)
		if err := tx.Reservations().Create(ctx, tx.DB(), res); err != nil {
			return err
		}

		result = &AdmissionResult{ReservationID: res.ID(), SlotID: slotID, CustomerID: customerID}
		return nil
	})

	uc.logOutcome("reserve", result, err, slog.String("slot_id", slotID.String()), slog.String("customer_id", customerID.String()))
	if err != nil {
		return nil, err
	}
	return result, nil
}

// AdmitAdHoc materializes a capacity-1 slot at start and books it.
// Locks: provider row, pair for non-owners, then the candidate slots (shared).
func (uc *admissionUseCaseImpl) AdmitAdHoc(ctx context.Context, serviceID, customerID uuid.UUID, start time.Time) (*AdmissionResult, error) {
	start = utctime.Normalize(start)

	var result *AdmissionResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		reads := tx.Reads()

		svc, err := reads.ServiceByID(ctx, serviceID)
		if err != nil {
			return rejectNotFound(err, "service")
		}
		if _, err := reads.UserByID(ctx, customerID); err != nil {
			return rejectNotFound(err, "account")
		}

		if err := tx.Providers().Lock(ctx, tx.DB(), svc.ProviderID); err != nil {
			return rejectNotFound(err, "provider")
		}

		isOwner, err := reads.IsOwnerOf(ctx, customerID, svc.ProviderID)
		if err != nil {
			return err
		}
		if !isOwner {
			if err := tx.Locks().LockCustomerProvider(ctx, tx.DB(), customerID, svc.ProviderID); err != nil {
				return err
			}
		}

		now := uc.clock.Now()
		if err := uc.checkLimit(ctx, reads, isOwner, customerID, svc.ProviderID, now); err != nil {
			return err
		}

		duration := uc.policy.SlotDuration(0, svc.DurationMin)
		target := booking.NewInterval(start, duration)

		from, to := uc.policy.CandidateWindow(start)
		if err := tx.Slots().LockWindow(ctx, tx.DB(), svc.ProviderID, from, to); err != nil {
			return err
		}
		candidates, err := reads.SlotsStartingBetween(ctx, svc.ProviderID, from, to)
		if err != nil {
			return err
		}
		if full, blocked := booking.FirstFull(target, uc.occupancies(candidates)); blocked {
			return booking.Reject(booking.KindSlotOccupied, "overlaps full slot "+full.SlotID.String())
		}

		slot, err := catalog.NewSlot(serviceID, start, int(duration/time.Minute), booking.DefaultCapacity, svc.PriceCents)
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}
		if err := tx.Slots().Create(ctx, tx.DB(), slot); err != nil {
			return err
		}

		res := reservation.New(slot.ID(), customerID, now)
		if err := tx.Reservations().Create(ctx, tx.DB(), res); err != nil {
			return err
		}

		result = &AdmissionResult{ReservationID: res.ID(), SlotID: slot.ID(), CustomerID: customerID}
		return nil
	})

	uc.logOutcome("adhoc", result, err,
		slog.String("service_id", serviceID.String()),
		slog.String("customer_id", customerID.String()),
		slog.String("start", utctime.Format(start)))
	if err != nil {
		return nil, err
	}
	return result, nil
}

// CancelReservation lets the reservation's customer or the provider's owner delete it.
func (uc *admissionUseCaseImpl) CancelReservation(ctx context.Context, reservationID, actorID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		reads := tx.Reads()

		res, err := reads.ReservationByID(ctx, reservationID)
		if err != nil {
			return notFoundAs(err, ErrReservationNotFound)
		}

		if res.CustomerID != actorID {
			isOwner, err := reads.IsOwnerOf(ctx, actorID, res.ProviderID)
			if err != nil {
				return err
			}
			if !isOwner {
				return ErrForbidden
			}
		}

		if err := tx.Reservations().Delete(ctx, tx.DB(), reservationID); err != nil {
			return notFoundAs(err, ErrReservationNotFound)
		}
		slog.Info("reservation cancelled",
			"reservation_id", reservationID.String(),
			"actor_id", actorID.String())
		return nil
	})
}

func (uc *admissionUseCaseImpl) checkLimit(ctx context.Context, reads shared.CommandReads, isOwner bool, customerID, providerID uuid.UUID, now time.Time) error {
	if isOwner {
		return nil
	}
	active, err := reads.CountActiveReservations(ctx, customerID, providerID, now)
	if err != nil {
		return err
	}
	if !booking.MayBook(false, active) {
		return booking.ErrLimitExceeded
	}
	return nil
}

func (uc *admissionUseCaseImpl) occupancies(slots []shared.SlotSnapshot) []booking.Occupancy {
	out := make([]booking.Occupancy, 0, len(slots))
	for _, s := range slots {
		out = append(out, booking.Occupancy{
			SlotID:   s.ID,
			Interval: booking.NewInterval(s.Start, uc.policy.SlotDuration(s.DurationMin, s.ServiceDurationMin)),
			Capacity: s.Capacity,
			Reserved: s.Reserved,
		})
	}
	return out
}

func (uc *admissionUseCaseImpl) logOutcome(flow string, result *AdmissionResult, err error, attrs ...slog.Attr) {
	args := make([]any, 0, len(attrs)+2)
	args = append(args, slog.String("flow", flow))
	for _, a := range attrs {
		args = append(args, a)
	}

	if err == nil {
		args = append(args, slog.String("reservation_id", result.ReservationID.String()))
		slog.Info("reservation admitted", args...)
		return
	}
	if kind, ok := booking.KindOf(err); ok {
		slog.Info("reservation rejected", append(args, slog.String("kind", string(kind)))...)
		return
	}
	slog.Error("reservation admission failed", append(args, slog.String("error", err.Error()))...)
}
