//go:build unit

package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"turnera/internal/domain/booking"
	"turnera/internal/domain/user"
	"turnera/internal/pkg/clock"
	"turnera/internal/pkg/errs"
	"turnera/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 2, 2, 8, 0, 0, 0, time.UTC)

type admissionFixture struct {
	uow        *fakeUoW
	cmds       commands.AdmissionCommands
	clock      *clock.MockClock
	ownerID    uuid.UUID
	providerID uuid.UUID
	serviceID  uuid.UUID
}

func newAdmissionFixture(t *testing.T) *admissionFixture {
	t.Helper()
	uow := newFakeUoW()
	clk := clock.NewMockClock(now)
	owner := uow.addUser(user.RoleCustomer)
	providerID := uow.addProvider(owner)
	return &admissionFixture{
		uow:        uow,
		cmds:       commands.NewAdmissionCommands(uow, clk, booking.DefaultPolicy()),
		clock:      clk,
		ownerID:    owner,
		providerID: providerID,
		serviceID:  uow.addService(providerID, 30),
	}
}

func assertRejected(t *testing.T, err error, want booking.RejectionKind) {
	t.Helper()
	require.Error(t, err)
	kind, ok := booking.KindOf(err)
	require.True(t, ok, "expected a rejection, got %v", err)
	assert.Equal(t, want, kind)
}

func TestAdmitReservation(t *testing.T) {
	ctx := context.Background()

	t.Run("admits into a free slot", func(t *testing.T) {
		fx := newAdmissionFixture(t)
		slot := fx.uow.addSlot(fx.serviceID, now.Add(24*time.Hour), 30, 1)
		customer := fx.uow.addUser(user.RoleCustomer)

		res, err := fx.cmds.AdmitReservation(ctx, slot, customer)
		require.NoError(t, err)
		assert.Equal(t, slot, res.SlotID)
		assert.Equal(t, customer, res.CustomerID)
		assert.Equal(t, 1, fx.uow.reservationCount(slot))
		assert.Equal(t, []string{"pair", "slot"}, fx.uow.locks, "ペアロックの後にスロットをロックする")
	})

	t.Run("unknown slot is not found", func(t *testing.T) {
		fx := newAdmissionFixture(t)
		_, err := fx.cmds.AdmitReservation(ctx, uuid.New(), fx.uow.addUser(user.RoleCustomer))
		assertRejected(t, err, booking.KindNotFound)
	})

	t.Run("full slot rejects", func(t *testing.T) {
		fx := newAdmissionFixture(t)
		slot := fx.uow.addSlot(fx.serviceID, now.Add(24*time.Hour), 30, 1)
		fx.uow.addReservation(slot, fx.uow.addUser(user.RoleCustomer))

		_, err := fx.cmds.AdmitReservation(ctx, slot, fx.uow.addUser(user.RoleCustomer))
		assertRejected(t, err, booking.KindSlotFull)
		assert.Equal(t, 1, fx.uow.reservationCount(slot))
	})

	t.Run("second booking of the same slot is a duplicate", func(t *testing.T) {
		fx := newAdmissionFixture(t)
		slot := fx.uow.addSlot(fx.serviceID, now.Add(24*time.Hour), 30, 3)
		customer := fx.uow.addUser(user.RoleCustomer)
		fx.uow.addReservation(slot, customer)

		_, err := fx.cmds.AdmitReservation(ctx, slot, customer)
		assertRejected(t, err, booking.KindDuplicateBooking)
	})

	t.Run("limit of one active reservation per provider", func(t *testing.T) {
		fx := newAdmissionFixture(t)
		first := fx.uow.addSlot(fx.serviceID, now.Add(24*time.Hour), 30, 1)
		second := fx.uow.addSlot(fx.serviceID, now.Add(48*time.Hour), 30, 1)
		customer := fx.uow.addUser(user.RoleCustomer)

		_, err := fx.cmds.AdmitReservation(ctx, first, customer)
		require.NoError(t, err)

		_, err = fx.cmds.AdmitReservation(ctx, second, customer)
		assertRejected(t, err, booking.KindLimitExceeded)
		assert.Zero(t, fx.uow.reservationCount(second))
	})

	t.Run("past reservations do not count toward the limit", func(t *testing.T) {
		fx := newAdmissionFixture(t)
		past := fx.uow.addSlot(fx.serviceID, now.Add(-24*time.Hour), 30, 1)
		future := fx.uow.addSlot(fx.serviceID, now.Add(24*time.Hour), 30, 1)
		customer := fx.uow.addUser(user.RoleCustomer)
		fx.uow.addReservation(past, customer)

		_, err := fx.cmds.AdmitReservation(ctx, future, customer)
		assert.NoError(t, err)
	})

	t.Run("owner is exempt from the limit and takes no pair lock", func(t *testing.T) {
		fx := newAdmissionFixture(t)
		for i := 1; i <= 3; i++ {
			slot := fx.uow.addSlot(fx.serviceID, now.Add(time.Duration(i)*24*time.Hour), 30, 1)
			_, err := fx.cmds.AdmitReservation(ctx, slot, fx.ownerID)
			require.NoError(t, err)
			assert.Equal(t, []string{"slot"}, fx.uow.locks)
		}
	})

	t.Run("unknown account", func(t *testing.T) {
		fx := newAdmissionFixture(t)
		slot := fx.uow.addSlot(fx.serviceID, now.Add(24*time.Hour), 30, 1)

		_, err := fx.cmds.AdmitReservation(ctx, slot, uuid.New())
		assertRejected(t, err, booking.KindNotFound)
		assert.Zero(t, fx.uow.reservationCount(slot))
	})

	t.Run("many customers on a capacity-1 slot", func(t *testing.T) {
		fx := newAdmissionFixture(t)
		slot := fx.uow.addSlot(fx.serviceID, now.Add(24*time.Hour), 30, 1)
		customers := make([]uuid.UUID, 10)
		for i := range customers {
			customers[i] = fx.uow.addUser(user.RoleCustomer)
		}

		var (
			wg       sync.WaitGroup
			mu       sync.Mutex
			admitted int
			full     int
		)
		for _, c := range customers {
			wg.Add(1)
			go func(customer uuid.UUID) {
				defer wg.Done()
				_, err := fx.cmds.AdmitReservation(ctx, slot, customer)
				mu.Lock()
				defer mu.Unlock()
				if err == nil {
					admitted++
				} else if kind, _ := booking.KindOf(err); kind == booking.KindSlotFull {
					full++
				}
			}(c)
		}
		wg.Wait()

		assert.Equal(t, 1, admitted)
		assert.Equal(t, len(customers)-1, full)
		assert.Equal(t, 1, fx.uow.reservationCount(slot))
	})
}

func TestAdmitAdHoc(t *testing.T) {
	ctx := context.Background()
	start := now.Add(24 * time.Hour)

	t.Run("materializes a capacity-1 slot", func(t *testing.T) {
		fx := newAdmissionFixture(t)
		customer := fx.uow.addUser(user.RoleCustomer)

		res, err := fx.cmds.AdmitAdHoc(ctx, fx.serviceID, customer, start)
		require.NoError(t, err)

		slot, ok := fx.uow.state.slots[res.SlotID]
		require.True(t, ok)
		assert.Equal(t, 1, slot.capacity)
		assert.Equal(t, 30, slot.durationMin)
		assert.True(t, start.Equal(slot.start))
		assert.Equal(t, []string{"provider", "pair", "window"}, fx.uow.locks)
	})

	t.Run("offset input is stored as UTC", func(t *testing.T) {
		fx := newAdmissionFixture(t)
		local := start.In(time.FixedZone("ART", -3*60*60))

		res, err := fx.cmds.AdmitAdHoc(ctx, fx.serviceID, fx.uow.addUser(user.RoleCustomer), local)
		require.NoError(t, err)
		assert.Equal(t, time.UTC, fx.uow.state.slots[res.SlotID].start.Location())
	})

	t.Run("unknown service is not found", func(t *testing.T) {
		fx := newAdmissionFixture(t)
		_, err := fx.cmds.AdmitAdHoc(ctx, uuid.New(), fx.uow.addUser(user.RoleCustomer), start)
		assertRejected(t, err, booking.KindNotFound)
	})

	t.Run("unknown account creates no slot", func(t *testing.T) {
		fx := newAdmissionFixture(t)
		slotsBefore := len(fx.uow.state.slots)

		_, err := fx.cmds.AdmitAdHoc(ctx, fx.serviceID, uuid.New(), start)
		assertRejected(t, err, booking.KindNotFound)
		assert.Len(t, fx.uow.state.slots, slotsBefore)
	})

	t.Run("overlap with a full slot is rejected", func(t *testing.T) {
		fx := newAdmissionFixture(t)
		busy := fx.uow.addSlot(fx.serviceID, start.Add(-15*time.Minute), 30, 1)
		fx.uow.addReservation(busy, fx.uow.addUser(user.RoleCustomer))
		slotsBefore := len(fx.uow.state.slots)

		_, err := fx.cmds.AdmitAdHoc(ctx, fx.serviceID, fx.uow.addUser(user.RoleCustomer), start)
		assertRejected(t, err, booking.KindSlotOccupied)
		assert.Len(t, fx.uow.state.slots, slotsBefore, "拒否時はスロットを作成しない")
	})

	t.Run("overlap with an under-capacity slot is allowed", func(t *testing.T) {
		fx := newAdmissionFixture(t)
		roomy := fx.uow.addSlot(fx.serviceID, start.Add(-15*time.Minute), 30, 2)
		fx.uow.addReservation(roomy, fx.uow.addUser(user.RoleCustomer))

		_, err := fx.cmds.AdmitAdHoc(ctx, fx.serviceID, fx.uow.addUser(user.RoleCustomer), start)
		assert.NoError(t, err)
	})

	t.Run("touching a full slot is not an overlap", func(t *testing.T) {
		fx := newAdmissionFixture(t)
		before := fx.uow.addSlot(fx.serviceID, start.Add(-30*time.Minute), 30, 1)
		fx.uow.addReservation(before, fx.uow.addUser(user.RoleCustomer))

		_, err := fx.cmds.AdmitAdHoc(ctx, fx.serviceID, fx.uow.addUser(user.RoleCustomer), start)
		assert.NoError(t, err)
	})

	t.Run("limit applies to ad-hoc bookings", func(t *testing.T) {
		fx := newAdmissionFixture(t)
		customer := fx.uow.addUser(user.RoleCustomer)
		_, err := fx.cmds.AdmitAdHoc(ctx, fx.serviceID, customer, start)
		require.NoError(t, err)

		_, err = fx.cmds.AdmitAdHoc(ctx, fx.serviceID, customer, start.Add(48*time.Hour))
		assertRejected(t, err, booking.KindLimitExceeded)
	})

	t.Run("owner may book several ad-hoc slots", func(t *testing.T) {
		fx := newAdmissionFixture(t)
		for i := range 3 {
			_, err := fx.cmds.AdmitAdHoc(ctx, fx.serviceID, fx.ownerID, start.Add(time.Duration(i)*time.Hour))
			require.NoError(t, err)
			assert.Equal(t, []string{"provider", "window"}, fx.uow.locks)
		}
	})
}

func TestCancelReservation(t *testing.T) {
	ctx := context.Background()

	t.Run("customer cancels own reservation", func(t *testing.T) {
		fx := newAdmissionFixture(t)
		slot := fx.uow.addSlot(fx.serviceID, now.Add(24*time.Hour), 30, 1)
		customer := fx.uow.addUser(user.RoleCustomer)
		resID := fx.uow.addReservation(slot, customer)

		require.NoError(t, fx.cmds.CancelReservation(ctx, resID, customer))
		assert.Zero(t, fx.uow.reservationCount(slot))
	})

	t.Run("provider owner cancels a customer reservation", func(t *testing.T) {
		fx := newAdmissionFixture(t)
		slot := fx.uow.addSlot(fx.serviceID, now.Add(24*time.Hour), 30, 1)
		resID := fx.uow.addReservation(slot, fx.uow.addUser(user.RoleCustomer))

		assert.NoError(t, fx.cmds.CancelReservation(ctx, resID, fx.ownerID))
	})

	t.Run("stranger is forbidden", func(t *testing.T) {
		fx := newAdmissionFixture(t)
		slot := fx.uow.addSlot(fx.serviceID, now.Add(24*time.Hour), 30, 1)
		resID := fx.uow.addReservation(slot, fx.uow.addUser(user.RoleCustomer))

		err := fx.cmds.CancelReservation(ctx, resID, fx.uow.addUser(user.RoleCustomer))
		assert.ErrorIs(t, err, commands.ErrForbidden)
		assert.Equal(t, 1, fx.uow.reservationCount(slot))
	})

	t.Run("missing reservation", func(t *testing.T) {
		fx := newAdmissionFixture(t)
		err := fx.cmds.CancelReservation(ctx, uuid.New(), fx.ownerID)
		assert.True(t, errs.Is(err, commands.ErrReservationNotFound))
	})

	t.Run("cancelling frees the limit", func(t *testing.T) {
		fx := newAdmissionFixture(t)
		first := fx.uow.addSlot(fx.serviceID, now.Add(24*time.Hour), 30, 1)
		second := fx.uow.addSlot(fx.serviceID, now.Add(48*time.Hour), 30, 1)
		customer := fx.uow.addUser(user.RoleCustomer)

		res, err := fx.cmds.AdmitReservation(ctx, first, customer)
		require.NoError(t, err)
		require.NoError(t, fx.cmds.CancelReservation(ctx, res.ReservationID, customer))

		_, err = fx.cmds.AdmitReservation(ctx, second, customer)
		assert.NoError(t, err)
	})
}
