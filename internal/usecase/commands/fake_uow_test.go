//go:build unit

package commands_test

import (
	"context"
	"maps"
	"sync"
	"time"

	"turnera/internal/domain/booking"
	"turnera/internal/domain/catalog"
	"turnera/internal/domain/provider"
	"turnera/internal/domain/reservation"
	"turnera/internal/domain/schedule"
	"turnera/internal/domain/user"
	"turnera/internal/infra"
	"turnera/internal/infra/query"
	"turnera/internal/usecase/shared"

	"github.com/google/uuid"
)

type fakeProvider struct {
	id      uuid.UUID
	ownerID uuid.UUID
	code    string
	profile provider.Profile
}

type fakeService struct {
	id          uuid.UUID
	providerID  uuid.UUID
	durationMin int
	priceCents  int64
}

type fakeSlot struct {
	id          uuid.UUID
	serviceID   uuid.UUID
	start       time.Time
	durationMin int
	capacity    int
	priceCents  int64
}

type fakeReservation struct {
	id         uuid.UUID
	slotID     uuid.UUID
	customerID uuid.UUID
}

type fakeState struct {
	users        map[uuid.UUID]user.Role
	accounts     map[uuid.UUID]user.User
	providers    map[uuid.UUID]fakeProvider
	services     map[uuid.UUID]fakeService
	slots        map[uuid.UUID]fakeSlot
	reservations map[uuid.UUID]fakeReservation
	workingHours map[uuid.UUID][]*schedule.WorkingHours
}

func (s fakeState) clone() fakeState {
	hours := make(map[uuid.UUID][]*schedule.WorkingHours, len(s.workingHours))
	for k, v := range s.workingHours {
		hours[k] = append([]*schedule.WorkingHours(nil), v...)
	}
	return fakeState{
		users:        maps.Clone(s.users),
		accounts:     maps.Clone(s.accounts),
		providers:    maps.Clone(s.providers),
		services:     maps.Clone(s.services),
		slots:        maps.Clone(s.slots),
		reservations: maps.Clone(s.reservations),
		workingHours: hours,
	}
}

// fakeUoW runs every transaction under one mutex and rolls back on error,
// which gives serializable semantics for the command tests.
type fakeUoW struct {
	mu    sync.Mutex
	state fakeState
	// locks records lock acquisitions of the last transaction, in order.
	locks []string
	// failCodeInserts makes the next n provider code writes collide.
	failCodeInserts int
	calls           int
}

func newFakeUoW() *fakeUoW {
	return &fakeUoW{state: fakeState{
		users:        map[uuid.UUID]user.Role{},
		accounts:     map[uuid.UUID]user.User{},
		providers:    map[uuid.UUID]fakeProvider{},
		services:     map[uuid.UUID]fakeService{},
		slots:        map[uuid.UUID]fakeSlot{},
		reservations: map[uuid.UUID]fakeReservation{},
		workingHours: map[uuid.UUID][]*schedule.WorkingHours{},
	}}
}

func (f *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls++
	f.locks = nil
	saved := f.state.clone()
	if err := fn(ctx, &fakeTx{f: f}); err != nil {
		f.state = saved
		return err
	}
	return nil
}

func (f *fakeUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db query.DBTX) error) error {
	return fn(ctx, nil)
}

func (f *fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db query.DBTX) error) error {
	return fn(ctx, nil)
}

func (f *fakeUoW) CommandReads() shared.CommandReads {
	return &fakeReads{f: f}
}

// seed helpers

func (f *fakeUoW) addUser(role user.Role) uuid.UUID {
	id := uuid.New()
	f.state.users[id] = role
	return id
}

func (f *fakeUoW) addProvider(ownerID uuid.UUID) uuid.UUID {
	id := uuid.New()
	f.state.providers[id] = fakeProvider{id: id, ownerID: ownerID, code: "CODE" + id.String()[:4]}
	f.state.users[ownerID] = user.RoleEntrepreneur
	return id
}

func (f *fakeUoW) addService(providerID uuid.UUID, durationMin int) uuid.UUID {
	id := uuid.New()
	f.state.services[id] = fakeService{id: id, providerID: providerID, durationMin: durationMin, priceCents: 1000}
	return id
}

func (f *fakeUoW) addSlot(serviceID uuid.UUID, start time.Time, durationMin, capacity int) uuid.UUID {
	id := uuid.New()
	f.state.slots[id] = fakeSlot{id: id, serviceID: serviceID, start: start, durationMin: durationMin, capacity: capacity}
	return id
}

func (f *fakeUoW) addReservation(slotID, customerID uuid.UUID) uuid.UUID {
	id := uuid.New()
	f.state.reservations[id] = fakeReservation{id: id, slotID: slotID, customerID: customerID}
	return id
}

func (f *fakeUoW) reservationCount(slotID uuid.UUID) int {
	n := 0
	for _, r := range f.state.reservations {
		if r.slotID == slotID {
			n++
		}
	}
	return n
}

func (f *fakeUoW) slotProvider(s fakeSlot) uuid.UUID {
	return f.state.services[s.serviceID].providerID
}

func notFound(what string) error {
	return infra.WrapRepoErr(what+" not found", nil, infra.KindNotFound)
}

type fakeTx struct{ f *fakeUoW }

func (t *fakeTx) Users() shared.UserRepository                { return fakeUsers{t.f} }
func (t *fakeTx) Providers() shared.ProviderRepository        { return fakeProviders{t.f} }
func (t *fakeTx) Services() shared.ServiceRepository          { return fakeServices{t.f} }
func (t *fakeTx) Slots() shared.SlotRepository                { return fakeSlots{t.f} }
func (t *fakeTx) Reservations() shared.ReservationRepository  { return fakeReservations{t.f} }
func (t *fakeTx) WorkingHours() shared.WorkingHoursRepository { return fakeHours{t.f} }
func (t *fakeTx) Locks() shared.LockRepository                { return fakeLocks{t.f} }
func (t *fakeTx) Reads() shared.CommandReads                  { return &fakeReads{f: t.f} }
func (t *fakeTx) DB() query.DBTX                              { return nil }

type fakeUsers struct{ f *fakeUoW }

func (r fakeUsers) Create(_ context.Context, _ query.DBTX, u *user.User) error {
	r.f.state.users[u.ID()] = u.Role()
	r.f.state.accounts[u.ID()] = *u
	return nil
}

func (r fakeUsers) FindForUpdate(_ context.Context, _ query.DBTX, id uuid.UUID) (*user.User, error) {
	u, ok := r.f.state.accounts[id]
	if !ok {
		return nil, notFound("user")
	}
	r.f.locks = append(r.f.locks, "user")
	return &u, nil
}

func (r fakeUsers) Update(_ context.Context, _ query.DBTX, u *user.User) error {
	if _, ok := r.f.state.accounts[u.ID()]; !ok {
		return notFound("user")
	}
	for id, other := range r.f.state.accounts {
		if id == u.ID() {
			continue
		}
		switch {
		case other.Email() == u.Email():
			return infra.RepositoryError{Kind: infra.KindDuplicateKey, Constraint: "users_email_key"}
		case other.Username() == u.Username():
			return infra.RepositoryError{Kind: infra.KindDuplicateKey, Constraint: "users_username_key"}
		}
	}
	r.f.state.accounts[u.ID()] = *u
	return nil
}

func (r fakeUsers) UpdateRole(_ context.Context, _ query.DBTX, id uuid.UUID, role user.Role) error {
	if _, ok := r.f.state.users[id]; !ok {
		return notFound("user")
	}
	r.f.state.users[id] = role
	return nil
}

type fakeProviders struct{ f *fakeUoW }

func (r fakeProviders) Create(_ context.Context, _ query.DBTX, p *provider.Provider) error {
	if r.f.failCodeInserts > 0 {
		r.f.failCodeInserts--
		return infra.RepositoryError{Kind: infra.KindDuplicateKey, Constraint: "providers_code_key"}
	}
	r.f.state.providers[p.ID()] = fakeProvider{id: p.ID(), ownerID: p.OwnerID(), code: p.Code().Value(), profile: p.Profile()}
	return nil
}

func (r fakeProviders) UpdateProfile(_ context.Context, _ query.DBTX, id uuid.UUID, profile provider.Profile) error {
	p, ok := r.f.state.providers[id]
	if !ok {
		return notFound("provider")
	}
	p.profile = profile
	r.f.state.providers[id] = p
	return nil
}

func (r fakeProviders) UpdateCode(_ context.Context, _ query.DBTX, id uuid.UUID, code provider.Code) error {
	if r.f.failCodeInserts > 0 {
		r.f.failCodeInserts--
		return infra.RepositoryError{Kind: infra.KindDuplicateKey, Constraint: "providers_code_key"}
	}
	p, ok := r.f.state.providers[id]
	if !ok {
		return notFound("provider")
	}
	p.code = code.Value()
	r.f.state.providers[id] = p
	return nil
}

func (r fakeProviders) Lock(_ context.Context, _ query.DBTX, id uuid.UUID) error {
	if _, ok := r.f.state.providers[id]; !ok {
		return notFound("provider")
	}
	r.f.locks = append(r.f.locks, "provider")
	return nil
}

func (r fakeProviders) Delete(_ context.Context, _ query.DBTX, id uuid.UUID) error {
	if _, ok := r.f.state.providers[id]; !ok {
		return notFound("provider")
	}
	delete(r.f.state.providers, id)
	return nil
}

type fakeServices struct{ f *fakeUoW }

func (r fakeServices) Create(_ context.Context, _ query.DBTX, s *catalog.Service) error {
	r.f.state.services[s.ID()] = fakeService{id: s.ID(), providerID: s.ProviderID(), durationMin: s.DurationMin(), priceCents: s.PriceCents()}
	return nil
}

func (r fakeServices) Delete(_ context.Context, _ query.DBTX, id uuid.UUID) error {
	if _, ok := r.f.state.services[id]; !ok {
		return notFound("service")
	}
	delete(r.f.state.services, id)
	return nil
}

func (r fakeServices) DeleteByProvider(_ context.Context, _ query.DBTX, providerID uuid.UUID) error {
	for id, s := range r.f.state.services {
		if s.providerID == providerID {
			delete(r.f.state.services, id)
		}
	}
	return nil
}

type fakeSlots struct{ f *fakeUoW }

func (r fakeSlots) Create(_ context.Context, _ query.DBTX, s *catalog.Slot) error {
	r.f.state.slots[s.ID()] = fakeSlot{
		id: s.ID(), serviceID: s.ServiceID(), start: s.Start(),
		durationMin: s.DurationMin(), capacity: s.Capacity(), priceCents: s.PriceCents(),
	}
	return nil
}

func (r fakeSlots) Update(_ context.Context, _ query.DBTX, s *catalog.Slot) error {
	if _, ok := r.f.state.slots[s.ID()]; !ok {
		return notFound("slot")
	}
	return r.Create(context.Background(), nil, s)
}

func (r fakeSlots) Lock(_ context.Context, _ query.DBTX, id uuid.UUID) error {
	if _, ok := r.f.state.slots[id]; !ok {
		return notFound("slot")
	}
	r.f.locks = append(r.f.locks, "slot")
	return nil
}

func (r fakeSlots) LockWindow(_ context.Context, _ query.DBTX, _ uuid.UUID, _, _ time.Time) error {
	r.f.locks = append(r.f.locks, "window")
	return nil
}

func (r fakeSlots) LockByService(_ context.Context, _ query.DBTX, _ uuid.UUID) error {
	r.f.locks = append(r.f.locks, "service slots")
	return nil
}

func (r fakeSlots) LockByProvider(_ context.Context, _ query.DBTX, _ uuid.UUID) error {
	r.f.locks = append(r.f.locks, "provider slots")
	return nil
}

func (r fakeSlots) Delete(_ context.Context, _ query.DBTX, id uuid.UUID) error {
	if _, ok := r.f.state.slots[id]; !ok {
		return notFound("slot")
	}
	delete(r.f.state.slots, id)
	return nil
}

func (r fakeSlots) DeleteByService(_ context.Context, _ query.DBTX, serviceID uuid.UUID) error {
	for id, s := range r.f.state.slots {
		if s.serviceID == serviceID {
			delete(r.f.state.slots, id)
		}
	}
	return nil
}

func (r fakeSlots) DeleteByProvider(_ context.Context, _ query.DBTX, providerID uuid.UUID) error {
	for id, s := range r.f.state.slots {
		if r.f.slotProvider(s) == providerID {
			delete(r.f.state.slots, id)
		}
	}
	return nil
}

type fakeReservations struct{ f *fakeUoW }

func (r fakeReservations) Create(_ context.Context, _ query.DBTX, res *reservation.Reservation) error {
	for _, existing := range r.f.state.reservations {
		if existing.slotID == res.SlotID() && existing.customerID == res.CustomerID() {
			return booking.Reject(booking.KindConflictOnCommit, "reservation already exists for slot and customer")
		}
	}
	r.f.state.reservations[res.ID()] = fakeReservation{id: res.ID(), slotID: res.SlotID(), customerID: res.CustomerID()}
	return nil
}

func (r fakeReservations) Delete(_ context.Context, _ query.DBTX, id uuid.UUID) error {
	if _, ok := r.f.state.reservations[id]; !ok {
		return notFound("reservation")
	}
	delete(r.f.state.reservations, id)
	return nil
}

func (r fakeReservations) deleteWhere(match func(fakeSlot) bool) {
	for id, res := range r.f.state.reservations {
		if match(r.f.state.slots[res.slotID]) {
			delete(r.f.state.reservations, id)
		}
	}
}

func (r fakeReservations) DeleteBySlot(_ context.Context, _ query.DBTX, slotID uuid.UUID) error {
	r.deleteWhere(func(s fakeSlot) bool { return s.id == slotID })
	return nil
}

func (r fakeReservations) DeleteByService(_ context.Context, _ query.DBTX, serviceID uuid.UUID) error {
	r.deleteWhere(func(s fakeSlot) bool { return s.serviceID == serviceID })
	return nil
}

func (r fakeReservations) DeleteByProvider(_ context.Context, _ query.DBTX, providerID uuid.UUID) error {
	r.deleteWhere(func(s fakeSlot) bool { return r.f.slotProvider(s) == providerID })
	return nil
}

type fakeHours struct{ f *fakeUoW }

func (r fakeHours) Create(_ context.Context, _ query.DBTX, w *schedule.WorkingHours, _ int) error {
	r.f.state.workingHours[w.ProviderID()] = append(r.f.state.workingHours[w.ProviderID()], w)
	return nil
}

func (r fakeHours) DeleteByProvider(_ context.Context, _ query.DBTX, providerID uuid.UUID) error {
	delete(r.f.state.workingHours, providerID)
	return nil
}

type fakeLocks struct{ f *fakeUoW }

func (r fakeLocks) LockCustomerProvider(_ context.Context, _ query.DBTX, _, _ uuid.UUID) error {
	r.f.locks = append(r.f.locks, "pair")
	return nil
}

type fakeReads struct{ f *fakeUoW }

func (r *fakeReads) IsOwnerOf(_ context.Context, accountID, providerID uuid.UUID) (bool, error) {
	p, ok := r.f.state.providers[providerID]
	return ok && p.ownerID == accountID, nil
}

func (r *fakeReads) UserByID(_ context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	role, ok := r.f.state.users[id]
	if !ok {
		return nil, notFound("user")
	}
	return &shared.UserSnapshot{ID: id, Role: role.String()}, nil
}

func (r *fakeReads) ProviderByID(_ context.Context, id uuid.UUID) (*shared.ProviderSnapshot, error) {
	p, ok := r.f.state.providers[id]
	if !ok {
		return nil, notFound("provider")
	}
	return &shared.ProviderSnapshot{ID: p.id, OwnerID: p.ownerID, Code: p.code}, nil
}

func (r *fakeReads) ProviderByOwner(_ context.Context, ownerID uuid.UUID) (*shared.ProviderSnapshot, error) {
	for _, p := range r.f.state.providers {
		if p.ownerID == ownerID {
			return &shared.ProviderSnapshot{ID: p.id, OwnerID: p.ownerID, Code: p.code}, nil
		}
	}
	return nil, notFound("provider")
}

func (r *fakeReads) ServiceByID(_ context.Context, id uuid.UUID) (*shared.ServiceSnapshot, error) {
	s, ok := r.f.state.services[id]
	if !ok {
		return nil, notFound("service")
	}
	return &shared.ServiceSnapshot{ID: s.id, ProviderID: s.providerID, DurationMin: s.durationMin, PriceCents: s.priceCents}, nil
}

func (r *fakeReads) slotSnapshot(s fakeSlot) shared.SlotSnapshot {
	svc := r.f.state.services[s.serviceID]
	return shared.SlotSnapshot{
		ID:                 s.id,
		ServiceID:          s.serviceID,
		ProviderID:         svc.providerID,
		Start:              s.start,
		DurationMin:        s.durationMin,
		ServiceDurationMin: svc.durationMin,
		Capacity:           s.capacity,
		PriceCents:         s.priceCents,
		Reserved:           r.f.reservationCount(s.id),
	}
}

func (r *fakeReads) SlotByID(_ context.Context, id uuid.UUID) (*shared.SlotSnapshot, error) {
	s, ok := r.f.state.slots[id]
	if !ok {
		return nil, notFound("slot")
	}
	snap := r.slotSnapshot(s)
	return &snap, nil
}

func (r *fakeReads) ReservationByID(_ context.Context, id uuid.UUID) (*shared.ReservationSnapshot, error) {
	res, ok := r.f.state.reservations[id]
	if !ok {
		return nil, notFound("reservation")
	}
	return &shared.ReservationSnapshot{
		ID:         res.id,
		SlotID:     res.slotID,
		CustomerID: res.customerID,
		ProviderID: r.f.slotProvider(r.f.state.slots[res.slotID]),
	}, nil
}

func (r *fakeReads) CountReservations(_ context.Context, slotID uuid.UUID) (int, error) {
	return r.f.reservationCount(slotID), nil
}

func (r *fakeReads) HasReservation(_ context.Context, slotID, customerID uuid.UUID) (bool, error) {
	for _, res := range r.f.state.reservations {
		if res.slotID == slotID && res.customerID == customerID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeReads) CountActiveReservations(_ context.Context, customerID, providerID uuid.UUID, now time.Time) (int, error) {
	n := 0
	for _, res := range r.f.state.reservations {
		s := r.f.state.slots[res.slotID]
		if res.customerID == customerID && r.f.slotProvider(s) == providerID && !s.start.Before(now) {
			n++
		}
	}
	return n, nil
}

func (r *fakeReads) SlotsStartingBetween(_ context.Context, providerID uuid.UUID, from, to time.Time) ([]shared.SlotSnapshot, error) {
	var out []shared.SlotSnapshot
	for _, s := range r.f.state.slots {
		if r.f.slotProvider(s) != providerID || s.start.Before(from) || s.start.After(to) {
			continue
		}
		out = append(out, r.slotSnapshot(s))
	}
	return out, nil
}
