//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"turnera/internal/domain/provider"
	"turnera/internal/domain/user"
	"turnera/internal/pkg/errs"
	"turnera/internal/usecase/commands"
	"turnera/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingCache struct {
	invalidated []string
}

func (c *recordingCache) Get(context.Context, string) (*queries.ProviderView, bool) { return nil, false }
func (c *recordingCache) Set(context.Context, string, *queries.ProviderView)        {}
func (c *recordingCache) Invalidate(_ context.Context, codes ...string) {
	c.invalidated = append(c.invalidated, codes...)
}

func TestProviderActivate(t *testing.T) {
	ctx := context.Background()
	profile := provider.Profile{BusinessName: "Barbería Norte"}

	t.Run("creates provider and promotes the account", func(t *testing.T) {
		uow := newFakeUoW()
		cmds := commands.NewProviderCommands(uow, &recordingCache{})
		account := uow.addUser(user.RoleCustomer)

		res, err := cmds.Activate(ctx, account, profile)
		require.NoError(t, err)
		assert.Len(t, res.Code, provider.CodeLength)
		assert.Equal(t, user.RoleEntrepreneur, uow.state.users[account])
		assert.Equal(t, account, uow.state.providers[res.ProviderID].ownerID)
	})

	t.Run("second activation is rejected", func(t *testing.T) {
		uow := newFakeUoW()
		cmds := commands.NewProviderCommands(uow, &recordingCache{})
		account := uow.addUser(user.RoleCustomer)
		uow.addProvider(account)

		_, err := cmds.Activate(ctx, account, profile)
		assert.True(t, errs.Is(err, commands.ErrProviderExists))
	})

	t.Run("blank business name", func(t *testing.T) {
		uow := newFakeUoW()
		cmds := commands.NewProviderCommands(uow, &recordingCache{})

		_, err := cmds.Activate(ctx, uow.addUser(user.RoleCustomer), provider.Profile{})
		assert.True(t, errs.Is(err, commands.ErrDomainValidation))
		assert.Zero(t, uow.calls, "検証エラー時はトランザクションを開始しない")
	})

	t.Run("code collision draws a new code", func(t *testing.T) {
		uow := newFakeUoW()
		uow.failCodeInserts = 2
		cmds := commands.NewProviderCommands(uow, &recordingCache{})

		res, err := cmds.Activate(ctx, uow.addUser(user.RoleCustomer), profile)
		require.NoError(t, err)
		assert.NotEmpty(t, res.Code)
		assert.Equal(t, 3, uow.calls)
	})

	t.Run("gives up after repeated collisions", func(t *testing.T) {
		uow := newFakeUoW()
		uow.failCodeInserts = 100
		cmds := commands.NewProviderCommands(uow, &recordingCache{})

		_, err := cmds.Activate(ctx, uow.addUser(user.RoleCustomer), profile)
		assert.True(t, errs.Is(err, commands.ErrCodeExhausted))
		assert.Empty(t, uow.state.providers)
	})
}

func TestProviderMaintenance(t *testing.T) {
	ctx := context.Background()

	t.Run("update profile invalidates the cached code", func(t *testing.T) {
		uow := newFakeUoW()
		cache := &recordingCache{}
		cmds := commands.NewProviderCommands(uow, cache)
		owner := uow.addUser(user.RoleCustomer)
		id := uow.addProvider(owner)

		require.NoError(t, cmds.UpdateProfile(ctx, owner, provider.Profile{BusinessName: "Nuevo nombre"}))
		assert.Equal(t, "Nuevo nombre", uow.state.providers[id].profile.BusinessName)
		assert.Equal(t, []string{uow.state.providers[id].code}, cache.invalidated)
	})

	t.Run("update without provider", func(t *testing.T) {
		uow := newFakeUoW()
		cmds := commands.NewProviderCommands(uow, &recordingCache{})

		err := cmds.UpdateProfile(ctx, uow.addUser(user.RoleCustomer), provider.Profile{BusinessName: "x"})
		assert.True(t, errs.Is(err, commands.ErrProviderNotFound))
	})

	t.Run("regenerate code replaces and invalidates the old one", func(t *testing.T) {
		uow := newFakeUoW()
		cache := &recordingCache{}
		cmds := commands.NewProviderCommands(uow, cache)
		owner := uow.addUser(user.RoleCustomer)
		id := uow.addProvider(owner)
		old := uow.state.providers[id].code

		res, err := cmds.RegenerateCode(ctx, owner)
		require.NoError(t, err)
		assert.NotEqual(t, old, res.Code)
		assert.Equal(t, res.Code, uow.state.providers[id].code)
		assert.Equal(t, []string{old}, cache.invalidated)
	})

	t.Run("delete cascades and demotes the owner", func(t *testing.T) {
		uow := newFakeUoW()
		cmds := commands.NewProviderCommands(uow, &recordingCache{})
		owner := uow.addUser(user.RoleCustomer)
		providerID := uow.addProvider(owner)
		serviceID := uow.addService(providerID, 30)
		slotID := uow.addSlot(serviceID, now.Add(time.Hour), 30, 1)
		uow.addReservation(slotID, uow.addUser(user.RoleCustomer))

		other := uow.addProvider(uow.addUser(user.RoleCustomer))
		otherSlot := uow.addSlot(uow.addService(other, 30), now.Add(time.Hour), 30, 1)
		uow.addReservation(otherSlot, uow.addUser(user.RoleCustomer))

		require.NoError(t, cmds.Delete(ctx, owner))
		assert.NotContains(t, uow.state.providers, providerID)
		assert.NotContains(t, uow.state.services, serviceID)
		assert.NotContains(t, uow.state.slots, slotID)
		assert.Len(t, uow.state.reservations, 1, "他のプロバイダーの予約は残る")
		assert.Equal(t, user.RoleCustomer, uow.state.users[owner])
		assert.Equal(t, []string{"provider", "provider slots"}, uow.locks)
	})

	t.Run("delete without provider", func(t *testing.T) {
		uow := newFakeUoW()
		cmds := commands.NewProviderCommands(uow, &recordingCache{})

		err := cmds.Delete(ctx, uuid.New())
		assert.True(t, errs.Is(err, commands.ErrProviderNotFound))
	})
}
