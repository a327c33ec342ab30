package commands

import (
	"context"
	"log/slog"

	"turnera/internal/domain/provider"
	"turnera/internal/domain/user"
	"turnera/internal/infra"
	"turnera/internal/pkg/errs"
	"turnera/internal/usecase/queries"
	"turnera/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	providerCodeKey  = "providers_code_key"
	providerOwnerKey = "providers_owner_id_key"
	// Attempts at drawing an unused public code before giving up.
	maxCodeAttempts = 5
)

var errCodeTaken = errs.New("provider code taken")

type ProviderResult struct {
	ProviderID uuid.UUID
	Code       string
}

type ProviderCommands interface {
	// Activate turns the account into an entrepreneur with a fresh public code.
	Activate(ctx context.Context, ownerID uuid.UUID, profile provider.Profile) (*ProviderResult, error)
	UpdateProfile(ctx context.Context, ownerID uuid.UUID, profile provider.Profile) error
	RegenerateCode(ctx context.Context, ownerID uuid.UUID) (*ProviderResult, error)
	// Delete removes the provider and, child first, everything it owns.
	Delete(ctx context.Context, ownerID uuid.UUID) error
}

type providerUseCaseImpl struct {
	uow   shared.UnitOfWork
	cache queries.ProviderCache
}

func NewProviderCommands(uow shared.UnitOfWork, cache queries.ProviderCache) ProviderCommands {
	return &providerUseCaseImpl{uow: uow, cache: cache}
}

func (uc *providerUseCaseImpl) Activate(ctx context.Context, ownerID uuid.UUID, profile provider.Profile) (*ProviderResult, error) {
	if err := profile.Validate(); err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var result *ProviderResult
	err := uc.withFreshCode(func(code provider.Code) error {
		return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			if _, err := tx.Reads().ProviderByOwner(ctx, ownerID); err == nil {
				return ErrProviderExists
			} else if !infra.IsKind(err, infra.KindNotFound) {
				return err
			}

			p, err := provider.NewProvider(ownerID, profile, code)
			if err != nil {
				return errs.Mark(err, ErrDomainValidation)
			}
			if err := tx.Providers().Create(ctx, tx.DB(), p); err != nil {
				return classifyProviderWrite(err)
			}
			if err := tx.Users().UpdateRole(ctx, tx.DB(), ownerID, user.RoleEntrepreneur); err != nil {
				return err
			}

			result = &ProviderResult{ProviderID: p.ID(), Code: code.Value()}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	slog.Info("provider activated", "provider_id", result.ProviderID.String(), "owner_id", ownerID.String())
	return result, nil
}

func (uc *providerUseCaseImpl) UpdateProfile(ctx context.Context, ownerID uuid.UUID, profile provider.Profile) error {
	if err := profile.Validate(); err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}

	var code string
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := tx.Reads().ProviderByOwner(ctx, ownerID)
		if err != nil {
			return notFoundAs(err, ErrProviderNotFound)
		}
		code = p.Code
		return notFoundAs(tx.Providers().UpdateProfile(ctx, tx.DB(), p.ID, profile), ErrProviderNotFound)
	})
	if err != nil {
		return err
	}

	uc.cache.Invalidate(ctx, code)
	return nil
}

func (uc *providerUseCaseImpl) RegenerateCode(ctx context.Context, ownerID uuid.UUID) (*ProviderResult, error) {
	var (
		result  *ProviderResult
		oldCode string
	)
	err := uc.withFreshCode(func(code provider.Code) error {
		return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			p, err := tx.Reads().ProviderByOwner(ctx, ownerID)
			if err != nil {
				return notFoundAs(err, ErrProviderNotFound)
			}
			if err := tx.Providers().UpdateCode(ctx, tx.DB(), p.ID, code); err != nil {
				return classifyProviderWrite(err)
			}
			oldCode = p.Code
			result = &ProviderResult{ProviderID: p.ID, Code: code.Value()}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx, oldCode)
	slog.Info("provider code regenerated", "provider_id", result.ProviderID.String())
	return result, nil
}

func (uc *providerUseCaseImpl) Delete(ctx context.Context, ownerID uuid.UUID) error {
	var code string
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := tx.Reads().ProviderByOwner(ctx, ownerID)
		if err != nil {
			return notFoundAs(err, ErrProviderNotFound)
		}
		if err := tx.Providers().Lock(ctx, tx.DB(), p.ID); err != nil {
			return notFoundAs(err, ErrProviderNotFound)
		}
		code = p.Code

		db := tx.DB()
		if err := tx.Slots().LockByProvider(ctx, db, p.ID); err != nil {
			return err
		}
		if err := tx.Reservations().DeleteByProvider(ctx, db, p.ID); err != nil {
			return err
		}
		if err := tx.Slots().DeleteByProvider(ctx, db, p.ID); err != nil {
			return err
		}
		if err := tx.Services().DeleteByProvider(ctx, db, p.ID); err != nil {
			return err
		}
		if err := tx.WorkingHours().DeleteByProvider(ctx, db, p.ID); err != nil {
			return err
		}
		if err := tx.Providers().Delete(ctx, db, p.ID); err != nil {
			return notFoundAs(err, ErrProviderNotFound)
		}
		return tx.Users().UpdateRole(ctx, db, ownerID, user.RoleCustomer)
	})
	if err != nil {
		return err
	}

	uc.cache.Invalidate(ctx, code)
	slog.Info("provider deleted", "owner_id", ownerID.String())
	return nil
}

// withFreshCode runs fn with newly drawn codes until one is not already taken.
// A failed insert aborts its transaction, so each attempt is its own unit of work.
func (uc *providerUseCaseImpl) withFreshCode(fn func(code provider.Code) error) error {
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code, err := provider.GenerateCode()
		if err != nil {
			return err
		}
		err = fn(code)
		if !errs.Is(err, errCodeTaken) {
			return err
		}
		slog.Warn("provider code collision, drawing another", "attempt", attempt+1)
	}
	return ErrCodeExhausted
}

func classifyProviderWrite(err error) error {
	if !infra.IsKind(err, infra.KindDuplicateKey) {
		return notFoundAs(err, ErrProviderNotFound)
	}
	switch infra.ConstraintOf(err) {
	case providerCodeKey:
		return errs.Mark(err, errCodeTaken)
	case providerOwnerKey:
		return errs.Mark(err, ErrProviderExists)
	default:
		return err
	}
}
