package commands

import (
	"context"

	"turnera/internal/domain/schedule"
	"turnera/internal/pkg/errs"
	"turnera/internal/usecase/shared"

	"github.com/google/uuid"
)

type WorkingHoursInput struct {
	Weekday string
	Start   string
	End     string
}

type ScheduleCommands interface {
	// ReplaceWorkingHours swaps a provider's whole week in one transaction.
	ReplaceWorkingHours(ctx context.Context, providerID, actorID uuid.UUID, in []WorkingHoursInput) error
}

type scheduleUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewScheduleCommands(uow shared.UnitOfWork) ScheduleCommands {
	return &scheduleUseCaseImpl{uow: uow}
}

func (uc *scheduleUseCaseImpl) ReplaceWorkingHours(ctx context.Context, providerID, actorID uuid.UUID, in []WorkingHoursInput) error {
	entries := make([]*schedule.WorkingHours, 0, len(in))
	for _, item := range in {
		w, err := schedule.NewWorkingHours(providerID, item.Weekday, item.Start, item.End)
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}
		entries = append(entries, w)
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Reads().ProviderByID(ctx, providerID); err != nil {
			return notFoundAs(err, ErrProviderNotFound)
		}
		if err := requireOwner(ctx, tx.Reads(), actorID, providerID); err != nil {
			return err
		}

		if err := tx.WorkingHours().DeleteByProvider(ctx, tx.DB(), providerID); err != nil {
			return err
		}
		for i, w := range entries {
			if err := tx.WorkingHours().Create(ctx, tx.DB(), w, i); err != nil {
				return err
			}
		}
		return nil
	})
}
