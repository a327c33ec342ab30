package commands

import (
	"turnera/internal/domain/booking"
	"turnera/internal/infra"
	"turnera/internal/pkg/errs"
)

var (
	ErrForbidden           = errs.New("forbidden")
	ErrDomainValidation    = errs.New("domain validation error")
	ErrProviderNotFound    = errs.New("provider not found")
	ErrProviderExists      = errs.New("account already has a provider")
	ErrServiceNotFound     = errs.New("service not found")
	ErrSlotNotFound        = errs.New("slot not found")
	ErrReservationNotFound = errs.New("reservation not found")
	ErrCodeExhausted       = errs.New("could not allocate a unique provider code")
)

// notFoundAs maps a repository NOT_FOUND onto sentinel and passes anything else through.
func notFoundAs(err error, sentinel error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, sentinel)
	}
	return err
}

// rejectNotFound maps a repository NOT_FOUND onto the admission NOT_FOUND rejection.
func rejectNotFound(err error, what string) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return booking.Reject(booking.KindNotFound, what+" not found")
	}
	return err
}
