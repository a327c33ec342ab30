package api

import (
	"net/http"

	"turnera/internal/domain/booking"
	"turnera/internal/handler/httperr"
	"turnera/internal/pkg/errs"
	"turnera/internal/usecase/commands"
	"turnera/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type errorMapping struct {
	target error
	status int
	msg    string
}

// Checked in order; the first match wins.
var errorMappings = []errorMapping{
	{commands.ErrForbidden, http.StatusForbidden, "Forbidden"},
	{queries.ErrReservationForbidden, http.StatusForbidden, "Forbidden"},
	{commands.ErrDomainValidation, http.StatusBadRequest, "Validation failed"},
	{commands.ErrCurrentPasswordRequired, http.StatusBadRequest, "Current password is required"},
	{commands.ErrCurrentPasswordMismatch, http.StatusBadRequest, "Current password is incorrect"},
	{commands.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid email or password"},
	{commands.ErrUserNotFound, http.StatusUnauthorized, "Invalid email or password"},
	{commands.ErrAuthenticationFailed, http.StatusUnauthorized, "Invalid email or password"},
	{commands.ErrTokenValidation, http.StatusUnauthorized, "Invalid or expired token"},
	{commands.ErrEmailTaken, http.StatusConflict, "Email already registered"},
	{commands.ErrUsernameTaken, http.StatusConflict, "Username already taken"},
	{commands.ErrProviderExists, http.StatusConflict, "Account already has a provider"},
	{commands.ErrProviderNotFound, http.StatusNotFound, "Provider not found"},
	{commands.ErrServiceNotFound, http.StatusNotFound, "Service not found"},
	{commands.ErrSlotNotFound, http.StatusNotFound, "Slot not found"},
	{commands.ErrReservationNotFound, http.StatusNotFound, "Reservation not found"},
	{queries.ErrUserNotFound, http.StatusNotFound, "User not found"},
	{queries.ErrProviderNotFound, http.StatusNotFound, "Provider not found"},
	{queries.ErrServiceNotFound, http.StatusNotFound, "Service not found"},
	{queries.ErrSlotNotFound, http.StatusNotFound, "Slot not found"},
	{queries.ErrReservationNotFound, http.StatusNotFound, "Reservation not found"},
}

var rejectionMessages = map[booking.RejectionKind]string{
	booking.KindNotFound:         "Not found",
	booking.KindSlotFull:         "Slot is full",
	booking.KindDuplicateBooking: "Reservation already exists",
	booking.KindLimitExceeded:    "Booking limit reached for this provider",
	booking.KindSlotOccupied:     "Requested time overlaps a full slot",
	booking.KindConflictOnCommit: "Reservation already exists",
}

// abortWithUseCaseError maps a use case error onto a status and aborts.
// Booking rejections carry their kind in the detail.
func abortWithUseCaseError(c *gin.Context, err error) {
	if kind, ok := booking.KindOf(err); ok {
		status := http.StatusBadRequest
		if kind == booking.KindNotFound {
			status = http.StatusNotFound
		}
		httperr.AbortWithRejection(c, status, err, rejectionMessages[kind], string(kind))
		return
	}

	for _, m := range errorMappings {
		if errs.Is(err, m.target) {
			httperr.AbortWithError(c, m.status, err, m.msg, nil)
			return
		}
	}

	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}
