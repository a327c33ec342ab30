package booking

import (
	"errors"
	"fmt"
)

type RejectionKind string

const (
	KindNotFound         RejectionKind = "NOT_FOUND"
	KindSlotFull         RejectionKind = "SLOT_FULL"
	KindDuplicateBooking RejectionKind = "DUPLICATE_BOOKING"
	KindLimitExceeded    RejectionKind = "LIMIT_EXCEEDED"
	KindSlotOccupied     RejectionKind = "SLOT_OCCUPIED"
	KindConflictOnCommit RejectionKind = "CONFLICT_ON_COMMIT"
)

// Rejection is a request outcome, not a process failure. errors.Is matches
// on Kind, so wrapped rejections still compare equal to the sentinels below.
type Rejection struct {
	Kind   RejectionKind
	Detail string
}

func (r *Rejection) Error() string {
	if r.Detail == "" {
		return string(r.Kind)
	}
	return fmt.Sprintf("%s: %s", r.Kind, r.Detail)
}

func (r *Rejection) Is(target error) bool {
	t, ok := target.(*Rejection)
	return ok && t.Kind == r.Kind
}

var (
	ErrNotFound         = &Rejection{Kind: KindNotFound}
	ErrSlotFull         = &Rejection{Kind: KindSlotFull}
	ErrDuplicateBooking = &Rejection{Kind: KindDuplicateBooking}
	ErrLimitExceeded    = &Rejection{Kind: KindLimitExceeded}
	ErrSlotOccupied     = &Rejection{Kind: KindSlotOccupied}
	ErrConflictOnCommit = &Rejection{Kind: KindConflictOnCommit}
)

func Reject(kind RejectionKind, detail string) error {
	return &Rejection{Kind: kind, Detail: detail}
}

func KindOf(err error) (RejectionKind, bool) {
	var r *Rejection
	if errors.As(err, &r) {
		return r.Kind, true
	}
	return "", false
}

// IsDuplicate treats a lost uniqueness race the same as a detected duplicate.
func IsDuplicate(err error) bool {
	return errors.Is(err, ErrDuplicateBooking) || errors.Is(err, ErrConflictOnCommit)
}
