package escrow

import (
	"fmt"
)

type StatusType string

const (
	StatusSubmitted      StatusType = "SBM"
	StatusConfirmed      StatusType = "CNF"
	StatusEscrowPending  StatusType = "ESCRW_PN"
	StatusEscrowed       StatusType = "ESCRW"
	StatusPaidPending    StatusType = "PD_PN"
	StatusPaid           StatusType = "PD"
	StatusAppealed       StatusType = "APL"
	StatusReleasePending StatusType = "RLS_PN"
	StatusRefundPending  StatusType = "RFN_PN"
	StatusReleased       StatusType = "RLS"
	StatusRefunded       StatusType = "RFN"
	StatusCanceled       StatusType = "CNCL"
)

var statusNames = map[StatusType]string{
	StatusSubmitted:      "SUBMITTED",
	StatusConfirmed:      "CONFIRMED",
	StatusEscrowPending:  "ESCROW_PENDING",
	StatusEscrowed:       "ESCROWED",
	StatusPaidPending:    "PAID_PENDING",
	StatusPaid:           "PAID",
	StatusAppealed:       "APPEALED",
	StatusReleasePending: "RELEASE_PENDING",
	StatusRefundPending:  "REFUND_PENDING",
	StatusReleased:       "RELEASED",
	StatusRefunded:       "REFUNDED",
	StatusCanceled:       "CANCELED",
}

func (s StatusType) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return string(s)
}

func (s StatusType) Valid() bool {
	_, ok := statusNames[s]
	return ok
}

func (s StatusType) Terminal() bool {
	return len(progression[s]) == 0
}

// progression lists the statuses that may directly follow each status.
var progression = map[StatusType][]StatusType{
	StatusSubmitted:      {StatusConfirmed, StatusCanceled},
	StatusConfirmed:      {StatusEscrowPending, StatusCanceled},
	StatusEscrowPending:  {StatusEscrowed, StatusCanceled},
	StatusEscrowed:       {StatusPaidPending, StatusPaid, StatusAppealed, StatusRefundPending},
	StatusPaidPending:    {StatusPaid, StatusAppealed, StatusRefundPending},
	StatusPaid:           {StatusReleasePending, StatusReleased, StatusAppealed, StatusRefundPending},
	StatusAppealed:       {StatusReleasePending, StatusRefundPending},
	StatusReleasePending: {StatusReleased},
	StatusRefundPending:  {StatusRefunded},
	StatusReleased:       nil,
	StatusRefunded:       nil,
	StatusCanceled:       nil,
}

// exclusive maps a status to the statuses that may never coexist with it in one history.
var exclusive = map[StatusType][]StatusType{
	StatusReleasePending: {StatusRefundPending, StatusRefunded},
	StatusRefundPending:  {StatusReleasePending, StatusReleased},
	StatusReleased:       {StatusRefunded, StatusRefundPending, StatusCanceled},
	StatusRefunded:       {StatusReleased, StatusReleasePending, StatusCanceled},
	StatusCanceled:       {StatusEscrowed, StatusReleased, StatusRefunded},
	StatusEscrowed:       {StatusCanceled},
}

// AppealableStatuses are the statuses from which an expired order may be appealed.
var AppealableStatuses = []StatusType{StatusEscrowed, StatusPaidPending, StatusPaid}

func CanFollow(current, next StatusType) bool {
	for _, s := range progression[current] {
		if s == next {
			return true
		}
	}
	return false
}

// Latest returns the current status of a history ordered by creation.
func Latest(history []Status) *Status {
	if len(history) == 0 {
		return nil
	}
	return &history[len(history)-1]
}

// ValidateTransition checks whether next may be appended to history. The instance count check runs
// first, then exclusivity, then progression.
func ValidateTransition(history []Status, next StatusType) error {
	if !next.Valid() {
		return fmt.Errorf("%w: unknown status %s", ErrInvalidProgression, next)
	}

	for _, s := range history {
		if s.Status == next {
			return fmt.Errorf("%w: %s", ErrDuplicateStatus, next)
		}
	}

	for _, s := range history {
		for _, other := range exclusive[next] {
			if s.Status == other {
				return fmt.Errorf("%w: %s conflicts with existing %s", ErrConflictingStatus, next, other)
			}
		}
	}

	latest := Latest(history)
	if latest == nil {
		if next != StatusSubmitted {
			return fmt.Errorf("%w: order has no status, %s not allowed", ErrInvalidProgression, next)
		}
		return nil
	}

	if !CanFollow(latest.Status, next) {
		return fmt.Errorf("%w: %s cannot follow %s", ErrInvalidProgression, next, latest.Status)
	}

	return nil
}

// CheckCurrent returns ErrUnexpectedStatus unless the latest status is one of expected.
// An empty expected set accepts any status.
func CheckCurrent(history []Status, expected ...StatusType) error {
	if len(expected) == 0 {
		return nil
	}

	latest := Latest(history)
	if latest == nil {
		return fmt.Errorf("%w: order has no status", ErrUnexpectedStatus)
	}

	for _, s := range expected {
		if latest.Status == s {
			return nil
		}
	}

	return fmt.Errorf("%w: current status %s", ErrUnexpectedStatus, latest.Status)
}

func HasStatus(history []Status, status StatusType) bool {
	for _, s := range history {
		if s.Status == status {
			return true
		}
	}
	return false
}
