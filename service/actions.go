package application

import "hostelhub_client/domain"

// PayloadKind names the extra input an action needs before it can fire.
type PayloadKind string

const (
	PayloadNone         PayloadKind = "none"
	PayloadRejectReason PayloadKind = "rejectReason"
	PayloadKickReason   PayloadKind = "kickReason"
	PayloadReview       PayloadKind = "review"
	PayloadRefund       PayloadKind = "refundEvidence"
)

// Action is one button the UI may offer for an entity in its current
// status. Target is the status the action drives the entity to, and is
// always drawn from the transition table. Confirm marks destructive
// actions that need an explicit confirmation step.
type Action struct {
	Name    string
	Label   string
	Target  string
	Payload PayloadKind
	Confirm bool
}

// ReservationActions returns the actions a user of the given role may
// attempt on a reservation in the given status. Anything not listed here
// must never be presented.
func ReservationActions(role domain.Role, status domain.ReservationStatus) []Action {
	if status != domain.ReservationPending {
		return nil
	}
	switch role {
	case domain.RoleManager:
		return []Action{
			{Name: "accept", Label: "Accept", Target: string(domain.ReservationAccepted)},
			{Name: "reject", Label: "Reject", Target: string(domain.ReservationRejected), Payload: PayloadRejectReason},
		}
	case domain.RoleStudent:
		return []Action{
			{Name: "cancel", Label: "Cancel", Target: string(domain.ReservationCancelled), Confirm: true},
		}
	default:
		return nil
	}
}

func BookingActions(role domain.Role, status domain.BookingStatus) []Action {
	switch status {
	case domain.BookingPending:
		if role != domain.RoleManager {
			return nil
		}
		return []Action{
			{Name: "approve", Label: "Approve", Target: string(domain.BookingApproved)},
			{Name: "disapprove", Label: "Disapprove", Target: string(domain.BookingDisapproved), Payload: PayloadRefund, Confirm: true},
		}
	case domain.BookingApproved:
		switch role {
		case domain.RoleStudent:
			return []Action{
				{Name: "leave", Label: "Leave Hostel", Target: string(domain.BookingLeft), Payload: PayloadReview, Confirm: true},
			}
		case domain.RoleManager:
			return []Action{
				{Name: "kick", Label: "Kick Out", Target: string(domain.BookingKicked), Payload: PayloadKickReason, Confirm: true},
			}
		}
		return nil
	default:
		return nil
	}
}

// AvailableActions is the generic entry point over both entity kinds. An
// unparseable status yields no actions rather than an error, the caller is
// rendering buttons, not reporting.
func AvailableActions(role domain.Role, kind domain.EntityKind, status string) []Action {
	switch kind {
	case domain.KindReservation:
		parsed, err := domain.ParseReservationStatus(status)
		if err != nil {
			return nil
		}
		return ReservationActions(role, parsed)
	case domain.KindBooking:
		parsed, err := domain.ParseBookingStatus(status)
		if err != nil {
			return nil
		}
		return BookingActions(role, parsed)
	default:
		return nil
	}
}
