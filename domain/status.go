package domain

import "fmt"

type Role string

const (
	RoleStudent Role = "student"
	RoleManager Role = "manager"
)

type EntityKind string

const (
	KindReservation EntityKind = "reservation"
	KindBooking     EntityKind = "booking"
)

type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "PENDING"
	ReservationAccepted  ReservationStatus = "ACCEPTED"
	ReservationRejected  ReservationStatus = "REJECTED"
	ReservationCancelled ReservationStatus = "CANCELLED"
)

func ParseReservationStatus(s string) (ReservationStatus, error) {
	switch ReservationStatus(s) {
	case ReservationPending, ReservationAccepted, ReservationRejected, ReservationCancelled:
		return ReservationStatus(s), nil
	default:
		return "", fmt.Errorf("unknown reservation status: %s", s)
	}
}

// AllowedTransitions is the single source of truth for the reservation
// lifecycle. Role gating lives in the dispatcher, not here.
func (s ReservationStatus) AllowedTransitions() []ReservationStatus {
	switch s {
	case ReservationPending:
		return []ReservationStatus{ReservationAccepted, ReservationRejected, ReservationCancelled}
	case ReservationAccepted, ReservationRejected, ReservationCancelled:
		return nil
	default:
		return nil
	}
}

func (s ReservationStatus) CanTransitionTo(next ReservationStatus) bool {
	for _, allowed := range s.AllowedTransitions() {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s ReservationStatus) IsTerminal() bool {
	return len(s.AllowedTransitions()) == 0
}

type BookingStatus string

const (
	BookingPending     BookingStatus = "PENDING"
	BookingApproved    BookingStatus = "APPROVED"
	BookingDisapproved BookingStatus = "DISAPPROVED"
	BookingLeft        BookingStatus = "LEFT"
	BookingKicked      BookingStatus = "KICKED"
)

func ParseBookingStatus(s string) (BookingStatus, error) {
	switch BookingStatus(s) {
	case BookingPending, BookingApproved, BookingDisapproved, BookingLeft, BookingKicked:
		return BookingStatus(s), nil
	default:
		return "", fmt.Errorf("unknown booking status: %s", s)
	}
}

func (s BookingStatus) AllowedTransitions() []BookingStatus {
	switch s {
	case BookingPending:
		return []BookingStatus{BookingApproved, BookingDisapproved}
	case BookingApproved:
		return []BookingStatus{BookingLeft, BookingKicked}
	case BookingDisapproved, BookingLeft, BookingKicked:
		return nil
	default:
		return nil
	}
}

func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range s.AllowedTransitions() {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s BookingStatus) IsTerminal() bool {
	return len(s.AllowedTransitions()) == 0
}

type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "PENDING"
	VerificationApproved VerificationStatus = "APPROVED"
	VerificationRejected VerificationStatus = "REJECTED"
)

type ReportStatus string

const (
	ReportPending  ReportStatus = "PENDING"
	ReportResolved ReportStatus = "RESOLVED"
)

type ReportDecision string

const (
	DecisionStudentFault ReportDecision = "STUDENT_FAULT"
	DecisionManagerFault ReportDecision = "MANAGER_FAULT"
	DecisionOther        ReportDecision = "OTHER"
)

type RoomTypeKind string

const (
	RoomShared         RoomTypeKind = "SHARED"
	RoomPrivate        RoomTypeKind = "PRIVATE"
	RoomSharedFullRoom RoomTypeKind = "SHARED_FULLROOM"
)

// RoomTypeFillOrder is the fixed priority used when a wizard adds a new
// room-type entry: the lowest-indexed kind not already present wins.
var RoomTypeFillOrder = []RoomTypeKind{RoomShared, RoomPrivate, RoomSharedFullRoom}

func ParseRoomTypeKind(s string) (RoomTypeKind, error) {
	switch RoomTypeKind(s) {
	case RoomShared, RoomPrivate, RoomSharedFullRoom:
		return RoomTypeKind(s), nil
	default:
		return "", fmt.Errorf("unknown room type: %s", s)
	}
}

type KickReason string

const (
	KickLeftHostel    KickReason = "LEFT_HOSTEL"
	KickViolatedRules KickReason = "VIOLATED_RULES"
)

func ParseKickReason(s string) (KickReason, error) {
	switch KickReason(s) {
	case KickLeftHostel, KickViolatedRules:
		return KickReason(s), nil
	default:
		return "", fmt.Errorf("unknown kick reason: %s", s)
	}
}

type BillingType string

const (
	BillingSelf     BillingType = "SELF"
	BillingIncluded BillingType = "INCLUDED"
)
