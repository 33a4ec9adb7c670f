package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReservationTransitions(t *testing.T) {
	assert.ElementsMatch(t,
		[]ReservationStatus{ReservationAccepted, ReservationRejected, ReservationCancelled},
		ReservationPending.AllowedTransitions(),
	)

	for _, status := range []ReservationStatus{ReservationAccepted, ReservationRejected, ReservationCancelled} {
		assert.True(t, status.IsTerminal(), "%s should be terminal", status)
		assert.Empty(t, status.AllowedTransitions())
	}
	assert.False(t, ReservationPending.IsTerminal())

	assert.True(t, ReservationPending.CanTransitionTo(ReservationCancelled))
	assert.False(t, ReservationRejected.CanTransitionTo(ReservationCancelled))
	assert.False(t, ReservationAccepted.CanTransitionTo(ReservationPending))
}

func TestBookingTransitions(t *testing.T) {
	assert.ElementsMatch(t,
		[]BookingStatus{BookingApproved, BookingDisapproved},
		BookingPending.AllowedTransitions(),
	)
	assert.ElementsMatch(t,
		[]BookingStatus{BookingLeft, BookingKicked},
		BookingApproved.AllowedTransitions(),
	)

	for _, status := range []BookingStatus{BookingDisapproved, BookingLeft, BookingKicked} {
		assert.True(t, status.IsTerminal(), "%s should be terminal", status)
	}

	assert.False(t, BookingPending.CanTransitionTo(BookingLeft))
	assert.False(t, BookingPending.CanTransitionTo(BookingKicked))
	assert.False(t, BookingLeft.CanTransitionTo(BookingApproved))
}

func TestParseStatuses(t *testing.T) {
	status, err := ParseReservationStatus("PENDING")
	assert.NoError(t, err)
	assert.Equal(t, ReservationPending, status)

	_, err = ParseReservationStatus("pending")
	assert.Error(t, err)

	_, err = ParseBookingStatus("UNKNOWN")
	assert.Error(t, err)

	kind, err := ParseRoomTypeKind("SHARED_FULLROOM")
	assert.NoError(t, err)
	assert.Equal(t, RoomSharedFullRoom, kind)

	_, err = ParseKickReason("BECAUSE")
	assert.Error(t, err)

	reason, err := ParseKickReason("VIOLATED_RULES")
	assert.NoError(t, err)
	assert.Equal(t, KickViolatedRules, reason)
}

func TestMessageOwnership(t *testing.T) {
	message := &Message{SenderID: "u1", Text: "hello"}
	assert.True(t, message.IsMine("u1"))
	assert.False(t, message.IsMine("u2"))
}
