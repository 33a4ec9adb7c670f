package application

import (
	"context"
	"strings"
	"sync"

	"hostelhub_client/client"
	"hostelhub_client/domain"
	"hostelhub_client/errors"

	"github.com/sirupsen/logrus"
)

// Dispatcher executes lifecycle actions against the backend. Every mutation
// is checked against the transition table before any network call, only one
// mutation per entity may be in flight at a time, and on failure the
// in-memory entity is left untouched.
type Dispatcher struct {
	client   *client.Client
	notifier Notifier
	logger   *logrus.Logger

	mu       sync.Mutex
	inflight map[string]bool
}

func NewDispatcher(c *client.Client, n Notifier, logger *logrus.Logger) *Dispatcher {
	return &Dispatcher{
		client:   c,
		notifier: n,
		logger:   logger,
		inflight: map[string]bool{},
	}
}

func (d *Dispatcher) begin(entityID string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.inflight[entityID] {
		return errors.NewValidation(errors.ActionInFlightError)
	}
	d.inflight[entityID] = true
	return nil
}

func (d *Dispatcher) end(entityID string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.inflight, entityID)
}

func (d *Dispatcher) unsupported() error {
	err := errors.NewValidation(errors.UnsupportedActionError)
	d.notifier.Error(err.Message)
	return err
}

func (d *Dispatcher) CreateReservation(ctx context.Context, hostelID string, roomType domain.RoomTypeKind, message string) (*domain.Reservation, error) {
	reservation, err := d.client.CreateReservation(ctx, hostelID, roomType, message)
	if err != nil {
		d.notifier.Error(client.ServerMessage(err, errors.GenericReservationError))
		return nil, err
	}
	d.notifier.Success("Reservation request sent")
	return reservation, nil
}

func (d *Dispatcher) CancelReservation(ctx context.Context, r *domain.Reservation) error {
	if !r.Status.CanTransitionTo(domain.ReservationCancelled) {
		return d.unsupported()
	}
	if err := d.begin(r.ID); err != nil {
		return err
	}
	defer d.end(r.ID)

	if err := d.client.CancelReservation(ctx, r.ID); err != nil {
		d.notifier.Error(client.ServerMessage(err, errors.GenericReservationError))
		return err
	}
	r.Status = domain.ReservationCancelled
	d.notifier.Success("Reservation cancelled")
	return nil
}

// ReviewReservation is the manager decision. A rejection may carry a
// reason, an acceptance never does.
func (d *Dispatcher) ReviewReservation(ctx context.Context, r *domain.Reservation, accept bool, rejectReason string) error {
	target := domain.ReservationRejected
	if accept {
		target = domain.ReservationAccepted
		rejectReason = ""
	}
	if !r.Status.CanTransitionTo(target) {
		return d.unsupported()
	}
	if err := d.begin(r.ID); err != nil {
		return err
	}
	defer d.end(r.ID)

	if err := d.client.ReviewReservation(ctx, r.ID, target, rejectReason); err != nil {
		d.notifier.Error(client.ServerMessage(err, errors.GenericReservationError))
		return err
	}
	r.Status = target
	r.RejectReason = rejectReason
	d.notifier.Success("Reservation " + strings.ToLower(string(target)))
	return nil
}

// DeleteHostel is destructive and the UI confirms it before calling here.
func (d *Dispatcher) DeleteHostel(ctx context.Context, hostelID string) error {
	if err := d.begin(hostelID); err != nil {
		return err
	}
	defer d.end(hostelID)

	if err := d.client.DeleteHostel(ctx, hostelID); err != nil {
		d.notifier.Error(client.ServerMessage(err, errors.GenericSubmitError))
		return err
	}
	d.notifier.Success("Hostel deleted")
	return nil
}

func (d *Dispatcher) CreateBooking(ctx context.Context, payload client.BookingPayload) (*domain.Booking, error) {
	booking, err := d.client.CreateBooking(ctx, payload)
	if err != nil {
		d.notifier.Error(client.ServerMessage(err, errors.GenericBookingError))
		return nil, err
	}
	d.notifier.Success("Booking submitted")
	return booking, nil
}

func (d *Dispatcher) ApproveBooking(ctx context.Context, b *domain.Booking) error {
	if !b.Status.CanTransitionTo(domain.BookingApproved) {
		return d.unsupported()
	}
	if err := d.begin(b.ID); err != nil {
		return err
	}
	defer d.end(b.ID)

	if err := d.client.ApproveBooking(ctx, b.ID); err != nil {
		d.notifier.Error(client.ServerMessage(err, errors.GenericBookingError))
		return err
	}
	b.Status = domain.BookingApproved
	d.notifier.Success("Booking approved")
	return nil
}

func (d *Dispatcher) DisapproveBooking(ctx context.Context, b *domain.Booking, refund client.RefundPayload) error {
	if !b.Status.CanTransitionTo(domain.BookingDisapproved) {
		return d.unsupported()
	}
	if refund.Image.Path == "" {
		return errors.NewValidation(errors.MissingRefundProofError)
	}
	if err := d.begin(b.ID); err != nil {
		return err
	}
	defer d.end(b.ID)

	if err := d.client.DisapproveBooking(ctx, b.ID, refund); err != nil {
		d.notifier.Error(client.ServerMessage(err, errors.GenericBookingError))
		return err
	}
	b.Status = domain.BookingDisapproved
	b.Refund = &domain.RefundEvidence{
		Image: refund.Image.Path,
		Date:  refund.Date,
		Time:  refund.Time,
	}
	d.notifier.Success("Booking disapproved, refund recorded")
	return nil
}

func (d *Dispatcher) KickBooking(ctx context.Context, b *domain.Booking, reason string) error {
	if !b.Status.CanTransitionTo(domain.BookingKicked) {
		return d.unsupported()
	}
	kickReason, err := domain.ParseKickReason(reason)
	if err != nil {
		return errors.NewValidation(errors.InvalidKickReasonError)
	}
	if err := d.begin(b.ID); err != nil {
		return err
	}
	defer d.end(b.ID)

	if err := d.client.KickBooking(ctx, b.ID, kickReason); err != nil {
		d.notifier.Error(client.ServerMessage(err, errors.GenericBookingError))
		return err
	}
	b.Status = domain.BookingKicked
	b.KickReason = kickReason
	d.notifier.Success("Student removed from hostel")
	return nil
}

// LeaveBooking always pairs the transition with a rating and review, an
// optional free-text reason may ride along.
func (d *Dispatcher) LeaveBooking(ctx context.Context, b *domain.Booking, rating int, review, reason string) error {
	if !b.Status.CanTransitionTo(domain.BookingLeft) {
		return d.unsupported()
	}
	if rating < 1 || rating > 5 {
		return errors.NewValidation(errors.InvalidRatingError)
	}
	review = strings.TrimSpace(review)
	if review == "" {
		return errors.NewValidation(errors.EmptyReviewError)
	}
	if err := d.begin(b.ID); err != nil {
		return err
	}
	defer d.end(b.ID)

	if err := d.client.LeaveBooking(ctx, rating, review, reason); err != nil {
		d.notifier.Error(client.ServerMessage(err, errors.GenericBookingError))
		return err
	}
	b.Status = domain.BookingLeft
	b.Rating = rating
	b.Review = review
	b.LeaveReason = reason
	d.notifier.Success("You have left the hostel")
	return nil
}
