package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"hostelhub_client/domain"
)

func (c *Client) MyReservations(ctx context.Context) (domain.Reservations, error) {
	raw, err := c.do(ctx, http.MethodGet, "/reservations/my", "", nil)
	if err != nil {
		return nil, err
	}
	var reservations domain.Reservations
	if err := reservations.FromJSON(bytes.NewReader(raw)); err != nil {
		return nil, err
	}
	return reservations, nil
}

func (c *Client) HostelReservations(ctx context.Context, hostelID string) (domain.Reservations, error) {
	raw, err := c.do(ctx, http.MethodGet, "/reservations/hostel/"+hostelID, "", nil)
	if err != nil {
		return nil, err
	}
	var reservations domain.Reservations
	if err := reservations.FromJSON(bytes.NewReader(raw)); err != nil {
		return nil, err
	}
	return reservations, nil
}

func (c *Client) CreateReservation(ctx context.Context, hostelID string, roomType domain.RoomTypeKind, message string) (*domain.Reservation, error) {
	in := map[string]string{
		"hostelId": hostelID,
		"roomType": string(roomType),
	}
	if message != "" {
		in["message"] = message
	}
	body, err := json.Marshal(in)
	if err != nil {
		return nil, err
	}

	raw, err := c.do(ctx, http.MethodPost, "/reservations", "application/json", body)
	if err != nil {
		return nil, err
	}
	var reservation domain.Reservation
	if err := reservation.FromJSON(bytes.NewReader(raw)); err != nil {
		return nil, err
	}
	return &reservation, nil
}

func (c *Client) CancelReservation(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodPost, fmt.Sprintf("/reservations/%s/cancel", id), "", nil)
	return err
}

// ReviewReservation is the manager decision: status must be ACCEPTED or
// REJECTED, rejectReason travels only with a rejection.
func (c *Client) ReviewReservation(ctx context.Context, id string, status domain.ReservationStatus, rejectReason string) error {
	in := map[string]string{"status": string(status)}
	if rejectReason != "" {
		in["rejectReason"] = rejectReason
	}
	return c.postJSON(ctx, fmt.Sprintf("/reservations/%s/review", id), in, nil)
}
