package client

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strconv"

	"hostelhub_client/domain"
)

// BookingPayload carries the payment evidence a student submits to open a
// booking.
type BookingPayload struct {
	HostelID    string
	RoomType    domain.RoomTypeKind
	Date        string
	Time        string
	FromAccount string
	ToAccount   string
	Image       FilePart
}

// RefundPayload is the manager's refund proof attached to a disapproval.
type RefundPayload struct {
	Date  string
	Time  string
	Image FilePart
}

func (c *Client) MyBookings(ctx context.Context) (domain.Bookings, error) {
	raw, err := c.do(ctx, http.MethodGet, "/bookings/my", "", nil)
	if err != nil {
		return nil, err
	}
	var bookings domain.Bookings
	if err := bookings.FromJSON(bytes.NewReader(raw)); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (c *Client) HostelBookings(ctx context.Context, hostelID string) (domain.Bookings, error) {
	raw, err := c.do(ctx, http.MethodGet, "/bookings/hostel/"+hostelID, "", nil)
	if err != nil {
		return nil, err
	}
	var bookings domain.Bookings
	if err := bookings.FromJSON(bytes.NewReader(raw)); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (c *Client) CreateBooking(ctx context.Context, payload BookingPayload) (*domain.Booking, error) {
	fields := map[string]string{
		"hostelId":    payload.HostelID,
		"roomType":    string(payload.RoomType),
		"date":        payload.Date,
		"time":        payload.Time,
		"fromAccount": payload.FromAccount,
		"toAccount":   payload.ToAccount,
	}
	payload.Image.Field = "image"
	body, contentType, err := encodeMultipart(fields, []FilePart{payload.Image})
	if err != nil {
		return nil, err
	}

	raw, err := c.do(ctx, http.MethodPost, "/bookings", contentType, body)
	if err != nil {
		return nil, err
	}
	var booking domain.Booking
	if err := booking.FromJSON(bytes.NewReader(raw)); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (c *Client) ApproveBooking(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodPost, fmt.Sprintf("/bookings/%s/approve", id), "", nil)
	return err
}

func (c *Client) DisapproveBooking(ctx context.Context, id string, refund RefundPayload) error {
	fields := map[string]string{
		"date": refund.Date,
		"time": refund.Time,
	}
	refund.Image.Field = "image"
	body, contentType, err := encodeMultipart(fields, []FilePart{refund.Image})
	if err != nil {
		return err
	}
	_, err = c.do(ctx, http.MethodPost, fmt.Sprintf("/bookings/%s/disapprove", id), contentType, body)
	return err
}

func (c *Client) KickBooking(ctx context.Context, id string, reason domain.KickReason) error {
	in := map[string]string{"kickReason": string(reason)}
	return c.postJSON(ctx, fmt.Sprintf("/bookings/%s/kick", id), in, nil)
}

func (c *Client) LeaveBooking(ctx context.Context, rating int, review, reason string) error {
	in := map[string]string{
		"rating": strconv.Itoa(rating),
		"review": review,
	}
	if reason != "" {
		in["reason"] = reason
	}
	return c.postJSON(ctx, "/bookings/leave", in, nil)
}
