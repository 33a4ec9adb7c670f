package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"hostelhub_client/authorization"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
	"github.com/tidwall/gjson"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

// APIError is a non-2xx response from the backend. Message holds the
// server-provided text when one was present in the body.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("server returned status %d: %s", e.StatusCode, e.Message)
}

// ServerMessage returns the server-provided message for err, or fallback
// when the error carries none (network failure, empty body).
func ServerMessage(err error, fallback string) string {
	apiErr, ok := err.(*APIError)
	if ok && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

type Client struct {
	baseURL string
	http    *http.Client
	cb      *gobreaker.CircuitBreaker
	session *authorization.Session
	logger  *logrus.Logger
	tracer  trace.Tracer
}

func New(baseURL string, session *authorization.Session, logger *logrus.Logger, tracer trace.Tracer) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 10,
				MaxConnsPerHost:     10,
			},
		},
		cb:      newCircuitBreaker("backend", logger),
		session: session,
		logger:  logger,
		tracer:  tracer,
	}
}

func newCircuitBreaker(name string, logger *logrus.Logger) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(
		gobreaker.Settings{
			Name:        name,
			MaxRequests: 1,
			Timeout:     10 * time.Second,
			Interval:    0,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures > 2
			},
			OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
				logger.Infof("Circuit Breaker '%s' changed from '%s' to '%s'", name, from, to)
			},
			IsSuccessful: func(err error) bool {
				if err == nil {
					return true
				}
				// Client-side rejections say nothing about backend health.
				apiErr, ok := err.(*APIError)
				return ok && apiErr.StatusCode >= 400 && apiErr.StatusCode < 500
			},
		},
	)
}

func (c *Client) do(ctx context.Context, method, path, contentType string, body []byte) ([]byte, error) {
	ctx, span := c.tracer.Start(ctx, fmt.Sprintf("client.%s %s", method, path))
	defer span.End()

	result, err := c.cb.Execute(func() (interface{}, error) {
		var reader io.Reader
		if body != nil {
			reader = bytes.NewReader(body)
		}
		req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
		if err != nil {
			return nil, err
		}
		if contentType != "" {
			req.Header.Set("Content-Type", contentType)
		}
		if token := c.session.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		req.Header.Set("X-Request-Id", uuid.NewString())
		otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

		resp, err := c.http.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		raw, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}

		if resp.StatusCode >= 400 {
			return nil, &APIError{StatusCode: resp.StatusCode, Message: messageFromBody(raw)}
		}
		return raw, nil
	})

	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		c.logger.Warnf("%s %s failed: %v", method, path, err)
		return nil, err
	}
	return result.([]byte), nil
}

// messageFromBody digs a human-readable message out of an error body. The
// backend answers sometimes with {"message": ...}, sometimes with
// {"error": ...} and sometimes with bare text.
func messageFromBody(raw []byte) string {
	if m := gjson.GetBytes(raw, "message"); m.Exists() {
		return m.String()
	}
	if m := gjson.GetBytes(raw, "error"); m.Exists() {
		return m.String()
	}
	trimmed := strings.TrimSpace(string(raw))
	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		return ""
	}
	return trimmed
}
