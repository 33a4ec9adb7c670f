package application

import (
	"context"
	"strings"
	"sync"
	"time"

	"hostelhub_client/client"
	"hostelhub_client/domain"
	"hostelhub_client/errors"

	"github.com/go-co-op/gocron/v2"
	"github.com/sirupsen/logrus"
)

// PollInterval is how often an open conversation refetches its messages.
const PollInterval = 5 * time.Second

// ChatSync keeps the local message list of one conversation in step with
// the server. Every poll tick replaces the list wholesale, so the server's
// order is authoritative after any tick. A sent message is appended
// optimistically and reconciled by the next tick.
type ChatSync struct {
	client   *client.Client
	notifier Notifier
	logger   *logrus.Logger
	interval time.Duration

	mu             sync.Mutex
	conversationID string
	messages       domain.Messages
	draft          string
	onUpdate       func(domain.Messages)

	sched  gocron.Scheduler
	ctx    context.Context
	cancel context.CancelFunc
}

// NewChatSync builds an engine for one conversation view. A zero interval
// means PollInterval.
func NewChatSync(c *client.Client, n Notifier, logger *logrus.Logger, interval time.Duration) *ChatSync {
	if interval <= 0 {
		interval = PollInterval
	}
	return &ChatSync{
		client:   c,
		notifier: n,
		logger:   logger,
		interval: interval,
	}
}

// Start begins polling. The first fetch fires immediately, then every
// interval. Ticks run in singleton mode: a tick still in flight when the
// next one is due is rescheduled, never stacked.
func (s *ChatSync) Start(conversationID string, onUpdate func(domain.Messages)) error {
	s.mu.Lock()
	s.conversationID = conversationID
	s.onUpdate = onUpdate
	s.mu.Unlock()

	s.ctx, s.cancel = context.WithCancel(context.Background())

	sched, err := gocron.NewScheduler()
	if err != nil {
		return err
	}
	_, err = sched.NewJob(
		gocron.DurationJob(s.interval),
		gocron.NewTask(s.tick),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		return err
	}
	s.sched = sched
	sched.Start()
	return nil
}

// Stop tears the poll loop down and abandons any in-flight fetch. It must
// run whenever the conversation view goes away and is safe to call twice.
func (s *ChatSync) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
	if s.sched != nil {
		if err := s.sched.Shutdown(); err != nil {
			s.logger.Warnf("chat scheduler shutdown: %v", err)
		}
		s.sched = nil
	}
}

// tick swallows failures: polling is retried on the next interval anyway.
func (s *ChatSync) tick() {
	if err := s.Refresh(s.ctx); err != nil {
		s.logger.Debugf("chat poll failed: %v", err)
	}
}

// Refresh fetches the conversation and replaces the local list with exactly
// what the server returned.
func (s *ChatSync) Refresh(ctx context.Context) error {
	s.mu.Lock()
	conversationID := s.conversationID
	s.mu.Unlock()

	messages, err := s.client.Messages(ctx, conversationID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.messages = messages
	snapshot := s.snapshotLocked()
	onUpdate := s.onUpdate
	s.mu.Unlock()

	if onUpdate != nil {
		onUpdate(snapshot)
	}
	return nil
}

func (s *ChatSync) Messages() domain.Messages {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *ChatSync) snapshotLocked() domain.Messages {
	out := make(domain.Messages, len(s.messages))
	copy(out, s.messages)
	return out
}

func (s *ChatSync) SetDraft(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = text
}

func (s *ChatSync) Draft() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft
}

// Send posts the draft. On success the returned message is appended ahead
// of the next poll tick and the draft is cleared. On failure the draft is
// kept so the user's text is never dropped.
func (s *ChatSync) Send(ctx context.Context) error {
	s.mu.Lock()
	conversationID := s.conversationID
	text := strings.TrimSpace(s.draft)
	s.mu.Unlock()

	if text == "" {
		return errors.NewValidation("Message text cannot be empty")
	}

	message, err := s.client.SendMessage(ctx, conversationID, text)
	if err != nil {
		s.notifier.Error(client.ServerMessage(err, errors.GenericSendError))
		return err
	}

	s.mu.Lock()
	s.messages = append(s.messages, message)
	s.draft = ""
	snapshot := s.snapshotLocked()
	onUpdate := s.onUpdate
	s.mu.Unlock()

	if onUpdate != nil {
		onUpdate(snapshot)
	}
	return nil
}
