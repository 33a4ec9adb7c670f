package application

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"hostelhub_client/domain"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chatBackend is an in-memory stand-in for the conversation endpoints.
type chatBackend struct {
	mu       sync.Mutex
	messages domain.Messages
	failSend bool
	nextID   int
}

func (b *chatBackend) router() *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/chat/conversation/{id}/messages", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		json.NewEncoder(w).Encode(b.messages)
	}).Methods(http.MethodGet)
	router.HandleFunc("/chat/message", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		if b.failSend {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"message": "chat backend down"})
			return
		}
		var in map[string]string
		json.NewDecoder(r.Body).Decode(&in)
		b.nextID++
		message := domain.Message{
			ID:             fmt.Sprintf("m%d", b.nextID),
			ConversationID: in["conversationId"],
			SenderID:       "u1",
			Text:           in["text"],
			CreatedAt:      time.Now().UTC(),
		}
		b.messages = append(b.messages, &message)
		json.NewEncoder(w).Encode(message)
	}).Methods(http.MethodPost)
	return router
}

func (b *chatBackend) snapshot() domain.Messages {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make(domain.Messages, len(b.messages))
	copy(out, b.messages)
	return out
}

func newChatSyncForTest(t *testing.T, backend *chatBackend) *ChatSync {
	t.Helper()
	c := newTestClient(t, backend.router())
	engine := NewChatSync(c, &recordingNotifier{}, testLogger(), 20*time.Millisecond)
	engine.mu.Lock()
	engine.conversationID = "c1"
	engine.mu.Unlock()
	return engine
}

func TestRefreshReplacesListWholesale(t *testing.T) {
	backend := &chatBackend{messages: domain.Messages{
		{ID: "m1", SenderID: "u2", Text: "hello"},
		{ID: "m2", SenderID: "u1", Text: "hi"},
	}}
	engine := newChatSyncForTest(t, backend)

	require.NoError(t, engine.Refresh(context.Background()))
	assert.Equal(t, backend.snapshot(), engine.Messages())

	// server-side changes win on the next refresh, local leftovers vanish
	backend.mu.Lock()
	backend.messages = backend.messages[:1]
	backend.mu.Unlock()
	require.NoError(t, engine.Refresh(context.Background()))
	assert.Equal(t, backend.snapshot(), engine.Messages())
}

func TestOptimisticSendThenReconcile(t *testing.T) {
	backend := &chatBackend{}
	engine := newChatSyncForTest(t, backend)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		engine.SetDraft(fmt.Sprintf("message %d", i))
		require.NoError(t, engine.Send(ctx))
	}

	// each send already appended its confirmed message locally
	assert.Len(t, engine.Messages(), 3)
	assert.Empty(t, engine.Draft())

	// a poll tick leaves the list exactly equal to the server's: no
	// duplication, no loss
	require.NoError(t, engine.Refresh(ctx))
	assert.Equal(t, backend.snapshot(), engine.Messages())
	assert.Len(t, engine.Messages(), 3)
}

func TestFailedSendKeepsDraft(t *testing.T) {
	backend := &chatBackend{failSend: true}
	engine := newChatSyncForTest(t, backend)

	engine.SetDraft("important text")
	err := engine.Send(context.Background())
	require.Error(t, err)
	assert.Equal(t, "important text", engine.Draft())
	assert.Empty(t, engine.Messages())
}

func TestEmptyDraftIsNotSent(t *testing.T) {
	backend := &chatBackend{}
	engine := newChatSyncForTest(t, backend)

	engine.SetDraft("   ")
	require.Error(t, engine.Send(context.Background()))
	assert.Empty(t, backend.snapshot())
}

func TestPollFailureIsSwallowed(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	c := newTestClient(t, handler)
	engine := NewChatSync(c, &recordingNotifier{}, testLogger(), 20*time.Millisecond)
	engine.mu.Lock()
	engine.conversationID = "c1"
	engine.ctx = context.Background()
	engine.mu.Unlock()

	engine.tick() // must not panic or surface anything
	assert.Empty(t, engine.Messages())
}

func TestStartPollsAndStopTearsDown(t *testing.T) {
	backend := &chatBackend{messages: domain.Messages{{ID: "m1", Text: "hello"}}}
	engine := newChatSyncForTest(t, backend)

	updates := make(chan domain.Messages, 16)
	require.NoError(t, engine.Start("c1", func(messages domain.Messages) {
		updates <- messages
	}))
	defer engine.Stop()

	select {
	case messages := <-updates:
		assert.Len(t, messages, 1)
	case <-time.After(2 * time.Second):
		t.Fatal("no poll update arrived")
	}

	engine.Stop()
	engine.Stop() // idempotent
}

func TestDefaultInterval(t *testing.T) {
	engine := NewChatSync(nil, &recordingNotifier{}, testLogger(), 0)
	assert.Equal(t, PollInterval, engine.interval)
	assert.Equal(t, 5*time.Second, PollInterval)
}
