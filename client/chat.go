package client

import (
	"bytes"
	"context"
	"net/http"

	"hostelhub_client/domain"
)

func (c *Client) Conversations(ctx context.Context) ([]domain.Conversation, error) {
	var conversations []domain.Conversation
	if err := c.getJSON(ctx, "/chat/conversations", &conversations); err != nil {
		return nil, err
	}
	return conversations, nil
}

func (c *Client) Messages(ctx context.Context, conversationID string) (domain.Messages, error) {
	raw, err := c.do(ctx, http.MethodGet, "/chat/conversation/"+conversationID+"/messages", "", nil)
	if err != nil {
		return nil, err
	}
	var messages domain.Messages
	if err := messages.FromJSON(bytes.NewReader(raw)); err != nil {
		return nil, err
	}
	return messages, nil
}

func (c *Client) SendMessage(ctx context.Context, conversationID, text string) (*domain.Message, error) {
	in := map[string]string{
		"conversationId": conversationID,
		"text":           text,
	}
	var message domain.Message
	if err := c.postJSON(ctx, "/chat/message", in, &message); err != nil {
		return nil, err
	}
	return &message, nil
}

func (c *Client) CreateConversation(ctx context.Context, managerID string) (*domain.Conversation, error) {
	in := map[string]string{"managerId": managerID}
	var conversation domain.Conversation
	if err := c.postJSON(ctx, "/chat/conversation", in, &conversation); err != nil {
		return nil, err
	}
	return &conversation, nil
}
