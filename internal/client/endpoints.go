package client

import (
	"context"
	"net/url"

	"github.com/corpac/coba/internal/api/request"
	"github.com/corpac/coba/internal/model"
)

func (c *Client) Dashboard(ctx context.Context) (*model.DashboardSnapshot, error) {
	resp, err := c.Get(ctx, "/dashboard", nil)
	if err != nil {
		return nil, err
	}
	var snap model.DashboardSnapshot
	return &snap, resp.Decode(&snap)
}

func (c *Client) ISO(ctx context.Context, standard string) (*model.ISOCompliance, error) {
	resp, err := c.Get(ctx, "/iso/"+url.PathEscape(standard), nil)
	if err != nil {
		return nil, err
	}
	var iso model.ISOCompliance
	return &iso, resp.Decode(&iso)
}

func (c *Client) StartConversation(ctx context.Context) (*model.Conversation, error) {
	resp, err := c.Post(ctx, "/assistant/conversations", nil)
	if err != nil {
		return nil, err
	}
	var conv model.Conversation
	return &conv, resp.Decode(&conv)
}

// SendMessage sends one user turn. The assistant key, when set, travels in
// the X-Assistant-Key header.
func (c *Client) SendMessage(ctx context.Context, conversationID, content string) (*model.Reply, error) {
	resp, err := c.Post(ctx, "/assistant/conversations/"+url.PathEscape(conversationID)+"/messages",
		request.SendMessage{Content: content})
	if err != nil {
		return nil, err
	}
	var reply model.Reply
	return &reply, resp.Decode(&reply)
}
