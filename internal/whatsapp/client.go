package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const graphBaseURL = "https://graph.facebook.com/v19.0"

// Client sends messages through the WhatsApp Cloud API.
type Client struct {
	token   string
	phoneID string
	http    *http.Client
}

func NewClient(token, phoneID string) *Client {
	return &Client{
		token:   token,
		phoneID: phoneID,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

type textMessage struct {
	MessagingProduct string `json:"messaging_product"`
	To               string `json:"to"`
	Type             string `json:"type"`
	Text             struct {
		Body string `json:"body"`
	} `json:"text"`
}

func (c *Client) SendText(ctx context.Context, to, body string) error {
	msg := textMessage{
		MessagingProduct: "whatsapp",
		To:               to,
		Type:             "text",
	}
	msg.Text.Body = body

	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/%s/messages", graphBaseURL, c.phoneID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("whatsapp send: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("whatsapp send: unexpected status %d", resp.StatusCode)
	}
	return nil
}
