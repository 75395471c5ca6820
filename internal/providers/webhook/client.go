package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/yoockh/careercounsel/internal/utils"
)

// Client posts {sender, message} to a REST webhook and reads back a list of
// {text} and {custom} entries.
type Client struct {
	url    string
	client *http.Client
}

func NewClient(url string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{url: url, client: &http.Client{Timeout: timeout}}
}

type webhookRequest struct {
	Sender  string `json:"sender"`
	Message string `json:"message"`
}

type webhookEntry struct {
	Text   *string         `json:"text"`
	Custom json.RawMessage `json:"custom"`
}

func (c *Client) Reply(ctx context.Context, sender, message string) (*Reply, error) {
	const op = "WebhookClient.Reply"

	body, err := json.Marshal(webhookRequest{Sender: sender, Message: message})
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to encode request", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to build request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, utils.E(utils.CodeUnavailable, op, "conversation service unreachable", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, utils.E(utils.CodeUnavailable, op, "failed to read response", err)
	}
	if resp.StatusCode != http.StatusOK {
		se := &StatusError{StatusCode: resp.StatusCode}
		return nil, utils.E(utils.CodeUnavailable, op, se.Error(), se)
	}

	var entries []webhookEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, utils.E(utils.CodeUnavailable, op, "malformed response", err)
	}
	return parseEntries(entries)
}

func parseEntries(entries []webhookEntry) (*Reply, error) {
	const op = "WebhookClient.Reply"

	var texts []string
	var custom *Payload
	for _, e := range entries {
		if e.Text != nil {
			texts = append(texts, *e.Text)
		}
		if len(e.Custom) == 0 || string(e.Custom) == "null" {
			continue
		}
		p, err := decodeCustom(e.Custom)
		if err != nil {
			return nil, utils.E(utils.CodeUnavailable, op, "malformed custom payload", err)
		}
		custom = mergePayload(custom, p)
	}

	text := strings.TrimSpace(strings.Join(texts, " "))
	if text == "" {
		text = NoResponseText
	}
	return &Reply{Text: text, Custom: custom}, nil
}

// decodeCustom accepts the payload as an object or as a JSON string holding one.
func decodeCustom(raw json.RawMessage) (*Payload, error) {
	var encoded string
	if err := json.Unmarshal(raw, &encoded); err == nil {
		raw = json.RawMessage(encoded)
	}
	var p Payload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// mergePayload lets later entries override earlier ones field by field.
func mergePayload(into, p *Payload) *Payload {
	if into == nil {
		return p
	}
	if p.Careers != nil {
		into.Careers = p.Careers
	}
	if p.Interests != nil {
		into.Interests = p.Interests
	}
	if p.Name != nil {
		into.Name = p.Name
	}
	return into
}
