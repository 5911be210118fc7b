package upstash

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"digitaltwin-rag-be/pkg/vectorstore"
)

// Client talks to an Upstash Vector index over its REST API. The index is
// expected to run with server-side embeddings enabled, so all writes and
// queries go through the *-data endpoints with raw text.
type Client struct {
	BaseURL string
	Token   string
	HTTP    *http.Client
}

var _ vectorstore.Store = &Client{}

func NewClient(baseURL, token string) *Client {
	return &Client{
		BaseURL: baseURL,
		Token:   token,
		HTTP: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// --- Request/Response structs (Internal to this package) ---

type upsertDataRequest struct {
	Id       string         `json:"id"`
	Data     string         `json:"data"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

type queryDataRequest struct {
	Data            string `json:"data"`
	TopK            int    `json:"topK"`
	IncludeMetadata bool   `json:"includeMetadata"`
}

type fetchRequest struct {
	Ids             []string `json:"ids"`
	IncludeMetadata bool     `json:"includeMetadata"`
}

type deleteRequest struct {
	Ids []string `json:"ids"`
}

type queryHit struct {
	Id       string         `json:"id"`
	Score    float64        `json:"score"`
	Metadata map[string]any `json:"metadata"`
}

type fetchRecord struct {
	Id       string         `json:"id"`
	Metadata map[string]any `json:"metadata"`
}

type infoResult struct {
	VectorCount int64 `json:"vectorCount"`
}

// --- Interface Implementation ---

func (c *Client) Upsert(ctx context.Context, id string, text string, metadata map[string]any) error {
	payload := upsertDataRequest{Id: id, Data: text, Metadata: metadata}
	var result json.RawMessage
	if err := c.call(ctx, "/upsert-data", payload, &result); err != nil {
		return fmt.Errorf("upsert %s: %w", id, err)
	}
	return nil
}

func (c *Client) Query(ctx context.Context, text string, topK int) ([]vectorstore.Hit, error) {
	payload := queryDataRequest{Data: text, TopK: topK, IncludeMetadata: true}
	var result []queryHit
	if err := c.call(ctx, "/query-data", payload, &result); err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	hits := make([]vectorstore.Hit, len(result))
	for i, h := range result {
		hits[i] = vectorstore.Hit{Id: h.Id, Score: h.Score, Metadata: h.Metadata}
	}
	return hits, nil
}

func (c *Client) Fetch(ctx context.Context, ids []string) ([]vectorstore.Record, error) {
	payload := fetchRequest{Ids: ids, IncludeMetadata: true}
	var result []*fetchRecord
	if err := c.call(ctx, "/fetch", payload, &result); err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	records := make([]vectorstore.Record, 0, len(result))
	for _, r := range result {
		// Missing ids come back as null entries.
		if r == nil {
			continue
		}
		records = append(records, vectorstore.Record{Id: r.Id, Metadata: r.Metadata})
	}
	return records, nil
}

func (c *Client) Delete(ctx context.Context, id string) error {
	payload := deleteRequest{Ids: []string{id}}
	var result json.RawMessage
	if err := c.call(ctx, "/delete", payload, &result); err != nil {
		return fmt.Errorf("delete %s: %w", id, err)
	}
	return nil
}

func (c *Client) Reset(ctx context.Context) error {
	var result json.RawMessage
	if err := c.call(ctx, "/reset", nil, &result); err != nil {
		return fmt.Errorf("reset: %w", err)
	}
	return nil
}

func (c *Client) Info(ctx context.Context) (*vectorstore.Info, error) {
	var result infoResult
	if err := c.call(ctx, "/info", nil, &result); err != nil {
		return nil, fmt.Errorf("info: %w", err)
	}
	return &vectorstore.Info{VectorCount: result.VectorCount}, nil
}

// call posts payload to the given endpoint and decodes the "result" field of
// the response envelope into out.
func (c *Client) call(ctx context.Context, path string, payload any, out any) error {
	var body io.Reader
	if payload != nil {
		payloadBytes, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewBuffer(payloadBytes)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.BaseURL+path, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.Token)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("upstash request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("upstash error: status %d, body: %s", resp.StatusCode, string(bodyBytes))
	}

	var envelope struct {
		Result json.RawMessage `json:"result"`
		Error  string          `json:"error"`
	}
	if err := json.Unmarshal(bodyBytes, &envelope); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}
	if envelope.Error != "" {
		return fmt.Errorf("upstash error: %s", envelope.Error)
	}
	if out != nil && len(envelope.Result) > 0 {
		if err := json.Unmarshal(envelope.Result, out); err != nil {
			return fmt.Errorf("unmarshal result: %w", err)
		}
	}
	return nil
}
