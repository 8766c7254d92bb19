package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/diegoclair/group-meeting-rotation/pkg/retry"
)

// KVBackend talks to an Upstash-compatible Redis REST endpoint.
type KVBackend struct {
	baseURL string
	token   string
	client  *http.Client
}

type kvResponse struct {
	Result *string `json:"result"`
	Error  string  `json:"error"`
}

func NewKVBackend(baseURL, token string, client *http.Client) *KVBackend {
	if client == nil {
		client = http.DefaultClient
	}
	return &KVBackend{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		client:  client,
	}
}

func (b *KVBackend) Name() string { return "kv" }

func (b *KVBackend) Get(ctx context.Context, key string) ([]byte, error) {
	res, err := b.do(ctx, http.MethodGet, "/get/"+url.PathEscape(key), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", key, err)
	}
	if res.Result == nil {
		return nil, nil
	}
	return []byte(*res.Result), nil
}

func (b *KVBackend) Put(ctx context.Context, key string, value []byte) error {
	if _, err := b.do(ctx, http.MethodPost, "/set/"+url.PathEscape(key), value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	return nil
}

func (b *KVBackend) do(ctx context.Context, method, path string, body []byte) (*kvResponse, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, b.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+b.token)

	resp, err := b.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var res kvResponse
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return nil, fmt.Errorf("unexpected kv response (status %d): %w", resp.StatusCode, err)
	}
	if resp.StatusCode >= http.StatusBadRequest || res.Error != "" {
		err := fmt.Errorf("kv status %d: %s", resp.StatusCode, res.Error)
		if isClientError(resp.StatusCode) {
			return nil, retry.Permanent(err)
		}
		return nil, err
	}
	return &res, nil
}

func (b *KVBackend) Close() error { return nil }

// isClientError reports a 4xx status that a retry cannot fix. 429 is retried.
func isClientError(status int) bool {
	return status >= http.StatusBadRequest && status < http.StatusInternalServerError && status != http.StatusTooManyRequests
}
