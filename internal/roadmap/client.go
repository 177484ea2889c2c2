package roadmap

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const (
	DefaultBaseURL = "https://api.notion.com"
	NotionVersion  = "2022-06-28"

	// MaxBlocks is the Notion limit on children appended in one request.
	MaxBlocks = 100
)

var (
	ErrMissingToken  = errors.New("notion token is required")
	ErrMissingPage   = errors.New("notion page id is required")
	ErrTooManyBlocks = fmt.Errorf("more than %d blocks in one append", MaxBlocks)
)

// APIError is a non-2xx reply from the Notion API.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("notion api returned status %d: %s", e.Status, e.Body)
}

// Client appends blocks to a Notion page.
type Client struct {
	BaseURL string
	Token   string
	HTTP    *http.Client
	Logger  *slog.Logger
}

func NewClient(token string, logger *slog.Logger) *Client {
	return &Client{
		BaseURL: DefaultBaseURL,
		Token:   token,
		HTTP:    &http.Client{Timeout: 30 * time.Second},
		Logger:  logger.With("system", "roadmap"),
	}
}

type appendRequest struct {
	Children []Block `json:"children"`
}

// Append sends blocks as children of pageID in a single request.
func (c *Client) Append(ctx context.Context, pageID string, blocks []Block) error {
	if c.Token == "" {
		return ErrMissingToken
	}
	pageID = strings.TrimSpace(pageID)
	if pageID == "" {
		return ErrMissingPage
	}
	if len(blocks) > MaxBlocks {
		return ErrTooManyBlocks
	}

	body, err := json.Marshal(appendRequest{Children: blocks})
	if err != nil {
		return fmt.Errorf("encode blocks: %w", err)
	}

	url := fmt.Sprintf("%s/v1/blocks/%s/children", strings.TrimSuffix(c.BaseURL, "/"), pageID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.Token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Notion-Version", NotionVersion)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &APIError{Status: resp.StatusCode, Body: strings.TrimSpace(string(msg))}
	}

	c.Logger.Info("roadmap synced", "page", pageID, "blocks", len(blocks))
	return nil
}
