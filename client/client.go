// Package client talks to the flashnotes API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/andrewpaige1/flashnotes/models"
)

// ErrMalformedResponse is returned when a response body cannot be decoded.
var ErrMalformedResponse = errors.New("malformed response from server")

// APIError carries the error message the server answered with.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New returns a Client for the API at baseURL. A nil httpClient uses a client
// with a 30 second timeout.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), httpClient: httpClient}
}

type generateRequest struct {
	Notes  string  `json:"notes"`
	UserID *string `json:"user_id"`
}

type envelope struct {
	Flashcards []models.Flashcard `json:"flashcards"`
	Error      string             `json:"error"`
}

// Fetch lists the stored cards of userID, or of every user when it is blank.
func (c *Client) Fetch(ctx context.Context, userID string) ([]models.Flashcard, error) {
	endpoint := c.baseURL + "/api/flashcards"
	if userID != "" {
		endpoint += "?" + url.Values{"user_id": {userID}}.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	return c.do(req)
}

// Generate asks the server to synthesize and store cards for notes.
func (c *Client) Generate(ctx context.Context, notes, userID string) ([]models.Flashcard, error) {
	body := generateRequest{Notes: notes}
	if userID != "" {
		body.UserID = &userID
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/generate", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req)
}

func (c *Client) do(req *http.Request) ([]models.Flashcard, error) {
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var env envelope
	decodeErr := json.Unmarshal(raw, &env)

	if env.Error != "" {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: env.Error}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, decodeErr)
	}
	if env.Flashcards == nil {
		return []models.Flashcard{}, nil
	}
	return env.Flashcards, nil
}
