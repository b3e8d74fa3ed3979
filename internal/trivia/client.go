package trivia

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Fetch failure taxonomy. Callers branch on these with errors.Is; the
// wrapped detail is only for logs.
var (
	ErrTransport = errors.New("trivia api unreachable")
	ErrDecode    = errors.New("trivia api response malformed")
	ErrEmpty     = errors.New("trivia api returned no questions")
)

// RawQuestion mirrors one object of the trivia API response. Strings may
// still contain HTML entities; normalization happens elsewhere.
type RawQuestion struct {
	Question struct {
		Text string `json:"text"`
	} `json:"question"`
	CorrectAnswer    string   `json:"correctAnswer"`
	IncorrectAnswers []string `json:"incorrectAnswers"`
	Image            string   `json:"image"`
}

// Client fetches questions from the trivia API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a trivia API client for the given base URL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Fetch requests up to limit questions matching the given category
// identifiers and difficulty. A single failed request surfaces
// immediately; starting a quiz is user-initiated, so there are no
// retries. The API may return fewer questions than requested when its
// pool is exhausted.
func (c *Client) Fetch(ctx context.Context, categories []string, difficulty string, limit int) ([]RawQuestion, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	q.Set("categories", strings.Join(categories, ","))
	q.Set("difficulties", difficulty)

	reqURL := c.baseURL + "/questions?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", ErrTransport, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrTransport, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrTransport, err)
	}

	var questions []RawQuestion
	if err := json.Unmarshal(body, &questions); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	if len(questions) == 0 {
		return nil, ErrEmpty
	}

	return questions, nil
}
