// Package stream consumes the legacy server-push generation endpoint.
// Accumulation and parsing are kept apart: Accumulator folds fragments into
// a cumulative buffer and re-runs the incremental parser; Client handles the
// transport framing and failure classification.
package stream

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"elevare/pkg/roadmap/parser"
)

// ErrConnection: the transport failed before any fragment arrived.
var ErrConnection = errors.New("stream: connection failed before any content arrived")

// InterruptedError: the transport failed after partial content arrived. The
// partial roadmap is discarded, never shown as complete.
type InterruptedError struct {
	Fragments int
	Err       error
}

func (e *InterruptedError) Error() string {
	return fmt.Sprintf("stream: interrupted after %d fragments: %v", e.Fragments, e.Err)
}

func (e *InterruptedError) Unwrap() error { return e.Err }

// Accumulator folds fragments into the cumulative text and keeps the best
// parse so far. Once steps are populated they never regress to empty
// mid-stream.
type Accumulator struct {
	buf    strings.Builder
	result parser.Result
}

func (a *Accumulator) Append(fragment string) parser.Result {
	a.buf.WriteString(fragment)
	a.result = parser.ParseIncremental(a.buf.String(), a.result)
	return a.result
}

func (a *Accumulator) Content() string { return a.buf.String() }

func (a *Accumulator) Result() parser.Result { return a.result }

// Finalize runs the strict post-completion pass. Unlike the incremental
// attempts, an empty result here is an error.
func (a *Accumulator) Finalize() (parser.Result, error) {
	res := parser.Parse(a.buf.String())
	if res.Empty() {
		return parser.Result{}, errors.New("stream: completed without a parsable roadmap")
	}
	return res, nil
}

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{BaseURL: strings.TrimRight(baseURL, "/"), HTTPClient: &http.Client{}}
}

// Generate opens the SSE stream and consumes it until a terminal frame.
// onUpdate fires after every data frame with the best parse so far. On
// success it returns the final parse and the complete raw content; on any
// failure the partial state is dropped. Cancelling ctx closes the transport
// and stops consumption.
func (c *Client) Generate(ctx context.Context, career, userID string, onUpdate func(parser.Result)) (parser.Result, string, error) {
	q := url.Values{}
	q.Set("career", career)
	q.Set("userId", userID)
	q.Set("id", uuid.NewString()) // correlation id, not the record identity

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/api/roadmap/generate?"+q.Encode(), nil)
	if err != nil {
		return parser.Result{}, "", err
	}
	req.Header.Set("Accept", "text/event-stream")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return parser.Result{}, "", fmt.Errorf("%w: %v", ErrConnection, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return parser.Result{}, "", fmt.Errorf("%w: status %d", ErrConnection, resp.StatusCode)
	}

	var (
		acc       Accumulator
		fragments int
		event     string
		data      []string
	)

	fail := func(cause error) (parser.Result, string, error) {
		if fragments == 0 {
			return parser.Result{}, "", fmt.Errorf("%w: %v", ErrConnection, cause)
		}
		return parser.Result{}, "", &InterruptedError{Fragments: fragments, Err: cause}
	}

	sc := bufio.NewScanner(resp.Body)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := sc.Text()
		switch {
		case line == "":
			// frame boundary
			payload := strings.Join(data, "\n")
			switch {
			case event == "error":
				return fail(errors.New(payload))
			case event == "done" || payload == "[DONE]":
				res, err := acc.Finalize()
				if err != nil {
					return fail(err)
				}
				return res, acc.Content(), nil
			case len(data) > 0:
				fragments++
				res := acc.Append(payload)
				if onUpdate != nil {
					onUpdate(res)
				}
			}
			event = ""
			data = data[:0]
		case strings.HasPrefix(line, "event:"):
			event = strings.TrimSpace(strings.TrimPrefix(line, "event:"))
		case strings.HasPrefix(line, "data:"):
			data = append(data, strings.TrimPrefix(strings.TrimPrefix(line, "data:"), " "))
		}
	}
	if err := sc.Err(); err != nil {
		return fail(err)
	}
	// body ended without a terminal frame
	return fail(errors.New("stream closed without terminal frame"))
}
