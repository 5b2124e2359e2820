// Package resource fetches lightweight previews of external learning
// resources (a step's learnMoreUrl) so the client can show a title without
// embedding the page.
package resource

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const maxBytes = 512 * 1024

type Preview struct {
	URL         string `json:"url"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

func Fetch(ctx context.Context, u string) (Preview, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return Preview{}, err
	}
	client := &http.Client{Timeout: 20 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return Preview{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return Preview{}, fmt.Errorf("fetch %s: status %d", u, resp.StatusCode)
	}
	ct := strings.ToLower(resp.Header.Get("Content-Type"))
	if !strings.Contains(ct, "text/html") {
		return Preview{}, fmt.Errorf("unsupported content-type: %s", ct)
	}
	limited := io.LimitedReader{R: resp.Body, N: maxBytes}

	doc, err := goquery.NewDocumentFromReader(&limited)
	if err != nil {
		return Preview{}, err
	}
	p := Preview{
		URL:   u,
		Title: strings.TrimSpace(doc.Find("title").First().Text()),
	}
	if d, ok := doc.Find(`meta[name="description"]`).First().Attr("content"); ok {
		p.Description = strings.TrimSpace(d)
	}
	if p.Title == "" {
		p.Title = u
	}
	return p, nil
}
