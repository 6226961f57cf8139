package job104

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jobhub104/backend/config"
	"github.com/jobhub104/backend/models"
	"github.com/jobhub104/backend/utils"
)

// browserUserAgent mimics a desktop browser; the 104 ajax endpoints reject
// obvious bot agents.
const browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Client talks to the 104.com.tw internal search and detail APIs
type Client struct {
	baseURL        string
	detailMaxChars int
	httpClient     *http.Client

	// sleep is the inter-page politeness delay; replaced in tests
	sleep func(time.Duration)
}

// NewClient creates a 104 API client from configuration
func NewClient(cfg *config.Config) *Client {
	return &Client{
		baseURL:        strings.TrimRight(cfg.Job104BaseURL, "/"),
		detailMaxChars: cfg.DetailMaxChars,
		httpClient:     utils.NewHTTPClient(time.Duration(cfg.HTTPTimeoutSeconds) * time.Second),
		sleep:          time.Sleep,
	}
}

// detailResponse mirrors the detail API body; every path is optional upstream
type detailResponse struct {
	Data struct {
		JobDetail struct {
			JobDescription string `json:"jobDescription"`
		} `json:"jobDetail"`
		Condition struct {
			AcceptRole struct {
				Description string `json:"description"`
			} `json:"acceptRole"`
		} `json:"condition"`
	} `json:"data"`
}

// FetchDetail retrieves the description and requirements for one listing.
// listingURL may be protocol-relative. A failure here means "no detail
// available" to the caller, never a fatal error.
func (c *Client) FetchDetail(ctx context.Context, listingURL string) (*models.JobDetail, error) {
	if strings.HasPrefix(listingURL, "//") {
		listingURL = "https:" + listingURL
	}

	code := extractJobCode(listingURL)
	if code == "" {
		return nil, fmt.Errorf("no job code in URL %q", listingURL)
	}

	apiURL := fmt.Sprintf("%s/job/ajax/content/%s", c.baseURL, code)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", browserUserAgent)
	req.Header.Set("Referer", listingURL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch job detail: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("detail API returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read detail response: %w", err)
	}

	var detail detailResponse
	if err := json.Unmarshal(body, &detail); err != nil {
		return nil, fmt.Errorf("failed to parse detail response: %w", err)
	}

	return &models.JobDetail{
		Description:  c.truncate(detail.Data.JobDetail.JobDescription),
		Requirements: c.truncate(detail.Data.Condition.AcceptRole.Description),
	}, nil
}

// extractJobCode takes the path segment after the last "job/" token and
// strips any query string
func extractJobCode(listingURL string) string {
	idx := strings.LastIndex(listingURL, "job/")
	if idx == -1 {
		return ""
	}
	code := listingURL[idx+len("job/"):]
	if q := strings.Index(code, "?"); q >= 0 {
		code = code[:q]
	}
	return code
}

// truncate caps a detail field at detailMaxChars characters; 0 disables
func (c *Client) truncate(text string) string {
	if c.detailMaxChars <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= c.detailMaxChars {
		return text
	}
	return string(runes[:c.detailMaxChars])
}
