package job104

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/jobhub104/backend/models"
)

// pageDelay is the fixed politeness delay between search pages
const pageDelay = 1 * time.Second

// SearchOutput carries the aggregated records plus completeness information.
// A scrape that stops early is still a valid (partial) result.
type SearchOutput struct {
	Records      []models.JobRecord
	PagesFetched int
	Warning      string
}

// searchPageResponse mirrors one page of the search-list API
type searchPageResponse struct {
	Data struct {
		List []listing `json:"list"`
	} `json:"data"`
}

// listing is one entry of data.list. The job link arrives in one of two
// upstream shapes: newer responses nest it under link.job, older ones only
// carry a jobNo. jobNo itself may be a number or a string.
type listing struct {
	JobName  string       `json:"jobName"`
	CustName string       `json:"custName"`
	JobNo    flexibleID   `json:"jobNo"`
	Link     *listingLink `json:"link"`
}

type listingLink struct {
	Job string `json:"job"`
}

// flexibleID can unmarshal from either a JSON number or a string
type flexibleID string

func (f *flexibleID) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*f = flexibleID(str)
		return nil
	}

	var num json.Number
	if err := json.Unmarshal(data, &num); err == nil {
		*f = flexibleID(num.String())
		return nil
	}

	// an unusable jobNo is a missing jobNo, not an error
	*f = ""
	return nil
}

// resolveLink picks the listing URL: the nested link.job when present,
// otherwise a link synthesized from jobNo
func (l *listing) resolveLink(baseURL string) string {
	if l.Link != nil && l.Link.Job != "" {
		return l.Link.Job
	}
	if l.JobNo != "" {
		return baseURL + "/job/" + string(l.JobNo)
	}
	return ""
}

// Search scrapes pages 1..endPage of the 104 search API for keyword and
// enriches every listing with its detail record. Page and detail fetches are
// strictly sequential with a fixed delay between pages. An upstream failure
// mid-scrape returns whatever was accumulated, flagged via Warning.
func (c *Client) Search(ctx context.Context, keyword string, endPage int) *SearchOutput {
	out := &SearchOutput{Records: []models.JobRecord{}}

	for currentPage := 1; currentPage <= endPage; currentPage++ {
		log.Printf("[Search104] fetching page %d/%d for keyword %q", currentPage, endPage, keyword)

		listings, err := c.searchPage(ctx, keyword, currentPage)
		if err != nil {
			log.Printf("[Search104] page %d failed, returning partial result: %v", currentPage, err)
			out.Warning = fmt.Sprintf("stopped after %d of %d pages: %v", currentPage-1, endPage, err)
			return out
		}
		out.PagesFetched = currentPage

		for _, item := range listings {
			record := models.JobRecord{
				Title:   item.JobName,
				Company: item.CustName,
				Link:    item.resolveLink(c.baseURL),
			}
			if record.Title == "" {
				record.Title = "untitled"
			}
			if record.Company == "" {
				record.Company = "unknown company"
			}

			if record.Link == "" {
				record.DetailError = "listing has no job link"
			} else if detail, err := c.FetchDetail(ctx, record.Link); err != nil {
				record.DetailError = err.Error()
			} else {
				record.Description = detail.Description
			}

			out.Records = append(out.Records, record)
		}

		if currentPage < endPage {
			c.sleep(pageDelay)
		}
	}

	return out
}

// searchPage fetches a single page of search results
func (c *Client) searchPage(ctx context.Context, keyword string, page int) ([]listing, error) {
	params := url.Values{}
	params.Set("ro", "0")
	params.Set("kwop", "7")
	params.Set("keyword", keyword)
	params.Set("order", "1")
	params.Set("page", strconv.Itoa(page))

	reqURL := c.baseURL + "/jobs/search/list?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", browserUserAgent)
	req.Header.Set("Referer", c.baseURL+"/")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch search page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("search API returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read search response: %w", err)
	}

	var page104 searchPageResponse
	if err := json.Unmarshal(body, &page104); err != nil {
		return nil, fmt.Errorf("failed to parse search response: %w", err)
	}

	// a page without data.list is an empty page, not an error
	return page104.Data.List, nil
}
