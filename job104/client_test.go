package job104

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobhub104/backend/config"
)

func newTestClient(baseURL string) *Client {
	cfg := &config.Config{
		Job104BaseURL:      baseURL,
		HTTPTimeoutSeconds: 5,
	}
	client := NewClient(cfg)
	client.sleep = func(time.Duration) {}
	return client
}

func TestFetchDetail(t *testing.T) {
	var gotReferer, gotUserAgent string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/job/ajax/content/abc123", r.URL.Path)
		gotReferer = r.Header.Get("Referer")
		gotUserAgent = r.Header.Get("User-Agent")

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"data": {
				"jobDetail": {"jobDescription": "Build backend services in Go"},
				"condition": {"acceptRole": {"description": "3+ years experience"}}
			}
		}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	listingURL := server.URL + "/job/abc123?jobsource=index"

	detail, err := client.FetchDetail(context.Background(), listingURL)
	require.NoError(t, err)

	assert.Equal(t, "Build backend services in Go", detail.Description)
	assert.Equal(t, "3+ years experience", detail.Requirements)
	assert.Equal(t, listingURL, gotReferer)
	assert.Contains(t, gotUserAgent, "Mozilla/5.0")
}

func TestFetchDetail_MissingFieldsDefaultEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": {}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	detail, err := client.FetchDetail(context.Background(), server.URL+"/job/xyz")
	require.NoError(t, err)

	assert.Empty(t, detail.Description)
	assert.Empty(t, detail.Requirements)
}

func TestFetchDetail_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.FetchDetail(context.Background(), server.URL+"/job/xyz")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestFetchDetail_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>not json</html>`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.FetchDetail(context.Background(), server.URL+"/job/xyz")
	assert.Error(t, err)
}

func TestFetchDetail_NoJobCode(t *testing.T) {
	client := newTestClient("https://www.104.com.tw")

	_, err := client.FetchDetail(context.Background(), "https://www.104.com.tw/company/123")
	assert.Error(t, err)
}

func TestExtractJobCode(t *testing.T) {
	assert.Equal(t, "abc123", extractJobCode("https://www.104.com.tw/job/abc123?jobsource=x"))
	assert.Equal(t, "abc123", extractJobCode("https://www.104.com.tw/job/abc123"))
	assert.Equal(t, "xyz", extractJobCode("//www.104.com.tw/job/xyz"))
	assert.Equal(t, "", extractJobCode("https://www.104.com.tw/company/9"))
}

func TestTruncate(t *testing.T) {
	client := newTestClient("https://www.104.com.tw")
	client.detailMaxChars = 5

	// character budget, not bytes
	assert.Equal(t, "負責後端開", client.truncate("負責後端開發與維運"))
	assert.Equal(t, "short", client.truncate("short"))

	client.detailMaxChars = 0
	assert.Equal(t, "anything at all goes through", client.truncate("anything at all goes through"))
}
