package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobhub104/backend/config"
	"github.com/jobhub104/backend/docsearch"
	"github.com/jobhub104/backend/job104"
	"github.com/jobhub104/backend/models"
)

// newTestRouter wires the full route table, including the langserve aliases,
// the way main.go does
func newTestRouter(jobClient *job104.Client, uploadDir string) *gin.Engine {
	gin.SetMode(gin.TestMode)

	searchHandler := NewSearchHandler(jobClient)
	documentHandler := NewDocumentHandler(docsearch.NewMatcher(), uploadDir)

	router := gin.New()
	router.GET("/", Root)
	router.GET("/health", HealthCheck)
	router.GET("/search_104", searchHandler.Search104)
	router.POST("/document", documentHandler.Query)
	router.GET("/vectorstore", VectorStoreQuery)

	langserve := router.Group("/langserve")
	{
		langserve.GET("/search_104", searchHandler.Search104)
		langserve.POST("/document", documentHandler.Query)
		langserve.GET("/vectorstore", VectorStoreQuery)
	}

	return router
}

func newUpstreamClient(t *testing.T, handler http.Handler) *job104.Client {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return job104.NewClient(&config.Config{
		Job104BaseURL:      server.URL,
		HTTPTimeoutSeconds: 5,
	})
}

func doRequest(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRoot(t *testing.T) {
	router := newTestRouter(nil, t.TempDir())

	w := doRequest(router, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body models.RootResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "online", body.Status)
	assert.Contains(t, body.Endpoints, "/search_104")
	assert.Contains(t, body.Endpoints, "/document")
	assert.Contains(t, body.Endpoints, "/vectorstore")
}

func TestHealthCheck(t *testing.T) {
	router := newTestRouter(nil, t.TempDir())

	w := doRequest(router, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body models.HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body.Status)
}

func TestSearch104_MissingKeyword(t *testing.T) {
	router := newTestRouter(nil, t.TempDir())

	w := doRequest(router, httptest.NewRequest(http.MethodGet, "/search_104", nil))
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "keyword is required", body.Details)
}

func TestSearch104_BadEndPage(t *testing.T) {
	router := newTestRouter(nil, t.TempDir())

	for _, endPage := range []string{"0", "-2", "abc"} {
		w := doRequest(router, httptest.NewRequest(http.MethodGet, "/search_104?keyword=go&end_page="+endPage, nil))
		assert.Equal(t, http.StatusBadRequest, w.Code, "end_page=%s", endPage)
	}
}

func TestSearch104(t *testing.T) {
	mux := http.NewServeMux()
	var upstreamURL string
	mux.HandleFunc("/jobs/search/list", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"data": {"list": [
			{"jobName": "Backend Engineer", "custName": "Acme", "link": {"job": "%s/job/alpha1"}}
		]}}`, upstreamURL)
	})
	mux.HandleFunc("/job/ajax/content/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": {"jobDetail": {"jobDescription": "build things"}}}`))
	})

	server := httptest.NewServer(mux)
	defer server.Close()
	upstreamURL = server.URL

	jobClient := job104.NewClient(&config.Config{
		Job104BaseURL:      server.URL,
		HTTPTimeoutSeconds: 5,
	})
	router := newTestRouter(jobClient, t.TempDir())

	w := doRequest(router, httptest.NewRequest(http.MethodGet, "/search_104?keyword=python", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body models.SearchJobsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Results, 1)
	assert.Equal(t, 1, body.TotalResults)
	assert.Equal(t, 1, body.PagesFetched)
	assert.Empty(t, body.Warning)
	assert.Equal(t, "Backend Engineer", body.Results[0].Title)
	assert.Equal(t, "build things", body.Results[0].Description)
}

func TestSearch104_PartialUpstreamFailure(t *testing.T) {
	jobClient := newUpstreamClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	router := newTestRouter(jobClient, t.TempDir())

	w := doRequest(router, httptest.NewRequest(http.MethodGet, "/search_104?keyword=python&end_page=2", nil))

	// a partial result is still a 200, flagged via the warning field
	require.Equal(t, http.StatusOK, w.Code)

	var body models.SearchJobsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Empty(t, body.Results)
	assert.Equal(t, 0, body.PagesFetched)
	assert.NotEmpty(t, body.Warning)
}

func multipartBody(t *testing.T, query, filename string, content []byte) (*bytes.Buffer, string) {
	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)

	require.NoError(t, writer.WriteField("query", query))
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return buf, writer.FormDataContentType()
}

func TestDocumentQuery(t *testing.T) {
	uploadDir := t.TempDir()
	router := newTestRouter(nil, uploadDir)

	content := []byte("the quick brown fox jumps over the lazy dog")
	body, contentType := multipartBody(t, "BROWN FOX", "notes.txt", content)

	req := httptest.NewRequest(http.MethodPost, "/document", body)
	req.Header.Set("Content-Type", contentType)

	w := doRequest(router, req)
	require.Equal(t, http.StatusOK, w.Code)

	var result models.DocumentMatchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.True(t, result.Found)
	assert.Contains(t, result.Context, "brown fox")

	// the uploaded file must not outlive the request
	entries, err := os.ReadDir(uploadDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestDocumentQuery_MissingQuery(t *testing.T) {
	router := newTestRouter(nil, t.TempDir())

	body, contentType := multipartBody(t, "", "notes.txt", []byte("content"))
	req := httptest.NewRequest(http.MethodPost, "/document", body)
	req.Header.Set("Content-Type", contentType)

	w := doRequest(router, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDocumentQuery_MissingFile(t *testing.T) {
	router := newTestRouter(nil, t.TempDir())

	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)
	require.NoError(t, writer.WriteField("query", "fox"))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/document", buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	w := doRequest(router, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestVectorStoreQuery(t *testing.T) {
	router := newTestRouter(nil, t.TempDir())

	w := doRequest(router, httptest.NewRequest(http.MethodGet, "/vectorstore?query=langchain", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body models.VectorStoreResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "langchain", body.Query)
	assert.Len(t, body.MatchedSources, 2)
	assert.Contains(t, body.Answer, "2")
}

func TestLangserveAliases(t *testing.T) {
	router := newTestRouter(nil, t.TempDir())

	direct := doRequest(router, httptest.NewRequest(http.MethodGet, "/vectorstore?query=langchain", nil))
	alias := doRequest(router, httptest.NewRequest(http.MethodGet, "/langserve/vectorstore?query=langchain", nil))

	require.Equal(t, http.StatusOK, alias.Code)
	assert.JSONEq(t, direct.Body.String(), alias.Body.String())

	aliasSearch := doRequest(router, httptest.NewRequest(http.MethodGet, "/langserve/search_104", nil))
	assert.Equal(t, http.StatusBadRequest, aliasSearch.Code, "alias shares validation with /search_104")
}
