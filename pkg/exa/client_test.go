package exa

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearch_Success(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-api-key"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		var req SearchRequest
		require.NoError(t, json.Unmarshal(body, &req))
		assert.Equal(t, "Jane Doe Acme LinkedIn profile site:linkedin.com/in", req.Query)
		assert.True(t, req.UseAutoprompt)
		assert.Equal(t, 5, req.NumResults)
		assert.Equal(t, []string{"linkedin.com"}, req.IncludeDomains)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results":[{"title":"Jane Doe - Staff Engineer | LinkedIn","url":"https://linkedin.com/in/janedoe","snippet":"Engineer at Acme"}]}`))
	}))
	defer srv.Close()

	client := NewClient("test-key", WithBaseURL(srv.URL))
	resp, err := client.Search(context.Background(), SearchRequest{
		Query:          "Jane Doe Acme LinkedIn profile site:linkedin.com/in",
		UseAutoprompt:  true,
		NumResults:     5,
		IncludeDomains: []string{"linkedin.com"},
	})

	require.NoError(t, err)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "Jane Doe - Staff Engineer | LinkedIn", resp.Results[0].Title)
	assert.Equal(t, "https://linkedin.com/in/janedoe", resp.Results[0].URL)
}

func TestSearch_NonOKStatus(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"invalid api key"}`))
	}))
	defer srv.Close()

	client := NewClient("bad-key", WithBaseURL(srv.URL))
	_, err := client.Search(context.Background(), SearchRequest{Query: "x"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
	assert.Contains(t, err.Error(), "invalid api key")
}

func TestSearch_MalformedResponse(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	client := NewClient("test-key", WithBaseURL(srv.URL))
	_, err := client.Search(context.Background(), SearchRequest{Query: "x"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unmarshal")
}

func TestBestSnippet(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		result SearchResult
		want   string
	}{
		{"highlight wins", SearchResult{Highlight: "h", Snippet: "s", Summary: "m", Text: "t"}, "h"},
		{"snippet next", SearchResult{Snippet: "s", Summary: "m"}, "s"},
		{"summary next", SearchResult{Summary: "m", Text: "t"}, "m"},
		{"text last", SearchResult{Text: "t"}, "t"},
		{"blank fields skipped", SearchResult{Highlight: "  ", Snippet: "s"}, "s"},
		{"trimmed", SearchResult{Highlight: "  padded  "}, "padded"},
		{"nothing", SearchResult{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.result.BestSnippet())
		})
	}
}

func TestNewClient_Defaults(t *testing.T) {
	t.Parallel()

	c := NewClient("my-key")
	hc := c.(*httpClient)
	assert.Equal(t, "my-key", hc.apiKey)
	assert.Equal(t, "https://api.exa.ai", hc.baseURL)
	assert.Equal(t, 30*time.Second, hc.http.Timeout)
}

func TestWithTimeout(t *testing.T) {
	t.Parallel()

	c := NewClient("my-key", WithTimeout(3*time.Second))
	hc := c.(*httpClient)
	assert.Equal(t, 3*time.Second, hc.http.Timeout)
}
