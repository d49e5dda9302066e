package tool_wiki

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWikiTool(t *testing.T) {
	tool, err := Tool()
	require.NoError(t, err)
	assert.Equal(t, Name, tool.GetName())
}

func TestWikiSearch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "query", r.URL.Query().Get("action"))
		assert.Equal(t, "search", r.URL.Query().Get("list"))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"query":{"search":[{"title":"Saturn"},{"title":"Saturn (mythology)"}]}}`)
	}))
	defer server.Close()

	old := apiURL
	apiURL = server.URL
	defer func() { apiURL = old }()

	out, err := wikiHandler(context.Background(), WikiInput{Action: "search", Query: "Saturn"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Saturn", "Saturn (mythology)"}, out.Titles)
}

func TestWikiSummary(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "1", r.URL.Query().Get("exintro"))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"query":{"pages":{"123":{"title":"Saturn","extract":"Saturn is the sixth planet from the Sun."}}}}`)
	}))
	defer server.Close()

	old := apiURL
	apiURL = server.URL
	defer func() { apiURL = old }()

	out, err := wikiHandler(context.Background(), WikiInput{Action: "summary", Query: "Saturn"})
	require.NoError(t, err)
	assert.Equal(t, "Saturn", out.Title)
	assert.Contains(t, out.Extract, "sixth planet")
}

func TestWikiMissingPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"query":{"pages":{"-1":{"title":"Nopeville","missing":{}}}}}`)
	}))
	defer server.Close()

	old := apiURL
	apiURL = server.URL
	defer func() { apiURL = old }()

	_, err := wikiHandler(context.Background(), WikiInput{Action: "content", Query: "Nopeville"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no wikipedia page found")
}

func TestWikiUnknownAction(t *testing.T) {
	_, err := wikiHandler(context.Background(), WikiInput{Action: "translate", Query: "Saturn"})
	require.Error(t, err)
}
