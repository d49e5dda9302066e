package tool_news

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewsTool(t *testing.T) {
	tool, err := Tool()
	require.NoError(t, err)
	assert.Equal(t, Name, tool.GetName())
}

func TestNewsHandler(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/technology/us.json", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"articles":[
			{"title":"A","description":"first","source":{"name":"S1"}},
			{"title":"B","description":"","source":{"name":"S2"}},
			{"title":"C","description":"third","source":{"name":"S3"}},
			{"title":"D","description":"fourth","source":{"name":"S4"}},
			{"title":"E","description":"fifth","source":{"name":"S5"}},
			{"title":"F","description":"sixth","source":{"name":"S6"}},
			{"title":"G","description":"seventh","source":{"name":"S7"}}
		]}`)
	}))
	defer server.Close()

	old := baseURL
	baseURL = server.URL
	defer func() { baseURL = old }()

	out, err := newsHandler(context.Background(), NewsInput{Category: "Technology", Country: "US"})
	require.NoError(t, err)

	assert.Equal(t, "technology", out.Category)
	assert.Equal(t, "US", out.Country)
	assert.Equal(t, 7, out.TotalArticles)
	require.Len(t, out.TopStories, 5)
	require.Len(t, out.MoreHeadlines, 2)
	assert.Equal(t, "No description", out.TopStories[1].Description)
	assert.Equal(t, "F", out.MoreHeadlines[0].Title)
}

func TestNewsHandlerMissingParams(t *testing.T) {
	_, err := newsHandler(context.Background(), NewsInput{Category: "tech"})
	require.Error(t, err)
}
