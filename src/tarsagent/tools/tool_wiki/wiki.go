package tool_wiki

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/Praneeth-Gandodi/Tars/src/agent"
	"github.com/Praneeth-Gandodi/Tars/src/tarsagent/toolsutil"
)

// Tool name constant
const Name = "wiki"

const wikiPrompt = `Look up information on Wikipedia.

WHEN TO USE THIS TOOL:
- Use for factual or encyclopedic questions about people, places, events, or concepts

HOW TO USE:
- action "search" returns page titles matching the query
- action "summary" returns the lead section of the best matching page
- action "content" returns the full plain-text article

TIPS:
- Search first when unsure of the exact page title, then fetch the summary`

// Overridable for tests.
var apiURL = "https://en.wikipedia.org/w/api.php"

// WikiInput represents the parameters for wiki
type WikiInput struct {
	Action string `json:"action" required:"true" description:"One of: search, summary, content"`
	Query  string `json:"query" required:"true" description:"The search term or page title to look up"`
}

// WikiOutput represents the lookup result; only the fields relevant to the
// action are populated.
type WikiOutput struct {
	Titles  []string `json:"titles,omitempty"`
	Title   string   `json:"title,omitempty"`
	Extract string   `json:"extract,omitempty"`
}

type searchResponse struct {
	Query struct {
		Search []struct {
			Title string `json:"title"`
		} `json:"search"`
	} `json:"query"`
}

type extractResponse struct {
	Query struct {
		Pages map[string]struct {
			Title   string    `json:"title"`
			Extract string    `json:"extract"`
			Missing *struct{} `json:"missing,omitempty"`
		} `json:"pages"`
	} `json:"query"`
}

// Tool returns the wiki tool definition
func Tool() (agent.Tool, error) {
	return agent.NewGenericTool(Name, wikiPrompt, wikiHandler)
}

func wikiHandler(ctx context.Context, input WikiInput) (WikiOutput, error) {
	query := strings.TrimSpace(input.Query)
	if query == "" {
		return WikiOutput{}, fmt.Errorf("query parameter is required")
	}

	switch strings.ToLower(input.Action) {
	case "search":
		return search(ctx, query)
	case "summary":
		return extract(ctx, query, true)
	case "content":
		return extract(ctx, query, false)
	default:
		return WikiOutput{}, fmt.Errorf("action must be one of: search, summary, content")
	}
}

func search(ctx context.Context, query string) (WikiOutput, error) {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("list", "search")
	params.Set("srsearch", query)
	params.Set("srlimit", "10")
	params.Set("format", "json")

	var resp searchResponse
	if err := toolsutil.FetchJSON(ctx, apiURL+"?"+params.Encode(), &resp); err != nil {
		return WikiOutput{}, fmt.Errorf("wikipedia search failed: %v", err)
	}

	out := WikiOutput{}
	for _, r := range resp.Query.Search {
		out.Titles = append(out.Titles, r.Title)
	}
	return out, nil
}

func extract(ctx context.Context, title string, introOnly bool) (WikiOutput, error) {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("prop", "extracts")
	params.Set("explaintext", "1")
	params.Set("redirects", "1")
	params.Set("titles", title)
	params.Set("format", "json")
	if introOnly {
		params.Set("exintro", "1")
	}

	var resp extractResponse
	if err := toolsutil.FetchJSON(ctx, apiURL+"?"+params.Encode(), &resp); err != nil {
		return WikiOutput{}, fmt.Errorf("wikipedia lookup failed: %v", err)
	}

	for _, page := range resp.Query.Pages {
		if page.Missing != nil {
			return WikiOutput{}, fmt.Errorf("no wikipedia page found for %q", title)
		}
		return WikiOutput{Title: page.Title, Extract: page.Extract}, nil
	}
	return WikiOutput{}, fmt.Errorf("no wikipedia page found for %q", title)
}
