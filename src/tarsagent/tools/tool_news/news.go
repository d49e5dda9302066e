package tool_news

import (
	"context"
	"fmt"
	"strings"

	"github.com/Praneeth-Gandodi/Tars/src/agent"
	"github.com/Praneeth-Gandodi/Tars/src/tarsagent/toolsutil"
)

// Tool name constant
const Name = "get_news"

const newsPrompt = `Fetch top news headlines by category and country.

WHEN TO USE THIS TOOL:
- Use when the user asks for current news or headlines

HOW TO USE:
- Provide a category: business, entertainment, general, health, science, sports, or technology
- Provide a two-letter country code such as us, in, or gb

OUTPUT:
- The five top stories with descriptions, plus remaining headlines`

// Overridable for tests.
var baseURL = "https://saurav.tech/NewsAPI/top-headlines/category"

// NewsInput represents the parameters for get_news
type NewsInput struct {
	Category string `json:"category" required:"true" description:"News category (e.g., 'technology', 'business', 'sports')"`
	Country  string `json:"country" required:"true" description:"Two-letter country code (e.g., 'us', 'in', 'gb')"`
}

// Story is one article with full details
type Story struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Source      string `json:"source"`
}

// Headline is a title-only article reference
type Headline struct {
	Title  string `json:"title"`
	Source string `json:"source"`
}

// NewsOutput represents the compacted headline feed
type NewsOutput struct {
	Category      string     `json:"category"`
	Country       string     `json:"country"`
	TopStories    []Story    `json:"top_stories"`
	MoreHeadlines []Headline `json:"more_headlines"`
	TotalArticles int        `json:"total_articles"`
}

type feedResponse struct {
	Articles []struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Source      struct {
			Name string `json:"name"`
		} `json:"source"`
	} `json:"articles"`
}

// Tool returns the get_news tool definition
func Tool() (agent.Tool, error) {
	return agent.NewGenericTool(Name, newsPrompt, newsHandler)
}

func newsHandler(ctx context.Context, input NewsInput) (NewsOutput, error) {
	category := strings.ToLower(strings.TrimSpace(input.Category))
	country := strings.ToLower(strings.TrimSpace(input.Country))
	if category == "" || country == "" {
		return NewsOutput{}, fmt.Errorf("category and country parameters are required")
	}

	url := fmt.Sprintf("%s/%s/%s.json", baseURL, category, country)
	var feed feedResponse
	if err := toolsutil.FetchJSON(ctx, url, &feed); err != nil {
		return NewsOutput{}, fmt.Errorf("failed to fetch headlines: %v", err)
	}

	out := NewsOutput{
		Category:      category,
		Country:       strings.ToUpper(country),
		TotalArticles: len(feed.Articles),
	}

	for i, article := range feed.Articles {
		if i < 5 {
			description := article.Description
			if description == "" {
				description = "No description"
			}
			out.TopStories = append(out.TopStories, Story{
				Title:       article.Title,
				Description: description,
				Source:      article.Source.Name,
			})
			continue
		}
		out.MoreHeadlines = append(out.MoreHeadlines, Headline{
			Title:  article.Title,
			Source: article.Source.Name,
		})
	}

	toolsutil.GetLogger().Info("fetched headlines", "category", category, "country", country, "count", out.TotalArticles)
	return out, nil
}
