package tool_webfetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/PuerkitoBio/goquery"
	"github.com/Praneeth-Gandodi/Tars/src/agent"
	"github.com/Praneeth-Gandodi/Tars/src/tarsagent/toolsutil"
)

// Tool name constant
const Name = "web_fetch"

const webFetchPrompt = `Fetches content from a URL and returns it in the requested format.

WHEN TO USE THIS TOOL:
- Use when the user shares a link or asks about the content of a page

HOW TO USE:
- Provide the URL to fetch
- Choose a format: text (readable prose), markdown (formatted), or html (raw)

LIMITATIONS:
- Maximum response size is 5MB
- Only http and https URLs are supported
- Sites that require login or block automated requests will fail`

const maxBodySize = 5 * 1024 * 1024

// WebFetchInput represents the parameters for web_fetch
type WebFetchInput struct {
	URL    string `json:"url" required:"true" description:"The URL to fetch content from"`
	Format string `json:"format" required:"true" description:"The format to return the content in (text, markdown, or html)"`
}

// WebFetchOutput represents the response from web_fetch
type WebFetchOutput struct {
	Content     string `json:"content" description:"The fetched content in the requested format"`
	URL         string `json:"url" description:"The final URL after any redirects"`
	ContentType string `json:"content_type,omitempty" description:"Content-Type header from the response"`
}

// Tool returns the web_fetch tool definition
func Tool() (agent.Tool, error) {
	return agent.NewGenericTool(Name, webFetchPrompt, webFetchHandler)
}

func webFetchHandler(ctx context.Context, input WebFetchInput) (WebFetchOutput, error) {
	format := strings.ToLower(input.Format)
	if format != "text" && format != "markdown" && format != "html" {
		return WebFetchOutput{}, fmt.Errorf("format must be one of: text, markdown, html")
	}
	if !strings.HasPrefix(input.URL, "http://") && !strings.HasPrefix(input.URL, "https://") {
		return WebFetchOutput{}, fmt.Errorf("URL must start with http:// or https://")
	}

	client := &http.Client{
		Timeout: 30 * time.Second,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= 10 {
				return fmt.Errorf("too many redirects")
			}
			return nil
		},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, input.URL, nil)
	if err != nil {
		return WebFetchOutput{}, fmt.Errorf("failed to create request: %v", err)
	}
	req.Header.Set("User-Agent", "tars/1.0")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := client.Do(req)
	if err != nil {
		return WebFetchOutput{}, fmt.Errorf("failed to fetch URL: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return WebFetchOutput{}, fmt.Errorf("request failed with status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return WebFetchOutput{}, fmt.Errorf("failed to read response: %v", err)
	}

	content := string(body)
	contentType := resp.Header.Get("Content-Type")
	isHTML := strings.Contains(contentType, "text/html")

	var rendered string
	switch format {
	case "text":
		rendered = content
		if isHTML {
			if text, err := htmlToText(content); err == nil {
				rendered = text
			} else {
				toolsutil.GetLogger().Warn("text extraction failed, returning raw content", "error", err)
			}
		}
	case "markdown":
		switch {
		case isHTML:
			markdown, err := htmlToMarkdown(content)
			if err != nil {
				toolsutil.GetLogger().Warn("markdown conversion failed, wrapping in code block", "error", err)
				rendered = "```html\n" + content + "\n```"
			} else {
				rendered = markdown
			}
		case strings.Contains(contentType, "application/json"):
			rendered = "```json\n" + content + "\n```"
		default:
			rendered = "```\n" + content + "\n```"
		}
	case "html":
		rendered = content
	}

	toolsutil.GetLogger().Info("fetched web content", "url", input.URL, "size", len(body), "format", format)

	return WebFetchOutput{
		Content:     rendered,
		URL:         resp.Request.URL.String(),
		ContentType: contentType,
	}, nil
}

// htmlToText extracts readable text, dropping script and style elements.
func htmlToText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("script, style").Each(func(i int, s *goquery.Selection) {
		s.Remove()
	})

	var lines []string
	for _, line := range strings.Split(doc.Text(), "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return strings.Join(lines, "\n"), nil
}

func htmlToMarkdown(html string) (string, error) {
	converter := md.NewConverter("", true, nil)
	markdown, err := converter.ConvertString(html)
	if err != nil {
		return "", fmt.Errorf("failed to convert HTML to Markdown: %w", err)
	}
	markdown = strings.TrimSpace(markdown)
	return strings.ReplaceAll(markdown, "\n\n\n", "\n\n"), nil
}
