package service

import (
	"strings"
	"text/template"

	"portfolio-be/internal/htmlclean"
	"portfolio-be/internal/models"
)

// pagePromptTemplate is the instruction block used when the request carries
// page context. Parsed once; reused on every chat call.
var pagePromptTemplate = template.Must(template.New("page_prompt").Parse(
	`You are a helpful AI assistant. You have access to the current page content that the user is viewing.
IMPORTANT INSTRUCTIONS:
1. If the user's question is related to the content on the current page, use that content to provide accurate and relevant answers.
2. Reference specific information from the page when it helps answer the user's question.
3. If the user asks about something not covered on the current page, provide general helpful information.
4. Be conversational and helpful while maintaining accuracy.

CURRENT PAGE CONTENT:
Title:   {{.Title}}
URL:     {{.URL}}
Content: {{.Content}}

Use this content to provide contextually relevant responses when appropriate.`))

// BuildSystemPrompt renders the page-aware instruction block when page
// context is present, cleaning the raw markup down to text first. Without
// page context the configured fallback prompt is used verbatim.
func BuildSystemPrompt(page *models.PageContent, fallback string) string {
	if page == nil || page.Content == "" {
		return fallback
	}

	data := struct {
		Title, URL, Content string
	}{
		Title:   page.Title,
		URL:     page.URL,
		Content: htmlclean.Text(page.Content),
	}
	if data.Title == "" {
		data.Title = "Unknown page"
	}
	if data.URL == "" {
		data.URL = "N/A"
	}

	var b strings.Builder
	if err := pagePromptTemplate.Execute(&b, data); err != nil {
		return fallback
	}
	return b.String()
}
