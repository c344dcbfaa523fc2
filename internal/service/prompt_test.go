package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"portfolio-be/internal/models"
)

const fallbackPrompt = "You are a helpful assistant for a personal site."

func TestBuildSystemPrompt_WithPageContext(t *testing.T) {
	page := &models.PageContent{
		Title:   "Resume",
		URL:     "https://example.com/resume",
		Content: "<html><body><main><p>Research Assistant at MSU</p></main></body></html>",
	}

	prompt := BuildSystemPrompt(page, fallbackPrompt)

	assert.Contains(t, prompt, "Title:   Resume")
	assert.Contains(t, prompt, "URL:     https://example.com/resume")
	assert.Contains(t, prompt, "Research Assistant at MSU")
	assert.NotContains(t, prompt, "<p>")
	assert.NotEqual(t, fallbackPrompt, prompt)
}

func TestBuildSystemPrompt_StripsChrome(t *testing.T) {
	page := &models.PageContent{
		Title:   "Home",
		URL:     "https://example.com",
		Content: "<html><body><nav>menu items</nav><p>actual content</p><footer>copyright</footer></body></html>",
	}

	prompt := BuildSystemPrompt(page, fallbackPrompt)

	assert.Contains(t, prompt, "actual content")
	assert.NotContains(t, prompt, "menu items")
	assert.NotContains(t, prompt, "copyright")
}

func TestBuildSystemPrompt_MissingTitleAndURL(t *testing.T) {
	page := &models.PageContent{Content: "<p>just text</p>"}

	prompt := BuildSystemPrompt(page, fallbackPrompt)

	assert.Contains(t, prompt, "Unknown page")
	assert.Contains(t, prompt, "N/A")
}

func TestBuildSystemPrompt_NoPageFallsBack(t *testing.T) {
	assert.Equal(t, fallbackPrompt, BuildSystemPrompt(nil, fallbackPrompt))
	assert.Equal(t, fallbackPrompt, BuildSystemPrompt(&models.PageContent{Title: "x"}, fallbackPrompt))
}
