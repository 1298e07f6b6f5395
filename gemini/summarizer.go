// Package gemini implements dealerfinder.Summarizer using Google Gemini.
package gemini

import (
	"context"
	"fmt"
	"strings"

	dealerfinder "github.com/ammanabbasi/used-car-dealer-finder"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// maxContentRunes caps the page text included in the prompt. Dealer sites
// frequently inline entire inventories; past this point extra text adds cost
// without improving the summary.
const maxContentRunes = 4000

// Ensure Summarizer implements dealerfinder.Summarizer at compile time.
var _ dealerfinder.Summarizer = (*Summarizer)(nil)

// Summarizer produces short dealer descriptions using Google Gemini.
type Summarizer struct {
	client *genai.Client
}

// NewSummarizer creates a new Summarizer.
func NewSummarizer(client *genai.Client) *Summarizer {
	return &Summarizer{client: client}
}

// Summarize returns a short description of the dealer based on extracted
// website text.
func (s *Summarizer) Summarize(ctx context.Context, dealerName, pageText string) (string, error) {
	if dealerName == "" {
		return "", dealerfinder.Errorf(dealerfinder.EINVALID, "dealer name required")
	}
	if strings.TrimSpace(pageText) == "" {
		return "", dealerfinder.Errorf(dealerfinder.EINVALID, "page text required")
	}

	prompt := BuildUserPrompt(dealerName, pageText)
	config := BuildConfig()

	result, err := s.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", dealerfinder.Errorf(dealerfinder.EINTERNAL, "gemini returned nil result")
	}

	return strings.TrimSpace(result.Text()), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.5)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are an expert at analyzing used car dealer websites. Write a short, factual summary of the dealership for a car shopper: what they sell, financing or services they offer, and anything that sets them apart. Two to three sentences, plain text, no headings. Use only the provided website content; if it says little, say little.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildUserPrompt builds the user prompt containing the dealer name and the
// truncated website text.
func BuildUserPrompt(dealerName, pageText string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "<dealer>%s</dealer>\n", dealerName)
	sb.WriteString("<website_content>\n")
	sb.WriteString(Truncate(pageText, maxContentRunes))
	sb.WriteString("\n</website_content>\n\n")
	sb.WriteString("Summarize this dealership for a shopper.")
	return sb.String()
}

// Truncate returns at most n runes of s.
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
