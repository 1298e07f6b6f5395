package gemini_test

import (
	"context"
	"strings"
	"testing"

	dealerfinder "github.com/ammanabbasi/used-car-dealer-finder"
	"github.com/ammanabbasi/used-car-dealer-finder/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizer_Summarize_ReturnsErrorWhenDealerNameEmpty(t *testing.T) {
	t.Parallel()

	s := gemini.NewSummarizer(nil) // nil client ok for this test

	_, err := s.Summarize(context.Background(), "", "some page text")

	require.Error(t, err)
	assert.Equal(t, dealerfinder.EINVALID, dealerfinder.ErrorCode(err))
	assert.Contains(t, dealerfinder.ErrorMessage(err), "dealer name required")
}

func TestSummarizer_Summarize_ReturnsErrorWhenPageTextEmpty(t *testing.T) {
	t.Parallel()

	s := gemini.NewSummarizer(nil)

	_, err := s.Summarize(context.Background(), "Joe's Auto Sales", "   \n\t")

	require.Error(t, err)
	assert.Equal(t, dealerfinder.EINVALID, dealerfinder.ErrorCode(err))
	assert.Contains(t, dealerfinder.ErrorMessage(err), "page text required")
}

func TestBuildConfig_SetsSystemInstruction(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig()

	require.NotNil(t, config.SystemInstruction)
	require.Len(t, config.SystemInstruction.Parts, 1)
	assert.Contains(t, config.SystemInstruction.Parts[0].Text, "used car dealer")
}

func TestBuildConfig_SetsTemperature(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig()

	require.NotNil(t, config.Temperature)
	assert.InDelta(t, 0.5, *config.Temperature, 0.001)
}

func TestBuildUserPrompt_ContainsDealerAndContent(t *testing.T) {
	t.Parallel()

	prompt := gemini.BuildUserPrompt("Joe's Auto Sales", "We sell quality pre-owned trucks.")

	assert.Contains(t, prompt, "<dealer>Joe's Auto Sales</dealer>")
	assert.Contains(t, prompt, "We sell quality pre-owned trucks.")
}

func TestBuildUserPrompt_TruncatesLongContent(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("inventory ", 1000) // ~10k runes

	prompt := gemini.BuildUserPrompt("Joe's Auto Sales", long)

	assert.Less(t, len([]rune(prompt)), 4300)
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "abc", gemini.Truncate("abc", 5))
	assert.Equal(t, "ab", gemini.Truncate("abc", 2))
	assert.Equal(t, "héll", gemini.Truncate("héllo", 4))
}
