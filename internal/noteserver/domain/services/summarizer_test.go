package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"notesync/internal/noteserver/domain/services"
)

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{name: "single", text: "Hello world", expected: []string{"Hello world"}},
		{name: "terminators", text: "One. Two! Three? Four", expected: []string{"One.", "Two!", "Three?", "Four"}},
		{name: "collapses whitespace", text: "One.  \n Two.", expected: []string{"One.", "Two."}},
		{name: "no space after dot", text: "v1.2 is out. Yes", expected: []string{"v1.2 is out.", "Yes"}},
		{name: "unicode", text: "Привет. Мир!", expected: []string{"Привет.", "Мир!"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, services.SplitSentences(tt.text))
		})
	}
}

func TestSummarize(t *testing.T) {
	summarizer := services.NewSummarizer(3)

	t.Run("empty text", func(t *testing.T) {
		assert.Empty(t, summarizer.Summarize("   "))
	})

	t.Run("short text is returned joined", func(t *testing.T) {
		assert.Equal(t, "One. Two.", summarizer.Summarize("  One.\n\nTwo.  "))
	})

	t.Run("selects frequent sentences in original order", func(t *testing.T) {
		text := "Go is fast. Cats sleep. Go routines are cheap in Go. Dogs bark. Go channels connect routines."
		assert.Equal(t,
			"Go is fast. Go routines are cheap in Go. Go channels connect routines.",
			summarizer.Summarize(text))
	})

	t.Run("ties keep earlier sentences", func(t *testing.T) {
		text := "Alpha. Beta. Gamma. Delta."
		assert.Equal(t, "Alpha. Beta. Gamma.", summarizer.Summarize(text))
	})

	t.Run("stopwords do not score", func(t *testing.T) {
		text := "The the the the. Red apple. Red apple pie. Red."
		assert.Equal(t, "Red apple. Red apple pie. Red.", summarizer.Summarize(text))
	})

	t.Run("pronoun i is a stopword", func(t *testing.T) {
		// С учетом "i" три первых предложения набрали бы больше последнего.
		text := "I ran. I sat. I ate. Dogs bark loudly."
		assert.Equal(t, "I ran. I sat. Dogs bark loudly.", summarizer.Summarize(text))
	})

	t.Run("repeated sentences are chosen by position", func(t *testing.T) {
		// Второе "Cat." не попадает в сводку вместо более весомого "Dog bird.".
		text := "Cat. Dog dog. Cat. Dog bird."
		assert.Equal(t, "Cat. Dog dog. Dog bird.", summarizer.Summarize(text))
	})
}

func TestNewSummarizerDefault(t *testing.T) {
	summarizer := services.NewSummarizer(0)
	assert.Equal(t, "W. X. Y.", summarizer.Summarize("W. X. Y. Z."))
}
