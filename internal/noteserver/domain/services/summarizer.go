// Package services содержит доменные сервисы сервиса заметок.
package services

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
)

// DefaultMaxSentences - размер сводки по умолчанию.
const DefaultMaxSentences = 3

var wordPattern = regexp.MustCompile(`[\p{L}\p{N}_]+`)

var stopwords = map[string]struct{}{
	"the": {}, "and": {}, "is": {}, "in": {}, "it": {}, "to": {}, "a": {}, "of": {},
	"for": {}, "on": {}, "that": {}, "this": {}, "with": {}, "as": {}, "are": {},
	"was": {}, "be": {}, "i": {}, "you": {},
}

// Summarizer строит извлекающую сводку по частоте слов.
type Summarizer struct {
	maxSentences int
}

// NewSummarizer создает Summarizer. Неположительное значение заменяется значением по умолчанию.
func NewSummarizer(maxSentences int) *Summarizer {
	if maxSentences <= 0 {
		maxSentences = DefaultMaxSentences
	}
	return &Summarizer{maxSentences: maxSentences}
}

// Summarize возвращает не более maxSentences предложений текста.
// Короткий текст возвращается целиком; иначе выбираются предложения
// с наибольшей суммарной частотой слов в исходном порядке.
func (s *Summarizer) Summarize(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	sentences := SplitSentences(text)
	if len(sentences) <= s.maxSentences {
		return strings.Join(sentences, " ")
	}

	freq := make(map[string]int)
	for _, word := range words(text) {
		if _, stop := stopwords[word]; !stop {
			freq[word]++
		}
	}

	scores := make([]int, len(sentences))
	for i, sentence := range sentences {
		for _, word := range words(sentence) {
			scores[i] += freq[word]
		}
	}

	ranked := make([]int, len(sentences))
	for i := range ranked {
		ranked[i] = i
	}
	sort.SliceStable(ranked, func(a, b int) bool {
		return scores[ranked[a]] > scores[ranked[b]]
	})

	chosen := ranked[:s.maxSentences]
	sort.Ints(chosen)

	out := make([]string, 0, len(chosen))
	for _, i := range chosen {
		out = append(out, sentences[i])
	}
	return strings.Join(out, " ")
}

// SplitSentences режет текст после '.', '!' или '?', за которыми следуют пробельные символы.
func SplitSentences(text string) []string {
	var (
		sentences []string
		start     int
	)

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		if !isTerminator(runes[i]) || i+1 >= len(runes) || !unicode.IsSpace(runes[i+1]) {
			continue
		}

		sentences = append(sentences, string(runes[start:i+1]))

		j := i + 1
		for j < len(runes) && unicode.IsSpace(runes[j]) {
			j++
		}
		start = j
		i = j - 1
	}

	if start < len(runes) {
		sentences = append(sentences, string(runes[start:]))
	}
	return sentences
}

func isTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

func words(text string) []string {
	return wordPattern.FindAllString(strings.ToLower(text), -1)
}
