package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"newssaar/backend/internal/config"
	"newssaar/backend/internal/service/ai"
)

const (
	idealSentenceWords = 20
	topKeywords        = 10
	maxAIInputRunes    = 6000
)

// Summarizer condenses an article body into a few sentences.
type Summarizer interface {
	Summarize(ctx context.Context, title, body string) (string, error)
}

// NewSummarizer picks the backend named by cfg.Summarizer. The AI backend
// falls back to extractive when no provider is available.
func NewSummarizer(cfg config.Config, provider ai.Provider) Summarizer {
	if cfg.Summarizer == config.SummarizerAI && provider != nil {
		return NewAISummarizer(provider, cfg.SummarySentences)
	}
	return NewExtractiveSummarizer(cfg.SummarySentences)
}

type extractiveSummarizer struct {
	sentences int
}

// NewExtractiveSummarizer ranks sentences by title overlap, keyword frequency,
// length and position, and keeps the best ones in their original order.
func NewExtractiveSummarizer(sentences int) Summarizer {
	if sentences <= 0 {
		sentences = config.DefaultSummarySentence
	}
	return &extractiveSummarizer{sentences: sentences}
}

type scoredSentence struct {
	index int
	text  string
	score float64
}

func (s *extractiveSummarizer) Summarize(ctx context.Context, title, body string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	sentences := splitSentences(body)
	if len(sentences) == 0 {
		return "", nil
	}
	if len(sentences) <= s.sentences {
		return strings.Join(sentences, "\n"), nil
	}

	keywords := keywordWeights(body)
	titleWords := contentWords(title)

	scored := make([]scoredSentence, len(sentences))
	for i, sentence := range sentences {
		words := tokenize(sentence)
		total := titleScore(titleWords, words)*1.5 +
			keywordScore(keywords, words)*2.0 +
			lengthScore(len(words))*1.0 +
			positionScore(i, len(sentences))*1.0
		scored[i] = scoredSentence{index: i, text: sentence, score: total / 4.0}
	}

	sort.SliceStable(scored, func(a, b int) bool {
		return scored[a].score > scored[b].score
	})
	best := scored[:s.sentences]
	sort.Slice(best, func(a, b int) bool {
		return best[a].index < best[b].index
	})

	lines := make([]string, len(best))
	for i, sc := range best {
		lines[i] = sc.text
	}
	return strings.Join(lines, "\n"), nil
}

// splitSentences breaks text on terminal punctuation followed by a space and
// a non-lowercase rune, except after initials and common abbreviations.
// Paragraph breaks always end a sentence.
func splitSentences(text string) []string {
	var out []string
	for _, para := range strings.Split(text, "\n") {
		runes := []rune(strings.Join(strings.Fields(para), " "))
		start := 0
		for i := 0; i < len(runes); i++ {
			if runes[i] != '.' && runes[i] != '!' && runes[i] != '?' {
				continue
			}
			if runes[i] == '.' && isAbbreviation(runes, i) {
				continue
			}
			j := i + 1
			for j < len(runes) && strings.ContainsRune(`"')]”’`, runes[j]) {
				j++
			}
			if j < len(runes) && (runes[j] != ' ' || (j+1 < len(runes) && unicode.IsLower(runes[j+1]))) {
				continue
			}
			if sentence := strings.TrimSpace(string(runes[start:j])); sentence != "" {
				out = append(out, sentence)
			}
			start = j
			i = j - 1
		}
		if rest := strings.TrimSpace(string(runes[start:])); rest != "" {
			out = append(out, rest)
		}
	}
	return out
}

var abbreviations = map[string]struct{}{
	"mr": {}, "mrs": {}, "ms": {}, "dr": {}, "prof": {}, "st": {}, "jr": {}, "sr": {},
	"gen": {}, "gov": {}, "sen": {}, "rep": {}, "pres": {}, "lt": {}, "col": {}, "sgt": {}, "capt": {},
	"inc": {}, "corp": {}, "ltd": {}, "co": {}, "vs": {}, "no": {}, "approx": {}, "est": {},
	"jan": {}, "feb": {}, "mar": {}, "apr": {}, "aug": {}, "sept": {}, "oct": {}, "nov": {}, "dec": {},
}

// isAbbreviation reports whether the word ending at runes[dot] is an initial
// ("U.S.", "J.") or a listed abbreviation ("Dr.").
func isAbbreviation(runes []rune, dot int) bool {
	start := dot
	for start > 0 && runes[start-1] != ' ' {
		start--
	}
	word := strings.TrimLeft(string(runes[start:dot]), `"'(“‘`)
	if word == "" {
		return false
	}
	last := word
	if k := strings.LastIndex(word, "."); k >= 0 {
		last = word[k+1:]
	}
	if r := []rune(last); len(r) == 1 && unicode.IsLetter(r[0]) {
		return true
	}
	_, ok := abbreviations[strings.ToLower(word)]
	return ok
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func contentWords(text string) map[string]struct{} {
	out := make(map[string]struct{})
	for _, w := range tokenize(text) {
		if isStopword(w) {
			continue
		}
		out[w] = struct{}{}
	}
	return out
}

// keywordWeights returns the most frequent non-stopwords, weighted by
// frequency relative to the most frequent one.
func keywordWeights(body string) map[string]float64 {
	counts := make(map[string]int)
	for _, w := range tokenize(body) {
		if isStopword(w) {
			continue
		}
		counts[w]++
	}

	type kv struct {
		word  string
		count int
	}
	ranked := make([]kv, 0, len(counts))
	for w, c := range counts {
		ranked = append(ranked, kv{w, c})
	}
	sort.Slice(ranked, func(a, b int) bool {
		if ranked[a].count != ranked[b].count {
			return ranked[a].count > ranked[b].count
		}
		return ranked[a].word < ranked[b].word
	})
	if len(ranked) > topKeywords {
		ranked = ranked[:topKeywords]
	}

	weights := make(map[string]float64, len(ranked))
	if len(ranked) == 0 {
		return weights
	}
	maxCount := float64(ranked[0].count)
	for _, e := range ranked {
		weights[e.word] = float64(e.count) / maxCount
	}
	return weights
}

func titleScore(titleWords map[string]struct{}, words []string) float64 {
	if len(titleWords) == 0 {
		return 0
	}
	seen := make(map[string]struct{})
	for _, w := range words {
		if _, ok := titleWords[w]; ok {
			seen[w] = struct{}{}
		}
	}
	return float64(len(seen)) / float64(len(titleWords))
}

func keywordScore(keywords map[string]float64, words []string) float64 {
	if len(words) == 0 {
		return 0
	}
	var total float64
	for _, w := range words {
		total += keywords[w]
	}
	return total / float64(len(words))
}

func lengthScore(n int) float64 {
	diff := float64(idealSentenceWords - n)
	if diff < 0 {
		diff = -diff
	}
	score := 1 - diff/idealSentenceWords
	if score < 0 {
		return 0
	}
	return score
}

// positionScore favours the lead and the closing sentences.
func positionScore(index, total int) float64 {
	normalized := float64(index+1) / float64(total)
	switch {
	case normalized <= 0.1:
		return 0.17
	case normalized <= 0.2:
		return 0.23
	case normalized <= 0.3:
		return 0.14
	case normalized <= 0.4:
		return 0.08
	case normalized <= 0.5:
		return 0.05
	case normalized <= 0.6:
		return 0.04
	case normalized <= 0.7:
		return 0.06
	case normalized <= 0.8:
		return 0.04
	case normalized <= 0.9:
		return 0.04
	default:
		return 0.15
	}
}

var stopwords = map[string]struct{}{}

func init() {
	for _, w := range strings.Fields(`a about above after again against all am an and any are as at be because
been before being below between both but by can could did do does doing down during each few for from
further had has have having he her here hers herself him himself his how i if in into is it its itself
just me more most my myself no nor not now of off on once only or other our ours ourselves out over own
s same she should so some such t than that the their theirs them themselves then there these they this
those through to too under until up very was we were what when where which while who whom why will with
would you your yours yourself yourselves said says also new one two like get got`) {
		stopwords[w] = struct{}{}
	}
}

func isStopword(w string) bool {
	if utf8.RuneCountInString(w) < 2 {
		return true
	}
	_, ok := stopwords[w]
	return ok
}

type aiSummarizer struct {
	provider  ai.Provider
	sentences int
}

// NewAISummarizer delegates to an AI provider.
func NewAISummarizer(provider ai.Provider, sentences int) Summarizer {
	if sentences <= 0 {
		sentences = config.DefaultSummarySentence
	}
	return &aiSummarizer{provider: provider, sentences: sentences}
}

func (s *aiSummarizer) Summarize(ctx context.Context, title, body string) (string, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return "", nil
	}
	if utf8.RuneCountInString(body) > maxAIInputRunes {
		body = string([]rune(body)[:maxAIInputRunes])
	}
	summary, err := s.provider.Complete(ctx, ai.GetSummarizePrompt(title, s.sentences), body)
	if err != nil {
		return "", fmt.Errorf("%w: summarize via %s: %v", ErrService, s.provider.Name(), err)
	}
	return strings.TrimSpace(summary), nil
}
