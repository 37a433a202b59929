package emotion

import (
	"regexp"
	"strings"
)

// minTokenLength is the shortest token the normalizer keeps. The filter runs
// after stopword removal, so negation words shorter than this ("no") are
// lost even though they are exempt from the stopword set.
const minTokenLength = 3

// A Normalizer reduces raw text to the token sequence the vectorizer
// consumes. Every step is a pure function of its input; the zero-token
// result is valid and flows through the rest of the pipeline as a zero
// feature vector.
type Normalizer struct {
	urlRE     *regexp.Regexp
	socialRE  *regexp.Regexp
	nonWordRE *regexp.Regexp
	stopwords map[string]struct{}
}

type NormalizerOptFunc func(*Normalizer)

// UsingStopwords replaces the default stopword set. Words in the negation
// exemption set are never treated as stopwords, whatever the caller passes.
func UsingStopwords(words []string) NormalizerOptFunc {
	return func(n *Normalizer) {
		n.stopwords = buildStopwordSet(words)
	}
}

// NewNormalizer creates a Normalizer with the default English stopword set.
func NewNormalizer(opts ...NormalizerOptFunc) *Normalizer {
	n := &Normalizer{
		urlRE:     regexp.MustCompile(`(?:https?://|www\.)\S+`),
		socialRE:  regexp.MustCompile(`[@#]\w+`),
		nonWordRE: regexp.MustCompile(`[^a-z\s]+`),
		stopwords: buildStopwordSet(englishStopwords),
	}
	for _, applyOpt := range opts {
		applyOpt(n)
	}
	return n
}

// Normalize lowercases text, strips URLs, mentions, hashtags and everything
// outside [a-z ], splits on whitespace, and filters stopwords and short
// tokens. Negation words survive the stopword filter but not the length
// filter.
func (n *Normalizer) Normalize(text string) []string {
	text = strings.ToLower(text)
	text = n.urlRE.ReplaceAllString(text, " ")
	text = n.socialRE.ReplaceAllString(text, " ")
	text = n.nonWordRE.ReplaceAllString(text, "")

	fields := strings.Fields(text)
	tokens := make([]string, 0, len(fields))
	for _, tok := range fields {
		if _, stop := n.stopwords[tok]; stop {
			continue
		}
		if len(tok) < minTokenLength {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// buildStopwordSet indexes words, excluding the negation exemptions.
func buildStopwordSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		if _, keep := negationExemptions[w]; keep {
			continue
		}
		set[w] = struct{}{}
	}
	return set
}

// negationExemptions are filtered-stopword candidates that carry emotion
// polarity ("not happy" vs "happy") and must survive normalization.
var negationExemptions = map[string]struct{}{
	"not": {}, "no": {}, "never": {}, "neither": {}, "nobody": {},
	"nothing": {}, "nowhere": {}, "hardly": {}, "barely": {},
	"scarcely": {}, "rarely": {}, "seldom": {},
}
