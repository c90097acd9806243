// Package tfidf scores the similarity of two course texts using pairwise
// TF-IDF vectorization and cosine similarity.
//
// The vectorization is fit over exactly the two documents being compared,
// not a corpus: the comparison set is always two documents, and per-pair
// refitting keeps scores independent of whatever else is stored. Tokens are
// lowercased, accent-stripped, and filtered against a fixed Spanish stopword
// list before weighting.
package tfidf

import (
	"math"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// minTokenLength drops single-character tokens, which carry no signal and
// would otherwise dominate short Spanish texts.
const minTokenLength = 2

// CompareTexts returns the TF-IDF cosine similarity of two texts, clamped
// to [0, 1]. If either text is empty, or the shared vocabulary collapses to
// nothing after stopword removal, the score is a defined 0.
func CompareTexts(a, b string) float64 {
	a = strings.TrimSpace(a)
	b = strings.TrimSpace(b)
	if a == "" || b == "" {
		return 0
	}

	tokensA := tokenize(a)
	tokensB := tokenize(b)

	vocab := make(map[string]int)
	countsA := termCounts(tokensA, vocab)
	countsB := termCounts(tokensB, vocab)
	if len(vocab) == 0 {
		return 0
	}

	vecA := weigh(countsA, countsB, vocab)
	vecB := weigh(countsB, countsA, vocab)

	sim := dot(vecA, vecB)
	if math.IsNaN(sim) || sim < 0 {
		return 0
	}
	if sim > 1 {
		return 1
	}
	return sim
}

// tokenize normalizes text (lowercase, accents stripped) and splits it into
// word tokens of at least minTokenLength characters, dropping stopwords.
func tokenize(text string) []string {
	text = stripAccents(strings.ToLower(text))

	var tokens []string
	var current strings.Builder
	flush := func() {
		if current.Len() >= minTokenLength {
			token := current.String()
			if _, stop := stopwordSet[token]; !stop {
				tokens = append(tokens, token)
			}
		}
		current.Reset()
	}

	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			current.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()

	return tokens
}

// stripAccents removes combining marks: decompose, drop marks, recompose.
func stripAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// termCounts tallies token frequencies and registers each term in the
// shared vocabulary.
func termCounts(tokens []string, vocab map[string]int) map[string]int {
	counts := make(map[string]int, len(tokens))
	for _, token := range tokens {
		counts[token]++
		if _, ok := vocab[token]; !ok {
			vocab[token] = len(vocab)
		}
	}
	return counts
}

// weigh computes the smoothed TF-IDF vector for one document of the pair,
// l2-normalized. With two documents, the smoothed IDF is
// ln(3/(1+df)) + 1 where df is 1 or 2.
func weigh(counts, other map[string]int, vocab map[string]int) []float64 {
	vec := make([]float64, len(vocab))
	for term, idx := range vocab {
		tf := float64(counts[term])
		if tf == 0 {
			continue
		}
		df := 1.0
		if _, ok := other[term]; ok {
			df = 2.0
		}
		idf := math.Log(3.0/(1.0+df)) + 1.0
		vec[idx] = tf * idf
	}

	var sumSquares float64
	for _, v := range vec {
		sumSquares += v * v
	}
	if sumSquares == 0 {
		return vec
	}
	normFactor := math.Sqrt(sumSquares)
	for i := range vec {
		vec[i] /= normFactor
	}
	return vec
}

// dot returns the dot product of two equal-length vectors. Both inputs are
// l2-normalized, so this is their cosine similarity.
func dot(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}
