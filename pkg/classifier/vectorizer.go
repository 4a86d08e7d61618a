package classifier

import (
	"math"
	"sort"
	"strings"
	"unicode"
)

// DefaultMaxFeatures bounds the vocabulary size so per-field models stay
// small even when resumes bring in a long vocabulary tail.
const DefaultMaxFeatures = 5000

// Vector is a sparse feature vector. Indices are sorted ascending and
// parallel to Values; iteration order is therefore stable, which keeps
// dot products (and so scores) bit-identical across calls.
type Vector struct {
	Indices []int     `json:"indices"`
	Values  []float64 `json:"values"`
}

// Vectorizer converts raw text into L2-normalised TF-IDF vectors over a
// vocabulary learned by Fit. A fitted vectorizer is immutable: Transform
// never grows the vocabulary, and text with no known terms maps to the
// zero vector rather than an error.
type Vectorizer struct {
	MaxFeatures int            `json:"max_features"`
	Vocabulary  map[string]int `json:"vocabulary"`
	IDF         []float64      `json:"idf"`
}

// NewVectorizer returns an unfitted vectorizer. maxFeatures <= 0 falls back
// to DefaultMaxFeatures.
func NewVectorizer(maxFeatures int) *Vectorizer {
	if maxFeatures <= 0 {
		maxFeatures = DefaultMaxFeatures
	}
	return &Vectorizer{MaxFeatures: maxFeatures}
}

// tokenize lowercases the text and splits it into word tokens (runs of
// letters, digits and underscores at least two runes long), dropping
// stopwords.
func tokenize(text string) []string {
	var tokens []string
	var current strings.Builder
	flush := func() {
		if current.Len() == 0 {
			return
		}
		tok := current.String()
		current.Reset()
		// Single-rune tokens carry no signal, same as function words.
		if len([]rune(tok)) < 2 {
			return
		}
		if _, stop := englishStopwords[tok]; stop {
			return
		}
		tokens = append(tokens, tok)
	}
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			current.WriteRune(r)
			continue
		}
		flush()
	}
	flush()
	return tokens
}

// Fit learns the vocabulary and IDF weights from the given documents.
// When more than MaxFeatures distinct terms appear, the most frequent
// terms across the corpus win (ties broken alphabetically so a refit on
// identical data produces an identical vocabulary).
func (v *Vectorizer) Fit(docs []string) {
	termCount := make(map[string]int)
	docFreq := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]bool)
		for _, tok := range tokenize(doc) {
			termCount[tok]++
			if !seen[tok] {
				seen[tok] = true
				docFreq[tok]++
			}
		}
	}

	terms := make([]string, 0, len(termCount))
	for t := range termCount {
		terms = append(terms, t)
	}
	if len(terms) > v.MaxFeatures {
		sort.Slice(terms, func(i, j int) bool {
			if termCount[terms[i]] != termCount[terms[j]] {
				return termCount[terms[i]] > termCount[terms[j]]
			}
			return terms[i] < terms[j]
		})
		terms = terms[:v.MaxFeatures]
	}
	// Alphabetical feature order, independent of selection order.
	sort.Strings(terms)

	v.Vocabulary = make(map[string]int, len(terms))
	v.IDF = make([]float64, len(terms))
	n := float64(len(docs))
	for i, t := range terms {
		v.Vocabulary[t] = i
		// Smoothed IDF: pretends one extra document containing every term,
		// so no weight is ever zero or infinite.
		v.IDF[i] = math.Log((1+n)/(1+float64(docFreq[t]))) + 1
	}
}

// Transform maps text into the fitted TF-IDF space. Terms outside the
// vocabulary are ignored; text with no overlap yields an empty (zero)
// vector, which is a valid input downstream.
func (v *Vectorizer) Transform(text string) Vector {
	tf := make(map[int]float64)
	for _, tok := range tokenize(text) {
		if idx, ok := v.Vocabulary[tok]; ok {
			tf[idx]++
		}
	}
	vec := Vector{
		Indices: make([]int, 0, len(tf)),
		Values:  make([]float64, 0, len(tf)),
	}
	for idx := range tf {
		vec.Indices = append(vec.Indices, idx)
	}
	sort.Ints(vec.Indices)

	var norm float64
	for _, idx := range vec.Indices {
		w := tf[idx] * v.IDF[idx]
		vec.Values = append(vec.Values, w)
		norm += w * w
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range vec.Values {
			vec.Values[i] /= norm
		}
	}
	return vec
}

// FitTransform fits on docs and returns their vectors in one pass.
func (v *Vectorizer) FitTransform(docs []string) []Vector {
	v.Fit(docs)
	out := make([]Vector, len(docs))
	for i, doc := range docs {
		out[i] = v.Transform(doc)
	}
	return out
}

// NumFeatures reports the size of the fitted vocabulary.
func (v *Vectorizer) NumFeatures() int {
	return len(v.IDF)
}
