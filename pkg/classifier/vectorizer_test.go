package classifier

import (
	"math"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	tokens := tokenize("Led a team of 12 engineers; shipped go_services v2!")
	assert.Equal(t, []string{"led", "team", "12", "engineers", "shipped", "go_services", "v2"}, tokens)
}

func TestTokenizeDropsStopwordsAndShortTokens(t *testing.T) {
	tokens := tokenize("I am the a of and x y z python")
	assert.Equal(t, []string{"python"}, tokens)
}

func TestFitBuildsAlphabeticalVocabulary(t *testing.T) {
	v := NewVectorizer(0)
	v.Fit([]string{
		"python sql airflow",
		"python spark",
	})

	require.Equal(t, 4, v.NumFeatures())
	assert.Equal(t, map[string]int{"airflow": 0, "python": 1, "spark": 2, "sql": 3}, v.Vocabulary)
}

func TestFitSmoothedIDF(t *testing.T) {
	v := NewVectorizer(0)
	v.Fit([]string{
		"python sql",
		"python spark",
	})

	// python appears in both docs, sql in one.
	n := 2.0
	wantPython := math.Log((1+n)/(1+2)) + 1
	wantSQL := math.Log((1+n)/(1+1)) + 1
	assert.InDelta(t, wantPython, v.IDF[v.Vocabulary["python"]], 1e-12)
	assert.InDelta(t, wantSQL, v.IDF[v.Vocabulary["sql"]], 1e-12)
	assert.Greater(t, wantSQL, wantPython)
}

func TestFitCapsVocabularyByCorpusFrequency(t *testing.T) {
	v := NewVectorizer(2)
	v.Fit([]string{
		"kafka kafka kafka redis redis zookeeper",
	})

	require.Equal(t, 2, v.NumFeatures())
	assert.Contains(t, v.Vocabulary, "kafka")
	assert.Contains(t, v.Vocabulary, "redis")
	assert.NotContains(t, v.Vocabulary, "zookeeper")
}

func TestFitCapTiesBreakAlphabetically(t *testing.T) {
	v := NewVectorizer(2)
	v.Fit([]string{"delta alpha charlie"})

	assert.Contains(t, v.Vocabulary, "alpha")
	assert.Contains(t, v.Vocabulary, "charlie")
	assert.NotContains(t, v.Vocabulary, "delta")
}

func TestTransformL2Normalised(t *testing.T) {
	v := NewVectorizer(0)
	v.Fit([]string{"python sql airflow", "python spark kafka"})

	vec := v.Transform("python sql sql kafka")
	require.NotEmpty(t, vec.Indices)

	var norm float64
	for _, val := range vec.Values {
		norm += val * val
	}
	assert.InDelta(t, 1.0, norm, 1e-12)
}

func TestTransformIndicesSortedAscending(t *testing.T) {
	v := NewVectorizer(0)
	v.Fit([]string{"zulu yankee xray whiskey victor uniform"})

	vec := v.Transform("victor zulu xray")
	require.Len(t, vec.Indices, 3)
	assert.True(t, sortedAscending(vec.Indices))
}

func TestTransformUnknownTermsYieldZeroVector(t *testing.T) {
	v := NewVectorizer(0)
	v.Fit([]string{"python sql"})

	vec := v.Transform("haskell prolog")
	assert.Empty(t, vec.Indices)
	assert.Empty(t, vec.Values)
}

func TestRefitOnSameCorpusIsIdentical(t *testing.T) {
	docs := []string{
		"senior python engineer with airflow and spark experience",
		"marketing coordinator managing campaigns and social channels",
		"data analyst building sql dashboards",
	}

	a := NewVectorizer(0)
	a.Fit(docs)
	b := NewVectorizer(0)
	b.Fit(docs)

	require.True(t, reflect.DeepEqual(a.Vocabulary, b.Vocabulary))
	require.Equal(t, a.IDF, b.IDF)

	va := a.Transform(docs[0])
	vb := b.Transform(docs[0])
	assert.Equal(t, va, vb)
}

func sortedAscending(xs []int) bool {
	for i := 1; i < len(xs); i++ {
		if xs[i-1] >= xs[i] {
			return false
		}
	}
	return true
}
