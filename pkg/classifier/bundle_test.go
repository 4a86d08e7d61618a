package classifier

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fittedBundle(t *testing.T) *Bundle {
	t.Helper()
	docs := []string{
		"python airflow spark pipelines",
		"python sql dashboards reporting",
		"retail cashier customer service",
		"warehouse forklift operator",
	}
	labels := []int{1, 1, 0, 0}

	vec := NewVectorizer(0)
	X := vec.FitTransform(docs)
	model := NewLogisticRegression(0)
	require.NoError(t, model.Fit(X, labels, vec.NumFeatures()))
	return NewBundle("data", vec, model, len(docs))
}

func TestNewBundleStampsVersion(t *testing.T) {
	b := fittedBundle(t)
	assert.NotEqual(t, uuid.Nil, b.Version)
	assert.Equal(t, "data", b.JobField)
	assert.Equal(t, 4, b.SampleCount)
	assert.False(t, b.TrainedAt.IsZero())
}

func TestBundleScoreRange(t *testing.T) {
	b := fittedBundle(t)
	for _, text := range []string{
		"python spark data engineer",
		"retail customer service",
		"completely unrelated llanfair words",
		"",
	} {
		p := b.Score(text)
		assert.GreaterOrEqual(t, p, 0.0)
		assert.LessOrEqual(t, p, 1.0)
	}
}

func TestBundleMarshalRoundTripScoresIdentically(t *testing.T) {
	b := fittedBundle(t)
	data, err := b.Marshal()
	require.NoError(t, err)

	loaded, err := UnmarshalBundle(data)
	require.NoError(t, err)

	assert.Equal(t, b.Version, loaded.Version)
	assert.Equal(t, b.SampleCount, loaded.SampleCount)

	for _, text := range []string{
		"python airflow engineer",
		"forklift certified warehouse worker",
		"sql and spark and retail",
	} {
		assert.Equal(t, b.Score(text), loaded.Score(text), "score drifted after reload for %q", text)
	}
}

func TestUnmarshalBundleRejectsPartialArtifacts(t *testing.T) {
	_, err := UnmarshalBundle([]byte(`{"job_field":"data","model":{"weights":[0.1],"bias":0}}`))
	assert.Error(t, err)

	_, err = UnmarshalBundle([]byte(`{"job_field":"data","vectorizer":{"vocabulary":{},"idf":[]}}`))
	assert.Error(t, err)

	_, err = UnmarshalBundle([]byte(`not json`))
	assert.Error(t, err)
}
