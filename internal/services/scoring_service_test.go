package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumemash/internal/models"
)

func trainedScorer(t *testing.T, field string) (*ScoringService, *memModelStore) {
	t.Helper()
	data := &memDataStore{examples: map[string][]models.LabeledExample{
		field: mixedExamples(),
	}}
	modelStore := newMemModelStore()
	trainer := NewTrainingService(data, modelStore, 0, 0)
	used, err := trainer.Train(context.Background(), field)
	require.NoError(t, err)
	require.Equal(t, 4, used)
	return NewScoringService(modelStore), modelStore
}

func TestScoreNoModelYet(t *testing.T) {
	svc := NewScoringService(newMemModelStore())

	result, err := svc.Score(context.Background(), "any resume text", "finance")
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestScoreWithinBounds(t *testing.T) {
	svc, _ := trainedScorer(t, "software")

	for _, text := range []string{
		"golang kubernetes engineer",
		"retail cashier",
		"words the model never saw qqqq zzzz",
		"",
	} {
		result, err := svc.Score(context.Background(), text, "software")
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.GreaterOrEqual(t, result.Probability, 0.0)
		assert.LessOrEqual(t, result.Probability, 1.0)
	}
}

func TestScoreRepeatable(t *testing.T) {
	svc, _ := trainedScorer(t, "software")
	ctx := context.Background()

	text := "golang backend engineer with kubernetes"
	first, err := svc.Score(ctx, text, "software")
	require.NoError(t, err)
	second, err := svc.Score(ctx, text, "software")
	require.NoError(t, err)

	assert.Equal(t, first.Probability, second.Probability)
	assert.Equal(t, first.ModelVersion, second.ModelVersion)
}

func TestScoreCarriesModelMetadata(t *testing.T) {
	svc, modelStore := trainedScorer(t, "software")

	result, err := svc.Score(context.Background(), "golang engineer", "software")
	require.NoError(t, err)
	require.NotNil(t, result)

	bundle := modelStore.bundles["software"]
	assert.Equal(t, bundle.Version, result.ModelVersion)
	assert.Equal(t, bundle.TrainedAt, result.TrainedAt)
	assert.Equal(t, bundle.SampleCount, result.SampleCount)
}

func TestScoreStoreFailure(t *testing.T) {
	modelStore := newMemModelStore()
	modelStore.loadErr = errors.New("artifact unreadable")
	svc := NewScoringService(modelStore)

	_, err := svc.Score(context.Background(), "text", "software")
	assert.Error(t, err)
}
