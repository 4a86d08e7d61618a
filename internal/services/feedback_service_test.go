package services

import (
	"context"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumemash/internal/models"
	"resumemash/pkg/classifier"
)

// bundleScoringAt builds a bundle whose every score is p: an empty
// vocabulary maps all text to the zero vector, so the probability is
// decided by the bias alone.
func bundleScoringAt(field string, p float64) *classifier.Bundle {
	return &classifier.Bundle{
		Version:     uuid.New(),
		JobField:    field,
		TrainedAt:   time.Now().UTC(),
		SampleCount: 20,
		Vectorizer:  &classifier.Vectorizer{MaxFeatures: 10, Vocabulary: map[string]int{}, IDF: []float64{}},
		Model:       &classifier.LogisticRegression{MaxIter: 1, Weights: []float64{}, Bias: math.Log(p / (1 - p))},
	}
}

func feedbackFixture(resume *models.Resume) (*FeedbackService, *memModelStore) {
	resumes := &memResumeStore{latest: map[int64]*models.Resume{}}
	if resume != nil {
		resumes.latest[resume.UserID] = resume
	}
	modelStore := newMemModelStore()
	return NewFeedbackService(resumes, NewScoringService(modelStore)), modelStore
}

func sampleResume(userID int64) *models.Resume {
	return &models.Resume{
		ID:       7,
		UserID:   userID,
		Filename: "resume.txt",
		Text:     "Built data pipelines at scale. Led a team of four engineers. Previously worked in retail.",
		JobField: "data",
	}
}

func TestForCandidateNoResume(t *testing.T) {
	svc, _ := feedbackFixture(nil)
	_, err := svc.ForCandidate(context.Background(), 42)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestForCandidateNoModelYet(t *testing.T) {
	svc, _ := feedbackFixture(sampleResume(42))

	fb, err := svc.ForCandidate(context.Background(), 42)
	require.NoError(t, err)
	assert.Nil(t, fb.ScorePct)
	assert.Nil(t, fb.Model)
	assert.Equal(t, msgNoModel, fb.Message)
	assert.Equal(t, int64(7), fb.ResumeID)
}

func TestForCandidateBuckets(t *testing.T) {
	cases := []struct {
		name    string
		p       float64
		wantPct int
		wantMsg string
	}{
		{"favorable", 0.9, 90, msgFavorable},
		{"favorable lower edge", 0.801, 80, msgFavorable},
		{"mixed", 0.6, 60, msgMixed},
		{"mixed lower edge", 0.501, 50, msgMixed},
		{"needs work", 0.2, 20, msgNeedsWork},
		{"needs work upper edge", 0.49, 49, msgNeedsWork},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, modelStore := feedbackFixture(sampleResume(42))
			modelStore.bundles["data"] = bundleScoringAt("data", tc.p)

			fb, err := svc.ForCandidate(context.Background(), 42)
			require.NoError(t, err)
			require.NotNil(t, fb.ScorePct)
			assert.Equal(t, tc.wantPct, *fb.ScorePct)
			assert.Equal(t, tc.wantMsg, fb.Message)
		})
	}
}

func TestForCandidateCarriesModelInfo(t *testing.T) {
	svc, modelStore := feedbackFixture(sampleResume(42))
	bundle := bundleScoringAt("data", 0.7)
	modelStore.bundles["data"] = bundle

	fb, err := svc.ForCandidate(context.Background(), 42)
	require.NoError(t, err)
	require.NotNil(t, fb.Model)
	assert.Equal(t, bundle.Version.String(), fb.Model.Version)
	assert.Equal(t, 20, fb.Model.SampleCount)
}

func TestPreviewFirstTwoSentences(t *testing.T) {
	svc, _ := feedbackFixture(sampleResume(42))

	fb, err := svc.ForCandidate(context.Background(), 42)
	require.NoError(t, err)
	assert.Contains(t, fb.Preview, "Built data pipelines at scale.")
	assert.Contains(t, fb.Preview, "Led a team of four engineers.")
	assert.NotContains(t, fb.Preview, "retail")
}

func TestPreviewLengthCap(t *testing.T) {
	long := strings.Repeat("word ", 200) + "end."
	resume := sampleResume(42)
	resume.Text = long
	svc, _ := feedbackFixture(resume)

	fb, err := svc.ForCandidate(context.Background(), 42)
	require.NoError(t, err)
	assert.LessOrEqual(t, len([]rune(fb.Preview)), previewMaxRunes+len("..."))
}
