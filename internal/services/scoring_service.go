package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"resumemash/internal/store"
)

// ScoreResult is one scoring outcome: the calibrated probability that a
// recruiter would Mash this text, plus the identity of the bundle that
// produced it.
type ScoreResult struct {
	Probability  float64   `json:"probability"`
	ModelVersion uuid.UUID `json:"model_version"`
	TrainedAt    time.Time `json:"trained_at"`
	SampleCount  int       `json:"sample_count"`
}

// ScoringService answers "how would recruiters react to this text" using
// whatever bundle is currently live for the field. It is a pure read over
// the model store and safe for concurrent use.
type ScoringService struct {
	models store.ModelStore
}

func NewScoringService(models store.ModelStore) *ScoringService {
	return &ScoringService{models: models}
}

// Score returns (nil, nil) when no model exists for jobField yet, the
// expected cold-start signal, distinct from any numeric score. Otherwise the
// probability is in [0,1], and repeated calls against one bundle version are
// bit-identical. Text sharing no vocabulary with the training data still
// scores (as an all-zero feature vector).
func (s *ScoringService) Score(ctx context.Context, text, jobField string) (*ScoreResult, error) {
	bundle, err := s.models.Load(ctx, jobField)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load model for field %q: %w", jobField, err)
	}
	return &ScoreResult{
		Probability:  bundle.Score(text),
		ModelVersion: bundle.Version,
		TrainedAt:    bundle.TrainedAt,
		SampleCount:  bundle.SampleCount,
	}, nil
}
