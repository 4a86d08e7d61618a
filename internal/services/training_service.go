package services

import (
	"context"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"

	"resumemash/internal/store"
	"resumemash/pkg/classifier"
)

// TrainingService turns the accumulated swipe history of a job field into a
// fresh model bundle. Every run is a full retrain: the vocabulary must be
// refit whenever new resumes bring new terms, and per-field datasets are
// small enough that incremental updates buy nothing.
type TrainingService struct {
	data        store.TrainingDataStore
	models      store.ModelStore
	maxFeatures int
	maxIter     int
}

// NewTrainingService wires the trainer to its data source and bundle store.
// maxFeatures/maxIter <= 0 use the classifier package defaults.
func NewTrainingService(data store.TrainingDataStore, models store.ModelStore, maxFeatures, maxIter int) *TrainingService {
	return &TrainingService{
		data:        data,
		models:      models,
		maxFeatures: maxFeatures,
		maxIter:     maxIter,
	}
}

// Train fits and persists a new bundle for jobField, returning the number of
// labeled examples used.
//
// Two conditions are expected and return (0, nil) without touching any
// existing bundle: an empty training set, and a set where only one label is
// present ("wait for more diverse data", not an error). Fit or persistence
// failures return an error; the prior bundle, if any, stays live.
func (s *TrainingService) Train(ctx context.Context, jobField string) (int, error) {
	examples, err := s.data.LabeledExamples(ctx, jobField)
	if err != nil {
		return 0, fmt.Errorf("fetch training data for field %q: %w", jobField, err)
	}
	if len(examples) == 0 {
		log.Debugf("No swipe data for field %q yet, nothing to train", jobField)
		return 0, nil
	}

	texts := make([]string, len(examples))
	labels := make([]int, len(examples))
	distinct := make(map[int]bool, 2)
	for i, ex := range examples {
		texts[i] = ex.Text
		labels[i] = ex.Label
		distinct[ex.Label] = true
	}
	if len(distinct) < 2 {
		log.Infof("Not training model for field %q yet: only one class present in %d samples",
			jobField, len(examples))
		return 0, nil
	}

	vec := classifier.NewVectorizer(s.maxFeatures)
	X := vec.FitTransform(texts)

	model := classifier.NewLogisticRegression(s.maxIter)
	if err := model.Fit(X, labels, vec.NumFeatures()); err != nil {
		if errors.Is(err, classifier.ErrSingleClass) {
			// Pre-checked above; kept as a guard so a fit bug can never
			// surface the routine condition as a failure.
			return 0, nil
		}
		return 0, fmt.Errorf("fit model for field %q: %w", jobField, err)
	}

	bundle := classifier.NewBundle(jobField, vec, model, len(examples))
	if err := s.models.Save(ctx, jobField, bundle); err != nil {
		return 0, fmt.Errorf("persist model for field %q: %w", jobField, err)
	}

	log.Infof("Trained model for field %q on %d swipes (vocab=%d, version=%s)",
		jobField, len(examples), vec.NumFeatures(), bundle.Version)
	return len(examples), nil
}
