package services

import (
	"context"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"

	"resumemash/internal/models"
	"resumemash/internal/store"
)

// SwipeService records recruiter judgments and applies the retrain policy.
// Retraining, when due, runs synchronously before RecordSwipe returns, so
// the trigger condition and the training action stay in one visible place
// instead of hiding inside persistence code.
type SwipeService struct {
	swipes  store.SwipeStore
	resumes store.ResumeStore
	trainer *TrainingService
	policy  RetrainPolicy
}

func NewSwipeService(swipes store.SwipeStore, resumes store.ResumeStore, trainer *TrainingService, policy RetrainPolicy) *SwipeService {
	return &SwipeService{
		swipes:  swipes,
		resumes: resumes,
		trainer: trainer,
		policy:  policy,
	}
}

// RecordSwipeResult reports what a recorded swipe caused: the post-insert
// per-field count, and whether it triggered a retrain and on how many
// samples (0 when the trainer skipped for lack of class diversity).
type RecordSwipeResult struct {
	Swipe       *models.Swipe `json:"swipe"`
	JobField    string        `json:"job_field"`
	FieldSwipes int           `json:"field_swipes"`
	Retrained   bool          `json:"retrained"`
	SamplesUsed int           `json:"samples_used"`
}

// RecordSwipe persists one like/pass judgment. Duplicate judgments by the
// same recruiter on the same resume return models.ErrAlreadySwiped and are
// invisible to the retrain policy.
//
// When the swipe lands on the retrain threshold, the field's model is
// retrained before returning. A failed retrain does not undo the recorded
// swipe: the result carries the persisted swipe and the error reports the
// training failure.
func (s *SwipeService) RecordSwipe(ctx context.Context, recruiterID, resumeID int64, label int) (*RecordSwipeResult, error) {
	if label != models.LabelPass && label != models.LabelMash {
		return nil, fmt.Errorf("%w: label must be 0 (pass) or 1 (mash), got %d", models.ErrValidation, label)
	}

	resume, err := s.resumes.GetResume(ctx, resumeID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("%w: resume %d", models.ErrNotFound, resumeID)
	}
	if err != nil {
		return nil, err
	}

	swiped, err := s.swipes.HasSwiped(ctx, resumeID, recruiterID)
	if err != nil {
		return nil, err
	}
	if swiped {
		return nil, models.ErrAlreadySwiped
	}

	swipe := &models.Swipe{ResumeID: resumeID, UserID: recruiterID, Label: label}
	if err := s.swipes.CreateSwipe(ctx, swipe); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, models.ErrAlreadySwiped
		}
		return nil, err
	}

	// Post-insert count: the swipe just recorded counts toward the trigger.
	count, err := s.swipes.CountSwipesByField(ctx, resume.JobField)
	if err != nil {
		return nil, fmt.Errorf("count swipes after insert: %w", err)
	}

	result := &RecordSwipeResult{
		Swipe:       swipe,
		JobField:    resume.JobField,
		FieldSwipes: count,
	}
	if !s.policy.ShouldRetrain(count) {
		return result, nil
	}

	used, err := s.trainer.Train(ctx, resume.JobField)
	if err != nil {
		// The swipe is durable either way; surface the training failure
		// rather than swallow it.
		return result, fmt.Errorf("swipe recorded, but retraining field %q failed: %w", resume.JobField, err)
	}
	result.Retrained = true
	result.SamplesUsed = used
	log.Infof("Retrained model for field %q on %d swipes (field total: %d)",
		resume.JobField, used, count)
	return result, nil
}

// NextResume returns a random resume in jobField that the recruiter has not
// judged yet, or models.ErrNotFound when the deck is exhausted.
func (s *SwipeService) NextResume(ctx context.Context, jobField string, recruiterID int64) (*models.Resume, error) {
	resume, err := s.resumes.RandomUnswipedResume(ctx, jobField, recruiterID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("%w: no unswiped resumes left in field %q", models.ErrNotFound, jobField)
	}
	return resume, err
}
