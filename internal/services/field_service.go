package services

import (
	"context"
	"errors"

	"resumemash/internal/models"
	"resumemash/internal/store"
)

// FieldService assembles per-field operational stats: data volume, label
// split, and current model metadata. The label split is what lets an
// operator spot a field stuck on single-direction swipes (which blocks
// training until the other label shows up).
type FieldService struct {
	resumes store.ResumeStore
	swipes  store.SwipeStore
	models  store.ModelStore
}

func NewFieldService(resumes store.ResumeStore, swipes store.SwipeStore, modelStore store.ModelStore) *FieldService {
	return &FieldService{resumes: resumes, swipes: swipes, models: modelStore}
}

// StatsForField collects stats for one job field.
func (s *FieldService) StatsForField(ctx context.Context, jobField string) (*models.FieldStats, error) {
	stats := &models.FieldStats{JobField: jobField}

	var err error
	if stats.ResumeCount, err = s.resumes.CountResumesByField(ctx, jobField); err != nil {
		return nil, err
	}
	if stats.SwipeCount, err = s.swipes.CountSwipesByField(ctx, jobField); err != nil {
		return nil, err
	}
	if stats.MashCount, err = s.swipes.CountSwipesByFieldAndLabel(ctx, jobField, models.LabelMash); err != nil {
		return nil, err
	}
	if stats.PassCount, err = s.swipes.CountSwipesByFieldAndLabel(ctx, jobField, models.LabelPass); err != nil {
		return nil, err
	}

	bundle, err := s.models.Load(ctx, jobField)
	switch {
	case errors.Is(err, store.ErrNotFound):
		// No model yet; stats still useful.
	case err != nil:
		return nil, err
	default:
		stats.Model = &models.ModelInfo{
			Version:     bundle.Version.String(),
			TrainedAt:   bundle.TrainedAt,
			SampleCount: bundle.SampleCount,
		}
	}
	return stats, nil
}

// AllFieldStats returns stats for every known job field, in JobFields order.
func (s *FieldService) AllFieldStats(ctx context.Context) ([]*models.FieldStats, error) {
	out := make([]*models.FieldStats, 0, len(models.JobFields))
	for _, field := range models.JobFields {
		stats, err := s.StatsForField(ctx, field)
		if err != nil {
			return nil, err
		}
		out = append(out, stats)
	}
	return out, nil
}
