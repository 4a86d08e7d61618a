package primary

import (
	"context"
	"fmt"

	"resumemash/internal/models"
	"resumemash/internal/store"
)

func (s *Store) CreateSwipe(ctx context.Context, swipe *models.Swipe) error {
	id, err := s.insertReturningID(ctx,
		`INSERT INTO swipes (resume_id, user_id, label) VALUES (?, ?, ?)`,
		swipe.ResumeID, swipe.UserID, swipe.Label)
	if err != nil {
		// The (resume_id, user_id) unique is the backstop against racing
		// duplicate submissions; HasSwiped is only the fast path.
		if isUniqueViolation(err) {
			return store.ErrDuplicate
		}
		return fmt.Errorf("insert swipe for resume %d: %w", swipe.ResumeID, err)
	}
	swipe.ID = id
	return nil
}

func (s *Store) HasSwiped(ctx context.Context, resumeID, recruiterID int64) (bool, error) {
	var n int
	err := s.db.QueryRowContext(ctx, s.rebind(
		`SELECT COUNT(*) FROM swipes WHERE resume_id = ? AND user_id = ?`),
		resumeID, recruiterID).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("check existing swipe: %w", err)
	}
	return n > 0, nil
}

func (s *Store) CountSwipesByField(ctx context.Context, jobField string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, s.rebind(
		`SELECT COUNT(*)
		 FROM swipes
		 JOIN resumes ON swipes.resume_id = resumes.id
		 WHERE resumes.job_field = ?`), jobField).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count swipes for field %q: %w", jobField, err)
	}
	return n, nil
}

func (s *Store) CountSwipesByFieldAndLabel(ctx context.Context, jobField string, label int) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, s.rebind(
		`SELECT COUNT(*)
		 FROM swipes
		 JOIN resumes ON swipes.resume_id = resumes.id
		 WHERE resumes.job_field = ? AND swipes.label = ?`), jobField, label).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count %d-label swipes for field %q: %w", label, jobField, err)
	}
	return n, nil
}
