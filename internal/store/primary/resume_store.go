package primary

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"resumemash/internal/models"
	"resumemash/internal/store"
)

const resumeColumns = `id, user_id, filename, text, text_hash, job_field, uploaded_at`

func (s *Store) CreateResume(ctx context.Context, resume *models.Resume) error {
	id, err := s.insertReturningID(ctx,
		`INSERT INTO resumes (user_id, filename, text, text_hash, job_field) VALUES (?, ?, ?, ?, ?)`,
		resume.UserID, resume.Filename, resume.Text, resume.TextHash, resume.JobField)
	if err != nil {
		return fmt.Errorf("insert resume for user %d: %w", resume.UserID, err)
	}
	resume.ID = id
	return nil
}

func (s *Store) GetResume(ctx context.Context, id int64) (*models.Resume, error) {
	return s.scanResume(s.db.QueryRowContext(ctx, s.rebind(
		`SELECT `+resumeColumns+` FROM resumes WHERE id = ?`), id))
}

func (s *Store) FindResumeByHash(ctx context.Context, userID int64, textHash string) (*models.Resume, error) {
	return s.scanResume(s.db.QueryRowContext(ctx, s.rebind(
		`SELECT `+resumeColumns+` FROM resumes WHERE user_id = ? AND text_hash = ? ORDER BY id LIMIT 1`),
		userID, textHash))
}

func (s *Store) LatestResumeByUser(ctx context.Context, userID int64) (*models.Resume, error) {
	return s.scanResume(s.db.QueryRowContext(ctx, s.rebind(
		`SELECT `+resumeColumns+` FROM resumes WHERE user_id = ? ORDER BY uploaded_at DESC, id DESC LIMIT 1`),
		userID))
}

func (s *Store) CountResumesByField(ctx context.Context, jobField string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, s.rebind(
		`SELECT COUNT(*) FROM resumes WHERE job_field = ?`), jobField).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count resumes for field %q: %w", jobField, err)
	}
	return n, nil
}

// RandomUnswipedResume implements the swipe deck: a uniformly random resume
// in the field that this recruiter has not judged yet.
func (s *Store) RandomUnswipedResume(ctx context.Context, jobField string, recruiterID int64) (*models.Resume, error) {
	return s.scanResume(s.db.QueryRowContext(ctx, s.rebind(
		`SELECT `+resumeColumns+` FROM resumes
		 WHERE job_field = ?
		   AND id NOT IN (SELECT resume_id FROM swipes WHERE user_id = ?)
		 ORDER BY RANDOM() LIMIT 1`),
		jobField, recruiterID))
}

func (s *Store) scanResume(row *sql.Row) (*models.Resume, error) {
	var r models.Resume
	err := row.Scan(&r.ID, &r.UserID, &r.Filename, &r.Text, &r.TextHash, &r.JobField, &r.UploadedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan resume row: %w", err)
	}
	return &r, nil
}
