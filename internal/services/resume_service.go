package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"resumemash/internal/models"
	"resumemash/internal/store"
)

// UploadResumeParams carries one resume upload. Text is the already-extracted
// plain text; PDF parsing happens upstream of this service.
type UploadResumeParams struct {
	UserID   int64
	Filename string
	Text     string
	JobField string
}

// ResumeService owns resume ingestion and lookup.
type ResumeService struct {
	resumes store.ResumeStore
}

func NewResumeService(resumes store.ResumeStore) *ResumeService {
	return &ResumeService{resumes: resumes}
}

// UploadResume stores a resume, deduplicating identical text per user: a
// re-upload of the same content returns the existing record with existed=true
// instead of creating a second training row.
func (s *ResumeService) UploadResume(ctx context.Context, params UploadResumeParams) (*models.Resume, bool, error) {
	if params.UserID <= 0 {
		return nil, false, fmt.Errorf("%w: user id is required", models.ErrValidation)
	}
	text := strings.TrimSpace(params.Text)
	if text == "" {
		return nil, false, fmt.Errorf("%w: resume text is empty", models.ErrValidation)
	}
	jobField := params.JobField
	if jobField == "" {
		jobField = "unspecified"
	}
	if !models.IsKnownJobField(jobField) {
		return nil, false, fmt.Errorf("%w: unknown job field %q", models.ErrValidation, jobField)
	}

	sum := sha256.Sum256([]byte(text))
	textHash := hex.EncodeToString(sum[:])

	existing, err := s.resumes.FindResumeByHash(ctx, params.UserID, textHash)
	if err == nil {
		log.Debugf("Resume upload for user %d matched existing resume %d by hash", params.UserID, existing.ID)
		return existing, true, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, false, err
	}

	resume := &models.Resume{
		UserID:   params.UserID,
		Filename: params.Filename,
		Text:     text,
		TextHash: textHash,
		JobField: jobField,
	}
	if err := s.resumes.CreateResume(ctx, resume); err != nil {
		return nil, false, err
	}
	return resume, false, nil
}

// GetResume fetches one resume by id (models.ErrNotFound when missing).
func (s *ResumeService) GetResume(ctx context.Context, id int64) (*models.Resume, error) {
	resume, err := s.resumes.GetResume(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("%w: resume %d", models.ErrNotFound, id)
	}
	return resume, err
}
