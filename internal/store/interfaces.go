package store

import (
	"context"

	"resumemash/internal/models"
	"resumemash/pkg/classifier"
)

// --- User Store ---

type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUser(ctx context.Context, id int64) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}

// --- Resume Store ---

type ResumeStore interface {
	CreateResume(ctx context.Context, resume *models.Resume) error
	GetResume(ctx context.Context, id int64) (*models.Resume, error)
	// FindResumeByHash looks up an earlier upload of identical text by the
	// same user. ErrNotFound when there is none.
	FindResumeByHash(ctx context.Context, userID int64, textHash string) (*models.Resume, error)
	// LatestResumeByUser returns the most recent upload (newest uploaded_at,
	// then highest id). ErrNotFound when the user has no resumes.
	LatestResumeByUser(ctx context.Context, userID int64) (*models.Resume, error)
	CountResumesByField(ctx context.Context, jobField string) (int, error)
	// RandomUnswipedResume picks one resume in the field the recruiter has
	// not judged yet. ErrNotFound when the recruiter has seen them all.
	RandomUnswipedResume(ctx context.Context, jobField string, recruiterID int64) (*models.Resume, error)
}

// --- Swipe Store ---

type SwipeStore interface {
	CreateSwipe(ctx context.Context, swipe *models.Swipe) error
	// HasSwiped reports whether the recruiter already judged this resume.
	HasSwiped(ctx context.Context, resumeID, recruiterID int64) (bool, error)
	// CountSwipesByField counts all swipes whose target resume belongs to
	// jobField. This is the count the retrain policy runs on.
	CountSwipesByField(ctx context.Context, jobField string) (int, error)
	CountSwipesByFieldAndLabel(ctx context.Context, jobField string, label int) (int, error)
}

// --- Training Data ---

// TrainingDataStore supplies the trainer with the full swipe/resume join for
// one field. The trainer depends on nothing else from the database.
type TrainingDataStore interface {
	LabeledExamples(ctx context.Context, jobField string) ([]models.LabeledExample, error)
}

// --- Model Store ---

// ModelStore is the per-field slot holding the current fitted bundle.
// Save replaces the slot atomically with respect to Load: a concurrent
// reader sees the fully-old or fully-new bundle, never a mixture.
type ModelStore interface {
	Save(ctx context.Context, jobField string, bundle *classifier.Bundle) error
	// Load returns the current bundle, or ErrNotFound if none was ever
	// persisted for this field.
	Load(ctx context.Context, jobField string) (*classifier.Bundle, error)
}

// --- Job Client ---

// JobClient enqueues background jobs. Only operator-initiated full retrains
// go through here; the every-Nth-swipe policy trains inline.
type JobClient interface {
	EnqueueRetrainJob(ctx context.Context, jobField string) error
	Close() error
}
