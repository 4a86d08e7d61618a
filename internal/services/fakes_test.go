package services

import (
	"context"

	"resumemash/internal/models"
	"resumemash/internal/store"
	"resumemash/pkg/classifier"
)

// memModelStore is an in-memory store.ModelStore for service tests.
type memModelStore struct {
	bundles map[string]*classifier.Bundle
	saveErr error
	loadErr error
}

func newMemModelStore() *memModelStore {
	return &memModelStore{bundles: map[string]*classifier.Bundle{}}
}

func (m *memModelStore) Save(ctx context.Context, jobField string, bundle *classifier.Bundle) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.bundles[jobField] = bundle
	return nil
}

func (m *memModelStore) Load(ctx context.Context, jobField string) (*classifier.Bundle, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	b, ok := m.bundles[jobField]
	if !ok {
		return nil, store.ErrNotFound
	}
	return b, nil
}

// memDataStore serves a fixed set of labeled examples per field.
type memDataStore struct {
	examples map[string][]models.LabeledExample
	err      error
}

func (m *memDataStore) LabeledExamples(ctx context.Context, jobField string) ([]models.LabeledExample, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.examples[jobField], nil
}

// memResumeStore serves a single latest resume per user for feedback tests.
type memResumeStore struct {
	latest map[int64]*models.Resume
}

func (m *memResumeStore) CreateResume(ctx context.Context, resume *models.Resume) error { return nil }

func (m *memResumeStore) GetResume(ctx context.Context, id int64) (*models.Resume, error) {
	return nil, store.ErrNotFound
}

func (m *memResumeStore) FindResumeByHash(ctx context.Context, userID int64, textHash string) (*models.Resume, error) {
	return nil, store.ErrNotFound
}

func (m *memResumeStore) LatestResumeByUser(ctx context.Context, userID int64) (*models.Resume, error) {
	r, ok := m.latest[userID]
	if !ok {
		return nil, store.ErrNotFound
	}
	return r, nil
}

func (m *memResumeStore) CountResumesByField(ctx context.Context, jobField string) (int, error) {
	return len(m.latest), nil
}

func (m *memResumeStore) RandomUnswipedResume(ctx context.Context, jobField string, recruiterID int64) (*models.Resume, error) {
	return nil, store.ErrNotFound
}
