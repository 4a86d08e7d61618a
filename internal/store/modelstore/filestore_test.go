package modelstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumemash/internal/store"
	"resumemash/pkg/classifier"
)

func testBundle(t *testing.T, field string) *classifier.Bundle {
	t.Helper()
	docs := []string{
		"golang kubernetes microservices",
		"golang grpc backend services",
		"florist arranging wedding bouquets",
		"barista espresso latte art",
	}
	labels := []int{1, 1, 0, 0}

	vec := classifier.NewVectorizer(0)
	X := vec.FitTransform(docs)
	model := classifier.NewLogisticRegression(0)
	require.NoError(t, model.Fit(X, labels, vec.NumFeatures()))
	return classifier.NewBundle(field, vec, model, len(docs))
}

func TestNewFileStoreCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "models")
	_, err := NewFileStore(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestNewFileStoreEmptyDir(t *testing.T) {
	_, err := NewFileStore("")
	assert.Error(t, err)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	fs, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	bundle := testBundle(t, "software")
	require.NoError(t, fs.Save(ctx, "software", bundle))

	loaded, err := fs.Load(ctx, "software")
	require.NoError(t, err)
	assert.Equal(t, bundle.Version, loaded.Version)
	assert.Equal(t, bundle.SampleCount, loaded.SampleCount)

	text := "golang engineer with kubernetes experience"
	assert.Equal(t, bundle.Score(text), loaded.Score(text))
}

func TestLoadMissingField(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	_, err = fs.Load(context.Background(), "finance")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestLoadCorruptArtifact(t *testing.T) {
	dir := t.TempDir()
	fs, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "model_design.json"), []byte("{broken"), 0o644))

	_, err = fs.Load(context.Background(), "design")
	require.Error(t, err)
	assert.NotErrorIs(t, err, store.ErrNotFound)
}

func TestSaveReplacesPreviousBundle(t *testing.T) {
	ctx := context.Background()
	fs, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	first := testBundle(t, "data")
	second := testBundle(t, "data")
	require.NoError(t, fs.Save(ctx, "data", first))
	require.NoError(t, fs.Save(ctx, "data", second))

	loaded, err := fs.Load(ctx, "data")
	require.NoError(t, err)
	assert.Equal(t, second.Version, loaded.Version)
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	fs, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, fs.Save(context.Background(), "marketing", testBundle(t, "marketing")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "model_marketing.json", entries[0].Name())
}

func TestFieldsDoNotCollide(t *testing.T) {
	ctx := context.Background()
	fs, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	a := testBundle(t, "software")
	b := testBundle(t, "finance")
	require.NoError(t, fs.Save(ctx, "software", a))
	require.NoError(t, fs.Save(ctx, "finance", b))

	gotA, err := fs.Load(ctx, "software")
	require.NoError(t, err)
	gotB, err := fs.Load(ctx, "finance")
	require.NoError(t, err)
	assert.Equal(t, a.Version, gotA.Version)
	assert.Equal(t, b.Version, gotB.Version)
}
