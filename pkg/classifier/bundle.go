package classifier

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Bundle pairs a fitted vectorizer with the classifier trained on its
// feature space. The two are only meaningful together, so they are stored
// and replaced as one unit. Version changes on every successful training
// run; scores are deterministic for a fixed version.
type Bundle struct {
	Version     uuid.UUID           `json:"version"`
	JobField    string              `json:"job_field"`
	TrainedAt   time.Time           `json:"trained_at"`
	SampleCount int                 `json:"sample_count"`
	Vectorizer  *Vectorizer         `json:"vectorizer"`
	Model       *LogisticRegression `json:"model"`
}

// NewBundle stamps a fitted vectorizer+model pair with a fresh version.
func NewBundle(jobField string, vec *Vectorizer, model *LogisticRegression, sampleCount int) *Bundle {
	return &Bundle{
		Version:     uuid.New(),
		JobField:    jobField,
		TrainedAt:   time.Now().UTC(),
		SampleCount: sampleCount,
		Vectorizer:  vec,
		Model:       model,
	}
}

// Score runs the full pipeline on raw text: P(Mash) in [0,1]. Text with no
// vocabulary overlap still scores (as the zero vector).
func (b *Bundle) Score(text string) float64 {
	return b.Model.PredictProba(b.Vectorizer.Transform(text))
}

// Marshal serialises the bundle for storage. JSON keeps float64 values
// exact on round-trip, so a reloaded bundle scores bit-identically.
func (b *Bundle) Marshal() ([]byte, error) {
	data, err := json.Marshal(b)
	if err != nil {
		return nil, fmt.Errorf("marshal model bundle: %w", err)
	}
	return data, nil
}

// UnmarshalBundle is the inverse of Marshal. It rejects artifacts missing
// either fitted half, since a partial bundle must never be treated as valid.
func UnmarshalBundle(data []byte) (*Bundle, error) {
	var b Bundle
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("unmarshal model bundle: %w", err)
	}
	if b.Vectorizer == nil || b.Model == nil {
		return nil, fmt.Errorf("model bundle for %q is incomplete", b.JobField)
	}
	return &b, nil
}
