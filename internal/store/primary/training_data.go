package primary

import (
	"context"
	"fmt"

	"resumemash/internal/models"
)

// LabeledExamples returns every (resume text, swipe label) pair for one job
// field, the full training set for that field's model. Order follows swipe
// id so two reads of unchanged data produce the same sequence.
func (s *Store) LabeledExamples(ctx context.Context, jobField string) ([]models.LabeledExample, error) {
	rows, err := s.db.QueryContext(ctx, s.rebind(
		`SELECT resumes.text, swipes.label
		 FROM swipes
		 JOIN resumes ON swipes.resume_id = resumes.id
		 WHERE resumes.job_field = ?
		 ORDER BY swipes.id`), jobField)
	if err != nil {
		return nil, fmt.Errorf("query labeled examples for field %q: %w", jobField, err)
	}
	defer rows.Close()

	var examples []models.LabeledExample
	for rows.Next() {
		var ex models.LabeledExample
		if err := rows.Scan(&ex.Text, &ex.Label); err != nil {
			return nil, fmt.Errorf("scan labeled example: %w", err)
		}
		examples = append(examples, ex)
	}
	return examples, rows.Err()
}
