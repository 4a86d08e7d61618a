package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/neurosnap/sentences"

	"resumemash/internal/models"
	"resumemash/internal/store"
)

// Score buckets for the human-readable verdict. Any collaborator rendering
// feedback must preserve this three-bucket split.
const (
	favorableThresholdPct = 80
	mixedThresholdPct     = 50
)

const (
	msgNoModel = "Our AI doesn't have enough recruiter swipe data yet to give " +
		"reliable feedback. Ask recruiters to swipe more resumes, then try again."
	msgFavorable = "Your resume currently scores very well. Recruiters whose swipes " +
		"trained this model tend to like resumes like yours."
	msgMixed = "Your resume is in a solid range, but there's room to improve. " +
		"Tighten bullets, quantify impact, and make sure your strongest " +
		"experiences and skills are front and center."
	msgNeedsWork = "Right now, the model predicts your resume might not perform as well " +
		"with recruiters. Focus on clearer structure, stronger action verbs, " +
		"and concrete numbers that show what you actually achieved."
)

const (
	previewSentences = 2
	previewMaxRunes  = 280
)

// Feedback is what a candidate sees for their latest resume: a preview, an
// integer percentage when a model exists, and a bucketed message.
type Feedback struct {
	ResumeID int64             `json:"resume_id"`
	Filename string            `json:"filename"`
	JobField string            `json:"job_field"`
	Preview  string            `json:"preview"`
	ScorePct *int              `json:"score_pct,omitempty"`
	Message  string            `json:"message"`
	Model    *models.ModelInfo `json:"model,omitempty"`
}

// FeedbackService maps a candidate's most recent resume through the scorer
// into presentation-ready feedback.
type FeedbackService struct {
	resumes   store.ResumeStore
	scorer    *ScoringService
	tokenizer *sentences.DefaultSentenceTokenizer
}

func NewFeedbackService(resumes store.ResumeStore, scorer *ScoringService) *FeedbackService {
	return &FeedbackService{
		resumes:   resumes,
		scorer:    scorer,
		tokenizer: sentences.NewSentenceTokenizer(nil),
	}
}

// ForCandidate builds feedback for userID's latest resume. models.ErrNotFound
// when the user never uploaded one. A scoring failure propagates so the
// caller can show "feedback temporarily unavailable" instead of a score.
func (s *FeedbackService) ForCandidate(ctx context.Context, userID int64) (*Feedback, error) {
	resume, err := s.resumes.LatestResumeByUser(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("%w: user %d has no resumes", models.ErrNotFound, userID)
	}
	if err != nil {
		return nil, err
	}

	fb := &Feedback{
		ResumeID: resume.ID,
		Filename: resume.Filename,
		JobField: resume.JobField,
		Preview:  s.preview(resume.Text),
	}

	result, err := s.scorer.Score(ctx, resume.Text, resume.JobField)
	if err != nil {
		return nil, err
	}
	if result == nil {
		// Cold start for this field; not an error.
		fb.Message = msgNoModel
		return fb, nil
	}

	pct := int(math.Round(result.Probability * 100))
	fb.ScorePct = &pct
	fb.Message = bucketMessage(pct)
	fb.Model = &models.ModelInfo{
		Version:     result.ModelVersion.String(),
		TrainedAt:   result.TrainedAt,
		SampleCount: result.SampleCount,
	}
	return fb, nil
}

// bucketMessage maps a percentage score onto the three feedback buckets.
func bucketMessage(pct int) string {
	switch {
	case pct >= favorableThresholdPct:
		return msgFavorable
	case pct >= mixedThresholdPct:
		return msgMixed
	default:
		return msgNeedsWork
	}
}

// preview returns the first sentences of the resume, capped in length.
func (s *FeedbackService) preview(text string) string {
	text = strings.TrimSpace(text)
	var parts []string
	for i, sent := range s.tokenizer.Tokenize(text) {
		if i >= previewSentences {
			break
		}
		parts = append(parts, strings.TrimSpace(sent.Text))
	}
	preview := strings.Join(parts, " ")
	if preview == "" {
		preview = text
	}
	runes := []rune(preview)
	if len(runes) > previewMaxRunes {
		preview = string(runes[:previewMaxRunes]) + "..."
	}
	return preview
}
