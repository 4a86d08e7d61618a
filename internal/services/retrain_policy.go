package services

// DefaultRetrainThreshold retrains a field's model on every 10th swipe.
// Cadence follows data volume, not wall-clock time: ten new judgments is
// enough signal to be worth a refit, and anything per-swipe would be waste.
const DefaultRetrainThreshold = 10

// RetrainPolicy decides when a newly recorded swipe should trigger a full
// retrain for its field. The decision runs on the post-insert count, so the
// swipe that was just recorded counts toward the trigger.
type RetrainPolicy struct {
	Threshold int
}

// ShouldRetrain reports whether fieldSwipeCount (taken after the insert) is
// an exact positive multiple of the threshold.
func (p RetrainPolicy) ShouldRetrain(fieldSwipeCount int) bool {
	threshold := p.Threshold
	if threshold <= 0 {
		threshold = DefaultRetrainThreshold
	}
	return fieldSwipeCount > 0 && fieldSwipeCount%threshold == 0
}
