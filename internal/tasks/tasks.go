package tasks

// Task type constants for Asynq.

const (
	// TypeRetrainJob is the task type for a queued full retrain of one job
	// field's model. The every-Nth-swipe policy trains inline and never
	// enqueues; this path serves bulk imports and operator commands.
	TypeRetrainJob = "model:retrain"

	// QueueTraining is the queue retrain jobs land on.
	QueueTraining = "training"
)

// RetrainPayload is the JSON payload of a TypeRetrainJob task.
type RetrainPayload struct {
	JobField string `json:"job_field"`
}
