package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	log "github.com/sirupsen/logrus"

	"resumemash/internal/services"
	"resumemash/internal/tasks"
)

// RetrainDeps holds what the retrain handler needs from the app.
type RetrainDeps struct {
	Trainer *services.TrainingService
}

// RegisterHandlers wires the worker's task handlers onto the mux.
func RegisterHandlers(mux *asynq.ServeMux, deps RetrainDeps) {
	mux.HandleFunc(tasks.TypeRetrainJob, HandleRetrainJob(deps))
}

// HandleRetrainJob runs a queued full retrain for one field. A skip for
// insufficient class diversity is a successful run (samples=0), not a task
// failure; only fetch/fit/persist errors make Asynq retry.
func HandleRetrainJob(deps RetrainDeps) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var payload tasks.RetrainPayload
		if err := json.Unmarshal(task.Payload(), &payload); err != nil {
			return fmt.Errorf("unmarshal retrain payload: %v: %w", err, asynq.SkipRetry)
		}
		if payload.JobField == "" {
			return fmt.Errorf("retrain payload has empty job field: %w", asynq.SkipRetry)
		}

		used, err := deps.Trainer.Train(ctx, payload.JobField)
		if err != nil {
			return fmt.Errorf("retrain field %q: %w", payload.JobField, err)
		}
		if used == 0 {
			log.Infof("Queued retrain for field %q skipped (no trainable data yet)", payload.JobField)
			return nil
		}
		log.Infof("Queued retrain for field %q completed on %d samples", payload.JobField, used)
		return nil
	}
}
