package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hibiken/asynq"
	log "github.com/sirupsen/logrus"

	"resumemash/internal/tasks"
)

// AsynqJobClient is the concrete JobClient over an Asynq/redis queue.
var _ JobClient = (*AsynqJobClient)(nil)

type AsynqJobClient struct {
	client *asynq.Client
}

func NewAsynqJobClient(redisAddr, redisPassword string, redisDB int) *AsynqJobClient {
	cli := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     redisAddr,
		Password: redisPassword,
		DB:       redisDB,
	})
	return &AsynqJobClient{client: cli}
}

func (jc *AsynqJobClient) Close() error {
	return jc.client.Close()
}

// EnqueueRetrainJob queues a full retrain for jobField on the training
// queue. TaskID keyed by field deduplicates a burst of requests for the
// same field while one is still pending.
func (jc *AsynqJobClient) EnqueueRetrainJob(ctx context.Context, jobField string) error {
	payload, err := json.Marshal(tasks.RetrainPayload{JobField: jobField})
	if err != nil {
		return fmt.Errorf("marshal retrain payload: %w", err)
	}
	task := asynq.NewTask(tasks.TypeRetrainJob, payload)
	info, err := jc.client.EnqueueContext(ctx, task,
		asynq.Queue(tasks.QueueTraining),
		asynq.TaskID("retrain:"+jobField),
	)
	if err != nil {
		if errors.Is(err, asynq.ErrTaskIDConflict) {
			log.Infof("Retrain job for field %q already pending, not enqueueing another", jobField)
			return nil
		}
		return fmt.Errorf("enqueue retrain job for field %q: %w", jobField, err)
	}
	log.Infof("Enqueued retrain job for field %q (task id=%s, queue=%s)", jobField, info.ID, info.Queue)
	return nil
}
