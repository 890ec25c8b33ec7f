package tasks

import (
	"planit-api/core/config"
	"planit-api/core/constants"

	"github.com/hibiken/asynq"
)

// Task type names
const (
	TypeSeatingSyncPoll = "seating:sync_poll"
	TypeSeatingAutosave = "seating:autosave"
)

var client *asynq.Client

// GetClient returns the shared asynq client
func GetClient() *asynq.Client {
	return client
}

func redisOpt(cfg config.RedisConfig) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}
}

// InitClient creates the shared task client
func InitClient(cfg config.RedisConfig) *asynq.Client {
	client = asynq.NewClient(redisOpt(cfg))
	return client
}

// NewServer creates the background worker server
func NewServer(cfg config.RedisConfig) *asynq.Server {
	return asynq.NewServer(redisOpt(cfg), asynq.Config{
		Concurrency: 4,
		Queues: map[string]int{
			constants.QueueSeating: 2,
			constants.QueueDefault: 1,
		},
	})
}

// NewScheduler creates the periodic task scheduler
func NewScheduler(cfg config.RedisConfig) *asynq.Scheduler {
	return asynq.NewScheduler(redisOpt(cfg), nil)
}
