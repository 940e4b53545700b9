package worker

import (
	"context"
	"sync"

	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/kaymick2/timebot/internal/rabbitmq/queue"
)

//go:generate mockgen -source=intake.go -destination=../mocks/worker/mock.go -package=mocks
type intakeQueue interface {
	Consume(ctx context.Context, out chan<- queue.CreateMessage, strategy retry.Strategy) error
}

type messageHandler interface {
	HandleMessage(ctx context.Context, msg queue.CreateMessage, strategy retry.Strategy)
}

// Intake feeds event creation requests from the intake queue to a pool of
// workers.
type Intake struct {
	queue   intakeQueue
	handler messageHandler
}

// NewIntake creates an intake over q dispatching to h.
func NewIntake(q intakeQueue, h messageHandler) *Intake {
	return &Intake{
		queue:   q,
		handler: h,
	}
}

// Run consumes the queue with workerCount workers until ctx is done.
func (i *Intake) Run(ctx context.Context, strategy retry.Strategy, workerCount int) {
	if workerCount < 1 {
		workerCount = 1
	}

	var wg sync.WaitGroup
	msgChan := make(chan queue.CreateMessage, workerCount*10)

	go func() {
		if err := i.queue.Consume(ctx, msgChan, strategy); err != nil {
			zlog.Logger.Error().Err(err).Msg("failed to consume intake messages")
		}
	}()

	wg.Add(workerCount)
	for n := 0; n < workerCount; n++ {
		go func(id int) {
			defer wg.Done()

			zlog.Logger.Printf("intake-worker-%d started", id)

			for {
				select {
				case <-ctx.Done():
					zlog.Logger.Printf("intake-worker-%d shutting down", id)
					return
				case msg, ok := <-msgChan:
					if !ok {
						zlog.Logger.Printf("intake-worker-%d channel closed, shutting down", id)
						return
					}

					i.handler.HandleMessage(ctx, msg, strategy)
				}
			}
		}(n)
	}

	<-ctx.Done()
	wg.Wait()
	zlog.Logger.Print("intake stopped")
}
