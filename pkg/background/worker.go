package background

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/vidyarathna/order-workflow-api/pkg/logger"

	"golang.org/x/sync/errgroup"
)

// Task определяет интерфейс для фоновых задач, которые могут выполняться периодически.
type Task interface {
	// TTL возвращает интервал между выполнениями задачи.
	TTL() time.Duration

	// Do выполняет логику задачи.
	Do(context.Context) error

	// Info возвращает читаемое описание задачи для логгирования и отладки.
	Info() string
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

// Worker управляет выполнением набора фоновых задач.
type Worker struct {
	log   handlerLogger
	tasks []Task
}

// New создает и запускает Worker для выполнения фоновых задач.
//
// Все задачи сначала выполняются синхронно один раз ("прогрев"): ошибки
// инициализации возвращаются немедленно и Worker не создается. Дальше
// каждая задача крутится в своей горутине по тикеру TTL, пока не будет
// отменен переданный контекст.
func New(ctx context.Context, log handlerLogger, tasks []Task) (*Worker, error) {
	worker := &Worker{
		log:   log,
		tasks: tasks,
	}
	if len(tasks) == 0 {
		return worker, nil
	}

	initGroup, initCtx := errgroup.WithContext(ctx)
	for _, task := range tasks {
		initGroup.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					stack := debug.Stack()
					err = fmt.Errorf("init panic: %v\n%s", r, stack)
					log.Error("Task panic during init",
						logger.NewField("task", task.Info()),
						logger.NewField("recover", r),
						logger.NewField("stack", stack),
					)
				}
			}()
			log.Info("Initializing",
				logger.NewField("task", task.Info()),
			)
			return task.Do(initCtx)
		})
	}

	if err := initGroup.Wait(); err != nil {
		return nil, fmt.Errorf("failed to initialize tasks: %w", err)
	}

	for _, task := range tasks {
		go worker.runBackgroundTask(ctx, task)
	}

	return worker, nil
}

func (w *Worker) runBackgroundTask(ctx context.Context, task Task) {
	ttl := task.TTL()
	if ttl <= 0 {
		w.log.Warn("invalid TTL, skipping periodic execution",
			logger.NewField("task", task.Info()),
			logger.NewField("TTL", ttl),
		)
		return
	}
	w.log.Info("Starting periodic execution",
		logger.NewField("task", task.Info()),
		logger.NewField("TTL", ttl),
	)

	ticker := time.NewTicker(ttl)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Info("Stopping task (context cancelled)",
				logger.NewField("task", task.Info()),
			)
			return
		case <-ticker.C:
			w.executeTaskSafely(ctx, task)
		}
	}
}

func (w *Worker) executeTaskSafely(ctx context.Context, task Task) {
	defer func() {
		if r := recover(); r != nil {
			w.log.Error("Background task panic",
				logger.NewField("task", task.Info()),
				logger.NewField("recover", r),
				logger.NewField("stack", debug.Stack()),
			)
		}
	}()

	if err := task.Do(ctx); err != nil {
		w.log.Error("Background task failed",
			logger.NewField("task", task.Info()),
			logger.NewField("error", err),
		)
	}
}
