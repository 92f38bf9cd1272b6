package background

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/GorbunovIvan/e-commerce-platform-sub000/pkg/logger"
)

// Task - периодическая фоновая задача.
type Task interface {
	// TTL возвращает интервал между запусками.
	TTL() time.Duration

	// Do выполняет одну итерацию задачи.
	Do(context.Context) error

	// Info возвращает читаемое имя задачи для логов.
	Info() string
}

type workerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

// Worker гоняет набор фоновых задач по их интервалам.
type Worker struct {
	log   workerLogger
	tasks []Task
}

// New прогревает задачи и запускает их периодическое выполнение.
//
// Прогрев: каждая задача выполняется один раз синхронно, ошибка или
// паника на этом этапе валит New целиком - приложение не стартует
// с неработающей фоновой задачей. Дальше задачи крутятся в фоне
// до отмены контекста; ошибки итераций только логируются.
func New(ctx context.Context, log workerLogger, tasks []Task) (*Worker, error) {
	worker := &Worker{
		log:   log,
		tasks: tasks,
	}
	if len(tasks) == 0 {
		return worker, nil
	}

	initGroup, initCtx := errgroup.WithContext(ctx)
	for _, task := range tasks {
		task := task
		initGroup.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					stack := debug.Stack()
					err = fmt.Errorf("init panic: %v\n%s", r, stack)
					log.Error("task panic during warm-up",
						logger.NewField("task", task.Info()),
						logger.NewField("recover", r),
						logger.NewField("stack", stack),
					)
				}
			}()
			log.Info("warming up task",
				logger.NewField("task", task.Info()),
			)
			return task.Do(initCtx)
		})
	}

	if err := initGroup.Wait(); err != nil {
		return nil, fmt.Errorf("failed to initialize tasks: %w", err)
	}

	for _, task := range tasks {
		go worker.runPeriodically(ctx, task)
	}

	return worker, nil
}

func (w *Worker) runPeriodically(ctx context.Context, task Task) {
	ttl := task.TTL()
	if ttl <= 0 {
		w.log.Warn("invalid TTL, skipping periodic execution",
			logger.NewField("task", task.Info()),
			logger.NewField("TTL", ttl),
		)
		return
	}
	w.log.Info("starting periodic execution",
		logger.NewField("task", task.Info()),
		logger.NewField("TTL", ttl),
	)

	ticker := time.NewTicker(ttl)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Warn("stopping task, context cancelled",
				logger.NewField("task", task.Info()),
			)
			return
		case <-ticker.C:
			w.runOnce(ctx, task)
		}
	}
}

func (w *Worker) runOnce(ctx context.Context, task Task) {
	defer func() {
		if r := recover(); r != nil {
			stack := debug.Stack()

			w.log.Error("background task panic",
				logger.NewField("task", task.Info()),
				logger.NewField("recover", r),
				logger.NewField("stack", stack),
			)
		}
	}()

	if err := task.Do(ctx); err != nil {
		w.log.Error("background task failed",
			logger.NewField("task", task.Info()),
			logger.NewField("error", err),
		)
	}
}
