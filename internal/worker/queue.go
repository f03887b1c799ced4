// Package worker содержит очередь с единственным воркером.
// Задачи выполняются строго по одной, в порядке поступления.
package worker

import (
	"context"
	"errors"
	"fmt"

	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"
)

var (
	// ErrClosed очередь уже остановлена
	ErrClosed = errors.New("worker queue is closed")
	// ErrOverloaded ожидающих задач больше, чем разрешено
	ErrOverloaded = errors.New("worker queue is overloaded")
	// ErrTaskPanicked задача завершилась паникой
	ErrTaskPanicked = errors.New("worker task panicked")
)

// Queue Очередь с одним воркером поверх пула ants емкостью 1
type Queue struct {
	pool *ants.Pool
	log  *zap.Logger
}

// New создает очередь. maxWaiting ограничивает число ожидающих задач, 0 - без ограничения
func New(log *zap.Logger, maxWaiting int) (*Queue, error) {
	if log == nil {
		log = zap.NewNop()
	}

	pool, err := ants.NewPool(1,
		ants.WithMaxBlockingTasks(maxWaiting),
		ants.WithNonblocking(false),
	)
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}

	return &Queue{
		pool: pool,
		log:  log,
	}, nil
}

// Do выполняет fn на воркере и ждет завершения либо отмены ctx.
// Задача, чей ctx отменен до выхода на воркер, не выполняется.
// Уже запущенная задача доработает, но ее результат никто не ждет
func (q *Queue) Do(ctx context.Context, fn func()) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	done := make(chan error, 1)
	task := func() {
		defer func() {
			if r := recover(); r != nil {
				q.log.Error("worker task panicked", zap.Any("panic", r))
				done <- ErrTaskPanicked
			}
		}()

		if err := ctx.Err(); err != nil {
			done <- err
			return
		}
		fn()
		done <- nil
	}

	// Submit в блокирующем режиме ждет свободного воркера и не знает про ctx
	submitted := make(chan error, 1)
	go func() {
		submitted <- q.pool.Submit(task)
	}()

	select {
	case err := <-submitted:
		switch {
		case errors.Is(err, ants.ErrPoolClosed):
			return ErrClosed
		case errors.Is(err, ants.ErrPoolOverload):
			return ErrOverloaded
		case err != nil:
			return fmt.Errorf("submit task: %w", err)
		}
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Waiting количество задач, ожидающих свободного воркера
func (q *Queue) Waiting() int {
	return q.pool.Waiting()
}

// Release останавливает очередь. Новые задачи получат ErrClosed
func (q *Queue) Release() {
	q.pool.Release()
}
