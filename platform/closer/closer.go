package closer

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

type Logger interface {
	Info(ctx context.Context, msg string, fields ...zap.Field)
	Error(ctx context.Context, msg string, fields ...zap.Field)
}

type namedFn struct {
	name string
	fn   func(ctx context.Context) error
}

type closer struct {
	mu     sync.Mutex
	once   sync.Once
	logger Logger
	funcs  []namedFn
}

var globalCloser = &closer{logger: noopLogger{}}

func SetLogger(l Logger) {
	globalCloser.mu.Lock()
	defer globalCloser.mu.Unlock()
	globalCloser.logger = l
}

func AddNamed(name string, fn func(ctx context.Context) error) {
	globalCloser.mu.Lock()
	defer globalCloser.mu.Unlock()
	globalCloser.funcs = append(globalCloser.funcs, namedFn{name: name, fn: fn})
}

// CloseAll runs registered functions in reverse registration order. Only the first call has effect.
func CloseAll(ctx context.Context) error {
	var result error
	globalCloser.once.Do(func() {
		globalCloser.mu.Lock()
		funcs := globalCloser.funcs
		globalCloser.funcs = nil
		log := globalCloser.logger
		globalCloser.mu.Unlock()

		var errs []error
		for i := len(funcs) - 1; i >= 0; i-- {
			f := funcs[i]
			if err := f.fn(ctx); err != nil {
				log.Error(ctx, "failed to close", zap.String("name", f.name), zap.Error(err))
				errs = append(errs, fmt.Errorf("%s: %w", f.name, err))
				continue
			}
			log.Info(ctx, "closed", zap.String("name", f.name))
		}
		result = errors.Join(errs...)
	})
	return result
}

type noopLogger struct{}

func (noopLogger) Info(context.Context, string, ...zap.Field)  {}
func (noopLogger) Error(context.Context, string, ...zap.Field) {}
