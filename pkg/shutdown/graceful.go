// Package shutdown предоставляет функциональность для корректного завершения приложения
// путем ожидания и обработки сигналов SIGINT и SIGTERM.
package shutdown

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"go.uber.org/zap"

	"gametrades/pkg/logger"
)

// Hook - действие, выполняемое при завершении приложения.
type Hook func(context.Context) error

const (
	LogSignalReceived   = "shutdown signal received"
	LogContextCancelled = "shutdown requested by context cancellation"
	LogHookFailed       = "shutdown hook failed"
	LogHooksTimedOut    = "shutdown hooks did not finish in time"
)

// Wait блокирует выполнение до получения сигнала SIGINT или SIGTERM либо
// до отмены ctx, затем выполняет все хуки в рамках заданного timeout.
func Wait(ctx context.Context, timeout time.Duration, hooks ...Hook) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case sig := <-sigCh:
		logger.Log(ctx).Info(ctx, LogSignalReceived, zap.String("signal", sig.String()))
	case <-ctx.Done():
		logger.Log(ctx).Warn(ctx, LogContextCancelled, zap.Error(ctx.Err()))
	}

	RunHooks(ctx, timeout, hooks...)
}

// RunHooks параллельно выполняет хуки и ждет их завершения не дольше timeout.
// Возвращает false, если время ожидания истекло.
func RunHooks(ctx context.Context, timeout time.Duration, hooks ...Hook) bool {
	log := logger.Log(ctx)

	hookCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
	defer cancel()

	var wg sync.WaitGroup
	for _, hook := range hooks {
		wg.Add(1)
		go func(fn Hook) {
			defer wg.Done()
			if err := fn(hookCtx); err != nil {
				log.Error(ctx, LogHookFailed, zap.Error(err))
			}
		}(hook)
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return true
	case <-hookCtx.Done():
		log.Warn(ctx, LogHooksTimedOut, zap.Duration("timeout", timeout))
		return false
	}
}
