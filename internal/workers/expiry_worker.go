package workers

import (
	"context"
	"time"

	"upipay_backend/internal/logger"
	"upipay_backend/internal/services"
)

// ExpiryWorker sweeps pending transactions whose payment window has
// elapsed. It goes through the service layer rather than raw SQL so every
// expiry also reaches websocket subscribers.
type ExpiryWorker struct {
	transactionService services.TransactionService
	interval           time.Duration
}

func NewExpiryWorker(transactionService services.TransactionService, interval time.Duration) *ExpiryWorker {
	if interval <= 0 {
		interval = time.Minute
	}
	return &ExpiryWorker{
		transactionService: transactionService,
		interval:           interval,
	}
}

// Start launches the sweep loop in the background.
func (w *ExpiryWorker) Start(ctx context.Context) {
	go w.sweepLoop(ctx)
}

func (w *ExpiryWorker) sweepLoop(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Expiry worker stopped")
			return
		case <-ticker.C:
			expired, err := w.transactionService.ExpireStale()
			if err != nil {
				logger.Error("Expiry sweep failed", "error", err)
			} else if expired > 0 {
				logger.Info("Expired stale transactions", "count", expired)
			}
		}
	}
}
