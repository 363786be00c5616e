package catalog

import (
	"context"
	"time"

	"github.com/go-co-op/gocron"
	"go.uber.org/zap"

	"github.com/country-explorer/internal/usecase"
	"github.com/country-explorer/internal/worker"
)

// refreshTimeout - потолок одного прохода ревалидации
const refreshTimeout = 2 * time.Minute

// RefreshWorker периодически перечитывает каталог стран от upstream в кеш,
// чтобы долгоживущий кеш не закисал
type RefreshWorker struct {
	*worker.BaseWorker

	catalogUC *usecase.CatalogUseCase
	scheduler *gocron.Scheduler
	interval  time.Duration
}

// NewRefreshWorker создает новый RefreshWorker
func NewRefreshWorker(
	catalogUC *usecase.CatalogUseCase,
	interval time.Duration,
	logger *zap.Logger,
) *RefreshWorker {
	return &RefreshWorker{
		BaseWorker: worker.NewBaseWorker("catalog-refresh", logger),
		catalogUC:  catalogUC,
		scheduler:  gocron.NewScheduler(time.UTC),
		interval:   interval,
	}
}

// Start запускает расписание ревалидации и блокируется до остановки
func (w *RefreshWorker) Start(ctx context.Context) error {
	w.Logger().Info("Starting catalog refresh worker",
		zap.Duration("interval", w.interval))

	// Первый прогрев сразу, далее по интервалу
	if _, err := w.scheduler.Every(w.interval).StartImmediately().Do(w.refresh); err != nil {
		return err
	}
	w.scheduler.StartAsync()

	select {
	case <-ctx.Done():
	case <-w.StopChan():
	}

	w.scheduler.Stop()
	return nil
}

func (w *RefreshWorker) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()

	start := time.Now()
	if err := w.catalogUC.Refresh(ctx); err != nil {
		w.Logger().Error("Catalog refresh failed", zap.Error(err))
		return
	}

	w.Logger().Info("Catalog refreshed",
		zap.Duration("took", time.Since(start)))
}
