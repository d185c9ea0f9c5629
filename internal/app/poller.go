package app

import (
	"context"
	"sync"
	"time"

	"github.com/Freeeeeet/course_scheduler/internal/store"
	"go.uber.org/zap"
)

// DefaultPollInterval период опроса списка ожидающих курсов
const DefaultPollInterval = 60 * time.Second

// PendingCourseSync периодически обновляет список курсов, ожидающих
// планирования. Start делает немедленную выборку и взводит таймер;
// Stop только снимает таймер — запросы в полёте не отменяются,
// их результат всё равно заменит список целиком.
type PendingCourseSync struct {
	dispatcher store.Dispatcher
	interval   time.Duration
	logger     *zap.Logger

	mu       sync.Mutex
	enabled  bool
	stopChan chan struct{}
}

// NewPendingCourseSync создаёт синхронизатор. При interval <= 0
// используется DefaultPollInterval.
func NewPendingCourseSync(d store.Dispatcher, interval time.Duration, logger *zap.Logger) *PendingCourseSync {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &PendingCourseSync{
		dispatcher: d,
		interval:   interval,
		logger:     logger,
	}
}

// Start запускает опрос: немедленная выборка, затем тикер.
// Повторный Start при уже запущенном опросе ничего не делает.
func (p *PendingCourseSync) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.enabled {
		return
	}
	p.enabled = true
	p.stopChan = make(chan struct{})

	p.logger.Info("Pending course sync started",
		zap.Duration("interval", p.interval))

	p.dispatcher.Dispatch(store.LoadPendingCourses{})
	go p.run(ctx, p.stopChan)
}

// Stop снимает таймер опроса
func (p *PendingCourseSync) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled {
		return
	}
	p.enabled = false
	close(p.stopChan)

	p.logger.Info("Pending course sync stopped")
}

// Toggle переключает опрос: включение ведёт себя как Start,
// выключение — как Stop. Возвращает новое значение флага.
func (p *PendingCourseSync) Toggle(ctx context.Context) bool {
	if p.Enabled() {
		p.Stop()
		return false
	}
	p.Start(ctx)
	return true
}

// Enabled сообщает, взведён ли таймер опроса
func (p *PendingCourseSync) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled
}

func (p *PendingCourseSync) run(ctx context.Context, stop <-chan struct{}) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			p.dispatcher.Dispatch(store.LoadPendingCourses{})
		case <-stop:
			return
		case <-ctx.Done():
			p.logger.Info("Pending course sync cancelled")
			return
		}
	}
}
