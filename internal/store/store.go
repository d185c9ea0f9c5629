package store

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Effect обработчик побочных действий. Вызывается в отдельной горутине после
// применения действия редьюсером; получает уже обновлённый снимок состояния.
// Единственный способ повлиять на состояние из эффекта — отправить
// следующее действие через Dispatcher.
type Effect func(ctx context.Context, action Action, state State, d Dispatcher)

// Dispatcher принимает действия в общую очередь
type Dispatcher interface {
	Dispatch(action Action)
}

// Store сериализованное хранилище состояния: единственная горутина-потребитель
// вычерпывает очередь действий и применяет редьюсер. Все мутации проходят
// через эту очередь, поэтому частично изменённое состояние снаружи не видно.
type Store struct {
	logger *zap.Logger

	mu    sync.RWMutex
	state State

	actions chan Action
	effects []Effect
	done    chan struct{}
}

// New создаёт хранилище с начальным состоянием
func New(initial State, logger *zap.Logger) *Store {
	return &Store{
		logger:  logger,
		state:   initial,
		actions: make(chan Action, 64),
		done:    make(chan struct{}),
	}
}

// RegisterEffect добавляет обработчик эффектов. Вызывать до Run.
func (s *Store) RegisterEffect(e Effect) {
	s.effects = append(s.effects, e)
}

// Run запускает цикл-потребитель. Блокируется до отмены контекста,
// поэтому обычно вызывается в отдельной горутине.
func (s *Store) Run(ctx context.Context) {
	s.logger.Info("Store loop started")
	defer close(s.done)

	for {
		select {
		case action := <-s.actions:
			s.apply(ctx, action)
		case <-ctx.Done():
			s.logger.Info("Store loop stopped")
			return
		}
	}
}

// Dispatch ставит действие в очередь. Порядок применения совпадает
// с порядком отправки.
func (s *Store) Dispatch(action Action) {
	select {
	case s.actions <- action:
	case <-s.done:
		s.logger.Warn("Dispatch after store stop, action dropped",
			zap.String("action", action.Type()))
	}
}

// State возвращает текущий снимок состояния. Снимок неизменяем:
// редьюсер заменяет срезы целиком и никогда не правит их на месте.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Done закрывается после остановки цикла
func (s *Store) Done() <-chan struct{} {
	return s.done
}

func (s *Store) apply(ctx context.Context, action Action) {
	s.mu.Lock()
	next := Reduce(s.state, action)
	s.state = next
	s.mu.Unlock()

	s.logger.Debug("Action applied", zap.String("action", action.Type()))

	// Эффекты работают вне цикла и возвращаются в него через Dispatch
	for _, effect := range s.effects {
		go effect(ctx, action, next, s)
	}
}
