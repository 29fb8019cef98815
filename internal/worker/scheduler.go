package worker

import (
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

// Worker - фоновая задача с собственным циклом
type Worker interface {
	Start()
	Stop()
}

// Scheduler запускает воркеры параллельно и останавливает их в обратном порядке
type Scheduler struct {
	mu          sync.Mutex
	workers     []Worker
	starting    sync.WaitGroup
	running     bool
	stopTimeout time.Duration
}

func NewScheduler() *Scheduler {
	return &Scheduler{stopTimeout: 10 * time.Second}
}

func (s *Scheduler) AddWorker(w Worker) {
	s.mu.Lock()
	s.workers = append(s.workers, w)
	s.mu.Unlock()
}

func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}
	s.running = true

	log.WithField("workers", len(s.workers)).Info("Запуск планировщика")
	// Start воркера может сразу выполнить первый прогон, поэтому не ждём его
	for _, w := range s.workers {
		s.starting.Add(1)
		go func(w Worker) {
			defer s.starting.Done()
			w.Start()
		}(w)
	}
}

func (s *Scheduler) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	workers := append([]Worker(nil), s.workers...)
	s.mu.Unlock()

	log.Info("Остановка планировщика...")

	done := make(chan struct{})
	go func() {
		defer close(done)
		s.starting.Wait()
		for i := len(workers) - 1; i >= 0; i-- {
			workers[i].Stop()
		}
	}()

	select {
	case <-done:
		log.Info("Планировщик остановлен")
	case <-time.After(s.stopTimeout):
		log.WithField("timeout", s.stopTimeout).Warn("Таймаут остановки планировщика")
	}
}

func (s *Scheduler) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}
