package worker

import (
	"sync"
	"time"
)

// tickLoop - общий жизненный цикл воркеров: tick по таймеру до Stop.
// Каналы создаются на каждый Start, поэтому после Stop воркер можно запустить снова.
type tickLoop struct {
	interval  time.Duration
	immediate bool
	tick      func()

	mu       sync.Mutex
	stopChan chan struct{}
	done     chan struct{}
}

func newTickLoop(interval time.Duration, immediate bool, tick func()) *tickLoop {
	return &tickLoop{interval: interval, immediate: immediate, tick: tick}
}

// start возвращает false, если цикл уже запущен
func (l *tickLoop) start() bool {
	l.mu.Lock()
	if l.stopChan != nil {
		l.mu.Unlock()
		return false
	}
	stop, done := make(chan struct{}), make(chan struct{})
	l.stopChan, l.done = stop, done
	l.mu.Unlock()

	if l.immediate {
		l.tick()
	}
	go l.run(stop, done)
	return true
}

// stop возвращает false, если цикл не был запущен; иначе ждёт выхода из run
func (l *tickLoop) stop() bool {
	l.mu.Lock()
	stop, done := l.stopChan, l.done
	l.stopChan, l.done = nil, nil
	l.mu.Unlock()

	if stop == nil {
		return false
	}
	close(stop)
	<-done
	return true
}

func (l *tickLoop) running() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.stopChan != nil
}

func (l *tickLoop) run(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			l.tick()
		case <-stop:
			return
		}
	}
}
