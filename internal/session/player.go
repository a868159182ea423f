package session

import (
	"log/slog"
	"sync"
	"time"
)

// Clock abstracts ticker creation so playback can be tested against a
// virtual clock.
type Clock interface {
	NewTicker(d time.Duration) Ticker
}

// Ticker is the subset of time.Ticker the player needs.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// RealClock tells real time.
type RealClock struct{}

func (RealClock) NewTicker(d time.Duration) Ticker {
	return &realTicker{t: time.NewTicker(d)}
}

type realTicker struct{ t *time.Ticker }

func (r *realTicker) C() <-chan time.Time { return r.t.C }
func (r *realTicker) Stop()               { r.t.Stop() }

// Player drives word-reveal playback for one session: one recurring timer,
// cancelled and recreated whenever the pace or play state changes, never
// overlapping ticks.
type Player struct {
	mu    sync.Mutex
	sess  *Session
	clock Clock
	log   *slog.Logger
	stop  chan struct{}
	done  chan struct{}
}

func NewPlayer(sess *Session, clock Clock, log *slog.Logger) *Player {
	return &Player{
		sess:  sess,
		clock: clock,
		log:   log,
	}
}

// Start launches the reveal loop at the session's configured pace, replacing
// any loop already running.
func (p *Player) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopLocked()

	interval := p.sess.Interval()
	if interval <= 0 {
		return
	}

	stop := make(chan struct{})
	done := make(chan struct{})
	p.stop = stop
	p.done = done

	ticker := p.clock.NewTicker(interval)
	go func() {
		defer close(done)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C():
				if finished := p.sess.Advance(); finished {
					p.log.Info("playback finished", "session_id", p.sess.ID)
					return
				}
			}
		}
	}()
}

// Stop halts the reveal loop and waits for it to exit.
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopLocked()
}

func (p *Player) stopLocked() {
	if p.stop == nil {
		return
	}
	close(p.stop)
	<-p.done
	p.stop = nil
	p.done = nil
}

// Reschedule restarts the timer, picking up a changed pace. The timer's
// phase resets; the word position does not.
func (p *Player) Reschedule() {
	p.Start()
}
