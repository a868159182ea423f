// Package session owns reading-session state. A session is created per
// upload, holds the segmented document and playback position, and is
// discarded when a new file is uploaded or the store's TTL passes. All state
// lives behind one mutex per session; nothing is ambient.
package session

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"github.com/jfaulds/pacereader/internal/segment"
)

// State is the playback state machine position.
type State string

const (
	StateIdle     State = "idle"
	StateReading  State = "reading"
	StatePaused   State = "paused"
	StateFinished State = "finished"
)

// Session is one reading session over a segmented document.
type Session struct {
	mu sync.Mutex

	ID       string
	Document *segment.Document

	WordGoal       int
	TargetWPM      int
	StartWordIndex int

	State            State
	CurrentWordIndex int
	WordsRead        int

	elapsed   time.Duration // accumulated reading time
	resumedAt time.Time     // nonzero while State == StateReading

	CreatedAt time.Time
	UpdatedAt time.Time
}

// New creates an idle session for a freshly segmented document.
func New(doc *segment.Document) *Session {
	now := time.Now()
	return &Session{
		ID:        newID(),
		Document:  doc,
		State:     StateIdle,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Start begins playback with the given goal and pace from startIndex.
func (s *Session) Start(wordGoal, targetWPM, startIndex int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if wordGoal <= 0 {
		return fmt.Errorf("word goal must be positive, got %d", wordGoal)
	}
	if targetWPM <= 0 {
		return fmt.Errorf("target wpm must be positive, got %d", targetWPM)
	}
	total := len(s.Document.Words)
	if total == 0 {
		return fmt.Errorf("document has no words to read")
	}
	if startIndex < 0 || startIndex >= total {
		return fmt.Errorf("start index %d out of range [0,%d)", startIndex, total)
	}

	s.WordGoal = wordGoal
	s.TargetWPM = targetWPM
	s.StartWordIndex = startIndex
	s.CurrentWordIndex = startIndex
	// Words before the chosen start position count as already read.
	s.WordsRead = startIndex
	s.State = StateReading
	s.elapsed = 0
	s.resumedAt = time.Now()
	s.touchLocked()
	return nil
}

// Pause freezes playback; a no-op unless currently reading.
func (s *Session) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.State != StateReading {
		return
	}
	s.elapsed += time.Since(s.resumedAt)
	s.resumedAt = time.Time{}
	s.State = StatePaused
	s.touchLocked()
}

// Resume continues a paused session.
func (s *Session) Resume() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.State != StatePaused {
		return fmt.Errorf("cannot resume from state %q", s.State)
	}
	s.State = StateReading
	s.resumedAt = time.Now()
	s.touchLocked()
	return nil
}

// Reset returns the session to idle from any state, clearing progress.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.State = StateIdle
	s.CurrentWordIndex = 0
	s.WordsRead = 0
	s.StartWordIndex = 0
	s.elapsed = 0
	s.resumedAt = time.Time{}
	s.touchLocked()
}

// Advance moves one word forward on a timer tick. Reaching the last word
// finishes the session. Returns true when the session is finished and the
// timer should stop.
func (s *Session) Advance() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.State != StateReading {
		return s.State == StateFinished
	}

	next := s.CurrentWordIndex + 1
	if next >= len(s.Document.Words) {
		s.elapsed += time.Since(s.resumedAt)
		s.resumedAt = time.Time{}
		s.State = StateFinished
		s.touchLocked()
		return true
	}
	s.CurrentWordIndex = next
	s.WordsRead = next
	s.touchLocked()
	return false
}

// Step moves the index by delta (±1) without touching the timer's phase.
func (s *Session) Step(delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case delta > 0:
		if s.CurrentWordIndex+1 >= len(s.Document.Words) {
			return
		}
		s.CurrentWordIndex++
		s.WordsRead++
	case delta < 0:
		if s.CurrentWordIndex == 0 {
			return
		}
		s.CurrentWordIndex--
		if s.WordsRead > 0 {
			s.WordsRead--
		}
	default:
		return
	}
	s.touchLocked()
}

// JumpToSection sets the start position to a detected section's first word.
// Only meaningful before playback starts.
func (s *Session) JumpToSection(sectionIndex int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.State != StateIdle {
		return fmt.Errorf("cannot change start position in state %q", s.State)
	}
	if sectionIndex < 0 || sectionIndex >= len(s.Document.Sections) {
		return fmt.Errorf("section index %d out of range [0,%d)", sectionIndex, len(s.Document.Sections))
	}
	s.StartWordIndex = s.Document.Sections[sectionIndex].StartIndex
	s.touchLocked()
	return nil
}

// Interval is the word-reveal period for the configured pace.
func (s *Session) Interval() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.TargetWPM <= 0 {
		return 0
	}
	return time.Minute / time.Duration(s.TargetWPM)
}

func (s *Session) touchLocked() {
	s.UpdatedAt = time.Now()
}

// Snapshot is a read-only, JSON-safe copy of session state.
type Snapshot struct {
	ID               string           `json:"sessionId"`
	State            State            `json:"state"`
	WordGoal         int              `json:"wordGoal"`
	TargetWPM        int              `json:"targetWPM"`
	StartWordIndex   int              `json:"startWordIndex"`
	CurrentWordIndex int              `json:"currentWordIndex"`
	CurrentWord      string           `json:"currentWord"`
	WordsRead        int              `json:"wordsRead"`
	TimeSpent        int              `json:"timeSpent"` // seconds
	ActualWPM        int              `json:"actualWPM"`
	ProgressPercent  float64          `json:"progressPercent"`
	Metadata         segment.Metadata `json:"metadata"`
}

// Snapshot returns a consistent copy of the session's observable state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	elapsed := s.elapsed
	if s.State == StateReading {
		elapsed += time.Since(s.resumedAt)
	}
	seconds := int(elapsed.Seconds())

	actualWPM := 0
	if elapsed > 0 {
		actualWPM = int(float64(s.WordsRead) / elapsed.Minutes())
	}

	progress := 0.0
	if s.WordGoal > 0 {
		progress = float64(s.WordsRead) / float64(s.WordGoal) * 100
		if progress > 100 {
			progress = 100
		}
	}

	var current string
	if s.CurrentWordIndex >= 0 && s.CurrentWordIndex < len(s.Document.Words) {
		current = s.Document.Words[s.CurrentWordIndex]
	}

	return Snapshot{
		ID:               s.ID,
		State:            s.State,
		WordGoal:         s.WordGoal,
		TargetWPM:        s.TargetWPM,
		StartWordIndex:   s.StartWordIndex,
		CurrentWordIndex: s.CurrentWordIndex,
		CurrentWord:      current,
		WordsRead:        s.WordsRead,
		TimeSpent:        seconds,
		ActualWPM:        actualWPM,
		ProgressPercent:  progress,
		Metadata:         s.Document.Metadata,
	}
}

// newID returns a random 20-hex-char session ID.
func newID() string {
	var b [10]byte
	rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
