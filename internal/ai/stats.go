package ai

import (
	"sort"
	"sync"
	"time"
)

// CallStats keeps a rolling window of AI call latencies. It is the session
// observability sink: every call records here whether it succeeded or not.
type CallStats struct {
	mu      sync.Mutex
	samples []callSample
	maxAge  time.Duration
}

type callSample struct {
	at time.Time
	ms int64
}

// StatsSnapshot is a point-in-time aggregate of the rolling window.
type StatsSnapshot struct {
	Count int     `json:"count"`
	MinMs int64   `json:"min_ms"`
	MaxMs int64   `json:"max_ms"`
	AvgMs float64 `json:"avg_ms"`
	P50Ms float64 `json:"p50_ms"`
	P95Ms float64 `json:"p95_ms"`
	P99Ms float64 `json:"p99_ms"`
}

func NewCallStats(maxAge time.Duration) *CallStats {
	if maxAge <= 0 {
		maxAge = time.Hour
	}
	return &CallStats{
		samples: make([]callSample, 0, 128),
		maxAge:  maxAge,
	}
}

func (s *CallStats) Record(durationMs int64) {
	if durationMs < 0 {
		durationMs = 0
	}
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.pruneLocked(now)
	s.samples = append(s.samples, callSample{at: now, ms: durationMs})
}

func (s *CallStats) Snapshot() StatsSnapshot {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.pruneLocked(now)

	n := len(s.samples)
	if n == 0 {
		return StatsSnapshot{}
	}

	values := make([]int64, 0, n)
	var sum int64
	for _, sm := range s.samples {
		values = append(values, sm.ms)
		sum += sm.ms
	}
	sort.Slice(values, func(i, j int) bool { return values[i] < values[j] })

	return StatsSnapshot{
		Count: n,
		MinMs: values[0],
		MaxMs: values[n-1],
		AvgMs: float64(sum) / float64(n),
		P50Ms: percentile(values, 50),
		P95Ms: percentile(values, 95),
		P99Ms: percentile(values, 99),
	}
}

func (s *CallStats) pruneLocked(now time.Time) {
	cutoff := now.Add(-s.maxAge)
	w := 0
	for _, sm := range s.samples {
		if !sm.at.Before(cutoff) {
			s.samples[w] = sm
			w++
		}
	}
	s.samples = s.samples[:w]
}

// percentile linearly interpolates over sorted values.
func percentile(sorted []int64, pct float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if pct <= 0 {
		return float64(sorted[0])
	}
	if pct >= 100 {
		return float64(sorted[len(sorted)-1])
	}

	pos := (float64(len(sorted)-1) * pct) / 100.0
	lo := int(pos)
	hi := lo + 1
	if hi >= len(sorted) {
		return float64(sorted[lo])
	}
	frac := pos - float64(lo)
	return float64(sorted[lo]) + (float64(sorted[hi])-float64(sorted[lo]))*frac
}
