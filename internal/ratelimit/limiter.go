// Package ratelimit implements the in-memory request limiter guarding the
// tool surface: two independent sliding windows, one per minute and one per
// hour. A limit of zero disables its window.
package ratelimit

import (
	"fmt"
	"sync"
	"time"
)

type Limiter struct {
	perMinute int
	perHour   int

	mu          sync.Mutex
	minuteCalls []time.Time
	hourCalls   []time.Time

	now func() time.Time
}

func New(perMinute, perHour int) *Limiter {
	return &Limiter{
		perMinute: perMinute,
		perHour:   perHour,
		now:       time.Now,
	}
}

// Allow reports whether another call fits inside both windows, recording it
// when it does. On rejection the returned message names the exhausted limit.
func (l *Limiter) Allow() (bool, string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.minuteCalls = prune(l.minuteCalls, now.Add(-time.Minute))
	l.hourCalls = prune(l.hourCalls, now.Add(-time.Hour))

	if l.perMinute > 0 && len(l.minuteCalls) >= l.perMinute {
		return false, fmt.Sprintf("Rate limit exceeded: %d requests per minute", l.perMinute)
	}
	if l.perHour > 0 && len(l.hourCalls) >= l.perHour {
		return false, fmt.Sprintf("Rate limit exceeded: %d requests per hour", l.perHour)
	}

	l.minuteCalls = append(l.minuteCalls, now)
	l.hourCalls = append(l.hourCalls, now)
	return true, ""
}

// Usage returns how many calls currently occupy the minute and hour windows.
func (l *Limiter) Usage() (minute, hour int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.minuteCalls = prune(l.minuteCalls, now.Add(-time.Minute))
	l.hourCalls = prune(l.hourCalls, now.Add(-time.Hour))
	return len(l.minuteCalls), len(l.hourCalls)
}

// Limits returns the configured window thresholds.
func (l *Limiter) Limits() (perMinute, perHour int) {
	return l.perMinute, l.perHour
}

func prune(calls []time.Time, cutoff time.Time) []time.Time {
	kept := calls[:0]
	for _, t := range calls {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	return kept
}
