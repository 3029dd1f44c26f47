// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package clock paces the frame loop and counts frames per second.
package clock

import (
	"context"
	"time"
)

// DefaultFPS is the target frame rate of the demo loop.
const DefaultFPS = 60

// Pacer blocks between frames so the loop runs at a fixed rate.
// A Pacer with a zero interval never blocks.
type Pacer struct {
	ticker   *time.Ticker
	interval time.Duration
}

// NewPacer creates a pacer for fps frames per second.
// fps <= 0 disables pacing.
func NewPacer(fps int) *Pacer {
	if fps <= 0 {
		return &Pacer{}
	}
	interval := time.Second / time.Duration(fps)
	return &Pacer{
		ticker:   time.NewTicker(interval),
		interval: interval,
	}
}

// Interval returns the frame interval, or 0 if pacing is disabled.
func (p *Pacer) Interval() time.Duration {
	return p.interval
}

// Wait blocks until the next tick or until ctx is done.
func (p *Pacer) Wait(ctx context.Context) error {
	if p.ticker == nil {
		return ctx.Err()
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-p.ticker.C:
		return nil
	}
}

// Stop releases the ticker.
func (p *Pacer) Stop() {
	if p.ticker != nil {
		p.ticker.Stop()
	}
}

// Counter counts frames and reports the rate once per window.
type Counter struct {
	window time.Duration
	start  time.Time
	frames int
}

// NewCounter creates a counter that reports once per second, starting at now.
func NewCounter(now time.Time) *Counter {
	return &Counter{window: time.Second, start: now}
}

// Tick records a frame at now. When at least one window has elapsed since
// the last report it returns the frame count of that window and true, and
// starts a new window.
func (c *Counter) Tick(now time.Time) (fps int, ok bool) {
	c.frames++
	if now.Sub(c.start) < c.window {
		return 0, false
	}
	fps = c.frames
	c.frames = 0
	c.start = now
	return fps, true
}
