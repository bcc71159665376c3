// Package common provides small shared utilities, currently stage timing for
// the verification pipeline.
package common

import (
	"fmt"
	"strings"
	"time"
)

// Stage is one named, timed step of a run.
type Stage struct {
	Name     string
	Duration time.Duration
}

// StageClock measures consecutive named stages. Each Mark records the time
// since the previous mark (or since creation for the first one).
type StageClock struct {
	start  time.Time
	last   time.Time
	stages []Stage
}

// NewStageClock creates a running stage clock.
func NewStageClock() *StageClock {
	now := time.Now()
	return &StageClock{start: now, last: now}
}

// Mark closes the current stage under the given name and returns its duration.
func (c *StageClock) Mark(name string) time.Duration {
	now := time.Now()
	d := now.Sub(c.last)
	c.last = now
	c.stages = append(c.stages, Stage{Name: name, Duration: d})
	return d
}

// Total returns the time elapsed since the clock was created.
func (c *StageClock) Total() time.Duration {
	return time.Since(c.start)
}

// Stages returns the recorded stages in order.
func (c *StageClock) Stages() []Stage {
	return c.stages
}

// Map returns the recorded stages keyed by name.
func (c *StageClock) Map() map[string]time.Duration {
	if len(c.stages) == 0 {
		return nil
	}
	m := make(map[string]time.Duration, len(c.stages))
	for _, s := range c.stages {
		m[s.Name] = s.Duration
	}
	return m
}

// String renders the stages as "name: duration" pairs.
func (c *StageClock) String() string {
	parts := make([]string, 0, len(c.stages))
	for _, s := range c.stages {
		parts = append(parts, fmt.Sprintf("%s: %v", s.Name, s.Duration))
	}
	return strings.Join(parts, ", ")
}
