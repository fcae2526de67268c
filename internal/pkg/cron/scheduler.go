// Package cron drives the background jobs. Each registered job runs in its
// own goroutine on a fixed tick interval for the life of the process; the
// jobs themselves decide whether a given tick does any work.
package cron

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

type job struct {
	name     string
	interval time.Duration
	run      func(ctx context.Context) error
}

type Scheduler struct {
	jobs   []job
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	mu     sync.Mutex
}

func NewScheduler() *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		ctx:    ctx,
		cancel: cancel,
	}
}

// AddJob registers a job. Jobs added after Start are not picked up.
func (s *Scheduler) AddJob(name string, interval time.Duration, run func(ctx context.Context) error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.jobs = append(s.jobs, job{name: name, interval: interval, run: run})
	slog.Info("Registered cron job", "name", name, "interval", interval)
}

// Start launches every registered job. Each job fires once immediately, then
// on every interval tick until Stop.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, j := range s.jobs {
		s.wg.Add(1)
		go s.loop(j)
	}

	slog.Info("Cron scheduler started", "job_count", len(s.jobs))
}

// Stop cancels all jobs and waits for in-flight runs to finish.
func (s *Scheduler) Stop() {
	s.cancel()
	s.wg.Wait()
	slog.Info("Cron scheduler stopped")
}

// RunOnce fires every registered job a single time with the given context,
// bypassing the tick loop.
func (s *Scheduler) RunOnce(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, j := range s.jobs {
		if err := j.run(ctx); err != nil {
			slog.Error("Cron job failed", "name", j.name, "error", err)
		}
	}
}

func (s *Scheduler) loop(j job) {
	defer s.wg.Done()

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	s.execute(j)

	for {
		select {
		case <-s.ctx.Done():
			slog.Info("Cron job stopping", "name", j.name)
			return
		case <-ticker.C:
			s.execute(j)
		}
	}
}

func (s *Scheduler) execute(j job) {
	start := time.Now()
	if err := j.run(s.ctx); err != nil {
		slog.Error("Cron job failed", "name", j.name, "error", err, "duration", time.Since(start))
		return
	}
	slog.Debug("Cron job completed", "name", j.name, "duration", time.Since(start))
}
