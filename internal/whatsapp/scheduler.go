// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package whatsapp

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// Job is a scheduled unit of work. ctx is cancelled when the scheduler
// stops.
type Job func(ctx context.Context) error

// Scheduler runs one-shot jobs at a wall-clock hour and minute.
type Scheduler struct {
	cron *cron.Cron
	loc  *time.Location
	now  func() time.Time

	ctx    context.Context
	cancel context.CancelFunc

	mu       sync.Mutex
	pending  sync.WaitGroup
	count    int
	firstErr error
}

// ScheduledJob describes a registered one-shot job.
type ScheduledJob struct {
	ID   cron.EntryID
	Spec string
	Next time.Time
}

// NewScheduler creates and starts a scheduler in loc (time.Local if nil).
func NewScheduler(loc *time.Location) *Scheduler {
	if loc == nil {
		loc = time.Local
	}
	ctx, cancel := context.WithCancel(context.Background())
	s := &Scheduler{
		cron:   cron.New(cron.WithLocation(loc)),
		loc:    loc,
		now:    time.Now,
		ctx:    ctx,
		cancel: cancel,
	}
	s.cron.Start()
	return s
}

// Once registers job to run at the next hour:minute and removes the entry
// after it fires. Out-of-range values are rejected by the cron parser.
// The first job error is kept and returned by Wait.
func (s *Scheduler) Once(hour, minute int, job Job) (ScheduledJob, error) {
	spec := fmt.Sprintf("%d %d * * *", minute, hour)
	schedule, err := cron.ParseStandard(spec)
	if err != nil {
		return ScheduledJob{}, fmt.Errorf("%w: %02d:%02d: %v", ErrInvalidTime, hour, minute, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.pending.Add(1)
	s.count++

	var id cron.EntryID
	var fired sync.Once
	id = s.cron.Schedule(schedule, cron.FuncJob(func() {
		fired.Do(func() {
			s.mu.Lock()
			self := id
			s.mu.Unlock()

			s.cron.Remove(self)
			err := job(s.ctx)
			if err != nil {
				log.Printf("SCHEDULE_FAILED | id=%d error=%v", self, err)
			}
			s.done(err)
		})
	}))

	next := schedule.Next(s.now().In(s.loc))
	log.Printf("SCHEDULE_ADDED | id=%d spec=%q next=%s", id, spec, next.Format(time.RFC3339))
	return ScheduledJob{ID: id, Spec: spec, Next: next}, nil
}

func (s *Scheduler) done(err error) {
	s.mu.Lock()
	s.count--
	if err != nil && s.firstErr == nil {
		s.firstErr = err
	}
	s.mu.Unlock()
	s.pending.Done()
}

// Pending returns the number of jobs that have not fired yet.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count
}

// Wait blocks until every registered job has run or ctx is done. It
// returns the first error a job reported.
func (s *Scheduler) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.pending.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.mu.Lock()
		defer s.mu.Unlock()
		return s.firstErr
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop cancels running jobs and waits for them to return. Jobs that have
// not fired are dropped.
func (s *Scheduler) Stop() {
	s.cancel()
	<-s.cron.Stop().Done()
	if n := s.Pending(); n > 0 {
		log.Printf("SCHEDULE_DROPPED | pending=%d", n)
	}
}
