// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package turn

import (
	"context"
	"log"
	"sync"

	"github.com/jeranaias/localbot/internal/tasks"
	"github.com/jeranaias/localbot/internal/transcript"
	"github.com/jeranaias/localbot/internal/util"
)

// defaultEventBuffer keeps background units from blocking on a busy UI.
const defaultEventBuffer = 64

// Options configures a Controller.
type Options struct {
	// MaxPromptRunes truncates prompts before generation; 0 disables it.
	MaxPromptRunes int
	// EventBuffer is the capacity of the event channel.
	EventBuffer int
	// MaxHistory bounds how many finished requests the tracker remembers.
	MaxHistory int
}

// Controller owns the conversation log and spawns one background unit per
// submitted message.
type Controller struct {
	log     *transcript.Log
	gen     Generator
	tracker *tasks.Tracker
	events  chan Event
	opts    Options

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewController creates a controller appending to log and generating with gen.
func NewController(log *transcript.Log, gen Generator, opts Options) *Controller {
	if opts.EventBuffer <= 0 {
		opts.EventBuffer = defaultEventBuffer
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Controller{
		log:     log,
		gen:     gen,
		tracker: tasks.NewTracker(opts.MaxHistory),
		events:  make(chan Event, opts.EventBuffer),
		opts:    opts,
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Log returns the conversation log.
func (c *Controller) Log() *transcript.Log {
	return c.log
}

// Events returns the channel background units report on. It is never closed.
func (c *Controller) Events() <-chan Event {
	return c.events
}

// Pending returns the number of turns still awaiting a reply.
func (c *Controller) Pending() int {
	return c.tracker.Pending()
}

// Tracker exposes the pending request records.
func (c *Controller) Tracker() *tasks.Tracker {
	return c.tracker
}

// Submit starts a turn for text. It must be called on the UI goroutine.
// An empty message is ignored: nothing is appended and no unit starts.
// Returns the turn ID and whether a turn was started.
func (c *Controller) Submit(text string) (string, bool) {
	if text == "" {
		return "", false
	}

	c.log.AppendUser(text)

	task := tasks.NewTask(util.ClampRunes(text, c.opts.MaxPromptRunes))
	ctx := c.tracker.Start(c.ctx, task)

	c.wg.Add(1)
	go c.run(ctx, task)

	log.Printf("TURN_SUBMITTED | id=%s pending=%d", task.ID, c.tracker.Pending())
	return task.ID, true
}

// run is the background unit for one turn.
func (c *Controller) run(ctx context.Context, task *tasks.Task) {
	defer c.wg.Done()

	c.send(Event{TurnID: task.ID, Kind: EventStatus, Text: transcript.ThinkingText})

	reply, err := c.gen.Generate(ctx, task.Prompt)
	c.tracker.Finish(task, err)
	if err != nil {
		log.Printf("TURN_FAILED | %s error=%v", task.Summary(), err)
		c.send(Event{TurnID: task.ID, Kind: EventFailure, Err: err})
		return
	}

	log.Printf("TURN_DONE | %s", task.Summary())
	c.send(Event{TurnID: task.ID, Kind: EventReply, Text: reply})
}

// send delivers ev unless the controller is shutting down.
func (c *Controller) send(ev Event) {
	select {
	case c.events <- ev:
	case <-c.ctx.Done():
	}
}

// Apply records ev in the log. It must be called on the UI goroutine.
// Status and Reply events append an entry. A Failure event appends
// nothing and returns a *GenerationError for the caller to display.
func (c *Controller) Apply(ev Event) error {
	switch ev.Kind {
	case EventStatus:
		c.log.AppendStatus(ev.Text)
	case EventReply:
		c.log.AppendBot(ev.Text)
	case EventFailure:
		return &GenerationError{TurnID: ev.TurnID, Cause: ev.Err}
	}
	return nil
}

// Wait blocks until every started background unit has returned.
func (c *Controller) Wait() {
	c.wg.Wait()
}

// Close cancels in-flight turns and waits for their units to exit.
// Turns are never cancelled otherwise.
func (c *Controller) Close() {
	if n := c.tracker.CancelAll(); n > 0 {
		log.Printf("TURN_SHUTDOWN | cancelled=%d", n)
	}
	c.cancel()
	c.wg.Wait()
}
