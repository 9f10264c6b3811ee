package engine

import (
	"context"
	"log"
	"time"

	"github.com/lixenwraith/ft-shmup/constants"
)

// Scheduler drives the tick: input, update systems, render, post-render systems
// Ticks run synchronously on the caller goroutine, throttled by a fixed sleep
type Scheduler struct {
	ctx      *GameContext
	keys     KeySource
	renderer FrameRenderer

	systems    []System // Priority below constants.PriorityPostRender
	resolvers  []System // Priority at or above constants.PriorityPostRender
	interval   time.Duration
	holdOnExit time.Duration
	sleep      func(time.Duration)
}

// NewScheduler creates a scheduler ticking every interval
func NewScheduler(ctx *GameContext, keys KeySource, renderer FrameRenderer, interval time.Duration) *Scheduler {
	return &Scheduler{
		ctx:        ctx,
		keys:       keys,
		renderer:   renderer,
		interval:   interval,
		holdOnExit: constants.GameOverHoldDuration,
		sleep:      time.Sleep,
	}
}

// SetSleeper replaces time.Sleep, used by tests to run without delays
func (s *Scheduler) SetSleeper(sleep func(time.Duration)) {
	s.sleep = sleep
}

// AddSystem registers a system in its phase, keeping priority order
func (s *Scheduler) AddSystem(system System) {
	if system.Priority() >= constants.PriorityPostRender {
		s.resolvers = insertByPriority(s.resolvers, system)
		return
	}
	s.systems = insertByPriority(s.systems, system)
}

// insertByPriority appends and bubbles the new system into place, equal priorities keep registration order
func insertByPriority(list []System, system System) []System {
	list = append(list, system)
	for i := len(list) - 1; i > 0 && list[i-1].Priority() > list[i].Priority(); i-- {
		list[i-1], list[i] = list[i], list[i-1]
	}
	return list
}

// Tick runs one full pass
// A quit during input still lets the remaining stages run, the loop exits on its next check
func (s *Scheduler) Tick() {
	s.ctx.LastKey = s.keys.PollKey()

	for _, system := range s.systems {
		system.Update(s.ctx)
	}

	s.renderer.RenderFrame(s.ctx)

	for _, system := range s.resolvers {
		system.Update(s.ctx)
	}

	s.ctx.TickCount++
}

// Run ticks until GAME_OVER or cancellation, then shows the game over screen
// Cancellation ends the session before the next tick starts
func (s *Scheduler) Run(ctx context.Context) {
	log.Printf("session start: %d systems, %d resolvers, interval=%v", len(s.systems), len(s.resolvers), s.interval)

	for !s.ctx.IsGameOver() {
		select {
		case <-ctx.Done():
			s.ctx.EndGame(EndReasonInterrupted)
			continue
		default:
		}

		s.Tick()
		s.sleep(s.interval)
	}

	s.renderer.RenderGameOver(s.ctx)
	s.sleep(s.holdOnExit)
}
