package engine

import (
	"context"
	"testing"
	"time"

	"github.com/lixenwraith/ft-shmup/constants"
	"github.com/lixenwraith/ft-shmup/input"
)

// traceSystem records its name into a shared trace on every update
type traceSystem struct {
	name     string
	priority int
	trace    *[]string
	onUpdate func(ctx *GameContext)
}

func (s *traceSystem) Update(ctx *GameContext) {
	*s.trace = append(*s.trace, s.name)
	if s.onUpdate != nil {
		s.onUpdate(ctx)
	}
}

func (s *traceSystem) Priority() int { return s.priority }

// traceRenderer records frames into the shared trace
type traceRenderer struct {
	trace    *[]string
	gameOver int
}

func (r *traceRenderer) RenderFrame(ctx *GameContext) {
	*r.trace = append(*r.trace, "render")
}

func (r *traceRenderer) RenderGameOver(ctx *GameContext) {
	r.gameOver++
}

func newTracedScheduler(keys KeySource) (*Scheduler, *GameContext, *[]string, *traceRenderer) {
	trace := &[]string{}
	ctx, _ := NewTestGameContext(nil)
	renderer := &traceRenderer{trace: trace}
	s := NewScheduler(ctx, keys, renderer, constants.FrameInterval)
	s.SetSleeper(func(time.Duration) {})
	return s, ctx, trace, renderer
}

func TestTickOrder(t *testing.T) {
	s, _, trace, _ := newTracedScheduler(NewScriptedKeySource())

	// Registered out of order on purpose
	s.AddSystem(&traceSystem{name: "collision", priority: constants.PriorityCollision, trace: trace})
	s.AddSystem(&traceSystem{name: "cull", priority: constants.PriorityCull, trace: trace})
	s.AddSystem(&traceSystem{name: "input", priority: constants.PriorityInput, trace: trace})
	s.AddSystem(&traceSystem{name: "movement", priority: constants.PriorityMovement, trace: trace})
	s.AddSystem(&traceSystem{name: "spawn", priority: constants.PrioritySpawn, trace: trace})

	s.Tick()

	want := []string{"input", "spawn", "movement", "cull", "render", "collision"}
	if len(*trace) != len(want) {
		t.Fatalf("Expected %v, got %v", want, *trace)
	}
	for i := range want {
		if (*trace)[i] != want[i] {
			t.Errorf("stage %d: expected %s, got %s", i, want[i], (*trace)[i])
		}
	}
}

func TestTickRecordsKey(t *testing.T) {
	s, ctx, _, _ := newTracedScheduler(NewScriptedKeySource(input.KeyUp))

	s.Tick()
	if ctx.LastKey != input.KeyUp {
		t.Errorf("Expected KeyUp, got %d", ctx.LastKey)
	}
	s.Tick()
	if ctx.LastKey != input.KeyNone {
		t.Errorf("Expected KeyNone on empty poll, got %d", ctx.LastKey)
	}
	if ctx.TickCount != 2 {
		t.Errorf("Expected 2 ticks, got %d", ctx.TickCount)
	}
}

func TestQuitStillRunsRemainingStages(t *testing.T) {
	s, ctx, trace, renderer := newTracedScheduler(NewScriptedKeySource(input.KeyQuit))

	s.AddSystem(&traceSystem{name: "input", priority: constants.PriorityInput, trace: trace, onUpdate: func(ctx *GameContext) {
		if ctx.LastKey == input.KeyQuit {
			ctx.EndGame(EndReasonQuit)
		}
	}})
	s.AddSystem(&traceSystem{name: "movement", priority: constants.PriorityMovement, trace: trace})
	s.AddSystem(&traceSystem{name: "collision", priority: constants.PriorityCollision, trace: trace})

	s.Run(context.Background())

	want := []string{"input", "movement", "render", "collision"}
	if len(*trace) != len(want) {
		t.Fatalf("Expected exactly one full tick %v, got %v", want, *trace)
	}
	if ctx.TickCount != 1 {
		t.Errorf("Expected 1 tick, got %d", ctx.TickCount)
	}
	if renderer.gameOver != 1 {
		t.Errorf("Expected game over screen once, got %d", renderer.gameOver)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	s, ctx, trace, renderer := newTracedScheduler(NewScriptedKeySource())

	c, cancel := context.WithCancel(context.Background())
	ticks := 0
	s.AddSystem(&traceSystem{name: "counter", priority: constants.PriorityInput, trace: trace, onUpdate: func(*GameContext) {
		ticks++
		if ticks == 3 {
			cancel()
		}
	}})

	s.Run(c)

	if ticks != 3 {
		t.Errorf("Expected 3 ticks before cancel took effect, got %d", ticks)
	}
	if ctx.EndReason() != EndReasonInterrupted {
		t.Errorf("Expected interrupted, got %s", ctx.EndReason())
	}
	if renderer.gameOver != 1 {
		t.Errorf("Expected game over screen once, got %d", renderer.gameOver)
	}
}

func TestRunSleepsBetweenTicksAndHoldsOnExit(t *testing.T) {
	s, _, trace, _ := newTracedScheduler(NewScriptedKeySource())

	var sleeps []time.Duration
	s.SetSleeper(func(d time.Duration) { sleeps = append(sleeps, d) })

	ticks := 0
	s.AddSystem(&traceSystem{name: "counter", priority: constants.PriorityInput, trace: trace, onUpdate: func(ctx *GameContext) {
		ticks++
		if ticks == 2 {
			ctx.EndGame(EndReasonQuit)
		}
	}})

	s.Run(context.Background())

	want := []time.Duration{constants.FrameInterval, constants.FrameInterval, constants.GameOverHoldDuration}
	if len(sleeps) != len(want) {
		t.Fatalf("Expected sleeps %v, got %v", want, sleeps)
	}
	for i := range want {
		if sleeps[i] != want[i] {
			t.Errorf("sleep %d: expected %v, got %v", i, want[i], sleeps[i])
		}
	}
}
