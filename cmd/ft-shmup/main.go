package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/ft-shmup/constants"
	"github.com/lixenwraith/ft-shmup/engine"
	"github.com/lixenwraith/ft-shmup/render"
	"github.com/lixenwraith/ft-shmup/systems"
	"github.com/lixenwraith/ft-shmup/terminal"
	"github.com/lixenwraith/ft-shmup/vmath"
	"github.com/pkg/errors"
)

var (
	debugFlag     = flag.Bool("debug", false, "Write debug log to logs/ft-shmup.log")
	seedFlag      = flag.Int64("seed", 0, "Random seed, 0 picks one from the clock")
	colorModeFlag = flag.String("color", "auto", "Color mode: auto, truecolor, 256")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)

			// Print error and stack trace to stderr so it's visible after reset
			fmt.Fprintf(os.Stderr, "\n\x1b[31mFT-SHMUP CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	logFile := setupLogging(*debugFlag)

	ctx, err := run(*seedFlag, *colorModeFlag)
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "ft-shmup: %v\n", err)
		os.Exit(1)
	}

	// Terminal is restored by now, plain stdout is safe
	fmt.Println(sessionSummary(ctx))
}

// run owns the terminal for the whole session and releases it before returning
func run(seed int64, colorMode string) (*engine.GameContext, error) {
	if err := terminal.ApplyColorMode(colorMode); err != nil {
		return nil, errors.Wrap(err, "color mode")
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("seed=%d color=%s", seed, colorMode)

	term, err := terminal.New()
	if err != nil {
		return nil, errors.Wrap(err, "initialize terminal")
	}
	defer term.Fini()

	ctx := engine.NewGameContext(vmath.NewRand(seed), engine.NewMonotonicTimeProvider())
	scheduler := newScheduler(ctx, term, term.Screen())

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	scheduler.Run(sigCtx)
	return ctx, nil
}

// newScheduler wires the renderer and every gameplay system around ctx
func newScheduler(ctx *engine.GameContext, keys engine.KeySource, screen tcell.Screen) *engine.Scheduler {
	scheduler := engine.NewScheduler(ctx, keys, render.NewTerminalRenderer(screen), constants.FrameInterval)

	scheduler.AddSystem(systems.NewInputSystem())
	scheduler.AddSystem(systems.NewSpawnSystem())
	scheduler.AddSystem(systems.NewMovementSystem())
	scheduler.AddSystem(systems.NewCullSystem())
	scheduler.AddSystem(systems.NewCollisionSystem())

	return scheduler
}

// sessionSummary is printed once the terminal is released
func sessionSummary(ctx *engine.GameContext) string {
	return fmt.Sprintf("Game ended (%s). Score: %d, Time: %ds", ctx.EndReason(), ctx.Score, ctx.ElapsedSeconds())
}
