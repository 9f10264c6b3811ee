package engine

import (
	"log"
	"time"

	"github.com/lixenwraith/ft-shmup/constants"
	"github.com/lixenwraith/ft-shmup/entities"
	"github.com/lixenwraith/ft-shmup/input"
	"github.com/lixenwraith/ft-shmup/vmath"
)

// GameContext holds all session state, it is owned by the game loop goroutine
type GameContext struct {
	// Entity collections, pruned every tick
	Player  *entities.Player
	Bullets []*entities.Bullet
	Enemies []*entities.Enemy
	Bosses  []*entities.Boss

	Score int

	// Key read at the start of the current tick
	LastKey input.KeyCode

	// Random source for spawn and movement rolls
	Rand vmath.Rand

	TimeProvider TimeProvider
	StartTime    time.Time

	// Number of completed ticks
	TickCount uint64

	phase     Phase
	endReason EndReason
}

// NewGameContext creates a running session with the player at its start position
func NewGameContext(rng vmath.Rand, timeProvider TimeProvider) *GameContext {
	return &GameContext{
		Player:       entities.NewPlayer(constants.PlayerStartX, constants.PlayerStartY),
		Bullets:      make([]*entities.Bullet, 0),
		Enemies:      make([]*entities.Enemy, 0),
		Bosses:       make([]*entities.Boss, 0, 1),
		LastKey:      input.KeyNone,
		Rand:         rng,
		TimeProvider: timeProvider,
		StartTime:    timeProvider.Now(),
		phase:        PhaseRunning,
	}
}

// Phase returns the current session phase
func (g *GameContext) Phase() Phase { return g.phase }

// IsGameOver returns true once the session reached GAME_OVER
func (g *GameContext) IsGameOver() bool { return g.phase == PhaseGameOver }

// EndReason returns why the session ended, EndReasonNone while running
func (g *GameContext) EndReason() EndReason { return g.endReason }

// EndGame transitions to GAME_OVER, the first reason wins
func (g *GameContext) EndGame(reason EndReason) {
	if g.phase == PhaseGameOver {
		return
	}
	g.phase = PhaseGameOver
	g.endReason = reason
	log.Printf("game over: %s, score=%d tick=%d", reason, g.Score, g.TickCount)
}

// ElapsedSeconds returns whole seconds since session start
func (g *GameContext) ElapsedSeconds() int {
	return int(g.TimeProvider.Now().Sub(g.StartTime) / time.Second)
}

// AddScore adds points to the score
func (g *GameContext) AddScore(points int) {
	g.Score += points
}

// DamagePlayer removes a life and ends the session once none are left
func (g *GameContext) DamagePlayer(source entities.Kind) {
	g.Player.TakeDamage()
	log.Printf("player hit by %s, lives=%d", source, g.Player.Lives())
	if g.Player.Lives() <= 0 {
		g.EndGame(EndReasonLivesExhausted)
	}
}

// AddBullet appends a bullet to the live collection
func (g *GameContext) AddBullet(b *entities.Bullet) {
	g.Bullets = append(g.Bullets, b)
}

// AddEnemy appends an enemy to the live collection
func (g *GameContext) AddEnemy(e *entities.Enemy) {
	g.Enemies = append(g.Enemies, e)
}

// AddBoss appends a boss, callers check HasBoss first
func (g *GameContext) AddBoss(b *entities.Boss) {
	g.Bosses = append(g.Bosses, b)
}

// HasBoss reports whether the boss collection is occupied
// A boss killed during collision stays until the next prune and still blocks a respawn
func (g *GameContext) HasBoss() bool {
	return len(g.Bosses) > 0
}

// PlayerBulletCount returns the number of live player bullets
func (g *GameContext) PlayerBulletCount() int {
	n := 0
	for _, b := range g.Bullets {
		if b.Active() && b.FromPlayer() {
			n++
		}
	}
	return n
}
