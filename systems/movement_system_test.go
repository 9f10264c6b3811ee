package systems

import (
	"testing"

	"github.com/lixenwraith/ft-shmup/constants"
	"github.com/lixenwraith/ft-shmup/entities"
	"github.com/lixenwraith/ft-shmup/input"
)

func TestMovementSystemMovesPlayer(t *testing.T) {
	ctx, _ := newTestContext()
	start := ctx.Player.Position()

	ctx.LastKey = input.KeyUp
	NewMovementSystem().Update(ctx)

	if got := ctx.Player.Position(); got.Y != start.Y-1 || got.X != start.X {
		t.Errorf("Expected player at (%d, %d), got %+v", start.X, start.Y-1, got)
	}
}

func TestMovementSystemEnemyShoots(t *testing.T) {
	// Unscripted enemy: only the shoot roll is consumed
	ctx, rng := newTestContext(0)
	ctx.AddEnemy(entities.NewEnemy(40, 5, false))

	NewMovementSystem().Update(ctx)

	if len(ctx.Bullets) != 1 {
		t.Fatalf("Expected 1 enemy bullet, got %d", len(ctx.Bullets))
	}
	b := ctx.Bullets[0]
	if b.FromPlayer() {
		t.Error("Expected enemy bullet")
	}
	// Spawned one cell ahead of the moved enemy, not advanced this tick
	if b.Position().X != 38 || b.Position().Y != 5 {
		t.Errorf("Expected bullet at (38, 5), got %+v", b.Position())
	}
	if rng.Calls() != 1 {
		t.Errorf("Expected 1 roll, got %d", rng.Calls())
	}
}

func TestMovementSystemEnemyHoldsFire(t *testing.T) {
	ctx, _ := newTestContext(constants.EnemyShootChance)
	ctx.AddEnemy(entities.NewEnemy(40, 5, false))

	NewMovementSystem().Update(ctx)

	if len(ctx.Bullets) != 0 {
		t.Errorf("Expected no bullet, got %d", len(ctx.Bullets))
	}
}

func TestMovementSystemEnemyLeavingGridDoesNotShoot(t *testing.T) {
	ctx, rng := newTestContext(0)
	ctx.AddEnemy(entities.NewEnemy(0, 5, false))

	NewMovementSystem().Update(ctx)

	if ctx.Enemies[0].Active() {
		t.Fatal("Expected enemy off the left edge to deactivate")
	}
	if len(ctx.Bullets) != 0 || rng.Calls() != 0 {
		t.Error("Deactivated enemy must not roll or shoot")
	}
}

func TestMovementSystemEnemyAtLeftEdgeDropsShot(t *testing.T) {
	// Enemy moves from x=1 to x=0, a shot would land at x=-1
	ctx, rng := newTestContext(0)
	ctx.AddEnemy(entities.NewEnemy(1, 5, false))

	NewMovementSystem().Update(ctx)

	if !ctx.Enemies[0].Active() || ctx.Enemies[0].Position().X != 0 {
		t.Fatalf("Expected live enemy at x=0, got %+v", ctx.Enemies[0].Position())
	}
	if len(ctx.Bullets) != 0 {
		t.Errorf("Expected no off-grid bullet, got %+v", ctx.Bullets[0].Position())
	}
	if rng.Calls() != 1 {
		t.Errorf("Expected the shoot roll to be consumed, got %d calls", rng.Calls())
	}
}

func TestMovementSystemSkipsInactive(t *testing.T) {
	ctx, _ := newTestContext()
	live := entities.NewBullet(10, 5, true)
	dead := entities.NewBullet(20, 5, true)
	dead.Deactivate()
	ctx.AddBullet(live)
	ctx.AddBullet(dead)

	NewMovementSystem().Update(ctx)

	if live.Position().X != 11 {
		t.Errorf("Expected live bullet at x=11, got %d", live.Position().X)
	}
	if dead.Position().X != 20 {
		t.Errorf("Dead bullet moved to x=%d", dead.Position().X)
	}
}

func TestMovementSystemUpdatesBoss(t *testing.T) {
	ctx, _ := newTestContext()
	boss := entities.NewBoss(constants.BossSpawnX, constants.BossSpawnY)
	ctx.AddBoss(boss)

	NewMovementSystem().Update(ctx)

	if boss.Position().X != constants.BossSpawnX-1 {
		t.Errorf("Expected boss at x=%d, got %d", constants.BossSpawnX-1, boss.Position().X)
	}
}
