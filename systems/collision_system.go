package systems

import (
	"log"

	"github.com/lixenwraith/ft-shmup/constants"
	"github.com/lixenwraith/ft-shmup/engine"
	"github.com/lixenwraith/ft-shmup/entities"
	"github.com/lixenwraith/ft-shmup/vmath"
)

// CollisionSystem resolves contacts after the frame is drawn, using post-update positions
type CollisionSystem struct{}

// NewCollisionSystem creates a new collision system
func NewCollisionSystem() engine.System {
	return &CollisionSystem{}
}

// Priority returns the system's priority
func (s *CollisionSystem) Priority() int {
	return constants.PriorityCollision
}

// Update checks player damage first, then player bullets against enemies and bosses
func (s *CollisionSystem) Update(ctx *engine.GameContext) {
	s.checkPlayerContacts(ctx)
	s.checkPlayerBullets(ctx)
}

// checkPlayerContacts applies enemy rams, boss contact and enemy bullets to the player
func (s *CollisionSystem) checkPlayerContacts(ctx *engine.GameContext) {
	p := ctx.Player.Position()

	for _, e := range ctx.Enemies {
		if e.Active() && e.Position() == p {
			ctx.DamagePlayer(entities.KindEnemy)
		}
	}

	for _, b := range ctx.Bosses {
		if b.Active() && b.Collides(p.X, p.Y) {
			ctx.DamagePlayer(entities.KindBoss)
		}
	}

	for _, b := range ctx.Bullets {
		if b.Active() && !b.FromPlayer() && b.Position() == p {
			ctx.DamagePlayer(entities.KindBullet)
			b.Deactivate()
		}
	}
}

// checkPlayerBullets tests each live player bullet against every enemy, then the boss
// A bullet spent on an enemy still resolves the rest of its row and the boss footprint in the same pass
func (s *CollisionSystem) checkPlayerBullets(ctx *engine.GameContext) {
	for _, b := range ctx.Bullets {
		if !b.Active() || !b.FromPlayer() {
			continue
		}
		s.hitEnemies(ctx, b)
		s.hitBoss(ctx, b)
	}
}

// hitEnemies kills every enemy on the bullet's row within EnemyHitRange columns
func (s *CollisionSystem) hitEnemies(ctx *engine.GameContext, b *entities.Bullet) {
	bp := b.Position()
	for _, e := range ctx.Enemies {
		if !e.Active() {
			continue
		}
		ep := e.Position()
		if ep.Y != bp.Y || vmath.Abs(bp.X-ep.X) > constants.EnemyHitRange {
			continue
		}

		e.Deactivate()
		b.Deactivate()
		ctx.AddScore(constants.EnemyKillScore)
		log.Printf("hit enemy at (%d, %d), score=%d", bp.X, bp.Y, ctx.Score)
	}
}

// hitBoss damages every live boss whose footprint holds the bullet
func (s *CollisionSystem) hitBoss(ctx *engine.GameContext, b *entities.Bullet) {
	bp := b.Position()
	for _, boss := range ctx.Bosses {
		if !boss.Active() || !boss.Collides(bp.X, bp.Y) {
			continue
		}

		b.Deactivate()
		boss.TakeDamage()
		ctx.AddScore(constants.BossHitScore)
		log.Printf("hit boss at (%d, %d), health=%d score=%d", bp.X, bp.Y, boss.Health(), ctx.Score)
		if !boss.Active() {
			log.Printf("boss destroyed")
		}
	}
}
