package systems

import (
	"log"

	"github.com/lixenwraith/ft-shmup/constants"
	"github.com/lixenwraith/ft-shmup/engine"
	"github.com/lixenwraith/ft-shmup/entities"
	"github.com/lixenwraith/ft-shmup/vmath"
)

// SpawnSystem adds enemies at the right edge and the boss once the score allows it
type SpawnSystem struct{}

// NewSpawnSystem creates a new spawn system
func NewSpawnSystem() engine.System {
	return &SpawnSystem{}
}

// Priority returns the system's priority
func (s *SpawnSystem) Priority() int {
	return constants.PrioritySpawn
}

// Update rolls the enemy spawn and checks the boss gate
func (s *SpawnSystem) Update(ctx *engine.GameContext) {
	s.spawnEnemy(ctx)
	s.spawnBoss(ctx)
}

// spawnEnemy places an enemy on a random playfield row
// Roll order: spawn chance, scripted chance (only past the threshold), row
func (s *SpawnSystem) spawnEnemy(ctx *engine.GameContext) {
	if !vmath.Chance(ctx.Rand, constants.EnemySpawnChance) {
		return
	}

	scripted := ctx.Score >= constants.ScriptedEnemyScoreThreshold &&
		vmath.Chance(ctx.Rand, constants.ScriptedEnemyChance)
	row := ctx.Rand.Intn(constants.GridHeight-2) + constants.PlayfieldTop

	ctx.AddEnemy(entities.NewEnemy(constants.GridWidth-1, row, scripted))
}

// spawnBoss adds the single boss and awards the entry bonus
func (s *SpawnSystem) spawnBoss(ctx *engine.GameContext) {
	if ctx.Score < constants.BossScoreThreshold || ctx.HasBoss() {
		return
	}

	ctx.AddBoss(entities.NewBoss(constants.BossSpawnX, constants.BossSpawnY))
	ctx.AddScore(constants.BossSpawnBonus)
	log.Printf("boss spawned at score %d", ctx.Score)
}
