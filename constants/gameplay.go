package constants

// --- Player ---
const (
	// PlayerLives is the starting life count
	PlayerLives = 3

	// PlayerStartX is the spawn column of the player
	PlayerStartX = 5

	// PlayerStartY is the spawn row of the player
	PlayerStartY = GridHeight / 2

	// PlayerMaxX confines the player to the left quarter of the grid
	PlayerMaxX = GridWidth / 4
)

// --- Enemy ---
const (
	// EnemySpawnChance is the per-tick percent chance of a new enemy
	EnemySpawnChance = 15

	// ScriptedEnemyScoreThreshold is the score from which enemies may spawn scripted
	ScriptedEnemyScoreThreshold = 20

	// ScriptedEnemyChance is the percent chance a spawn is scripted once unlocked
	ScriptedEnemyChance = 50

	// ScriptedHomingChance is the per-tick percent chance a scripted enemy steps vertically
	ScriptedHomingChance = 30

	// ScriptedTargetRow is the row scripted enemies drift toward
	ScriptedTargetRow = 12

	// EnemyShootChance is the percent chance per CanShoot roll
	EnemyShootChance = 5

	// EnemyHitRange is the horizontal tolerance of a player bullet against an enemy
	EnemyHitRange = 1

	// EnemyKillScore is awarded for each destroyed enemy
	EnemyKillScore = 1
)

// --- Boss ---
const (
	// BossScoreThreshold is the score at which a boss appears
	BossScoreThreshold = 50

	// BossSpawnBonus is awarded when a boss spawns
	BossSpawnBonus = 10

	// BossHealth is the number of hits a boss absorbs
	BossHealth = 10

	// BossWidth and BossHeight define the boss footprint
	BossWidth  = 2
	BossHeight = 2

	// BossMinX keeps the boss in the right half of the grid
	BossMinX = GridWidth / 2

	// BossJitterChance is the per-tick percent chance of a vertical step
	BossJitterChance = 20

	// BossHitScore is awarded for each player bullet landing on the boss
	BossHitScore = 5

	// BossSpawnX and BossSpawnY are the boss entry position
	BossSpawnX = GridWidth - 2
	BossSpawnY = GridHeight / 2
)
