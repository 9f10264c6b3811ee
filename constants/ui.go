package constants

// Glyphs
const (
	PlayerChar       = '^'
	PlayerBulletChar = '|'
	EnemyBulletChar  = '*'
	EnemyChar        = 'E'
	BossChar         = 'B'
	BackgroundChar   = '.'
)

// Status and debug layout
const (
	// StatusRow is the row holding score, lives and elapsed time
	StatusRow = 0

	// DebugColumn is the left edge of the key and bullet readouts
	DebugColumn = GridWidth - 20

	// DebugKeyRow and DebugBulletRow place the debug readouts
	DebugKeyRow    = 0
	DebugBulletRow = 1

	// GameOverRow and GameOverColumn place the final score message
	GameOverRow    = GridHeight / 2
	GameOverColumn = GridWidth/2 - 5
)
