package components

// ColorClass represents semantic color categories for rendering
// Renderers resolve these to concrete RGB values
type ColorClass uint8

const (
	ColorBackground ColorClass = iota
	ColorPlayer
	ColorPlayerBullet
	ColorEnemyBullet
	ColorEnemy
	ColorScriptedEnemy
	ColorBoss
	ColorStatus
	ColorDebug
	ColorGameOver
)
