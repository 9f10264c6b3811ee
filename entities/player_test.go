package entities

import (
	"testing"

	"github.com/lixenwraith/ft-shmup/constants"
	"github.com/lixenwraith/ft-shmup/input"
	"github.com/lixenwraith/ft-shmup/vmath"
)

func TestPlayerMovement(t *testing.T) {
	tests := []struct {
		name         string
		startX       int
		startY       int
		key          input.KeyCode
		wantX, wantY int
	}{
		{"Arrow up", 5, 12, input.KeyUp, 5, 11},
		{"W key", 5, 12, 'w', 5, 11},
		{"Arrow down", 5, 12, input.KeyDown, 5, 13},
		{"S key", 5, 12, 's', 5, 13},
		{"Arrow left", 5, 12, input.KeyLeft, 4, 12},
		{"A key", 5, 12, 'a', 4, 12},
		{"Arrow right", 5, 12, input.KeyRight, 6, 12},
		{"D key", 5, 12, 'd', 6, 12},
		{"No key", 5, 12, input.KeyNone, 5, 12},
		{"Unbound key", 5, 12, 'z', 5, 12},
		{"Fire does not move", 5, 12, input.KeyFire, 5, 12},
		{"Top clamp", 5, constants.PlayfieldTop, input.KeyUp, 5, constants.PlayfieldTop},
		{"Bottom clamp", 5, constants.GridHeight - 1, input.KeyDown, 5, constants.GridHeight - 1},
		{"Left clamp", 0, 12, input.KeyLeft, 0, 12},
		{"Right clamp", constants.PlayerMaxX, 12, input.KeyRight, constants.PlayerMaxX, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayer(tt.startX, tt.startY)
			p.Update(tt.key, vmath.NewSequenceRand())

			pos := p.Position()
			if pos.X != tt.wantX || pos.Y != tt.wantY {
				t.Errorf("Expected (%d, %d), got (%d, %d)", tt.wantX, tt.wantY, pos.X, pos.Y)
			}
		})
	}
}

func TestPlayerStaysInBoundsUnderSustainedInput(t *testing.T) {
	p := NewPlayer(constants.PlayerStartX, constants.PlayerStartY)
	keys := []input.KeyCode{input.KeyUp, input.KeyRight, input.KeyDown, input.KeyLeft}

	for _, key := range keys {
		for i := 0; i < constants.GridWidth; i++ {
			p.Update(key, nil)
			pos := p.Position()
			if pos.X < 0 || pos.X > constants.PlayerMaxX {
				t.Fatalf("x escaped clamp: %d", pos.X)
			}
			if pos.Y < constants.PlayfieldTop || pos.Y > constants.GridHeight-1 {
				t.Fatalf("y escaped clamp: %d", pos.Y)
			}
		}
	}
}

func TestPlayerTakeDamage(t *testing.T) {
	p := NewPlayer(constants.PlayerStartX, constants.PlayerStartY)
	if p.Lives() != constants.PlayerLives {
		t.Fatalf("Expected %d starting lives, got %d", constants.PlayerLives, p.Lives())
	}

	for i := 0; i < constants.PlayerLives+1; i++ {
		p.TakeDamage()
	}

	// No lower bound, the game loop ends the session instead
	if p.Lives() != -1 {
		t.Errorf("Expected lives -1, got %d", p.Lives())
	}
	if !p.Active() {
		t.Error("Player must stay active after damage")
	}
}

func TestPlayerRender(t *testing.T) {
	p := NewPlayer(3, 4)
	c := &recordingCanvas{}
	p.Render(c)

	if len(c.calls) != 1 {
		t.Fatalf("Expected 1 draw, got %d", len(c.calls))
	}
	if got := c.calls[0]; got.x != 3 || got.y != 4 || got.glyph != constants.PlayerChar {
		t.Errorf("Unexpected draw %+v", got)
	}
	if p.Kind() != KindPlayer {
		t.Errorf("Expected KindPlayer, got %v", p.Kind())
	}
}
