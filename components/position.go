package components

// PositionComponent is a cell coordinate on the grid, X is the column and Y the row
type PositionComponent struct {
	X, Y int
}

// Offset returns the position shifted by dx, dy
func (p PositionComponent) Offset(dx, dy int) PositionComponent {
	return PositionComponent{X: p.X + dx, Y: p.Y + dy}
}

// FootprintComponent is the rectangular cell region of a multi-cell entity
// The origin is the top-left cell
type FootprintComponent struct {
	Width, Height int
}

// Contains reports whether (px, py) lies inside the footprint anchored at origin
func (f FootprintComponent) Contains(origin PositionComponent, px, py int) bool {
	return px >= origin.X && px < origin.X+f.Width &&
		py >= origin.Y && py < origin.Y+f.Height
}
