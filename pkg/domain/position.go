package domain

import "fmt"

// Position identifies a cell by its row and column.
type Position struct {
	Row int `json:"row" yaml:"row" mapstructure:"row"`
	Col int `json:"col" yaml:"col" mapstructure:"col"`
}

// Pos is shorthand for Position{Row: row, Col: col}.
func Pos(row, col int) Position {
	return Position{Row: row, Col: col}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}
