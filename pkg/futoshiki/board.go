// Package futoshiki: board representation and parsing.
//
// A board of size n is given as n rows of 2n-1 tokens alternating cell
// values and inequality symbols, starting and ending on a cell value:
//
//	0 > 0 . 2 . 0 . 9 . 0 . 0 . 6 . 0
//
// A cell value is an integer in 0..n, 0 meaning blank. The symbol between
// two horizontally adjacent cells is ">", "<", or "." for no relation.
// Vertical adjacencies carry no symbols in this format.
package futoshiki

import (
	"fmt"
	"strconv"
	"strings"
)

// Symbol is the inequality relation between two horizontally adjacent cells.
type Symbol int

const (
	// SymNone marks adjacent cells with no inequality between them.
	SymNone Symbol = iota
	// SymGreater marks that the left cell must exceed the right cell.
	SymGreater
	// SymLess marks that the left cell must be below the right cell.
	SymLess
)

// String returns the symbol's board token.
func (s Symbol) String() string {
	switch s {
	case SymGreater:
		return ">"
	case SymLess:
		return "<"
	default:
		return "."
	}
}

// Board is a parsed, validated Futoshiki board.
type Board struct {
	n     int
	cells [][]int    // n x n, 0 = blank
	syms  [][]Symbol // n x (n-1), symbol between cells[r][c] and cells[r][c+1]
}

// Size returns the board dimension n.
func (b *Board) Size() int { return b.n }

// Cell returns the fixed value at (row, col), or 0 for a blank cell.
func (b *Board) Cell(row, col int) int { return b.cells[row][col] }

// SymbolAt returns the inequality between (row, col) and (row, col+1).
func (b *Board) SymbolAt(row, col int) Symbol { return b.syms[row][col] }

// ParseBoard builds a Board from n token rows of 2n-1 tokens each.
// It validates row lengths, token alternation, symbol spelling, and cell
// value range; encoders assume a board that passed this validation.
func ParseBoard(rows [][]string) (*Board, error) {
	n := len(rows)
	if n == 0 {
		return nil, fmt.Errorf("board: no rows")
	}
	b := &Board{
		n:     n,
		cells: make([][]int, n),
		syms:  make([][]Symbol, n),
	}
	for r, row := range rows {
		if len(row) != 2*n-1 {
			return nil, fmt.Errorf("board: row %d has %d tokens, expected %d", r, len(row), 2*n-1)
		}
		b.cells[r] = make([]int, n)
		b.syms[r] = make([]Symbol, n-1)
		for k, tok := range row {
			if k%2 == 0 {
				val, err := strconv.Atoi(tok)
				if err != nil {
					return nil, fmt.Errorf("board: row %d token %d: %q is not a cell value", r, k, tok)
				}
				if val < 0 || val > n {
					return nil, fmt.Errorf("board: row %d token %d: cell value %d out of range 0..%d", r, k, val, n)
				}
				b.cells[r][k/2] = val
				continue
			}
			switch tok {
			case ">":
				b.syms[r][k/2] = SymGreater
			case "<":
				b.syms[r][k/2] = SymLess
			case ".":
				b.syms[r][k/2] = SymNone
			default:
				return nil, fmt.Errorf("board: row %d token %d: %q is not an inequality symbol", r, k, tok)
			}
		}
	}
	return b, nil
}

// ParseBoardText parses a board from text: one row per non-blank line,
// tokens separated by whitespace.
func ParseBoardText(text string) (*Board, error) {
	var rows [][]string
	for _, line := range strings.Split(text, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		rows = append(rows, fields)
	}
	return ParseBoard(rows)
}

// String renders the board back into its token format.
func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < b.n; r++ {
		for c := 0; c < b.n; c++ {
			if c > 0 {
				fmt.Fprintf(&sb, " %s ", b.syms[r][c-1])
			}
			fmt.Fprintf(&sb, "%d", b.cells[r][c])
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
