package chessmg

// Square represents a board position (0-63), a1 = 0, b1 = 1, ..., h8 = 63.
type Square int

// NoSquare marks an absent square (no en passant target, no king, ...).
const NoSquare Square = -1

const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// SquareAt returns the square on the given file and rank (both 0-7).
func SquareAt(file, rank int) Square { return Square(rank*8 + file) }

// ParseSquare converts algebraic coordinates ("e4") to a Square.
func ParseSquare(s string) (Square, bool) {
	if len(s) != 2 {
		return NoSquare, false
	}
	file, rank := s[0], s[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return NoSquare, false
	}
	return SquareAt(int(file-'a'), int(rank-'1')), true
}

// File returns the file index (0 = a-file).
func (sq Square) File() int { return int(sq) & 7 }

// Rank returns the rank index (0 = first rank).
func (sq Square) Rank() int { return int(sq) >> 3 }

// Valid reports whether sq is on the board.
func (sq Square) Valid() bool { return sq >= A1 && sq <= H8 }

// Bitboard returns the singleton set containing sq.
func (sq Square) Bitboard() Bitboard { return Bitboard(1) << uint(sq) }

// Relative maps a square to the given side's point of view (mirrors ranks for Black).
func (sq Square) Relative(c Color) Square {
	if c == Black {
		return sq ^ 56
	}
	return sq
}

// FileChar returns 'a'..'h'.
func (sq Square) FileChar() byte { return 'a' + byte(sq.File()) }

// RankChar returns '1'..'8'.
func (sq Square) RankChar() byte { return '1' + byte(sq.Rank()) }

func (sq Square) String() string {
	if !sq.Valid() {
		return "-"
	}
	return string([]byte{sq.FileChar(), sq.RankChar()})
}

// Color identifies a side.
type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Other returns the opposing side.
func (c Color) Other() Color { return c ^ 1 }

// Char returns the FEN side-to-move token ('w' or 'b').
func (c Color) Char() byte {
	if c == White {
		return 'w'
	}
	return 'b'
}

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// backrank returns the first rank from the side's point of view.
func backrank(c Color) Bitboard {
	if c == White {
		return Rank1
	}
	return Rank8
}

// relativeRank returns the n-th rank (0-based) from the side's point of view.
func relativeRank(c Color, n int) Bitboard {
	if c == White {
		return RankBB(n)
	}
	return RankBB(7 - n)
}

// forward is the square delta of a single pawn push for the side.
func forward(c Color) Square {
	if c == White {
		return 8
	}
	return -8
}
