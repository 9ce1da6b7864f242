package chessmg

// Pocket counts the pieces of one side held for dropping, indexed by Role.
type Pocket [7]uint8

// Count returns the number of pieces in the pocket.
func (p Pocket) Count() int {
	n := 0
	for _, v := range p {
		n += int(v)
	}
	return n
}

// Setup is an unvalidated position description, the common ground of the
// FEN and packed codecs.
type Setup struct {
	Board           Board
	Promoted        Bitboard
	HasPockets      bool
	Pockets         [2]Pocket
	Turn            Color
	CastlingRights  Bitboard // rook origin squares
	EpSquare        Square
	HasChecks       bool
	RemainingChecks [2]uint8
	Halfmoves       int
	Fullmoves       int
}

// DefaultSetup returns the standard starting setup.
func DefaultSetup() Setup {
	return Setup{
		Board:           NewBoard(),
		CastlingRights:  A1.Bitboard() | H1.Bitboard() | A8.Bitboard() | H8.Bitboard(),
		EpSquare:        NoSquare,
		RemainingChecks: [2]uint8{3, 3},
		Fullmoves:       1,
	}
}

// Mirror returns the setup seen from the other side: ranks flipped, colors
// swapped and side to move inverted.
func (s Setup) Mirror() Setup {
	s.Board.Mirror()
	s.Promoted = s.Promoted.FlipVertical()
	s.Pockets[White], s.Pockets[Black] = s.Pockets[Black], s.Pockets[White]
	s.Turn = s.Turn.Other()
	s.CastlingRights = s.CastlingRights.FlipVertical()
	if s.EpSquare != NoSquare {
		s.EpSquare ^= 56
	}
	s.RemainingChecks[White], s.RemainingChecks[Black] = s.RemainingChecks[Black], s.RemainingChecks[White]
	return s
}
