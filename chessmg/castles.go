package chessmg

// CastlingSide distinguishes the h-side (short) and a-side (long) castle.
type CastlingSide uint8

const (
	KingSide  CastlingSide = 0
	QueenSide CastlingSide = 1
)

// KingTo returns the king's destination for the side and color.
func (s CastlingSide) KingTo(c Color) Square {
	if s == KingSide {
		return G1.Relative(c)
	}
	return C1.Relative(c)
}

// RookTo returns the rook's destination for the side and color.
func (s CastlingSide) RookTo(c Color) Square {
	if s == KingSide {
		return F1.Relative(c)
	}
	return D1.Relative(c)
}

func (s CastlingSide) String() string {
	if s == KingSide {
		return "O-O"
	}
	return "O-O-O"
}

// CastlingMode selects how castling moves are written in UCI and FEN.
type CastlingMode uint8

const (
	CastlingStandard CastlingMode = 0
	CastlingChess960 CastlingMode = 1
)

func (m CastlingMode) String() string {
	if m == CastlingChess960 {
		return "chess960"
	}
	return "standard"
}

// Castles holds the remaining castling rights as rook origin squares and
// the squares that must be empty for each castle.
type Castles struct {
	mask Bitboard
	rook [2][2]Square   // [color][side], NoSquare when unavailable
	path [2][2]Bitboard // squares other than king and rook that must be empty
}

func emptyCastles() Castles {
	return Castles{rook: [2][2]Square{{NoSquare, NoSquare}, {NoSquare, NoSquare}}}
}

// castlesFromSetup resolves a set of rook squares against the board. It
// returns false if any right cannot be matched with a king and rook on the
// back rank.
func castlesFromSetup(b *Board, rights Bitboard) (Castles, bool) {
	castles := emptyCastles()
	for c := White; c <= Black; c++ {
		own := rights & backrank(c)
		if own == 0 {
			continue
		}
		kings := b.Pieces(c, King) & backrank(c)
		king := kings.Single()
		if king == NoSquare || b.Pieces(c, King).MoreThanOne() {
			return castles, false
		}
		for own != 0 {
			rook := own.PopFirst()
			if b.PieceAt(rook) != NewPiece(c, Rook) {
				return castles, false
			}
			side := QueenSide
			if rook.File() > king.File() {
				side = KingSide
			}
			if castles.rook[c][side] != NoSquare {
				return castles, false
			}
			castles.rook[c][side] = rook
			castles.mask = castles.mask.With(rook)
			castles.path[c][side] = castlingPath(c, side, king, rook)
		}
	}
	if castles.mask != rights {
		return castles, false
	}
	return castles, true
}

func castlingPath(c Color, side CastlingSide, king, rook Square) Bitboard {
	kingTo, rookTo := side.KingTo(c), side.RookTo(c)
	path := Between(king, kingTo).With(kingTo) | Between(rook, rookTo).With(rookTo)
	return path.Without(king).Without(rook)
}

// Mask returns the rook squares that still carry castling rights.
func (c *Castles) Mask() Bitboard { return c.mask }

// Rook returns the rook origin for a right, or NoSquare.
func (c *Castles) Rook(color Color, side CastlingSide) Square { return c.rook[color][side] }

// Has reports whether the right is still available.
func (c *Castles) Has(color Color, side CastlingSide) bool { return c.rook[color][side] != NoSquare }

// Path returns the squares that must be empty to castle.
func (c *Castles) Path(color Color, side CastlingSide) Bitboard { return c.path[color][side] }

// IsEmpty reports whether no rights remain.
func (c *Castles) IsEmpty() bool { return c.mask == 0 }

func (c *Castles) discardRook(sq Square) {
	if !c.mask.Has(sq) {
		return
	}
	c.mask = c.mask.Without(sq)
	for color := White; color <= Black; color++ {
		for side := KingSide; side <= QueenSide; side++ {
			if c.rook[color][side] == sq {
				c.rook[color][side] = NoSquare
				c.path[color][side] = 0
			}
		}
	}
}

func (c *Castles) discardColor(color Color) {
	c.mask &^= backrank(color)
	c.rook[color] = [2]Square{NoSquare, NoSquare}
	c.path[color] = [2]Bitboard{}
}

// isStandard reports whether every right uses the classical king and rook squares.
func (c *Castles) isStandard(b *Board) bool {
	for color := White; color <= Black; color++ {
		for side := KingSide; side <= QueenSide; side++ {
			rook := c.rook[color][side]
			if rook == NoSquare {
				continue
			}
			if b.KingOf(color) != E1.Relative(color) {
				return false
			}
			want := H1.Relative(color)
			if side == QueenSide {
				want = A1.Relative(color)
			}
			if rook != want {
				return false
			}
		}
	}
	return true
}
