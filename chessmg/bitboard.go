package chessmg

import (
	"math/bits"
	"strings"
)

// Bitboard is a set of squares, bit i set means square i is a member.
type Bitboard uint64

const (
	FileA Bitboard = 0x0101010101010101
	FileB Bitboard = FileA << 1
	FileC Bitboard = FileA << 2
	FileD Bitboard = FileA << 3
	FileE Bitboard = FileA << 4
	FileF Bitboard = FileA << 5
	FileG Bitboard = FileA << 6
	FileH Bitboard = FileA << 7

	Rank1 Bitboard = 0xFF
	Rank2 Bitboard = Rank1 << 8
	Rank3 Bitboard = Rank1 << 16
	Rank4 Bitboard = Rank1 << 24
	Rank5 Bitboard = Rank1 << 32
	Rank6 Bitboard = Rank1 << 40
	Rank7 Bitboard = Rank1 << 48
	Rank8 Bitboard = Rank1 << 56

	AllSquares   Bitboard = ^Bitboard(0)
	DarkSquares  Bitboard = 0xAA55AA55AA55AA55
	LightSquares Bitboard = ^DarkSquares
	Center       Bitboard = 0x0000001818000000
	Backranks    Bitboard = Rank1 | Rank8
)

// FileBB returns the mask of the given file (0-7).
func FileBB(file int) Bitboard { return FileA << uint(file) }

// RankBB returns the mask of the given rank (0-7).
func RankBB(rank int) Bitboard { return Rank1 << uint(8*rank) }

func (b Bitboard) Has(sq Square) bool { return b&sq.Bitboard() != 0 }
func (b Bitboard) With(sq Square) Bitboard { return b | sq.Bitboard() }
func (b Bitboard) Without(sq Square) Bitboard { return b &^ sq.Bitboard() }
func (b Bitboard) Toggle(sq Square) Bitboard { return b ^ sq.Bitboard() }
func (b Bitboard) Count() int { return bits.OnesCount64(uint64(b)) }
func (b Bitboard) IsEmpty() bool { return b == 0 }
func (b Bitboard) Any() bool { return b != 0 }

// MoreThanOne reports whether the set has at least two members.
func (b Bitboard) MoreThanOne() bool { return b&(b-1) != 0 }

// First returns the lowest square in the set, or NoSquare.
func (b Bitboard) First() Square {
	if b == 0 {
		return NoSquare
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// Last returns the highest square in the set, or NoSquare.
func (b Bitboard) Last() Square {
	if b == 0 {
		return NoSquare
	}
	return Square(63 - bits.LeadingZeros64(uint64(b)))
}

// Single returns the only member of a singleton set, or NoSquare.
func (b Bitboard) Single() Square {
	if b == 0 || b.MoreThanOne() {
		return NoSquare
	}
	return b.First()
}

// PopFirst removes and returns the lowest square.
func (b *Bitboard) PopFirst() Square {
	sq := b.First()
	*b &= *b - 1
	return sq
}

// Squares lists the members in ascending order.
func (b Bitboard) Squares() []Square {
	out := make([]Square, 0, b.Count())
	for b != 0 {
		out = append(out, b.PopFirst())
	}
	return out
}

// Edge-safe shifts.
func (b Bitboard) North() Bitboard { return b << 8 }
func (b Bitboard) South() Bitboard { return b >> 8 }
func (b Bitboard) East() Bitboard { return (b &^ FileH) << 1 }
func (b Bitboard) West() Bitboard { return (b &^ FileA) >> 1 }
func (b Bitboard) NorthEast() Bitboard { return (b &^ FileH) << 9 }
func (b Bitboard) NorthWest() Bitboard { return (b &^ FileA) << 7 }
func (b Bitboard) SouthEast() Bitboard { return (b &^ FileH) >> 7 }
func (b Bitboard) SouthWest() Bitboard { return (b &^ FileA) >> 9 }

// Forward shifts one rank toward the opponent of c.
func (b Bitboard) Forward(c Color) Bitboard {
	if c == White {
		return b.North()
	}
	return b.South()
}

// FlipVertical mirrors ranks (a1 <-> a8).
func (b Bitboard) FlipVertical() Bitboard {
	return Bitboard(bits.ReverseBytes64(uint64(b)))
}

// FlipHorizontal mirrors files (a1 <-> h1).
func (b Bitboard) FlipHorizontal() Bitboard {
	const (
		k1 = 0x5555555555555555
		k2 = 0x3333333333333333
		k4 = 0x0f0f0f0f0f0f0f0f
	)
	x := uint64(b)
	x = ((x >> 1) & k1) | ((x & k1) << 1)
	x = ((x >> 2) & k2) | ((x & k2) << 2)
	x = ((x >> 4) & k4) | ((x & k4) << 4)
	return Bitboard(x)
}

// FlipDiagonal mirrors along the a1-h8 diagonal.
func (b Bitboard) FlipDiagonal() Bitboard {
	const (
		k1 = 0x5500550055005500
		k2 = 0x3333000033330000
		k4 = 0x0f0f0f0f00000000
	)
	x := uint64(b)
	t := k4 & (x ^ (x << 28))
	x ^= t ^ (t >> 28)
	t = k2 & (x ^ (x << 14))
	x ^= t ^ (t >> 14)
	t = k1 & (x ^ (x << 7))
	x ^= t ^ (t >> 7)
	return Bitboard(x)
}

// FlipAntiDiagonal mirrors along the a8-h1 diagonal.
func (b Bitboard) FlipAntiDiagonal() Bitboard {
	return b.FlipVertical().FlipHorizontal().FlipDiagonal()
}

func (b Bitboard) Rotate90() Bitboard { return b.FlipDiagonal().FlipVertical() }
func (b Bitboard) Rotate180() Bitboard { return Bitboard(bits.Reverse64(uint64(b))) }
func (b Bitboard) Rotate270() Bitboard { return b.FlipVertical().FlipDiagonal() }

// String renders the set as an 8x8 grid, rank 8 first.
func (b Bitboard) String() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			if b.Has(SquareAt(file, rank)) {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('.')
			}
			if file < 7 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
