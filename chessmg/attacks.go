package chessmg

import "math/bits"

// Precomputed attack masks for leapers.
var knightAttacks [64]Bitboard
var kingAttacks [64]Bitboard

// pawnAttacks[color][sq] is the set of squares a pawn of color on sq attacks.
var pawnAttacks [2][64]Bitboard

// Sliding piece lookups, indexed by a multiply-shift hash of the relevant occupancy.
var rookMagics [64]magic
var bishopMagics [64]magic

// betweenBB[a][b] holds the squares strictly between a and b when aligned.
// lineBB[a][b] holds the full edge-to-edge line through both, or 0.
var betweenBB [64][64]Bitboard
var lineBB [64][64]Bitboard

var (
	rookDeltas   = [4][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}
	bishopDeltas = [4][2]int{{1, 1}, {-1, 1}, {1, -1}, {-1, -1}}
)

type magic struct {
	mask    Bitboard
	factor  uint64
	shift   uint
	attacks []Bitboard
}

func (m *magic) index(occ Bitboard) uint64 {
	return (uint64(occ&m.mask) * m.factor) >> m.shift
}

func init() {
	initLeaperTables()
	initMagics()
	initLines()
}

// initLeaperTables precomputes knight, king and pawn capture masks.
func initLeaperTables() {
	knightOffsets := [8][2]int{
		{2, 1}, {2, -1}, {-2, 1}, {-2, -1},
		{1, 2}, {1, -2}, {-1, 2}, {-1, -2},
	}
	kingOffsets := [8][2]int{
		{1, 0}, {-1, 0}, {0, 1}, {0, -1},
		{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
	}
	for sq := A1; sq <= H8; sq++ {
		knightAttacks[sq] = leaperMask(sq, knightOffsets[:])
		kingAttacks[sq] = leaperMask(sq, kingOffsets[:])

		b := sq.Bitboard()
		pawnAttacks[White][sq] = b.NorthEast() | b.NorthWest()
		pawnAttacks[Black][sq] = b.SouthEast() | b.SouthWest()
	}
}

func leaperMask(sq Square, offsets [][2]int) Bitboard {
	var mask Bitboard
	for _, off := range offsets {
		r := sq.Rank() + off[0]
		f := sq.File() + off[1]
		if r >= 0 && r < 8 && f >= 0 && f < 8 {
			mask |= SquareAt(f, r).Bitboard()
		}
	}
	return mask
}

// slidingAttacks walks each ray from sq until it leaves the board or hits
// an occupied square (included). It is the reference the lookup tables are
// built and verified against.
func slidingAttacks(sq Square, occ Bitboard, deltas *[4][2]int) Bitboard {
	var att Bitboard
	for _, d := range deltas {
		f, r := sq.File()+d[0], sq.Rank()+d[1]
		for f >= 0 && f < 8 && r >= 0 && r < 8 {
			s := SquareAt(f, r)
			att |= s.Bitboard()
			if occ.Has(s) {
				break
			}
			f += d[0]
			r += d[1]
		}
	}
	return att
}

// prng is a xorshift64* generator; fixed seeds make the magic search
// reproducible across runs.
type prng struct{ s uint64 }

func (p *prng) next() uint64 {
	p.s ^= p.s >> 12
	p.s ^= p.s << 25
	p.s ^= p.s >> 27
	return p.s * 2685821657736338717
}

// sparse returns a random number with roughly 1/8 of its bits set.
func (p *prng) sparse() uint64 { return p.next() & p.next() & p.next() }

var magicSeeds = [8]uint64{728, 10316, 55013, 32803, 12281, 15100, 16645, 255}

func initMagics() {
	for sq := A1; sq <= H8; sq++ {
		findMagic(&rookMagics[sq], sq, &rookDeltas)
		findMagic(&bishopMagics[sq], sq, &bishopDeltas)
	}
}

// findMagic searches for a multiplier that maps every relevant occupancy of
// sq to a table slot without destructive collisions.
func findMagic(m *magic, sq Square, deltas *[4][2]int) {
	edges := ((Rank1 | Rank8) &^ RankBB(sq.Rank())) | ((FileA | FileH) &^ FileBB(sq.File()))
	m.mask = slidingAttacks(sq, 0, deltas) &^ edges
	n := m.mask.Count()
	m.shift = uint(64 - n)

	size := 1 << n
	occupancy := make([]Bitboard, size)
	reference := make([]Bitboard, size)
	var b Bitboard
	for i := 0; i < size; i++ {
		occupancy[i] = b
		reference[i] = slidingAttacks(sq, b, deltas)
		b = (b - m.mask) & m.mask
	}

	m.attacks = make([]Bitboard, size)
	epoch := make([]int, size)
	rng := prng{s: magicSeeds[sq.Rank()]}
	for attempt := 1; ; attempt++ {
		m.factor = 0
		for bits.OnesCount64((m.factor*uint64(m.mask))>>56) < 6 {
			m.factor = rng.sparse()
		}
		ok := true
		for i := 0; i < size; i++ {
			idx := m.index(occupancy[i])
			if epoch[idx] < attempt {
				epoch[idx] = attempt
				m.attacks[idx] = reference[i]
			} else if m.attacks[idx] != reference[i] {
				ok = false
				break
			}
		}
		if ok {
			return
		}
	}
}

func initLines() {
	for a := A1; a <= H8; a++ {
		for b := A1; b <= H8; b++ {
			if a == b {
				continue
			}
			switch {
			case RookAttacks(a, 0).Has(b):
				lineBB[a][b] = (RookAttacks(a, 0) & RookAttacks(b, 0)) | a.Bitboard() | b.Bitboard()
				betweenBB[a][b] = RookAttacks(a, b.Bitboard()) & RookAttacks(b, a.Bitboard())
			case BishopAttacks(a, 0).Has(b):
				lineBB[a][b] = (BishopAttacks(a, 0) & BishopAttacks(b, 0)) | a.Bitboard() | b.Bitboard()
				betweenBB[a][b] = BishopAttacks(a, b.Bitboard()) & BishopAttacks(b, a.Bitboard())
			}
		}
	}
}

func KnightAttacks(sq Square) Bitboard { return knightAttacks[sq] }
func KingAttacks(sq Square) Bitboard { return kingAttacks[sq] }

// PawnAttacks returns the squares a pawn of color c standing on sq attacks.
func PawnAttacks(c Color, sq Square) Bitboard { return pawnAttacks[c][sq] }

// RookAttacks returns rook attacks from sq given the board occupancy.
func RookAttacks(sq Square, occ Bitboard) Bitboard {
	m := &rookMagics[sq]
	return m.attacks[m.index(occ)]
}

// BishopAttacks returns bishop attacks from sq given the board occupancy.
func BishopAttacks(sq Square, occ Bitboard) Bitboard {
	m := &bishopMagics[sq]
	return m.attacks[m.index(occ)]
}

func QueenAttacks(sq Square, occ Bitboard) Bitboard {
	return RookAttacks(sq, occ) | BishopAttacks(sq, occ)
}

// Attacks returns the squares attacked by piece p standing on sq.
func Attacks(p Piece, sq Square, occ Bitboard) Bitboard {
	switch p.Role() {
	case Pawn:
		return PawnAttacks(p.Color(), sq)
	case Knight:
		return KnightAttacks(sq)
	case Bishop:
		return BishopAttacks(sq, occ)
	case Rook:
		return RookAttacks(sq, occ)
	case Queen:
		return QueenAttacks(sq, occ)
	case King:
		return KingAttacks(sq)
	}
	return 0
}

// Between returns the squares strictly between a and b, or 0 if they do not
// share a rank, file or diagonal.
func Between(a, b Square) Bitboard { return betweenBB[a][b] }

// Line returns the full line through a and b, or 0 if they are not aligned.
func Line(a, b Square) Bitboard { return lineBB[a][b] }

// Aligned reports whether a, b and c lie on one line.
func Aligned(a, b, c Square) bool { return lineBB[a][b].Has(c) }
