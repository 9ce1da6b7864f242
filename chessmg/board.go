package chessmg

import "strings"

// Board is a piece placement: per-role and per-color bitboards plus a
// square-indexed mailbox kept in sync by every mutation.
type Board struct {
	roles    [7]Bitboard // indexed by Role, slot 0 unused
	colors   [2]Bitboard
	occupied Bitboard

	// Piece placement array for each square (NoPiece when empty)
	pieces [64]Piece
}

// NewBoard returns the standard starting placement.
func NewBoard() Board {
	var b Board
	back := [8]Role{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file, r := range back {
		b.addPiece(SquareAt(file, 0), NewPiece(White, r))
		b.addPiece(SquareAt(file, 1), WhitePawn)
		b.addPiece(SquareAt(file, 6), BlackPawn)
		b.addPiece(SquareAt(file, 7), NewPiece(Black, r))
	}
	return b
}

// BoardFromBitboards assembles a board from raw role and color sets
// (roles indexed Pawn-1 .. King-1). It rejects overlapping or inconsistent sets.
func BoardFromBitboards(roles [6]Bitboard, white, black Bitboard) (Board, error) {
	var b Board
	var union Bitboard
	for i, set := range roles {
		if union&set != 0 {
			return Board{}, ErrRolesOverlap
		}
		union |= set
		b.roles[i+1] = set
	}
	if white&black != 0 {
		return Board{}, ErrColorsOverlap
	}
	if union != white|black {
		return Board{}, ErrRolesColorsMismatch
	}
	b.colors = [2]Bitboard{white, black}
	b.occupied = union
	b.rebuildMailbox()
	return b, nil
}

func (b *Board) rebuildMailbox() {
	b.pieces = [64]Piece{}
	for r := Pawn; r <= King; r++ {
		for c := White; c <= Black; c++ {
			set := b.roles[r] & b.colors[c]
			for set != 0 {
				b.pieces[set.PopFirst()] = NewPiece(c, r)
			}
		}
	}
}

// addPiece places a piece on an empty square.
func (b *Board) addPiece(sq Square, p Piece) {
	if p == NoPiece {
		return
	}
	bit := sq.Bitboard()
	b.pieces[sq] = p
	b.roles[p.Role()] |= bit
	b.colors[p.Color()] |= bit
	b.occupied |= bit
}

// removePiece clears a square and returns what was there.
func (b *Board) removePiece(sq Square) Piece {
	p := b.pieces[sq]
	if p == NoPiece {
		return NoPiece
	}
	mask := ^sq.Bitboard()
	b.pieces[sq] = NoPiece
	b.roles[p.Role()] &= mask
	b.colors[p.Color()] &= mask
	b.occupied &= mask
	return p
}

// SetPiece puts p on sq, replacing any existing piece.
func (b *Board) SetPiece(sq Square, p Piece) {
	b.removePiece(sq)
	b.addPiece(sq, p)
}

// RemovePiece clears sq and returns the removed piece (NoPiece if empty).
func (b *Board) RemovePiece(sq Square) Piece { return b.removePiece(sq) }

func (b *Board) PieceAt(sq Square) Piece { return b.pieces[sq] }
func (b *Board) RoleAt(sq Square) Role { return b.pieces[sq].Role() }

func (b *Board) Occupied() Bitboard { return b.occupied }
func (b *Board) ByColor(c Color) Bitboard { return b.colors[c] }
func (b *Board) ByRole(r Role) Bitboard { return b.roles[r] }
func (b *Board) ByPiece(p Piece) Bitboard { return b.roles[p.Role()] & b.colors[p.Color()] }
func (b *Board) Pieces(c Color, r Role) Bitboard { return b.roles[r] & b.colors[c] }

func (b *Board) Pawns() Bitboard { return b.roles[Pawn] }
func (b *Board) Knights() Bitboard { return b.roles[Knight] }
func (b *Board) Bishops() Bitboard { return b.roles[Bishop] }
func (b *Board) Rooks() Bitboard { return b.roles[Rook] }
func (b *Board) Queens() Bitboard { return b.roles[Queen] }
func (b *Board) Kings() Bitboard { return b.roles[King] }

func (b *Board) RooksAndQueens() Bitboard { return b.roles[Rook] | b.roles[Queen] }
func (b *Board) BishopsAndQueens() Bitboard { return b.roles[Bishop] | b.roles[Queen] }

// KingOf returns the (first) king square of the side, or NoSquare.
func (b *Board) KingOf(c Color) Square { return b.Pieces(c, King).First() }

// Each calls fn for every occupied square in ascending order.
func (b *Board) Each(fn func(sq Square, p Piece)) {
	occ := b.occupied
	for occ != 0 {
		sq := occ.PopFirst()
		fn(sq, b.pieces[sq])
	}
}

// AttacksFrom returns the squares attacked by the piece on sq (0 if empty).
func (b *Board) AttacksFrom(sq Square) Bitboard {
	p := b.pieces[sq]
	if p == NoPiece {
		return 0
	}
	return Attacks(p, sq, b.occupied)
}

// AttacksTo returns the attacker's pieces that attack sq given occupancy occ.
func (b *Board) AttacksTo(sq Square, attacker Color, occ Bitboard) Bitboard {
	return b.colors[attacker] & ((RookAttacks(sq, occ) & b.RooksAndQueens()) |
		(BishopAttacks(sq, occ) & b.BishopsAndQueens()) |
		(KnightAttacks(sq) & b.roles[Knight]) |
		(KingAttacks(sq) & b.roles[King]) |
		(PawnAttacks(attacker.Other(), sq) & b.roles[Pawn]))
}

// sliderBlockers returns pieces that are the only obstacle between king and
// an enemy slider aimed at it.
func (b *Board) sliderBlockers(king Square, attacker Color) Bitboard {
	snipers := b.colors[attacker] & ((RookAttacks(king, 0) & b.RooksAndQueens()) |
		(BishopAttacks(king, 0) & b.BishopsAndQueens()))
	var blockers Bitboard
	for snipers != 0 {
		between := Between(king, snipers.PopFirst()) & b.occupied
		if between != 0 && !between.MoreThanOne() {
			blockers |= between
		}
	}
	return blockers
}

func (b *Board) transform(fn func(Bitboard) Bitboard) {
	for r := Pawn; r <= King; r++ {
		b.roles[r] = fn(b.roles[r])
	}
	b.colors[White] = fn(b.colors[White])
	b.colors[Black] = fn(b.colors[Black])
	b.occupied = fn(b.occupied)
	b.rebuildMailbox()
}

func (b *Board) FlipVertical() { b.transform(Bitboard.FlipVertical) }
func (b *Board) FlipHorizontal() { b.transform(Bitboard.FlipHorizontal) }
func (b *Board) FlipDiagonal() { b.transform(Bitboard.FlipDiagonal) }
func (b *Board) FlipAntiDiagonal() { b.transform(Bitboard.FlipAntiDiagonal) }
func (b *Board) Rotate90() { b.transform(Bitboard.Rotate90) }
func (b *Board) Rotate180() { b.transform(Bitboard.Rotate180) }
func (b *Board) Rotate270() { b.transform(Bitboard.Rotate270) }

// SwapColors turns every white piece black and vice versa.
func (b *Board) SwapColors() {
	b.colors[White], b.colors[Black] = b.colors[Black], b.colors[White]
	b.rebuildMailbox()
}

// Mirror flips the board vertically and swaps colors, producing the same
// position from the other side's point of view.
func (b *Board) Mirror() {
	b.FlipVertical()
	b.SwapColors()
}

// Material counts pieces per side and role.
func (b *Board) Material() Material {
	var m Material
	for c := White; c <= Black; c++ {
		for r := Pawn; r <= King; r++ {
			m[c][r] = uint8(b.Pieces(c, r).Count())
		}
	}
	return m
}

// Validate checks that the mailbox, role and color sets agree.
func (b *Board) Validate() bool {
	var roles [7]Bitboard
	var colors [2]Bitboard
	for sq := A1; sq <= H8; sq++ {
		p := b.pieces[sq]
		if p == NoPiece {
			continue
		}
		if !p.Valid() {
			return false
		}
		roles[p.Role()] |= sq.Bitboard()
		colors[p.Color()] |= sq.Bitboard()
	}
	return roles == b.roles && colors == b.colors && colors[White]|colors[Black] == b.occupied
}

// String renders the board rank 8 first with '.' for empty squares.
func (b *Board) String() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			sb.WriteByte(b.pieces[SquareAt(file, rank)].Char())
			if file < 7 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// MaterialSide counts pieces of one side by role (index NoRole unused).
type MaterialSide [7]uint8

// Material counts pieces by side then role.
type Material [2]MaterialSide

// Count returns the number of pieces of a side.
func (m MaterialSide) Count() int {
	n := 0
	for _, v := range m[Pawn:] {
		n += int(v)
	}
	return n
}

func (m MaterialSide) String() string {
	var sb strings.Builder
	for r := King; r >= Pawn; r-- {
		for i := 0; i < int(m[r]); i++ {
			sb.WriteByte(r.UpperChar())
		}
	}
	return sb.String()
}

// Key returns the tablebase-style material signature, White first (e.g. "KNvKP").
func (m Material) Key() string {
	return m[White].String() + "v" + m[Black].String()
}
