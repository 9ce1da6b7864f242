package chessmg

import "fmt"

// Position is a complete game state under one variant's rules. It holds no
// references, so copying the value yields an independent position.
type Position struct {
	board    Board
	promoted Bitboard
	pockets  [2]Pocket
	turn     Color
	castles  Castles
	epSquare Square

	// Remaining checks per side (three-check only)
	checks [2]uint8

	halfmoves int
	fullmoves int

	variant Variant
	mode    CastlingMode

	// Zobrist hash, kept in sync by every mutation
	hash uint64
}

// NewPosition returns the starting position of a variant. Chess960 starts
// from the classical arrangement (index 518).
func NewPosition(v Variant) *Position {
	setup, err := ParseFENSetup(v.StartFEN())
	if err != nil {
		panic(fmt.Sprintf("chessmg: bad start FEN for %s: %v", v, err))
	}
	p, err := FromSetup(setup, v, CastlingStandard)
	if err != nil {
		panic(fmt.Sprintf("chessmg: bad start position for %s: %v", v, err))
	}
	return p
}

// FromSetup validates a setup and builds the position. The castling mode is
// upgraded to Chess960 for the Chess960 variant and whenever the castling
// rights do not sit on the classical squares.
func FromSetup(s Setup, v Variant, mode CastlingMode) (*Position, error) {
	if !v.Valid() {
		return nil, fmt.Errorf("%w: unknown variant %d", ErrInvalidPosition, v)
	}
	if s.Turn > Black {
		return nil, fmt.Errorf("%w: bad side to move %d", ErrInvalidPosition, s.Turn)
	}
	if s.Halfmoves < 0 {
		return nil, fmt.Errorf("%w: negative halfmove clock", ErrInvalidPosition)
	}
	p := &Position{
		board:     s.Board,
		turn:      s.Turn,
		epSquare:  s.EpSquare,
		halfmoves: s.Halfmoves,
		fullmoves: s.Fullmoves,
		variant:   v,
		mode:      mode,
	}
	if p.fullmoves < 1 {
		p.fullmoves = 1
	}
	if !p.epSquare.Valid() {
		p.epSquare = NoSquare
	}
	if v.HasPockets() {
		p.promoted = s.Promoted
		p.pockets = s.Pockets
	}
	if v.HasChecks() {
		p.checks = [2]uint8{3, 3}
		if s.HasChecks {
			p.checks = s.RemainingChecks
		}
	}

	var kinds PositionErrorKinds
	castles, ok := castlesFromSetup(&p.board, s.CastlingRights)
	if !ok {
		kinds |= PositionInvalidCastlingRights
		castles = emptyCastles()
	}
	p.castles = castles
	if v == Chess960 || !castles.isStandard(&p.board) {
		p.mode = CastlingChess960
	}

	kinds |= p.validate()
	if kinds != 0 {
		return nil, &PositionError{Kinds: kinds}
	}
	p.hash = p.ComputeHash()
	return p, nil
}

// Setup returns the raw description of the position.
func (p *Position) Setup() Setup {
	return Setup{
		Board:           p.board,
		Promoted:        p.promoted,
		HasPockets:      p.variant.HasPockets(),
		Pockets:         p.pockets,
		Turn:            p.turn,
		CastlingRights:  p.castles.mask,
		EpSquare:        p.epSquare,
		HasChecks:       p.variant.HasChecks(),
		RemainingChecks: p.checks,
		Halfmoves:       p.halfmoves,
		Fullmoves:       p.fullmoves,
	}
}

// Board returns a copy of the piece placement.
func (p *Position) Board() Board { return p.board }

func (p *Position) Turn() Color { return p.turn }
func (p *Position) Castles() Castles { return p.castles }
func (p *Position) Halfmoves() int { return p.halfmoves }
func (p *Position) Fullmoves() int { return p.fullmoves }
func (p *Position) Variant() Variant { return p.variant }
func (p *Position) CastlingMode() CastlingMode { return p.mode }
func (p *Position) Promoted() Bitboard { return p.promoted }
func (p *Position) Pocket(c Color) Pocket { return p.pockets[c] }
func (p *Position) Hash() uint64 { return p.hash }
func (p *Position) Material() Material { return p.board.Material() }

// Pieces returns the squares holding pieces of color c and role r.
func (p *Position) Pieces(c Color, r Role) Bitboard { return p.board.Pieces(c, r) }

// RemainingChecks returns how many more checks c must give (three-check).
func (p *Position) RemainingChecks(c Color) int { return int(p.checks[c]) }

// EpSquare returns the stored en passant target (set after every double push).
func (p *Position) EpSquare() Square { return p.epSquare }

// epCandidate returns the en passant square if a pawn of the side to move
// attacks it, otherwise NoSquare.
func (p *Position) epCandidate() Square {
	if p.epSquare == NoSquare {
		return NoSquare
	}
	if PawnAttacks(p.turn.Other(), p.epSquare)&p.board.Pieces(p.turn, Pawn) == 0 {
		return NoSquare
	}
	return p.epSquare
}

// LegalEpSquare returns the en passant square only if an en passant capture
// is among the legal moves.
func (p *Position) LegalEpSquare() Square {
	if p.epCandidate() == NoSquare {
		return NoSquare
	}
	for _, m := range p.LegalMoves() {
		if m.Kind() == KindEnPassant {
			return p.epSquare
		}
	}
	return NoSquare
}

// Checkers returns the enemy pieces giving check to the side to move.
func (p *Position) Checkers() Bitboard {
	if p.variant == Antichess {
		return 0
	}
	king := p.board.KingOf(p.turn)
	if king == NoSquare {
		return 0
	}
	them := p.turn.Other()
	if p.variant == Atomic && KingAttacks(king)&p.board.Pieces(them, King) != 0 {
		return 0
	}
	return p.board.AttacksTo(king, them, p.board.occupied)
}

// IsCheck reports whether the side to move is in check.
func (p *Position) IsCheck() bool { return p.Checkers() != 0 }

// Equal reports whether two positions describe the same game state: board,
// side to move, castling rights, en passant availability and variant state.
// Move counters are ignored.
func (p *Position) Equal(o *Position) bool {
	if p.variant != o.variant || p.turn != o.turn || p.board != o.board {
		return false
	}
	if p.castles.mask != o.castles.mask || p.epCandidate() != o.epCandidate() {
		return false
	}
	if p.variant.HasPockets() && (p.pockets != o.pockets || p.promoted != o.promoted) {
		return false
	}
	if p.variant.HasChecks() && p.checks != o.checks {
		return false
	}
	return true
}

// String returns the FEN of the position.
func (p *Position) String() string { return p.FEN() }
