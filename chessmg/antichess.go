package chessmg

// Antichess: captures are compulsory, the king is an ordinary piece and
// a side wins by running out of pieces or moves.

func antichessLegal(p *Position, moves []Move) []Move {
	start := len(moves)
	us := p.turn
	theirs := p.board.colors[us.Other()]

	moves = genNonKing(p, theirs, moves)
	moves = genKingSteps(p, theirs, moves)
	moves = genEnPassant(p, moves)
	if len(moves) > start {
		return moves
	}
	empty := ^p.board.occupied
	moves = genNonKing(p, empty, moves)
	return genKingSteps(p, empty, moves)
}

// genKingSteps appends king moves without any safety test.
func genKingSteps(p *Position, target Bitboard, moves []Move) []Move {
	for kings := p.board.Pieces(p.turn, King); kings != 0; {
		from := kings.PopFirst()
		moves = appendNormal(p, King, from, KingAttacks(from)&target, moves)
	}
	return moves
}

func antichessEnd(p *Position) (Outcome, bool) {
	for _, c := range [2]Color{p.turn, p.turn.Other()} {
		if p.board.colors[c] == 0 {
			return Win(c), true
		}
	}
	return NoOutcome, false
}

// A side that cannot move wins.
func antichessNoMoves(p *Position) (Outcome, Termination) {
	return Win(p.turn), VariantEnd
}

func antichessInsufficient(p *Position, c Color) bool {
	b := &p.board
	if b.colors[c] == 0 {
		return false
	}
	if b.colors[c.Other()] == 0 {
		return true
	}
	if b.occupied == b.roles[Bishop] {
		// bishops on opposite square colors can never meet
		weLight := b.colors[c]&LightSquares != 0
		weDark := b.colors[c]&DarkSquares != 0
		theyLight := b.colors[c.Other()]&LightSquares != 0
		theyDark := b.colors[c.Other()]&DarkSquares != 0
		return !(weLight && theyLight) && !(weDark && theyDark)
	}
	return false
}

func validateAntichess(p *Position) PositionErrorKinds {
	kinds := p.validateBackrankPawns()
	kinds |= p.validateMaterial(White, 16, 8) | p.validateMaterial(Black, 16, 8)
	if p.castles.mask != 0 {
		kinds |= PositionInvalidCastlingRights
	}
	return kinds
}
