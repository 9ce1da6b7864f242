package chessmg

// King of the hill: reaching the center wins.

func kingOfTheHillEnd(p *Position) (Outcome, bool) {
	for _, c := range [2]Color{p.turn.Other(), p.turn} {
		if p.board.Pieces(c, King)&Center != 0 {
			return Win(c), true
		}
	}
	return NoOutcome, false
}

// Three-check: giving the third check wins.

func threeCheckEnd(p *Position) (Outcome, bool) {
	for _, c := range [2]Color{White, Black} {
		if p.checks[c] == 0 {
			return Win(c), true
		}
	}
	return NoOutcome, false
}

func threeCheckInsufficient(p *Position, c Color) bool {
	return p.board.colors[c] == p.board.Pieces(c, King)
}

func validateThreeCheck(p *Position) PositionErrorKinds {
	kinds := validateStandard(p)
	if p.checks[White] > 3 || p.checks[Black] > 3 || (p.checks[White] == 0 && p.checks[Black] == 0) {
		kinds |= PositionVariant
	}
	return kinds
}

// Horde: White has a kingless army of pawns and wins by mating; Black
// wins by capturing every white piece.

func hordeEnd(p *Position) (Outcome, bool) {
	for _, c := range [2]Color{White, Black} {
		if p.board.colors[c] == 0 {
			return Win(c.Other()), true
		}
	}
	return NoOutcome, false
}

func validateHorde(p *Position) PositionErrorKinds {
	kinds := p.validateKingCount(White, 0, 0) | p.validateKingCount(Black, 1, 1)
	if p.board.Pieces(White, Pawn)&Rank8 != 0 || p.board.Pieces(Black, Pawn)&Rank1 != 0 {
		kinds |= PositionPawnsOnBackrank
	}
	kinds |= p.validateMaterial(White, 36, 36) | p.validateMaterial(Black, 16, 8)
	if p.castles.mask&Rank1 != 0 {
		kinds |= PositionInvalidCastlingRights
	}
	if kinds&(PositionMissingKing|PositionTooManyKings) == 0 {
		kinds |= p.validateChecks()
	}
	return kinds
}

// Racing kings: both kings race to the eighth rank, checks are forbidden.

func racingKingsLegal(p *Position, moves []Move) []Move {
	start := len(moves)
	moves = genLegal(p, moves)
	out := moves[:start]
	for _, m := range moves[start:] {
		next := *p
		next.playUnchecked(m)
		if next.Checkers() == 0 {
			out = append(out, m)
		}
	}
	return out
}

func racingKingsEnd(p *Position) (Outcome, bool) {
	whiteGoal := p.board.Pieces(White, King)&Rank8 != 0
	blackGoal := p.board.Pieces(Black, King)&Rank8 != 0
	switch {
	case whiteGoal && blackGoal:
		return Draw, true
	case blackGoal:
		return BlackWins, true
	case !whiteGoal:
		return NoOutcome, false
	case p.turn == White:
		return WhiteWins, true
	}
	// White arrived first; Black still draws by reaching the goal at once.
	var buf [128]Move
	king := p.board.KingOf(Black)
	for _, m := range racingKingsLegal(p, buf[:0]) {
		if m.From() == king && Rank8.Has(m.To()) {
			return NoOutcome, false
		}
	}
	return WhiteWins, true
}

func validateRacingKings(p *Position) PositionErrorKinds {
	kinds := p.validateKingCount(White, 1, 1) | p.validateKingCount(Black, 1, 1)
	kinds |= p.validateMaterial(White, 16, 8) | p.validateMaterial(Black, 16, 8)
	if p.board.roles[Pawn] != 0 {
		kinds |= PositionVariant
	}
	if p.castles.mask != 0 {
		kinds |= PositionInvalidCastlingRights
	}
	if kinds&(PositionMissingKing|PositionTooManyKings) == 0 {
		kinds |= p.validateChecks()
		if p.IsCheck() {
			kinds |= PositionVariant
		}
	}
	return kinds
}
