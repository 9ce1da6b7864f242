package chessmg

// validate runs the checks shared by all variants plus the variant hook.
func (p *Position) validate() PositionErrorKinds {
	var kinds PositionErrorKinds
	if p.board.occupied == 0 {
		kinds |= PositionEmptyBoard
	}
	kinds |= p.validateEp()
	kinds |= p.variant.rules().validate(p)
	return kinds
}

func (p *Position) validateEp() PositionErrorKinds {
	ep := p.epSquare
	if ep == NoSquare {
		return 0
	}
	us, them := p.turn, p.turn.Other()
	rankOK := relativeRank(us, 5).Has(ep)
	if p.variant == Horde && us == Black && ep.Rank() == 1 {
		// white pawns may double push from the first rank
		rankOK = true
	}
	if !rankOK {
		return PositionInvalidEpSquare
	}
	pushed := ep + forward(them)
	origin := ep - forward(them)
	if p.board.PieceAt(pushed) != NewPiece(them, Pawn) ||
		p.board.occupied.Has(ep) || p.board.occupied.Has(origin) {
		return PositionInvalidEpSquare
	}
	return 0
}

func (p *Position) validateKingCount(c Color, lo, hi int) PositionErrorKinds {
	n := p.board.Pieces(c, King).Count()
	switch {
	case n < lo:
		return PositionMissingKing
	case n > hi:
		return PositionTooManyKings
	}
	return 0
}

func (p *Position) validateMaterial(c Color, pieces, pawns int) PositionErrorKinds {
	if p.board.colors[c].Count() > pieces || p.board.Pieces(c, Pawn).Count() > pawns {
		return PositionTooMuchMaterial
	}
	return 0
}

func (p *Position) validateBackrankPawns() PositionErrorKinds {
	if p.board.roles[Pawn]&Backranks != 0 {
		return PositionPawnsOnBackrank
	}
	return 0
}

// validateChecks rejects positions where the side that just moved is in
// check or the side to move faces an impossible set of checkers.
func (p *Position) validateChecks() PositionErrorKinds {
	us, them := p.turn, p.turn.Other()
	occ := p.board.occupied
	if k := p.board.KingOf(them); k != NoSquare && p.board.AttacksTo(k, us, occ) != 0 {
		return PositionOppositeCheck
	}
	king := p.board.KingOf(us)
	if king == NoSquare {
		return 0
	}
	checkers := p.board.AttacksTo(king, them, occ)
	switch n := checkers.Count(); {
	case n > 2:
		return PositionImpossibleCheck
	case n == 2 && Aligned(checkers.First(), checkers.Last(), king):
		return PositionImpossibleCheck
	}
	return 0
}

func validateStandard(p *Position) PositionErrorKinds {
	kinds := p.validateKingCount(White, 1, 1) | p.validateKingCount(Black, 1, 1)
	kinds |= p.validateBackrankPawns()
	kinds |= p.validateMaterial(White, 16, 8) | p.validateMaterial(Black, 16, 8)
	if kinds&(PositionMissingKing|PositionTooManyKings) == 0 {
		kinds |= p.validateChecks()
	}
	return kinds
}
