package chessmg

// Crazyhouse: captured pieces go to the capturer's pocket and may be
// dropped back onto empty squares.

var droppableRoles = [...]Role{Pawn, Knight, Bishop, Rook, Queen}

func crazyhouseLegal(p *Position, moves []Move) []Move {
	moves = genLegal(p, moves)
	pocket := p.pockets[p.turn]
	if pocket.Count() == 0 {
		return moves
	}
	targets := ^p.board.occupied
	if checkers := p.Checkers(); checkers != 0 {
		// only interposing on a single slider check helps
		if checker := checkers.Single(); checker != NoSquare {
			targets &= Between(p.board.KingOf(p.turn), checker)
		} else {
			targets = 0
		}
	}
	for _, r := range droppableRoles {
		if pocket[r] == 0 {
			continue
		}
		t := targets
		if r == Pawn {
			t &^= Backranks
		}
		for t != 0 {
			moves = append(moves, NewPut(r, t.PopFirst()))
		}
	}
	return moves
}

func crazyhouseInsufficient(p *Position, _ Color) bool {
	b := &p.board
	white, black := p.pockets[White], p.pockets[Black]
	if b.occupied.Count()+white.Count()+black.Count() > 3 {
		return false
	}
	if p.promoted != 0 || b.roles[Pawn]|b.RooksAndQueens() != 0 {
		return false
	}
	for _, r := range [...]Role{Pawn, Rook, Queen} {
		if white[r] != 0 || black[r] != 0 {
			return false
		}
	}
	return true
}

func validateCrazyhouse(p *Position) PositionErrorKinds {
	kinds := p.validateKingCount(White, 1, 1) | p.validateKingCount(Black, 1, 1)
	kinds |= p.validateBackrankPawns()
	white, black := p.pockets[White], p.pockets[Black]
	if p.board.occupied.Count()+white.Count()+black.Count() > 64 {
		kinds |= PositionTooMuchMaterial
	}
	if p.board.roles[Pawn].Count()+int(white[Pawn])+int(black[Pawn]) > 16 {
		kinds |= PositionTooMuchMaterial
	}
	if white[King] != 0 || black[King] != 0 || p.promoted&^p.board.occupied != 0 {
		kinds |= PositionVariant
	}
	if kinds&(PositionMissingKing|PositionTooManyKings) == 0 {
		kinds |= p.validateChecks()
	}
	return kinds
}
