package chessmg

// Play returns the position after m. Moves outside the legal set fail with
// an *IllegalMoveError and leave p untouched.
func (p *Position) Play(m Move) (*Position, error) {
	if !p.IsLegal(m) {
		return nil, &IllegalMoveError{Move: m, FEN: p.FEN()}
	}
	next := *p
	next.playUnchecked(m)
	return &next, nil
}

// put places a piece and updates the hash.
func (p *Position) put(sq Square, pc Piece) {
	if pc == NoPiece {
		return
	}
	p.board.addPiece(sq, pc)
	p.hash ^= zobristPiece[pc][sq]
}

// take removes a piece, revoking castling rights tied to it, and reports
// whether it carried the promoted mark.
func (p *Position) take(sq Square) (Piece, bool) {
	pc := p.board.removePiece(sq)
	if pc == NoPiece {
		return NoPiece, false
	}
	p.hash ^= zobristPiece[pc][sq]
	if p.castles.mask.Has(sq) {
		p.hash ^= zobristCastle[sq]
		p.castles.discardRook(sq)
	}
	if pc.Role() == King {
		p.discardCastlingColor(pc.Color())
	}
	promoted := p.promoted.Has(sq)
	if promoted {
		p.promoted = p.promoted.Without(sq)
		p.hash ^= zobristPromoted[sq]
	}
	return pc, promoted
}

func (p *Position) discardCastlingColor(c Color) {
	for m := p.castles.mask & backrank(c); m != 0; {
		p.hash ^= zobristCastle[m.PopFirst()]
	}
	p.castles.discardColor(c)
}

func (p *Position) markPromoted(sq Square) {
	p.promoted = p.promoted.With(sq)
	p.hash ^= zobristPromoted[sq]
}

func (p *Position) addToPocket(c Color, r Role) {
	n := p.pockets[c][r]
	if n >= maxPocket {
		return
	}
	p.hash ^= pocketKey(c, r, n) ^ pocketKey(c, r, n+1)
	p.pockets[c][r] = n + 1
}

func (p *Position) removeFromPocket(c Color, r Role) {
	n := p.pockets[c][r]
	if n == 0 {
		return
	}
	p.hash ^= pocketKey(c, r, n) ^ pocketKey(c, r, n-1)
	p.pockets[c][r] = n - 1
}

func (p *Position) setChecks(c Color, n uint8) {
	p.hash ^= zobristChecks[c][p.checks[c]] ^ zobristChecks[c][n]
	p.checks[c] = n
}

// explode removes the piece on sq and every non-pawn around it.
func (p *Position) explode(sq Square) {
	p.take(sq)
	for ring := KingAttacks(sq) & p.board.occupied &^ p.board.roles[Pawn]; ring != 0; {
		p.take(ring.PopFirst())
	}
}

// playUnchecked applies a move known to be legal.
func (p *Position) playUnchecked(m Move) {
	us, them := p.turn, p.turn.Other()
	p.hash ^= p.epKey()
	p.epSquare = NoSquare
	p.halfmoves++
	if m.IsZeroing() {
		p.halfmoves = 0
	}

	switch m.Kind() {
	case KindNormal:
		from, to := m.From(), m.To()
		piece, wasPromoted := p.take(from)
		captured, capturedPromoted := p.take(to)
		if captured != NoPiece {
			p.halfmoves = 0
			if p.variant.HasPockets() {
				role := captured.Role()
				if capturedPromoted {
					role = Pawn
				}
				p.addToPocket(us, role)
			}
		}
		if piece.Role() == Pawn && (to-from == 16 || from-to == 16) {
			p.epSquare = (from + to) / 2
		}
		if promo := m.Promotion(); promo != NoRole {
			p.put(to, NewPiece(us, promo))
			if p.variant.HasPockets() {
				p.markPromoted(to)
			}
		} else {
			p.put(to, piece)
			if wasPromoted {
				p.markPromoted(to)
			}
		}
		if p.variant == Atomic && captured != NoPiece {
			p.explode(to)
		}
	case KindEnPassant:
		from, to := m.From(), m.To()
		pawn, _ := p.take(from)
		p.take(SquareAt(to.File(), from.Rank()))
		p.put(to, pawn)
		if p.variant.HasPockets() {
			p.addToPocket(us, Pawn)
		}
		if p.variant == Atomic {
			p.explode(to)
		}
	case KindCastle:
		side := m.CastlingSide()
		king, _ := p.take(m.From())
		rook, _ := p.take(m.To())
		p.put(side.KingTo(us), king)
		p.put(side.RookTo(us), rook)
	case KindPut:
		p.removeFromPocket(us, m.Role())
		p.put(m.To(), NewPiece(us, m.Role()))
	}

	if us == Black {
		p.fullmoves++
	}
	p.turn = them
	p.hash ^= zobristSide

	if p.variant.HasChecks() && p.checks[us] > 0 && p.Checkers() != 0 {
		p.setChecks(us, p.checks[us]-1)
	}
	p.hash ^= p.epKey()
}
