package chessmg

// UCI formats a move in coordinate notation. In standard castling mode a
// castle is written as the king's two-square step (e1g1), in Chess960 mode
// as king takes own rook (e1h1).
func (p *Position) UCI(m Move) string {
	if m.Kind() == KindCastle && p.mode == CastlingStandard {
		return m.From().String() + m.CastlingSide().KingTo(p.turn).String()
	}
	return m.String()
}

// ParseUCI parses coordinate notation and returns the matching legal move.
func (p *Position) ParseUCI(uci string) (Move, error) {
	if uci == "0000" {
		return NoMove, &UciError{Uci: uci, Reason: "null move"}
	}
	var from, to Square
	var promo Role
	var drop Role
	switch {
	case len(uci) == 4 && uci[1] == '@':
		r, ok := RoleFromChar(uci[0])
		if !ok || uci[0] < 'A' || uci[0] > 'Z' || r == King {
			return NoMove, &UciError{Uci: uci, Reason: "bad drop role"}
		}
		sq, ok := ParseSquare(uci[2:])
		if !ok {
			return NoMove, &UciError{Uci: uci, Reason: "bad square"}
		}
		drop, to = r, sq
	case len(uci) == 4 || len(uci) == 5:
		var ok1, ok2 bool
		from, ok1 = ParseSquare(uci[0:2])
		to, ok2 = ParseSquare(uci[2:4])
		if !ok1 || !ok2 {
			return NoMove, &UciError{Uci: uci, Reason: "bad square"}
		}
		if len(uci) == 5 {
			r, ok := RoleFromChar(uci[4])
			if !ok || r == Pawn || uci[4] < 'a' {
				return NoMove, &UciError{Uci: uci, Reason: "bad promotion"}
			}
			promo = r
		}
	default:
		return NoMove, &UciError{Uci: uci, Reason: "malformed"}
	}

	for _, m := range p.LegalMoves() {
		switch m.Kind() {
		case KindPut:
			if drop != NoRole && m.Role() == drop && m.To() == to {
				return m, nil
			}
		case KindCastle:
			if drop != NoRole || promo != NoRole || m.From() != from {
				continue
			}
			if m.To() == to {
				return m, nil
			}
			if p.mode == CastlingStandard && m.CastlingSide().KingTo(p.turn) == to {
				return m, nil
			}
		default:
			if drop == NoRole && m.From() == from && m.To() == to && m.Promotion() == promo {
				return m, nil
			}
		}
	}
	return NoMove, &UciError{Uci: uci, Reason: "illegal in position"}
}

// ParseMove accepts either UCI or SAN text.
func (p *Position) ParseMove(text string) (Move, error) {
	if m, err := p.ParseUCI(text); err == nil {
		return m, nil
	}
	return p.ParseSAN(text)
}
