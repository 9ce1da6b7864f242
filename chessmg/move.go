package chessmg

// Move encodes a chess move in a 32-bit value.
type Move uint32

// Bitfield layout within Move (from LSB to MSB)
const (
	moveFromShift    = 0  // 6 bits
	moveToShift      = 6  // 6 bits
	moveRoleShift    = 12 // 3 bits
	moveCaptureShift = 15 // 3 bits
	movePromoteShift = 18 // 3 bits
	moveKindShift    = 21 // 2 bits

	moveUsedBits = 23
)

// MoveKind tags the shape of a move.
type MoveKind uint8

const (
	KindNormal    MoveKind = 0
	KindEnPassant MoveKind = 1
	// KindCastle moves store the king square as From and the rook square as To.
	KindCastle MoveKind = 2
	// KindPut is a crazyhouse drop; From is unused.
	KindPut MoveKind = 3
)

// NoMove is the zero value; it is never legal.
const NoMove Move = 0

func newMove(kind MoveKind, role Role, from, to Square, capture, promotion Role) Move {
	return Move(uint32(from&0x3F)<<moveFromShift |
		uint32(to&0x3F)<<moveToShift |
		uint32(role&7)<<moveRoleShift |
		uint32(capture&7)<<moveCaptureShift |
		uint32(promotion&7)<<movePromoteShift |
		uint32(kind&3)<<moveKindShift)
}

// NewNormal builds a regular piece move; capture and promotion may be NoRole.
func NewNormal(role Role, from, to Square, capture, promotion Role) Move {
	return newMove(KindNormal, role, from, to, capture, promotion)
}

// NewEnPassant builds an en passant capture.
func NewEnPassant(from, to Square) Move {
	return newMove(KindEnPassant, Pawn, from, to, Pawn, NoRole)
}

// NewCastle builds a castling move from the king and rook origin squares.
func NewCastle(king, rook Square) Move {
	return newMove(KindCastle, King, king, rook, NoRole, NoRole)
}

// NewPut builds a drop of role onto to.
func NewPut(role Role, to Square) Move {
	return newMove(KindPut, role, 0, to, NoRole, NoRole)
}

func (m Move) From() Square { return Square((uint32(m) >> moveFromShift) & 0x3F) }
func (m Move) To() Square { return Square((uint32(m) >> moveToShift) & 0x3F) }
func (m Move) Role() Role { return Role((uint32(m) >> moveRoleShift) & 7) }
func (m Move) Capture() Role { return Role((uint32(m) >> moveCaptureShift) & 7) }
func (m Move) Promotion() Role { return Role((uint32(m) >> movePromoteShift) & 7) }
func (m Move) Kind() MoveKind { return MoveKind((uint32(m) >> moveKindShift) & 3) }
func (m Move) IsCapture() bool { return m.Capture() != NoRole }
func (m Move) IsCastle() bool { return m.Kind() == KindCastle }
func (m Move) IsPut() bool { return m.Kind() == KindPut }
func (m Move) IsEnPassant() bool { return m.Kind() == KindEnPassant }

// IsZeroing reports whether the move resets the halfmove clock.
func (m Move) IsZeroing() bool {
	return m.IsCapture() || (m.Role() == Pawn && m.Kind() != KindCastle)
}

// CastlingSide returns the side of a castling move.
func (m Move) CastlingSide() CastlingSide {
	if m.To() > m.From() {
		return KingSide
	}
	return QueenSide
}

// String formats the move in coordinate notation. Castling uses the
// king-takes-rook form; see Position.UCI for mode-aware output.
func (m Move) String() string {
	if m == NoMove {
		return "0000"
	}
	if m.Kind() == KindPut {
		return string(m.Role().UpperChar()) + "@" + m.To().String()
	}
	s := m.From().String() + m.To().String()
	if p := m.Promotion(); p != NoRole {
		s += string(p.Char())
	}
	return s
}
