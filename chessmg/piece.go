package chessmg

// Role is a colorless piece kind.
type Role uint8

const (
	NoRole Role = 0
	Pawn   Role = 1
	Knight Role = 2
	Bishop Role = 3
	Rook   Role = 4
	Queen  Role = 5
	King   Role = 6
)

// Roles lists all real roles in ascending value order.
var Roles = [...]Role{Pawn, Knight, Bishop, Rook, Queen, King}

var roleChars = [...]byte{0, 'p', 'n', 'b', 'r', 'q', 'k'}

// Char returns the lowercase letter of the role, or 0 for NoRole.
func (r Role) Char() byte {
	if r > King {
		return 0
	}
	return roleChars[r]
}

// UpperChar returns the uppercase letter of the role as used in SAN.
func (r Role) UpperChar() byte {
	ch := r.Char()
	if ch == 0 {
		return 0
	}
	return ch - 'a' + 'A'
}

func (r Role) String() string {
	switch r {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	}
	return "none"
}

// RoleFromChar parses a role letter in either case.
func RoleFromChar(ch byte) (Role, bool) {
	if ch >= 'A' && ch <= 'Z' {
		ch += 'a' - 'A'
	}
	for r := Pawn; r <= King; r++ {
		if roleChars[r] == ch {
			return r, true
		}
	}
	return NoRole, false
}

// Piece is a colored role.
type Piece uint8

const (
	NoPiece     Piece = 0
	WhitePawn   Piece = 1
	WhiteKnight Piece = 2
	WhiteBishop Piece = 3
	WhiteRook   Piece = 4
	WhiteQueen  Piece = 5
	WhiteKing   Piece = 6

	// Black pieces are encoded as (white piece | 8) so that
	// piece & 7 gives the role and piece & 8 marks Black.
	BlackPawn   Piece = 1 | 8
	BlackKnight Piece = 2 | 8
	BlackBishop Piece = 3 | 8
	BlackRook   Piece = 4 | 8
	BlackQueen  Piece = 5 | 8
	BlackKing   Piece = 6 | 8
)

// NewPiece combines a side and a role.
func NewPiece(c Color, r Role) Piece {
	if r == NoRole {
		return NoPiece
	}
	return Piece(r) | Piece(c)<<3
}

func (p Piece) Role() Role   { return Role(p & 7) }
func (p Piece) Color() Color { return Color(p>>3) & 1 }

// Valid reports whether p encodes a real piece.
func (p Piece) Valid() bool {
	r := p.Role()
	return p&^15 == 0 && r >= Pawn && r <= King
}

// Char returns the FEN letter: uppercase for White, lowercase for Black.
func (p Piece) Char() byte {
	if p == NoPiece {
		return '.'
	}
	if p.Color() == White {
		return p.Role().UpperChar()
	}
	return p.Role().Char()
}

// PieceFromChar parses a FEN piece letter.
func PieceFromChar(ch byte) (Piece, bool) {
	r, ok := RoleFromChar(ch)
	if !ok {
		return NoPiece, false
	}
	if ch >= 'a' && ch <= 'z' {
		return NewPiece(Black, r), true
	}
	return NewPiece(White, r), true
}

func (p Piece) String() string { return string(p.Char()) }
