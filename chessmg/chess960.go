package chessmg

import "fmt"

// knightPairs enumerates the ten placements of two knights on five squares.
var knightPairs = [10][2]int{
	{0, 1}, {0, 2}, {0, 3}, {0, 4}, {1, 2},
	{1, 3}, {1, 4}, {2, 3}, {2, 4}, {3, 4},
}

// Chess960BackRank returns the white back rank of start position idx
// (0-959) in the standard numbering, where 518 is the classical setup.
func Chess960BackRank(idx int) ([8]Role, error) {
	var rank [8]Role
	if idx < 0 || idx > 959 {
		return rank, fmt.Errorf("%w: chess960 index %d out of range", ErrInvalidPosition, idx)
	}
	n := idx
	rank[2*(n%4)+1] = Bishop // light square
	n /= 4
	rank[2*(n%4)] = Bishop // dark square
	n /= 4
	placeNth(&rank, n%6, Queen)
	n /= 6
	pair := knightPairs[n]
	// place the second knight first so the first index is unaffected
	placeNth(&rank, pair[1], Knight)
	placeNth(&rank, pair[0], Knight)
	placeNth(&rank, 0, Rook)
	placeNth(&rank, 0, King)
	placeNth(&rank, 0, Rook)
	return rank, nil
}

// placeNth puts r on the n-th (0-based) empty file.
func placeNth(rank *[8]Role, n int, r Role) {
	for file := range rank {
		if rank[file] != NoRole {
			continue
		}
		if n == 0 {
			rank[file] = r
			return
		}
		n--
	}
}

// Chess960Position returns start position idx with full castling rights.
func Chess960Position(idx int) (*Position, error) {
	back, err := Chess960BackRank(idx)
	if err != nil {
		return nil, err
	}
	setup := Setup{EpSquare: NoSquare, Fullmoves: 1}
	for file, r := range back {
		setup.Board.addPiece(SquareAt(file, 0), NewPiece(White, r))
		setup.Board.addPiece(SquareAt(file, 1), WhitePawn)
		setup.Board.addPiece(SquareAt(file, 6), BlackPawn)
		setup.Board.addPiece(SquareAt(file, 7), NewPiece(Black, r))
	}
	rooks := setup.Board.Pieces(White, Rook) | setup.Board.Pieces(Black, Rook)
	setup.CastlingRights = rooks
	return FromSetup(setup, Chess960, CastlingChess960)
}
