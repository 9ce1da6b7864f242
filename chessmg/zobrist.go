package chessmg

import "math/rand"

// Zobrist hashing tables.
var zobristPiece [15][64]uint64               // indexed by piece code and square
var zobristCastle [64]uint64                  // per castling rook square
var zobristEnPassant [8]uint64                // per en passant file
var zobristSide uint64                        // Black to move
var zobristChecks [2][4]uint64                // remaining checks, the 3 slot stays zero
var zobristPocket [2][7][maxPocket + 1]uint64 // pocket counts, the 0 slot stays zero
var zobristPromoted [64]uint64

const maxPocket = 64

func init() {
	initZobrist()
}

func initZobrist() {
	// Use a fixed seed so hashes are reproducible across runs
	rnd := rand.New(rand.NewSource(0xC0DE))

	for p := 0; p < 15; p++ {
		for sq := 0; sq < 64; sq++ {
			zobristPiece[p][sq] = rnd.Uint64()
		}
	}
	for sq := 0; sq < 64; sq++ {
		zobristCastle[sq] = rnd.Uint64()
	}
	for f := 0; f < 8; f++ {
		zobristEnPassant[f] = rnd.Uint64()
	}
	zobristSide = rnd.Uint64()

	for c := 0; c < 2; c++ {
		for n := 0; n < 3; n++ {
			zobristChecks[c][n] = rnd.Uint64()
		}
		for r := Pawn; r <= King; r++ {
			for n := 1; n <= maxPocket; n++ {
				zobristPocket[c][r][n] = rnd.Uint64()
			}
		}
	}
	for sq := 0; sq < 64; sq++ {
		zobristPromoted[sq] = rnd.Uint64()
	}
}

func pocketKey(c Color, r Role, n uint8) uint64 {
	if n > maxPocket {
		n = maxPocket
	}
	return zobristPocket[c][r][n]
}

// epKey returns the en passant contribution, present only when a pawn of
// the side to move could capture.
func (p *Position) epKey() uint64 {
	if sq := p.epCandidate(); sq != NoSquare {
		return zobristEnPassant[sq.File()]
	}
	return 0
}

// ComputeHash recomputes the Zobrist hash from scratch. It always equals
// Hash() for positions built by this package.
func (p *Position) ComputeHash() uint64 {
	var key uint64
	p.board.Each(func(sq Square, pc Piece) {
		key ^= zobristPiece[pc][sq]
	})
	// Side to move (only XOR if Black to move)
	if p.turn == Black {
		key ^= zobristSide
	}
	for m := p.castles.mask; m != 0; {
		key ^= zobristCastle[m.PopFirst()]
	}
	key ^= p.epKey()

	if p.variant.HasChecks() {
		key ^= zobristChecks[White][p.checks[White]] ^ zobristChecks[Black][p.checks[Black]]
	}
	if p.variant.HasPockets() {
		for c := White; c <= Black; c++ {
			for r := Pawn; r <= Queen; r++ {
				key ^= pocketKey(c, r, p.pockets[c][r])
			}
		}
		for m := p.promoted; m != 0; {
			key ^= zobristPromoted[m.PopFirst()]
		}
	}
	return key
}
