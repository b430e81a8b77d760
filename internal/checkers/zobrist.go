package checkers

import (
	"math/rand/v2"
	"sync"
)

// 固定种子：同一局面在任何进程里哈希值都一样
const zobristSeed = 0x636865636b657273

var (
	zobristOnce sync.Once

	// 每种棋子（黑兵、黑王、红兵、红王）在 32 个深色格上各一个键
	zobristPieces [4][NumSquares / 2]uint64
	zobristRed    uint64
)

func initZobrist() {
	zobristOnce.Do(func() {
		rng := rand.New(rand.NewPCG(zobristSeed, zobristSeed>>7))
		for k := range zobristPieces {
			for sq := range zobristPieces[k] {
				zobristPieces[k][sq] = rng.Uint64()
			}
		}
		zobristRed = rng.Uint64()
	})
}

// pieceHashKey maps a piece on a dark square to its key. Light squares are
// always empty and hash to zero.
func pieceHashKey(pc Piece, sq int) uint64 {
	row, col := sq/Cols, sq%Cols
	if pc == Empty || !playable(row, col) {
		return 0
	}
	kind := int(pc.Type()) - 1
	if pc.Owner() == Red {
		kind += 2
	}
	return zobristPieces[kind][sq/2]
}

// Hash 全量计算局面的 Zobrist 哈希（含走子方）。
func (b *Board) Hash(toMove Player) uint64 {
	initZobrist()

	var h uint64
	for sq, pc := range b.Squares {
		h ^= pieceHashKey(pc, sq)
	}
	if toMove == Red {
		h ^= zobristRed
	}
	return h
}
