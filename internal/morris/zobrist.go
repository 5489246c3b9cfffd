package morris

import (
	"math/rand/v2"
	"sync"
)

var (
	zobristOnce sync.Once

	zobristCells   [2][NumPoints + 1]uint64
	zobristSide    uint64
	zobristCapture uint64
	zobristMoving  uint64
)

// 固定种子，保证同一局面在不同进程中的哈希一致
const zobristSeed = 0x4d6f72726973

func initZobrist() {
	zobristOnce.Do(func() {
		rng := rand.New(rand.NewPCG(zobristSeed, NumPoints))
		for _, keys := range []*[NumPoints + 1]uint64{&zobristCells[White], &zobristCells[Black]} {
			for p := MinPoint; p <= MaxPoint; p++ {
				keys[p] = rng.Uint64()
			}
		}
		zobristSide = rng.Uint64()
		zobristCapture = rng.Uint64()
		zobristMoving = rng.Uint64()
	})
}

// Hash 只覆盖棋盘占用
func (b Board) Hash() uint64 {
	initZobrist()

	var h uint64
	for p := MinPoint; p <= MaxPoint; p++ {
		if c := b.Cells[p].Color(); c.Valid() {
			h ^= zobristCells[c][p]
		}
	}
	return h
}

// Hash 覆盖棋盘、轮到谁、阶段和待提子标记；不包含待落子数与历史
func (g *Game) Hash() uint64 {
	h := g.board.Hash()
	if g.current == Black {
		h ^= zobristSide
	}
	if g.phase == Moving {
		h ^= zobristMoving
	}
	if g.captureDue {
		h ^= zobristCapture
	}
	return h
}
