package morris

const PiecesPerPlayer = 9

// Pieces 记录一方的棋子：待落子数、盘上子数、盘上位置（有序、无重复）
type Pieces struct {
	Unplaced  int     `json:"unplaced"`
	OnBoard   int     `json:"on_board"`
	Positions []Point `json:"positions"`
}

func NewPieces() Pieces {
	return Pieces{Unplaced: PiecesPerPlayer}
}

// Place 只在还有待落子时生效，否则静默忽略
func (ps *Pieces) Place(p Point) {
	if ps.Unplaced <= 0 || ps.Has(p) {
		return
	}
	ps.Unplaced--
	ps.OnBoard++
	ps.Positions = append(ps.Positions, p)
}

// Capture 记录被对手提走一枚棋子。p 不在记录中时不做任何事，保持 OnBoard == len(Positions)。
func (ps *Pieces) Capture(p Point) {
	if ps.OnBoard <= 0 {
		return
	}
	i := ps.index(p)
	if i < 0 {
		return
	}
	ps.Positions = append(ps.Positions[:i], ps.Positions[i+1:]...)
	ps.OnBoard--
}

// Relocate 把 from 换成 to，数量和顺序不变
func (ps *Pieces) Relocate(from, to Point) {
	i := ps.index(from)
	if i < 0 || ps.Has(to) {
		return
	}
	ps.Positions[i] = to
}

func (ps Pieces) Has(p Point) bool {
	return ps.index(p) >= 0
}

// Remaining = 待落子 + 盘上子
func (ps Pieces) Remaining() int {
	return ps.Unplaced + ps.OnBoard
}

func (ps Pieces) Clone() Pieces {
	ps.Positions = append([]Point(nil), ps.Positions...)
	return ps
}

func (ps Pieces) index(p Point) int {
	for i, q := range ps.Positions {
		if q == p {
			return i
		}
	}
	return -1
}
