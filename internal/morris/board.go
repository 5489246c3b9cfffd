package morris

type Direction int8

const (
	Above Direction = iota
	Left
	Right
	Below

	numDirections = 4
)

// Opposite: 上<->下，左<->右
func (d Direction) Opposite() Direction {
	return numDirections - 1 - d
}

func (d Direction) String() string {
	switch d {
	case Above:
		return "above"
	case Left:
		return "left"
	case Right:
		return "right"
	case Below:
		return "below"
	}
	return "?"
}

var directions = [numDirections]Direction{Above, Left, Right, Below}

// 每个点在四个方向上的邻居，NoPoint 表示该方向没有连线
type links [numDirections]Point

// 三个同心正方形 + 四条中线连接。构造完成后不再改变。
var topology = [NumPoints + 1]links{
	A7: {Right: D7, Below: A4},
	D7: {Left: A7, Right: G7, Below: D6},
	G7: {Left: D7, Below: G4},

	B6: {Right: D6, Below: B4},
	D6: {Above: D7, Left: B6, Right: F6, Below: D5},
	F6: {Left: D6, Below: F4},

	C5: {Right: D5, Below: C4},
	D5: {Above: D6, Left: C5, Right: E5},
	E5: {Left: D5, Below: E4},

	A4: {Above: A7, Right: B4, Below: A1},
	B4: {Above: B6, Left: A4, Right: C4, Below: B2},
	C4: {Above: C5, Left: B4, Below: C3},
	E4: {Above: E5, Right: F4, Below: E3},
	F4: {Above: F6, Left: E4, Right: G4, Below: F2},
	G4: {Above: G7, Left: F4, Below: G1},

	C3: {Above: C4, Right: D3},
	D3: {Left: C3, Right: E3, Below: D2},
	E3: {Above: E4, Left: D3},

	B2: {Above: B4, Right: D2},
	D2: {Above: D3, Left: B2, Right: F2, Below: D1},
	F2: {Above: F4, Left: D2},

	A1: {Above: A4, Right: D1},
	D1: {Above: D2, Left: A1, Right: G1},
	G1: {Above: G4, Left: D1},
}

// Neighbor 返回 p 在方向 d 上的邻居，没有则返回 NoPoint
func Neighbor(p Point, d Direction) Point {
	if !p.Valid() || d < 0 || d >= numDirections {
		return NoPoint
	}
	return topology[p][d]
}

// Adjacent 返回 p 的所有邻居（上、左、右、下的顺序）
func Adjacent(p Point) []Point {
	if !p.Valid() {
		return nil
	}
	out := make([]Point, 0, numDirections)
	for _, q := range topology[p] {
		if q != NoPoint {
			out = append(out, q)
		}
	}
	return out
}

func IsAdjacent(a, b Point) bool {
	if !a.Valid() || !b.Valid() {
		return false
	}
	for _, q := range topology[a] {
		if q == b {
			return true
		}
	}
	return false
}

// Board 只保存占用状态，拓扑是全局只读表。值类型，拷贝即快照。
type Board struct {
	Cells [NumPoints + 1]Cell
}

func (b Board) At(p Point) Cell {
	if !p.Valid() {
		return Empty
	}
	return b.Cells[p]
}

func (b Board) occupiedBy(p Point, c Color) bool {
	return p.Valid() && c.Valid() && b.Cells[p] == cellOf(c)
}

// Count 统计某一方在盘上的棋子数
func (b Board) Count(c Color) int {
	n := 0
	for p := MinPoint; p <= MaxPoint; p++ {
		if b.occupiedBy(p, c) {
			n++
		}
	}
	return n
}

// Place 在空点落下一枚 c 色棋子
func (b *Board) Place(c Color, p Point) error {
	if !c.Valid() {
		return ErrInvalidColor
	}
	if !p.Valid() {
		return ErrInvalidPosition
	}
	if b.Cells[p] != Empty {
		return ErrAlreadyOccupied
	}
	b.Cells[p] = cellOf(c)
	return nil
}

// Move 把 c 色棋子从 from 移到 to。flying=true 时不检查相邻。
// 校验顺序固定：坐标 -> 内容 -> 相邻，任何失败都不修改棋盘。
func (b *Board) Move(c Color, from, to Point, flying bool) error {
	if !from.Valid() {
		return ErrInvalidFrom
	}
	if !to.Valid() {
		return ErrInvalidTo
	}
	if !b.occupiedBy(from, c) {
		return ErrWrongColorAtFrom
	}
	if b.Cells[to] != Empty {
		return ErrToOccupied
	}
	if !flying && !IsAdjacent(from, to) {
		return ErrNotAdjacent
	}
	b.Cells[from] = Empty
	b.Cells[to] = cellOf(c)
	return nil
}

// Remove 由 acting 方提走对手在 p 上的棋子。
// enforceMillProtection=true 时，处于三连中的棋子不能被提。
func (b *Board) Remove(acting Color, p Point, enforceMillProtection bool) error {
	if !p.Valid() {
		return ErrInvalidPosition
	}
	if b.Cells[p] == Empty {
		return ErrEmptyPosition
	}
	opponent := acting.Other()
	if !b.occupiedBy(p, opponent) {
		return ErrWrongColor
	}
	if enforceMillProtection && b.InMill(opponent, p) {
		return ErrProtectedByMill
	}
	b.Cells[p] = Empty
	return nil
}

// CanMoveFrom: p 上是 c 色棋子，且至少有一个相邻空点
func (b Board) CanMoveFrom(c Color, p Point) bool {
	if !b.occupiedBy(p, c) {
		return false
	}
	for _, q := range topology[p] {
		if q != NoPoint && b.Cells[q] == Empty {
			return true
		}
	}
	return false
}
