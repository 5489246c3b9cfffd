package morris

import "fmt"

const millLength = 3

// Line 是一条可成三的直线（三个点）
type Line [millLength]Point

// 16 条直线由拓扑推导：从没有左邻居的点向右走、从没有上邻居的点向下走
var (
	lines        = buildLines()
	linesByPoint = indexLines(lines)
)

func buildLines() []Line {
	var out []Line
	walk := func(start Point, back, forward Direction) {
		if topology[start][back] != NoPoint {
			return
		}
		var l Line
		n := 0
		for p := start; p != NoPoint; p = topology[p][forward] {
			if n == millLength {
				panic(fmt.Sprintf("line from %v is longer than %d", start, millLength))
			}
			l[n] = p
			n++
		}
		if n != millLength {
			panic(fmt.Sprintf("line from %v has %d points", start, n))
		}
		out = append(out, l)
	}
	for p := MinPoint; p <= MaxPoint; p++ {
		walk(p, Left, Right)
	}
	for p := MinPoint; p <= MaxPoint; p++ {
		walk(p, Above, Below)
	}
	if len(out) != 16 {
		panic(fmt.Sprintf("expected 16 lines, got %d", len(out)))
	}
	return out
}

func indexLines(ls []Line) [NumPoints + 1][]int {
	var idx [NumPoints + 1][]int
	for i, l := range ls {
		for _, p := range l {
			idx[p] = append(idx[p], i)
		}
	}
	return idx
}

// Lines 返回全部 16 条直线的拷贝
func Lines() []Line {
	return append([]Line(nil), lines...)
}

// InMill 判断 p 上的 c 色棋子是否处于某条全为 c 色的直线中
func (b Board) InMill(c Color, p Point) bool {
	if !b.occupiedBy(p, c) {
		return false
	}
	for _, i := range linesByPoint[p] {
		if b.lineOwnedBy(lines[i], c) {
			return true
		}
	}
	return false
}

func (b Board) lineOwnedBy(l Line, c Color) bool {
	for _, p := range l {
		if !b.occupiedBy(p, c) {
			return false
		}
	}
	return true
}

// Mills 返回当前所有被 c 完全占据的直线
func (b Board) Mills(c Color) []Line {
	var out []Line
	for _, l := range lines {
		if b.lineOwnedBy(l, c) {
			out = append(out, l)
		}
	}
	return out
}

// inMillByWalk 是逐方向行走的判定：先看左右 / 上下是否同色（处于中间），
// 再沿四个方向各走两步计数。结果必须与 InMill 一致，只在测试中用来对照。
func (b Board) inMillByWalk(c Color, p Point) bool {
	if !b.occupiedBy(p, c) {
		return false
	}
	if b.occupiedBy(Neighbor(p, Left), c) && b.occupiedBy(Neighbor(p, Right), c) {
		return true
	}
	if b.occupiedBy(Neighbor(p, Above), c) && b.occupiedBy(Neighbor(p, Below), c) {
		return true
	}
	for _, d := range directions {
		found := 1
		for q := Neighbor(p, d); b.occupiedBy(q, c); q = Neighbor(q, d) {
			found++
			if found == millLength {
				return true
			}
		}
	}
	return false
}
