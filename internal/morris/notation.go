package morris

import (
	"strconv"
	"strings"
)

// 简单记谱：24 个格子（A7..G1，'.' 空，'W' 白，'B' 黑），空格后 w/b 表示轮到谁，
// 再跟白、黑两方的待落子数；末尾可选 'x' 表示当前方已成三、正等待提子。
// 例如开局："........................ w 9 9"
func (g *Game) Encode() string {
	var sb strings.Builder
	for p := MinPoint; p <= MaxPoint; p++ {
		switch g.board.At(p) {
		case WhiteStone:
			sb.WriteByte('W')
		case BlackStone:
			sb.WriteByte('B')
		default:
			sb.WriteByte('.')
		}
	}
	sb.WriteByte(' ')
	if g.current == Black {
		sb.WriteByte('b')
	} else {
		sb.WriteByte('w')
	}
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(g.pieces[White].Unplaced))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(g.pieces[Black].Unplaced))
	if g.captureDue {
		sb.WriteString(" x")
	}
	return sb.String()
}

// Decode 从记谱恢复一局。盘上位置按编号顺序写入双方的 Pieces；历史为空。
func Decode(s string) (*Game, error) {
	fields := strings.Fields(s)
	if len(fields) != 4 && len(fields) != 5 {
		return nil, ErrInvalidNotation
	}
	cells := fields[0]
	if len(cells) != NumPoints {
		return nil, ErrInvalidNotation
	}

	g := &Game{}
	for i := 0; i < NumPoints; i++ {
		p := MinPoint + Point(i)
		var c Color
		switch cells[i] {
		case '.':
			continue
		case 'W', 'w':
			c = White
		case 'B', 'b':
			c = Black
		default:
			return nil, ErrInvalidNotation
		}
		g.board.Cells[p] = cellOf(c)
		g.pieces[c].OnBoard++
		g.pieces[c].Positions = append(g.pieces[c].Positions, p)
	}

	switch fields[1] {
	case "w":
		g.current = White
	case "b":
		g.current = Black
	default:
		return nil, ErrInvalidNotation
	}

	for i, c := range [...]Color{White, Black} {
		n, err := strconv.Atoi(fields[2+i])
		if err != nil || n < 0 || n+g.pieces[c].OnBoard > PiecesPerPlayer {
			return nil, ErrInvalidNotation
		}
		g.pieces[c].Unplaced = n
	}
	// 双方交替落子，待落子数最多相差 1
	if d := g.pieces[White].Unplaced - g.pieces[Black].Unplaced; d > 1 || d < -1 {
		return nil, ErrInvalidNotation
	}
	if g.pieces[White].Unplaced == 0 && g.pieces[Black].Unplaced == 0 {
		g.phase = Moving
	}

	if len(fields) == 5 {
		if fields[4] != "x" || g.pieces[g.current.Other()].OnBoard == 0 || len(g.board.Mills(g.current)) == 0 {
			return nil, ErrInvalidNotation
		}
		g.captureDue = true
	}

	// 待落子数不等时：轮到待落子多的一方；若正等待提子，则是刚落子（待落子少）的一方
	if d := g.pieces[g.current].Unplaced - g.pieces[g.current.Other()].Unplaced; d != 0 {
		if g.captureDue != (d < 0) {
			return nil, ErrInvalidNotation
		}
	}
	return g, nil
}
