package morris

import "strings"

// Glyphs 是渲染时三种状态使用的字符
type Glyphs struct {
	Empty string `json:"empty"`
	White string `json:"white"`
	Black string `json:"black"`
}

var DefaultGlyphs = Glyphs{Empty: "·", White: "○", Black: "●"}

func (g Glyphs) of(c Cell) string {
	switch c {
	case WhiteStone:
		return g.White
	case BlackStone:
		return g.Black
	}
	return g.Empty
}

// '*' 依次被 A7..G1 替换，顺序与 Point 编号一致
var boardLayout = [...]string{
	"7 *-----------*-----------*",
	"  |           |           |",
	"6 |   *-------*-------*   |",
	"  |   |       |       |   |",
	"5 |   |   *---*---*   |   |",
	"  |   |   |       |   |   |",
	"4 *---*---*       *---*---*",
	"  |   |   |       |   |   |",
	"3 |   |   *---*---*   |   |",
	"  |   |       |       |   |",
	"2 |   *-------*-------*   |",
	"  |           |           |",
	"1 *-----------*-----------*",
	"  a   b   c   d   e   f   g",
}

// Render 输出固定 7×7 布局的文本棋盘
func (b Board) Render(glyphs Glyphs) string {
	var sb strings.Builder
	p := MinPoint
	for i, line := range boardLayout {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for _, r := range line {
			if r == '*' {
				sb.WriteString(glyphs.of(b.At(p)))
				p++
				continue
			}
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
