package morris

import (
	"fmt"
	"strings"
)

type Color int8

const (
	NoColor Color = -1
	White   Color = 0
	Black   Color = 1
)

// Other 返回对手颜色；NoColor 保持不变
func (c Color) Other() Color {
	switch c {
	case White:
		return Black
	case Black:
		return White
	}
	return NoColor
}

func (c Color) Valid() bool {
	return c == White || c == Black
}

func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	}
	return "none"
}

func ParseColor(s string) (Color, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "white", "w":
		return White, nil
	case "black", "b":
		return Black, nil
	case "", "none":
		return NoColor, nil
	}
	return NoColor, fmt.Errorf("unknown color %q", s)
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Color) UnmarshalText(text []byte) error {
	v, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// Cell 是一个点位的占用状态：空 / 白 / 黑
type Cell int8

const (
	Empty Cell = iota
	WhiteStone
	BlackStone
)

func cellOf(c Color) Cell {
	switch c {
	case White:
		return WhiteStone
	case Black:
		return BlackStone
	}
	return Empty
}

// Color 返回占用该点的颜色；空点返回 NoColor
func (c Cell) Color() Color {
	switch c {
	case WhiteStone:
		return White
	case BlackStone:
		return Black
	}
	return NoColor
}

type Phase int8

const (
	Placing Phase = iota
	Moving
)

func (p Phase) String() string {
	if p == Moving {
		return "moving"
	}
	return "placing"
}

// Point ∈ [1, 24]，按阅读顺序（从第 7 行到第 1 行，从左到右）编号。0 表示无效。
type Point int8

const (
	NoPoint Point = iota
	A7
	D7
	G7
	B6
	D6
	F6
	C5
	D5
	E5
	A4
	B4
	C4
	E4
	F4
	G4
	C3
	D3
	E3
	B2
	D2
	F2
	A1
	D1
	G1
)

const (
	NumPoints = 24

	MinPoint = A7
	MaxPoint = G1
)

var pointNames = [NumPoints + 1]string{
	"-",
	"a7", "d7", "g7",
	"b6", "d6", "f6",
	"c5", "d5", "e5",
	"a4", "b4", "c4", "e4", "f4", "g4",
	"c3", "d3", "e3",
	"b2", "d2", "f2",
	"a1", "d1", "g1",
}

var pointByName = func() map[string]Point {
	m := make(map[string]Point, NumPoints)
	for p := MinPoint; p <= MaxPoint; p++ {
		m[pointNames[p]] = p
	}
	return m
}()

func (p Point) Valid() bool {
	return p >= MinPoint && p <= MaxPoint
}

func (p Point) String() string {
	if !p.Valid() {
		return "<invalid point>"
	}
	return pointNames[p]
}

// ParsePoint 解析 "a7"、"D7" 之类的坐标；不在盘上的坐标返回 NoPoint 和 ErrUnknownPoint
func ParsePoint(s string) (Point, error) {
	p, ok := pointByName[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return NoPoint, fmt.Errorf("%w: %q", ErrUnknownPoint, s)
	}
	return p, nil
}

// AllPoints 按编号顺序返回全部 24 个点
func AllPoints() []Point {
	out := make([]Point, 0, NumPoints)
	for p := MinPoint; p <= MaxPoint; p++ {
		out = append(out, p)
	}
	return out
}
