package morris

import (
	"fmt"
	"strings"
)

const (
	// 盘上子数不超过该值时可以“飞”
	flyingThreshold = 3
	// 少于该子数（含待落子）判负
	minPieces = 3
)

// Turn 记录一个完整回合：落子时 From 为 NoPoint；没有提子时 Removed 为 NoPoint
type Turn struct {
	Color   Color `json:"color"`
	From    Point `json:"from"`
	To      Point `json:"to"`
	Removed Point `json:"removed"`
}

func (t Turn) String() string {
	var sb strings.Builder
	sb.WriteString(t.Color.String())
	sb.WriteByte(' ')
	if t.From.Valid() {
		sb.WriteString(t.From.String())
		sb.WriteByte('-')
	}
	sb.WriteString(t.To.String())
	if t.Removed.Valid() {
		sb.WriteString(" x")
		sb.WriteString(t.Removed.String())
	}
	return sb.String()
}

// Game 是整局状态机：棋盘 + 双方棋子 + 阶段 + 轮到谁。
// 所有修改都经过 Place / Move / Remove，失败时状态保持不变。
type Game struct {
	board      Board
	pieces     [2]Pieces
	phase      Phase
	current    Color
	captureDue bool
	history    []Turn
}

// NewGame 开始新的一局，first 先行
func NewGame(first Color) *Game {
	if !first.Valid() {
		first = White
	}
	return &Game{
		pieces:  [2]Pieces{NewPieces(), NewPieces()},
		phase:   Placing,
		current: first,
	}
}

func (g *Game) Phase() Phase     { return g.phase }
func (g *Game) Current() Color   { return g.current }
func (g *Game) Board() Board     { return g.board }
func (g *Game) CaptureDue() bool { return g.captureDue }

func (g *Game) Pieces(c Color) Pieces {
	if !c.Valid() {
		return Pieces{}
	}
	return g.pieces[c].Clone()
}

func (g *Game) History() []Turn {
	return append([]Turn(nil), g.history...)
}

// Flying: 该方盘上子数不超过 3
func (g *Game) Flying(c Color) bool {
	return c.Valid() && g.pieces[c].OnBoard <= flyingThreshold
}

func (g *Game) ready(phase Phase) error {
	if g.captureDue {
		return ErrRemovalPending
	}
	if !g.Continues() {
		return ErrGameOver
	}
	if g.phase != phase {
		return ErrWrongPhase
	}
	return nil
}

// Place 当前方落子。返回 true 表示成三，必须接着调用 Remove。
func (g *Game) Place(p Point) (bool, error) {
	if err := g.ready(Placing); err != nil {
		return false, err
	}
	if g.pieces[g.current].Unplaced == 0 {
		return false, ErrNoPiecesLeft
	}
	if err := g.board.Place(g.current, p); err != nil {
		return false, err
	}
	g.pieces[g.current].Place(p)
	g.history = append(g.history, Turn{Color: g.current, To: p})
	return g.settle(p), nil
}

// Move 当前方走子；盘上只剩 3 子时可以飞到任意空点
func (g *Game) Move(from, to Point) (bool, error) {
	if err := g.ready(Moving); err != nil {
		return false, err
	}
	if err := g.board.Move(g.current, from, to, g.Flying(g.current)); err != nil {
		return false, err
	}
	g.pieces[g.current].Relocate(from, to)
	g.history = append(g.history, Turn{Color: g.current, From: from, To: to})
	return g.settle(to), nil
}

// Remove 成三之后提走对手一枚棋子。
// 对手所有棋子都在三连中时，不再保护三连。
func (g *Game) Remove(p Point) error {
	if !g.captureDue {
		return ErrNoRemovalPending
	}
	opponent := g.current.Other()
	enforce := !g.allInMill(opponent)
	if err := g.board.Remove(g.current, p, enforce); err != nil {
		return err
	}
	g.pieces[opponent].Capture(p)
	if n := len(g.history); n > 0 {
		g.history[n-1].Removed = p
	}
	g.captureDue = false
	g.endTurn()
	return nil
}

// settle 在落子 / 走子成功后调用：成三则进入提子子回合，否则结束回合。
// 对手盘上没有棋子时无子可提，直接结束。
func (g *Game) settle(p Point) bool {
	if g.board.InMill(g.current, p) && g.pieces[g.current.Other()].OnBoard > 0 {
		g.captureDue = true
		return true
	}
	g.endTurn()
	return false
}

func (g *Game) endTurn() {
	g.current = g.current.Other()
	if g.phase == Placing && g.pieces[White].Unplaced == 0 && g.pieces[Black].Unplaced == 0 {
		g.phase = Moving
	}
}

func (g *Game) allInMill(c Color) bool {
	for _, p := range g.pieces[c].Positions {
		if !g.board.InMill(c, p) {
			return false
		}
	}
	return true
}

// CanMove: c 至少有一枚棋子有相邻空点
func (g *Game) CanMove(c Color) bool {
	if !c.Valid() {
		return false
	}
	for _, p := range g.pieces[c].Positions {
		if g.board.CanMoveFrom(c, p) {
			return true
		}
	}
	return false
}

func (g *Game) canPlay(c Color) bool {
	return g.pieces[c].OnBoard >= minPieces && g.CanMove(c)
}

// reduced: 待落子加盘上子不足 3 枚
func (g *Game) reduced(c Color) bool {
	return g.pieces[c].Remaining() < minPieces
}

// Continues 在每个回合开始前判断对局是否继续
func (g *Game) Continues() bool {
	if g.reduced(White) || g.reduced(Black) {
		return false
	}
	if g.phase == Placing {
		return true
	}
	return g.canPlay(White) && g.canPlay(Black)
}

type Reason int8

const (
	ReasonNone Reason = iota
	ReasonTwoPieces
	ReasonNoMoves
	ReasonStalemate
)

func (r Reason) String() string {
	switch r {
	case ReasonTwoPieces:
		return "fewer than three pieces"
	case ReasonNoMoves:
		return "no movable pieces"
	case ReasonStalemate:
		return "neither player can move"
	}
	return "none"
}

// Result 是终局结论。Over=false 时其余字段无意义。
type Result struct {
	Over   bool
	Winner Color
	Draw   bool
	Reason Reason
}

// Result 按优先级给出终局原因：少于三子 > 单方无子可动 > 双方都不能动
func (g *Game) Result() Result {
	if g.Continues() {
		return Result{Winner: NoColor}
	}
	for _, c := range [...]Color{White, Black} {
		if g.reduced(c) {
			return Result{Over: true, Winner: c.Other(), Reason: ReasonTwoPieces}
		}
	}
	white, black := g.CanMove(White), g.CanMove(Black)
	switch {
	case !white && black:
		return Result{Over: true, Winner: Black, Reason: ReasonNoMoves}
	case white && !black:
		return Result{Over: true, Winner: White, Reason: ReasonNoMoves}
	}
	return Result{Over: true, Winner: NoColor, Draw: true, Reason: ReasonStalemate}
}

func (g *Game) String() string {
	return g.Format(DefaultGlyphs)
}

// Format 输出双方棋子概况和棋盘
func (g *Game) Format(glyphs Glyphs) string {
	var sb strings.Builder
	for _, c := range [...]Color{White, Black} {
		ps := g.pieces[c]
		names := make([]string, len(ps.Positions))
		for i, p := range ps.Positions {
			names[i] = p.String()
		}
		fmt.Fprintf(&sb, "%s: %d free, %d placed, at [%s]\n", c, ps.Unplaced, ps.OnBoard, strings.Join(names, " "))
	}
	sb.WriteString(g.board.Render(glyphs))
	return sb.String()
}
