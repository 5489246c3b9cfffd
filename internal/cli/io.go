package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
	"morris/internal/morris"
)

// ErrQuit 表示玩家输入了 "q" 或 "quit"
var ErrQuit = errors.New("quit")

// Console 在终端上扮演输入方和展示方：读坐标、打印棋盘和错误。
type Console struct {
	scanner *bufio.Scanner
	out     io.Writer
	glyphs  morris.Glyphs

	// 输入不是终端（管道、脚本）时回显读到的行
	echo bool

	game     *morris.Game
	retrying bool
	from, to morris.Point
}

func NewConsole(r io.Reader, w io.Writer, glyphs morris.Glyphs) *Console {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	return &Console{
		scanner: bufio.NewScanner(r),
		out:     w,
		glyphs:  glyphs,
		echo:    !isTerminal(r),
	}
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (c *Console) readLine() (string, error) {
	if c.scanner.Scan() {
		line := c.scanner.Text()
		if c.echo {
			fmt.Fprintln(c.out, line)
		}
		return line, nil
	}
	if err := c.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

// readCommand 跳过空行，识别退出命令
func (c *Console) readCommand() (string, error) {
	for {
		line, err := c.readLine()
		if err != nil {
			return "", err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		switch strings.ToLower(line) {
		case "q", "quit":
			return "", ErrQuit
		}
		return line, nil
	}
}

// prompt 只在新的请求时打印提示；上一次输入被拒绝后直接重读
func (c *Console) prompt(format string, args ...any) {
	if c.retrying {
		c.retrying = false
		return
	}
	fmt.Fprintf(c.out, format+"\n", args...)
}

// 无法解析的坐标交给引擎，由它报告 ErrInvalidPosition 等错误
func parseOrNone(s string) morris.Point {
	p, err := morris.ParsePoint(s)
	if err != nil {
		return morris.NoPoint
	}
	return p
}

func (c *Console) RequestPlacement(color morris.Color) (morris.Point, error) {
	c.prompt("%s player, input coordinates to place piece at:", color)
	line, err := c.readCommand()
	if err != nil {
		return morris.NoPoint, err
	}
	return parseOrNone(line), nil
}

// RequestMove 接受 "a7d7"、"a7 d7" 或 "a7-d7"
func (c *Console) RequestMove(color morris.Color) (morris.Point, morris.Point, error) {
	c.prompt("%s player, input coordinates of position to move piece from, and position to move piece to:", color)
	for {
		line, err := c.readCommand()
		if err != nil {
			return morris.NoPoint, morris.NoPoint, err
		}
		s := strings.NewReplacer(" ", "", "\t", "", "-", "").Replace(line)
		if len(s) != 4 {
			fmt.Fprintln(c.out, "ERROR: Invalid input!")
			continue
		}
		c.from, c.to = parseOrNone(s[:2]), parseOrNone(s[2:])
		return c.from, c.to, nil
	}
}

func (c *Console) RequestRemoval(color morris.Color) (morris.Point, error) {
	if !c.retrying && c.game != nil {
		c.Show()
	}
	c.prompt("%s player formed a mill - input coordinates to remove opponent's piece from:", color)
	line, err := c.readCommand()
	if err != nil {
		return morris.NoPoint, err
	}
	return parseOrNone(line), nil
}

// Report 打印引擎拒绝的原因；下一次请求不再重复提示
func (c *Console) Report(err error) {
	c.retrying = true
	fmt.Fprintln(c.out, "ERROR: "+c.message(err))
}

func (c *Console) message(err error) string {
	switch {
	case errors.Is(err, morris.ErrInvalidPosition):
		return "Invalid position!"
	case errors.Is(err, morris.ErrAlreadyOccupied):
		return "Position is already occupied!"
	case errors.Is(err, morris.ErrInvalidFrom):
		return "Invalid first position!"
	case errors.Is(err, morris.ErrInvalidTo):
		return "Invalid second position!"
	case errors.Is(err, morris.ErrWrongColorAtFrom):
		return "The starting position isn't occupied by you!"
	case errors.Is(err, morris.ErrToOccupied):
		return "The target position is already occupied!"
	case errors.Is(err, morris.ErrNotAdjacent):
		return fmt.Sprintf("Can't move from %s to %s!", c.from, c.to)
	case errors.Is(err, morris.ErrEmptyPosition):
		return "Cannot remove from empty position!"
	case errors.Is(err, morris.ErrWrongColor):
		return "Cannot remove your own pieces!"
	case errors.Is(err, morris.ErrProtectedByMill):
		return "Cannot remove from opponent's mills!"
	case errors.Is(err, morris.ErrNoPiecesLeft):
		return "No pieces left to place!"
	case errors.Is(err, morris.ErrRemovalPending):
		return "A piece must be removed first!"
	case errors.Is(err, morris.ErrNoRemovalPending):
		return "There is nothing to remove!"
	case errors.Is(err, morris.ErrWrongPhase):
		return "That action is not allowed in this phase!"
	case errors.Is(err, morris.ErrGameOver):
		return "The game is over!"
	}
	return "Unknown error!"
}

// AskFirstPlayer 询问谁先走，直到得到 white 或 black
func (c *Console) AskFirstPlayer() (morris.Color, error) {
	for {
		fmt.Fprintln(c.out, "Who should move first? white/black")
		line, err := c.readCommand()
		if err != nil {
			return morris.NoColor, err
		}
		color, err := morris.ParseColor(line)
		if err != nil || !color.Valid() {
			fmt.Fprintln(c.out, "ERROR: Invalid input!")
			continue
		}
		return color, nil
	}
}

// Show 打印当前对局
func (c *Console) Show() {
	if c.game == nil {
		return
	}
	fmt.Fprintln(c.out, c.game.Format(c.glyphs))
}

// Run 在终端上把 g 下完。play 推进一个回合；为 nil 时直接调用 g.PlayTurn。
// 玩家退出或输入结束时返回对应错误。
func (c *Console) Run(g *morris.Game, play func(morris.Input, func(error)) error) error {
	if play == nil {
		play = g.PlayTurn
	}
	c.game = g
	defer func() { c.game = nil }()

	for g.CaptureDue() || g.Continues() {
		c.retrying = false
		if !g.CaptureDue() {
			c.Show()
		}
		if err := play(c, c.Report); err != nil {
			return err
		}
	}
	c.Show()
	fmt.Fprintln(c.out, ResultMessage(g.Result()))
	return nil
}

func ResultMessage(r morris.Result) string {
	if !r.Over {
		return ""
	}
	switch r.Reason {
	case morris.ReasonTwoPieces:
		return fmt.Sprintf("Victory for %s player - %s player has less than 3 pieces!", r.Winner, r.Winner.Other())
	case morris.ReasonNoMoves:
		return fmt.Sprintf("Victory for %s player - %s player cannot move their pieces!", r.Winner, r.Winner.Other())
	}
	return "Draw - neither player can move their pieces!"
}

func PrintWelcome(w io.Writer, settingsPath string) {
	if w == nil {
		w = os.Stdout
	}
	bar := "------------------------------------------------------------"
	fmt.Fprintln(w, bar)
	fmt.Fprintln(w, "Nine Men's Morris")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Points are named by column and row, e.g. \"a7\" or \"d5\".")
	fmt.Fprintln(w, "  Moves name both points: \"a7d7\" or \"a7 d7\".")
	fmt.Fprintln(w, `  Type "q" or "quit" to leave the game.`)
	if settingsPath != "" {
		fmt.Fprintln(w, "  Settings are read from:")
		fmt.Fprintln(w, "   ", settingsPath)
	}
	fmt.Fprintln(w, bar)
}
