package morris

// Input 由外部输入方实现（终端、脚本等）。返回的坐标由引擎校验；
// 返回 error 表示输入源本身失效（EOF、退出），回合随之中止。
type Input interface {
	RequestPlacement(c Color) (Point, error)
	RequestMove(c Color) (from, to Point, err error)
	RequestRemoval(c Color) (Point, error)
}

// PlayTurn 驱动当前方走完一个完整回合：落子或走子，成三则必须提子。
// 每次非法尝试都交给 report，然后重新向 Input 要坐标，不消耗回合。
// 只有 Input 的错误会被返回。
func (g *Game) PlayTurn(in Input, report func(error)) error {
	if report == nil {
		report = func(error) {}
	}
	if !g.captureDue && !g.Continues() {
		return ErrGameOver
	}
	c := g.current
	for !g.captureDue {
		var (
			captureDue bool
			err        error
		)
		switch g.phase {
		case Placing:
			p, ierr := in.RequestPlacement(c)
			if ierr != nil {
				return ierr
			}
			captureDue, err = g.Place(p)
		default:
			from, to, ierr := in.RequestMove(c)
			if ierr != nil {
				return ierr
			}
			captureDue, err = g.Move(from, to)
		}
		if err != nil {
			report(err)
			continue
		}
		if !captureDue {
			return nil
		}
	}
	for {
		p, err := in.RequestRemoval(c)
		if err != nil {
			return err
		}
		if err := g.Remove(p); err != nil {
			report(err)
			continue
		}
		return nil
	}
}
