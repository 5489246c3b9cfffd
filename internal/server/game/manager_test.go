package game

import (
	"errors"
	"io"
	"testing"

	"morris/internal/morris"
)

type scripted struct {
	points []morris.Point
}

func (s *scripted) next() (morris.Point, error) {
	if len(s.points) == 0 {
		return morris.NoPoint, io.EOF
	}
	p := s.points[0]
	s.points = s.points[1:]
	return p, nil
}

func (s *scripted) RequestPlacement(morris.Color) (morris.Point, error) { return s.next() }
func (s *scripted) RequestRemoval(morris.Color) (morris.Point, error)   { return s.next() }

func (s *scripted) RequestMove(morris.Color) (morris.Point, morris.Point, error) {
	from, err := s.next()
	if err != nil {
		return morris.NoPoint, morris.NoPoint, err
	}
	to, err := s.next()
	return from, to, err
}

func TestManagerLifecycle(t *testing.T) {
	m := NewManager()
	s := m.NewGame(morris.Black)
	if s.ID == "" || s.Game.Current() != morris.Black {
		t.Fatalf("new game got id=%q current=%v", s.ID, s.Game.Current())
	}
	got, err := m.Get(s.ID)
	if err != nil || got != s {
		t.Fatalf("Get got=%v err=%v", got, err)
	}
	other := m.NewGame(morris.White)
	if other.ID == s.ID || m.Len() != 2 {
		t.Fatalf("sessions must have distinct ids")
	}

	if err := m.Close(s.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := m.Get(s.ID); !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("Get after Close got=%v want=%v", err, ErrGameNotFound)
	}
	if err := m.Close(s.ID); !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("second Close got=%v", err)
	}
}

func TestManagerPlay(t *testing.T) {
	m := NewManager()
	s := m.NewGame(morris.White)

	var reported []error
	report := func(err error) { reported = append(reported, err) }

	in := &scripted{points: []morris.Point{morris.A7}}
	snap, err := m.Play(s.ID, in, report)
	if err != nil {
		t.Fatal(err)
	}
	if snap.Current != morris.Black || len(snap.History) != 1 || snap.Notation != s.Game.Encode() {
		t.Fatalf("snapshot got=%+v", snap)
	}

	// 占用的点被拒绝后重试
	in = &scripted{points: []morris.Point{morris.A7, morris.G1}}
	if _, err := m.Play(s.ID, in, report); err != nil {
		t.Fatal(err)
	}
	if len(reported) != 1 || !errors.Is(reported[0], morris.ErrAlreadyOccupied) {
		t.Fatalf("reported got=%v", reported)
	}

	before := s.UpdatedAt
	if _, err := m.Play(s.ID, &scripted{}, report); !errors.Is(err, io.EOF) {
		t.Fatalf("Play with exhausted input got=%v want=%v", err, io.EOF)
	}
	if s.UpdatedAt != before {
		t.Fatalf("an aborted turn must not touch UpdatedAt")
	}

	if _, err := m.Play("missing", in, report); !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("Play on unknown id got=%v", err)
	}
}

func TestManagerRestore(t *testing.T) {
	m := NewManager()
	s, err := m.Restore("WWW..................BB. w 6 7 x")
	if err != nil {
		t.Fatal(err)
	}
	snap, err := m.Snapshot(s.ID)
	if err != nil {
		t.Fatal(err)
	}
	if snap.Phase != "placing" || snap.Result.Over || snap.Hash != s.Game.Hash() {
		t.Fatalf("snapshot got=%+v", snap)
	}

	// 恢复后必须先提子
	in := &scripted{points: []morris.Point{morris.A1}}
	snap, err = m.Play(s.ID, in, nil)
	if err != nil {
		t.Fatal(err)
	}
	if snap.Notation != "WWW...................B. b 6 7" {
		t.Fatalf("notation after capture got=%q", snap.Notation)
	}

	for _, bad := range []string{
		"not a position",
		// 白方已无子可放却轮到白方
		"WWW..................BBB w 0 1",
		// 没有三连却标记了待提子
		"W......................B w 8 8 x",
	} {
		if _, err := m.Restore(bad); !errors.Is(err, morris.ErrInvalidNotation) {
			t.Fatalf("Restore(%q) got=%v want=%v", bad, err, morris.ErrInvalidNotation)
		}
	}
	if m.Len() != 1 {
		t.Fatalf("a failed restore must not register a session")
	}
}

func TestManagerReportsOutcome(t *testing.T) {
	m := NewManager()
	// 黑方只剩三子，白方成三提子后黑方只剩两子
	s, err := m.Restore("WW...W..........B....BB. w 0 0")
	if err != nil {
		t.Fatal(err)
	}
	in := &scripted{points: []morris.Point{morris.F6, morris.G7, morris.D3}}
	snap, err := m.Play(s.ID, in, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !snap.Result.Over || snap.Result.Winner != morris.White || snap.Result.Reason != morris.ReasonTwoPieces {
		t.Fatalf("result got=%+v", snap.Result)
	}
}
