package morris

import "testing"

func TestPiecesLifecycle(t *testing.T) {
	ps := NewPieces()
	if ps.Unplaced != PiecesPerPlayer || ps.OnBoard != 0 {
		t.Fatalf("new pieces got=%+v", ps)
	}

	ps.Place(A7)
	ps.Place(D7)
	ps.Place(D7) // 重复位置忽略
	if ps.Unplaced != 7 || ps.OnBoard != 2 || len(ps.Positions) != 2 {
		t.Fatalf("after place got=%+v", ps)
	}

	ps.Relocate(A7, A4)
	if ps.Has(A7) || !ps.Has(A4) || ps.OnBoard != 2 || ps.Unplaced != 7 {
		t.Fatalf("after relocate got=%+v", ps)
	}
	ps.Relocate(G1, G4)
	if ps.Has(G4) {
		t.Fatalf("relocating an unknown point must be ignored")
	}

	ps.Capture(G1)
	if ps.OnBoard != 2 {
		t.Fatalf("capturing an unknown point must be ignored, got=%+v", ps)
	}
	ps.Capture(D7)
	if ps.Has(D7) || ps.OnBoard != 1 || len(ps.Positions) != 1 {
		t.Fatalf("after capture got=%+v", ps)
	}
	if ps.Remaining() != 8 {
		t.Fatalf("remaining got=%d want=8", ps.Remaining())
	}
}

func TestPiecesPlaceWithNothingLeft(t *testing.T) {
	ps := Pieces{Unplaced: 0, OnBoard: 9}
	for _, p := range AllPoints()[:9] {
		ps.Positions = append(ps.Positions, p)
	}
	ps.Place(G1)
	if ps.OnBoard != 9 || ps.Has(G1) {
		t.Fatalf("place with nothing left must be a no-op, got=%+v", ps)
	}
}

func TestPiecesCloneDoesNotAlias(t *testing.T) {
	ps := NewPieces()
	ps.Place(A7)
	c := ps.Clone()
	c.Positions[0] = G1
	if ps.Positions[0] != A7 {
		t.Fatalf("clone shares its positions with the original")
	}
}
