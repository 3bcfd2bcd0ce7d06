package skrafl

import "testing"

func TestPositionOutOfBounds(t *testing.T) {
	cases := []struct {
		pos Position
		oob bool
	}{
		{Position{0, 0}, false},
		{Position{14, 14}, false},
		{Position{-1, 0}, true},
		{Position{0, -1}, true},
		{Position{15, 0}, true},
		{Position{0, 15}, true},
	}
	for _, c := range cases {
		if got := c.pos.OutOfBounds(); got != c.oob {
			t.Errorf("Position(%v).OutOfBounds() = %v, want %v", c.pos, got, c.oob)
		}
	}
}

func TestPositionTranspose(t *testing.T) {
	pos := Position{3, 11}
	got := pos.Transpose()
	want := Position{11, 3}
	if got != want {
		t.Errorf("Transpose() = %v, want %v", got, want)
	}
	if got.Transpose() != pos {
		t.Errorf("Transpose().Transpose() did not round-trip")
	}
}

func TestPositionFlatIndex(t *testing.T) {
	if got := (Position{7, 7}).FlatIndex(); got != 7*BoardSize+7 {
		t.Errorf("FlatIndex() = %v, want %v", got, 7*BoardSize+7)
	}
}

func TestPositionAdd(t *testing.T) {
	got := Position{3, 4}.Add(Position{-1, 2})
	want := Position{2, 6}
	if got != want {
		t.Errorf("Add() = %v, want %v", got, want)
	}
}
