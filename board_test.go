package skrafl

import "testing"

func TestBoardApplyUnapply(t *testing.T) {
	b := NewBoard()
	m := NewMove(Placement{Tile: 'A', Pos: Position{7, 7}})
	b.Apply(m)
	if got := b.Get(Position{7, 7}); got != 'A' {
		t.Fatalf("Get() after Apply() = %q, want 'A'", got)
	}
	b.Unapply(m)
	if got := b.Get(Position{7, 7}); got != Empty {
		t.Fatalf("Get() after Unapply() = %q, want empty", got)
	}
}

func TestBoardCopyIndependent(t *testing.T) {
	b := NewBoard()
	b.Set(Position{0, 0}, 'A')
	cp := b.Copy()
	cp.Set(Position{0, 0}, 'B')
	if got := b.Get(Position{0, 0}); got != 'A' {
		t.Errorf("mutating copy affected original: Get() = %q", got)
	}
}

func TestBoardTransposeTransposeIsIdentity(t *testing.T) {
	b := NewBoard()
	b.Set(Position{2, 9}, 'Z')
	got := b.Transpose().Transpose()
	if !got.Equal(b) {
		t.Errorf("Transpose().Transpose() != original")
	}
}

func TestBoardTraverseDoesNotWrap(t *testing.T) {
	b := NewBoard()
	b.Set(Position{0, 13}, 'X')
	b.Set(Position{0, 14}, 'Y')
	// A wrapping traversal would continue from (0,14) onto (1,0).
	b.Set(Position{1, 0}, 'Z')
	run := b.Traverse(Position{0, 12}, AxisAcross, stopAtEmpty)
	if len(run) != 2 {
		t.Fatalf("Traverse() length = %d, want 2", len(run))
	}
	if run[len(run)-1].Pos != (Position{0, 14}) {
		t.Errorf("Traverse() did not stop at the board edge correctly: %v", run)
	}
}

func TestBoardWordsFormedRestoresBoard(t *testing.T) {
	b := NewBoard()
	before := b.Copy()
	m := AnchoredToMove("BANANA", Position{7, 7}, 0, true)
	for range b.WordsFormed(m) {
	}
	if !b.Equal(before) {
		t.Errorf("WordsFormed() left the board mutated")
	}
	// Calling it twice in succession must produce the same result and
	// still leave the board untouched.
	var firstWords, secondWords []string
	for w := range b.WordsFormed(m) {
		firstWords = append(firstWords, w.GetWord())
	}
	for w := range b.WordsFormed(m) {
		secondWords = append(secondWords, w.GetWord())
	}
	if len(firstWords) != len(secondWords) {
		t.Fatalf("WordsFormed() not idempotent: %v vs %v", firstWords, secondWords)
	}
	for i := range firstWords {
		if firstWords[i] != secondWords[i] {
			t.Errorf("WordsFormed() not idempotent at %d: %q vs %q", i, firstWords[i], secondWords[i])
		}
	}
	if !b.Equal(before) {
		t.Errorf("board mutated after repeated WordsFormed() calls")
	}
}

func TestBoardWordsFormedEmptyMoveYieldsNothing(t *testing.T) {
	b := NewBoard()
	count := 0
	for range b.WordsFormed(NewMove()) {
		count++
	}
	if count != 0 {
		t.Errorf("WordsFormed(empty move) yielded %d words, want 0", count)
	}
}

func TestBoardCalcScoreOpeningBanana(t *testing.T) {
	b := NewBoard()
	m := AnchoredToMove("BANANA", Position{7, 7}, 0, true)
	score := b.CalcScore(m, DefaultRulesTable)
	if want := 16; score != want {
		t.Errorf("CalcScore(BANANA opening) = %d, want %d", score, want)
	}
}

func TestBoardCalcScorePass(t *testing.T) {
	b := NewBoard()
	if got := b.CalcScore(NewMove(), DefaultRulesTable); got != 0 {
		t.Errorf("CalcScore(pass) = %d, want 0", got)
	}
}

func TestBoardCalcScoreBingoBonus(t *testing.T) {
	b := NewBoard()
	sevenLetters := AnchoredToMove("PLAYERS", Position{7, 7}, 0, true)
	sixLetters := AnchoredToMove("PLAYER", Position{7, 7}, 0, true)

	scoreSeven := b.CalcScore(sevenLetters, DefaultRulesTable)
	b2 := NewBoard()
	scoreSix := b2.CalcScore(sixLetters, DefaultRulesTable)

	// PLAYERS is PLAYER plus an S on the plain square (7,13), and the
	// DW at (7,7) doubles it, so its score without the bonus is
	// scoreSix+2.
	rawSeven := scoreSix + 2
	if rawSeven <= 0 {
		t.Fatalf("unexpected raw seven-tile score: %d", rawSeven)
	}
	if scoreSeven < scoreSix {
		t.Errorf("seven-tile score %d should exceed six-tile score %d once bonus applied", scoreSeven, scoreSix)
	}
	if scoreSeven-rawSeven != 50 {
		t.Errorf("bingo bonus not exactly 50: got %d", scoreSeven-rawSeven)
	}
}

func TestBoardWordsFormedExtendsExistingWord(t *testing.T) {
	b := NewBoard()
	b.Apply(AnchoredToMove("CAT", Position{7, 7}, 0, true))
	m := NewMove(Placement{Tile: 'S', Pos: Position{7, 10}})
	var words []string
	for w := range b.WordsFormed(m) {
		words = append(words, w.GetWord())
	}
	if len(words) != 1 || words[0] != "CATS" {
		t.Errorf("WordsFormed() = %v, want [CATS]", words)
	}
}
