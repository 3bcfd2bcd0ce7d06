// main.go
// Command skraflgen is a thin CLI driver around the skrafl move
// generator: load a rules file and a word list, build a board and
// rack from flags, and print the highest-scoring legal move.

package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	skrafl "github.com/mideind/skraflgen"
)

var (
	rulesPath   string
	lexiconPath string
	rackFlag    string
	rowFlags    []string
	logger      *zap.Logger
)

func main() {
	// .env provides default paths for rulesPath/lexiconPath in dev
	// setups; a missing file is not an error, it simply leaves flag
	// defaults untouched.
	_ = godotenv.Load()

	var err error
	logger, err = zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to start logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	root := newRootCmd()
	if err := root.Execute(); err != nil {
		logger.Error("command failed", zap.Error(err))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "skraflgen",
		Short: "Generate and score Scrabble moves against a board and rack",
	}
	root.PersistentFlags().StringVar(&rulesPath, "rules", os.Getenv("SKRAFLGEN_RULES"), "path to the rules JSON file")
	root.PersistentFlags().StringVar(&lexiconPath, "lexicon", os.Getenv("SKRAFLGEN_LEXICON"), "path to a plain word-list file, one word per line")
	root.AddCommand(newMovesCmd())
	return root
}

func newMovesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "moves",
		Short: "Enumerate legal moves for a rack and print the best one",
		RunE:  runMoves,
	}
	cmd.Flags().StringVar(&rackFlag, "rack", "", "rack tiles, e.g. ABCDEFG (space for a blank)")
	cmd.Flags().StringArrayVar(&rowFlags, "row", nil, "board row, repeatable 15 times, top to bottom; use spaces for empty cells")
	return cmd
}

func runMoves(cmd *cobra.Command, args []string) error {
	rules, err := loadRules(rulesPath)
	if err != nil {
		return fmt.Errorf("loading rules: %w", err)
	}
	lexicon, err := loadLexicon(lexiconPath)
	if err != nil {
		return fmt.Errorf("loading lexicon: %w", err)
	}
	board, err := boardFromRows(rowFlags)
	if err != nil {
		return fmt.Errorf("building board: %w", err)
	}
	rack := []byte(rackFlag)

	logger.Info("generating moves", zap.String("rack", rackFlag), zap.Int("rows", len(rowFlags)))

	gen := skrafl.NewGenerator(board, lexicon, rules)
	gen.Logger = logger
	var best skrafl.Move
	bestScore := -1
	count := 0
	for m := range gen.CalcAllMoves(rack) {
		count++
		if m.IsEmpty() {
			continue
		}
		score := board.CalcScore(m, rules)
		if score > bestScore {
			bestScore = score
			best = m
		}
	}

	logger.Info("generation complete", zap.Int("candidates", count))
	if best.IsEmpty() {
		fmt.Println("no legal move found; pass")
		return nil
	}
	fmt.Printf("%s score=%d\n", best.GetWord(), bestScore)
	return nil
}

func loadRules(path string) (*skrafl.RulesTable, error) {
	if path == "" {
		return skrafl.DefaultRulesTable, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return skrafl.LoadRulesTable(f)
}

func loadLexicon(path string) (*skrafl.Trie, error) {
	if path == "" {
		return skrafl.NewTrie(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return skrafl.BuildFromList(words), nil
}

func boardFromRows(rows []string) (*skrafl.Board, error) {
	board := skrafl.NewBoard()
	if len(rows) == 0 {
		return board, nil
	}
	if len(rows) != skrafl.BoardSize {
		return nil, fmt.Errorf("expected %d --row flags, got %d", skrafl.BoardSize, len(rows))
	}
	for row, line := range rows {
		if len(line) != skrafl.BoardSize {
			return nil, fmt.Errorf("row %d: expected %d characters, got %d", row, skrafl.BoardSize, len(line))
		}
		for col := 0; col < skrafl.BoardSize; col++ {
			tile := line[col]
			if tile != skrafl.Empty {
				board.Set(skrafl.Position{Row: row, Col: col}, tile)
			}
		}
	}
	return board, nil
}
