package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/reorder/internal/board"
	"github.com/llehouerou/reorder/internal/config"
	"github.com/llehouerou/reorder/internal/errmsg"
	"github.com/llehouerou/reorder/internal/logger"
	"github.com/llehouerou/reorder/internal/state"
	"github.com/llehouerou/reorder/internal/stderr"
	"github.com/llehouerou/reorder/internal/ui/boardview"
)

// defaultColumns seeds a new board when neither the database nor the
// config file has one.
var defaultColumns = []config.ColumnConfig{
	{Title: "Todo", Cards: []string{"Drag me with the mouse", "Or press space, then j/k", "Press c to combine cards"}},
	{Title: "Doing", Cards: []string{"Scroll a column with the wheel"}},
	{Title: "Done"},
}

func initialModel(ctx context.Context, cfg *config.Config) (boardview.Model, *state.Manager, error) {
	stateMgr, err := state.Open(cfg.DBPath)
	if err != nil {
		return boardview.Model{}, nil, err
	}

	columns, err := stateMgr.LoadBoard(ctx)
	if err != nil {
		stateMgr.Close()
		return boardview.Model{}, nil, fmt.Errorf("%s: %w", errmsg.OpBoardLoad, err)
	}

	var b *board.Board
	if columns != nil {
		b = board.FromColumns(columns)
	} else {
		seed := defaultColumns
		if cfg.HasSeed() {
			seed = cfg.Columns
		}
		b = seedBoard(seed)
		if err := stateMgr.SaveBoardNow(ctx, b.Columns()); err != nil {
			stateMgr.Close()
			return boardview.Model{}, nil, fmt.Errorf("%s: %w", errmsg.OpBoardSave, err)
		}
	}

	m := boardview.New(b, stateMgr, boardview.Options{
		Combine:       cfg.Combine,
		FrameInterval: cfg.FrameInterval(),
	})
	return m, stateMgr, nil
}

func seedBoard(columns []config.ColumnConfig) *board.Board {
	b := board.New()
	for _, c := range columns {
		id := b.AddColumn(c.Title)
		for i, title := range c.Cards {
			// the column was just created
			_, _ = b.AddCard(id, title, i)
		}
	}
	return b
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logPath, err := cfg.LogPath()
	if err != nil {
		return err
	}
	if err := logger.Init(logPath); err != nil {
		return err
	}
	defer logger.Close()
	logger.SetLevel(cfg.Level())

	if err := stderr.Start(); err != nil {
		logger.Logger().Warn("stderr capture unavailable", "error", err)
	}
	defer stderr.Stop()

	ctx := context.Background()
	m, stateMgr, err := initialModel(ctx, cfg)
	if err != nil {
		return err
	}
	defer stateMgr.Close()

	logger.Logger().Info("starting", "db", cfg.DBPath, "combine", cfg.Combine)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

func main() {
	if err := run(); err != nil {
		stderr.WriteOriginal(errmsg.Format(errmsg.OpInitialize, err) + "\n")
		os.Exit(1)
	}
}
