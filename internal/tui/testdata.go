package tui

import (
	"time"

	"github.com/mgolovko/tsekh/internal/board"
	"github.com/mgolovko/tsekh/internal/config"
	"github.com/mgolovko/tsekh/internal/models"
)

// newTestBoard builds a small two-stage board used across the TUI tests.
func newTestBoard() *models.Board {
	deadline := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	return &models.Board{
		Columns: []*models.Column{
			{
				ID:    1,
				Title: "КБ",
				Cards: []*models.Card{
					{ID: 1, Client: "Иванов", OrderNumber: "2024-101", ProductName: "Шкаф", Price: 50000, Prepayment: 20000, Deadline: &deadline, Status: 1, Priority: models.PriorityNormal},
					{ID: 2, Client: "Петров", OrderNumber: "2024-102", ProductName: "Стол", Price: 30000, Prepayment: 10000, Deadline: &deadline, Status: 1, Priority: models.PriorityHigh},
				},
			},
			{
				ID:    2,
				Title: "Столярный цех",
				Cards: []*models.Card{
					{ID: 3, Client: "Сидоров", OrderNumber: "2024-103", ProductName: "Комод", Price: 40000, Prepayment: 40000, Deadline: &deadline, Status: 2, Priority: models.PriorityLow},
				},
			},
		},
	}
}

// setupTestModel builds a model around an in-memory store with no gateway
// or local store, sized to the given terminal dimensions.
func setupTestModel(width, height int) Model {
	store := board.NewStore()
	store.LoadSnapshot(newTestBoard())

	m := InitialModel(store, nil, nil, config.Default())
	m.uiState.SetWidth(width)
	m.uiState.SetHeight(height)
	m.scroll.Resize(m.contentWidth(), width)
	return m
}
