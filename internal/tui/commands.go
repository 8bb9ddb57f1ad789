package tui

import (
	"context"
	"errors"
	"log/slog"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/mgolovko/tsekh/internal/localstore"
	"github.com/mgolovko/tsekh/internal/orders"
	"github.com/mgolovko/tsekh/internal/tui/state"
)

// fetchBoardCmd fetches a fresh snapshot from the order service.
func (m Model) fetchBoardCmd() tea.Cmd {
	gateway := m.gateway
	if gateway == nil {
		return nil
	}
	return func() tea.Msg {
		board, err := gateway.FetchBoard(context.Background())
		if err != nil {
			return boardFetchFailedMsg{err: err}
		}
		return boardLoadedMsg{board: board, fetchedAt: time.Now()}
	}
}

// loadCacheCmd loads the last cached snapshot from the local store.
// Used once at startup so the board is usable while offline.
func (m Model) loadCacheCmd() tea.Cmd {
	local := m.local
	if local == nil {
		return nil
	}
	return func() tea.Msg {
		board, fetchedAt, err := local.CachedSnapshot(context.Background())
		if err != nil || board == nil {
			return nil
		}
		return cacheLoadedMsg{board: board, fetchedAt: fetchedAt}
	}
}

// cacheSnapshotCmd persists a snapshot to the local store in the background.
func (m Model) cacheSnapshotCmd(msg boardLoadedMsg) tea.Cmd {
	local := m.local
	if local == nil {
		return nil
	}
	return func() tea.Msg {
		if err := local.CacheSnapshot(context.Background(), msg.board, msg.fetchedAt); err != nil {
			slog.Warn("failed to cache board snapshot", "error", err)
		}
		return nil
	}
}

// persistStageCmd pushes a stage change to the order service. The source
// column travels with the command so a failure can be reverted.
func (m Model) persistStageCmd(cardID, targetColumnID, sourceColumnID int) tea.Cmd {
	gateway := m.gateway
	if gateway == nil {
		return nil
	}
	return func() tea.Msg {
		board, err := gateway.PersistStage(context.Background(), cardID, targetColumnID)
		if err != nil {
			if errors.Is(err, orders.ErrReconcile) {
				// The stage change itself was saved. Keep the optimistic
				// board and wait for the next poll to reconcile.
				slog.Warn("stage saved but reconcile fetch failed", "card", cardID, "error", err)
				return nil
			}
			return stageSaveFailedMsg{cardID: cardID, sourceColumnID: sourceColumnID, err: err}
		}
		return stageSavedMsg{board: board, fetchedAt: time.Now()}
	}
}

// schedulePollCmd arms the periodic snapshot poll.
func (m Model) schedulePollCmd() tea.Cmd {
	interval := m.config.OrderService.PollInterval()
	if interval <= 0 {
		interval = orders.DefaultPollInterval
	}
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return pollTickMsg(t)
	})
}

// loadViewModeCmd reads the persisted view mode preference.
func (m Model) loadViewModeCmd() tea.Cmd {
	local := m.local
	if local == nil {
		return nil
	}
	return func() tea.Msg {
		mode, err := local.Preference(context.Background(), localstore.ViewModeKey, localstore.ViewModeNormal)
		if err != nil {
			slog.Warn("failed to load view mode preference", "error", err)
			return nil
		}
		return viewModeLoadedMsg{mode: mode}
	}
}

// saveViewModeCmd persists the view mode preference.
func (m Model) saveViewModeCmd(mode state.ViewMode) tea.Cmd {
	local := m.local
	if local == nil {
		return nil
	}
	return func() tea.Msg {
		if err := local.SetPreference(context.Background(), localstore.ViewModeKey, string(mode)); err != nil {
			slog.Warn("failed to save view mode preference", "error", err)
		}
		return nil
	}
}
