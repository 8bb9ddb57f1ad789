package tui

import (
	"time"

	"github.com/mgolovko/tsekh/internal/models"
)

// boardLoadedMsg carries a fresh board snapshot from the order service.
type boardLoadedMsg struct {
	board     *models.Board
	fetchedAt time.Time
}

// boardFetchFailedMsg reports a failed snapshot fetch.
type boardFetchFailedMsg struct {
	err error
}

// cacheLoadedMsg carries the locally cached snapshot used as a fallback
// while the order service is unreachable.
type cacheLoadedMsg struct {
	board     *models.Board
	fetchedAt time.Time
}

// stageSavedMsg reports a successful stage change, carrying the reconciled
// board returned by the refetch.
type stageSavedMsg struct {
	board     *models.Board
	fetchedAt time.Time
}

// stageSaveFailedMsg reports a stage change that could not be persisted.
// sourceColumnID allows the move to be reverted under the
// revert-on-failure policy.
type stageSaveFailedMsg struct {
	cardID         int
	sourceColumnID int
	err            error
}

// pollTickMsg fires on the periodic snapshot polling schedule.
type pollTickMsg time.Time

// viewModeLoadedMsg carries the persisted card view mode preference.
type viewModeLoadedMsg struct {
	mode string
}
