package screen

import "github.com/abhisek/codecade/internal/quota"

// QuotaUpdatedMsg is broadcast whenever any screen learns a fresh quota
// state, so the header banner stays current without its own polling.
type QuotaUpdatedMsg struct {
	State quota.State
}

// ThemeChangedMsg tells screens the active color scheme was swapped.
type ThemeChangedMsg struct{}
