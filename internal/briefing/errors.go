package briefing

import "errors"

var (
	ErrNoDailyNotes  = errors.New("no daily notes found for analysis")
	ErrEmptyDocument = errors.New("document is empty")
)
