package interview

import (
	"time"

	"github.com/prepdeck/prepdeck/internal/finalize"
)

// timerTickMsg is sent every second to drive the question countdown.
type timerTickMsg time.Time

// finalizeDoneMsg is sent when the two-phase submit returns.
type finalizeDoneMsg struct {
	Result *finalize.Result
	Err    error
}

// draftSavedMsg is sent when the background draft write completes.
type draftSavedMsg struct {
	Err error
}
