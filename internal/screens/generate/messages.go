package generate

import (
	"time"

	"github.com/abhisek/codecade/internal/api"
	"github.com/abhisek/codecade/internal/quota"
)

// challengeReadyMsg carries a generated challenge, tagged with the request
// sequence so a superseded response is dropped.
type challengeReadyMsg struct {
	seq       uint64
	challenge *api.Challenge
}

// challengeFailedMsg carries a generation failure, tagged like a success.
type challengeFailedMsg struct {
	seq uint64
	err error
}

// quotaCheckedMsg carries the quota fetched when the screen opens.
type quotaCheckedMsg struct {
	state quota.State
	err   error
}

// verdictMsg carries the server's answer validation result.
type verdictMsg struct {
	challengeID int
	verdict     *api.Verdict
	err         error
}

// hintMsg carries one fetched hint.
type hintMsg struct {
	challengeID int
	text        string
	err         error
}

// spinnerTickMsg is sent at short intervals to animate the loading spinner.
type spinnerTickMsg time.Time
