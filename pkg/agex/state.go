package agex

// RunState tracks where a run currently is. A run moves strictly forward:
// idle → fetching (read and prompt in parallel) → joined → transforming →
// writing → done, with failed as the only other terminal state. Any failure
// is terminal; there are no retries.
type RunState string

const (
	StateIdle         RunState = "idle"
	StateFetching     RunState = "fetching"
	StateJoined       RunState = "joined"
	StateTransforming RunState = "transforming"
	StateWriting      RunState = "writing"
	StateDone         RunState = "done"
	StateFailed       RunState = "failed"
)

func (s RunState) String() string {
	return string(s)
}
