package quiz

type Mode string

const (
	ModeFull   Mode = "full"
	ModeWeekly Mode = "weekly"
)

func (m Mode) Valid() bool {
	return m == ModeFull || m == ModeWeekly
}

func (m Mode) Label() string {
	if m == ModeWeekly {
		return "Weekly Series"
	}
	return "Full Series"
}

type State string

const (
	StateNotStarted State = "not_started"
	StateInProgress State = "in_progress"
	StateFinished   State = "finished"
)
