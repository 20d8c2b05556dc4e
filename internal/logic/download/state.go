package download

type Phase int

const (
	Idle Phase = iota
	InProgress
	Done
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case InProgress:
		return "in_progress"
	case Done:
		return "done"
	default:
		return "unknown"
	}
}

// Snapshot is the UI-facing state of one download surface.
// Progress is cosmetic and unrelated to bytes transferred.
type Snapshot struct {
	Phase       Phase
	Ticks       int
	Progress    float64
	Downloading bool
	Message     string
}
