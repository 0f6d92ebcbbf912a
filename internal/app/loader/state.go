package loader

// State of a Loader.
//
//	Unmounted -> Paused <-> Loading -> Sleeping -> Loading -> ...
//	                          \-> AutoStopped (refresh budget exhausted)
type State int

const (
	Unmounted State = iota
	Paused
	Loading
	Sleeping
	AutoStopped
)

func (s State) String() string {
	switch s {
	case Unmounted:
		return "unmounted"
	case Paused:
		return "paused"
	case Loading:
		return "loading"
	case Sleeping:
		return "sleeping"
	case AutoStopped:
		return "auto_stopped"
	default:
		return "unknown"
	}
}

// Started reports whether the loader is in its polling loop.
func (s State) Started() bool {
	return s == Loading || s == Sleeping
}
