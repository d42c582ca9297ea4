package pipeline

// Position of a run in the pipeline.
type State int

const (
	Idle State = iota
	ManifestWritten
	Building
	BuildFailed
	BuildSucceeded
	Packaging
	Done
	PackagingFailed
)

var stateNames = [...]string{
	Idle:            "idle",
	ManifestWritten: "manifest-written",
	Building:        "building",
	BuildFailed:     "build-failed",
	BuildSucceeded:  "build-succeeded",
	Packaging:       "packaging",
	Done:            "done",
	PackagingFailed: "packaging-failed",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

// Reports whether the run has ended, successfully or not.
func (s State) Terminal() bool {
	switch s {
	case BuildFailed, Done, PackagingFailed:
		return true
	}
	return false
}
