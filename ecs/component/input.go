package component

import "github.com/jakecoffman/cp"

// Input stores per-frame pointer and key state. Pointer and ScreenCenter are
// in y-up screen space.
type Input struct {
	Pointer         cp.Vector
	PointerDown     bool
	PointerPressed  bool
	PointerReleased bool
	ScreenCenter    cp.Vector

	PausePressed   bool
	RestartPressed bool
	DebugPressed   bool
	CopyPressed    bool
}

var InputComponent = NewComponent[Input]()
