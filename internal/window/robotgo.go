package window

import (
	"fmt"

	"github.com/go-vgo/robotgo"
)

// RobotgoBackend discovers windows by walking the process table and asking
// robotgo for each process's window title and bounds.
type RobotgoBackend struct{}

// NewRobotgoBackend returns the default desktop backend.
func NewRobotgoBackend() *RobotgoBackend {
	return &RobotgoBackend{}
}

// Windows returns one entry per process; processes without a window
// yield an empty title and are filtered out by Manager.List.
func (b *RobotgoBackend) Windows() ([]Info, error) {
	procs, err := robotgo.Process()
	if err != nil {
		return nil, fmt.Errorf("failed to list processes: %w", err)
	}

	windows := make([]Info, 0, len(procs))
	for _, p := range procs {
		title := robotgo.GetTitle(p.Pid)
		if title == "" {
			continue
		}
		x, y, w, h := robotgo.GetBounds(p.Pid)
		windows = append(windows, Info{
			Title:  title,
			PID:    p.Pid,
			Left:   x,
			Top:    y,
			Width:  w,
			Height: h,
		})
	}
	return windows, nil
}

// Activate raises the window owned by w.PID.
func (b *RobotgoBackend) Activate(w Info) error {
	return robotgo.ActivePid(w.PID)
}
