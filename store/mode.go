package store

import "sync/atomic"

// ModeCell holds the process-wide mirroring flag. It is read every time a
// scoped repository is handed out and written only by the admin mode toggle,
// so a single atomic bool is enough. Construct it from explicit config
// options, never from environment-name comparisons.
type ModeCell struct {
	mirror atomic.Bool
	forced bool
}

// NewModeCell returns a cell starting at enabled. When force is set the cell
// reports enabled regardless of later toggles (used for deployments that
// must always mirror).
func NewModeCell(enabled, force bool) *ModeCell {
	c := &ModeCell{forced: force}
	c.mirror.Store(enabled || force)
	return c
}

// Enabled reports whether writes should currently be mirrored.
func (c *ModeCell) Enabled() bool {
	if c.forced {
		return true
	}
	return c.mirror.Load()
}

// Set flips the flag. Ignored while the cell is forced on.
func (c *ModeCell) Set(enabled bool) {
	if c.forced {
		return
	}
	c.mirror.Store(enabled)
}

// Forced reports whether the flag is pinned by configuration.
func (c *ModeCell) Forced() bool {
	return c.forced
}
