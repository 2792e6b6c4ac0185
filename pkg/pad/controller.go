// Package pad runs the pad control loop: periodic dataset refreshes and
// user movement commands funnelled through a single navigator.
package pad

import (
	"context"
	"fmt"
	"sync"
	"time"

	"gridpad/pkg/dataset"
	"gridpad/pkg/nav"
)

// State is a snapshot published after each committed move or refresh.
type State struct {
	Pose      nav.Pose
	Selected  nav.Record
	TableLen  int
	Timestamp time.Time
	Error     error
}

// Controller owns the navigator and the dataset store, rebuilding the
// position table on a fixed period and applying movement commands from
// the UI in between. Refresh and input are serialized on the navigator's
// own lock, so an in-flight move never observes a half-built table.
type Controller struct {
	store *dataset.Store
	navr  *nav.Navigator
	cfg   Config

	mu      sync.Mutex
	running bool
	stateCh chan State
	logCh   chan string
}

// NewController opens the configured dataset and prepares the control loop.
func NewController(cfg Config) (*Controller, error) {
	store, err := dataset.Open(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}

	if cfg.RefreshSeconds < 1 {
		cfg.RefreshSeconds = 1
	}
	if cfg.StepIncrement < 1 {
		cfg.StepIncrement = 1
	}

	return &Controller{
		store:   store,
		navr:    nav.New(),
		cfg:     cfg,
		stateCh: make(chan State, 1),
		logCh:   make(chan string, 10),
	}, nil
}

// Close stops the controller and releases the dataset.
func (c *Controller) Close() error {
	c.mu.Lock()
	c.running = false
	c.mu.Unlock()
	return c.store.Close()
}

// States returns a channel that receives state updates.
func (c *Controller) States() <-chan State {
	return c.stateCh
}

// Logs returns a channel that receives log messages.
func (c *Controller) Logs() <-chan string {
	return c.logCh
}

// Config returns the configuration the controller was started with.
func (c *Controller) Config() Config {
	return c.cfg
}

// Pose returns the navigator's current pose.
func (c *Controller) Pose() nav.Pose {
	return c.navr.Pose()
}

// Table returns the currently loaded position table.
func (c *Controller) Table() *nav.Table {
	return c.navr.Table()
}

func (c *Controller) log(format string, args ...any) {
	msg := fmt.Sprintf("[%s] %s", time.Now().Format("15:04:05"), fmt.Sprintf(format, args...))
	select {
	case c.logCh <- msg:
	default:
		// Drop if channel full
	}
}

// Start runs the refresh loop until the context is cancelled. The first
// table build happens immediately.
func (c *Controller) Start(ctx context.Context) error {
	c.mu.Lock()
	if c.running {
		c.mu.Unlock()
		return fmt.Errorf("already running")
	}
	c.running = true
	c.mu.Unlock()

	if err := c.Refresh(ctx); err != nil {
		c.log("Initial refresh failed: %v", err)
	}
	c.log("Pad started, refreshing every %ds", c.cfg.RefreshSeconds)

	ticker := time.NewTicker(time.Duration(c.cfg.RefreshSeconds) * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			c.mu.Lock()
			c.running = false
			c.mu.Unlock()
			c.log("Pad stopped")
			return ctx.Err()
		case <-ticker.C:
			if err := c.Refresh(ctx); err != nil {
				c.log("Refresh error: %v", err)
				c.sendState(State{Error: err, Timestamp: time.Now()})
			}
		}
	}
}

// Refresh rebuilds the position table wholesale from the dataset. A failed
// or empty enumeration leaves the pad in degraded no-op mode rather than
// failing hard.
func (c *Controller) Refresh(ctx context.Context) error {
	records, err := c.store.Positions(ctx)
	if err != nil {
		return err
	}

	prev := c.navr.Table().Len()
	table := nav.NewTable(records)
	c.navr.Reload(table)

	if table.Len() != prev {
		c.log("Position table rebuilt: %d positions", table.Len())
	}
	return nil
}

// Move applies one movement command, scaled by the configured step
// increment. On a committed move the selection is persisted and a state
// update published; when the target is off the grid nothing happens and
// ok is false.
func (c *Controller) Move(ctx context.Context, axis nav.Axis, step int) (nav.Record, bool) {
	rec, ok := c.navr.Move(axis, step*c.cfg.StepIncrement)
	if !ok {
		return nav.Record{}, false
	}

	if err := c.store.SetActive(ctx, rec.ID); err != nil {
		c.log("Selection error: %v", err)
	}

	pose := c.navr.Pose()
	c.log("Moved %s %+d to (%d, %d) facing %d", axis, step, pose.H, pose.V, pose.Rot)
	c.sendState(State{
		Pose:      pose,
		Selected:  rec,
		TableLen:  c.navr.Table().Len(),
		Timestamp: time.Now(),
	})
	return rec, true
}

func (c *Controller) sendState(s State) {
	select {
	case c.stateCh <- s:
	default:
		// Drop old state if channel full, replace with new
		select {
		case <-c.stateCh:
		default:
		}
		c.stateCh <- s
	}
}
