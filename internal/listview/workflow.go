// internal/listview/workflow.go
package listview

import (
	"context"
	"sync"
	"time"
)

// WorkflowPhase tracks the row interaction state machine.
type WorkflowPhase int

const (
	Idle WorkflowPhase = iota
	MenuOpen
	ConfirmPending
)

// Notice is a transient status message.
type Notice struct {
	Text    string
	Success bool
}

// Notifier is a single-slot transient queue: a new notice replaces any
// pending one and auto-dismisses after the configured duration.
type Notifier struct {
	mu      sync.Mutex
	ttl     time.Duration
	current *Notice
	timer   *time.Timer
}

func NewNotifier(ttl time.Duration) *Notifier {
	return &Notifier{ttl: ttl}
}

func (n *Notifier) Show(text string, success bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.timer != nil {
		n.timer.Stop()
	}
	notice := &Notice{Text: text, Success: success}
	n.current = notice
	n.timer = time.AfterFunc(n.ttl, func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		if n.current == notice {
			n.current = nil
		}
	})
}

// Current returns the pending notice, or nil once it has been dismissed.
func (n *Notifier) Current() *Notice {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

func (n *Notifier) Dismiss() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.timer != nil {
		n.timer.Stop()
	}
	n.current = nil
}

// Workflow is the shared per-list interaction state machine. The target row
// is held as an explicit id, so only one menu or dialog can exist at a time
// and opening another row's menu closes the previous one.
type Workflow struct {
	mu       sync.Mutex
	phase    WorkflowPhase
	targetID int

	Deleter  func(ctx context.Context, id int) error
	Reload   func()
	Notifier *Notifier
}

func NewWorkflow(deleter func(ctx context.Context, id int) error, reload func(), notifier *Notifier) *Workflow {
	return &Workflow{Deleter: deleter, Reload: reload, Notifier: notifier}
}

// OpenMenu activates the action menu for one row, implicitly closing any
// other open menu.
func (w *Workflow) OpenMenu(id int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.phase = MenuOpen
	w.targetID = id
}

func (w *Workflow) CloseMenu() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.phase == MenuOpen {
		w.phase = Idle
		w.targetID = 0
	}
}

// RequestEdit resolves the edit target and closes the menu. The second
// return is false when no menu is open.
func (w *Workflow) RequestEdit() (int, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.phase != MenuOpen {
		return 0, false
	}
	id := w.targetID
	w.phase = Idle
	w.targetID = 0
	return id, true
}

// RequestDelete moves from the open menu to the confirmation gate. Nothing
// is deleted yet.
func (w *Workflow) RequestDelete() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.phase == MenuOpen {
		w.phase = ConfirmPending
	}
}

// Cancel dismisses the confirmation dialog without mutating anything.
func (w *Workflow) Cancel() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.phase == ConfirmPending {
		w.phase = Idle
		w.targetID = 0
	}
}

// Confirm issues the delete. On success it notifies and triggers a full
// reload; on failure it closes the dialog, notifies, and leaves the list
// state untouched.
func (w *Workflow) Confirm(ctx context.Context) error {
	w.mu.Lock()
	if w.phase != ConfirmPending {
		w.mu.Unlock()
		return nil
	}
	id := w.targetID
	w.phase = Idle
	w.targetID = 0
	w.mu.Unlock()

	if err := w.Deleter(ctx, id); err != nil {
		if w.Notifier != nil {
			w.Notifier.Show("Failed to delete record. Please try again.", false)
		}
		return err
	}

	if w.Notifier != nil {
		w.Notifier.Show("Record deleted successfully!", true)
	}
	if w.Reload != nil {
		w.Reload()
	}
	return nil
}

func (w *Workflow) Phase() WorkflowPhase {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.phase
}

// Target returns the row the open menu or pending confirmation refers to.
func (w *Workflow) Target() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.targetID
}
