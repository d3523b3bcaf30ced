// Package historyfunc manages per-field undo/redo as immutable plain-text
// checkpoints. Rapid edits are coalesced: a checkpoint is taken only when a
// debounce window settles, when a destructive operation is imminent, or on
// a programmatic load. Checkpoints always hold plain text, never markup, so
// undo can never restore formatting tags as literal characters.
package historyfunc

import (
	"sync"
	"time"
)

const (
	// DefaultMaxCheckpoints is the stack cap; the oldest checkpoint is
	// evicted FIFO once a stack exceeds it.
	DefaultMaxCheckpoints = 50

	// DefaultDebounce is the quiet period after the last input event
	// before a checkpoint is taken.
	DefaultDebounce = 400 * time.Millisecond
)

// Manager keeps the undo/redo stack pair for one field. It has no explicit
// stored state machine: "settled" vs "debounce pending" is simply whether
// the timer is armed. All content replacement goes through the apply
// callback, which is expected to re-render the field and restore the caret;
// a reentrancy guard is held for the duration of every apply so the input
// handler does not checkpoint a change the manager itself caused.
type Manager struct {
	mu sync.Mutex

	undoStack []string
	redoStack []string

	maxEntries int
	debounce   time.Duration
	timer      *time.Timer
	applying   bool

	getContent   func() string
	applyContent func(string)
	post         func(func())
}

// NewManager creates a history manager for one field. getContent reads the
// field's current plain text; applyContent replaces it (re-rendering and
// restoring the caret).
func NewManager(getContent func() string, applyContent func(string)) *Manager {
	return &Manager{
		maxEntries:   DefaultMaxCheckpoints,
		debounce:     DefaultDebounce,
		getContent:   getContent,
		applyContent: applyContent,
		post:         func(fn func()) { fn() },
	}
}

// SetDebounce overrides the debounce window.
func (m *Manager) SetDebounce(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.debounce = d
}

// SetMaxEntries overrides the checkpoint cap.
func (m *Manager) SetMaxEntries(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if n > 0 {
		m.maxEntries = n
	}
}

// SetPost sets the function used to marshal debounce-timer callbacks back
// onto the UI thread (tview: App.QueueUpdateDraw). The default runs them
// inline on the timer goroutine.
func (m *Manager) SetPost(post func(func())) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.post = post
}

// NoteInput records an input event. Events caused by a manager-driven apply
// are ignored. The debounce timer is cancel-and-reschedule: a new event
// before expiry invalidates the pending timer and starts a fresh one.
func (m *Manager) NoteInput() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.applying {
		return
	}
	if m.timer != nil {
		m.timer.Stop()
	}
	post := m.post
	m.timer = time.AfterFunc(m.debounce, func() {
		post(m.settle)
	})
}

// settle takes the debounced checkpoint if the content moved.
func (m *Manager) settle() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.applying {
		return
	}
	m.pushLocked(m.getContent())
}

// ForceCheckpoint takes a checkpoint immediately, bypassing the debounce.
// Call it just before a destructive operation (bulk delete, paste-over) so
// the deletion is not coalesced away with the edits around it.
func (m *Manager) ForceCheckpoint() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopTimerLocked()
	m.pushLocked(m.getContent())
}

// Rebaseline clears both stacks and checkpoints the current content as the
// new undo baseline. Used on programmatic loads (canned examples).
func (m *Manager) Rebaseline() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopTimerLocked()
	m.undoStack = m.undoStack[:0]
	m.redoStack = nil
	m.pushLocked(m.getContent())
}

// Undo steps back one checkpoint. When the stack holds only the baseline,
// the baseline is reapplied verbatim and redo is untouched; undo on an
// empty stack is a no-op.
func (m *Manager) Undo() {
	m.mu.Lock()
	m.stopTimerLocked()
	// Settle any pending edits first so the current content is always the
	// top checkpoint when the transition runs.
	m.pushLocked(m.getContent())

	if len(m.undoStack) == 0 {
		m.mu.Unlock()
		return
	}
	var target string
	if len(m.undoStack) == 1 {
		target = m.undoStack[0]
	} else {
		top := m.undoStack[len(m.undoStack)-1]
		m.undoStack = m.undoStack[:len(m.undoStack)-1]
		if len(m.redoStack) == 0 || m.redoStack[len(m.redoStack)-1] != top {
			m.redoStack = append(m.redoStack, top)
		}
		target = m.undoStack[len(m.undoStack)-1]
	}
	m.mu.Unlock()
	m.apply(target)
}

// Redo is a no-op when the redo stack is empty; otherwise it pops the top,
// puts it back onto the undo stack and applies it.
func (m *Manager) Redo() {
	m.mu.Lock()
	m.stopTimerLocked()
	m.pushLocked(m.getContent())

	if len(m.redoStack) == 0 {
		m.mu.Unlock()
		return
	}
	target := m.redoStack[len(m.redoStack)-1]
	m.redoStack = m.redoStack[:len(m.redoStack)-1]
	if len(m.undoStack) == 0 || m.undoStack[len(m.undoStack)-1] != target {
		m.undoStack = append(m.undoStack, target)
		m.evictLocked()
	}
	m.mu.Unlock()
	m.apply(target)
}

// UndoCount returns the number of checkpoints on the undo stack.
func (m *Manager) UndoCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.undoStack)
}

// RedoCount returns the number of checkpoints on the redo stack.
func (m *Manager) RedoCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.redoStack)
}

// pushLocked appends a checkpoint. Consecutive checkpoints are never
// textually identical: pushing content equal to the top is a no-op.
// A real push clears the redo stack (linear history).
func (m *Manager) pushLocked(content string) {
	if len(m.undoStack) > 0 && m.undoStack[len(m.undoStack)-1] == content {
		return
	}
	m.undoStack = append(m.undoStack, content)
	m.redoStack = nil
	m.evictLocked()
}

func (m *Manager) evictLocked() {
	if len(m.undoStack) > m.maxEntries {
		excess := len(m.undoStack) - m.maxEntries
		m.undoStack = m.undoStack[excess:]
	}
}

func (m *Manager) stopTimerLocked() {
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
}

// apply replaces the field content with the reentrancy guard held, so the
// input handler's own checkpoint logic stays disabled while the renderer
// and caret restore run. Undo/redo are synchronous: they complete fully
// before control returns.
func (m *Manager) apply(content string) {
	m.mu.Lock()
	m.applying = true
	m.mu.Unlock()
	defer func() {
		m.mu.Lock()
		m.applying = false
		m.mu.Unlock()
	}()
	m.applyContent(content)
}
