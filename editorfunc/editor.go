// Package editorfunc provides the editable policy and expression fields.
// A Field keeps its plain-text content authoritative and derives the
// colorized markup from it on a debounce after the last keystroke, so the
// markup always flattens back to exactly the content and checkpoints are
// always taken from plain text.
package editorfunc

import (
	"fmt"
	"sync"
	"time"
	"unicode/utf8"

	"gopoltui/caretfunc"
	"gopoltui/highlightfunc"
	"gopoltui/historyfunc"
	"gopoltui/i18nfunc"

	"github.com/atotto/clipboard"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const caretOpenTag = "[white:blue]"
const caretCloseTag = "[-:-]"

// Field is one editable text surface. The mutex guards the content, caret
// and markup against the render and checkpoint timers, which fire on their
// own goroutines when no post function has been wired in; in the running
// application SetPost routes every deferred callback onto the UI thread.
type Field struct {
	*tview.TextView

	mu      sync.Mutex
	content string // plain text, authoritative
	caret   int    // rune offset into content
	markup  string // derived, rendered form of content

	history        *historyfunc.Manager
	renderDebounce time.Duration
	renderTimer    *time.Timer
	post           func(func())

	statusBar *StatusBar
	onChange  func()
}

// NewField creates an empty field with the given border title.
func NewField(title string) *Field {
	tv := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true)
	f := &Field{
		TextView:       tv,
		statusBar:      NewStatusBar(),
		renderDebounce: 400 * time.Millisecond,
		post:           func(fn func()) { fn() },
	}
	f.history = historyfunc.NewManager(f.Text, f.applyContent)
	f.SetBorder(true).SetTitle(title)
	f.SetInputCapture(f.handleInput)
	f.redraw(true)
	f.history.Rebaseline()
	f.SetStatus(i18nfunc.T("status.ready", nil))
	return f
}

// SetPost routes deferred timer callbacks onto the UI thread; wire it to
// App.QueueUpdateDraw. It applies to both the render and checkpoint timers.
func (f *Field) SetPost(post func(func())) {
	f.mu.Lock()
	f.post = post
	f.mu.Unlock()
	f.history.SetPost(post)
}

// SetRenderDebounce overrides the re-render quiet period.
func (f *Field) SetRenderDebounce(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.renderDebounce = d
}

// SetOnChange registers a hook run after every user edit.
func (f *Field) SetOnChange(fn func()) {
	f.onChange = fn
}

// History exposes the field's undo/redo manager, so the application-level
// input capture can redirect native undo/redo shortcuts into it.
func (f *Field) History() *historyfunc.Manager {
	return f.history
}

// Text returns the plain-text content.
func (f *Field) Text() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.content
}

// Markup returns the current rendered form of the content.
func (f *Field) Markup() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.markup
}

// CaretOffset returns the caret's rune offset into the plain text.
func (f *Field) CaretOffset() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.caret
}

// GetStatusBar returns the status bar widget shown under the field.
func (f *Field) GetStatusBar() *StatusBar {
	return f.statusBar
}

// SetStatus sets the field's status message.
func (f *Field) SetStatus(msg string) {
	f.statusBar.SetStatus(msg)
}

// SetErrorStatus sets an error message in the field's status bar.
func (f *Field) SetErrorStatus(msg string) {
	f.statusBar.SetErrorStatus(msg)
}

// SetText is the programmatic load path (examples, saved entries, derived
// expressions): it replaces the content, moves the caret to the end and
// establishes a new undo baseline.
func (f *Field) SetText(text string) {
	f.mu.Lock()
	f.stopRenderTimerLocked()
	f.content = text
	f.caret = f.textLenLocked()
	f.redrawLocked(true)
	f.mu.Unlock()
	f.history.Rebaseline()
	f.FillStatusBar()
}

// ReplaceText replaces the content as one undoable operation (the
// alias/value toggle uses it). Checkpoints are forced on both sides so a
// single undo returns to the pre-replace text.
func (f *Field) ReplaceText(text string) {
	f.mu.Lock()
	f.stopRenderTimerLocked()
	f.mu.Unlock()
	f.history.ForceCheckpoint()
	f.mu.Lock()
	f.content = text
	f.clampCaretLocked()
	f.redrawLocked(true)
	f.mu.Unlock()
	f.history.ForceCheckpoint()
	f.FillStatusBar()
}

// FillStatusBar updates the status bar with the caret line and column and
// the content length.
func (f *Field) FillStatusBar() {
	f.mu.Lock()
	line, col := 1, 1
	for i, r := range []rune(f.content) {
		if i >= f.caret {
			break
		}
		if r == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	length := f.textLenLocked()
	f.mu.Unlock()
	f.statusBar.SetStatus(fmt.Sprintf("Ln: %d Col: %d Len: %d", line, col, length))
}

func (f *Field) textLenLocked() int {
	return utf8.RuneCountInString(f.content)
}

func (f *Field) clampCaretLocked() {
	if n := f.textLenLocked(); f.caret > n {
		f.caret = n
	}
	if f.caret < 0 {
		f.caret = 0
	}
}

// applyContent is the history manager's apply callback. The manager holds
// its reentrancy guard for the duration, so the redraw here can never feed
// back into the checkpoint stacks.
func (f *Field) applyContent(text string) {
	f.mu.Lock()
	f.stopRenderTimerLocked()
	f.content = text
	f.clampCaretLocked()
	f.redrawLocked(true)
	f.mu.Unlock()
	f.FillStatusBar()
}

// redraw locks the field and updates the TextView. Plain redraws happen on
// every keystroke so typing never waits on the renderer; the styled pass
// follows once the render debounce settles.
func (f *Field) redraw(styled bool) {
	f.mu.Lock()
	f.redrawLocked(styled)
	f.mu.Unlock()
}

func (f *Field) redrawLocked(styled bool) {
	if styled {
		f.markup = highlightfunc.Render(f.content)
	} else {
		f.markup = caretfunc.EscapeTags(f.content)
	}
	f.TextView.SetText(f.spliceCaretLocked())
}

// spliceCaretLocked inserts the caret tags into the markup. The plain-text
// offset is mapped through the markup walker, so the caret lands on the
// same character no matter how the markup is structured.
func (f *Field) spliceCaretLocked() string {
	pos := caretfunc.RestoreOffset(f.markup, f.caret)
	if pos >= len(f.markup) {
		return f.markup + caretOpenTag + " " + caretCloseTag
	}
	if n := caretfunc.EscapedTagAt(f.markup, pos); n > 0 {
		// An escaped tag must stay intact; highlight the whole run.
		return f.markup[:pos] + caretOpenTag + f.markup[pos:pos+n] + caretCloseTag + f.markup[pos+n:]
	}
	r, size := utf8.DecodeRuneInString(f.markup[pos:])
	if r == '\n' {
		return f.markup[:pos] + caretOpenTag + " " + caretCloseTag + f.markup[pos:]
	}
	return f.markup[:pos] + caretOpenTag + string(r) + caretCloseTag + f.markup[pos+size:]
}

func (f *Field) stopRenderTimerLocked() {
	if f.renderTimer != nil {
		f.renderTimer.Stop()
		f.renderTimer = nil
	}
}

func (f *Field) scheduleRenderLocked() {
	f.stopRenderTimerLocked()
	post := f.post
	f.renderTimer = time.AfterFunc(f.renderDebounce, func() {
		post(func() { f.redraw(true) })
	})
}

// applyEdit runs a user edit: mutate changes content and caret under the
// lock and reports whether anything changed; the common tail then redraws
// plain, rearms the render debounce and notes the input for checkpointing.
func (f *Field) applyEdit(mutate func() bool) {
	f.mu.Lock()
	if !mutate() {
		f.mu.Unlock()
		return
	}
	f.redrawLocked(false)
	f.scheduleRenderLocked()
	f.mu.Unlock()
	f.history.NoteInput()
	f.FillStatusBar()
	if f.onChange != nil {
		f.onChange()
	}
}

// moveCaret adjusts the caret under the lock and redraws styled.
func (f *Field) moveCaret(move func()) {
	f.mu.Lock()
	move()
	f.clampCaretLocked()
	f.redrawLocked(true)
	f.mu.Unlock()
	f.FillStatusBar()
}

func (f *Field) handleInput(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyCtrlZ:
		f.history.Undo()
		return nil
	case tcell.KeyCtrlY:
		f.history.Redo()
		return nil
	case tcell.KeyLeft:
		f.moveCaret(func() { f.caret-- })
		return nil
	case tcell.KeyRight:
		f.moveCaret(func() { f.caret++ })
		return nil
	case tcell.KeyHome:
		f.moveCaret(func() { f.caret = 0 })
		return nil
	case tcell.KeyEnd:
		f.moveCaret(func() { f.caret = f.textLenLocked() })
		return nil
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		f.applyEdit(func() bool {
			if f.caret == 0 {
				return false
			}
			runes := []rune(f.content)
			f.content = string(runes[:f.caret-1]) + string(runes[f.caret:])
			f.caret--
			return true
		})
		return nil
	case tcell.KeyDelete:
		f.applyEdit(func() bool {
			runes := []rune(f.content)
			if f.caret >= len(runes) {
				return false
			}
			f.content = string(runes[:f.caret]) + string(runes[f.caret+1:])
			return true
		})
		return nil
	case tcell.KeyEnter:
		f.insertText("\n")
		return nil
	case tcell.KeyCtrlU:
		// Clearing the field is a bulk deletion; checkpoint first so it
		// never coalesces with the surrounding keystrokes.
		f.history.ForceCheckpoint()
		f.applyEdit(func() bool {
			f.content = ""
			f.caret = 0
			return true
		})
		return nil
	case tcell.KeyInsert:
		if event.Modifiers()&tcell.ModShift != 0 {
			f.pasteFromClipboard()
		} else {
			f.copyToClipboard()
		}
		return nil
	case tcell.KeyCtrlV:
		f.pasteFromClipboard()
		return nil
	case tcell.KeyRune:
		if r := event.Rune(); r != 0 {
			f.insertText(string(r))
		}
		return nil
	}
	return event
}

func (f *Field) insertText(text string) {
	f.applyEdit(func() bool {
		f.clampCaretLocked()
		runes := []rune(f.content)
		f.content = string(runes[:f.caret]) + text + string(runes[f.caret:])
		f.caret += utf8.RuneCountInString(text)
		return true
	})
}

func (f *Field) copyToClipboard() {
	text := f.Text()
	if text == "" {
		return
	}
	if err := clipboard.WriteAll(text); err != nil {
		f.SetErrorStatus(i18nfunc.T("status.clipboard_write_failed", map[string]interface{}{"Name": err.Error()}))
		return
	}
	f.SetStatus(i18nfunc.T("status.copied", nil))
}

func (f *Field) pasteFromClipboard() {
	text, err := clipboard.ReadAll()
	if err != nil {
		f.SetErrorStatus(i18nfunc.T("status.clipboard_read_failed", map[string]interface{}{"Name": err.Error()}))
		return
	}
	if text == "" {
		return
	}
	// A paste can bring in a lot of text at once; checkpoint first.
	f.history.ForceCheckpoint()
	f.insertText(text)
}
