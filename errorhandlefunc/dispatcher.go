// Package errorhandlefunc routes errors to the right surface. Nothing in
// this program is fatal: worst case is a status-bar message or an error
// dialog, never a crash.
package errorhandlefunc

const (
	ErrorTypeValidation = iota
	ErrorTypeStorage
	ErrorTypeCompile
)

var statusSink func(msg string)
var dialogSink func(msg string)

// SetStatusSink registers the status-bar surface for non-modal errors.
func SetStatusSink(sink func(msg string)) {
	statusSink = sink
}

// SetDialogSink registers the modal error dialog surface.
func SetDialogSink(sink func(msg string)) {
	dialogSink = sink
}

// ThrowError dispatches msg to the surface matching its class.
func ThrowError(msg string, errorType int) {
	switch errorType {
	case ErrorTypeValidation:
		ShowValidationError(msg)
	case ErrorTypeStorage:
		ShowStorageError(msg)
	case ErrorTypeCompile:
		ShowCompileError(msg)
	}
}
