package errorhandlefunc

// ShowCompileError raises the modal error dialog with the compiler's
// message, falling back to the status bar when no dialog is wired yet.
func ShowCompileError(msg string) {
	if dialogSink != nil {
		dialogSink(msg)
		return
	}
	if statusSink != nil {
		statusSink(msg)
	}
}
