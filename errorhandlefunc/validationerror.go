package errorhandlefunc

// ShowValidationError puts a validation failure on the status bar. The
// structured reason was already returned to the caller; this is display
// only.
func ShowValidationError(msg string) {
	if statusSink != nil {
		statusSink(msg)
	}
}
