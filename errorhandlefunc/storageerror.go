package errorhandlefunc

import "log"

// ShowStorageError logs a storage failure and notes it on the status bar.
// Storage problems degrade to in-memory state, so the user only needs a
// hint, not a modal interruption.
func ShowStorageError(msg string) {
	log.Println(msg)
	if statusSink != nil {
		statusSink(msg)
	}
}
