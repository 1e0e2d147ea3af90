package ui

// Message types for async operations

// dataLoadedMsg is sent when a sample dataset or live timeline has been
// loaded into the store
type dataLoadedMsg struct {
	location string
	err      error
}

// errMsg is a message type for errors
type errMsg struct {
	err error
}
