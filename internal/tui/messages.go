package tui

// accountsChangedMsg reports the outcome of a mutating service call. The
// list is re-read from the service on every such message.
type accountsChangedMsg struct {
	err error
}

type addDoneMsg struct {
	added bool
	err   error
}

type deleteDoneMsg struct {
	deleted bool
	err     error
}

type editDoneMsg struct {
	err error
}

type copiedMsg struct{}

type copyFailedMsg struct {
	err error
}

type clearStatusMsg struct{}
