package redirect

type (
	// Sent before any page is written, with the number of pages in the run.
	EventSetPageTotal int

	// Sent when a page write has started.
	EventWritingPage string

	// Sent when a page has been written, or has failed to be written.
	EventWrotePage struct {
		Err  error
		Path string
	}

	// Sent when the run has completed.
	EventDone struct {
		Err error
	}
)
