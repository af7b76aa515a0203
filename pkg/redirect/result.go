package redirect

import "fmt"

// PageError is returned when a single page could not be generated.
type PageError struct {
	Err  error
	Path string
}

func (e *PageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *PageError) Unwrap() error {
	return e.Err
}

// Result summarizes a run. Paths appear in path list order.
type Result struct {
	// Written holds the paths written successfully, duplicates included.
	Written []string
	// Failed holds the pages that could not be written.
	Failed []*PageError
}
