package classify

import "fmt"

// Error reports that no card name could be extracted from a page. A
// silent fallback filename is not an option: two different cards would
// collapse into indistinguishable output files, so the caller must fail
// the document instead.
type Error struct {
	PageIndex int
	Team      string
	CardType  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("no card name found on page %d (%s/%s)", e.PageIndex+1, e.Team, e.CardType)
}
