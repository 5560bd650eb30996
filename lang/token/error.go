package token

import (
	"fmt"
	"io"
	"sort"
)

// Error records a single diagnostic at a source position. It plays the role
// the teacher's scanner package gets for free from go/scanner.Error; loxrun
// defines its own because it reports positions with its own Position type,
// not go/token's.
type Error struct {
	Pos Position
	Msg string
}

func (e Error) Error() string {
	if e.Pos.Line == 0 {
		return e.Msg
	}
	return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
}

// ErrorList is an accumulating, sortable list of Errors, used by the
// scanner, parser and resolver to report as many diagnostics as possible
// instead of aborting on the first one (spec.md §4.1, §4.2, §7).
type ErrorList []Error

// Add appends an error at pos.
func (l *ErrorList) Add(pos Position, msg string) {
	*l = append(*l, Error{Pos: pos, Msg: msg})
}

// Sort orders the list by filename, then line, then column.
func (l ErrorList) Sort() {
	sort.Stable(byPosition(l))
}

func (l ErrorList) Len() int { return len(l) }

func (l ErrorList) Error() string {
	switch len(l) {
	case 0:
		return "no errors"
	case 1:
		return l[0].Error()
	}
	return fmt.Sprintf("%s (and %d more errors)", l[0], len(l)-1)
}

// Unwrap lets errors.Is/As and %w walk every collected error.
func (l ErrorList) Unwrap() []error {
	errs := make([]error, len(l))
	for i, e := range l {
		errs[i] = e
	}
	return errs
}

// Err returns nil if the list is empty, itself otherwise, so callers can
// treat "no errors occurred" uniformly with ordinary error-returning code.
func (l ErrorList) Err() error {
	if len(l) == 0 {
		return nil
	}
	return l
}

type byPosition ErrorList

func (b byPosition) Len() int      { return len(b) }
func (b byPosition) Swap(i, j int) { b[i], b[j] = b[j], b[i] }
func (b byPosition) Less(i, j int) bool {
	pi, pj := b[i].Pos, b[j].Pos
	if pi.Filename != pj.Filename {
		return pi.Filename < pj.Filename
	}
	if pi.Line != pj.Line {
		return pi.Line < pj.Line
	}
	return pi.Col < pj.Col
}

// PrintError prints err to w. If err is an ErrorList, each entry is printed
// on its own line; otherwise err is printed as-is.
func PrintError(w io.Writer, err error) {
	if el, ok := err.(ErrorList); ok {
		for _, e := range el {
			fmt.Fprintf(w, "%s\n", e)
		}
		return
	}
	fmt.Fprintf(w, "%s\n", err)
}
