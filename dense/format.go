// Package dense textual rendering. One line per row, elements right-justified
// to the configured width:
//
//	(     1     0     0 )
//	(     0     2     0 )
//	(     0     0     3 )
//
// A blank line follows the last row so consecutive matrices stay visually
// separated on a stream. The empty (0-by-0) matrix renders as "()" alone.

package dense

import (
	"fmt"
	"io"
	"strings"
)

// Rendering fragments shared by Fprint.
const (
	fmtRowOpen  = "( "   // opens every row
	fmtRowClose = ")\n"  // closes every row
	fmtEmpty    = "()\n" // whole rendering of an empty matrix
	fmtTrailer  = "\n"   // blank separator line after the last row
)

// Matrix values print themselves through the standard fmt verbs.
var _ fmt.Stringer = (*Matrix[int])(nil)

// Fprint writes the textual form of m to w. Each element is right-justified
// to the effective width (package-wide default, overridable per call via
// WithOutputWidth) and followed by one space.
//
// Returns ErrNilMatrix (wrapped) when m is nil, and passes through any error
// reported by w.
func Fprint[T Numeric](w io.Writer, m *Matrix[T], opts ...Option) error {
	if err := ValidateNotNil(m); err != nil {
		return denseErrorf(opFprint, err)
	}
	if m.IsEmpty() {
		_, err := io.WriteString(w, fmtEmpty)
		return err
	}

	o := gatherOptions(opts...)
	var i, j, off int
	for i = 0; i < m.rows; i++ {
		if _, err := io.WriteString(w, fmtRowOpen); err != nil {
			return err
		}
		off = i * m.cols
		for j = 0; j < m.cols; j++ {
			if _, err := fmt.Fprintf(w, "%*v ", o.width, m.data[off+j]); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, fmtRowClose); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, fmtTrailer)

	return err
}

// String renders m with the package-wide default width, implementing
// fmt.Stringer. A nil matrix renders as "<nil>" to stay printable.
func (m *Matrix[T]) String() string {
	if m == nil {
		return "<nil>"
	}

	var sb strings.Builder
	_ = Fprint(&sb, m) // strings.Builder writes never fail

	return sb.String()
}
