// Package stream provides a growable byte sink used to accumulate an
// HTTP response body of unknown length.
package stream

import "errors"

// ErrTooLarge is returned by Write when a chunk would push the
// accumulator past its configured limit.
var ErrTooLarge = errors.New("stream: accumulator limit exceeded")

// Accumulator collects byte chunks into a single owned buffer. It has
// no knowledge of HTTP or JSON. The zero value is ready to use with no
// size limit.
type Accumulator struct {
	buf   []byte
	limit int
}

// NewAccumulator returns an accumulator that refuses to grow beyond
// limit bytes of content. A limit of zero means unlimited.
func NewAccumulator(limit int) *Accumulator {
	return &Accumulator{limit: limit}
}

// Write appends chunk to the accumulated content, growing capacity as
// needed. Capacity is always grown to at least one byte past the new
// length so the final contents can be handed off as a string without a
// further allocation. If the chunk would exceed the configured limit,
// Write returns ErrTooLarge and the previously accumulated bytes are
// left untouched.
func (a *Accumulator) Write(chunk []byte) (int, error) {
	if a.limit > 0 && len(a.buf)+len(chunk) > a.limit {
		return 0, ErrTooLarge
	}

	need := len(a.buf) + len(chunk) + 1
	if cap(a.buf) < need {
		newCap := 2 * cap(a.buf)
		if newCap < need {
			newCap = need
		}
		grown := make([]byte, len(a.buf), newCap)
		copy(grown, a.buf)
		a.buf = grown
	}

	a.buf = append(a.buf, chunk...)

	return len(chunk), nil
}

// Bytes returns the accumulated content. The slice aliases the
// accumulator's buffer and is invalidated by the next Write or Reset.
func (a *Accumulator) Bytes() []byte {
	return a.buf
}

// String returns an owned copy of the accumulated content.
func (a *Accumulator) String() string {
	return string(a.buf)
}

// Len reports the logical length of the accumulated content.
func (a *Accumulator) Len() int {
	return len(a.buf)
}

// Reset releases the accumulated content so the accumulator can be
// reused. Callers reset once per exchange, on every exit path.
func (a *Accumulator) Reset() {
	a.buf = nil
}
