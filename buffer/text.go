package buffer

import "errors"

// Terminator is the byte appended after every successful text export.
const Terminator byte = 0

var (
	// ErrFull is reported when a write does not fit into the free space.
	ErrFull = errors.New("buffer: text buffer full")
	// ErrTerminator is reported when the input itself contains a
	// terminator byte.
	ErrTerminator = errors.New("buffer: terminator byte in text input")
)

// Text is a bounded output buffer specialized for NUL-terminated text.
//
// The region handed to NewText includes one slot for the terminator, which
// is reserved up front and never counted in Len. Unlike the generic Buffer
// operations, writes that do not fit fail locally instead of panicking:
// text is regularly built from caller-controlled data and over-long or
// malformed input is a runtime condition the logic layer reports, not a
// capacity-contract defect.
type Text struct {
	Buffer[byte]
	region []byte
}

// NewText creates a Text over the memory in mem up to size bytes, where
// size counts the terminator slot. The writable capacity is size-1.
//
// Panics if size is zero or exceeds the caller region, matching the New
// construction contract.
func NewText(mem []byte, size int) *Text {
	if size < 1 {
		panic("buffer: text buffer size must include the terminator slot")
	}
	if size > len(mem) {
		panic("buffer: text buffer size outside caller region")
	}
	return &Text{
		Buffer: *New(mem, size-1),
		region: mem[:size],
	}
}

// WriteString appends the bytes of s.
//
// The write is all-or-nothing: on an embedded terminator byte or
// insufficient free space it returns the matching error and leaves the
// length unchanged.
func (t *Text) WriteString(s string) (int, error) {
	for i := 0; i < len(s); i++ {
		if s[i] == Terminator {
			return 0, ErrTerminator
		}
	}
	if len(s) > t.Cap()-t.Len() {
		return 0, ErrFull
	}
	t.Extend([]byte(s))
	return len(s), nil
}

// Write appends p under the same all-or-nothing rules as WriteString.
// It makes Text usable with fmt.Fprintf and friends.
func (t *Text) Write(p []byte) (int, error) {
	return t.WriteString(string(p))
}

// Terminate writes the terminator byte one past the current length.
//
// The bridge calls this after every successful text-producing operation;
// the contract guarantees the slot exists because capacities count it.
func (t *Text) Terminate() {
	t.region[t.Len()] = Terminator
}

// String returns the written text.
func (t *Text) String() string {
	return string(t.Values())
}
