package buffer

// Storage owns backing memory for a Buffer.
//
// It stands in for the host-allocated region in tests and tools that drive
// game operations directly.
type Storage[T any] struct {
	mem []T
	buf *Buffer[T]
}

// NewStorage allocates memory for capacity elements.
func NewStorage[T any](capacity int) *Storage[T] {
	return &Storage[T]{mem: make([]T, capacity)}
}

// Buffer returns a fresh, empty Buffer over the storage.
//
// Any previously handed-out Buffer is invalidated; its writes stay readable
// through Values until then.
func (s *Storage[T]) Buffer() *Buffer[T] {
	clear(s.mem)
	s.buf = New(s.mem, len(s.mem))
	return s.buf
}

// Values returns the prefix written through the last Buffer.
func (s *Storage[T]) Values() []T {
	if s.buf == nil {
		return nil
	}
	return s.buf.Values()
}

// TextStorage owns backing memory for a Text buffer.
type TextStorage struct {
	mem  []byte
	text *Text
}

// NewTextStorage allocates size bytes, terminator slot included.
func NewTextStorage(size int) *TextStorage {
	return &TextStorage{mem: make([]byte, size)}
}

// Text returns a fresh, empty Text buffer over the storage.
func (s *TextStorage) Text() *Text {
	clear(s.mem)
	s.text = NewText(s.mem, len(s.mem))
	return s.text
}

// String returns the text written through the last Text buffer.
func (s *TextStorage) String() string {
	if s.text == nil {
		return ""
	}
	return s.text.String()
}
