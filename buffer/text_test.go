package buffer

import (
	"fmt"
	"testing"
)

func TestNewText_ReservesTerminatorSlot(t *testing.T) {
	mem := make([]byte, 5)
	txt := NewText(mem, 5)
	if txt.Cap() != 4 {
		t.Fatalf("expected writable capacity 4, got %d", txt.Cap())
	}

	expectPanic(t, "zero-size text buffer", func() { NewText(mem, 0) })
	expectPanic(t, "size beyond region", func() { NewText(mem, 6) })

	// A size-one buffer holds nothing but the terminator.
	empty := NewText(mem, 1)
	if empty.Cap() != 0 {
		t.Fatalf("expected capacity 0, got %d", empty.Cap())
	}
}

func TestText_WriteString(t *testing.T) {
	mem := make([]byte, 6)
	txt := NewText(mem, 6)

	if _, err := txt.WriteString("A 21"); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if txt.String() != "A 21" {
		t.Fatalf("expected %q, got %q", "A 21", txt.String())
	}
	txt.Terminate()
	if mem[4] != 0 {
		t.Fatalf("terminator not written: %v", mem)
	}
}

func TestText_WriteStringFull(t *testing.T) {
	txt := NewText(make([]byte, 4), 4)
	if _, err := txt.WriteString("ab"); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	// Over-long input fails without a partial write.
	if _, err := txt.WriteString("cd"); err != ErrFull {
		t.Fatalf("expected ErrFull, got %v", err)
	}
	if txt.Len() != 2 {
		t.Fatalf("length changed by failed write: %d", txt.Len())
	}
	if txt.String() != "ab" {
		t.Fatalf("partial write leaked: %q", txt.String())
	}
}

func TestText_WriteStringTerminatorByte(t *testing.T) {
	txt := NewText(make([]byte, 8), 8)
	if _, err := txt.WriteString("a\x00b"); err != ErrTerminator {
		t.Fatalf("expected ErrTerminator, got %v", err)
	}
	if txt.Len() != 0 {
		t.Fatalf("length changed by rejected write: %d", txt.Len())
	}
}

func TestText_Fprintf(t *testing.T) {
	txt := NewText(make([]byte, 8), 8)
	if _, err := fmt.Fprintf(txt, "%s %d", "A", 21); err != nil {
		t.Fatalf("fprintf failed: %v", err)
	}
	if txt.String() != "A 21" {
		t.Fatalf("expected %q, got %q", "A 21", txt.String())
	}
}

func TestTextStorage(t *testing.T) {
	s := NewTextStorage(10)
	txt := s.Text()
	if _, err := txt.WriteString("hello"); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if s.String() != "hello" {
		t.Fatalf("expected %q, got %q", "hello", s.String())
	}

	if got := s.Text(); got.Len() != 0 {
		t.Fatalf("expected reset text buffer, got length %d", got.Len())
	}
}

func BenchmarkWriteString(b *testing.B) {
	mem := make([]byte, 256)
	for i := 0; i < b.N; i++ {
		txt := NewText(mem, len(mem))
		for j := 0; j < 16; j++ {
			if _, err := txt.WriteString("0123456789"); err != nil {
				b.Fatal(err)
			}
		}
		txt.Terminate()
	}
}
