package runtime

import (
	"bytes"
	"testing"
)

func TestArgsObject_Count(t *testing.T) {
	if got := newArgsObject(nil).count(); got != 0 {
		t.Errorf("count() = %d, want 0", got)
	}
	if got := newArgsObject([]string{"a", "b", "c"}).count(); got != 3 {
		t.Errorf("count() = %d, want 3", got)
	}
}

func TestArgsObject_Size(t *testing.T) {
	obj := newArgsObject([]string{"hello", ""})

	tests := []struct {
		index int32
		want  int32
	}{
		{0, 5},
		{1, 0},
		{2, -1},
		{-1, -1},
	}
	for _, tt := range tests {
		if got := obj.size(tt.index); got != tt.want {
			t.Errorf("size(%d) = %d, want %d", tt.index, got, tt.want)
		}
	}
}

func TestArgsObject_Read(t *testing.T) {
	obj := newArgsObject([]string{"hello"})

	buf := make([]byte, 8)
	n := obj.read(0, buf)
	if n != 5 {
		t.Fatalf("read = %d, want 5", n)
	}
	if !bytes.Equal(buf[:n], []byte("hello")) {
		t.Errorf("read contents = %q, want %q", buf[:n], "hello")
	}

	if n := obj.read(0, make([]byte, 2)); n != -1 {
		t.Errorf("read into short buffer = %d, want -1", n)
	}
	if n := obj.read(3, buf); n != -1 {
		t.Errorf("read out of range = %d, want -1", n)
	}
}

func TestArgsObject_CopiesInput(t *testing.T) {
	src := []string{"original"}
	obj := newArgsObject(src)
	src[0] = "mutated"

	buf := make([]byte, 16)
	n := obj.read(0, buf)
	if string(buf[:n]) != "original" {
		t.Errorf("arguments object shares storage with caller: %q", buf[:n])
	}
}
