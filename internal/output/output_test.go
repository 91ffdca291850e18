package output

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestWrite_Stdout(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, "", "SELECT 1;\n"); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	if buf.String() != "SELECT 1;\n" {
		t.Errorf("stdout = %q", buf.String())
	}
}

func TestWrite_File(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "out.sql")
	if err := Write(&buf, path, "SELECT 2;\n"); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("stdout should be untouched, got %q", buf.String())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if string(data) != "SELECT 2;\n" {
		t.Errorf("file content = %q", data)
	}
}

func TestWrite_BadPath(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "missing", "out.sql")
	if err := Write(&buf, path, "x"); err == nil {
		t.Error("expected error for unwritable path")
	}
}

type failingCloser struct {
	bytes.Buffer
	closeErr error
	closed   bool
}

func (f *failingCloser) Close() error {
	f.closed = true
	return f.closeErr
}

func TestWriteAndClose_ReportsCloseError(t *testing.T) {
	boom := errors.New("disk full")
	w := &failingCloser{closeErr: boom}
	err := writeAndClose(w, "SELECT 3;\n")
	if !errors.Is(err, boom) {
		t.Fatalf("error = %v, want %v", err, boom)
	}
	if !w.closed {
		t.Error("file was not closed")
	}
}

func TestWriteAndClose_OK(t *testing.T) {
	w := &failingCloser{}
	if err := writeAndClose(w, "SELECT 4;\n"); err != nil {
		t.Fatalf("writeAndClose error: %v", err)
	}
	if !w.closed || w.String() != "SELECT 4;\n" {
		t.Errorf("closed = %v, content = %q", w.closed, w.String())
	}
}
