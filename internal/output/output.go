package output

import (
	"fmt"
	"io"
	"os"
)

// Write writes text to outPath, or to stdout when outPath is empty.
func Write(stdout io.Writer, outPath, text string) error {
	if outPath == "" {
		if _, err := io.WriteString(stdout, text); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
		return nil
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	return writeAndClose(f, text)
}

// writeAndClose reports a failed Close, which is where a buffered write to
// the file may surface.
func writeAndClose(w io.WriteCloser, text string) error {
	_, werr := io.WriteString(w, text)
	cerr := w.Close()
	if werr != nil {
		return fmt.Errorf("writing output: %w", werr)
	}
	if cerr != nil {
		return fmt.Errorf("closing output file: %w", cerr)
	}
	return nil
}

