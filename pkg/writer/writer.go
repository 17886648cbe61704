package writer

import (
	"fmt"
	"io"
	"os"
)

// Writer takes rendered output and writes it out into a medium.
type Writer interface {
	Output(content string) error
}

// FileWriter is a Writer using a file as backing medium.
type FileWriter struct {
	Filename string
}

// Output writes the content into the given file, replacing it.
func (fw *FileWriter) Output(content string) error {
	f, err := os.OpenFile(fw.Filename, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("failed to open %q: %w", fw.Filename, err)
	}
	defer func(f *os.File) {
		if err := f.Close(); err != nil {
			fmt.Printf("Failed to close file %s\n", f.Name())
		}
	}(f)
	return writeLine(f, content)
}

// StringWriter puts the output into a provided io.Writer such as os.Stdout
// or a bytes.Buffer.
type StringWriter struct {
	Out io.Writer
}

// Output writes the content into the attached io.Writer.
func (sw *StringWriter) Output(content string) error {
	return writeLine(sw.Out, content)
}

// New returns a FileWriter for filename, or a StringWriter on out when
// filename is empty.
func New(filename string, out io.Writer) Writer {
	if filename == "" {
		return &StringWriter{Out: out}
	}
	return &FileWriter{Filename: filename}
}

func writeLine(w io.Writer, content string) error {
	if _, err := io.WriteString(w, content); err != nil {
		return err
	}
	if len(content) > 0 && content[len(content)-1] == '\n' {
		return nil
	}
	_, err := io.WriteString(w, "\n")
	return err
}
