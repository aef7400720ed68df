package sqlsink

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/huangsam/freqseed/internal/contract"
)

// FileExecutor writes the inlined rendering of every statement to a script
// file. The resulting script is plain MySQL text suitable for piping into a
// mysql client by hand.
type FileExecutor struct {
	file *os.File
	buf  *bufio.Writer
}

var _ contract.StatementExecutor = &FileExecutor{} // Compile-time check

// NewFileExecutor creates the script file and writes its header.
func NewFileExecutor(path string) (*FileExecutor, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create script file %s: %w", path, err)
	}

	buf := bufio.NewWriter(file)
	fmt.Fprintf(buf, "-- Generated by freqseed on %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintln(buf, "-- Statements are ordered; apply the whole script in one pass.")
	fmt.Fprintln(buf, "SET NAMES utf8mb4;")
	fmt.Fprintln(buf)

	return &FileExecutor{file: file, buf: buf}, nil
}

// Exec appends the inlined statement text to the script.
func (e *FileExecutor) Exec(_ context.Context, stmt contract.Statement) error {
	if _, err := fmt.Fprintln(e.buf, stmt.Inline); err != nil {
		return fmt.Errorf("failed to write statement: %w", err)
	}
	if _, err := fmt.Fprintln(e.buf); err != nil {
		return fmt.Errorf("failed to write statement: %w", err)
	}
	return nil
}

// Close flushes buffered statements and closes the script file.
func (e *FileExecutor) Close() error {
	if err := e.buf.Flush(); err != nil {
		_ = e.file.Close()
		return fmt.Errorf("failed to flush script file: %w", err)
	}
	return e.file.Close()
}
