// File: pkg/diff/source.go
package diff

import (
	"bytes"
	"errors"
	"os"
	"unicode/utf8"

	"condense/pkg/textutil"

	"go.uber.org/zap"
)

var (
	// ErrInvalidUTF8 is returned for inputs that are not valid UTF-8 text.
	ErrInvalidUTF8 = errors.New("stream did not contain valid UTF-8")
	// ErrBinary is returned for inputs that look like binary files.
	ErrBinary = errors.New("binary file")
)

// sniffLen is how much of a file is checked for NUL bytes.
const sniffLen = 512

// ReadLines reads a text file and splits it into lines. The file must be
// valid UTF-8 and must not look binary.
func ReadLines(path string, logger *zap.Logger) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Debug("Failed to read file", zap.String("path", path), zap.Error(err))
		return nil, err
	}

	if isBinary(data) {
		return nil, ErrBinary
	}
	if !utf8.Valid(data) {
		return nil, ErrInvalidUTF8
	}

	lines := textutil.SplitLines(string(data))
	logger.Debug("Read file", zap.String("path", path), zap.Int("sizeBytes", len(data)), zap.Int("lines", len(lines)))
	return lines, nil
}

// isBinary checks the head of the content for NUL bytes.
func isBinary(data []byte) bool {
	head := data
	if len(head) > sniffLen {
		head = head[:sniffLen]
	}
	return bytes.IndexByte(head, 0) >= 0
}
