package ptp

import (
	"bytes"
	"unicode/utf8"
)

// TextMax is the capacity of a native text buffer (summary, manual,
// driver notice).
const TextMax = 32 * 1024

// TextBuffer is a fixed-capacity native text buffer, filled by the
// driver and terminated by the first NUL byte.
type TextBuffer [TextMax]byte

// textToString takes ownership of a populated text buffer and converts
// the used portion into a string. The used length runs up to and
// excluding the first terminator; bytes beyond it are never read. If
// the text is not valid UTF-8 the result is ErrCorruptedData and the
// buffer is still fully consumed.
func textToString(buf *TextBuffer) (string, error) {
	n := bytes.IndexByte(buf[:], 0)
	if n < 0 {
		n = len(buf)
	}
	used := buf[:n]
	if !utf8.Valid(used) {
		return "", ErrCorruptedData
	}
	return string(used), nil
}
