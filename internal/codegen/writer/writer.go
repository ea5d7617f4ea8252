package writer

import (
	"fmt"
	"strings"
)

// Writer accumulates generated source text and tracks indentation
type Writer struct {
	sb           strings.Builder
	indentLevel  int
	indentString string
	linePrefix   string
	needsIndent  bool
}

// NewWriter creates a writer that indents with indentString
func NewWriter(indentString string) *Writer {
	return &Writer{
		indentString: indentString,
		needsIndent:  true,
	}
}

// Indent increases the indentation level
func (w *Writer) Indent() {
	w.indentLevel++
	w.linePrefix = strings.Repeat(w.indentString, w.indentLevel)
}

// Dedent decreases the indentation level, stopping at zero
func (w *Writer) Dedent() {
	if w.indentLevel == 0 {
		return
	}
	w.indentLevel--
	w.linePrefix = strings.Repeat(w.indentString, w.indentLevel)
}

// IndentLevel returns the current indentation level
func (w *Writer) IndentLevel() int {
	return w.indentLevel
}

// Write writes s, indenting first if s starts a line
func (w *Writer) Write(s string) {
	if w.needsIndent && s != "" {
		w.sb.WriteString(w.linePrefix)
		w.needsIndent = false
	}
	w.sb.WriteString(s)
}

// Writef is Write with formatting
func (w *Writer) Writef(format string, args ...any) {
	w.Write(fmt.Sprintf(format, args...))
}

// WriteLine writes s followed by a newline
func (w *Writer) WriteLine(s string) {
	w.Write(s)
	w.Newline()
}

// WriteLinef is WriteLine with formatting
func (w *Writer) WriteLinef(format string, args ...any) {
	w.Writef(format, args...)
	w.Newline()
}

// Newline ends the current line
func (w *Writer) Newline() {
	w.sb.WriteString("\n")
	w.needsIndent = true
}

// BlankLine inserts an empty line unless the output is empty or already
// ends with one
func (w *Writer) BlankLine() {
	if w.sb.Len() > 0 && !strings.HasSuffix(w.sb.String(), "\n\n") {
		w.Newline()
	}
}

// WriteBlock writes opener, the indented content, then closer.
// An empty closer is skipped, which suits indentation-only blocks.
func (w *Writer) WriteBlock(opener, closer string, content func()) {
	w.WriteLine(opener)
	w.Indent()
	content()
	w.Dedent()
	if closer != "" {
		w.WriteLine(closer)
	}
}

// String returns the generated text
func (w *Writer) String() string {
	return w.sb.String()
}

// Bytes returns the generated text as a byte slice
func (w *Writer) Bytes() []byte {
	return []byte(w.sb.String())
}
