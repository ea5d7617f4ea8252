package pipeline

import (
	"fmt"
	"io"

	"github.com/okra-platform/skelgen/internal/schema"
)

// WriteParseTree prints what the parser recognised. The trace is for people
// only; nothing reads it back.
func WriteParseTree(w io.Writer, info *schema.ClassInfo) {
	fmt.Fprintln(w, "[Parse Tree]")
	fmt.Fprintf(w, "  Class Name: %s\n", info.Name)

	fmt.Fprintln(w, "  Attributes:")
	for _, attr := range info.Attributes {
		if attr.Type != "" {
			fmt.Fprintf(w, "    - %s %s\n", attr.Type, attr.Name)
		} else {
			fmt.Fprintf(w, "    - %s\n", attr.Name)
		}
	}

	if info.Typed() {
		fmt.Fprintln(w, "  Methods:")
		for _, method := range info.Methods {
			fmt.Fprintf(w, "    - %s()\n", method)
		}
	}
	fmt.Fprintln(w)
}
