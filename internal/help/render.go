package help

import (
	"fmt"
	"io"
	"strings"
)

// Entry is one documented argument: a flag character and/or an option
// name, with the text describing it.
type Entry struct {
	Flag   byte   // 0 when the argument has no short form
	Option string // "" when the argument has no long form
	Desc   string
}

// names renders the "-f  --foo" column without styling, for width math.
func (e Entry) names() string {
	var b strings.Builder
	if e.Flag != 0 {
		b.WriteString("-")
		b.WriteByte(e.Flag)
	}
	if e.Option != "" {
		if e.Flag != 0 {
			b.WriteString("  ")
		}
		b.WriteString("--")
		b.WriteString(e.Option)
	}
	return b.String()
}

// styledNames renders the names column with styling applied.
func (e Entry) styledNames(styles Styles) string {
	var b strings.Builder
	if e.Flag != 0 {
		b.WriteString(styles.Flag.Render("-" + string(e.Flag)))
	}
	if e.Option != "" {
		if e.Flag != 0 {
			b.WriteString("  ")
		}
		b.WriteString(styles.Flag.Render("--" + e.Option))
	}
	return b.String()
}

// Write renders entries as aligned rows: names column padded to the
// widest entry (plus margin), description column after. Styling comes
// from styles; use DefaultStyles for standard output.
func Write(w io.Writer, entries []Entry, styles Styles) {
	margin := 0
	for _, e := range entries {
		if n := len(e.names()); n > margin {
			margin = n
		}
	}
	margin += 4

	for _, e := range entries {
		pad := margin - len(e.names())
		fmt.Fprintf(w, "%s%s%s\n", e.styledNames(styles), strings.Repeat(" ", pad), styles.Desc.Render(e.Desc))
	}
}

// WriteSection renders a bold header line followed by the entries.
func WriteSection(w io.Writer, header string, entries []Entry, styles Styles) {
	fmt.Fprintln(w, styles.Header.Render(header))
	Write(w, entries, styles)
}
