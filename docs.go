package argv

import (
	"io"
	"strings"

	"github.com/toejough/argv/internal/help"
)

// Doc describes one argument of a program for documentation output: a
// flag character and/or an option name, plus the text describing it.
type Doc struct {
	Flag   byte   // 0 when the argument has no short form
	Option string // "" when the argument has no long form
	Desc   string
}

// Present reports whether the documented argument appears in args, under
// either its flag or its option form.
func (d Doc) Present(args Args) bool {
	if d.Flag != 0 && args.HasKind(string(d.Flag), KindFlag) {
		return true
	}
	return d.Option != "" && args.HasKind(d.Option, KindOption)
}

// WriteDocs renders docs to w as aligned "-f  --foo   description" rows
// with the standard styling.
func WriteDocs(w io.Writer, docs []Doc) {
	help.Write(w, entries(docs), help.DefaultStyles())
}

// RenderDocs renders docs to a string, as WriteDocs does.
func RenderDocs(docs []Doc) string {
	var b strings.Builder
	WriteDocs(&b, docs)
	return b.String()
}

func entries(docs []Doc) []help.Entry {
	out := make([]help.Entry, len(docs))
	for i, d := range docs {
		out[i] = help.Entry{Flag: d.Flag, Option: d.Option, Desc: d.Desc}
	}
	return out
}
