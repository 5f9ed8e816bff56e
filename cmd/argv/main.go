// Package main provides the argv CLI tool for inspecting how a command
// line classifies. Tokens after "--" are classified; tokens before it
// name the arguments allowed to capture.
//
//	argv out f -- -hv --out result.txt input.txt
package main

import (
	"fmt"
	"os"

	"github.com/toejough/argv"
	"github.com/toejough/argv/env"
	"github.com/toejough/argv/internal/help"
	"github.com/toejough/argv/pathfind"
)

func main() {
	os.Exit(runMain())
}

func runMain() int {
	captures, tokens := splitArgs(os.Args[1:])
	args := argv.Parse(tokens, argv.CaptureConfig(captures...))

	styles := help.DefaultStyles()

	fmt.Println(styles.Header.Render("Invocation"))
	fmt.Printf("  %s\n\n", resolveSelf())

	fmt.Println(styles.Header.Render("Classified arguments"))
	for i := 0; i < args.Len(); i++ {
		arg := args.At(i)
		line := fmt.Sprintf("  %-10s %s", arg.Kind(), styles.Flag.Render(arg.String()))
		if v, ok := arg.Value(); ok {
			line += " = " + styles.Value.Render(v)
		}
		fmt.Println(line)
	}

	fmt.Printf("\n%s %s\n", styles.Header.Render("Rendered:"), args)
	return 0
}

// splitArgs divides the raw arguments at the first "--": capture names
// before it, tokens to classify after. With no "--", everything is a
// token and nothing captures.
func splitArgs(raw []string) (captures, tokens []string) {
	for i, arg := range raw {
		if arg == "--" {
			return raw[:i], raw[i+1:]
		}
	}
	return nil, raw
}

// resolveSelf locates the running binary by searching PATH for argv[0].
func resolveSelf() string {
	if len(os.Args) == 0 {
		return "(unknown)"
	}
	dirs, _ := env.System().Path()
	path, _ := pathfind.Resolve(dirs, os.Args[0])
	return path
}
