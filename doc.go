// Package argv classifies raw command-line tokens into parameters,
// long-form options, and short-form flags.
//
// Classification is a single deterministic pass: every token becomes a
// parameter (no recognized prefix), an option (two prefix delimiters), or
// one flag per character (one prefix delimiter, cluster expanded). Names
// on the configured capture list may pull in the following token as their
// value. The result is an ordered, immutable sequence queried through
// Args.
//
//	args := argv.ParseArgv(os.Args, argv.CaptureConfig("out", "f"))
//	if args.Has("help") {
//	    ...
//	}
//	if out, ok := args.Value("out"); ok {
//	    ...
//	}
//
// Malformed input is never an error; the worst case for any token is
// being classified as a parameter.
package argv
