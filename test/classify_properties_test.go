package argv_test

import (
	"strings"
	"testing"

	. "github.com/onsi/gomega"
	"pgregory.net/rapid"

	"github.com/toejough/argv"
)

// tokenGen draws simple well-formed tokens: bare words, options, and
// flag clusters over lowercase letters. This is the documented scope of
// the display round-trip property: no captured values (rendering drops
// them) and no delimiter characters inside names.
func tokenGen() *rapid.Generator[string] {
	return rapid.OneOf(
		rapid.StringMatching(`[a-z0-9]{1,8}`),
		rapid.StringMatching(`--[a-z][a-z0-9-]{0,8}`),
		rapid.StringMatching(`-[a-z]{1,4}`),
	)
}

// Property: when every token yields exactly one record (no multi-char
// clusters), the output is never longer than the input and the shortfall
// is exactly the number of capture events. Cluster expansion is the one
// way output can grow, covered by its own property below.
func TestProperty_Classify_LengthInvariant(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		g := NewWithT(t)

		single := rapid.OneOf(
			rapid.StringMatching(`[a-z0-9]{1,8}`),
			rapid.StringMatching(`--[a-z][a-z0-9-]{0,8}`),
			rapid.StringMatching(`-[a-z]`),
		)
		tokens := rapid.SliceOfN(single, 0, 20).Draw(rt, "tokens")
		captures := rapid.SliceOfN(rapid.StringMatching(`[a-z]{1,4}`), 0, 4).Draw(rt, "captures")

		got := argv.Classify(tokens, argv.CaptureConfig(captures...))

		captureEvents := 0
		for _, arg := range got {
			if arg.HasValue() {
				captureEvents++
			}
		}

		g.Expect(len(got)).To(BeNumerically("<=", len(tokens)))
		g.Expect(len(tokens) - len(got)).To(Equal(captureEvents))
	})
}

// Property: same input and configuration always produce an identical
// sequence.
func TestProperty_Classify_Deterministic(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		g := NewWithT(t)

		tokens := rapid.SliceOfN(tokenGen(), 0, 20).Draw(rt, "tokens")
		captures := rapid.SliceOfN(rapid.StringMatching(`[a-z]{1,4}`), 0, 4).Draw(rt, "captures")
		cfg := argv.CaptureConfig(captures...)

		g.Expect(argv.Classify(tokens, cfg)).To(Equal(argv.Classify(tokens, cfg)))
	})
}

// Property: rendering the classified sequence and reclassifying it
// preserves every record's kind and name, for capture-free input.
func TestProperty_Classify_DisplayFormRoundTrips(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		g := NewWithT(t)

		tokens := rapid.SliceOfN(tokenGen(), 0, 20).Draw(rt, "tokens")
		cfg := argv.DefaultConfig()

		first := argv.Parse(tokens, cfg)
		second := argv.Parse(strings.Fields(first.String()), cfg)

		g.Expect(second.Len()).To(Equal(first.Len()))
		for i := 0; i < first.Len(); i++ {
			g.Expect(second.At(i).Kind()).To(Equal(first.At(i).Kind()), "record %d", i)
			g.Expect(second.At(i).Name()).To(Equal(first.At(i).Name()), "record %d", i)
		}
	})
}

// Property: a flag cluster with no captures expands to one flag per
// character, in order.
func TestProperty_Classify_ClusterExpandsPerCharacter(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		g := NewWithT(t)

		chars := rapid.StringMatching(`[a-z]{1,10}`).Draw(rt, "chars")

		got := argv.Classify([]string{"-" + chars}, argv.DefaultConfig())

		g.Expect(got).To(HaveLen(len(chars)))
		for i, arg := range got {
			g.Expect(arg.Kind()).To(Equal(argv.KindFlag))
			g.Expect(arg.Name()).To(Equal(string(chars[i])))
		}
	})
}

// Property: with AbandonRest, a mid-cluster capture ends the token; with
// KeepRest, every character still gets a record. Pins the configurable
// policy both ways.
func TestProperty_Classify_ClusterCapturePolicy(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		g := NewWithT(t)

		before := rapid.StringMatching(`[a-e]{0,4}`).Draw(rt, "before")
		after := rapid.StringMatching(`[g-k]{1,4}`).Draw(rt, "after")
		token := "-" + before + "f" + after

		abandon := argv.CaptureConfig("f")
		keep := argv.CaptureConfig("f")
		keep.Cluster = argv.ClusterKeepRest

		gotAbandon := argv.Classify([]string{token, "value"}, abandon)
		gotKeep := argv.Classify([]string{token, "value"}, keep)

		// Abandon: records for the chars before 'f', then the capture.
		g.Expect(gotAbandon).To(HaveLen(len(before) + 1))
		g.Expect(gotAbandon[len(before)]).To(Equal(argv.NewFlagCapture('f', "value")))

		// Keep: one record per character, capture included.
		g.Expect(gotKeep).To(HaveLen(len(before) + 1 + len(after)))
		g.Expect(gotKeep[len(before)]).To(Equal(argv.NewFlagCapture('f', "value")))
		for _, arg := range gotKeep[len(before)+1:] {
			g.Expect(arg.HasValue()).To(BeFalse())
		}
	})
}

// Property: every parameter comes back verbatim through the query layer.
func TestProperty_Args_ParametersSurviveVerbatim(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		g := NewWithT(t)

		words := rapid.SliceOfN(rapid.StringMatching(`[a-z0-9]{1,8}`), 0, 10).Draw(rt, "words")

		args := argv.Parse(words, argv.DefaultConfig())

		g.Expect(args.Parameters()).To(Equal(append([]string(nil), words...)))
		for _, w := range words {
			g.Expect(args.HasKind(w, argv.KindParameter)).To(BeTrue())
		}
	})
}

// Property: FindAll positions strictly increase and agree with repeated
// Find calls.
func TestProperty_Args_FindAllAgreesWithFind(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		g := NewWithT(t)

		tokens := rapid.SliceOfN(tokenGen(), 0, 20).Draw(rt, "tokens")
		name := rapid.StringMatching(`[a-z]{1,4}`).Draw(rt, "name")

		args := argv.Parse(tokens, argv.DefaultConfig())
		hits := args.FindAll(name, argv.FindOpts{})

		prev := -1
		for _, hit := range hits {
			g.Expect(hit).To(BeNumerically(">", prev))
			g.Expect(args.Find(name, argv.FindOpts{Start: prev + 1})).To(Equal(hit))
			prev = hit
		}
		g.Expect(args.Find(name, argv.FindOpts{Start: prev + 1})).To(Equal(-1))
	})
}
