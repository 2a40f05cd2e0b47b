// Package expect is a minimal assertion runner with grouped console output.
//
// A Runner compares actual against expected values by deep structural
// equality and prints one line per check: "[OK] description" on a pass,
// "[FAIL] description" plus both values and a structural diff on a failure.
// Failures are reported, never thrown: a failing check leaves the run
// going. Block opens a named output group, purely for readability.
//
// Values handed to Equal must be comparable with go-cmp; slices, maps and
// primitives all are, which covers classification labels and label counts.
package expect

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/go-cmp/cmp"
)

// Runner accumulates check results and writes them to a single output
// stream. The zero value is not usable; construct with New.
type Runner struct {
	out    io.Writer
	ok     lipgloss.Style
	fail   lipgloss.Style
	opened bool
	passed int
	failed int
}

// New returns a Runner writing to out. Status markers are colored when out
// is a terminal that supports it and plain text otherwise.
func New(out io.Writer) *Runner {
	r := lipgloss.NewRenderer(out)
	return &Runner{
		out:  out,
		ok:   r.NewStyle().Foreground(lipgloss.Color("#8BC34A")),
		fail: r.NewStyle().Foreground(lipgloss.Color("#e53935")),
	}
}

// Block closes the previous output group and opens a new one named name.
// It has no effect on check outcomes.
func (r *Runner) Block(name string) {
	if r.opened {
		fmt.Fprintln(r.out)
	}
	r.opened = true
	fmt.Fprintf(r.out, "# %s\n", name)
}

// Equal checks actual against expected by deep structural equality and
// reports whether they matched.
func (r *Runner) Equal(desc string, actual, expected any) bool {
	diff := cmp.Diff(expected, actual)
	if diff == "" {
		r.passed++
		fmt.Fprintf(r.out, "%s %s\n", r.ok.Render("[OK]"), desc)
		return true
	}

	r.failed++
	fmt.Fprintf(r.out, "%s %s\n", r.fail.Render("[FAIL]"), desc)
	fmt.Fprintf(r.out, "  expected: %#v\n", expected)
	fmt.Fprintf(r.out, "  actual:   %#v\n", actual)
	fmt.Fprintf(r.out, "  diff (-expected +actual):\n%s", indent(diff, "    "))
	return false
}

// Passed returns the number of checks that succeeded so far.
func (r *Runner) Passed() int { return r.passed }

// Failed returns the number of checks that failed so far.
func (r *Runner) Failed() int { return r.failed }

// OK reports whether no check has failed.
func (r *Runner) OK() bool { return r.failed == 0 }

// Summary returns a one-line tally of the run.
func (r *Runner) Summary() string {
	return fmt.Sprintf("%d passed, %d failed", r.passed, r.failed)
}

func indent(s, prefix string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n") + "\n"
}
