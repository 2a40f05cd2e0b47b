package expect

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunner_EqualPass(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)

	ok := r.Equal("ints match", 1, 1)

	assert.True(t, ok)
	assert.Equal(t, "[OK] ints match\n", buf.String())
	assert.Equal(t, 1, r.Passed())
	assert.Equal(t, 0, r.Failed())
	assert.True(t, r.OK())
}

func TestRunner_EqualFail(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)

	ok := r.Equal("ints match", 1, 2)

	assert.False(t, ok)
	out := buf.String()
	assert.Contains(t, out, "[FAIL] ints match")
	assert.Contains(t, out, "expected: 2")
	assert.Contains(t, out, "actual:   1")
	assert.Contains(t, out, "diff (-expected +actual):")
	assert.Equal(t, 1, r.Failed())
	assert.False(t, r.OK())
}

func TestRunner_DeepEquality(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)

	// Two distinct slices with equal contents must compare equal.
	assert.True(t, r.Equal("slices", []string{"a", "b"}, []string{"a", "b"}))
	assert.False(t, r.Equal("slices differ", []string{"a"}, []string{"b"}))
}

func TestRunner_FailureDoesNotHaltRun(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)

	r.Equal("first", 1, 2)
	r.Equal("second", "x", "x")

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.NotEmpty(t, lines)
	assert.Contains(t, lines[0], "[FAIL] first")
	assert.Contains(t, lines[len(lines)-1], "[OK] second")
	assert.Equal(t, 1, r.Passed())
	assert.Equal(t, 1, r.Failed())
}

func TestRunner_Blocks(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)

	r.Block("first block")
	r.Equal("a", true, true)
	r.Block("second block")
	r.Equal("b", false, false)

	want := "# first block\n" +
		"[OK] a\n" +
		"\n" +
		"# second block\n" +
		"[OK] b\n"
	assert.Equal(t, want, buf.String())
}

func TestRunner_Summary(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)

	r.Equal("p1", 1, 1)
	r.Equal("p2", 2, 2)
	r.Equal("f1", 3, 4)

	assert.Equal(t, "2 passed, 1 failed", r.Summary())
}
