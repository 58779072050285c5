package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-sortkit/internal/bench"
)

// resetFlags restores every flag to its default so each test starts from
// a clean command tree.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(append([]string{"--log-level", "error"}, args...))

	err := rootCmd.Execute()
	return out.String(), err
}

func exitCode(err error) int {
	if ee, ok := err.(*exitError); ok {
		return ee.code
	}
	return -1
}

func TestSortStdin(t *testing.T) {
	out, err := run(t, "banana\napple\napple\ncherry\n", "sort")
	require.NoError(t, err)
	assert.Equal(t, "apple\napple\nbanana\ncherry\n", out)
}

func TestSortNumericReverse(t *testing.T) {
	out, err := run(t, "10\n9\n100\n-1\n", "sort", "-n", "-r")
	require.NoError(t, err)
	assert.Equal(t, "100\n10\n9\n-1\n", out)
}

func TestSortRange(t *testing.T) {
	out, err := run(t, "9\n8\n7\n6\n5\n4\n3\n", "sort", "-n", "--range", "2:5")
	require.NoError(t, err)
	assert.Equal(t, "9\n8\n5\n6\n7\n4\n3\n", out)
}

func TestSortRangeOutOfBounds(t *testing.T) {
	_, err := run(t, "b\na\n", "sort", "--range", "0:9")
	assert.ErrorContains(t, err, "out of bounds")
}

func TestSortKeyField(t *testing.T) {
	out, err := run(t, "x,2\ny,1\nz,2\n", "sort", "-k", "2", "--separator", ",")
	require.NoError(t, err)
	assert.Equal(t, "y,1\nx,2\nz,2\n", out)
}

func TestSortCheck(t *testing.T) {
	_, err := run(t, "a\nc\nb\n", "sort", "--check")
	assert.Equal(t, 1, exitCode(err))

	_, err = run(t, "a\nb\nc\n", "sort", "--check")
	assert.NoError(t, err)
}

func TestSortCompressedFileToFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.txt.gz")
	outPath := filepath.Join(dir, "out.txt")

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte("3\n1\n2\n"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, os.WriteFile(in, buf.Bytes(), 0o644))

	out, err := run(t, "", "sort", "-n", "-o", outPath, in)
	require.NoError(t, err)
	assert.Empty(t, out)

	got, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, "1\n2\n3\n", string(got))
}

func TestSortParallel(t *testing.T) {
	var in strings.Builder
	var want []string
	for i := 20000; i > 0; i-- {
		line := strings.Repeat("k", i%5) + "-" + string(rune('a'+i%26))
		in.WriteString(line + "\n")
		want = append(want, line)
	}

	out, err := run(t, in.String(), "sort", "--parallel", "--workers", "3")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, len(want))
	for i := 1; i < len(lines); i++ {
		if lines[i-1] > lines[i] {
			t.Fatalf("output not sorted at line %d: %q > %q", i, lines[i-1], lines[i])
		}
	}
}

func TestSearch(t *testing.T) {
	out, err := run(t, "1\n3\n5\n7\n9\n", "search", "-n", "5")
	require.NoError(t, err)
	assert.Equal(t, "2\n", out)

	out, err = run(t, "1\n3\n5\n7\n9\n", "search", "-n", "4")
	assert.Equal(t, 1, exitCode(err))
	assert.Equal(t, "-3\n", out)
}

func TestBenchJSON(t *testing.T) {
	out, err := run(t, "", "bench",
		"--sizes", "10,100",
		"--patterns", "random,strings",
		"--rounds", "1",
		"--format", "json")
	require.NoError(t, err)

	var rep bench.Report
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Len(t, rep.Results, 2*2*2)
}

func TestBenchUnknownPattern(t *testing.T) {
	_, err := run(t, "", "bench", "--patterns", "zigzag", "--sizes", "10")
	assert.ErrorContains(t, err, "unknown pattern")
}
