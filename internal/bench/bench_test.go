package bench

import (
	"bytes"
	"context"
	"encoding/json"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/ajroetker/go-sortkit/arrays"
	"github.com/ajroetker/go-sortkit/arrays/contrib/workerpool"
)

func TestParsePattern(t *testing.T) {
	p, err := ParsePattern("sawtooth")
	require.NoError(t, err)
	assert.Equal(t, Sawtooth, p)

	_, err = ParsePattern("zigzag")
	assert.ErrorContains(t, err, "unknown pattern")
}

func TestGenerate(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	assert.True(t, arrays.IsSorted(Generate(Sorted, 100, rng)))
	assert.False(t, arrays.IsSorted(Generate(Reversed, 100, rng)))

	few := Generate(FewUnique, 1000, rng)
	for _, v := range few {
		assert.Less(t, v, int64(8))
	}
	assert.Len(t, GenerateStrings(50, rng), 50)
}

func TestRun(t *testing.T) {
	pool := workerpool.New(2)
	defer pool.Close()

	core, logs := observer.New(zapcore.DebugLevel)
	opts := Options{
		Sizes:    []int{0, 10, 500},
		Patterns: Patterns,
		Rounds:   2,
		Seed:     7,
		Pool:     pool,
	}

	rep, err := Run(context.Background(), opts, zap.New(core))
	require.NoError(t, err)

	// Three engines per (pattern, size) pair.
	assert.Len(t, rep.Results, len(Patterns)*len(opts.Sizes)*3)
	assert.Equal(t, len(rep.Results), logs.FilterMessage("measured").Len())

	for _, r := range rep.Results {
		if r.Engine == EngineSortkit && r.Size == 500 {
			want := "merge"
			if r.Pattern == Strings && arrays.RadixEnabled() {
				want = "radix"
			}
			assert.Equal(t, want, r.Strategy, "%s/%d", r.Pattern, r.Size)
		}
		if r.Engine == EngineSortkit && r.Size == 0 {
			assert.Equal(t, "insertion", r.Strategy)
		}
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, Options{Sizes: []int{10}, Patterns: []Pattern{Random}}, zap.NewNop())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestReportWrite(t *testing.T) {
	rep, err := Run(context.Background(), Options{
		Sizes:    []int{16},
		Patterns: []Pattern{Random, Strings},
		Rounds:   1,
	}, zap.NewNop())
	require.NoError(t, err)

	var text bytes.Buffer
	require.NoError(t, rep.Write(&text, "text"))
	assert.Contains(t, text.String(), "stdlib-stable")
	assert.Contains(t, text.String(), "host:")

	var js bytes.Buffer
	require.NoError(t, rep.Write(&js, "json"))
	var decoded Report
	require.NoError(t, json.Unmarshal(js.Bytes(), &decoded))
	assert.Len(t, decoded.Results, len(rep.Results))

	var ys bytes.Buffer
	require.NoError(t, rep.Write(&ys, "yaml"))
	var generic map[string]any
	require.NoError(t, yaml.Unmarshal(ys.Bytes(), &generic))
	assert.Contains(t, generic, "results")

	assert.Error(t, rep.Write(&text, "csv"))
}
