package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seqkit/parasail-go/parasail"
)

func TestParseConfig(t *testing.T) {
	cfg, err := parseConfig("sw", "stats_table", "striped", 16)
	require.NoError(t, err)
	assert.Equal(t, parasail.Config{
		Algorithm: parasail.Local,
		Mode:      parasail.StatsTable,
		Strategy:  parasail.Striped,
		Width:     parasail.Width16,
	}, cfg)

	cfg, err = parseConfig("nw", "score", "serial", 16)
	require.NoError(t, err)
	assert.Equal(t, parasail.WidthDefault, cfg.Width, "serial ignores the width flag")

	cfg, err = parseConfig("sg", "trace", "diag", 0)
	require.NoError(t, err)
	assert.Equal(t, parasail.WidthSat, cfg.Width)

	_, err = parseConfig("blast", "score", "striped", 16)
	require.Error(t, err)
	_, err = parseConfig("nw", "verbose", "striped", 16)
	require.Error(t, err)
	_, err = parseConfig("nw", "score", "warp", 16)
	require.Error(t, err)
	_, err = parseConfig("nw", "score", "striped", 12)
	require.Error(t, err)
}

func TestResolveSequencesArgs(t *testing.T) {
	q, r, err := resolveSequences([]string{"ACGT", "ACG"}, "", "")
	require.NoError(t, err)
	assert.Equal(t, "ACGT", q)
	assert.Equal(t, "ACG", r)

	_, _, err = resolveSequences([]string{"ACGT"}, "", "")
	require.Error(t, err)
}
