package parasail

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigResolve(t *testing.T) {
	cases := []struct {
		cfg     Config
		profile bool
		want    string
	}{
		{Config{Algorithm: Global}, false, "nw"},
		{Config{Algorithm: Local, Mode: StatsTable, Strategy: Striped, Width: Width16}, false, "sw_stats_table_striped_16"},
		{Config{Algorithm: SemiGlobal, Mode: Trace, Strategy: Diag, Width: WidthSat}, false, "sg_trace_diag_sat"},
		{Config{Algorithm: Global, Strategy: Scan}, false, "nw_scan"},
		{Config{Algorithm: Local, Mode: Rowcol, Strategy: Scan, Width: Width64}, false, "sw_rowcol_scan_64"},
		{Config{Algorithm: Global, Mode: ModeTable, Strategy: Diag, Width: Width32}, false, "nw_table_diag_32"},
		{Config{Algorithm: Global, Mode: Stats, Strategy: Striped, Width: Width8}, true, "nw_stats_striped_profile_8"},
		{Config{Algorithm: Local, Strategy: Scan, Width: WidthSat}, true, "sw_scan_profile_sat"},
	}
	for _, tt := range cases {
		sym, err := tt.cfg.resolve(tt.profile)
		require.NoError(t, err, tt.want)
		assert.Equal(t, tt.want, sym)
	}
}

func TestConfigResolveInvalid(t *testing.T) {
	cases := []struct {
		name    string
		cfg     Config
		profile bool
	}{
		{"serial with width", Config{Algorithm: Global, Width: Width16}, false},
		{"striped without width", Config{Algorithm: Local, Strategy: Striped}, false},
		{"diag without width", Config{Algorithm: Local, Strategy: Diag}, false},
		{"profile without strategy", Config{Algorithm: Global, Width: Width16}, true},
		{"profile diag", Config{Algorithm: Global, Strategy: Diag, Width: Width16}, true},
		{"profile without width", Config{Algorithm: Global, Strategy: Scan}, true},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.cfg.resolve(tt.profile)
			var cerr *ConfigError
			require.ErrorAs(t, err, &cerr)
		})
	}
}

// Every valid configuration maps to a distinct native symbol, and the
// enumeration covers the library's full alignment surface.
func TestConfigEnumeration(t *testing.T) {
	seq := seqSymbols()
	prof := profileSymbols()
	assert.Len(t, seq, 357)
	assert.Len(t, prof, 210)
	assert.Len(t, seq, len(uniq(seq)))
	assert.Len(t, prof, len(uniq(prof)))

	f := newFake()
	for _, sym := range seq {
		_, ok := f.tbl.seqAlign[sym]
		require.True(t, ok, sym)
	}
	for _, sym := range prof {
		_, ok := f.tbl.profileAlign[sym]
		require.True(t, ok, sym)
	}
}

func uniq(ss []string) map[string]bool {
	m := make(map[string]bool, len(ss))
	for _, s := range ss {
		m[s] = true
	}
	return m
}
