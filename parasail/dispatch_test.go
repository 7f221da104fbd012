package parasail

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlign(t *testing.T) {
	newFake().install(t)
	m := testMatrix(t)

	cfg := Config{Algorithm: Local, Mode: StatsTable, Strategy: Striped, Width: Width16}
	r, err := Align(cfg, "MKVLA", "MKLA", 10, 1, m)
	require.NoError(t, err)
	defer r.Close()

	assert.True(t, r.IsSW())
	assert.True(t, r.IsStriped())
	_, err = r.MatchesTable()
	require.NoError(t, err)
}

func TestAlignInvalidConfig(t *testing.T) {
	newFake().install(t)
	m := testMatrix(t)

	_, err := Align(Config{Algorithm: Local, Strategy: Striped}, "MKVLA", "MKLA", 10, 1, m)
	var cerr *ConfigError
	require.ErrorAs(t, err, &cerr)
}

func TestAlignNilMatrix(t *testing.T) {
	newFake().install(t)

	_, err := NW("MKVLA", "MKLA", 10, 1, nil)
	require.Error(t, err)

	m := testMatrix(t)
	require.NoError(t, m.Close())
	_, err = NW("MKVLA", "MKLA", 10, 1, m)
	require.Error(t, err)
}

// The named wrappers and the Config dispatcher reach the same native entry
// point.
func TestAlignMatchesNamedWrapper(t *testing.T) {
	newFake().install(t)
	m := testMatrix(t)

	direct, err := SWStatsTableStriped16("MKVLA", "MKLA", 10, 1, m)
	require.NoError(t, err)
	defer direct.Close()

	cfg := Config{Algorithm: Local, Mode: StatsTable, Strategy: Striped, Width: Width16}
	dispatched, err := Align(cfg, "MKVLA", "MKLA", 10, 1, m)
	require.NoError(t, err)
	defer dispatched.Close()

	assert.Equal(t, direct.Score(), dispatched.Score())
	assert.Equal(t, direct.IsStriped(), dispatched.IsStriped())
}

// A profile alignment and the equivalent direct alignment agree on the
// score for the same inputs.
func TestAlignProfileEquivalence(t *testing.T) {
	f := newFake()
	f.install(t)
	m := testMatrix(t)

	query, ref := "MKVLAWW", "MKLAW"
	p, err := ProfileCreate16(query, m)
	require.NoError(t, err)
	defer p.Close()

	viaProfile, err := NWScanProfile16(p, ref, 10, 1)
	require.NoError(t, err)
	defer viaProfile.Close()

	direct, err := NWScan16(query, ref, 10, 1, m)
	require.NoError(t, err)
	defer direct.Close()

	assert.Equal(t, direct.Score(), viaProfile.Score())
	assert.Equal(t, len(query), viaProfile.LenQuery())
	assert.Equal(t, len(ref), viaProfile.LenRef())
}

func TestAlignProfileDispatch(t *testing.T) {
	newFake().install(t)
	m := testMatrix(t)

	p, err := NewProfile("MKVLA", m, Width8, true)
	require.NoError(t, err)
	defer p.Close()

	cfg := Config{Algorithm: Local, Mode: Stats, Strategy: Striped, Width: Width8}
	r, err := AlignProfile(cfg, p, "MKLA", 10, 1)
	require.NoError(t, err)
	defer r.Close()

	_, err = r.Matches()
	require.NoError(t, err)

	// Diag has no profile kernels.
	_, err = AlignProfile(Config{Algorithm: Local, Strategy: Diag, Width: Width8}, p, "MKLA", 10, 1)
	var cerr *ConfigError
	require.ErrorAs(t, err, &cerr)
}

func TestAlignProfileClosed(t *testing.T) {
	newFake().install(t)
	m := testMatrix(t)

	p, err := ProfileCreate32("MKVLA", m)
	require.NoError(t, err)
	require.NoError(t, p.Close())

	_, err = SWScanProfile32(p, "MKLA", 10, 1)
	require.Error(t, err)
}

func TestProfileClose(t *testing.T) {
	f := newFake()
	f.install(t)
	m := testMatrix(t)

	p, err := NewProfile("MKVLA", m, WidthSat, false)
	require.NoError(t, err)
	assert.Equal(t, "MKVLA", p.Query())
	assert.Equal(t, 5, p.Length())
	assert.Same(t, m, p.Matrix())

	require.NoError(t, p.Close())
	require.NoError(t, p.Close())
	assert.Equal(t, 1, f.profileFrees)
}

func TestNewProfileRequiresWidth(t *testing.T) {
	newFake().install(t)
	m := testMatrix(t)

	_, err := NewProfile("MKVLA", m, WidthDefault, false)
	require.Error(t, err)
}

func TestNWBanded(t *testing.T) {
	newFake().install(t)
	m := testMatrix(t)

	r, err := NWBanded("MKVLA", "MKLA", 10, 1, 2, m)
	require.NoError(t, err)
	defer r.Close()
	assert.Equal(t, int(fakeScore("MKVLA", "MKLA", 10, 1)), r.Score())

	_, err = NWBanded("MKVLA", "MKLA", 10, 1, 2, nil)
	require.Error(t, err)
}

func TestVersionAndCapabilities(t *testing.T) {
	newFake().install(t)

	major, minor, patch, err := Version()
	require.NoError(t, err)
	assert.Equal(t, 2, major)
	assert.Equal(t, 6, minor)
	assert.Equal(t, 2, patch)

	assert.True(t, CanUseAVX2())
	assert.True(t, CanUseSSE41())
	assert.True(t, CanUseSSE2())
	assert.False(t, CanUseAltivec())
}
