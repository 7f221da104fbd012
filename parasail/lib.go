package parasail

import (
	"log/slog"
	"sync"

	"github.com/ebitengine/purego"

	"github.com/seqkit/parasail-go/envconfig"
)

// The two calling conventions shared by every alignment entry point.
type seqFn func(s1 string, l1 int32, s2 string, l2 int32, open, extend int32, matrix uintptr) uintptr
type profileFn func(profile uintptr, s2 string, l2 int32, open, extend int32) uintptr

type profileCreateFn func(s1 string, l1 int32, matrix uintptr) uintptr

// libTable holds every resolved native function. It is filled once per
// process and never torn down; the OS reclaims the library at exit.
type libTable struct {
	seqAlign      map[string]seqFn
	profileAlign  map[string]profileFn
	profileCreate map[string]profileCreateFn

	nwBanded func(s1 string, l1 int32, s2 string, l2 int32, open, extend, k int32, matrix uintptr) uintptr

	matrixLookup   func(name string) uintptr
	matrixCreate   func(alphabet string, match, mismatch int32) uintptr
	matrixFromFile func(path string) uintptr
	matrixCopy     func(m uintptr) uintptr
	matrixSetValue func(m uintptr, row, col, value int32)
	matrixFree     func(m uintptr)

	profileFree   func(p uintptr)
	resultFree    func(r uintptr)
	cigarFree     func(c uintptr)
	sequencesFree func(s uintptr)
	free          func(p uintptr)

	resultIsNW          func(r uintptr) int32
	resultIsSG          func(r uintptr) int32
	resultIsSW          func(r uintptr) int32
	resultIsSaturated   func(r uintptr) int32
	resultIsBanded      func(r uintptr) int32
	resultIsScan        func(r uintptr) int32
	resultIsStriped     func(r uintptr) int32
	resultIsDiag        func(r uintptr) int32
	resultIsBlocked     func(r uintptr) int32
	resultIsStats       func(r uintptr) int32
	resultIsStatsTable  func(r uintptr) int32
	resultIsStatsRowcol func(r uintptr) int32
	resultIsTable       func(r uintptr) int32
	resultIsRowcol      func(r uintptr) int32
	resultIsTrace       func(r uintptr) int32

	resultGetScore    func(r uintptr) int32
	resultGetEndQuery func(r uintptr) int32
	resultGetEndRef   func(r uintptr) int32
	resultGetMatches  func(r uintptr) int32
	resultGetSimilar  func(r uintptr) int32
	resultGetLength   func(r uintptr) int32

	resultGetScoreTable   func(r uintptr) uintptr
	resultGetMatchesTable func(r uintptr) uintptr
	resultGetSimilarTable func(r uintptr) uintptr
	resultGetLengthTable  func(r uintptr) uintptr
	resultGetScoreRow     func(r uintptr) uintptr
	resultGetMatchesRow   func(r uintptr) uintptr
	resultGetSimilarRow   func(r uintptr) uintptr
	resultGetLengthRow    func(r uintptr) uintptr
	resultGetScoreCol     func(r uintptr) uintptr
	resultGetMatchesCol   func(r uintptr) uintptr
	resultGetSimilarCol   func(r uintptr) uintptr
	resultGetLengthCol    func(r uintptr) uintptr

	resultGetCigar func(r uintptr, s1 string, l1 int32, s2 string, l2 int32, matrix uintptr) uintptr

	cigarDecode       func(c uintptr) uintptr
	cigarDecodeOp     func(op uint32) uint8
	cigarDecodeLen    func(op uint32) uint32
	cigarEncode       func(length uint32, op uint8) uint32
	cigarEncodeString func(s string) uintptr

	sequencesFromFile func(path string) uintptr

	version func(major, minor, patch *int32)
	now     func() float64

	canUseAVX2    func() int32
	canUseSSE41   func() int32
	canUseSSE2    func() int32
	canUseAltivec func() int32
}

var (
	loadOnce sync.Once
	loaded   *libTable
	loadErr  error
)

// load resolves the native library on first use. The handle table persists
// for the process lifetime.
func load() (*libTable, error) {
	loadOnce.Do(func() {
		loaded, loadErr = open()
	})
	return loaded, loadErr
}

// MustLoad loads the native library immediately and panics on failure, for
// programs that prefer to fail at startup instead of on the first alignment.
func MustLoad() {
	if _, err := load(); err != nil {
		panic(err)
	}
}

// symLoader resolves symbols one at a time and remembers the first failure,
// so open can register the whole table and report a single error.
type symLoader struct {
	library string
	handle  uintptr
	err     error
}

func (l *symLoader) register(fptr any, name string) {
	if l.err != nil {
		return
	}
	addr, err := dlsym(l.handle, name)
	if err != nil {
		l.err = &LoadError{Library: l.library, Symbol: name, Err: err}
		return
	}
	purego.RegisterFunc(fptr, addr)
}

func open() (*libTable, error) {
	name := envconfig.Library
	if name == "" {
		name = defaultLibName
	}
	handle, err := dlopen(name)
	if err != nil {
		return nil, &LoadError{Library: name, Err: err}
	}

	t := &libTable{
		seqAlign:      make(map[string]seqFn),
		profileAlign:  make(map[string]profileFn),
		profileCreate: make(map[string]profileCreateFn),
	}
	l := &symLoader{library: name, handle: handle}

	for _, sym := range seqSymbols() {
		var fn seqFn
		l.register(&fn, "parasail_"+sym)
		t.seqAlign[sym] = fn
	}
	for _, sym := range profileSymbols() {
		var fn profileFn
		l.register(&fn, "parasail_"+sym)
		t.profileAlign[sym] = fn
	}
	for _, sym := range profileCreateSymbols {
		var fn profileCreateFn
		l.register(&fn, "parasail_profile_create_"+sym)
		t.profileCreate[sym] = fn
	}

	l.register(&t.nwBanded, "parasail_nw_banded")

	l.register(&t.matrixLookup, "parasail_matrix_lookup")
	l.register(&t.matrixCreate, "parasail_matrix_create")
	l.register(&t.matrixFromFile, "parasail_matrix_from_file")
	l.register(&t.matrixCopy, "parasail_matrix_copy")
	l.register(&t.matrixSetValue, "parasail_matrix_set_value")
	l.register(&t.matrixFree, "parasail_matrix_free")

	l.register(&t.profileFree, "parasail_profile_free")
	l.register(&t.resultFree, "parasail_result_free")
	l.register(&t.cigarFree, "parasail_cigar_free")
	l.register(&t.sequencesFree, "parasail_sequences_free")
	l.register(&t.free, "parasail_free")

	l.register(&t.resultIsNW, "parasail_result_is_nw")
	l.register(&t.resultIsSG, "parasail_result_is_sg")
	l.register(&t.resultIsSW, "parasail_result_is_sw")
	l.register(&t.resultIsSaturated, "parasail_result_is_saturated")
	l.register(&t.resultIsBanded, "parasail_result_is_banded")
	l.register(&t.resultIsScan, "parasail_result_is_scan")
	l.register(&t.resultIsStriped, "parasail_result_is_striped")
	l.register(&t.resultIsDiag, "parasail_result_is_diag")
	l.register(&t.resultIsBlocked, "parasail_result_is_blocked")
	l.register(&t.resultIsStats, "parasail_result_is_stats")
	l.register(&t.resultIsStatsTable, "parasail_result_is_stats_table")
	l.register(&t.resultIsStatsRowcol, "parasail_result_is_stats_rowcol")
	l.register(&t.resultIsTable, "parasail_result_is_table")
	l.register(&t.resultIsRowcol, "parasail_result_is_rowcol")
	l.register(&t.resultIsTrace, "parasail_result_is_trace")

	l.register(&t.resultGetScore, "parasail_result_get_score")
	l.register(&t.resultGetEndQuery, "parasail_result_get_end_query")
	l.register(&t.resultGetEndRef, "parasail_result_get_end_ref")
	l.register(&t.resultGetMatches, "parasail_result_get_matches")
	l.register(&t.resultGetSimilar, "parasail_result_get_similar")
	l.register(&t.resultGetLength, "parasail_result_get_length")

	l.register(&t.resultGetScoreTable, "parasail_result_get_score_table")
	l.register(&t.resultGetMatchesTable, "parasail_result_get_matches_table")
	l.register(&t.resultGetSimilarTable, "parasail_result_get_similar_table")
	l.register(&t.resultGetLengthTable, "parasail_result_get_length_table")
	l.register(&t.resultGetScoreRow, "parasail_result_get_score_row")
	l.register(&t.resultGetMatchesRow, "parasail_result_get_matches_row")
	l.register(&t.resultGetSimilarRow, "parasail_result_get_similar_row")
	l.register(&t.resultGetLengthRow, "parasail_result_get_length_row")
	l.register(&t.resultGetScoreCol, "parasail_result_get_score_col")
	l.register(&t.resultGetMatchesCol, "parasail_result_get_matches_col")
	l.register(&t.resultGetSimilarCol, "parasail_result_get_similar_col")
	l.register(&t.resultGetLengthCol, "parasail_result_get_length_col")

	l.register(&t.resultGetCigar, "parasail_result_get_cigar")

	l.register(&t.cigarDecode, "parasail_cigar_decode")
	l.register(&t.cigarDecodeOp, "parasail_cigar_decode_op")
	l.register(&t.cigarDecodeLen, "parasail_cigar_decode_len")
	l.register(&t.cigarEncode, "parasail_cigar_encode")
	l.register(&t.cigarEncodeString, "parasail_cigar_encode_string")

	l.register(&t.sequencesFromFile, "parasail_sequences_from_file")

	l.register(&t.version, "parasail_version")
	l.register(&t.now, "parasail_time")

	l.register(&t.canUseAVX2, "parasail_can_use_avx2")
	l.register(&t.canUseSSE41, "parasail_can_use_sse41")
	l.register(&t.canUseSSE2, "parasail_can_use_sse2")
	l.register(&t.canUseAltivec, "parasail_can_use_altivec")

	if l.err != nil {
		return nil, l.err
	}

	slog.Debug("loaded parasail library", "library", name,
		"alignment functions", len(t.seqAlign)+len(t.profileAlign))
	return t, nil
}

var profileCreateSymbols = []string{
	"8", "16", "32", "64", "sat",
	"stats_8", "stats_16", "stats_32", "stats_64", "stats_sat",
}
