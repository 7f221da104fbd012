package parasail

import (
	"strings"
	"testing"
	"unsafe"
)

// The tests run against a fake symbol table backed by Go memory, so the
// handle/ownership/dispatch contract is exercised without the native
// library. The fake counts every free call, which is how the
// exactly-once release properties are verified.

const (
	fStats int32 = 1 << iota
	fTable
	fRowcol
	fTrace
	fSaturated
)

type fakeResult struct {
	alg      string
	strategy string
	flag     int32

	score    int32
	endQuery int32
	endRef   int32
	matches  int32
	similar  int32
	length   int32

	table []int32 // lenQuery x lenRef, row-major
	row   []int32 // last table row
	col   []int32 // last table column
}

type fakeProfile struct {
	s1     string
	matrix uintptr
	stats  bool
}

type fakeLib struct {
	tbl *libTable

	matrixFrees    int
	profileFrees   int
	resultFrees    int
	cigarFrees     int
	sequencesFrees int
	bufferFrees    int

	setValueCalls int
	cigarBuilds   int

	saturate bool

	builtins map[string]uintptr
	keep     []any
}

func fakeRes(r uintptr) *fakeResult { return (*fakeResult)(unsafe.Pointer(r)) }

func (f *fakeLib) keepResult(r *fakeResult) uintptr {
	f.keep = append(f.keep, r)
	return uintptr(unsafe.Pointer(r))
}

// score is an arbitrary but deterministic function of the inputs, so the
// profile and direct paths can be compared for equality.
func fakeScore(q, ref string, open, extend int32) int32 {
	var s int32
	for i := range q {
		s += int32(q[i])
	}
	for i := range ref {
		s -= int32(ref[i]) % 7
	}
	return s + 13*open + extend
}

func (f *fakeLib) align(sym, q, ref string, open, extend int32) uintptr {
	r := &fakeResult{
		alg:      sym[:2],
		score:    fakeScore(q, ref, open, extend),
		endQuery: int32(len(q)) - 1,
		endRef:   int32(len(ref)) - 1,
		matches:  int32(len(q) / 2),
		similar:  int32(len(q)/2 + 1),
		length:   int32(max(len(q), len(ref))),
	}
	for _, strat := range []string{"scan", "striped", "diag"} {
		if strings.Contains(sym, "_"+strat) {
			r.strategy = strat
		}
	}
	if strings.Contains(sym, "_stats") {
		r.flag |= fStats
	}
	if strings.Contains(sym, "_table") {
		r.flag |= fTable
	}
	if strings.Contains(sym, "_rowcol") {
		r.flag |= fRowcol
	}
	if strings.Contains(sym, "_trace") {
		r.flag |= fTrace
	}
	if f.saturate && strings.HasSuffix(sym, "_8") {
		r.flag |= fSaturated
	}

	lq, lr := len(q), len(ref)
	if r.flag&(fTable|fRowcol) != 0 && lq > 0 && lr > 0 {
		r.table = make([]int32, lq*lr)
		for i := range r.table {
			r.table[i] = r.score + int32(i)
		}
		r.row = make([]int32, lr)
		for j := 0; j < lr; j++ {
			r.row[j] = r.table[(lq-1)*lr+j]
		}
		r.col = make([]int32, lq)
		for i := 0; i < lq; i++ {
			r.col[i] = r.table[i*lr+lr-1]
		}
	}
	return f.keepResult(r)
}

func (f *fakeLib) newMatrix(name string, size int, owned bool) uintptr {
	nameBytes := append([]byte(name), 0)
	cells := make([]int32, size*size)
	m := &cMatrix{
		name:   &nameBytes[0],
		matrix: &cells[0],
		size:   int32(size),
		max:    5,
		min:    -5,
	}
	if owned {
		m.userMatrix = &cells[0]
	}
	f.keep = append(f.keep, nameBytes, cells, m)
	return uintptr(unsafe.Pointer(m))
}

func newFake() *fakeLib {
	f := &fakeLib{builtins: map[string]uintptr{}}
	t := &libTable{
		seqAlign:      make(map[string]seqFn),
		profileAlign:  make(map[string]profileFn),
		profileCreate: make(map[string]profileCreateFn),
	}
	f.tbl = t

	for _, sym := range seqSymbols() {
		sym := sym
		t.seqAlign[sym] = func(s1 string, l1 int32, s2 string, l2 int32, open, extend int32, matrix uintptr) uintptr {
			return f.align(sym, s1, s2, open, extend)
		}
	}
	for _, sym := range profileSymbols() {
		sym := sym
		t.profileAlign[sym] = func(profile uintptr, s2 string, l2 int32, open, extend int32) uintptr {
			fp := (*fakeProfile)(unsafe.Pointer(profile))
			return f.align(sym, fp.s1, s2, open, extend)
		}
	}
	for _, kind := range profileCreateSymbols {
		kind := kind
		t.profileCreate[kind] = func(s1 string, l1 int32, matrix uintptr) uintptr {
			fp := &fakeProfile{s1: s1, matrix: matrix, stats: strings.HasPrefix(kind, "stats")}
			f.keep = append(f.keep, fp)
			return uintptr(unsafe.Pointer(fp))
		}
	}
	t.nwBanded = func(s1 string, l1 int32, s2 string, l2 int32, open, extend, k int32, matrix uintptr) uintptr {
		return f.align("nw", s1, s2, open, extend)
	}

	t.matrixLookup = func(name string) uintptr {
		if p, ok := f.builtins[name]; ok {
			return p
		}
		for _, known := range BuiltinMatrices() {
			if known == name {
				p := f.newMatrix(name, 24, false)
				f.builtins[name] = p
				return p
			}
		}
		return 0
	}
	t.matrixCreate = func(alphabet string, match, mismatch int32) uintptr {
		p := f.newMatrix("", len(alphabet)+1, true)
		m := (*cMatrix)(unsafe.Pointer(p))
		cells := unsafe.Slice(m.matrix, int(m.size)*int(m.size))
		for i := 0; i < int(m.size); i++ {
			for j := 0; j < int(m.size); j++ {
				if i == j {
					cells[i*int(m.size)+j] = match
				} else {
					cells[i*int(m.size)+j] = mismatch
				}
			}
		}
		return p
	}
	t.matrixFromFile = func(path string) uintptr {
		return f.newMatrix(path, 24, true)
	}
	t.matrixCopy = func(mp uintptr) uintptr {
		src := (*cMatrix)(unsafe.Pointer(mp))
		p := f.newMatrix(goString(src.name), int(src.size), true)
		dst := (*cMatrix)(unsafe.Pointer(p))
		copy(unsafe.Slice(dst.matrix, int(dst.size)*int(dst.size)),
			unsafe.Slice(src.matrix, int(src.size)*int(src.size)))
		return p
	}
	t.matrixSetValue = func(mp uintptr, row, col, value int32) {
		f.setValueCalls++
		m := (*cMatrix)(unsafe.Pointer(mp))
		unsafe.Slice(m.matrix, int(m.size)*int(m.size))[row*m.size+col] = value
	}
	t.matrixFree = func(uintptr) { f.matrixFrees++ }

	t.profileFree = func(uintptr) { f.profileFrees++ }
	t.resultFree = func(uintptr) { f.resultFrees++ }
	t.cigarFree = func(uintptr) { f.cigarFrees++ }
	t.sequencesFree = func(uintptr) { f.sequencesFrees++ }
	t.free = func(uintptr) { f.bufferFrees++ }

	t.resultIsNW = func(r uintptr) int32 { return b2i(fakeRes(r).alg == "nw") }
	t.resultIsSG = func(r uintptr) int32 { return b2i(fakeRes(r).alg == "sg") }
	t.resultIsSW = func(r uintptr) int32 { return b2i(fakeRes(r).alg == "sw") }
	t.resultIsSaturated = func(r uintptr) int32 { return fakeRes(r).flag & fSaturated }
	t.resultIsBanded = func(r uintptr) int32 { return 0 }
	t.resultIsScan = func(r uintptr) int32 { return b2i(fakeRes(r).strategy == "scan") }
	t.resultIsStriped = func(r uintptr) int32 { return b2i(fakeRes(r).strategy == "striped") }
	t.resultIsDiag = func(r uintptr) int32 { return b2i(fakeRes(r).strategy == "diag") }
	t.resultIsBlocked = func(r uintptr) int32 { return 0 }
	t.resultIsStats = func(r uintptr) int32 { return fakeRes(r).flag & fStats }
	t.resultIsStatsTable = func(r uintptr) int32 {
		return b2i(fakeRes(r).flag&fStats != 0 && fakeRes(r).flag&fTable != 0)
	}
	t.resultIsStatsRowcol = func(r uintptr) int32 {
		return b2i(fakeRes(r).flag&fStats != 0 && fakeRes(r).flag&fRowcol != 0)
	}
	t.resultIsTable = func(r uintptr) int32 { return fakeRes(r).flag & fTable }
	t.resultIsRowcol = func(r uintptr) int32 { return fakeRes(r).flag & fRowcol }
	t.resultIsTrace = func(r uintptr) int32 { return fakeRes(r).flag & fTrace }

	t.resultGetScore = func(r uintptr) int32 { return fakeRes(r).score }
	t.resultGetEndQuery = func(r uintptr) int32 { return fakeRes(r).endQuery }
	t.resultGetEndRef = func(r uintptr) int32 { return fakeRes(r).endRef }
	t.resultGetMatches = func(r uintptr) int32 { return fakeRes(r).matches }
	t.resultGetSimilar = func(r uintptr) int32 { return fakeRes(r).similar }
	t.resultGetLength = func(r uintptr) int32 { return fakeRes(r).length }

	tablePtr := func(cells []int32) uintptr {
		if len(cells) == 0 {
			return 0
		}
		return uintptr(unsafe.Pointer(&cells[0]))
	}
	t.resultGetScoreTable = func(r uintptr) uintptr { return tablePtr(fakeRes(r).table) }
	t.resultGetMatchesTable = func(r uintptr) uintptr { return tablePtr(fakeRes(r).table) }
	t.resultGetSimilarTable = func(r uintptr) uintptr { return tablePtr(fakeRes(r).table) }
	t.resultGetLengthTable = func(r uintptr) uintptr { return tablePtr(fakeRes(r).table) }
	t.resultGetScoreRow = func(r uintptr) uintptr { return tablePtr(fakeRes(r).row) }
	t.resultGetMatchesRow = func(r uintptr) uintptr { return tablePtr(fakeRes(r).row) }
	t.resultGetSimilarRow = func(r uintptr) uintptr { return tablePtr(fakeRes(r).row) }
	t.resultGetLengthRow = func(r uintptr) uintptr { return tablePtr(fakeRes(r).row) }
	t.resultGetScoreCol = func(r uintptr) uintptr { return tablePtr(fakeRes(r).col) }
	t.resultGetMatchesCol = func(r uintptr) uintptr { return tablePtr(fakeRes(r).col) }
	t.resultGetSimilarCol = func(r uintptr) uintptr { return tablePtr(fakeRes(r).col) }
	t.resultGetLengthCol = func(r uintptr) uintptr { return tablePtr(fakeRes(r).col) }

	t.resultGetCigar = func(r uintptr, s1 string, l1 int32, s2 string, l2 int32, matrix uintptr) uintptr {
		f.cigarBuilds++
		ops := []uint32{
			uint32(l1)<<4 | 7, // '='
			2<<4 | 1,          // 'I'
		}
		c := &cCigar{seq: &ops[0], length: int32(len(ops))}
		f.keep = append(f.keep, ops, c)
		return uintptr(unsafe.Pointer(c))
	}

	bamOps := "MIDNSHP=X"
	t.cigarDecode = func(cp uintptr) uintptr {
		c := (*cCigar)(unsafe.Pointer(cp))
		var s []byte
		for _, op := range unsafe.Slice(c.seq, int(c.length)) {
			s = appendUint(s, op>>4)
			s = append(s, bamOps[op&0xf])
		}
		s = append(s, 0)
		f.keep = append(f.keep, s)
		return uintptr(unsafe.Pointer(&s[0]))
	}
	t.cigarDecodeOp = func(op uint32) uint8 { return bamOps[op&0xf] }
	t.cigarDecodeLen = func(op uint32) uint32 { return op >> 4 }
	t.cigarEncode = func(length uint32, op uint8) uint32 {
		return length<<4 | uint32(strings.IndexByte(bamOps, op))
	}
	t.cigarEncodeString = func(s string) uintptr { return 0 }

	t.sequencesFromFile = func(path string) uintptr {
		if strings.Contains(path, "missing") {
			return 0
		}
		records := []struct{ name, comment, seq, qual string }{
			{"read1", "first record", "ACGTACGT", ""},
			{"read2", "", "ACGT", "IIII"},
			{"read3", "", "ACGTACGTACGT", ""},
		}
		cstr := func(s string) cString {
			if s == "" {
				return cString{}
			}
			b := []byte(s)
			f.keep = append(f.keep, b)
			return cString{l: uintptr(len(b)), s: &b[0]}
		}
		seqs := make([]cSequence, len(records))
		var chars, shortest, longest int
		for i, r := range records {
			seqs[i] = cSequence{
				name:    cstr(r.name),
				comment: cstr(r.comment),
				seq:     cstr(r.seq),
				qual:    cstr(r.qual),
			}
			chars += len(r.seq)
			if i == 0 || len(r.seq) < shortest {
				shortest = len(r.seq)
			}
			if len(r.seq) > longest {
				longest = len(r.seq)
			}
		}
		s := &cSequences{
			seqs:       &seqs[0],
			l:          uintptr(len(seqs)),
			characters: uintptr(chars),
			shortest:   uintptr(shortest),
			longest:    uintptr(longest),
			mean:       float32(chars) / float32(len(seqs)),
			stddev:     3.265986,
		}
		f.keep = append(f.keep, seqs, s)
		return uintptr(unsafe.Pointer(s))
	}

	t.version = func(major, minor, patch *int32) { *major, *minor, *patch = 2, 6, 2 }
	t.now = func() float64 { return 0 }
	t.canUseAVX2 = func() int32 { return 1 }
	t.canUseSSE41 = func() int32 { return 1 }
	t.canUseSSE2 = func() int32 { return 1 }
	t.canUseAltivec = func() int32 { return 0 }

	return f
}

func b2i(b bool) int32 {
	if b {
		return 1
	}
	return 0
}

func appendUint(s []byte, n uint32) []byte {
	if n >= 10 {
		s = appendUint(s, n/10)
	}
	return append(s, byte('0'+n%10))
}

// install swaps the fake in as the loaded library for the duration of the
// test. The real library is never opened.
func (f *fakeLib) install(t *testing.T) {
	t.Helper()
	loadOnce.Do(func() {})
	prev, prevErr := loaded, loadErr
	loaded, loadErr = f.tbl, nil
	// Built-in matrix handles are cached process-wide; reset so each test's
	// fake sees its own lookups.
	builtinMu.Lock()
	prevCache := builtinCache
	builtinCache = map[string]uintptr{}
	builtinMu.Unlock()
	t.Cleanup(func() {
		loaded, loadErr = prev, prevErr
		builtinMu.Lock()
		builtinCache = prevCache
		builtinMu.Unlock()
	})
}
