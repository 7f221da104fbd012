package parasail

import (
	"fmt"
	"unsafe"
)

// Sequences is a bulk-loaded, immutable collection of sequence records
// parsed from a FASTA or FASTQ file by the native library. It owns the
// native backing array; the Sequence views it hands out are only valid
// while the collection is open.
type Sequences struct {
	ptr uintptr
	lib *libTable
}

func (s *Sequences) c() *cSequences {
	return (*cSequences)(unsafe.Pointer(s.ptr))
}

// SequencesFromFile parses a FASTA/FASTQ file, transparently decompressing
// if the native library was built with zlib support.
func SequencesFromFile(path string) (*Sequences, error) {
	l, err := load()
	if err != nil {
		return nil, err
	}
	p := l.sequencesFromFile(path)
	if p == 0 {
		return nil, fmt.Errorf("parasail: cannot read sequence file %q", path)
	}
	return &Sequences{ptr: p, lib: l}, nil
}

// Len returns the number of records.
func (s *Sequences) Len() int {
	if s.ptr == 0 {
		return 0
	}
	return int(s.c().l)
}

// Get returns the record at index i. Negative indices count from the end,
// so Get(-1) is the last record.
func (s *Sequences) Get(i int) (*Sequence, error) {
	n := s.Len()
	idx := i
	if idx < 0 {
		idx += n
	}
	if idx < 0 || idx >= n {
		return nil, &IndexError{Index: i, Len: n}
	}
	rec := (*cSequence)(unsafe.Add(unsafe.Pointer(s.c().seqs), uintptr(idx)*unsafe.Sizeof(cSequence{})))
	return &Sequence{c: rec, owner: s}, nil
}

// Characters is the total character count across all records.
func (s *Sequences) Characters() int { return int(s.c().characters) }

// Shortest is the length of the shortest record.
func (s *Sequences) Shortest() int { return int(s.c().shortest) }

// Longest is the length of the longest record.
func (s *Sequences) Longest() int { return int(s.c().longest) }

// Mean is the mean record length.
func (s *Sequences) Mean() float64 { return float64(s.c().mean) }

// StdDev is the standard deviation of record lengths.
func (s *Sequences) StdDev() float64 { return float64(s.c().stddev) }

// Close releases the native collection and invalidates every Sequence view
// obtained from it. Safe to call more than once.
func (s *Sequences) Close() error {
	if s.ptr == 0 {
		return nil
	}
	s.lib.sequencesFree(s.ptr)
	s.ptr = 0
	return nil
}

// Sequence is a non-owning view of one record in a Sequences collection.
type Sequence struct {
	c     *cSequence
	owner *Sequences
}

// Name returns the record identifier.
func (s *Sequence) Name() string { return goStringN(s.c.name) }

// Comment returns the description after the identifier, if any.
func (s *Sequence) Comment() string { return goStringN(s.c.comment) }

// Seq returns the sequence characters.
func (s *Sequence) Seq() string { return goStringN(s.c.seq) }

// Qual returns the quality string for FASTQ records, empty for FASTA.
func (s *Sequence) Qual() string { return goStringN(s.c.qual) }

// Len returns the sequence length.
func (s *Sequence) Len() int { return int(s.c.seq.l) }

// At returns the sequence character at index i. Negative indices count from
// the end.
func (s *Sequence) At(i int) (byte, error) {
	n := s.Len()
	idx := i
	if idx < 0 {
		idx += n
	}
	if idx < 0 || idx >= n {
		return 0, &IndexError{Index: i, Len: n}
	}
	return *(*byte)(unsafe.Add(unsafe.Pointer(s.c.seq.s), idx)), nil
}
