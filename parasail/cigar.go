package parasail

import (
	"fmt"
	"runtime"
	"unsafe"
)

// Cigar wraps a native traceback encoding: packed operation/run-length
// integers plus start offsets into query and reference. A Cigar is built
// lazily from a trace-capable Result and cached there; it may also be built
// directly from a CIGAR string with CigarEncodeString.
type Cigar struct {
	ptr uintptr
	lib *libTable
}

func (c *Cigar) c() *cCigar {
	return (*cCigar)(unsafe.Pointer(c.ptr))
}

// Len returns the number of encoded operations.
func (c *Cigar) Len() int {
	if c.ptr == 0 {
		return 0
	}
	return int(c.c().length)
}

// BegQuery returns the alignment start offset in the query.
func (c *Cigar) BegQuery() int { return int(c.c().begQuery) }

// BegRef returns the alignment start offset in the reference.
func (c *Cigar) BegRef() int { return int(c.c().begRef) }

// Seq copies the packed operation integers. Decode each with DecodeOp and
// DecodeLen.
func (c *Cigar) Seq() []uint32 {
	n := c.Len()
	if n == 0 {
		return nil
	}
	out := make([]uint32, n)
	copy(out, unsafe.Slice(c.c().seq, n))
	return out
}

// Decode renders the traceback as a CIGAR string, e.g. "8=1X3I".
func (c *Cigar) Decode() string {
	if c.ptr == 0 || c.Len() == 0 {
		return ""
	}
	if runtime.GOOS == "windows" {
		// parasail_cigar_decode allocates with plain malloc, and
		// parasail_free only handles aligned allocations on Windows, so
		// decode locally there.
		var s []byte
		for _, op := range unsafe.Slice(c.c().seq, c.Len()) {
			s = append(s, fmt.Sprintf("%d%c", c.lib.cigarDecodeLen(op), c.lib.cigarDecodeOp(op))...)
		}
		return string(s)
	}
	p := c.lib.cigarDecode(c.ptr)
	if p == 0 {
		return ""
	}
	s := goString((*byte)(unsafe.Pointer(p)))
	c.lib.free(p)
	return s
}

// Close releases the native cigar. Safe to call more than once; a Cigar
// obtained from a Result is also released by the Result's Close.
func (c *Cigar) Close() error {
	if c.ptr == 0 {
		return nil
	}
	c.lib.cigarFree(c.ptr)
	c.ptr = 0
	return nil
}

// CigarDecodeOp extracts the operation character from one packed cigar
// integer.
func CigarDecodeOp(op uint32) (byte, error) {
	l, err := load()
	if err != nil {
		return 0, err
	}
	return l.cigarDecodeOp(op), nil
}

// CigarDecodeLen extracts the run length from one packed cigar integer.
func CigarDecodeLen(op uint32) (uint32, error) {
	l, err := load()
	if err != nil {
		return 0, err
	}
	return l.cigarDecodeLen(op), nil
}

// CigarEncode packs a run length and operation character into one cigar
// integer.
func CigarEncode(length uint32, op byte) (uint32, error) {
	l, err := load()
	if err != nil {
		return 0, err
	}
	return l.cigarEncode(length, op), nil
}

// CigarEncodeString parses a CIGAR string into a native cigar. The caller
// owns the returned handle.
func CigarEncodeString(s string) (*Cigar, error) {
	l, err := load()
	if err != nil {
		return nil, err
	}
	p := l.cigarEncodeString(s)
	if p == 0 {
		return nil, fmt.Errorf("parasail: cannot encode cigar string %q", s)
	}
	return &Cigar{ptr: p, lib: l}, nil
}
