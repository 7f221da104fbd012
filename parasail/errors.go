package parasail

import "fmt"

// LoadError reports a failure to load the native library or resolve one of
// its symbols. It is returned by the first call that needs the library.
type LoadError struct {
	Library string
	Symbol  string
	Err     error
}

func (e *LoadError) Error() string {
	if e.Symbol != "" {
		return fmt.Sprintf("parasail: loading %s: missing symbol %s: %v", e.Library, e.Symbol, e.Err)
	}
	return fmt.Sprintf("parasail: loading %s: %v", e.Library, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// CapabilityError reports an accessor call on a Result whose configuration
// did not request the corresponding output. Cap is one of "stats", "table",
// "rowcol" or "trace".
type CapabilityError struct {
	Cap string
}

func (e *CapabilityError) Error() string {
	return fmt.Sprintf("parasail: result was not computed with %s output", e.Cap)
}

// ConfigError reports a Config that names a combination the native library
// does not implement. It is returned before any native call is made.
type ConfigError struct {
	Config Config
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("parasail: invalid configuration %v: %s", e.Config, e.Reason)
}

// IndexError reports an out-of-range index into a Sequences collection or a
// Sequence record.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("parasail: index %d out of range [0, %d)", e.Index, e.Len)
}
