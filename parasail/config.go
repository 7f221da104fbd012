package parasail

// Algorithm selects the alignment recurrence.
type Algorithm int

const (
	// Global is Needleman-Wunsch alignment over the full length of both
	// sequences.
	Global Algorithm = iota
	// SemiGlobal is global alignment with free end gaps.
	SemiGlobal
	// Local is Smith-Waterman alignment.
	Local
)

func (a Algorithm) String() string {
	switch a {
	case Global:
		return "nw"
	case SemiGlobal:
		return "sg"
	case Local:
		return "sw"
	}
	return "unknown"
}

// Mode selects how much detail the Result carries beyond the score. Trace
// and the statistics modes are mutually exclusive; the native library has no
// stats+trace kernels, and the enumeration makes that combination
// unrepresentable.
type Mode int

const (
	Score Mode = iota
	Stats
	ModeTable
	StatsTable
	Rowcol
	StatsRowcol
	Trace
)

func (m Mode) String() string {
	switch m {
	case Score:
		return "score"
	case Stats:
		return "stats"
	case ModeTable:
		return "table"
	case StatsTable:
		return "stats_table"
	case Rowcol:
		return "rowcol"
	case StatsRowcol:
		return "stats_rowcol"
	case Trace:
		return "trace"
	}
	return "unknown"
}

func (m Mode) suffix() string {
	if m == Score {
		return ""
	}
	return "_" + m.String()
}

// Strategy selects the vectorization strategy of the native kernel. Serial
// is the scalar reference implementation and takes no lane width; Scan
// without a width is the scalar prefix-scan reference.
type Strategy int

const (
	Serial Strategy = iota
	Scan
	Striped
	Diag
)

func (s Strategy) String() string {
	switch s {
	case Serial:
		return "serial"
	case Scan:
		return "scan"
	case Striped:
		return "striped"
	case Diag:
		return "diag"
	}
	return "unknown"
}

func (s Strategy) suffix() string {
	if s == Serial {
		return ""
	}
	return "_" + s.String()
}

// Width selects the integer width of the SIMD score accumulator. Narrower
// widths are faster but can saturate; WidthSat starts narrow and retries
// wider inside the native library. WidthDefault is only valid for the scalar
// forms (Serial, or Scan with no width).
type Width int

const (
	WidthDefault Width = iota
	Width8
	Width16
	Width32
	Width64
	WidthSat
)

func (w Width) String() string {
	switch w {
	case WidthDefault:
		return "default"
	case Width8:
		return "8"
	case Width16:
		return "16"
	case Width32:
		return "32"
	case Width64:
		return "64"
	case WidthSat:
		return "sat"
	}
	return "unknown"
}

func (w Width) suffix() string {
	if w == WidthDefault {
		return ""
	}
	return "_" + w.String()
}

// Config names one alignment configuration. Every valid Config resolves to
// exactly one native entry point; invalid combinations are rejected by
// resolve before any native call.
type Config struct {
	Algorithm Algorithm
	Mode      Mode
	Strategy  Strategy
	Width     Width
}

func (c Config) String() string {
	return c.Algorithm.String() + "/" + c.Mode.String() + "/" + c.Strategy.String() + "/" + c.Width.String()
}

// resolve maps the configuration to the native symbol name, minus the
// "parasail_" prefix. profile selects the profile-argument calling
// convention.
func (c Config) resolve(profile bool) (string, error) {
	if c.Algorithm < Global || c.Algorithm > Local {
		return "", &ConfigError{c, "unknown algorithm"}
	}
	if c.Mode < Score || c.Mode > Trace {
		return "", &ConfigError{c, "unknown mode"}
	}
	switch c.Strategy {
	case Serial:
		if c.Width != WidthDefault {
			return "", &ConfigError{c, "lane width requires a vectorized strategy"}
		}
	case Scan:
		// Scan with WidthDefault is the scalar prefix-scan reference.
	case Striped, Diag:
		if c.Width == WidthDefault {
			return "", &ConfigError{c, "strategy requires an explicit lane width"}
		}
	default:
		return "", &ConfigError{c, "unknown strategy"}
	}
	if profile {
		if c.Strategy != Scan && c.Strategy != Striped {
			return "", &ConfigError{c, "profile dispatch requires the scan or striped strategy"}
		}
		if c.Width == WidthDefault {
			return "", &ConfigError{c, "profile dispatch requires an explicit lane width"}
		}
		return c.Algorithm.String() + c.Mode.suffix() + c.Strategy.suffix() + "_profile" + c.Width.suffix(), nil
	}
	return c.Algorithm.String() + c.Mode.suffix() + c.Strategy.suffix() + c.Width.suffix(), nil
}

var (
	allAlgorithms = []Algorithm{Global, SemiGlobal, Local}
	allModes      = []Mode{Score, Stats, ModeTable, StatsTable, Rowcol, StatsRowcol, Trace}
	vectorWidths  = []Width{Width8, Width16, Width32, Width64, WidthSat}
)

// allConfigs enumerates every valid (Config, profile) pair. The registration
// step and the wrapper generator both derive from this enumeration, so the
// mapping from configurations to native symbols is total by construction.
func allConfigs() []struct {
	Config  Config
	Profile bool
} {
	var out []struct {
		Config  Config
		Profile bool
	}
	add := func(c Config, profile bool) {
		out = append(out, struct {
			Config  Config
			Profile bool
		}{c, profile})
	}
	for _, alg := range allAlgorithms {
		for _, mode := range allModes {
			add(Config{alg, mode, Serial, WidthDefault}, false)
			add(Config{alg, mode, Scan, WidthDefault}, false)
			for _, strat := range []Strategy{Scan, Striped, Diag} {
				for _, w := range vectorWidths {
					add(Config{alg, mode, strat, w}, false)
				}
			}
			for _, strat := range []Strategy{Scan, Striped} {
				for _, w := range vectorWidths {
					add(Config{alg, mode, strat, w}, true)
				}
			}
		}
	}
	return out
}

func seqSymbols() []string {
	var syms []string
	for _, c := range allConfigs() {
		if c.Profile {
			continue
		}
		sym, err := c.Config.resolve(false)
		if err != nil {
			panic(err)
		}
		syms = append(syms, sym)
	}
	return syms
}

func profileSymbols() []string {
	var syms []string
	for _, c := range allConfigs() {
		if !c.Profile {
			continue
		}
		sym, err := c.Config.resolve(true)
		if err != nil {
			panic(err)
		}
		syms = append(syms, sym)
	}
	return syms
}
