package parasail

// Version returns the native library version.
func Version() (major, minor, patch int, err error) {
	l, err := load()
	if err != nil {
		return 0, 0, 0, err
	}
	var ma, mi, pa int32
	l.version(&ma, &mi, &pa)
	return int(ma), int(mi), int(pa), nil
}

// Time returns the native library's monotonic timer, in seconds. Useful for
// benchmarking against the same clock the library uses.
func Time() (float64, error) {
	l, err := load()
	if err != nil {
		return 0, err
	}
	return l.now(), nil
}

func canUse(get func(*libTable) func() int32) bool {
	l, err := load()
	if err != nil {
		return false
	}
	return get(l)() != 0
}

// CanUseAVX2 reports whether the native library will dispatch to AVX2
// kernels on this machine.
func CanUseAVX2() bool {
	return canUse(func(l *libTable) func() int32 { return l.canUseAVX2 })
}

func CanUseSSE41() bool {
	return canUse(func(l *libTable) func() int32 { return l.canUseSSE41 })
}

func CanUseSSE2() bool {
	return canUse(func(l *libTable) func() int32 { return l.canUseSSE2 })
}

func CanUseAltivec() bool {
	return canUse(func(l *libTable) func() int32 { return l.canUseAltivec })
}
