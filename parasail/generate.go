//go:build ignore

// This tool regenerates functions.go and builtins.go from the configuration
// enumeration. The enumeration here must stay in step with allConfigs in
// config.go; the dispatch tests compare the two counts.
//
// Usage: go run generate.go
package main

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"unicode"
)

var (
	algs   = []string{"nw", "sg", "sw"}
	modes  = []string{"", "stats", "table", "stats_table", "rowcol", "stats_rowcol", "trace"}
	widths = []string{"8", "16", "32", "64", "sat"}
)

type form struct {
	suffix  string
	profile bool
}

func forms() []form {
	f := []form{{"", false}, {"_scan", false}}
	for _, strat := range []string{"_scan", "_striped", "_diag"} {
		for _, w := range widths {
			f = append(f, form{strat + "_" + w, false})
		}
	}
	for _, strat := range []string{"_scan", "_striped"} {
		for _, w := range widths {
			f = append(f, form{strat + "_profile_" + w, true})
		}
	}
	return f
}

func goName(sym string) string {
	var b strings.Builder
	for _, part := range strings.Split(sym, "_") {
		switch {
		case part == "nw" || part == "sg" || part == "sw":
			b.WriteString(strings.ToUpper(part))
		case unicode.IsDigit(rune(part[0])):
			b.WriteString(part)
		default:
			b.WriteString(strings.ToUpper(part[:1]) + part[1:])
		}
	}
	return b.String()
}

func writeFunctions() error {
	var b bytes.Buffer
	b.WriteString("// Code generated by generate.go. DO NOT EDIT.\n\npackage parasail\n\n")
	for _, alg := range algs {
		for _, mode := range modes {
			msuf := ""
			if mode != "" {
				msuf = "_" + mode
			}
			for _, f := range forms() {
				sym := alg + msuf + f.suffix
				name := goName(sym)
				fmt.Fprintf(&b, "// %s wraps parasail_%s.\n", name, sym)
				if f.profile {
					fmt.Fprintf(&b, "func %s(profile *Profile, ref string, open, extend int) (*Result, error) {\n", name)
					fmt.Fprintf(&b, "\treturn alignProfile(%q, profile, ref, open, extend)\n}\n\n", sym)
				} else {
					fmt.Fprintf(&b, "func %s(query, ref string, open, extend int, matrix *Matrix) (*Result, error) {\n", name)
					fmt.Fprintf(&b, "\treturn alignSeq(%q, query, ref, open, extend, matrix)\n}\n\n", sym)
				}
			}
		}
	}
	return os.WriteFile("functions.go", b.Bytes(), 0o644)
}

func builtinNames() []string {
	blosum := []int{100, 30, 35, 40, 45, 50, 55, 60, 62, 65, 70, 75, 80, 85, 90}
	pam := []int{10, 100, 110, 120, 130, 140, 150, 160, 170, 180, 190, 20, 200,
		210, 220, 230, 240, 250, 260, 270, 280, 290, 30, 300, 310, 320, 330,
		340, 350, 360, 370, 380, 390, 40, 400, 410, 420, 430, 440, 450, 460,
		470, 480, 490, 50, 500, 60, 70, 80, 90}
	var names []string
	for _, n := range blosum {
		names = append(names, fmt.Sprintf("blosum%d", n))
	}
	for _, n := range pam {
		names = append(names, fmt.Sprintf("pam%d", n))
	}
	return append(names, "dnafull", "nuc44")
}

func writeBuiltins() error {
	var b bytes.Buffer
	b.WriteString("// Code generated by generate.go. DO NOT EDIT.\n\npackage parasail\n\n")
	b.WriteString("import \"sync\"\n\n")
	b.WriteString(`// Built-in matrices reference static library data: they are never owned and
// name lookups are cached for the process lifetime. Each call hands out a
// fresh handle over the cached native pointer, so closing one does not
// invalidate later lookups.
var (
	builtinMu    sync.Mutex
	builtinCache = map[string]uintptr{}
)

func builtin(name string) (*Matrix, error) {
	l, err := load()
	if err != nil {
		return nil, err
	}
	builtinMu.Lock()
	defer builtinMu.Unlock()
	if p, ok := builtinCache[name]; ok {
		return &Matrix{ptr: p, lib: l}, nil
	}
	m, err := MatrixLookup(name)
	if err != nil {
		return nil, err
	}
	builtinCache[name] = m.ptr
	return m, nil
}

// BuiltinMatrices lists the names of every built-in substitution matrix.
func BuiltinMatrices() []string {
	return []string{
`)
	for _, n := range builtinNames() {
		fmt.Fprintf(&b, "\t\t%q,\n", n)
	}
	b.WriteString("\t}\n}\n\n")
	for _, n := range builtinNames() {
		gn := goName(n)
		switch n {
		case "dnafull":
			gn = "DNAFull"
		case "nuc44":
			gn = "NUC44"
		}
		fmt.Fprintf(&b, "// %s returns the built-in %s matrix.\n", gn, n)
		fmt.Fprintf(&b, "func %s() (*Matrix, error) {\n\treturn builtin(%q)\n}\n\n", gn, n)
	}
	return os.WriteFile("builtins.go", b.Bytes(), 0o644)
}

func main() {
	if err := writeFunctions(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := writeBuiltins(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
