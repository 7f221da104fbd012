package envconfig

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

var (
	// Set via PARASAIL_LIBRARY in the environment
	Library string
	// Set via PARASAIL_DEBUG in the environment
	Debug bool
	// Set via PARASAIL_MATRIX in the environment
	Matrix string
	// Set via PARASAIL_GAP_OPEN in the environment
	GapOpen int
	// Set via PARASAIL_GAP_EXTEND in the environment
	GapExtend int
)

type EnvVar struct {
	Name        string
	Value       any
	Description string
}

func AsMap() map[string]EnvVar {
	return map[string]EnvVar{
		"PARASAIL_LIBRARY":    {"PARASAIL_LIBRARY", Library, "Path to the parasail shared library (default libparasail.so)"},
		"PARASAIL_DEBUG":      {"PARASAIL_DEBUG", Debug, "Show additional debug information (e.g. PARASAIL_DEBUG=1)"},
		"PARASAIL_MATRIX":     {"PARASAIL_MATRIX", Matrix, "Default substitution matrix name or file (default \"blosum62\")"},
		"PARASAIL_GAP_OPEN":   {"PARASAIL_GAP_OPEN", GapOpen, "Default gap open penalty (default 10)"},
		"PARASAIL_GAP_EXTEND": {"PARASAIL_GAP_EXTEND", GapExtend, "Default gap extend penalty (default 1)"},
	}
}

func Values() map[string]string {
	vals := make(map[string]string)
	for k, v := range AsMap() {
		vals[k] = fmt.Sprintf("%v", v.Value)
	}
	return vals
}

// Clean quotes and spaces from the value
func clean(key string) string {
	return strings.Trim(os.Getenv(key), "\"' ")
}

func init() {
	// default values
	Matrix = "blosum62"
	GapOpen = 10
	GapExtend = 1

	LoadConfig()
}

func LoadConfig() {
	Library = clean("PARASAIL_LIBRARY")

	if debug := clean("PARASAIL_DEBUG"); debug != "" {
		d, err := strconv.ParseBool(debug)
		if err == nil {
			Debug = d
		} else {
			Debug = true
		}
	}

	if m := clean("PARASAIL_MATRIX"); m != "" {
		Matrix = m
	}

	if open := clean("PARASAIL_GAP_OPEN"); open != "" {
		if n, err := strconv.Atoi(open); err == nil && n >= 0 {
			GapOpen = n
		}
	}

	if extend := clean("PARASAIL_GAP_EXTEND"); extend != "" {
		if n, err := strconv.Atoi(extend); err == nil && n >= 0 {
			GapExtend = n
		}
	}
}
