//go:build darwin || linux || freebsd

package parasail

import (
	"runtime"

	"github.com/ebitengine/purego"
)

var defaultLibName = func() string {
	if runtime.GOOS == "darwin" {
		return "libparasail.dylib"
	}
	return "libparasail.so"
}()

func dlopen(name string) (uintptr, error) {
	return purego.Dlopen(name, purego.RTLD_LAZY|purego.RTLD_GLOBAL)
}

func dlsym(handle uintptr, name string) (uintptr, error) {
	return purego.Dlsym(handle, name)
}
