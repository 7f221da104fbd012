//go:build windows

package parasail

import "golang.org/x/sys/windows"

var defaultLibName = "parasail.dll"

func dlopen(name string) (uintptr, error) {
	h, err := windows.LoadLibrary(name)
	return uintptr(h), err
}

func dlsym(handle uintptr, name string) (uintptr, error) {
	return windows.GetProcAddress(windows.Handle(handle), name)
}
