package domain

import "runtime"

// Location represents a position in source code.
type Location struct {
	File string `json:"file"`
	Line int    `json:"line"`
}

// CaptureLocation returns the source location of the caller.
// skip counts frames above the immediate caller: CaptureLocation(0)
// reports the line that called CaptureLocation itself.
func CaptureLocation(skip int) Location {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Location{}
	}
	return Location{File: file, Line: line}
}
