package install

import (
	"fmt"

	"github.com/prillcode/start-work/internal/messages"
)

// MissingSourceError reports a required source path that does not exist.
type MissingSourceError struct {
	Path string
}

func (e *MissingSourceError) Error() string {
	return fmt.Sprintf(messages.InstallMissingSourceFmt, e.Path)
}

// IOError reports a read, write, stat, or rename failure on Path.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf(messages.InstallIOErrorFmt, e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// TargetError reports that a directory target failed and the run stopped.
// The failure has already been written to the Logger.
type TargetError struct {
	Target string
	Err    error
}

func (e *TargetError) Error() string {
	return fmt.Sprintf(messages.InstallTargetErrorFmt, e.Target, e.Err)
}

func (e *TargetError) Unwrap() error {
	return e.Err
}
