package utils

import (
	"os"
	"syscall"
)

// FilesystemHandler covers the filesystem calls the stores and bootstrap
// make, so tests can swap the real executor out.
type FilesystemHandler interface {
	MkdirAll(path string, perm os.FileMode) error
	OpenFile(name string, flag int, perm os.FileMode) (*os.File, error)
	Flock(fd int, how int) error
}

func NewFilesystemExecutor() *FilesystemExecutor {
	return &FilesystemExecutor{}
}

type FilesystemExecutor struct{}

func (e *FilesystemExecutor) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

func (s *FilesystemExecutor) OpenFile(name string, flag int, perm os.FileMode) (*os.File, error) {
	return os.OpenFile(name, flag, perm)
}

func (s *FilesystemExecutor) Flock(fd int, how int) error {
	return syscall.Flock(fd, how)
}
