package deploy

import (
	"io"
	"os"
	"path/filepath"
	"time"
)

// faultSystem is a test helper that allows deterministic error injection for the
// deploy System interface without chmod-based permission tricks.
type faultSystem struct {
	base           System
	statErrs       map[string]error
	lstatErrs      map[string]error
	readErrs       map[string]error
	createTempErrs map[string]error
	removeErrs     map[string]error
	removeAllErrs  map[string]error
	mkdirErrs      map[string]error
	copyErrs       map[string]error
	chmodErrs      map[string]error

	removed []string
}

func newFaultSystem(base System) *faultSystem {
	return &faultSystem{
		base:           base,
		statErrs:       map[string]error{},
		lstatErrs:      map[string]error{},
		readErrs:       map[string]error{},
		createTempErrs: map[string]error{},
		removeErrs:     map[string]error{},
		removeAllErrs:  map[string]error{},
		mkdirErrs:      map[string]error{},
		copyErrs:       map[string]error{},
		chmodErrs:      map[string]error{},
	}
}

func normalizePath(path string) string {
	return filepath.Clean(path)
}

func (f *faultSystem) Stat(name string) (os.FileInfo, error) {
	if err, ok := f.statErrs[normalizePath(name)]; ok {
		return nil, err
	}
	return f.base.Stat(name)
}

func (f *faultSystem) Lstat(name string) (os.FileInfo, error) {
	if err, ok := f.lstatErrs[normalizePath(name)]; ok {
		return nil, err
	}
	return f.base.Lstat(name)
}

func (f *faultSystem) EvalSymlinks(path string) (string, error) {
	return f.base.EvalSymlinks(path)
}

func (f *faultSystem) ReadDir(name string) ([]os.DirEntry, error) {
	return f.base.ReadDir(name)
}

func (f *faultSystem) ReadFile(name string) ([]byte, error) {
	if err, ok := f.readErrs[normalizePath(name)]; ok {
		return nil, err
	}
	return f.base.ReadFile(name)
}

func (f *faultSystem) Open(name string) (io.ReadCloser, error) {
	if err, ok := f.readErrs[normalizePath(name)]; ok {
		return nil, err
	}
	return f.base.Open(name)
}

func (f *faultSystem) CreateTemp(dir string, pattern string) (*os.File, error) {
	if err, ok := f.createTempErrs[normalizePath(dir)]; ok {
		return nil, err
	}
	return f.base.CreateTemp(dir, pattern)
}

func (f *faultSystem) Remove(name string) error {
	f.removed = append(f.removed, name)
	if err, ok := f.removeErrs[normalizePath(filepath.Dir(name))]; ok {
		return err
	}
	return f.base.Remove(name)
}

func (f *faultSystem) RemoveAll(path string) error {
	if err, ok := f.removeAllErrs[normalizePath(path)]; ok {
		return err
	}
	return f.base.RemoveAll(path)
}

func (f *faultSystem) MkdirAll(path string, perm os.FileMode) error {
	if err, ok := f.mkdirErrs[normalizePath(path)]; ok {
		return err
	}
	return f.base.MkdirAll(path, perm)
}

func (f *faultSystem) Chmod(name string, mode os.FileMode) error {
	if err, ok := f.chmodErrs[normalizePath(name)]; ok {
		return err
	}
	return f.base.Chmod(name, mode)
}

func (f *faultSystem) Chtimes(name string, atime time.Time, mtime time.Time) error {
	return f.base.Chtimes(name, atime, mtime)
}

func (f *faultSystem) CopyFileAtomic(filename string, src io.Reader, perm os.FileMode) error {
	if err, ok := f.copyErrs[normalizePath(filename)]; ok {
		return err
	}
	return f.base.CopyFileAtomic(filename, src, perm)
}
