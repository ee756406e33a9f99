package destinations

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tickerboard/tickerboard/constants"
	"go.uber.org/zap"
)

// FileSystem define file system publisher
type FileSystem struct {
	destination LocalPath
}

// NewFileSystem create file system publisher
func NewFileSystem(destination LocalPath) *FileSystem {
	return &FileSystem{destination: destination}
}

// Publish write document to the destination path, overwrite if exists.
// The document lands in a temp file first and is renamed into place, so
// a failed publish leaves no partial artifact.
func (s FileSystem) Publish(document []byte) error {
	dir := filepath.Dir(s.destination.Path)
	err := s.ensureDir(dir)
	if err != nil {
		zap.L().Error("ensure publish path failed",
			zap.Error(err),
			zap.String("path", s.destination.Path))
		return fmt.Errorf("%w: %s", constants.ErrWrite, err)
	}

	temp, err := os.CreateTemp(dir, ".dashboard-*")
	if err != nil {
		zap.L().Error("create temp artifact failed",
			zap.Error(err),
			zap.String("path", s.destination.Path))
		return fmt.Errorf("%w: %s", constants.ErrWrite, err)
	}

	_, err = temp.Write(document)
	if err == nil {
		err = temp.Close()
	} else {
		temp.Close()
	}
	if err != nil {
		os.Remove(temp.Name())
		zap.L().Error("write artifact failed",
			zap.Error(err),
			zap.String("path", s.destination.Path))
		return fmt.Errorf("%w: %s", constants.ErrWrite, err)
	}

	err = os.Rename(temp.Name(), s.destination.Path)
	if err != nil {
		os.Remove(temp.Name())
		zap.L().Error("rename artifact failed",
			zap.Error(err),
			zap.String("path", s.destination.Path))
		return fmt.Errorf("%w: %s", constants.ErrWrite, err)
	}

	return nil
}

// Close close publisher
func (s FileSystem) Close() error {
	return nil
}

// ensureDir ensure target dir exists
func (s FileSystem) ensureDir(dir string) error {
	_, err := os.Stat(dir)
	if err == nil {
		return nil
	}

	err = s.ensureDir(filepath.Dir(dir))
	if err != nil {
		return err
	}

	return os.Mkdir(dir, 0755)
}
