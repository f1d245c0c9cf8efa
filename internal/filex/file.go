package filex

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// MaxResumeSize caps what is read into memory for upload.
const MaxResumeSize = 10 << 20

var (
	ErrNotPDF    = errors.New("resume must be a .pdf file")
	ErrEmptyFile = errors.New("file is empty")
	ErrTooLarge  = errors.New("file is too large")
)

// Resume is a resume file loaded for upload.
type Resume struct {
	Name string
	Data []byte
}

// ReadResume loads a PDF resume from disk. Only the extension is checked;
// the backend does the actual parsing.
func ReadResume(path string) (*Resume, error) {
	if !strings.EqualFold(filepath.Ext(path), ".pdf") {
		return nil, ErrNotPDF
	}

	fi, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if fi.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}
	if fi.Size() == 0 {
		return nil, ErrEmptyFile
	}
	if fi.Size() > MaxResumeSize {
		return nil, fmt.Errorf("%s: %w (%d bytes, max %d)", path, ErrTooLarge, fi.Size(), MaxResumeSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return &Resume{Name: filepath.Base(path), Data: data}, nil
}

// EnsureSubdDir creates dirName under the working directory if needed
// and returns its absolute path.
func EnsureSubdDir(dirName string) (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getwd: %w", err)
	}

	dir := filepath.Join(cwd, dirName)

	if err := os.MkdirAll(dir, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}

	return dir, nil
}
