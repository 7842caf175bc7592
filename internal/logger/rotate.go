package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// rotatingFile is a zapcore.WriteSyncer that rolls the log over once it
// grows past MaxSize or gets older than MaxAge days.
type rotatingFile struct {
	mu     sync.Mutex
	config Config
	file   *os.File
	size   int64
	opened time.Time
}

func openRotatingFile(config Config) (*rotatingFile, error) {
	if err := os.MkdirAll(filepath.Dir(config.FilePath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	r := &rotatingFile{config: config}
	if err := r.open(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.needsRotation(0) {
		if err := r.rotate(); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *rotatingFile) open() error {
	file, err := os.OpenFile(r.config.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return fmt.Errorf("failed to stat log file: %w", err)
	}

	r.file = file
	r.size = info.Size()
	r.opened = info.ModTime()
	if r.size == 0 {
		r.opened = time.Now()
	}
	return nil
}

func (r *rotatingFile) needsRotation(incoming int) bool {
	if r.config.MaxSize > 0 && r.size > 0 && r.size+int64(incoming) > r.config.MaxSize {
		return true
	}
	if r.config.MaxAge > 0 && r.size > 0 && time.Since(r.opened) > time.Duration(r.config.MaxAge)*24*time.Hour {
		return true
	}
	return false
}

// rotate shifts name.N to name.N+1, moves the live file to name.1 and
// reopens. Callers hold r.mu.
func (r *rotatingFile) rotate() error {
	if r.file != nil {
		_ = r.file.Close()
	}

	path := r.config.FilePath
	if r.config.MaxBackups > 0 {
		_ = os.Remove(fmt.Sprintf("%s.%d", path, r.config.MaxBackups))
		for i := r.config.MaxBackups - 1; i >= 1; i-- {
			_ = os.Rename(fmt.Sprintf("%s.%d", path, i), fmt.Sprintf("%s.%d", path, i+1))
		}
		if _, err := os.Stat(path); err == nil {
			if err := os.Rename(path, path+".1"); err != nil {
				return fmt.Errorf("failed to rotate log file: %w", err)
			}
		}
	} else {
		_ = os.Remove(path)
	}

	return r.open()
}

func (r *rotatingFile) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.needsRotation(len(p)) {
		if err := r.rotate(); err != nil {
			return 0, err
		}
	}

	n, err := r.file.Write(p)
	r.size += int64(n)
	return n, err
}

func (r *rotatingFile) Sync() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.file.Sync()
}

func (r *rotatingFile) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.file.Close()
}
