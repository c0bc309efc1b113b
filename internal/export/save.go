// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/browser"
	"go.uber.org/zap"

	"github.com/jeranaias/tweetgen/internal/util"
)

// Saver delivers exported bytes under a file name and returns where they went.
type Saver interface {
	Save(name string, data []byte) (string, error)
}

// FileSaver writes exports into a directory.
type FileSaver struct {
	Dir string
	// Open shows the saved file in the OS default viewer.
	Open   bool
	Logger *zap.SugaredLogger

	// openFile is browser.OpenFile; tests replace it.
	openFile func(path string) error
}

// NewFileSaver creates a FileSaver for dir.
func NewFileSaver(dir string, open bool, logger *zap.SugaredLogger) *FileSaver {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &FileSaver{Dir: dir, Open: open, Logger: logger, openFile: browser.OpenFile}
}

// Save writes data atomically to Dir/name.
func (s *FileSaver) Save(name string, data []byte) (string, error) {
	dir := s.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	path := filepath.Join(dir, filepath.Base(name))
	if err := util.AtomicWriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}

	if s.Open && s.openFile != nil {
		// Non-fatal: the file was still created
		if err := s.openFile(path); err != nil && s.Logger != nil {
			s.Logger.Warnw("could not open exported file", "path", path, "error", err)
		}
	}
	return path, nil
}
