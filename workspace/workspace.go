// Package workspace keeps the check results for a tree of source files and
// serves them to editors over the Language Server Protocol.
package workspace

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/dhamidi/minada/ada/parser"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("minada.workspace")

type Workspace struct {
	mu         sync.RWMutex
	rootDir    string
	extensions []string
	files      map[string]*FileInfo
}

// FileInfo is the result of checking one file. Err is nil for a file that
// parsed and a *parser.Diagnostic otherwise.
type FileInfo struct {
	Path    string
	Content []byte
	Err     error
}

// Diagnostic returns the syntax error of the file, if any.
func (f *FileInfo) Diagnostic() *parser.Diagnostic {
	d, _ := parser.AsDiagnostic(f.Err)
	return d
}

func (f *FileInfo) OK() bool {
	return f.Err == nil
}

func New(rootDir string, extensions []string) *Workspace {
	return &Workspace{
		rootDir:    rootDir,
		extensions: extensions,
		files:      make(map[string]*FileInfo),
	}
}

func (w *Workspace) RootDir() string {
	return w.rootDir
}

// IsSource reports whether path has one of the workspace's extensions.
func (w *Workspace) IsSource(path string) bool {
	ext := filepath.Ext(path)
	for _, e := range w.extensions {
		if e == ext {
			return true
		}
	}
	return false
}

// ScanAll checks every source file below the root directory, skipping
// hidden directories.
func (w *Workspace) ScanAll() error {
	return filepath.Walk(w.rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			if path != w.rootDir && strings.HasPrefix(info.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if w.IsSource(path) {
			if err := w.ScanFile(path); err != nil {
				log.Errorf("scan %s: %s", path, err)
			}
		}
		return nil
	})
}

func (w *Workspace) ScanFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	w.UpdateFile(path, content)
	return nil
}

// UpdateFile checks content as the new text of path and records the result.
func (w *Workspace) UpdateFile(path string, content []byte) *FileInfo {
	info := &FileInfo{
		Path:    path,
		Content: content,
		Err:     Check(content, path),
	}
	if info.Err != nil {
		log.Debugf("%s: %s", path, info.Err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.files[path] = info
	return info
}

func (w *Workspace) RemoveFile(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.files, path)
}

func (w *Workspace) GetFile(path string) *FileInfo {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.files[path]
}

// Files returns every known file ordered by path.
func (w *Workspace) Files() []*FileInfo {
	w.mu.RLock()
	defer w.mu.RUnlock()
	files := make([]*FileInfo, 0, len(w.files))
	for _, f := range w.files {
		files = append(files, f)
	}
	sort.Slice(files, func(i, j int) bool {
		return files[i].Path < files[j].Path
	})
	return files
}

// Failed returns the files that did not parse, ordered by path.
func (w *Workspace) Failed() []*FileInfo {
	var failed []*FileInfo
	for _, f := range w.Files() {
		if !f.OK() {
			failed = append(failed, f)
		}
	}
	return failed
}

// Check parses content as a complete program.
func Check(content []byte, file string) error {
	return parser.ParseProgram(bytes.NewReader(content), parser.WithFile(file))
}
