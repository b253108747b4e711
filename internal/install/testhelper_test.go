package install

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/prillcode/start-work/internal/manifest"
	"github.com/prillcode/start-work/internal/testutil"
)

// faultSystem is a test helper that allows deterministic error injection for the
// installer System interface without chmod-based permission tricks.
type faultSystem struct {
	base       System
	statErrs   map[string]error
	mkdirErrs  map[string]error
	renameErrs map[string]error
	copyErrs   map[string]error
	statCalls  map[string]int
}

func newFaultSystem(base System) *faultSystem {
	return &faultSystem{
		base:       base,
		statErrs:   map[string]error{},
		mkdirErrs:  map[string]error{},
		renameErrs: map[string]error{},
		copyErrs:   map[string]error{},
		statCalls:  map[string]int{},
	}
}

func normalizePath(path string) string {
	return filepath.Clean(path)
}

func (f *faultSystem) Stat(name string) (os.FileInfo, error) {
	f.statCalls[normalizePath(name)]++
	if err, ok := f.statErrs[normalizePath(name)]; ok {
		return nil, err
	}
	return f.base.Stat(name)
}

func (f *faultSystem) Lstat(name string) (os.FileInfo, error) {
	if err, ok := f.statErrs[normalizePath(name)]; ok {
		return nil, err
	}
	return f.base.Lstat(name)
}

func (f *faultSystem) ReadDir(name string) ([]os.DirEntry, error) {
	return f.base.ReadDir(name)
}

func (f *faultSystem) ReadFile(name string) ([]byte, error) {
	return f.base.ReadFile(name)
}

func (f *faultSystem) MkdirAll(path string, perm os.FileMode) error {
	if err, ok := f.mkdirErrs[normalizePath(path)]; ok {
		return err
	}
	return f.base.MkdirAll(path, perm)
}

func (f *faultSystem) Rename(oldpath string, newpath string) error {
	if err, ok := f.renameErrs[normalizePath(oldpath)]; ok {
		return err
	}
	return f.base.Rename(oldpath, newpath)
}

func (f *faultSystem) CopyFile(src string, dst string, perm os.FileMode) error {
	if err, ok := f.copyErrs[normalizePath(dst)]; ok {
		return err
	}
	return f.base.CopyFile(src, dst, perm)
}

type logLine struct {
	level string
	msg   string
}

// recordingLogger captures status lines for assertions.
type recordingLogger struct {
	lines []logLine
}

func (l *recordingLogger) add(level string, msg string) {
	l.lines = append(l.lines, logLine{level: level, msg: msg})
}

func (l *recordingLogger) Info(msg string)    { l.add("info", msg) }
func (l *recordingLogger) Success(msg string) { l.add("success", msg) }
func (l *recordingLogger) Warning(msg string) { l.add("warning", msg) }
func (l *recordingLogger) Error(msg string)   { l.add("error", msg) }
func (l *recordingLogger) Header(msg string)  { l.add("header", msg) }
func (l *recordingLogger) Line(msg string)    { l.add("line", msg) }
func (l *recordingLogger) Blank()             { l.add("blank", "") }

func (l *recordingLogger) has(level string, substr string) bool {
	for _, line := range l.lines {
		if line.level == level && strings.Contains(line.msg, substr) {
			return true
		}
	}
	return false
}

func (l *recordingLogger) count(level string) int {
	n := 0
	for _, line := range l.lines {
		if line.level == level {
			n++
		}
	}
	return n
}

var fixedNow = time.UnixMilli(1_700_000_000_000)

func fixedClock() time.Time { return fixedNow }

// packageFiles is the default source package: two skills and three commands.
func packageFiles() map[string]string {
	return map[string]string{
		"skills/create-plans/SKILL.md":            "---\nname: create-plans\ndescription: Hierarchical project planning\n---\n# create-plans\n",
		"skills/create-plans/references/phases.md": "phases\n",
		"skills/start-work/SKILL.md":              "---\nname: start-work\ndescription: Initialize work items\n---\n# start-work\n",
		"skills/start-work/templates/WORK.md":     "work template v2\n",
		"skills/start-work/templates/nested/a.md": "nested v2\n",
		"commands/create-plan.md":                 "create plan command\n",
		"commands/run-plan.md":                    "run plan command\nline two\n",
		"commands/start-work.md":                  "start work command\n",
	}
}

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	testutil.WriteTree(t, root, files)
}

func readTree(t *testing.T, root string) map[string]string {
	t.Helper()
	return testutil.ReadTree(t, root)
}

type fixture struct {
	packageDir string
	home       string
	manifest   manifest.Manifest
}

func newFixture(t *testing.T, files map[string]string) fixture {
	t.Helper()
	packageDir := t.TempDir()
	home := t.TempDir()
	writeTree(t, packageDir, files)
	return fixture{
		packageDir: packageDir,
		home:       home,
		manifest:   manifest.Build(packageDir, home, manifest.DefaultPackage("1.2.3")),
	}
}

func (f fixture) claudeDir() string {
	return filepath.Join(f.home, manifest.BaseDirName)
}

func (f fixture) path(rel string) string {
	return filepath.Join(f.claudeDir(), filepath.FromSlash(rel))
}

func (f fixture) options(sys System, prompter Prompter, log Logger) Options {
	return Options{
		Manifest: f.manifest,
		Prompter: prompter,
		Logger:   log,
		System:   sys,
		Now:      fixedClock,
	}
}

func backupsUnder(t *testing.T, dir string) []string {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(dir, "*"+backupInfix+"*"))
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	sort.Strings(matches)
	return matches
}
