package install

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/prillcode/start-work/internal/manifest"
	"github.com/prillcode/start-work/internal/prompt"
)

func TestVerifyInstallationRunsEveryCheckOnce(t *testing.T) {
	dir := t.TempDir()
	present := filepath.Join(dir, "present.md")
	missing := filepath.Join(dir, "missing.md")
	alsoPresent := filepath.Join(dir, "templates")
	writeTree(t, dir, map[string]string{"present.md": "x", "templates/a.md": "y"})

	sys := newFaultSystem(RealSystem{})
	log := &recordingLogger{}
	inst := &installer{log: log, sys: sys}

	ok := inst.verifyInstallation([]manifest.VerificationCheck{
		{Path: present, DisplayName: "present"},
		{Path: missing, DisplayName: "missing"},
		{Path: alsoPresent, DisplayName: "templates"},
	})
	require.False(t, ok)
	require.Equal(t, map[string]int{present: 1, missing: 1, alsoPresent: 1}, sys.statCalls)
	require.Equal(t, 2, log.count("success"))
	require.True(t, log.has("error", "missing not found"))

	ok = inst.verifyInstallation([]manifest.VerificationCheck{{Path: present, DisplayName: "present"}})
	require.True(t, ok)
	require.True(t, inst.verifyInstallation(nil))
}

func TestVerifyInstallationStatErrorCountsAsFailure(t *testing.T) {
	sys := newFaultSystem(RealSystem{})
	path := filepath.Join(t.TempDir(), "x")
	sys.statErrs[path] = os.ErrPermission
	log := &recordingLogger{}
	inst := &installer{log: log, sys: sys}

	require.False(t, inst.verifyInstallation([]manifest.VerificationCheck{{Path: path, DisplayName: "x"}}))
	require.True(t, log.has("error", "x could not be checked"))
}

func TestBackupNameCollisionIncrementsSuffix(t *testing.T) {
	f := newFixture(t, packageFiles())
	writeTree(t, f.path("skills/start-work"), map[string]string{"SKILL.md": "old\n"})
	stamp := fixedNow.UnixMilli()
	taken := f.path("skills/start-work") + ".backup." + strconv.FormatInt(stamp, 10)
	writeTree(t, taken, map[string]string{"SKILL.md": "older\n"})

	result, err := Run(f.options(RealSystem{}, &prompt.Scripted{Answers: []string{"y"}}, &recordingLogger{}))
	require.NoError(t, err)

	want := f.path("skills/start-work") + ".backup." + strconv.FormatInt(stamp+1, 10)
	require.Len(t, result.Backups, 1)
	require.Equal(t, want, result.Backups[0].BackupPath)
	require.Equal(t, map[string]string{"SKILL.md": "older\n"}, readTree(t, taken))
	require.Equal(t, map[string]string{"SKILL.md": "old\n"}, readTree(t, want))
}

func TestInstallSkipsSymlinksInSource(t *testing.T) {
	f := newFixture(t, packageFiles())
	link := filepath.Join(f.packageDir, "skills", "create-plans", "linked.md")
	if err := os.Symlink(filepath.Join(f.packageDir, "commands", "run-plan.md"), link); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}
	log := &recordingLogger{}

	_, err := Run(f.options(RealSystem{}, &prompt.Scripted{}, log))
	require.NoError(t, err)
	_, statErr := os.Lstat(f.path("skills/create-plans/linked.md"))
	require.True(t, os.IsNotExist(statErr))
	require.True(t, log.has("warning", "Skipping "+link))
}

func TestSymlinkedSkillRootIsRejectedBeforeBackup(t *testing.T) {
	f := newFixture(t, packageFiles())
	linked := filepath.Join(t.TempDir(), "start-work")
	writeTree(t, linked, map[string]string{"SKILL.md": "linked\n"})
	root := filepath.Join(f.packageDir, "skills", "start-work")
	require.NoError(t, os.RemoveAll(root))
	if err := os.Symlink(linked, root); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}
	writeTree(t, f.path("skills/start-work"), map[string]string{"SKILL.md": "user copy\n"})
	asker := &prompt.Scripted{Answers: []string{"y"}}
	log := &recordingLogger{}

	result, err := Run(f.options(RealSystem{}, asker, log))
	var targetErr *TargetError
	require.ErrorAs(t, err, &targetErr)
	require.Equal(t, "start-work", targetErr.Target)
	var ioErr *IOError
	require.ErrorAs(t, err, &ioErr)
	require.Equal(t, root, ioErr.Path)

	require.Empty(t, asker.Questions)
	require.Empty(t, backupsUnder(t, f.path("skills")))
	require.Equal(t, map[string]string{"SKILL.md": "user copy\n"}, readTree(t, f.path("skills/start-work")))
	require.Equal(t, []string{"create-plans"}, result.SkillsInstalled)
	require.False(t, log.has("success", "Installed start-work"))
}

func TestExistingFileWhereSkillDirectoryBelongsIsFatal(t *testing.T) {
	f := newFixture(t, packageFiles())
	writeTree(t, f.path("skills"), map[string]string{"create-plans": "not a directory\n"})

	_, err := Run(f.options(RealSystem{}, &prompt.Scripted{Answers: []string{"n"}}, &recordingLogger{}))
	var targetErr *TargetError
	require.ErrorAs(t, err, &targetErr)
	require.Equal(t, "create-plans", targetErr.Target)
	var ioErr *IOError
	require.ErrorAs(t, err, &ioErr)
	require.Equal(t, "mkdir", ioErr.Op)
}

func TestDiffLineCounts(t *testing.T) {
	tests := []struct {
		name           string
		before, after  string
		added, removed int
	}{
		{name: "identical", before: "a\nb\n", after: "a\nb\n"},
		{name: "append", before: "a\n", after: "a\nb\n", added: 1},
		{name: "replace", before: "a\nb\n", after: "a\nc\n", added: 1, removed: 1},
		{name: "clear", before: "a\nb\n", after: "", removed: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			added, removed := diffLineCounts(tt.before, tt.after)
			require.Equal(t, tt.added, added)
			require.Equal(t, tt.removed, removed)
		})
	}
}

func TestDisplayPath(t *testing.T) {
	base := filepath.Join("/home", "dev", ".claude")
	require.Equal(t, "~/.claude/skills", displayPath(base, filepath.Join(base, "skills")))
	require.Equal(t, "/opt/elsewhere", displayPath(base, "/opt/elsewhere"))
}
