package install

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/prillcode/start-work/internal/manifest"
	"github.com/prillcode/start-work/internal/messages"
)

const installedFilePerm os.FileMode = 0o644

// copyRecursive copies source onto destination. Directories are created and
// every entry is recursed in name order; regular files replace destination
// byte for byte. Symlinks and special files are skipped with a warning.
func (inst *installer) copyRecursive(source string, destination string) error {
	info, err := inst.sys.Lstat(source)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &MissingSourceError{Path: source}
		}
		return &IOError{Op: "stat", Path: source, Err: err}
	}

	switch {
	case info.IsDir():
		if err := inst.ensureDirectory(destination); err != nil {
			return err
		}
		entries, err := inst.sys.ReadDir(source)
		if err != nil {
			return &IOError{Op: "read directory", Path: source, Err: err}
		}
		for _, entry := range entries {
			name := entry.Name()
			if err := inst.copyRecursive(filepath.Join(source, name), filepath.Join(destination, name)); err != nil {
				return err
			}
		}
		return nil
	case info.Mode().IsRegular():
		if err := inst.sys.CopyFile(source, destination, installedFilePerm); err != nil {
			return &IOError{Op: "copy", Path: destination, Err: err}
		}
		return nil
	default:
		inst.log.Warning(fmt.Sprintf(messages.InstallSkippedEntryFmt, source))
		return nil
	}
}

// installTarget backs up (when the target asks for it) and copies one
// directory target. The source root must be a real directory, checked
// without following symlinks, before any backup so a missing or linked
// skill never moves the installed copy aside or leaves a partial tree.
func (inst *installer) installTarget(target manifest.InstallTarget) error {
	info, err := inst.sys.Lstat(target.SourcePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &MissingSourceError{Path: target.SourcePath}
		}
		return &IOError{Op: "stat", Path: target.SourcePath, Err: err}
	}
	if !info.IsDir() {
		return &IOError{
			Op:   "stat",
			Path: target.SourcePath,
			Err:  errors.New(messages.InstallSourceNotDirectory),
		}
	}
	if target.PromptBackup {
		if _, err := inst.backupIfExists(target.DestinationPath, target.DisplayName); err != nil {
			return err
		}
	}
	return inst.copyRecursive(target.SourcePath, target.DestinationPath)
}

// installSkills installs directory targets in manifest order and stops at
// the first failure, since later steps assume earlier skills are present.
func (inst *installer) installSkills() error {
	for _, target := range inst.manifest.Skills {
		inst.log.Header(fmt.Sprintf(messages.InstallSkillHeaderFmt, target.Name))
		if err := inst.installTarget(target); err != nil {
			inst.log.Error(fmt.Sprintf(messages.InstallSkillFailedFmt, target.Name, err))
			return &TargetError{Target: target.Name, Err: err}
		}
		inst.result.SkillsInstalled = append(inst.result.SkillsInstalled, target.Name)
		inst.log.Success(fmt.Sprintf(messages.InstallSkillInstalledFmt, target.Name, target.DestinationPath))
	}
	return nil
}
