package install

import (
	"errors"
	"fmt"
	"os"
	"strings"

	udiff "github.com/aymanbagabas/go-udiff"

	"github.com/prillcode/start-work/internal/manifest"
	"github.com/prillcode/start-work/internal/messages"
)

// installCommands installs each command target, continuing past failures.
func (inst *installer) installCommands() {
	inst.log.Header("⚡ " + messages.InstallCommandsHeader)
	for _, target := range inst.manifest.Commands {
		if inst.installCommand(target) {
			inst.result.CommandsInstalled++
		}
	}
	inst.log.Info(fmt.Sprintf(messages.InstallCommandsSummaryFmt, inst.result.CommandsInstalled, inst.result.CommandsTotal))
}

// installCommand copies a single command file. A missing source is skipped
// with a warning. An existing destination is overwritten without a backup
// prompt unless the target opts in via PromptBackup.
func (inst *installer) installCommand(target manifest.InstallTarget) bool {
	if _, err := inst.sys.Stat(target.SourcePath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			inst.log.Warning(fmt.Sprintf(messages.InstallCommandMissingFmt, target.DisplayName))
			return false
		}
		inst.log.Error(fmt.Sprintf(messages.InstallCommandFailedFmt, target.DisplayName, &IOError{Op: "stat", Path: target.SourcePath, Err: err}))
		return false
	}

	if target.PromptBackup {
		if _, err := inst.backupIfExists(target.DestinationPath, target.DisplayName); err != nil {
			inst.log.Error(fmt.Sprintf(messages.InstallCommandFailedFmt, target.DisplayName, err))
			return false
		}
	}

	exists, err := inst.exists(target.DestinationPath)
	if err != nil {
		inst.log.Error(fmt.Sprintf(messages.InstallCommandFailedFmt, target.DisplayName, err))
		return false
	}
	if exists {
		inst.log.Info(inst.overwriteMessage(target))
	}

	if err := inst.sys.CopyFile(target.SourcePath, target.DestinationPath, installedFilePerm); err != nil {
		ioErr := &IOError{Op: "copy", Path: target.DestinationPath, Err: err}
		inst.log.Error(fmt.Sprintf(messages.InstallCommandFailedFmt, target.DisplayName, ioErr))
		return false
	}
	inst.log.Success(fmt.Sprintf(messages.InstallCommandInstalled, target.DisplayName))
	return true
}

// overwriteMessage describes the pending overwrite, including a line-level
// change count when both files can be read.
func (inst *installer) overwriteMessage(target manifest.InstallTarget) string {
	plain := fmt.Sprintf(messages.InstallCommandOverwrite, target.DisplayName)
	existing, err := inst.sys.ReadFile(target.DestinationPath)
	if err != nil {
		return plain
	}
	incoming, err := inst.sys.ReadFile(target.SourcePath)
	if err != nil {
		return plain
	}
	added, removed := diffLineCounts(string(existing), string(incoming))
	if added == 0 && removed == 0 {
		return plain
	}
	return fmt.Sprintf(messages.InstallCommandDiffFmt, target.DisplayName, added, removed)
}

// diffLineCounts returns the number of added and removed lines between two
// texts, computed from a unified diff.
func diffLineCounts(before string, after string) (int, int) {
	if before == after {
		return 0, 0
	}
	diff := udiff.Unified("installed", "package", before, after)
	added, removed := 0, 0
	for _, line := range strings.Split(diff, "\n") {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
		case strings.HasPrefix(line, "+"):
			added++
		case strings.HasPrefix(line, "-"):
			removed++
		}
	}
	return added, removed
}
