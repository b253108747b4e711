package install

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/prillcode/start-work/internal/messages"
	"github.com/prillcode/start-work/internal/prompt"
)

const (
	backupInfix         = ".backup."
	maxBackupNameProbes = 1000
)

// BackupRecord describes an existing destination that was renamed aside.
type BackupRecord struct {
	OriginalPath string
	BackupPath   string
	Timestamp    time.Time
}

// backupIfExists asks whether to back up targetPath when it exists and, on
// a yes, renames it to <targetPath>.backup.<unix-millis>. The bool reports
// whether the target existed. Declining leaves the target to be overwritten.
func (inst *installer) backupIfExists(targetPath string, displayName string) (bool, error) {
	exists, err := inst.existsNoFollow(targetPath)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, nil
	}

	inst.log.Warning(fmt.Sprintf(messages.InstallExistsFmt, displayName))
	answer, err := inst.prompter.Ask(messages.InstallBackupPrompt)
	if err != nil {
		// Never move user data without an explicit yes.
		inst.log.Warning(fmt.Sprintf(messages.InstallPromptFailedFmt, err))
		answer = ""
	}
	if !prompt.IsYes(answer) {
		inst.log.Info(fmt.Sprintf(messages.InstallOverwriteNoBackup, displayName))
		return true, nil
	}

	inst.log.Info(fmt.Sprintf(messages.InstallBackingUpFmt, displayName))
	record, err := inst.renameToBackup(targetPath)
	if err != nil {
		return true, err
	}
	inst.result.Backups = append(inst.result.Backups, record)
	inst.log.Success(fmt.Sprintf(messages.InstallBackedUpFmt, record.BackupPath))
	return true, nil
}

// renameToBackup picks the first free backup name starting at the current
// millisecond and renames targetPath onto it.
func (inst *installer) renameToBackup(targetPath string) (BackupRecord, error) {
	stamp := inst.now()
	suffix := stamp.UnixMilli()
	for i := 0; i < maxBackupNameProbes; i++ {
		candidate := targetPath + backupInfix + strconv.FormatInt(suffix, 10)
		taken, err := inst.existsNoFollow(candidate)
		if err != nil {
			return BackupRecord{}, err
		}
		if taken {
			suffix++
			continue
		}
		if err := inst.sys.Rename(targetPath, candidate); err != nil {
			return BackupRecord{}, &IOError{Op: "rename", Path: targetPath, Err: err}
		}
		return BackupRecord{
			OriginalPath: targetPath,
			BackupPath:   candidate,
			Timestamp:    stamp,
		}, nil
	}
	return BackupRecord{}, &IOError{
		Op:   "rename",
		Path: targetPath,
		Err:  fmt.Errorf(messages.InstallBackupNameTakenFmt, targetPath),
	}
}

// existsNoFollow reports whether path exists without following symlinks,
// so a dangling link still counts as occupying the name.
func (inst *installer) existsNoFollow(path string) (bool, error) {
	_, err := inst.sys.Lstat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, &IOError{Op: "stat", Path: path, Err: err}
}
