package install

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/prillcode/start-work/internal/manifest"
	"github.com/prillcode/start-work/internal/messages"
	"github.com/prillcode/start-work/internal/skillcheck"
)

// Options controls installer behavior.
type Options struct {
	Manifest manifest.Manifest
	Prompter Prompter
	Logger   Logger
	System   System
	// Now supplies backup timestamps; defaults to time.Now.
	Now func() time.Time
}

// Result summarizes a run. It is populated as far as the run progressed,
// including when Run returns an error.
type Result struct {
	SkillsInstalled   []string
	CommandsInstalled int
	CommandsTotal     int
	Backups           []BackupRecord
	Verified          bool
	Findings          []skillcheck.Finding
}

type installer struct {
	manifest manifest.Manifest
	prompter Prompter
	log      Logger
	sys      System
	now      func() time.Time
	result   Result
}

// Run installs every manifest target into the Claude configuration tree.
// A failed directory target stops the run and returns a *TargetError;
// command and verification failures are reported and the run continues.
func Run(opts Options) (Result, error) {
	if opts.System == nil {
		return Result{}, errors.New(messages.InstallSystemRequired)
	}
	if opts.Prompter == nil {
		return Result{}, errors.New(messages.InstallPrompterRequired)
	}
	if opts.Logger == nil {
		return Result{}, errors.New(messages.InstallLoggerRequired)
	}
	if strings.TrimSpace(opts.Manifest.BaseDir) == "" {
		return Result{}, errors.New(messages.InstallHomeRequired)
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	inst := &installer{
		manifest: opts.Manifest,
		prompter: opts.Prompter,
		log:      opts.Logger,
		sys:      opts.System,
		now:      now,
	}
	inst.result.CommandsTotal = len(opts.Manifest.Commands)
	err := inst.run()
	return inst.result, err
}

func (inst *installer) run() error {
	inst.printIntro()

	steps := []func() error{
		inst.prepareDirs,
		inst.installSkills,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	inst.installCommands()

	inst.log.Header("🔍 " + messages.InstallVerifyHeader)
	inst.result.Verified = inst.verifyInstallation(inst.manifest.Checks)
	inst.checkSkills()
	inst.printSummary()
	return nil
}

// prepareDirs creates the base configuration directory and its subdirectories.
func (inst *installer) prepareDirs() error {
	base := inst.manifest.BaseDir
	inst.log.Info(messages.InstallCheckingBaseDir)
	exists, err := inst.exists(base)
	if err != nil {
		return err
	}
	if !exists {
		inst.log.Warning(fmt.Sprintf(messages.InstallBaseDirMissingFmt, base))
		inst.log.Info(messages.InstallCreatingBaseDir)
	}
	if err := inst.ensureDirectory(base); err != nil {
		return err
	}

	inst.log.Info(messages.InstallCreatingDirs)
	for _, dir := range inst.manifest.SubDirs {
		existed, err := inst.exists(dir)
		if err != nil {
			return err
		}
		if err := inst.ensureDirectory(dir); err != nil {
			return err
		}
		if !existed {
			inst.log.Success(fmt.Sprintf(messages.InstallCreatedSubDirFmt, displayPath(inst.manifest.BaseDir, dir)))
		}
	}
	return nil
}

// ensureDirectory creates path and any missing parents. An existing
// directory is fine; an existing non-directory is an IOError.
func (inst *installer) ensureDirectory(path string) error {
	if err := inst.sys.MkdirAll(path, 0o755); err != nil {
		return &IOError{Op: "mkdir", Path: path, Err: err}
	}
	return nil
}

// exists reports whether path exists, following symlinks.
func (inst *installer) exists(path string) (bool, error) {
	_, err := inst.sys.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, &IOError{Op: "stat", Path: path, Err: err}
}
