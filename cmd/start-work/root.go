package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"

	"github.com/prillcode/start-work/internal/install"
	"github.com/prillcode/start-work/internal/manifest"
	"github.com/prillcode/start-work/internal/messages"
	"github.com/prillcode/start-work/internal/output"
	"github.com/prillcode/start-work/internal/prompt"
	"github.com/prillcode/start-work/internal/terminal"
)

// packageDirEnv overrides the directory holding skills/ and commands/.
const packageDirEnv = "START_WORK_PACKAGE_DIR"

var (
	resolveHome    = homedir.Dir
	executablePath = os.Executable
	isInteractive  = terminal.Interactive
	installRun     = install.Run
	newConfirm     = func() install.Prompter { return prompt.NewConfirm() }
)

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		Long:          messages.RootLong,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInstall(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

// runInstall resolves the install locations and runs the installer. Every
// failure is reported through the logger, so the caller only sees an exit code.
func runInstall(in io.Reader, out io.Writer) error {
	log := output.New(out)
	if err := installFromPackage(in, out, log); err != nil {
		var targetErr *install.TargetError
		if errors.As(err, &targetErr) {
			// The cause was already logged by the installer.
			log.Error(fmt.Sprintf(messages.InstallStoppedFmt, targetErr.Target))
		} else {
			log.Error(fmt.Sprintf(messages.InstallFailedFmt, err))
		}
		return &SilentExitError{Code: 1}
	}
	return nil
}

func installFromPackage(in io.Reader, out io.Writer, log *output.Logger) error {
	home, err := resolveHome()
	if err != nil {
		return fmt.Errorf(messages.RootResolveHomeFmt, err)
	}
	if strings.TrimSpace(home) == "" {
		return errors.New(messages.InstallHomeRequired)
	}
	packageDir, err := resolvePackageDir()
	if err != nil {
		return err
	}
	pkg, err := manifest.LoadPackage(packageDir, Version)
	if err != nil {
		return err
	}
	_, err = installRun(install.Options{
		Manifest: manifest.Build(packageDir, home, pkg),
		Prompter: choosePrompter(in, out),
		Logger:   log,
		System:   install.RealSystem{},
	})
	return err
}

// resolvePackageDir returns the env override when set, otherwise the
// directory holding the running executable.
func resolvePackageDir() (string, error) {
	dir := strings.TrimSpace(os.Getenv(packageDirEnv))
	if dir == "" {
		exe, err := executablePath()
		if err != nil {
			return "", fmt.Errorf(messages.RootResolvePackageFmt, err)
		}
		if resolved, err := filepath.EvalSymlinks(exe); err == nil {
			exe = resolved
		}
		dir = filepath.Dir(exe)
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf(messages.RootResolvePackageFmt, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf(messages.RootResolvePackageFmt, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf(messages.RootPackageDirFmt, abs)
	}
	return abs, nil
}

// choosePrompter uses the huh confirm form on a terminal and a plain line
// reader otherwise, so piped answers keep working.
func choosePrompter(in io.Reader, out io.Writer) install.Prompter {
	if isInteractive(in, out) {
		return newConfirm()
	}
	return prompt.NewLineReader(in, out)
}
