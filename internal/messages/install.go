package messages

// Install messages.
const (
	// InstallHeaderFmt introduces the run with the package display name and version.
	InstallHeaderFmt      = "📦 Installing %s v%s"
	InstallIncludesHeader = "This package includes:"
	InstallIncludesSkill  = "  • %s skill - %s"
	InstallIncludesCmds   = "  • %s commands"

	InstallCheckingBaseDir    = "Checking Claude Code installation..."
	InstallBaseDirMissingFmt  = "Claude Code directory not found at %s"
	InstallCreatingBaseDir    = "Creating .claude directory..."
	InstallCreatingDirs       = "Creating directories..."
	InstallCreatedSubDirFmt   = "Created %s/"
	InstallSkillHeaderFmt     = "Installing %s Skill"
	InstallSkillInstalledFmt  = "Installed %s to %s"
	InstallSkillFailedFmt     = "Failed to install %s: %v"
	InstallCommandsHeader     = "Installing Slash Commands"
	InstallCommandMissingFmt  = "Command %s not found in package, skipping"
	InstallCommandOverwrite   = "Overwriting existing %s command"
	InstallCommandDiffFmt     = "Overwriting existing %s command (+%d -%d lines)"
	InstallCommandInstalled   = "Installed %s command"
	InstallCommandFailedFmt   = "Failed to install %s: %v"
	InstallCommandsSummaryFmt = "Installed %d of %d commands"
	InstallSkippedEntryFmt    = "Skipping %s: not a regular file or directory"

	InstallExistsFmt          = "%s already exists"
	InstallBackupPrompt       = "Create backup before overwriting? (y/N): "
	InstallBackingUpFmt       = "Backing up existing %s..."
	InstallBackedUpFmt        = "Backed up to %s"
	InstallOverwriteNoBackup  = "Overwriting existing %s without backup"
	InstallPromptFailedFmt    = "Prompt failed (%v); continuing without backup"
	InstallVerifyHeader       = "Verifying Installation"
	InstallCheckMissingFmt    = "%s not found"
	InstallCheckFailedFmt     = "%s could not be checked: %v"
	InstallSkillFindingFmt    = "%s: %s (%s)"
	InstallCompleteHeader     = "✅ Installation Complete!"
	InstallWarningsHeader     = "⚠️  Installation Completed with Warnings"
	InstallWarningsDetail     = "Some components may not have installed correctly."
	InstallWarningsRetry      = "Please check the error messages above and try again if needed."
	InstallAccessHeader       = "You now have access to:"
	InstallQuickStartHeader   = "Quick start workflow:"
	InstallDocumentation      = "Documentation:"
	InstallFailedFmt          = "Installation failed: %v"
	InstallStoppedFmt         = "Installation failed: %s skill could not be installed"
	InstallTargetErrorFmt     = "skill %s: %v"
	InstallHomeRequired       = "home directory is required"
	InstallSystemRequired     = "install system is required"
	InstallPrompterRequired   = "install prompter is required"
	InstallLoggerRequired     = "install logger is required"

	InstallMissingSourceFmt   = "source %s does not exist"
	InstallSourceNotDirectory = "not a directory (symlinked skill sources are not supported)"
	InstallIOErrorFmt         = "%s %s: %v"
	InstallBackupNameTakenFmt = "no free backup name for %s"
)
