package messages

// CLI messages for the root command.
const (
	// RootUse is the CLI command name.
	RootUse = "start-work"
	// RootShort is the short description for the root command.
	RootShort = "Install the Start Work planning skills and commands"
	RootLong  = "Installs the create-plans and start-work skills and the /start-work, /create-plan, and /run-plan\nslash commands into ~/.claude, prompting before overwriting an installed skill."

	RootResolveHomeFmt    = "resolve home directory: %w"
	RootResolvePackageFmt = "resolve package directory: %w"
	RootPackageDirFmt     = "package directory %s is not a directory"

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"
)
