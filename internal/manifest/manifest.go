// Package manifest defines the fixed set of skills, commands, and
// verification checks installed into the Claude configuration tree.
package manifest

import (
	"path/filepath"
	"strings"
)

// Kind distinguishes recursive directory installs from single-file installs.
type Kind string

const (
	// KindDirectory is a skill tree copied recursively.
	KindDirectory Kind = "directory"
	// KindFile is a single command template.
	KindFile Kind = "file"
)

const (
	// BaseDirName is the Claude configuration directory under the user's home.
	BaseDirName = ".claude"
	// SkillsDirName holds installed skill directories.
	SkillsDirName = "skills"
	// CommandsDirName holds installed slash command files.
	CommandsDirName = "commands"
	// SkillFileName is the manifest file every skill directory carries.
	SkillFileName = "SKILL.md"
)

// InstallTarget is a single (source, destination) pair from the manifest.
// PromptBackup controls whether an existing destination triggers a backup
// prompt; skills set it and commands do not.
type InstallTarget struct {
	Name            string
	SourcePath      string
	DestinationPath string
	Kind            Kind
	DisplayName     string
	Summary         string
	PromptBackup    bool
}

// VerificationCheck is an existence check evaluated after install.
type VerificationCheck struct {
	Path        string
	DisplayName string
}

// Manifest is the ordered install plan for one run.
type Manifest struct {
	Package  Package
	BaseDir  string
	SubDirs  []string
	Skills   []InstallTarget
	Commands []InstallTarget
	Checks   []VerificationCheck
}

type skillDef struct {
	name    string
	summary string
	// extra lists paths inside the installed skill that verification expects.
	extra []string
}

var skillDefs = []skillDef{
	{name: "create-plans", summary: "Hierarchical project planning"},
	{name: "start-work", summary: "Initialize work items", extra: []string{"templates"}},
}

var commandFiles = []string{"create-plan.md", "run-plan.md", "start-work.md"}

// Build returns the manifest for packageDir installed under homeDir.
// Destination paths derive only from homeDir and fixed relative names.
func Build(packageDir string, homeDir string, pkg Package) Manifest {
	baseDir := filepath.Join(homeDir, BaseDirName)
	skillsDir := filepath.Join(baseDir, SkillsDirName)
	commandsDir := filepath.Join(baseDir, CommandsDirName)
	sourceSkills := filepath.Join(packageDir, SkillsDirName)
	sourceCommands := filepath.Join(packageDir, CommandsDirName)

	m := Manifest{
		Package: pkg,
		BaseDir: baseDir,
		SubDirs: []string{skillsDir, commandsDir},
	}
	for _, def := range skillDefs {
		dest := filepath.Join(skillsDir, def.name)
		m.Skills = append(m.Skills, InstallTarget{
			Name:            def.name,
			SourcePath:      filepath.Join(sourceSkills, def.name),
			DestinationPath: dest,
			Kind:            KindDirectory,
			DisplayName:     def.name + " skill",
			Summary:         def.summary,
			PromptBackup:    true,
		})
	}
	for _, file := range commandFiles {
		name := strings.TrimSuffix(file, filepath.Ext(file))
		m.Commands = append(m.Commands, InstallTarget{
			Name:            name,
			SourcePath:      filepath.Join(sourceCommands, file),
			DestinationPath: filepath.Join(commandsDir, file),
			Kind:            KindFile,
			DisplayName:     "/" + name,
		})
	}

	for _, def := range skillDefs {
		dest := filepath.Join(skillsDir, def.name)
		m.Checks = append(m.Checks, VerificationCheck{
			Path:        filepath.Join(dest, SkillFileName),
			DisplayName: def.name + " " + SkillFileName,
		})
	}
	for _, def := range skillDefs {
		for _, extra := range def.extra {
			m.Checks = append(m.Checks, VerificationCheck{
				Path:        filepath.Join(skillsDir, def.name, extra),
				DisplayName: def.name + " " + extra,
			})
		}
	}
	for _, cmd := range m.Commands {
		m.Checks = append(m.Checks, VerificationCheck{
			Path:        cmd.DestinationPath,
			DisplayName: cmd.DisplayName + " command",
		})
	}
	return m
}

// CommandNames returns the slash command display names in manifest order.
func (m Manifest) CommandNames() []string {
	names := make([]string, 0, len(m.Commands))
	for _, cmd := range m.Commands {
		names = append(names, cmd.DisplayName)
	}
	return names
}
