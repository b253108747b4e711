package install

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/prillcode/start-work/internal/messages"
)

func (inst *installer) printIntro() {
	pkg := inst.manifest.Package
	inst.log.Header(fmt.Sprintf(messages.InstallHeaderFmt, pkg.DisplayName, pkg.Version))
	inst.log.Blank()
	inst.log.Info(messages.InstallIncludesHeader)
	for _, skill := range inst.manifest.Skills {
		inst.log.Line(fmt.Sprintf(messages.InstallIncludesSkill, skill.Name, skill.Summary))
	}
	if names := inst.manifest.CommandNames(); len(names) > 0 {
		inst.log.Line(fmt.Sprintf(messages.InstallIncludesCmds, strings.Join(names, ", ")))
	}
	inst.log.Blank()
}

func (inst *installer) printSummary() {
	if !inst.result.Verified {
		inst.log.Header(messages.InstallWarningsHeader)
		inst.log.Blank()
		inst.log.Warning(messages.InstallWarningsDetail)
		inst.log.Info(messages.InstallWarningsRetry)
		inst.log.Blank()
		return
	}
	inst.log.Header(messages.InstallCompleteHeader)
	inst.log.Blank()
	inst.log.Info(messages.InstallAccessHeader)
	inst.log.Blank()
	inst.log.Line(messages.InstallUsageCommands)
	inst.log.Info(messages.InstallQuickStartHeader)
	inst.log.Line(messages.InstallQuickStartSteps)
	if repo := strings.TrimSpace(inst.manifest.Package.Repository); repo != "" {
		inst.log.Info(messages.InstallDocumentation)
		inst.log.Line("  " + repo)
		inst.log.Blank()
	}
}

// displayPath renders path relative to the home directory that holds base,
// e.g. ~/.claude/skills.
func displayPath(base string, path string) string {
	home := filepath.Dir(base)
	rel, err := filepath.Rel(home, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return filepath.ToSlash(filepath.Join("~", rel))
}
