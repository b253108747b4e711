package install

import (
	"fmt"
	"path/filepath"

	"github.com/prillcode/start-work/internal/manifest"
	"github.com/prillcode/start-work/internal/messages"
	"github.com/prillcode/start-work/internal/skillcheck"
)

// verifyInstallation checks that every path exists. All checks always run;
// the result is true only when each one passes. Nothing is modified.
func (inst *installer) verifyInstallation(checks []manifest.VerificationCheck) bool {
	allPass := true
	for _, check := range checks {
		ok, err := inst.exists(check.Path)
		if err != nil {
			inst.log.Error(fmt.Sprintf(messages.InstallCheckFailedFmt, check.DisplayName, err))
			allPass = false
			continue
		}
		if !ok {
			inst.log.Error(fmt.Sprintf(messages.InstallCheckMissingFmt, check.DisplayName))
			allPass = false
			continue
		}
		inst.log.Success(check.DisplayName)
	}
	return allPass
}

// checkSkills reports frontmatter problems in installed SKILL.md files.
// Findings are advisory and never change the run outcome.
func (inst *installer) checkSkills() {
	for _, target := range inst.manifest.Skills {
		path := filepath.Join(target.DestinationPath, manifest.SkillFileName)
		data, err := inst.sys.ReadFile(path)
		if err != nil {
			// Missing SKILL.md is already reported by verification.
			continue
		}
		findings := skillcheck.Check(path, data, target.Name)
		for _, finding := range findings {
			inst.log.Warning(fmt.Sprintf(messages.InstallSkillFindingFmt, finding.Path, finding.Message, finding.Code))
		}
		inst.result.Findings = append(inst.result.Findings, findings...)
	}
}
