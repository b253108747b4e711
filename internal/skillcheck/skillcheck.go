// Package skillcheck reports frontmatter problems in installed SKILL.md files.
// Findings are advisory: a skill with findings is still installed.
package skillcheck

import (
	"bufio"
	"bytes"
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	yaml "go.yaml.in/yaml/v3"
	"golang.org/x/text/unicode/norm"
)

const (
	// MaxNameLength is the maximum accepted length for the name field.
	MaxNameLength = 64
	// MaxDescriptionLength is the maximum accepted length for the description field.
	MaxDescriptionLength = 1024
)

// Finding codes, one per kind of frontmatter problem. Findings are sorted by
// code so output order is stable.
const (
	CodeFrontmatterMissing = "SKILL_FRONTMATTER_MISSING"
	CodeFrontmatterInvalid = "SKILL_FRONTMATTER_INVALID"
	CodeNameMissing        = "SKILL_NAME_MISSING"
	CodeNameInvalid        = "SKILL_NAME_INVALID"
	CodeNameTooLong        = "SKILL_NAME_TOO_LONG"
	CodeNamePathMismatch   = "SKILL_NAME_PATH_MISMATCH"
	CodeDescriptionMissing = "SKILL_DESCRIPTION_MISSING"
	CodeDescriptionTooLong = "SKILL_DESCRIPTION_TOO_LONG"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Finding is a single diagnostic for a SKILL.md file.
type Finding struct {
	Code    string
	Path    string
	Message string
}

// Check validates SKILL.md content. dirName is the directory the skill is
// installed under, which the frontmatter name must match.
func Check(path string, content []byte, dirName string) []Finding {
	fm, ok := extractFrontmatter(bytes.TrimPrefix(content, utf8BOM))
	if !ok {
		return []Finding{{Code: CodeFrontmatterMissing, Path: path, Message: "missing YAML frontmatter"}}
	}
	fields, err := parseFields(fm)
	if err != nil {
		return []Finding{{Code: CodeFrontmatterInvalid, Path: path, Message: err.Error()}}
	}

	var findings []Finding
	add := func(code string, msg string) {
		findings = append(findings, Finding{Code: code, Path: path, Message: msg})
	}

	name := normalizeName(fields["name"])
	switch {
	case name == "":
		add(CodeNameMissing, `missing required frontmatter field "name"`)
	default:
		if n := utf8.RuneCountInString(name); n > MaxNameLength {
			add(CodeNameTooLong, fmt.Sprintf(`frontmatter field "name" exceeds %d characters (%d)`, MaxNameLength, n))
		}
		if !isValidName(name) {
			add(CodeNameInvalid, `frontmatter field "name" must contain only lowercase letters, digits, and single hyphens`)
		}
		if dirName != "" && name != normalizeName(dirName) {
			add(CodeNamePathMismatch, fmt.Sprintf(`frontmatter field "name" (%q) must match directory %q`, name, dirName))
		}
	}

	description := strings.TrimSpace(fields["description"])
	switch n := utf8.RuneCountInString(description); {
	case n == 0:
		add(CodeDescriptionMissing, `missing required frontmatter field "description"`)
	case n > MaxDescriptionLength:
		add(CodeDescriptionTooLong, fmt.Sprintf(`frontmatter field "description" exceeds %d characters (%d)`, MaxDescriptionLength, n))
	}

	sort.Slice(findings, func(i, j int) bool { return findings[i].Code < findings[j].Code })
	return findings
}

// extractFrontmatter returns the text between the leading "---" fences.
func extractFrontmatter(content []byte) (string, bool) {
	scanner := bufio.NewScanner(bytes.NewReader(content))
	if !scanner.Scan() || strings.TrimSpace(scanner.Text()) != "---" {
		return "", false
	}
	var lines []string
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "---" {
			return strings.Join(lines, "\n"), true
		}
		lines = append(lines, line)
	}
	return "", false
}

// parseFields decodes the scalar string fields of a frontmatter mapping.
func parseFields(content string) (map[string]string, error) {
	fields := map[string]string{}
	if strings.TrimSpace(content) == "" {
		return fields, nil
	}
	var root yaml.Node
	if err := yaml.Unmarshal([]byte(content), &root); err != nil {
		return nil, err
	}
	if len(root.Content) == 0 || root.Content[0].Kind != yaml.MappingNode {
		return nil, fmt.Errorf("frontmatter must be a YAML mapping")
	}
	mapping := root.Content[0]
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		key := strings.TrimSpace(mapping.Content[i].Value)
		value := mapping.Content[i+1]
		if key != "name" && key != "description" {
			continue
		}
		if value.Kind != yaml.ScalarNode || (value.Tag != "" && value.Tag != "!!str" && value.Tag != "!!null") {
			return nil, fmt.Errorf("frontmatter field %q must be a string scalar", key)
		}
		if value.Tag == "!!null" {
			continue
		}
		fields[key] = value.Value
	}
	return fields, nil
}

func normalizeName(name string) string {
	return strings.TrimSpace(norm.NFKC.String(name))
}

func isValidName(name string) bool {
	if name == "" || strings.HasPrefix(name, "-") || strings.HasSuffix(name, "-") || strings.Contains(name, "--") {
		return false
	}
	for _, r := range name {
		if r == '-' || (r >= '0' && r <= '9') || unicode.IsLower(r) {
			continue
		}
		return false
	}
	return true
}
