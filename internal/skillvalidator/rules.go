package skillvalidator

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

const (
	// MaxNameLength is the maximum accepted length for the name field, in runes.
	MaxNameLength = 64
	// MaxDescriptionLength is the maximum accepted length for the description field.
	MaxDescriptionLength = 1024
	// MaxCompatibilityLength is the maximum accepted length for the compatibility field.
	MaxCompatibilityLength = 500
	// MaxRecommendedLines is the recommended upper bound for a SKILL.md.
	MaxRecommendedLines = 500
)

// Finding codes.
const (
	CodeNameMissing           = "SKILL_NAME_MISSING"
	CodeNameInvalid           = "SKILL_NAME_INVALID"
	CodeNameTooLong           = "SKILL_NAME_TOO_LONG"
	CodeNameConsecutiveHyphen = "SKILL_NAME_CONSECUTIVE_HYPHENS"
	CodeNameFolderMismatch    = "SKILL_NAME_FOLDER_MISMATCH"
	CodeDescriptionMissing    = "SKILL_DESCRIPTION_MISSING"
	CodeDescriptionTooLong    = "SKILL_DESCRIPTION_TOO_LONG"
	CodeCompatibilityTooLong  = "SKILL_COMPATIBILITY_TOO_LONG"
	CodeUnknownField          = "SKILL_FRONTMATTER_UNKNOWN_FIELD"
	CodeTooManyLines          = "SKILL_SIZE_RECOMMENDATION"
)

var allowedFields = []string{"name", "description", "license", "compatibility", "metadata", "allowed-tools"}

// Finding is a single validator diagnostic. All findings are advisory.
type Finding struct {
	Code    string
	Path    string
	Message string
}

func (f Finding) String() string {
	return f.Code + ": " + f.Message
}

// Validate applies every manifest rule to skill and returns findings sorted by code.
func Validate(skill Skill) []Finding {
	v := &validation{path: skill.Path}
	v.fields(skill.Fields)
	v.name(skill)
	v.description(skill.Description)
	if skill.Compatibility != nil {
		if n := utf8.RuneCountInString(strings.TrimSpace(*skill.Compatibility)); n > MaxCompatibilityLength {
			v.add(CodeCompatibilityTooLong, "frontmatter field \"compatibility\" exceeds %d characters (%d)", MaxCompatibilityLength, n)
		}
	}
	if skill.LineCount > MaxRecommendedLines {
		v.add(CodeTooManyLines, "SKILL.md is %d lines; keep skill instructions under %d lines when possible", skill.LineCount, MaxRecommendedLines)
	}
	sort.SliceStable(v.findings, func(i, j int) bool {
		if v.findings[i].Code != v.findings[j].Code {
			return v.findings[i].Code < v.findings[j].Code
		}
		return v.findings[i].Message < v.findings[j].Message
	})
	return v.findings
}

// ValidateFile parses and validates the manifest at path.
func ValidateFile(path string) ([]Finding, error) {
	skill, err := Parse(path)
	if err != nil {
		return nil, err
	}
	return Validate(skill), nil
}

type validation struct {
	path     string
	findings []Finding
}

func (v *validation) add(code string, format string, args ...any) {
	v.findings = append(v.findings, Finding{Code: code, Path: v.path, Message: fmt.Sprintf(format, args...)})
}

func (v *validation) fields(keys []string) {
	for _, key := range keys {
		if !isAllowedField(key) {
			v.add(CodeUnknownField, "unknown frontmatter field %q (allowed: %s)", key, strings.Join(allowedFields, ", "))
		}
	}
}

func (v *validation) name(skill Skill) {
	if skill.Name == nil {
		v.add(CodeNameMissing, "missing required frontmatter field \"name\"")
		return
	}
	name := normalizeName(*skill.Name)
	if name == "" {
		v.add(CodeNameMissing, "frontmatter field \"name\" must be non-empty")
		return
	}
	if n := utf8.RuneCountInString(name); n > MaxNameLength {
		v.add(CodeNameTooLong, "frontmatter field \"name\" exceeds %d characters (%d)", MaxNameLength, n)
	}
	if !isValidName(name) {
		v.add(CodeNameInvalid, "frontmatter field \"name\" must contain only lowercase letters, digits, and hyphens; it cannot start or end with a hyphen")
	}
	if strings.Contains(name, "--") {
		v.add(CodeNameConsecutiveHyphen, "frontmatter field \"name\" must not contain consecutive hyphens")
	}
	if folder := normalizeName(skill.Folder); name != folder {
		v.add(CodeNameFolderMismatch, "frontmatter field \"name\" (%q) must match the skill folder %q", strings.TrimSpace(*skill.Name), skill.Folder)
	}
}

func (v *validation) description(description *string) {
	if description == nil {
		v.add(CodeDescriptionMissing, "missing required frontmatter field \"description\"")
		return
	}
	trimmed := strings.TrimSpace(*description)
	if trimmed == "" {
		v.add(CodeDescriptionMissing, "frontmatter field \"description\" must be non-empty")
		return
	}
	if n := utf8.RuneCountInString(trimmed); n > MaxDescriptionLength {
		v.add(CodeDescriptionTooLong, "frontmatter field \"description\" exceeds %d characters (%d)", MaxDescriptionLength, n)
	}
}

func isAllowedField(key string) bool {
	for _, allowed := range allowedFields {
		if key == allowed {
			return true
		}
	}
	return false
}

func normalizeName(name string) string {
	return strings.TrimSpace(norm.NFKC.String(name))
}

func isValidName(name string) bool {
	if strings.HasPrefix(name, "-") || strings.HasSuffix(name, "-") {
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
