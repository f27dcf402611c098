package skillvalidator

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSkill(t *testing.T, folder string, content string) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "skills", folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
	path := filepath.Join(dir, "SKILL.md")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write skill: %v", err)
	}
	return path
}

func codes(findings []Finding) []string {
	out := make([]string, 0, len(findings))
	for _, f := range findings {
		out = append(out, f.Code)
	}
	return out
}

func strPtr(s string) *string { return &s }

func TestParse(t *testing.T) {
	path := writeSkill(t, "review", "---\nname: review\ndescription: reviews code\ncompatibility: requires git\n---\nBody.\n")

	skill, err := Parse(path)
	require.NoError(t, err)
	assert.Equal(t, "review", skill.Folder)
	assert.Equal(t, []string{"compatibility", "description", "name"}, skill.Fields)
	require.NotNil(t, skill.Name)
	assert.Equal(t, "review", *skill.Name)
	require.NotNil(t, skill.Compatibility)
	assert.Equal(t, "requires git", *skill.Compatibility)
	assert.Equal(t, 6, skill.LineCount)

	findings, err := ValidateFile(path)
	require.NoError(t, err)
	assert.Empty(t, findings)
}

func TestParseStripsBOM(t *testing.T) {
	path := writeSkill(t, "bom", "\xEF\xBB\xBF---\nname: bom\ndescription: d\n---\n")
	skill, err := Parse(path)
	require.NoError(t, err)
	require.NotNil(t, skill.Name)
	assert.Equal(t, "bom", *skill.Name)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{name: "empty", content: "", want: "file is empty"},
		{name: "no frontmatter", content: "# just markdown\n", want: "missing YAML frontmatter"},
		{name: "unterminated", content: "---\nname: x\n", want: "unterminated YAML frontmatter"},
		{name: "not a mapping", content: "---\n- a\n- b\n---\n", want: "must be a YAML mapping"},
		{name: "name not scalar", content: "---\nname: [a]\n---\n", want: `"name" must be a string scalar`},
		{name: "name not string", content: "---\nname: 12\n---\n", want: `"name" must be a string scalar`},
		{name: "metadata not map", content: "---\nmetadata: x\n---\n", want: `"metadata" must be a mapping`},
		{name: "metadata nested", content: "---\nmetadata:\n  k: [1]\n---\n", want: "must map strings to strings"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(writeSkill(t, "x", tt.content))
			if err == nil {
				t.Fatalf("expected error containing %q", tt.want)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("error = %v, want substring %q", err, tt.want)
			}
		})
	}
}

func TestParseMissingFile(t *testing.T) {
	_, err := Parse(filepath.Join(t.TempDir(), "SKILL.md"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidateMissingFields(t *testing.T) {
	findings := Validate(Skill{Path: "skills/a/SKILL.md", Folder: "a"})
	assert.Equal(t, []string{CodeDescriptionMissing, CodeNameMissing}, codes(findings))
}

func TestValidateNullAndBlankFields(t *testing.T) {
	path := writeSkill(t, "x", "---\nname: ~\ndescription: \"  \"\n---\n")
	findings, err := ValidateFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{CodeDescriptionMissing, CodeNameMissing}, codes(findings))
	assert.Contains(t, findings[0].Message, "must be non-empty")
}

func TestValidateNameRules(t *testing.T) {
	tests := []struct {
		name   string
		folder string
		want   []string
	}{
		{name: "deploy-v2", folder: "deploy-v2"},
		{name: "café", folder: "café"},
		{name: "Deploy", folder: "Deploy", want: []string{CodeNameInvalid}},
		{name: "Éclair", folder: "Éclair", want: []string{CodeNameInvalid}},
		{name: "-lead", folder: "-lead", want: []string{CodeNameInvalid}},
		{name: "a--b", folder: "a--b", want: []string{CodeNameConsecutiveHyphen}},
		{name: "alpha", folder: "beta", want: []string{CodeNameFolderMismatch}},
		{name: strings.Repeat("é", MaxNameLength+1), folder: strings.Repeat("é", MaxNameLength+1), want: []string{CodeNameTooLong}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findings := Validate(Skill{Folder: tt.folder, Name: strPtr(tt.name), Description: strPtr("d")})
			got := codes(findings)
			if len(tt.want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateNameMatchUsesNFKC(t *testing.T) {
	// U+FB01 is the "fi" ligature, which NFKC folds to "fi".
	findings := Validate(Skill{Folder: "fix", Name: strPtr("ﬁx"), Description: strPtr("d")})
	assert.Empty(t, findings)
}

func TestValidateUnknownField(t *testing.T) {
	path := writeSkill(t, "x", "---\nname: x\ndescription: d\nowner: me\nlicense: MIT\n---\n")
	findings, err := ValidateFile(path)
	require.NoError(t, err)
	require.Len(t, findings, 1)
	assert.Equal(t, CodeUnknownField, findings[0].Code)
	assert.Contains(t, findings[0].Message, `"owner"`)
	assert.Equal(t, path, findings[0].Path)
}

func TestValidateLengthLimits(t *testing.T) {
	findings := Validate(Skill{
		Folder:        "x",
		Name:          strPtr("x"),
		Description:   strPtr(strings.Repeat("d", MaxDescriptionLength+1)),
		Compatibility: strPtr(strings.Repeat("c", MaxCompatibilityLength+1)),
		LineCount:     MaxRecommendedLines + 1,
	})
	assert.Equal(t, []string{CodeCompatibilityTooLong, CodeDescriptionTooLong, CodeTooManyLines}, codes(findings))
}

func TestFindingString(t *testing.T) {
	f := Finding{Code: CodeNameMissing, Message: "missing"}
	assert.Equal(t, "SKILL_NAME_MISSING: missing", f.String())
}
