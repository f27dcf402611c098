// Package check reports on the health of a bundle before it is deployed.
package check

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/conn-castle/claude-setup/internal/bundle"
	"github.com/conn-castle/claude-setup/internal/messages"
	"github.com/conn-castle/claude-setup/internal/skillvalidator"
)

// Status is the outcome of a single check.
type Status string

const (
	// StatusOK means the check passed.
	StatusOK Status = "OK"
	// StatusWarn is advisory; deployments still succeed.
	StatusWarn Status = "WARN"
	// StatusFail marks a problem that breaks the bundle.
	StatusFail Status = "FAIL"
)

// Result is one line of a bundle report.
type Result struct {
	Status         Status
	CheckName      string
	Message        string
	Recommendation string
}

var goos = runtime.GOOS

// Bundle runs every check against the bundle at root.
func Bundle(root string) []Result {
	var results []Result
	results = append(results, Structure(root)...)
	results = append(results, Settings(root)...)
	results = append(results, Skills(root)...)
	results = append(results, Hooks(root)...)
	results = append(results, Commands(root)...)
	return results
}

// HasFailures reports whether any result failed.
func HasFailures(results []Result) bool {
	for _, r := range results {
		if r.Status == StatusFail {
			return true
		}
	}
	return false
}

// Structure verifies that each required component exists with the right kind.
func Structure(root string) []Result {
	results := make([]Result, 0, len(bundle.Components))
	for _, component := range bundle.Components {
		info, err := os.Stat(component.Path(root))
		switch {
		case err != nil:
			results = append(results, Result{
				Status:         StatusFail,
				CheckName:      messages.CheckNameStructure,
				Message:        fmt.Sprintf(messages.CheckComponentMissingFmt, component),
				Recommendation: messages.CheckComponentMissingHint,
			})
		case info.IsDir() != (component.Kind == bundle.KindDir):
			results = append(results, Result{
				Status:         StatusFail,
				CheckName:      messages.CheckNameStructure,
				Message:        fmt.Sprintf(messages.CheckComponentKindFmt, component.Name, component.Kind),
				Recommendation: messages.CheckComponentKindHint,
			})
		default:
			results = append(results, Result{
				Status:    StatusOK,
				CheckName: messages.CheckNameStructure,
				Message:   fmt.Sprintf(messages.CheckComponentPresentFmt, component),
			})
		}
	}
	return results
}

// Settings verifies that settings.json holds a JSON object. A missing file is
// left to Structure.
func Settings(root string) []Result {
	data, err := os.ReadFile(filepath.Join(root, bundle.SettingsFile))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return []Result{failed(messages.CheckNameSettings, fmt.Sprintf(messages.CheckSettingsUnreadableFmt, err), messages.CheckSettingsHint)}
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return []Result{failed(messages.CheckNameSettings, fmt.Sprintf(messages.CheckSettingsInvalidFmt, err), messages.CheckSettingsHint)}
	}
	if _, ok := doc.(map[string]any); !ok {
		return []Result{failed(messages.CheckNameSettings, messages.CheckSettingsNotObject, messages.CheckSettingsHint)}
	}
	return []Result{passed(messages.CheckNameSettings, messages.CheckSettingsOK)}
}

// Skills verifies that every skill folder has a SKILL.md and reports manifest
// findings as warnings.
func Skills(root string) []Result {
	dir := filepath.Join(root, bundle.SkillsDir)
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return []Result{failed(messages.CheckNameSkills, fmt.Sprintf(messages.CheckSkillsReadFailedFmt, err), "")}
	}

	var results []Result
	count := 0
	for _, entry := range entries {
		skillDir := filepath.Join(dir, entry.Name())
		if info, err := os.Stat(skillDir); err != nil || !info.IsDir() {
			continue
		}
		count++
		manifest := filepath.Join(skillDir, bundle.SkillManifest)
		rel := relPath(root, manifest)
		if _, err := os.Stat(manifest); err != nil {
			results = append(results, failed(messages.CheckNameSkills, fmt.Sprintf(messages.CheckSkillMissingFmt, relPath(root, skillDir)), messages.CheckSkillMissingHint))
			continue
		}
		findings, err := skillvalidator.ValidateFile(manifest)
		if err != nil {
			results = append(results, failed(messages.CheckNameSkills, fmt.Sprintf(messages.CheckSkillParseFailedFmt, err), ""))
			continue
		}
		for _, finding := range findings {
			results = append(results, Result{
				Status:    StatusWarn,
				CheckName: messages.CheckNameSkills,
				Message:   fmt.Sprintf(messages.CheckSkillFindingFmt, rel, finding.Message),
			})
		}
	}
	if len(results) > 0 {
		return results
	}
	return []Result{passed(messages.CheckNameSkills, fmt.Sprintf(messages.CheckSkillsOKFmt, count))}
}

// Hooks verifies that every file under hooks/ has an execute bit. Skipped on Windows.
func Hooks(root string) []Result {
	dir := filepath.Join(root, bundle.HooksDir)
	if _, err := os.Stat(dir); err != nil {
		return nil
	}
	if goos == "windows" {
		return []Result{passed(messages.CheckNameHooks, messages.CheckHooksSkippedWindows)}
	}

	var results []Result
	count := 0
	err := walkFiles(dir, func(path string, info fs.FileInfo) {
		count++
		if info.Mode().Perm()&0o111 == 0 {
			results = append(results, failed(messages.CheckNameHooks, fmt.Sprintf(messages.CheckHookNotExecutableFmt, relPath(root, path)), messages.CheckHookNotExecutableHint))
		}
	})
	if err != nil {
		return append(results, failed(messages.CheckNameHooks, fmt.Sprintf(messages.CheckHooksReadFailedFmt, err), ""))
	}
	if len(results) > 0 {
		return results
	}
	return []Result{passed(messages.CheckNameHooks, fmt.Sprintf(messages.CheckHooksOKFmt, count))}
}

// Commands counts the markdown command files and warns when there are none.
func Commands(root string) []Result {
	dir := filepath.Join(root, bundle.CommandsDir)
	if _, err := os.Stat(dir); err != nil {
		return nil
	}
	count := 0
	err := walkFiles(dir, func(path string, _ fs.FileInfo) {
		if strings.EqualFold(filepath.Ext(path), ".md") {
			count++
		}
	})
	if err != nil {
		return []Result{failed(messages.CheckNameCommands, fmt.Sprintf(messages.CheckCommandsReadFailedFmt, err), "")}
	}
	if count == 0 {
		return []Result{{
			Status:         StatusWarn,
			CheckName:      messages.CheckNameCommands,
			Message:        messages.CheckCommandsNone,
			Recommendation: messages.CheckCommandsNoneHint,
		}}
	}
	return []Result{passed(messages.CheckNameCommands, fmt.Sprintf(messages.CheckCommandsOKFmt, count))}
}

// walkFiles calls fn for every regular file under dir, following symlinked files.
func walkFiles(dir string, fn func(path string, info fs.FileInfo)) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		info, err := os.Stat(path)
		if err != nil {
			return err
		}
		if info.Mode().IsRegular() {
			fn(path, info)
		}
		return nil
	})
}

func relPath(root string, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}

func passed(name string, message string) Result {
	return Result{Status: StatusOK, CheckName: name, Message: message}
}

func failed(name string, message string, recommendation string) Result {
	return Result{Status: StatusFail, CheckName: name, Message: message, Recommendation: recommendation}
}
