package deploy

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/aymanbagabas/go-udiff"

	"github.com/conn-castle/claude-setup/internal/bundle"
	"github.com/conn-castle/claude-setup/internal/messages"
)

// DefaultDiffMaxLines is the default maximum number of diff lines shown per file.
const DefaultDiffMaxLines = 40

// PreviewOptions controls Preview.
type PreviewOptions struct {
	// DiffMaxLines caps each unified diff; values <= 0 use DefaultDiffMaxLines.
	DiffMaxLines int
}

// FileDiff is the preview of one file an overwrite would change.
type FileDiff struct {
	Path        string
	UnifiedDiff string
	Truncated   bool
}

// Plan lists what deploying source over an existing deployment would do.
// Paths are slash-separated, relative to the deployment root, and sorted.
type Plan struct {
	// Path is the deployment root, <target>/.claude.
	Path string
	// Exists reports whether a deployment is already present. When false every
	// source file is listed in Added.
	Exists    bool
	Added     []string
	Changed   []FileDiff
	Removed   []string
	Unchanged int
}

// Empty reports whether the overwrite would leave the deployment as it is.
func (p Plan) Empty() bool {
	return len(p.Added) == 0 && len(p.Changed) == 0 && len(p.Removed) == 0
}

// Preview compares the bundle at source with the deployment under target.
func Preview(sys System, source string, target string, opts PreviewOptions) (Plan, error) {
	if sys == nil {
		sys = RealSystem{}
	}
	dest := bundle.DeployPath(target)
	plan := Plan{Path: dest}

	sourceFiles, err := listFiles(sys, source)
	if err != nil {
		return plan, err
	}
	exists, err := pathExists(sys, dest)
	if err != nil {
		return plan, err
	}
	plan.Exists = exists
	deployed := map[string]string{}
	if exists {
		deployed, err = listFiles(sys, dest)
		if err != nil {
			return plan, err
		}
	}

	for _, rel := range sortedKeys(sourceFiles) {
		current, ok := deployed[rel]
		if !ok {
			plan.Added = append(plan.Added, rel)
			continue
		}
		diff, changed, err := compareFiles(sys, rel, current, sourceFiles[rel], opts.DiffMaxLines)
		if err != nil {
			return plan, err
		}
		if changed {
			plan.Changed = append(plan.Changed, diff)
		} else {
			plan.Unchanged++
		}
	}
	for _, rel := range sortedKeys(deployed) {
		if _, ok := sourceFiles[rel]; !ok {
			plan.Removed = append(plan.Removed, rel)
		}
	}
	return plan, nil
}

// listFiles maps each regular file under root, by slash-separated relative path, to its absolute path.
func listFiles(sys System, root string) (map[string]string, error) {
	files := map[string]string{}
	err := walkTree(sys, root, treeVisitor{
		file: func(rel string, abs string, _ os.FileInfo) error {
			files[filepath.ToSlash(rel)] = abs
			return nil
		},
	})
	if err != nil {
		return nil, fmt.Errorf(messages.PreviewFailedWalkFmt, root, err)
	}
	return files, nil
}

func compareFiles(sys System, rel string, currentPath string, sourcePath string, maxLines int) (FileDiff, bool, error) {
	current, err := sys.ReadFile(currentPath)
	if err != nil {
		return FileDiff{}, false, fmt.Errorf(messages.PreviewFailedReadFmt, currentPath, err)
	}
	incoming, err := sys.ReadFile(sourcePath)
	if err != nil {
		return FileDiff{}, false, fmt.Errorf(messages.PreviewFailedReadFmt, sourcePath, err)
	}
	if bytes.Equal(current, incoming) {
		return FileDiff{}, false, nil
	}
	if isBinary(current) || isBinary(incoming) {
		return FileDiff{Path: rel, UnifiedDiff: messages.PreviewBinaryDiffer}, true, nil
	}
	from := normalizeContent(string(current))
	to := normalizeContent(string(incoming))
	if from == to {
		return FileDiff{}, false, nil
	}
	rendered, truncated := renderTruncatedUnifiedDiff(rel+" (deployed)", rel+" (bundle)", from, to, maxLines)
	return FileDiff{Path: rel, UnifiedDiff: rendered, Truncated: truncated}, true, nil
}

func isBinary(data []byte) bool {
	return bytes.IndexByte(data, 0) >= 0 || !utf8.Valid(data)
}

func normalizeContent(content string) string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	return content
}

func normalizeDiffMaxLines(value int) int {
	if value <= 0 {
		return DefaultDiffMaxLines
	}
	return value
}

func renderTruncatedUnifiedDiff(fromName string, toName string, fromContent string, toContent string, maxLines int) (string, bool) {
	limit := normalizeDiffMaxLines(maxLines)
	diff := udiff.Unified(fromName, toName, fromContent, toContent)
	lines := splitDiffLines(diff)
	if len(lines) <= limit {
		return ensureTrailingNewline(strings.Join(lines, "\n")), false
	}
	truncated := append(lines[:limit:limit], fmt.Sprintf(messages.PreviewTruncatedFmt, limit, messages.PreviewDiffLinesFlag))
	return ensureTrailingNewline(strings.Join(truncated, "\n")), true
}

func splitDiffLines(content string) []string {
	trimmed := strings.TrimRight(content, "\n")
	if trimmed == "" {
		return []string{}
	}
	return strings.Split(trimmed, "\n")
}

func ensureTrailingNewline(content string) string {
	if content == "" || strings.HasSuffix(content, "\n") {
		return content
	}
	return content + "\n"
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
