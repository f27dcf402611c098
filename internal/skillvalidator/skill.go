// Package skillvalidator checks the SKILL.md manifests shipped in a bundle's skills/ folder.
package skillvalidator

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	yaml "go.yaml.in/yaml/v3"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

const (
	yamlTagStr  = "!!str"
	yamlTagNull = "!!null"
)

const frontMatterDelimiter = "---"

// Skill is a parsed SKILL.md manifest.
type Skill struct {
	// Path is the manifest path.
	Path string
	// Folder is the name of the directory holding the manifest.
	Folder    string
	LineCount int
	// Fields lists the frontmatter keys, sorted.
	Fields []string
	// Nil pointers mean the field is absent or null.
	Name          *string
	Description   *string
	Compatibility *string
}

// Parse reads the manifest at path and decodes its YAML frontmatter.
func Parse(path string) (Skill, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Skill{}, fmt.Errorf("read skill %s: %w", path, err)
	}
	return ParseContent(path, raw)
}

// ParseContent decodes a manifest already read from path.
func ParseContent(path string, raw []byte) (Skill, error) {
	content := string(bytes.TrimPrefix(raw, utf8BOM))
	header, err := extractFrontMatter(content)
	if err != nil {
		return Skill{}, fmt.Errorf("skill %s: %w", path, err)
	}

	skill := Skill{
		Path:      path,
		Folder:    filepath.Base(filepath.Dir(path)),
		LineCount: countLines(content),
		Fields:    []string{},
	}
	if err := skill.decode(header); err != nil {
		return Skill{}, fmt.Errorf("parse frontmatter for %s: %w", path, err)
	}
	return skill, nil
}

func extractFrontMatter(content string) (string, error) {
	scanner := bufio.NewScanner(strings.NewReader(content))
	if !scanner.Scan() {
		return "", errors.New("file is empty")
	}
	if strings.TrimSpace(scanner.Text()) != frontMatterDelimiter {
		return "", errors.New("missing YAML frontmatter")
	}
	var lines []string
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == frontMatterDelimiter {
			return strings.Join(lines, "\n"), nil
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return "", errors.New("unterminated YAML frontmatter")
}

func (s *Skill) decode(header string) error {
	if strings.TrimSpace(header) == "" {
		return nil
	}
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(header), &doc); err != nil {
		return err
	}
	if len(doc.Content) == 0 || doc.Content[0].Kind != yaml.MappingNode {
		return errors.New("frontmatter must be a YAML mapping")
	}

	mapping := doc.Content[0]
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		key := strings.TrimSpace(mapping.Content[i].Value)
		value := mapping.Content[i+1]
		if key == "" {
			continue
		}
		s.Fields = append(s.Fields, key)

		var err error
		switch key {
		case "name":
			s.Name, err = scalarString(value, key)
		case "description":
			s.Description, err = scalarString(value, key)
		case "compatibility":
			s.Compatibility, err = scalarString(value, key)
		case "license", "allowed-tools":
			_, err = scalarString(value, key)
		case "metadata":
			err = stringMap(value, key)
		}
		if err != nil {
			return err
		}
	}
	sort.Strings(s.Fields)
	return nil
}

func scalarString(node *yaml.Node, field string) (*string, error) {
	if node.Kind != yaml.ScalarNode {
		return nil, fmt.Errorf("frontmatter field %q must be a string scalar", field)
	}
	if node.Tag == yamlTagNull {
		return nil, nil
	}
	if !isStringTag(node) {
		return nil, fmt.Errorf("frontmatter field %q must be a string scalar", field)
	}
	value := node.Value
	return &value, nil
}

func stringMap(node *yaml.Node, field string) error {
	if node.Kind == yaml.ScalarNode && node.Tag == yamlTagNull {
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("frontmatter field %q must be a mapping", field)
	}
	for _, child := range node.Content {
		if child.Kind != yaml.ScalarNode || !isStringTag(child) {
			return fmt.Errorf("frontmatter field %q must map strings to strings", field)
		}
	}
	return nil
}

func isStringTag(node *yaml.Node) bool {
	return node.Tag == "" || node.Tag == yamlTagStr
}

func countLines(content string) int {
	if content == "" {
		return 0
	}
	count := strings.Count(content, "\n")
	if strings.HasSuffix(content, "\n") {
		return count
	}
	return count + 1
}
