// Package bundle describes the .claude/ bundle layout and how the running
// program finds the bundle it ships with.
package bundle

import (
	"path/filepath"
)

// DirName is the fixed directory name a bundle is deployed under.
const DirName = ".claude"

const (
	// SettingsFile is the structured settings document at the bundle root.
	SettingsFile = "settings.json"
	// CommandsDir holds reusable instruction files.
	CommandsDir = "commands"
	// SkillsDir holds one subfolder per skill, each with a SkillManifest.
	SkillsDir = "skills"
	// HooksDir holds executable automation scripts.
	HooksDir = "hooks"
	// SkillManifest is the manifest file inside each skill folder.
	SkillManifest = "SKILL.md"
)

// Kind is the node kind a component must have.
type Kind string

const (
	// KindFile is a regular file.
	KindFile Kind = "file"
	// KindDir is a directory.
	KindDir Kind = "directory"
)

// Component is one required direct child of a bundle root.
type Component struct {
	Name string
	Kind Kind
}

// Components lists the required bundle children in verification order.
var Components = []Component{
	{Name: SettingsFile, Kind: KindFile},
	{Name: CommandsDir, Kind: KindDir},
	{Name: SkillsDir, Kind: KindDir},
	{Name: HooksDir, Kind: KindDir},
}

// Path returns the component's path under root.
func (c Component) Path(root string) string {
	return filepath.Join(root, c.Name)
}

// String returns the component name, with a trailing slash for directories.
func (c Component) String() string {
	if c.Kind == KindDir {
		return c.Name + "/"
	}
	return c.Name
}

// DeployPath returns where a bundle lands for the given target directory.
func DeployPath(target string) string {
	return filepath.Join(target, DirName)
}
