package deploy

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/conn-castle/claude-setup/internal/bundle"
	"github.com/conn-castle/claude-setup/internal/messages"
)

type verification struct {
	present  []bundle.Component
	missing  []bundle.Component
	problems []string
}

// verify checks the required components under root. Presence is always checked;
// strict adds the component kinds and a JSON parse of the settings file.
func verify(sys System, root string, strict bool) (verification, error) {
	var v verification
	for _, component := range bundle.Components {
		path := component.Path(root)
		info, err := sys.Stat(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				v.missing = append(v.missing, component)
				continue
			}
			return v, fmt.Errorf(messages.DeployFailedStatFmt, path, err)
		}
		v.present = append(v.present, component)
		if !strict {
			continue
		}
		if info.IsDir() != (component.Kind == bundle.KindDir) {
			v.problems = append(v.problems, fmt.Sprintf(messages.DeployComponentKindFmt, component.Name, component.Kind))
			continue
		}
		if component.Name == bundle.SettingsFile {
			data, err := sys.ReadFile(path)
			if err != nil {
				return v, fmt.Errorf(messages.DeployFailedReadFmt, path, err)
			}
			var doc any
			if err := json.Unmarshal(data, &doc); err != nil {
				v.problems = append(v.problems, fmt.Sprintf(messages.DeploySettingsInvalidFmt, component.Name, err))
			}
		}
	}
	return v, nil
}

func (v verification) err(root string) error {
	if len(v.missing) > 0 {
		names := make([]string, 0, len(v.missing))
		for _, component := range v.missing {
			names = append(names, component.String())
		}
		return newError(VerificationFailed, root, fmt.Errorf(messages.DeployVerificationFailedFmt, strings.Join(names, ", ")))
	}
	if len(v.problems) > 0 {
		return newError(VerificationFailed, root, fmt.Errorf(messages.DeployVerificationInvalidFmt, strings.Join(v.problems, "; ")))
	}
	return nil
}
