// Package intake loads classified dependency-resolution results from
// disk and turns them into a report input. Classification itself
// happens upstream; intake only validates the contract the writer
// relies on.
package intake

import (
	"errors"
	"fmt"
	"os"

	"github.com/Masterminds/semver/v3"
	"github.com/cryptellation/depreport/pkg/logging"
	"github.com/cryptellation/depreport/pkg/report"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// dependencyEntry is one dependency line in a results file. Version is
// the current version in the "current" section and the found version
// in the categorized sections.
type dependencyEntry struct {
	Group   string `yaml:"group"`
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
}

// unresolvedEntry is one entry of the "unresolved" section.
type unresolvedEntry struct {
	Group   string `yaml:"group"`
	Name    string `yaml:"name"`
	Problem string `yaml:"problem"`
}

// resultsFile mirrors the on-disk layout produced by the resolution
// step.
type resultsFile struct {
	Project    string            `yaml:"project"`
	Revision   string            `yaml:"revision"`
	Current    []dependencyEntry `yaml:"current"`
	UpToDate   []dependencyEntry `yaml:"upToDate"`
	Downgrades []dependencyEntry `yaml:"downgrades"`
	Upgrades   []dependencyEntry `yaml:"upgrades"`
	Unresolved []unresolvedEntry `yaml:"unresolved"`
}

// Load reads a classified results file and builds the report input.
// defaultRevision is used when the file does not name a revision
// scope. Load fails on duplicate keys within a section, on a key
// categorized in more than one of upToDate/downgrades/upgrades, and on
// a categorized key without a current version.
func Load(path, defaultRevision string) (report.Input, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return report.Input{}, fmt.Errorf("failed to read results file %s: %w", path, err)
	}

	var file resultsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return report.Input{}, fmt.Errorf("failed to parse results file %s: %w", path, err)
	}

	input := report.Input{
		ProjectLabel:  file.Project,
		RevisionLabel: file.Revision,
	}
	if input.RevisionLabel == "" {
		input.RevisionLabel = defaultRevision
	}

	if input.CurrentVersions, err = toMapping("current", file.Current); err != nil {
		return report.Input{}, err
	}
	if input.UpToDateVersions, err = toMapping("upToDate", file.UpToDate); err != nil {
		return report.Input{}, err
	}
	if input.DowngradeVersions, err = toMapping("downgrades", file.Downgrades); err != nil {
		return report.Input{}, err
	}
	if input.UpgradeVersions, err = toMapping("upgrades", file.Upgrades); err != nil {
		return report.Input{}, err
	}

	for _, entry := range file.Unresolved {
		input.Unresolved = append(input.Unresolved, report.UnresolvedEntry{
			Key:     report.DependencyKey{Group: entry.Group, Name: entry.Name},
			Problem: errors.New(entry.Problem),
		})
	}

	if err := validate(input); err != nil {
		return report.Input{}, err
	}
	warnNonSemver(input.CurrentVersions)
	return input, nil
}

// toMapping converts a section's entries into a version mapping,
// rejecting duplicate keys.
func toMapping(section string, entries []dependencyEntry) (report.VersionMapping, error) {
	mapping := make(report.VersionMapping, len(entries))
	for _, entry := range entries {
		key := report.DependencyKey{Group: entry.Group, Name: entry.Name}
		if _, ok := mapping[key]; ok {
			return nil, fmt.Errorf("duplicate dependency %s in section %s", key.Label(), section)
		}
		mapping[key] = entry.Version
	}
	return mapping, nil
}

// validate enforces the writer's data contract: the categorized
// sections are mutually exclusive per key and every categorized key
// has a current version.
func validate(input report.Input) error {
	sections := []struct {
		name    string
		mapping report.VersionMapping
	}{
		{"upToDate", input.UpToDateVersions},
		{"downgrades", input.DowngradeVersions},
		{"upgrades", input.UpgradeVersions},
	}

	seen := make(map[report.DependencyKey]string)
	for _, section := range sections {
		for key := range section.mapping {
			if previous, ok := seen[key]; ok {
				return fmt.Errorf("dependency %s categorized in both %s and %s", key.Label(), previous, section.name)
			}
			seen[key] = section.name
			if _, ok := input.CurrentVersions[key]; !ok {
				return fmt.Errorf("dependency %s in section %s has no current version", key.Label(), section.name)
			}
		}
	}
	return nil
}

// warnNonSemver flags version strings that do not parse as semantic
// versions. These are not rejected: version ordering is the resolver's
// concern, and plenty of ecosystems use non-semver schemes.
func warnNonSemver(current report.VersionMapping) {
	for key, version := range current {
		if _, err := semver.NewVersion(version); err != nil {
			logging.L().Warn("Current version is not a semantic version",
				zap.String("dependency", key.Label()),
				zap.String("version", version),
			)
		}
	}
}
