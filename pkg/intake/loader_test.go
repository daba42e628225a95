package intake

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cryptellation/depreport/pkg/report"
	"github.com/stretchr/testify/require"
)

func writeResults(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "results.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeResults(t, `
project: ":app"
revision: milestone
current:
  - {group: com.example, name: core, version: "1.0.0"}
  - {group: org.other, name: lib, version: "2.0.0"}
  - {group: org.pinned, name: beta, version: "3.0.0-SNAPSHOT"}
upToDate:
  - {group: com.example, name: core, version: "1.0.0"}
downgrades:
  - {group: org.pinned, name: beta, version: "2.9.0"}
upgrades:
  - {group: org.other, name: lib, version: "3.0.0"}
unresolved:
  - {group: org.gone, name: tool, problem: "not found in any repository"}
`)

	input, err := Load(path, "release")
	require.NoError(t, err)

	require.Equal(t, ":app", input.ProjectLabel)
	require.Equal(t, "milestone", input.RevisionLabel)
	require.Len(t, input.CurrentVersions, 3)

	core := report.DependencyKey{Group: "com.example", Name: "core"}
	require.Equal(t, "1.0.0", input.UpToDateVersions[core])

	beta := report.DependencyKey{Group: "org.pinned", Name: "beta"}
	require.Equal(t, "2.9.0", input.DowngradeVersions[beta])

	lib := report.DependencyKey{Group: "org.other", Name: "lib"}
	require.Equal(t, "3.0.0", input.UpgradeVersions[lib])

	require.Len(t, input.Unresolved, 1)
	require.Equal(t, report.DependencyKey{Group: "org.gone", Name: "tool"}, input.Unresolved[0].Key)
	require.EqualError(t, input.Unresolved[0].Problem, "not found in any repository")
}

func TestLoad_DefaultRevision(t *testing.T) {
	path := writeResults(t, `
project: ":app"
current:
  - {group: com.example, name: core, version: "1.0.0"}
upToDate:
  - {group: com.example, name: core, version: "1.0.0"}
`)

	input, err := Load(path, "release")
	require.NoError(t, err)
	require.Equal(t, "release", input.RevisionLabel)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), "release")
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to read results file")
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeResults(t, "current: {group: [broken")
	_, err := Load(path, "release")
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to parse results file")
}

func TestLoad_DuplicateKeyInSection(t *testing.T) {
	path := writeResults(t, `
project: ":app"
current:
  - {group: com.example, name: core, version: "1.0.0"}
upToDate:
  - {group: com.example, name: core, version: "1.0.0"}
  - {group: com.example, name: core, version: "1.0.1"}
`)

	_, err := Load(path, "release")
	require.Error(t, err)
	require.Contains(t, err.Error(), "duplicate dependency com.example:core in section upToDate")
}

func TestLoad_KeyInTwoSections(t *testing.T) {
	path := writeResults(t, `
project: ":app"
current:
  - {group: com.example, name: core, version: "1.0.0"}
upToDate:
  - {group: com.example, name: core, version: "1.0.0"}
upgrades:
  - {group: com.example, name: core, version: "2.0.0"}
`)

	_, err := Load(path, "release")
	require.Error(t, err)
	require.Contains(t, err.Error(), "categorized in both")
}

func TestLoad_CategorizedKeyWithoutCurrentVersion(t *testing.T) {
	path := writeResults(t, `
project: ":app"
upgrades:
  - {group: org.other, name: lib, version: "3.0.0"}
`)

	_, err := Load(path, "release")
	require.Error(t, err)
	require.Contains(t, err.Error(), "org.other:lib")
	require.Contains(t, err.Error(), "no current version")
}

func TestLoad_NonSemverVersionIsAccepted(t *testing.T) {
	path := writeResults(t, `
project: ":app"
current:
  - {group: com.example, name: core, version: "RELEASE-2020"}
upToDate:
  - {group: com.example, name: core, version: "RELEASE-2020"}
`)

	input, err := Load(path, "release")
	require.NoError(t, err)
	core := report.DependencyKey{Group: "com.example", Name: "core"}
	require.Equal(t, "RELEASE-2020", input.CurrentVersions[core])
}
