package report

import "sort"

// DependencyKey identifies a dependency by its group and name,
// excluding the version.
type DependencyKey struct {
	Group string
	Name  string
}

// Label returns the display form of the key, e.g. "com.example:core".
func (k DependencyKey) Label() string {
	return k.Group + ":" + k.Name
}

// Less orders keys by group first, then name.
func (k DependencyKey) Less(other DependencyKey) bool {
	if k.Group != other.Group {
		return k.Group < other.Group
	}
	return k.Name < other.Name
}

// VersionMapping maps a dependency key to a version string. Iteration
// order is unspecified; the writer sorts at render time.
type VersionMapping map[DependencyKey]string

// UnresolvedEntry records a dependency whose latest version could not
// be determined, together with the underlying cause.
type UnresolvedEntry struct {
	Key     DependencyKey
	Problem error
}

// Input is the immutable snapshot consumed by a single render call.
// It is produced by an external resolution process; every key present
// in UpToDateVersions, DowngradeVersions or UpgradeVersions must also
// appear in CurrentVersions, and those three mappings are mutually
// exclusive per key.
type Input struct {
	// CurrentVersions holds the current version for every evaluated
	// dependency.
	CurrentVersions VersionMapping

	// UpToDateVersions holds dependencies whose current version equals
	// the most advanced version found at the revision scope.
	UpToDateVersions VersionMapping

	// DowngradeVersions holds dependencies whose current version is
	// newer than anything found at the revision scope; the mapped value
	// is the version that was found.
	DowngradeVersions VersionMapping

	// UpgradeVersions holds dependencies for which a newer version was
	// found; the mapped value is the found version.
	UpgradeVersions VersionMapping

	// Unresolved lists dependencies whose latest version could not be
	// determined.
	Unresolved []UnresolvedEntry

	// ProjectLabel is the display string for the project being
	// reported, e.g. a build path.
	ProjectLabel string

	// RevisionLabel names the revision scope used by the resolver,
	// e.g. "release" or "milestone".
	RevisionLabel string
}

// sortedKeys returns the mapping's keys ordered by group, then name.
func sortedKeys(m VersionMapping) []DependencyKey {
	keys := make([]DependencyKey, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })
	return keys
}
