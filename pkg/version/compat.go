package version

import (
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/ehsaniara/upbgen/pkg/errors"
)

// Same reports whether two release strings name the same release. Strings
// that both parse as semantic versions are compared as versions, so build
// metadata is ignored and a leading "v" does not matter. Anything else must
// match exactly once the "v" is trimmed.
func Same(a, b string) bool {
	a = strings.TrimPrefix(strings.TrimSpace(a), "v")
	b = strings.TrimPrefix(strings.TrimSpace(b), "v")

	va, errA := semver.StrictNewVersion(a)
	vb, errB := semver.StrictNewVersion(b)
	if errA == nil && errB == nil {
		return va.Equal(vb)
	}
	return a == b
}

// CheckCompatible fails with a VersionError unless dependency names the same
// release as this helper. An empty dependency version is reported as a
// missing environment variable by the caller, not here.
func CheckCompatible(dependency string) error {
	if !Same(GetVersion(), dependency) {
		return errors.NewVersionMismatchError(GetVersion(), dependency)
	}
	return nil
}
