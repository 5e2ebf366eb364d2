package pom

import (
	"fmt"
	"strings"
)

// ParseDependency parses the shorthand "groupId:artifactId[:version[:scope]]"
// accepted by the alternative formats.
func ParseDependency(s string) (Dependency, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 4 {
		return Dependency{}, fmt.Errorf("invalid dependency %q: want groupId:artifactId[:version[:scope]]", s)
	}
	for _, p := range parts {
		if p == "" {
			return Dependency{}, fmt.Errorf("invalid dependency %q: empty component", s)
		}
	}

	d := Dependency{GroupID: parts[0], ArtifactID: parts[1]}
	if len(parts) > 2 {
		d.Version = parts[2]
	}
	if len(parts) > 3 {
		d.Scope = parts[3]
	}
	return d, nil
}
