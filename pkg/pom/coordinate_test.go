package pom

import "testing"

func TestParseDependency(t *testing.T) {
	tests := []struct {
		in      string
		want    Dependency
		wantErr bool
	}{
		{in: "junit:junit", want: Dependency{GroupID: "junit", ArtifactID: "junit"}},
		{in: "com.google.guava:guava:31.0-jre", want: Dependency{GroupID: "com.google.guava", ArtifactID: "guava", Version: "31.0-jre"}},
		{in: " junit:junit:4.13:test ", want: Dependency{GroupID: "junit", ArtifactID: "junit", Version: "4.13", Scope: "test"}},
		{in: "guava", wantErr: true},
		{in: "a::1.0", wantErr: true},
		{in: "a:b:c:d:e", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDependency(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseDependency(%q) expected error", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDependency(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseDependency(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
			if got.Coordinate() != tt.want.GroupID+":"+tt.want.ArtifactID {
				t.Errorf("Coordinate() = %q", got.Coordinate())
			}
		})
	}
}
