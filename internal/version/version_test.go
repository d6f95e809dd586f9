package version

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	info := Get()

	require.NotEmpty(t, info.GoVersion, "GoVersion should be populated")
	require.NotEmpty(t, info.Version)
	require.NotEmpty(t, info.GitCommit)
}

func TestInfoString(t *testing.T) {
	info := Info{
		Version:   "v1.0.0",
		GitCommit: "abc123",
		BuildDate: "2026-01-29",
		GoVersion: "go1.25",
	}

	str := info.String()

	assert.Contains(t, str, "create-storefront")
	assert.Contains(t, str, "v1.0.0")
	assert.Contains(t, str, "2026-01-29/abc123")
	assert.Contains(t, str, "go1.25")
}

func TestApplyStamp(t *testing.T) {
	commitTime := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		info  Info
		stamp buildStamp
		want  Info
	}{
		{
			name:  "fills unset values",
			info:  Info{Version: devVersion, GitCommit: unknown, BuildDate: unknown},
			stamp: buildStamp{Version: "v1.2.0", Revision: "deadbeef", LastCommit: commitTime},
			want:  Info{Version: "v1.2.0", GitCommit: "deadbeef", BuildDate: "2026-02-01T10:00:00Z"},
		},
		{
			name:  "dirty build",
			info:  Info{Version: devVersion, GitCommit: unknown, BuildDate: unknown},
			stamp: buildStamp{Version: "v1.2.0", Revision: "deadbeef", Dirty: true},
			want:  Info{Version: "v1.2.0-dirty", GitCommit: "deadbeef-dirty", BuildDate: unknown},
		},
		{
			name:  "devel module version is ignored",
			info:  Info{Version: devVersion, GitCommit: unknown, BuildDate: unknown},
			stamp: buildStamp{Version: "(devel)", Revision: unknown},
			want:  Info{Version: devVersion, GitCommit: unknown, BuildDate: unknown},
		},
		{
			name:  "ldflags win",
			info:  Info{Version: "v2.0.0", GitCommit: "abc123", BuildDate: "2026-01-29"},
			stamp: buildStamp{Version: "v1.2.0", Revision: "deadbeef", LastCommit: commitTime},
			want:  Info{Version: "v2.0.0", GitCommit: "abc123", BuildDate: "2026-01-29"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := tt.info
			applyStamp(&info, tt.stamp)
			assert.Equal(t, tt.want, info)
		})
	}
}
