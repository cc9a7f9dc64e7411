package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppBuildInfo_String(t *testing.T) {
	tests := []struct {
		name string
		info AppBuildInfo
		want string
	}{
		{
			name: "release build",
			info: NewAppBuildInfo("1.4.0", "2026-03-01", "a1b2c3"),
			want: "Build version: 1.4.0\nBuild date: 2026-03-01\nBuild commit: a1b2c3",
		},
		{
			name: "local build",
			info: NewAppBuildInfo("", "", ""),
			want: "Build version: N/A\nBuild date: N/A\nBuild commit: N/A",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.info.String())
		})
	}
}
