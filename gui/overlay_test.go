package gui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSceneInfoLines(t *testing.T) {
	for _, tt := range []struct {
		name string
		info SceneInfo
		want []string
	}{
		{
			name: "identity view",
			info: SceneInfo{FPS: 59.94, Frames: 120, PlaneVertices: 6, ObjectVertices: 5400},
			want: []string{
				"59.9 fps",
				"frames: 120",
				"plane vertices: 6",
				"sphere vertices: 5400",
				"sphere view: identity",
			},
		},
		{
			name: "camera view",
			info: SceneInfo{ObjectUsesView: true},
			want: []string{
				"0.0 fps",
				"frames: 0",
				"plane vertices: 0",
				"sphere vertices: 0",
				"sphere view: camera",
			},
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.info.Lines())
		})
	}
}
