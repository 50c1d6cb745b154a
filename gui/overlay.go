package gui

import (
	"fmt"

	"github.com/inkyblackness/imgui-go/v2"
)

// SceneInfo is what the overlay shows. It is read only.
type SceneInfo struct {
	FPS                           float64
	Frames                        uint64
	PlaneVertices, ObjectVertices int
	ObjectUsesView                bool
}

// Lines renders the info as the overlay's text rows.
func (s SceneInfo) Lines() []string {
	var view = "identity"
	if s.ObjectUsesView {
		view = "camera"
	}
	return []string{
		fmt.Sprintf("%.1f fps", s.FPS),
		fmt.Sprintf("frames: %d", s.Frames),
		fmt.Sprintf("plane vertices: %d", s.PlaneVertices),
		fmt.Sprintf("sphere vertices: %d", s.ObjectVertices),
		fmt.Sprintf("sphere view: %s", view),
	}
}

func (s SceneInfo) Build() {
	if imgui.BeginV("Scene", nil, imgui.WindowFlagsAlwaysAutoResize|imgui.WindowFlagsNoSavedSettings) {
		for i, line := range s.Lines() {
			if i == 2 {
				imgui.Separator()
			}
			imgui.Text(line)
		}
	}
	imgui.End()
}
