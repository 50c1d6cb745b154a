// Package shaders holds the GLSL sources of the Phong program.
package shaders

import (
	"embed"
	"fmt"
	"path/filepath"

	"github.com/ob6160/SphereMap/utils"
)

const (
	Vertex   = "phong.vert"
	Fragment = "phong.frag"
)

//go:embed phong.vert phong.frag
var embedded embed.FS

// Sources is a vertex/fragment pair ready for compilation.
type Sources struct {
	Vertex, Fragment string
}

// Source returns an embedded shader by file name.
func Source(name string) (string, error) {
	data, err := embedded.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("no embedded shader %q: %w", name, err)
	}
	return string(data), nil
}

// Load reads the Phong pair from dir, or from the embedded copies when dir is
// empty.
func Load(dir string) (Sources, error) {
	var read = Source
	if dir != "" {
		read = func(name string) (string, error) {
			return utils.ReadTextFile(filepath.Join(dir, name))
		}
	}

	vertex, err := read(Vertex)
	if err != nil {
		return Sources{}, err
	}
	fragment, err := read(Fragment)
	if err != nil {
		return Sources{}, err
	}
	return Sources{Vertex: vertex, Fragment: fragment}, nil
}
