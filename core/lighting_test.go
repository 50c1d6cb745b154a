package core

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestLightProducts(t *testing.T) {
	var light = Light{
		Ambient:  mgl32.Vec4{0.2, 0.2, 0.2, 1.0},
		Diffuse:  mgl32.Vec4{1.0, 1.0, 1.0, 1.0},
		Specular: mgl32.Vec4{1.0, 1.0, 1.0, 1.0},
	}
	var material = Material{
		Ambient:   mgl32.Vec4{0.8, 0.0, 0.8, 1.0},
		Diffuse:   mgl32.Vec4{1.0, 1.0, 1.0, 1.0},
		Specular:  mgl32.Vec4{0.0, 0.0, 0.0, 1.0},
		Shininess: 40,
	}

	var p = light.Products(material)
	assert.True(t, p.Ambient.ApproxEqualThreshold(mgl32.Vec4{0.16, 0, 0.16, 1}, 1e-6), "ambient %v", p.Ambient)
	assert.Equal(t, light.Diffuse, p.Diffuse)
	assert.Equal(t, mgl32.Vec4{0, 0, 0, 1}, p.Specular)
}

func TestMulElem(t *testing.T) {
	var got = MulElem(mgl32.Vec4{1, 2, 3, 4}, mgl32.Vec4{0.5, 0.5, 2, 0})
	assert.Equal(t, mgl32.Vec4{0.5, 1, 6, 0}, got)
}
