package core

import "github.com/go-gl/mathgl/mgl32"

// Light is a single light source. A Position with w == 0 is a direction.
type Light struct {
	Position                   mgl32.Vec4
	Ambient, Diffuse, Specular mgl32.Vec4
}

type Material struct {
	Ambient, Diffuse, Specular mgl32.Vec4
	Shininess                  float32
}

// Products are the per-term light * material colors the shader consumes.
type Products struct {
	Ambient, Diffuse, Specular mgl32.Vec4
}

func (l Light) Products(m Material) Products {
	return Products{
		Ambient:  MulElem(l.Ambient, m.Ambient),
		Diffuse:  MulElem(l.Diffuse, m.Diffuse),
		Specular: MulElem(l.Specular, m.Specular),
	}
}

// MulElem multiplies two vectors component by component.
func MulElem(a, b mgl32.Vec4) mgl32.Vec4 {
	return mgl32.Vec4{a[0] * b[0], a[1] * b[1], a[2] * b[2], a[3] * b[3]}
}
