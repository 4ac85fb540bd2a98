package component

import "github.com/plus3/aftermath/ecs"

// Camera marks the entity whose transform centers the viewport. Only one
// active camera is expected; the render system uses the first match.
type Camera struct {
	ecs.BaseComponent

	Zoom float64
}

// NewCamera creates a camera at 1:1 zoom.
func NewCamera() *Camera {
	return &Camera{Zoom: 1}
}
