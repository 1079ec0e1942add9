package component

// Transform is an entity's world position, local scale and z rotation in
// degrees, all in scene units.
type Transform struct {
	X        float64
	Y        float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
}

// IdentityTransform sits at the origin with unit scale. Entities declared
// without a transform get this one.
func IdentityTransform() Transform {
	return Transform{ScaleX: 1, ScaleY: 1}
}

var TransformComponent = NewComponent[Transform]()
