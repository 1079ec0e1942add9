package component

// RenderLayer is the sorting layer and order of an entity's sprite renderer.
// Backdrops are routed to parallax bands by Layer; Order sorts image groups.
type RenderLayer struct {
	Layer string
	Order int
}

const DefaultRenderLayer = "Default"

var RenderLayerComponent = NewComponent[RenderLayer]()
