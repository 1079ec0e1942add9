package buildmap

import (
	"sort"

	"github.com/milk9111/vectorbuild/ecs/component"
	"github.com/milk9111/vectorbuild/levels"
)

// activeGroups is the emission order of the gameplay band.
var activeGroups = []component.Tag{
	component.TagSpawn,
	component.TagImage,
	component.TagObject,
	component.TagPlatform,
	component.TagTrapezoid,
	component.TagTrigger,
	component.TagArea,
	component.TagModel,
	component.TagCamera,
	component.TagDynamic,
	component.TagAnimation,
}

type backdropBand struct {
	factor string
	value  float32
	layers []string
}

var backdropBands = []backdropBand{
	{factor: levels.FactorFar, value: 0.1, layers: []string{"Factor_0.1"}},
	{factor: levels.FactorMid, value: 0.25, layers: []string{"Factor_0.25"}},
	{factor: levels.FactorNear, value: 0.5, layers: []string{"Factor_0.5", component.DefaultRenderLayer}},
	{factor: levels.FactorClose, value: 0.8, layers: []string{"Factor_0.8"}},
}

func (b backdropBand) accepts(e *Entity) bool {
	layer := e.Layer()
	for _, l := range b.layers {
		if l == layer {
			return true
		}
	}
	return false
}

// sortByOrder returns a copy of es stable-sorted by render order.
func sortByOrder(es []*Entity) []*Entity {
	out := append([]*Entity(nil), es...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SortOrder() < out[j].SortOrder()
	})
	return out
}

func sortedGroup(tag component.Tag) bool {
	switch tag {
	case component.TagImage, component.TagTopImage, component.TagBackdrop:
		return true
	}
	return false
}

// topLevel returns the entities of a tag group that are not owned by a
// Dynamic group, sorted when the group is drawn in render order.
func (c *compiler) topLevel(tag component.Tag) []*Entity {
	var out []*Entity
	for _, e := range c.scene.Tagged(tag) {
		if !c.insideDynamic(e) {
			out = append(out, e)
		}
	}
	if sortedGroup(tag) {
		return sortByOrder(out)
	}
	return out
}

func (c *compiler) insideDynamic(e *Entity) bool {
	p, ok := c.scene.Parent(e)
	return ok && p.Tag == component.TagDynamic
}

func (c *compiler) compileActive() {
	out := sink{content: c.doc.Content(levels.FactorActive), factor: 1}
	for _, tag := range activeGroups {
		for _, e := range c.topLevel(tag) {
			c.emit(e, out)
		}
	}
}

func (c *compiler) compileBackdrops() {
	backdrops := c.topLevel(component.TagBackdrop)
	for _, band := range backdropBands {
		out := sink{content: c.doc.Content(band.factor), factor: band.value}
		for _, e := range backdrops {
			if band.accepts(e) {
				c.emit(e, out)
			}
		}
	}
}

func (c *compiler) compileForeground() {
	out := sink{content: c.doc.Content(levels.FactorForeground), factor: 1}
	for _, e := range c.topLevel(component.TagTopImage) {
		c.emit(e, out)
	}
}

// backdropNode places e in a parallax band. With position correction on the
// scene position is scaled by the band factor first.
func (c *compiler) backdropNode(e *Entity, factor float32) *levels.Node {
	x, y := float32(e.Transform.X), float32(e.Transform.Y)
	if c.settings.CorrectFactorPosition {
		x /= 1 / factor
		y /= 1 / factor
	}
	p := Point{X: x * UnitScale, Y: -y * UnitScale}
	if e.Sprite == nil {
		n := levels.NewNode("Object", "Name", NormalizeName(e.Name))
		return setPosition(n, p)
	}
	return imageNodeAt(e, p)
}
