package buildmap

import (
	"strconv"

	"github.com/milk9111/vectorbuild/ecs/component"
	"github.com/milk9111/vectorbuild/levels"
)

// dynamicNode emits a moving group: the transformation followed by the
// group's direct children, compiled into the group's own Content.
func (c *compiler) dynamicNode(e *Entity) *levels.Node {
	dt := e.Dynamic

	move := levels.NewNode("Move")
	for i, iv := range dt.Intervals {
		if !iv.Enabled {
			continue
		}
		move.Append(moveIntervalNode(i+1, iv))
	}
	obj := levels.NewNode("Object", "X", "0", "Y", "0").Append(
		levels.NewNode("Properties").Append(
			levels.NewNode("Dynamic").Append(
				levels.NewNode("Transformation", "Name", dt.Name).Append(move),
			),
		),
	)

	content := levels.NewNode("Content")
	out := sink{content: content, nested: true, factor: 1}
	children := c.scene.Children(e)

	var images []*Entity
	for _, child := range children {
		if child.Tag == component.TagImage {
			images = append(images, child)
		}
	}
	for _, img := range sortByOrder(images) {
		c.emit(img, out)
	}
	for _, child := range children {
		if child.Tag == component.TagImage {
			continue
		}
		c.emit(child, out)
	}
	return obj.Append(content)
}

func moveIntervalNode(number int, iv component.MoveInterval) *levels.Node {
	supportNumber := "2"
	if number == 1 {
		supportNumber = "1"
	}
	support := ToOutputUnits(iv.SupportX, iv.SupportY)
	finish := ToOutputUnits(iv.MoveX, iv.MoveY)

	return levels.NewNode("MoveInterval",
		"Number", strconv.Itoa(number),
		"FramesToMove", formatFrames(iv.Duration),
		"Delay", formatFrames(iv.Delay),
	).Append(
		levels.NewNode("Point", "Name", "Start", "X", "0.0", "Y", "0.0"),
		setPosition(levels.NewNode("Point", "Name", "Support", "Number", supportNumber), support),
		setPosition(levels.NewNode("Point", "Name", "Finish"), finish),
	)
}
