package buildmap

import (
	"strconv"

	"github.com/milk9111/vectorbuild/levels"
)

func setPosition(n *levels.Node, p Point) *levels.Node {
	return n.SetAttr("X", FormatFloat(p.X)).SetAttr("Y", FormatFloat(p.Y))
}

// setSize adds Width and Height when the entity has a sprite.
func setSize(n *levels.Node, e *Entity) *levels.Node {
	if e.Sprite == nil {
		return n
	}
	sz := spriteSize(e.Transform, e.Sprite)
	return n.SetAttr("Width", FormatFloat(sz.Width)).SetAttr("Height", FormatFloat(sz.Height))
}

func objectNode(e *Entity) *levels.Node {
	n := levels.NewNode("Object", "Name", NormalizeName(e.Name))
	return setPosition(n, e.Position())
}

func cameraMarkerNode(e *Entity) *levels.Node {
	return setPosition(levels.NewNode("Camera"), e.Position())
}

func imageNode(e *Entity) *levels.Node {
	return imageNodeAt(e, e.Position())
}

// imageNodeAt builds an Image at p. Sprite-less entities get position and
// class name only.
func imageNodeAt(e *Entity, p Point) *levels.Node {
	n := setPosition(levels.NewNode("Image"), p)
	n.SetAttr("ClassName", NormalizeName(e.Name))
	if e.Sprite == nil {
		return n
	}

	sz := spriteSize(e.Transform, e.Sprite)
	n.SetAttr("Width", FormatFloat(sz.Width)).
		SetAttr("Height", FormatFloat(sz.Height)).
		SetAttr("NativeX", FormatFloat(sz.NativeWidth)).
		SetAttr("NativeY", FormatFloat(sz.NativeHeight))

	static := levels.NewNode("Static")
	if NeedsMatrix(e.Transform.Rotation, e.Sprite.FlipX, e.Sprite.FlipY) {
		m := AffineMatrix(e.Transform.Rotation, sz.Width, sz.Height, e.Sprite.FlipX, e.Sprite.FlipY)
		static.Append(levels.NewNode("Matrix",
			"A", formatMatrixEntry(m.A),
			"B", formatMatrixEntry(m.B),
			"C", formatMatrixEntry(m.C),
			"D", formatMatrixEntry(m.D),
			"Tx", formatMatrixEntry(m.Tx),
			"Ty", formatMatrixEntry(m.Ty),
		))
	}
	if e.Sprite.Tinted() {
		static.Append(levels.NewNode("StartColor", "Color", formatColor(e.Sprite)))
	}
	if len(static.Children) > 0 {
		n.Append(levels.NewNode("Properties").Append(static))
	}
	return n
}

func platformNode(e *Entity) *levels.Node {
	p := e.Position()
	n := levels.NewNode("Platform",
		"X", formatPlatformCoord(p.X),
		"Y", formatPlatformCoord(p.Y),
	)
	if e.Sprite != nil {
		sz := spriteSize(e.Transform, e.Sprite)
		n.SetAttr("Width", formatRoundedInt(sz.Width)).SetAttr("Height", formatRoundedInt(sz.Height))
	}
	return n
}

// trapezoidNode expects a name already accepted by classify.
func trapezoidNode(e *Entity) *levels.Node {
	n := setPosition(levels.NewNode("Trapezoid"), e.Position())
	typ := "1"
	if NormalizeName(e.Name) == trapezoidType2 {
		typ = "2"
	}
	if e.Sprite != nil {
		sz := spriteSize(e.Transform, e.Sprite)
		n.SetAttr("Width", FormatFloat(sz.Width))
		if typ == "1" {
			n.SetAttr("Height", "1").SetAttr("Height1", FormatFloat(sz.Height+1))
		} else {
			n.SetAttr("Height", FormatFloat(sz.Height+1)).SetAttr("Height1", "1")
		}
	}
	return n.SetAttr("Type", typ)
}

// areaNode matches catch areas on the raw name, so a duplicated
// "TriggerCatch (1)" is a plain animation area.
func areaNode(e *Entity) *levels.Node {
	n := levels.NewNode("Area", "Name", NormalizeName(e.Name))
	setSize(setPosition(n, e.Position()), e)
	switch e.Name {
	case "TriggerCatch", "TriggerCatchFront":
		n.SetAttr("Type", "Catch").SetAttr("Distance", "300")
	case "TriggerCatchFast":
		n.SetAttr("Type", "Catch").SetAttr("Distance", "0")
	default:
		n.SetAttr("Type", "Animation")
	}
	return n
}

func triggerHeader(e *Entity, name string) *levels.Node {
	n := levels.NewNode("Trigger", "Name", name)
	return setSize(setPosition(n, e.Position()), e)
}

func triggerNode(e *Entity) (*levels.Node, *EntityError) {
	n := triggerHeader(e, NormalizeName(e.Name))
	if e.TriggerSettings == nil {
		return n, nil
	}
	children, err := levels.ParseFragment(e.TriggerSettings.Content)
	if err != nil {
		return nil, entityError(e, ErrMalformedFragment, "trigger_settings content", err)
	}
	return n.Append(levels.NewNode("Content").Append(children...)), nil
}

func modelNode(e *Entity) *levels.Node {
	m := e.Model
	n := setPosition(levels.NewNode("Model"), e.Position())
	n.SetAttr("Type", strconv.Itoa(m.Type)).SetAttr("ClassName", NormalizeName(e.Name))
	if m.UseLifeTime {
		n.SetAttr("LifeTime", m.LifeTime)
	}
	return n
}

func animationNode(e *Entity) *levels.Node {
	a := e.Animation
	n := setPosition(levels.NewNode("Animation"), e.Position())
	n.SetAttr("Width", a.Width).SetAttr("Height", a.Height).SetAttr("Type", a.Type)
	if a.Direction != "" {
		n.SetAttr("Direction", a.Direction)
	}
	if a.Acceleration != "" {
		n.SetAttr("Acceleration", a.Acceleration)
	}
	n.SetAttr("ScaleX", a.ScaleX).SetAttr("ScaleY", a.ScaleY)
	if a.Time != "" {
		n.SetAttr("Time", a.Time)
	}
	return n.SetAttr("ClassName", NormalizeName(e.Name))
}

func setVariable(name, value string) *levels.Node {
	return levels.NewNode("SetVariable", "Name", name, "Value", value)
}

func cameraZoomNode(e *Entity) *levels.Node {
	init := levels.NewNode("Init").Append(
		setVariable("$Active", "1"),
		setVariable("$Node", "COM"),
		setVariable("Zoom", strconv.Itoa(e.Zoom.ZoomAmount)),
		setVariable("$AI", "0"),
		setVariable("Flag1", "0"),
	)
	content := levels.NewNode("Content").Append(
		init,
		levels.NewNode("Template", "Name", "CameraZoom"),
	)
	return triggerHeader(e, NormalizeName(e.Name)).Append(content)
}

func dynamicTriggerNode(e *Entity) *levels.Node {
	dt := e.DynamicTrigger
	init := levels.NewNode("Init").Append(
		setVariable("$Active", "1"),
		setVariable("$AI", strconv.Itoa(dt.AIAllowed)),
		setVariable("$Node", "COM"),
	)
	if dt.PlaySound {
		init.Append(setVariable("Sound", dt.Sound))
	}
	init.Append(setVariable("Flag1", "0"))

	actions := levels.NewNode("Actions").Append(
		levels.NewNode("ActionBlock", "Template", "FreqUsed.SwitchOff"),
		levels.NewNode("Transform", "Name", dt.TransformName),
	)
	if dt.PlaySound {
		actions.Append(levels.NewNode("ActionBlock", "Template", "CommonLib.Sound"))
	}
	loop := levels.NewNode("Loop").Append(
		levels.NewNode("Events").Append(levels.NewNode("EventBlock", "Template", "FreqUsed.Enter")),
		actions,
	)
	return triggerHeader(e, NormalizeName(e.Name)).Append(levels.NewNode("Content").Append(init, loop))
}
