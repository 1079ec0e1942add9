// Package buildmap compiles a scene into a Vector level document.
//
// A pass is single threaded and reads the scene only. Problems with single
// entities are collected as Diagnostics; the document is returned either way
// and holds everything that could be emitted.
package buildmap

import (
	"log"

	"github.com/milk9111/vectorbuild/levels"
)

// sink is where an emitter writes: a Content node plus whether it belongs
// to a Dynamic group and the band factor applied to backdrops.
type sink struct {
	content *levels.Node
	nested  bool
	factor  float32
}

type compiler struct {
	scene    Scene
	settings Settings
	doc      *levels.Document
	diags    Diagnostics
}

// Compile runs one full pass over scene. The returned error is nil, a
// Diagnostics value, or a template failure (in which case the document is
// nil).
func Compile(scene Scene, settings Settings) (*levels.Document, error) {
	doc, err := levels.NewDocument()
	if err != nil {
		return nil, err
	}
	c := &compiler{scene: scene, settings: settings, doc: doc}

	c.applyLevelSettings()
	c.compileActive()
	c.compileBackdrops()
	c.compileForeground()
	c.checkOrphanSpawns()

	if len(c.diags) > 0 {
		return doc, c.diags
	}
	return doc, nil
}

func (c *compiler) report(e *EntityError) {
	c.diags = append(c.diags, e)
}

func (c *compiler) debugf(format string, args ...any) {
	if c.settings.DebugObjectWriting {
		log.Printf("buildmap: "+format, args...)
	}
}

// emit classifies e and appends its node to out.
func (c *compiler) emit(e *Entity, out sink) {
	r, derr := classify(e, out.nested)
	if derr != nil {
		c.report(derr)
		return
	}
	if r == ruleSkip {
		if out.nested {
			c.debugf("skipping %s %q inside dynamic group", e.Tag, e.Name)
		}
		return
	}
	c.debugf("writing %s: %s", r, NormalizeName(e.Name))

	var n *levels.Node
	switch r {
	case ruleObject:
		n = objectNode(e)
	case ruleCameraMarker:
		n = cameraMarkerNode(e)
	case ruleImage:
		n = imageNode(e)
	case rulePlatform:
		n = platformNode(e)
	case ruleTrapezoid:
		n = trapezoidNode(e)
	case ruleArea:
		n = areaNode(e)
	case ruleTrigger:
		n, derr = triggerNode(e)
	case ruleDynamicTrigger:
		n = dynamicTriggerNode(e)
	case ruleModel:
		n = modelNode(e)
	case ruleAnimation:
		n = animationNode(e)
	case ruleBackdrop:
		n = c.backdropNode(e, out.factor)
	case ruleSpawn:
		n = spawnNode(e)
	case ruleRespawn:
		n = c.respawnNode(e)
	case ruleCameraZoom:
		n = cameraZoomNode(e)
	case ruleDynamic:
		n = c.dynamicNode(e)
	}
	if derr != nil {
		c.report(derr)
		return
	}
	out.content.Append(n)
}
