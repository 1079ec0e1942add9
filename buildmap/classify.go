package buildmap

import (
	"regexp"

	"github.com/milk9111/vectorbuild/ecs/component"
)

// cameraRigName marks the scene's camera rig. It never produces a kind node
// except the Camera marker for an Object.
const cameraRigName = "Camera"

const (
	trapezoidType1 = "trapezoid_type1"
	trapezoidType2 = "trapezoid_type2"
)

var duplicateSuffix = regexp.MustCompile(` \((.*?)\)`)

// NormalizeName strips the " (n)" suffixes editors add to duplicated
// entities.
func NormalizeName(name string) string {
	return duplicateSuffix.ReplaceAllString(name, "")
}

// rule selects the emitter for a classified entity.
type rule uint8

const (
	ruleSkip rule = iota
	ruleObject
	ruleCameraMarker
	ruleImage
	rulePlatform
	ruleTrapezoid
	ruleArea
	ruleTrigger
	ruleDynamicTrigger
	ruleModel
	ruleAnimation
	ruleBackdrop
	ruleSpawn
	ruleRespawn
	ruleCameraZoom
	ruleDynamic
)

var ruleNames = [...]string{
	ruleSkip:           "skip",
	ruleObject:         "object",
	ruleCameraMarker:   "camera",
	ruleImage:          "image",
	rulePlatform:       "platform",
	ruleTrapezoid:      "trapezoid",
	ruleArea:           "area",
	ruleTrigger:        "trigger",
	ruleDynamicTrigger: "dynamic trigger",
	ruleModel:          "model",
	ruleAnimation:      "animation",
	ruleBackdrop:       "backdrop",
	ruleSpawn:          "spawn",
	ruleRespawn:        "respawn",
	ruleCameraZoom:     "camera zoom",
	ruleDynamic:        "dynamic",
}

func (r rule) String() string {
	if int(r) < len(ruleNames) {
		return ruleNames[r]
	}
	return "unknown"
}

// classify picks the rule for e. nested is true when e is a direct child of
// a Dynamic group; only Triggers and Dynamic groups classify differently
// there. A non-nil error means the entity cannot be emitted.
func classify(e *Entity, nested bool) (rule, *EntityError) {
	if e.Name == cameraRigName {
		if e.Tag == component.TagObject {
			return ruleCameraMarker, nil
		}
		return ruleSkip, nil
	}

	switch e.Tag {
	case component.TagUntagged:
		return ruleSkip, nil
	case component.TagObject:
		return ruleObject, nil
	case component.TagImage:
		return ruleImage, nil
	case component.TagTopImage:
		return ruleImage, nil
	case component.TagPlatform:
		return rulePlatform, nil
	case component.TagTrapezoid:
		switch NormalizeName(e.Name) {
		case trapezoidType1, trapezoidType2:
			return ruleTrapezoid, nil
		}
		return ruleSkip, nil
	case component.TagArea:
		return ruleArea, nil
	case component.TagTrigger:
		if nested && e.DynamicTrigger != nil {
			return ruleDynamicTrigger, nil
		}
		return ruleTrigger, nil
	case component.TagModel:
		if e.Model == nil {
			return ruleSkip, missing(e, "model_properties")
		}
		return ruleModel, nil
	case component.TagAnimation:
		if e.Animation == nil {
			return ruleSkip, missing(e, "animation_properties")
		}
		return ruleAnimation, nil
	case component.TagBackdrop:
		return ruleBackdrop, nil
	case component.TagSpawn:
		if e.Respawn != nil {
			return ruleRespawn, nil
		}
		if e.Spawn == nil {
			return ruleSkip, missing(e, "spawn or respawn")
		}
		if e.Spawn.RefersToRespawn {
			// emitted inside the respawn that names it
			return ruleSkip, nil
		}
		return ruleSpawn, nil
	case component.TagCamera:
		if e.Zoom == nil {
			return ruleSkip, missing(e, "custom_zoom")
		}
		return ruleCameraZoom, nil
	case component.TagDynamic:
		if nested {
			return ruleSkip, entityError(e, ErrCyclicDynamic, "", nil)
		}
		if e.Dynamic == nil {
			return ruleSkip, missing(e, "dynamic_transform")
		}
		return ruleDynamic, nil
	}
	return ruleSkip, nil
}

func missing(e *Entity, record string) *EntityError {
	return entityError(e, ErrMissingMetadata, record+" required", nil)
}

func entityError(e *Entity, kind error, detail string, err error) *EntityError {
	return &EntityError{
		Entity: e.Handle,
		Name:   e.Name,
		Tag:    e.Tag,
		Kind:   kind,
		Detail: detail,
		Err:    err,
	}
}
