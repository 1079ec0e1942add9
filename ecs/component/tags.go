package component

import (
	"fmt"
	"strings"
)

// Tag is the closed set of scene entity kinds the level compiler knows.
type Tag uint8

const (
	TagUntagged Tag = iota
	TagObject
	TagImage
	TagTopImage
	TagPlatform
	TagTrapezoid
	TagTrigger
	TagArea
	TagModel
	TagAnimation
	TagDynamic
	TagSpawn
	TagCamera
	TagBackdrop
)

var tagNames = [...]string{
	TagUntagged:  "Untagged",
	TagObject:    "Object",
	TagImage:     "Image",
	TagTopImage:  "Top Image",
	TagPlatform:  "Platform",
	TagTrapezoid: "Trapezoid",
	TagTrigger:   "Trigger",
	TagArea:      "Area",
	TagModel:     "Model",
	TagAnimation: "Animation",
	TagDynamic:   "Dynamic",
	TagSpawn:     "Spawn",
	TagCamera:    "Camera",
	TagBackdrop:  "Backdrop",
}

func (t Tag) String() string {
	if int(t) < len(tagNames) {
		return tagNames[t]
	}
	return fmt.Sprintf("Tag(%d)", uint8(t))
}

// ParseTag accepts tag names case-insensitively, with or without spaces.
// An empty name is Untagged.
func ParseTag(name string) (Tag, error) {
	key := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), " ", ""))
	if key == "" {
		return TagUntagged, nil
	}
	for i, n := range tagNames {
		if strings.ToLower(strings.ReplaceAll(n, " ", "")) == key {
			return Tag(i), nil
		}
	}
	return TagUntagged, fmt.Errorf("component: unknown tag %q", name)
}

func (t Tag) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Tag) UnmarshalText(b []byte) error {
	parsed, err := ParseTag(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Identity carries the display name and tag of a scene entity.
type Identity struct {
	Name string
	Tag  Tag
}

var IdentityComponent = NewComponent[Identity]()
