package buildmap

import (
	"fmt"

	"github.com/milk9111/vectorbuild/ecs/component"
	"github.com/milk9111/vectorbuild/levels"
)

func spawnNode(e *Entity) *levels.Node {
	n := setPosition(levels.NewNode("Spawn"), e.Position())
	return n.SetAttr("Name", e.Spawn.SpawnName).SetAttr("Animation", e.Spawn.SpawnAnimation)
}

// respawnTargets scans every spawn in the scene, not only those near the
// respawn, for points that name it.
func (c *compiler) respawnTargets(respawn *Entity) []*Entity {
	var out []*Entity
	for _, s := range c.scene.Spawns() {
		if s == respawn || !s.Spawn.RefersToRespawn {
			continue
		}
		if s.Spawn.SpawnName == respawn.Respawn.RespawnName {
			out = append(out, s)
		}
	}
	return out
}

// respawnNode emits the respawn group. Zero targets is reported but still
// produces the group.
func (c *compiler) respawnNode(e *Entity) *levels.Node {
	r := e.Respawn
	content := levels.NewNode("Content")

	targets := c.respawnTargets(e)
	if len(targets) == 0 {
		c.report(entityError(e, ErrUnresolvedReference,
			fmt.Sprintf("no spawn refers to respawn %q", r.RespawnName), nil))
	}
	for _, t := range targets {
		content.Append(spawnNode(t))
	}

	trigger := triggerHeader(e, r.TriggerName)
	trigger.Append(levels.NewNode("Properties").Append(
		levels.NewNode("Static").Append(
			levels.NewNode("Selection", "Choice", "AITriggers", "Variant", levels.CommonModeVariant),
		),
	))

	init := levels.NewNode("Init").Append(
		setVariable("$Active", "1"),
		setVariable("$Node", "COM"),
		setVariable("Spawn", r.RespawnName),
		setVariable("Frames", formatFrames(r.DelaySeconds)),
		setVariable("SpawnModel", r.SpawnModel),
		setVariable("Reversed", "0"),
		setVariable("$AI", "0"),
		setVariable("Flag1", "0"),
	)
	triggerContent := levels.NewNode("Content").Append(init)
	if r.RespawnOnScreen {
		triggerContent.Append(
			levels.NewNode("Loop", "Template", "Respawn_OnScreen.Player"),
			levels.NewNode("Loop", "Template", "Respawn_OnScreen.Timeout"),
		)
	} else {
		triggerContent.Append(levels.NewNode("Template", "Name", "Respawn_OnScreen"))
	}
	trigger.Append(triggerContent)
	content.Append(trigger)

	return levels.NewNode("Object", "X", "0", "Y", "0").Append(content)
}

// checkOrphanSpawns reports spawns that wait on a respawn nobody declares.
// They are never emitted.
func (c *compiler) checkOrphanSpawns() {
	declared := make(map[string]bool)
	for _, e := range c.scene.Tagged(component.TagSpawn) {
		if e.Respawn != nil {
			declared[e.Respawn.RespawnName] = true
		}
	}
	for _, s := range c.scene.Spawns() {
		if s.Spawn.RefersToRespawn && s.Respawn == nil && !declared[s.Spawn.SpawnName] {
			c.report(entityError(s, ErrUnresolvedReference,
				fmt.Sprintf("respawn %q is not declared", s.Spawn.SpawnName), nil))
		}
	}
}
