package buildmap

import (
	"log"
	"strconv"

	"github.com/milk9111/vectorbuild/levels"
)

const (
	DefaultMapName    = "DOWNTOWN_STORY_02"
	defaultPlayerSkin = "1"
	defaultHunterSkin = "hunter"
)

// Settings are the level-wide values applied before any entity is emitted,
// plus the compiler switches.
type Settings struct {
	MapName               string     `yaml:"map_name"`
	CorrectFactorPosition bool       `yaml:"correct_factor_position"`
	DebugObjectWriting    bool       `yaml:"debug_object_writing"`
	Background            Background `yaml:"background"`
	Music                 Music      `yaml:"music"`
	Roster                Roster     `yaml:"roster"`
}

type Background struct {
	ClassName string `yaml:"class_name"`
	Width     string `yaml:"width"`
	Height    string `yaml:"height"`
}

type Music struct {
	Name   string `yaml:"name"`
	Volume string `yaml:"volume"`
}

// Roster configures the Models block. With Custom set the fragment replaces
// the template roster entirely.
type Roster struct {
	Custom string      `yaml:"custom"`
	Player PlayerModel `yaml:"player"`
	Hunter HunterModel `yaml:"hunter"`
}

type PlayerModel struct {
	Name      string  `yaml:"name"`
	SpawnTime float64 `yaml:"spawn_time"`
	SpawnName string  `yaml:"spawn_name"`
	Skin      string  `yaml:"skin"`
}

type HunterModel struct {
	Name         string  `yaml:"name"`
	SpawnTime    float64 `yaml:"spawn_time"`
	SpawnName    string  `yaml:"spawn_name"`
	AI           int     `yaml:"ai"`
	Icon         bool    `yaml:"icon"`
	Skin         string  `yaml:"skin"`
	TrickAllowed bool    `yaml:"trick_allowed"`
	AllowedSpawn string  `yaml:"allowed_spawn"`
}

func DefaultSettings() Settings {
	return Settings{
		MapName:               DefaultMapName,
		CorrectFactorPosition: true,
		Background: Background{
			ClassName: "v_bg",
			Width:     "2121",
			Height:    "1116",
		},
		Music: Music{Name: "music_dinamic", Volume: "0.3"},
		Roster: Roster{
			Player: PlayerModel{
				Name:      "Player",
				SpawnName: "PlayerSpawn",
				Skin:      defaultPlayerSkin,
			},
			Hunter: HunterModel{
				Name:         "Hunter",
				SpawnTime:    0.8,
				SpawnName:    "DefaultSpawn",
				AI:           1,
				Icon:         true,
				AllowedSpawn: "Respawn",
				Skin:         defaultHunterSkin,
			},
		},
	}
}

// LevelFileName is the name the runtime loads this level under.
func (s Settings) LevelFileName() string {
	name := s.MapName
	if name == "" {
		name = DefaultMapName
	}
	return name + ".xml"
}

func (c *compiler) applyLevelSettings() {
	s := c.settings

	for _, img := range c.doc.Content(levels.FactorBackground).ChildrenNamed("Image") {
		img.SetAttr("ClassName", s.Background.ClassName).
			SetAttr("Width", s.Background.Width).
			SetAttr("Height", s.Background.Height)
	}

	c.doc.Music().SetAttr("Name", s.Music.Name).SetAttr("Volume", s.Music.Volume)

	models := c.doc.Models()
	if s.Roster.Custom != "" {
		nodes, err := levels.ParseFragment(s.Roster.Custom)
		if err != nil {
			c.report(&EntityError{Kind: ErrMalformedFragment, Detail: "custom roster", Err: err})
			return
		}
		models.Children = nodes
		return
	}

	for _, m := range models.ChildrenNamed("Model") {
		name, _ := m.Attr("Name")
		switch {
		case name == "Player" || name == s.Roster.Player.Name:
			c.applyPlayer(m)
		case name == "Hunter" || name == s.Roster.Hunter.Name:
			c.applyHunter(m)
		}
	}
}

func (c *compiler) applyPlayer(m *levels.Node) {
	p := c.settings.Roster.Player
	skin := p.Skin
	if skin == "" {
		log.Printf("buildmap: player skin not set, using %q", defaultPlayerSkin)
		skin = defaultPlayerSkin
	}
	m.SetAttr("Name", p.Name).
		SetAttr("Time", FormatFloat(float32(p.SpawnTime))).
		SetAttr("BirthSpawn", p.SpawnName).
		SetAttr("Skins", skin)
}

func (c *compiler) applyHunter(m *levels.Node) {
	h := c.settings.Roster.Hunter
	skin := h.Skin
	if skin == "" {
		log.Printf("buildmap: hunter skin not set, using %q", defaultHunterSkin)
		skin = defaultHunterSkin
	}
	icon := "0"
	if h.Icon {
		icon = "1"
	}
	m.SetAttr("Name", h.Name).
		SetAttr("Time", FormatFloat(float32(h.SpawnTime))).
		SetAttr("BirthSpawn", h.SpawnName).
		SetAttr("AI", strconv.Itoa(h.AI)).
		SetAttr("Icon", icon).
		SetAttr("Skins", skin)
	if h.AllowedSpawn != "" {
		m.SetAttr("AllowedSpawns", h.AllowedSpawn)
	}
	if h.TrickAllowed {
		m.SetAttr("Trick", "1")
	}
}
