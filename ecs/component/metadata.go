package component

type RespawnSettings struct {
	RespawnName     string
	TriggerName     string
	SpawnModel      string
	DelaySeconds    float64
	RespawnOnScreen bool
}

var RespawnSettingsComponent = NewComponent[RespawnSettings]()

type SpawnSettings struct {
	SpawnName       string
	SpawnAnimation  string
	RefersToRespawn bool
}

var SpawnSettingsComponent = NewComponent[SpawnSettings]()

// TriggerSettings holds raw child markup spliced into the trigger's Content.
type TriggerSettings struct {
	Content string
}

var TriggerSettingsComponent = NewComponent[TriggerSettings]()

type ModelProperties struct {
	Type        int
	LifeTime    string
	UseLifeTime bool
}

var ModelPropertiesComponent = NewComponent[ModelProperties]()

// AnimationProperties values are emitted verbatim.
type AnimationProperties struct {
	Width        string
	Height       string
	Type         string
	Direction    string
	Acceleration string
	ScaleX       string
	ScaleY       string
	Time         string
}

var AnimationPropertiesComponent = NewComponent[AnimationProperties]()

type CustomZoom struct {
	ZoomAmount int
}

var CustomZoomComponent = NewComponent[CustomZoom]()

const MaxMoveIntervals = 5

type MoveInterval struct {
	Enabled  bool
	Duration float64
	Delay    float64
	SupportX float64
	SupportY float64
	MoveX    float64
	MoveY    float64
}

type DynamicTransform struct {
	Name      string
	Intervals [MaxMoveIntervals]MoveInterval
}

var DynamicTransformComponent = NewComponent[DynamicTransform]()

type DynamicTrigger struct {
	TransformName string
	AIAllowed     int
	PlaySound     bool
	Sound         string
}

var DynamicTriggerComponent = NewComponent[DynamicTrigger]()
