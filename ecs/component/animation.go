package component

type AnimationDef struct {
	Name         string  `yaml:"name"`
	Sheet        string  `yaml:"sheet"`
	FrameCount   int     `yaml:"frame_count"`
	FrameW       float64 `yaml:"frame_w"`
	FrameH       float64 `yaml:"frame_h"`
	FrameSeconds float64 `yaml:"frame_seconds"`
	Loop         bool    `yaml:"loop"`
}

type Animation struct {
	Defs    map[string]AnimationDef
	Current string
	Frame   int
	Timer   float64
	Playing bool
}

// Play switches to the named clip from its first frame. Playing the current clip
// again is a no-op.
func (a *Animation) Play(name string) bool {
	if a == nil {
		return false
	}
	if _, ok := a.Defs[name]; !ok {
		return false
	}
	if a.Current == name && a.Playing {
		return true
	}
	a.Current = name
	a.Frame = 0
	a.Timer = 0
	a.Playing = true
	return true
}

var AnimationComponent = NewComponent[Animation]()
