package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

type CameraTag struct{}

var CameraTagComponent = NewComponent[CameraTag]()

// SolidTag marks surfaces the slime can stand on.
type SolidTag struct{}

var SolidTagComponent = NewComponent[SolidTag]()

type PotTag struct{}

var PotTagComponent = NewComponent[PotTag]()

type KeyTag struct{}

var KeyTagComponent = NewComponent[KeyTag]()
