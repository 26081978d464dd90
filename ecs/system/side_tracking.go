package system

import (
	"math"

	"github.com/milk9111/gravitylegacy/ecs"
	"github.com/milk9111/gravitylegacy/ecs/component"
	"github.com/milk9111/gravitylegacy/geom"
	"github.com/milk9111/gravitylegacy/logger"
	"github.com/sirupsen/logrus"
)

// contactSkin grows the slime box before classification so resting contacts,
// which barely overlap, still produce an overlap.
const contactSkin = 1.0

// SideTrackingSystem classifies this tick's grounding contacts into the slime's
// current side and keeps the airborne counters.
type SideTrackingSystem struct{}

func NewSideTrackingSystem() *SideTrackingSystem { return &SideTrackingSystem{} }

func (s *SideTrackingSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	events := w.Events().Collisions()
	ecs.ForEach2(w, component.SlimeComponent.Kind(), component.SurfaceContactComponent.Kind(), func(e ecs.Entity, slime *component.Slime, contact *component.SurfaceContact) {
		for _, evt := range events {
			if evt.A != e || !ecs.Has(w, evt.B, component.SolidTagComponent.Kind()) {
				continue
			}
			if evt.Kind == ecs.CollisionEnd {
				if contact.Count > 0 {
					contact.Count--
				}
				continue
			}
			contact.Count++

			out, ok := classifyContact(evt)
			if !ok {
				logger.Log.WithField("normal", [2]float64{evt.NormalX, evt.NormalY}).Debug("contact side ambiguous, ignored")
				continue
			}
			if out.Side != slime.CurrentSide {
				logger.Log.WithFields(logrus.Fields{
					"from": slime.CurrentSide.String(),
					"to":   out.Side.String(),
				}).Debug("slime side changed")
			}
			slime.CurrentSide = out.Side
			slime.TangentialExtent = out.OverlapLength
			slime.PenetrationDepth = out.PenetrationDepth
		}

		if contact.Count > 0 {
			slime.StallFrames = 0
		} else if slime.StallFrames < math.MaxUint8 {
			slime.StallFrames++
		}
		slime.IsJumping = slime.StallFrames > slime.AirborneFrames
	})
}

// classifyContact names the slime side touched in evt. The box test decides when the
// boxes overlap; bare touching contacts fall back to the contact normal.
func classifyContact(evt ecs.CollisionEvent) (geom.Outcome, bool) {
	out, ok := geom.Classify(evt.ABox.Grow(contactSkin), evt.BBox)
	if ok {
		out.PenetrationDepth = math.Max(0, out.PenetrationDepth-contactSkin)
	} else {
		out = geom.Outcome{Side: geom.SideFromNormal(evt.NormalX, evt.NormalY)}
	}
	if !out.Side.Directional() {
		return geom.Outcome{}, false
	}
	return out, true
}
