package systems

import (
	"github.com/lixenwraith/sky-pilot/engine"
)

// newTestState returns a fresh run with zero speed so entities stay where they are placed
func newTestState() *engine.State {
	s := engine.NewState(1)
	s.Speed = 0
	return s
}

func addEntity(s *engine.State, typ engine.EntityType, x, y, z, w, h float64, hp int) *engine.Entity {
	e := &engine.Entity{
		ID:     s.NextID(),
		Pos:    engine.Point3D{X: x, Y: y, Z: z},
		Type:   typ,
		Width:  w,
		Height: h,
		Active: true,
		HP:     hp,
		MaxHP:  hp,
	}
	s.Entities = append(s.Entities, e)
	return e
}

func eventTypes(s *engine.State) []engine.EventType {
	var out []engine.EventType
	for _, ev := range s.Events.Peek() {
		out = append(out, ev.Type)
	}
	return out
}

func hasText(s *engine.State, text string) bool {
	for _, t := range s.Texts {
		if t.Text == text {
			return true
		}
	}
	return false
}
