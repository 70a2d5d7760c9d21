package cannon

// Event is a notification raised by a Field or Board.
type Event interface {
	cannonEvent()
}

type AngleChanged struct{ Angle int }
type ForceChanged struct{ Force int }

// Hit means the shot in flight touched the target.
type Hit struct{}

// Missed means the shot left the field or struck the barrier.
type Missed struct{}

// CanShoot reports whether a new shot may be fired.
type CanShoot struct{ Can bool }

// HitsChanged and ShotsLeftChanged come from the Board.
type HitsChanged struct{ Hits int }
type ShotsLeftChanged struct{ Shots int }

func (AngleChanged) cannonEvent() {}
func (ForceChanged) cannonEvent() {}
func (Hit) cannonEvent() {}
func (Missed) cannonEvent() {}
func (CanShoot) cannonEvent() {}
func (HitsChanged) cannonEvent() {}
func (ShotsLeftChanged) cannonEvent() {}
