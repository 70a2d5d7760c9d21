package cannon

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-tetrix/internal/config"
	"github.com/vovakirdan/tui-tetrix/internal/core"
)

// Fixed geometry of the range, in field units.
const (
	barrelLength = 52 // Distance from the pivot to the barrel tip

	shotSize = 6

	targetW = 20
	targetH = 10

	barrierX = 145
	barrierW = 15
	barrierH = 99
)

// Field is the shooting range: a cannon pivoting at the bottom-left
// corner, a target and an optional barrier.
//
// Physics use field units with y measured up from the ground. Collision
// rectangles are in screen orientation (y down), which is what core.Rect
// expects; toScreenY converts between them.
type Field struct {
	width  int
	height int

	minAngle int
	maxAngle int
	gravity  float64
	timeStep float64 // Shot clock steps per unit of flight time

	angle int
	force int

	shooting   bool
	timerCount int
	shootAngle int
	shootForce int

	targetX int
	targetY int
	barrier bool

	gameEnded bool

	rng       *rand.Rand
	listeners []func(Event)
}

// NewField creates a field with the cannon at 45 degrees and no force.
func NewField(cfg config.CannonConfig, rng *rand.Rand) *Field {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	f := &Field{
		width:    cfg.Field.Width,
		height:   cfg.Field.Height,
		minAngle: cfg.Barrel.MinAngle,
		maxAngle: cfg.Barrel.MaxAngle,
		gravity:  cfg.Physics.Gravity,
		timeStep: cfg.Physics.TimeScale,
		barrier:  cfg.Gameplay.Barrier,
		angle:    45,
		rng:      rng,
	}
	if f.timeStep <= 0 {
		f.timeStep = 20
	}
	f.angle = core.Clamp(f.angle, f.minAngle, f.maxAngle)
	f.NewTarget()
	return f
}

// Subscribe registers fn to receive every event the field raises.
func (f *Field) Subscribe(fn func(Event)) {
	f.listeners = append(f.listeners, fn)
}

func (f *Field) emit(e Event) {
	for _, fn := range f.listeners {
		fn(e)
	}
}

func (f *Field) Angle() int { return f.angle }
func (f *Field) Force() int { return f.force }

// SetAngle clamps the angle to the barrel limits and reports a change.
func (f *Field) SetAngle(angle int) {
	angle = core.Clamp(angle, f.minAngle, f.maxAngle)
	if angle == f.angle {
		return
	}
	f.angle = angle
	f.emit(AngleChanged{Angle: angle})
}

// SetForce sets the muzzle velocity. Negative values become zero.
func (f *Field) SetForce(force int) {
	if force < 0 {
		force = 0
	}
	if force == f.force {
		return
	}
	f.force = force
	f.emit(ForceChanged{Force: force})
}

// Shoot fires with the current angle and force. It does nothing while a
// shot is in flight or after the game has ended.
func (f *Field) Shoot() bool {
	if f.shooting || f.gameEnded {
		return false
	}
	f.timerCount = 0
	f.shootAngle = f.angle
	f.shootForce = f.force
	f.shooting = true
	f.emit(CanShoot{Can: false})
	return true
}

// NewTarget moves the target to a random spot right of the barrier.
func (f *Field) NewTarget() {
	f.targetX = 200 + f.rng.Intn(190)
	f.targetY = 10 + f.rng.Intn(255)
}

// SetGameOver ends the round, dropping any shot in flight.
func (f *Field) SetGameOver() {
	if f.gameEnded {
		return
	}
	f.shooting = false
	f.gameEnded = true
}

// RestartGame clears the game-over flag so shooting is possible again.
func (f *Field) RestartGame() {
	f.shooting = false
	f.gameEnded = false
	f.emit(CanShoot{Can: true})
}

// MoveShot advances the shot by one clock step and resolves collisions:
// touching the target is a hit; leaving the field to the right or below,
// or touching the barrier, is a miss.
func (f *Field) MoveShot() {
	if !f.shooting {
		return
	}
	f.timerCount++
	r := f.ShotRect()

	switch {
	case r.Intersects(f.TargetRect()):
		f.shooting = false
		f.emit(Hit{})
		f.emit(CanShoot{Can: true})
	case r.X > f.width || r.Y > f.height || (f.barrier && r.Intersects(f.BarrierRect())):
		f.shooting = false
		f.emit(Missed{})
		f.emit(CanShoot{Can: true})
	}
}

// ShotPosition returns the shot center in field units (y up) at the
// current clock step.
func (f *Field) ShotPosition() (x, y float64) {
	t := float64(f.timerCount) / f.timeStep
	v := float64(f.shootForce)
	rad := float64(f.shootAngle) * math.Pi / 180

	x0 := barrelLength * math.Cos(rad)
	y0 := barrelLength * math.Sin(rad)
	x = x0 + v*math.Cos(rad)*t
	y = y0 + v*math.Sin(rad)*t - 0.5*f.gravity*t*t
	return x, y
}

func (f *Field) toScreenY(y int) int {
	return f.height - 1 - y
}

// ShotRect returns the shot bounds in screen orientation.
func (f *Field) ShotRect() core.Rect {
	x, y := f.ShotPosition()
	return core.CenteredRect(int(math.Round(x)), f.toScreenY(int(math.Round(y))), shotSize, shotSize)
}

// TargetRect returns the target bounds in screen orientation.
func (f *Field) TargetRect() core.Rect {
	return core.CenteredRect(f.targetX, f.toScreenY(f.targetY), targetW, targetH)
}

// BarrierRect returns the barrier bounds in screen orientation.
func (f *Field) BarrierRect() core.Rect {
	return core.NewRect(barrierX, f.height-1-barrierH, barrierW, barrierH)
}

// BarrelTip returns the barrel tip in field units (y up).
func (f *Field) BarrelTip() (x, y float64) {
	rad := float64(f.angle) * math.Pi / 180
	return barrelLength * math.Cos(rad), barrelLength * math.Sin(rad)
}

// Target returns the target center in field units (y up).
func (f *Field) Target() (x, y int) { return f.targetX, f.targetY }

func (f *Field) Width() int { return f.width }
func (f *Field) Height() int { return f.height }
func (f *Field) HasBarrier() bool { return f.barrier }
func (f *Field) IsShooting() bool { return f.shooting }
func (f *Field) GameOver() bool { return f.gameEnded }
func (f *Field) TimerCount() int { return f.timerCount }
