package lsystem

import (
	"errors"
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ErrStackUnderflow reports a ']' with no matching '[' in the interpreted
// symbol stream.
var ErrStackUnderflow = errors.New("turtle state stack underflow")

const deg2rad = float32(math.Pi / 180)

// The turtle starts facing up: plants grow along +Y. Yaw swings the heading
// about the local Z axis, pitch about local X, roll spins about the heading
// itself.
var (
	forwardAxis = rl.Vector3{Y: 1}
	yawAxis     = rl.Vector3{Z: 1}
	pitchAxis   = rl.Vector3{X: 1}
	rollAxis    = rl.Vector3{Y: 1}
)

// turtleState is an immutable position + orientation value. Transitions
// return a new state.
type turtleState struct {
	rot rl.Quaternion
	pos rl.Vector3
}

func (t turtleState) rotated(axis rl.Vector3, degrees float32) turtleState {
	step := rl.QuaternionFromAxisAngle(axis, degrees*deg2rad)
	t.rot = rl.QuaternionMultiply(t.rot, step) // local-space rotation, applied on the right
	return t
}

func (t turtleState) moved(distance float32) turtleState {
	heading := rl.Vector3RotateByQuaternion(forwardAxis, t.rot)
	t.pos = rl.Vector3Add(t.pos, rl.Vector3Scale(heading, distance))
	return t
}

type interpreterConfig struct {
	defaultAngle float32
	defaultStep  float32
	params       map[byte]float32
	orientation  rl.Quaternion
	position     rl.Vector3
}

// interpret walks the final symbol buffer once, driving the turtle and
// collecting geometry. A degenerate (zero-length) orientation quaternion is
// treated as unset and replaced with identity.
func interpret(buf []byte, cfg interpreterConfig) (*Result, error) {
	state := turtleState{rot: cfg.orientation, pos: cfg.position}
	if rl.QuaternionLength(state.rot) < 1e-6 {
		state.rot = rl.QuaternionIdentity()
	}

	res := &Result{}
	var stack []turtleState

	for i := 0; i < len(buf); i++ {
		sym := buf[i]
		arg, bound, skip := boundParam(buf, i, cfg.params)

		angle := cfg.defaultAngle
		step := cfg.defaultStep
		if bound {
			angle = arg
			step = arg
		}

		switch sym {
		case '+':
			state = state.rotated(yawAxis, angle)
		case '-':
			state = state.rotated(yawAxis, -angle)
		case '^':
			state = state.rotated(pitchAxis, angle)
		case 'v':
			state = state.rotated(pitchAxis, -angle)
		case '<':
			state = state.rotated(rollAxis, -angle)
		case '>':
			state = state.rotated(rollAxis, angle)
		case 'M':
			from := state.pos
			state = state.moved(step)
			res.addSegment(from, state.pos)
		case 'N':
			state = state.moved(step)
		case '[':
			stack = append(stack, state)
		case ']':
			if len(stack) == 0 {
				return nil, fmt.Errorf("symbol %d: %w", i, ErrStackUnderflow)
			}
			state = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
		case 'L':
			res.addLeaf(state.pos)
		default:
			// Placeholder symbols carry no geometry.
		}

		i += skip
	}
	return res, nil
}

// boundParam resolves a "(x)" binding immediately following the symbol at
// position i. skip is the number of extra symbols the construct occupies in
// the buffer, so the caller does not re-interpret them as commands. An
// unbound parameter keeps the command default.
func boundParam(buf []byte, i int, params map[byte]float32) (val float32, bound bool, skip int) {
	if i+3 >= len(buf) || buf[i+1] != '(' || buf[i+3] != ')' {
		return 0, false, 0
	}
	letter := buf[i+2]
	if letter < 'a' || letter > 'z' {
		return 0, false, 0
	}
	val, bound = params[letter]
	return val, bound, 3
}
