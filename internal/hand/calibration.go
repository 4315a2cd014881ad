package hand

import (
	"embed"
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gopkg.in/yaml.v3"
)

// Calibration poses are static data captured from a real tracking session,
// kept as assets rather than hand-encoded literals. They seed the initial
// spawn transforms and collider sizes; nothing mutates them at runtime.

//go:embed calibration/left.yaml calibration/right.yaml
var calibrationFS embed.FS

type calibrationJoint struct {
	Name               string     `yaml:"name"`
	Position           [3]float32 `yaml:"position"`
	Orientation        [4]float32 `yaml:"orientation"` // x, y, z, w
	Radius             float32    `yaml:"radius"`
	PositionValid      bool       `yaml:"position_valid"`
	PositionTracked    bool       `yaml:"position_tracked"`
	OrientationValid   bool       `yaml:"orientation_valid"`
	OrientationTracked bool       `yaml:"orientation_tracked"`
}

type calibrationFile struct {
	Joints []calibrationJoint `yaml:"joints"`
}

var defaultPoses [2][JointCount]Joint

func init() {
	for i, name := range []string{"calibration/left.yaml", "calibration/right.yaml"} {
		poses, err := loadCalibration(name)
		if err != nil {
			panic(fmt.Sprintf("hand: bad embedded calibration %s: %v", name, err))
		}
		defaultPoses[i] = poses
	}
}

func loadCalibration(name string) ([JointCount]Joint, error) {
	var poses [JointCount]Joint

	data, err := calibrationFS.ReadFile(name)
	if err != nil {
		return poses, err
	}

	var file calibrationFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return poses, err
	}
	if len(file.Joints) != JointCount {
		return poses, fmt.Errorf("expected %d joints, got %d", JointCount, len(file.Joints))
	}

	for i, cj := range file.Joints {
		if cj.Name != jointNames[i] {
			return poses, fmt.Errorf("joint %d: expected %q, got %q", i, jointNames[i], cj.Name)
		}
		if cj.Radius <= 0 {
			return poses, fmt.Errorf("joint %q: non-positive radius %v", cj.Name, cj.Radius)
		}
		poses[i] = Joint{
			Position:           rl.NewVector3(cj.Position[0], cj.Position[1], cj.Position[2]),
			PositionValid:      cj.PositionValid,
			PositionTracked:    cj.PositionTracked,
			Orientation:        rl.NewQuaternion(cj.Orientation[0], cj.Orientation[1], cj.Orientation[2], cj.Orientation[3]),
			OrientationValid:   cj.OrientationValid,
			OrientationTracked: cj.OrientationTracked,
			Radius:             cj.Radius,
		}
	}
	return poses, nil
}

// DefaultPose returns the calibrated pose for one joint. An out-of-range
// index is a programming error and panics.
func DefaultPose(h Hand, index JointIndex) Joint {
	if index < 0 || index >= JointCount {
		panic(fmt.Sprintf("hand: joint index %d out of range", index))
	}
	return defaultPoses[h][index]
}

// PoseByName returns the calibrated pose for a named joint. The second
// return is false for unknown names.
func PoseByName(h Hand, name string) (Joint, bool) {
	index, ok := JointIndexByName(name)
	if !ok {
		return Joint{}, false
	}
	return DefaultPose(h, index), true
}
