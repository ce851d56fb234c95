package game

import (
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"simcore/internal/collision"
	"simcore/internal/engine"
)

// sceneFile is the on-disk scene layout. Meshes may override or extend the
// default bounding-box table before any actor spawns.
type sceneFile struct {
	Meshes map[string]sceneBox `yaml:"meshes"`
	Actors []sceneActor        `yaml:"actors"`
}

type sceneBox struct {
	Min [3]float32 `yaml:"min"`
	Max [3]float32 `yaml:"max"`
}

type sceneActor struct {
	Kind     string     `yaml:"kind"`
	Position [3]float32 `yaml:"position"`
	Scale    float32    `yaml:"scale"`
	// Yaw is the rotation about the up axis, radians
	Yaw float32 `yaml:"yaw"`
}

// LoadScene reads a YAML scene file and spawns its actors.
func (g *Game) LoadScene(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading scene: %w", err)
	}
	return g.LoadSceneData(data)
}

// LoadSceneData spawns the actors described by YAML scene data.
func (g *Game) LoadSceneData(data []byte) error {
	var scene sceneFile
	if err := yaml.Unmarshal(data, &scene); err != nil {
		return fmt.Errorf("parsing scene: %w", err)
	}

	if len(scene.Meshes) > 0 {
		overrides := make(MeshTable, len(scene.Meshes))
		for name, box := range scene.Meshes {
			overrides[name] = collision.NewAABB(vec3(box.Min), vec3(box.Max))
		}
		g.meshes = meshOverlay{base: g.meshes, overrides: overrides}
	}

	for i, sa := range scene.Actors {
		var a *engine.Actor
		switch sa.Kind {
		case "plane":
			a = g.NewPlaneActor()
		case "target":
			a = g.NewTargetActor()
		case "player":
			a = g.NewPlayerActor()
		default:
			return fmt.Errorf("scene actor %d: unknown kind %q", i, sa.Kind)
		}
		a.SetPosition(vec3(sa.Position))
		if sa.Scale > 0 {
			a.SetScale(sa.Scale)
		}
		if sa.Yaw != 0 {
			yaw := rl.QuaternionFromAxisAngle(rl.Vector3{Z: 1}, sa.Yaw)
			a.SetRotation(rl.QuaternionMultiply(yaw, a.Rotation()))
		}
	}

	g.log.Info("scene loaded",
		zap.Int("actors", len(scene.Actors)),
		zap.Int("meshes", len(scene.Meshes)))
	return nil
}

// meshOverlay layers a scene file's mesh boxes over whatever store was
// injected, so file overrides never discard the base store.
type meshOverlay struct {
	base      MeshStore
	overrides MeshTable
}

func (o meshOverlay) ObjectBox(name string) (collision.AABB, bool) {
	if box, ok := o.overrides[name]; ok {
		return box, true
	}
	return o.base.ObjectBox(name)
}

func vec3(v [3]float32) rl.Vector3 {
	return rl.Vector3{X: v[0], Y: v[1], Z: v[2]}
}
