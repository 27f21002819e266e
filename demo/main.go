// Renders the desk scene: an L-shaped desk with three monitors and a
// keyboard, on a wood floor.
package main

import (
	"flag"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/softlight/scenery"
)

const (
	imageSize = 800
	fovy      = 50.0
)

var silver = scenery.Color{R: 192.0 / 255.0, G: 192.0 / 255.0, B: 192.0 / 255.0, A: 1}

func main() {
	out := flag.String("o", "desk.png", "output PNG path")
	texDir := flag.String("textures", "textures", "directory holding the scene textures")
	flag.Parse()

	eye := scenery.Vector{X: 0, Y: 7, Z: 26}
	center := scenery.Vector{X: 0, Y: 2, Z: 0}
	up := scenery.Vector{X: 0, Y: 1, Z: 0}

	matrix := scenery.LookAt(eye, center, up).Perspective(fovy, 1, 0.1, 200)
	shader := scenery.NewPhongShader(matrix, eye)
	scene := scenery.NewScene(eye, center, up, fovy, imageSize, 1, shader)
	scene.Context.ClearColorBufferWith(scenery.HexColor("202830"))

	sm := scenery.NewSceneManager(scene, shader)
	prepareScene(sm, *texDir)
	renderScene(sm)

	if err := sm.Render(*out); err != nil {
		slog.Error("could not render scene", "err", err)
		os.Exit(1)
	}
	slog.Info("scene rendered", "path", *out)
}

// prepareScene loads the textures, materials, lights and meshes the
// scene draws with.
func prepareScene(sm *scenery.SceneManager, texDir string) {
	loadSceneMaterials(sm)
	loadSceneTextures(sm, texDir)
	setupSceneLights(sm)

	// one instance per primitive, shared by every draw
	sm.Shapes.Load(scenery.ShapePlane, scenery.ShapeBox, scenery.ShapePrism)
}

func loadSceneTextures(sm *scenery.SceneManager, dir string) {
	textures := []struct{ file, tag string }{
		{"Wood-Floor_texture2.jpg", "floor"},
		{"Monitor-Screen_texture.jpg", "screen"},
		{"Desk_texture2.jpg", "desk"},
		{"Keyboard_texture.jpg", "keyboard"},
		{"glass_texture.jpg", "glass"},
	}
	for _, t := range textures {
		// failures are logged by the manager; the affected draws fall
		// back to their flat colors
		_ = sm.LoadTexture(filepath.Join(dir, t.file), t.tag)
	}
	sm.BindTextures()
}

func loadSceneMaterials(sm *scenery.SceneManager) {
	sm.AddMaterial(scenery.Material{
		Tag:             "floorMaterial",
		AmbientColor:    scenery.Gray(0.2),
		AmbientStrength: 0.5,
		DiffuseColor:    scenery.Gray(0.8),
		SpecularColor:   scenery.White,
		Shininess:       32,
	})
	sm.AddMaterial(scenery.Material{
		Tag:             "deskMaterial",
		AmbientColor:    scenery.Gray(0.3),
		AmbientStrength: 0.5,
		DiffuseColor:    scenery.Color{R: 0.6, G: 0.3, B: 0.3, A: 1},
		SpecularColor:   scenery.Gray(0.5),
		Shininess:       16,
	})
	sm.AddMaterial(scenery.Material{
		Tag:             "keyboardMaterial",
		AmbientColor:    scenery.Gray(0.2),
		AmbientStrength: 0.5,
		DiffuseColor:    scenery.Gray(0.7),
		SpecularColor:   scenery.White,
		Shininess:       32,
	})
	sm.AddMaterial(scenery.Material{
		Tag:             "monitorMaterial",
		AmbientColor:    scenery.Gray(0.2),
		AmbientStrength: 0.5,
		DiffuseColor:    scenery.Gray(0.9),
		SpecularColor:   scenery.White,
		Shininess:       128,
	})
	sm.AddMaterial(scenery.Material{
		Tag:             "screenMaterial",
		AmbientColor:    scenery.Gray(0.1),
		AmbientStrength: 0.5,
		DiffuseColor:    scenery.Gray(0.5),
		SpecularColor:   scenery.White,
		Shininess:       256,
	})
}

func setupSceneLights(sm *scenery.SceneManager) {
	sm.EnableLighting(true)
	sm.SetGlobalAmbient(scenery.Gray(0.2))

	// key light: soft white from above
	_ = sm.SetLight(0, scenery.Light{
		Position:          scenery.Vector{X: 0, Y: 12, Z: 0},
		DiffuseColor:      scenery.Gray(0.4),
		SpecularColor:     scenery.Color{R: 7, G: 7, B: 7, A: 1},
		FocalStrength:     32,
		SpecularIntensity: 0.2,
	})
	// warm glow under the upper shelf
	_ = sm.SetLight(1, scenery.Light{
		Position:          scenery.Vector{X: -9.8, Y: 2, Z: 3},
		DiffuseColor:      scenery.Color{R: 1, G: 0.85, B: 0.5, A: 1},
		SpecularColor:     scenery.Color{R: 1, G: 0.85, B: 0.5, A: 1},
		FocalStrength:     32,
		SpecularIntensity: 0.2,
	})
	// cool monitor spill
	_ = sm.SetLight(2, scenery.Light{
		Position:          scenery.Vector{X: 8, Y: 2, Z: 3},
		DiffuseColor:      scenery.Color{R: 0.6, G: 0.8, B: 1, A: 1},
		SpecularColor:     scenery.Color{R: 0.6, G: 0.8, B: 1, A: 1},
		FocalStrength:     32,
		SpecularIntensity: 0.2,
	})
}

// renderScene issues the fixed placement script for the desk scene.
func renderScene(sm *scenery.SceneManager) {
	// floor
	sm.SetShaderMaterial("floorMaterial")
	sm.SetShaderTexture("floor")
	sm.SetTextureUVScale(10, 10)
	sm.DrawShape(scenery.ShapePlane, scenery.Placement{
		Scale:    scenery.Vector{X: 50, Y: 1, Z: 50},
		Position: scenery.Vector{X: 0, Y: -1, Z: 0},
	})

	// corner piece joining the two desk surfaces
	sm.SetShaderMaterial("deskMaterial")
	sm.SetShaderTexture("desk")
	sm.SetTextureUVScale(1, 1)
	sm.DrawShape(scenery.ShapePrism, scenery.Placement{
		Scale:     scenery.Vector{X: 12, Y: 0.5, Z: 7},
		RotationY: 1.8,
		Position:  scenery.Vector{X: -0.8, Y: 0.5, Z: -1.5},
	})

	// keyboard: silver body, textured top face
	sm.SetShaderColor(silver.R, silver.G, silver.B, 1)
	sm.SetShaderMaterial("keyboardMaterial")
	sm.DrawShape(scenery.ShapeBox, scenery.Placement{
		Scale:     scenery.Vector{X: 9, Y: 0.3, Z: 3},
		RotationY: 1.8,
		Position:  scenery.Vector{X: -0.8, Y: 1.0, Z: 1.5},
	})
	sm.SetShaderTexture("keyboard")
	sm.SetTextureUVScale(1, 1)
	sm.DrawShape(scenery.ShapeBox, scenery.Placement{
		Scale:     scenery.Vector{X: 9, Y: 0.1, Z: 3},
		RotationY: 1.8,
		Position:  scenery.Vector{X: -0.8, Y: 1.15, Z: 1.5},
	})

	// the two halves of the L-shaped desk surface
	sm.SetShaderMaterial("deskMaterial")
	sm.SetShaderTexture("desk")
	sm.SetTextureUVScale(1, 1)
	sm.DrawShape(scenery.ShapeBox, scenery.Placement{
		Scale:     scenery.Vector{X: 15, Y: 0.5, Z: 8.8},
		RotationY: 45,
		Position:  scenery.Vector{X: -8.8, Y: 0.5, Z: 4},
	})
	sm.DrawShape(scenery.ShapeBox, scenery.Placement{
		Scale:     scenery.Vector{X: 15, Y: 0.5, Z: 8.8},
		RotationY: -45,
		Position:  scenery.Vector{X: 7, Y: 0.5, Z: 4},
	})

	// upper shelf: corner piece, two halves, and their supports
	sm.DrawShape(scenery.ShapeBox, scenery.Placement{
		Scale:     scenery.Vector{X: 10, Y: 0.5, Z: 2.5},
		RotationY: 1.8,
		Position:  scenery.Vector{X: -0.8, Y: 2, Z: -1.5},
	})
	sm.DrawShape(scenery.ShapeBox, scenery.Placement{
		Scale:     scenery.Vector{X: 0.5, Y: 1, Z: 0.4},
		RotationY: 1.8,
		Position:  scenery.Vector{X: -1, Y: 1.5, Z: -2},
	})
	sm.DrawShape(scenery.ShapeBox, scenery.Placement{
		Scale:     scenery.Vector{X: 14, Y: 0.5, Z: 2.5},
		RotationY: 45,
		Position:  scenery.Vector{X: -9.8, Y: 2, Z: 3},
	})
	sm.DrawShape(scenery.ShapeBox, scenery.Placement{
		Scale:     scenery.Vector{X: 0.5, Y: 1, Z: 0.4},
		RotationY: 45,
		Position:  scenery.Vector{X: -11.4, Y: 1.5, Z: 4},
	})
	sm.DrawShape(scenery.ShapeBox, scenery.Placement{
		Scale:     scenery.Vector{X: 14, Y: 0.5, Z: 2.5},
		RotationY: -45,
		Position:  scenery.Vector{X: 8, Y: 2, Z: 3},
	})
	sm.DrawShape(scenery.ShapeBox, scenery.Placement{
		Scale:     scenery.Vector{X: 0.5, Y: 1, Z: 0.4},
		RotationY: -45,
		Position:  scenery.Vector{X: 12.4, Y: 1.5, Z: 7.5},
	})

	// three monitors: center (on the corner shelf), left, right
	drawMonitor(sm, monitor{
		rotation: 1.8,
		base:     scenery.Vector{X: -0.8, Y: 2.4, Z: -1.9},
		stand:    scenery.Vector{X: -0.8, Y: 2.8, Z: -2},
		panel:    scenery.Vector{X: -1, Y: 4.5, Z: -1.54},
		panelW:   9,
		bezel:    scenery.Vector{X: -1, Y: 4.5, Z: -1.7},
	})
	drawMonitor(sm, monitor{
		rotation: 45,
		base:     scenery.Vector{X: -11, Y: 2.4, Z: 2.92},
		stand:    scenery.Vector{X: -11, Y: 2.8, Z: 2.6},
		panel:    scenery.Vector{X: -10.25, Y: 4.5, Z: 3.5},
		panelW:   8.8,
		bezel:    scenery.Vector{X: -10.8, Y: 4.5, Z: 3},
	})
	drawMonitor(sm, monitor{
		rotation: -45,
		base:     scenery.Vector{X: 8.8, Y: 2.4, Z: 2.6},
		stand:    scenery.Vector{X: 8.8, Y: 2.8, Z: 2.4},
		panel:    scenery.Vector{X: 8.4, Y: 4.55, Z: 3.5},
		panelW:   8.8,
		bezel:    scenery.Vector{X: 8.8, Y: 4.5, Z: 3},
	})
}

type monitor struct {
	rotation     float64
	base, stand  scenery.Vector
	panel, bezel scenery.Vector
	panelW       float64
}

func drawMonitor(sm *scenery.SceneManager, m monitor) {
	// silver base, stand and bezel
	sm.SetShaderColor(silver.R, silver.G, silver.B, 1)
	sm.SetShaderMaterial("monitorMaterial")
	sm.DrawShape(scenery.ShapeBox, scenery.Placement{
		Scale:     scenery.Vector{X: 2, Y: 0.1, Z: 1},
		RotationY: m.rotation,
		Position:  m.base,
	})
	sm.DrawShape(scenery.ShapeBox, scenery.Placement{
		Scale:     scenery.Vector{X: 0.2, Y: 2, Z: 0.2},
		RotationY: m.rotation,
		Position:  m.stand,
	})
	sm.DrawShape(scenery.ShapeBox, scenery.Placement{
		Scale:     scenery.Vector{X: 10, Y: 3, Z: 0.4},
		RotationY: m.rotation,
		Position:  m.bezel,
	})

	// glowing panel slightly in front of the bezel
	sm.SetShaderMaterial("screenMaterial")
	sm.SetShaderTexture("screen")
	sm.SetTextureUVScale(1, 1)
	sm.DrawShape(scenery.ShapeBox, scenery.Placement{
		Scale:     scenery.Vector{X: m.panelW, Y: 2, Z: 0.2},
		RotationY: m.rotation,
		Position:  m.panel,
	})
}
