package scenery

import (
	"fmt"
	"log/slog"
)

const (
	// MaxTextureSlots is the number of texture units available to a
	// scene.
	MaxTextureSlots = 16
	// MaxLights is the size of the scene's light array.
	MaxLights = 4
)

type textureSlot struct {
	tag     string
	texture Texture
}

// appearance is the surface state applied to the next draw: either a
// flat color or a registered texture, plus UV scale and material preset.
type appearance struct {
	color       Color
	textureTag  string
	useTexture  bool
	uvScale     Vector
	materialTag string
}

// SceneManager prepares and renders a scene: it owns the texture slots,
// the material presets, the light array and the primitive meshes, and
// turns draw calls into scene objects.
type SceneManager struct {
	Scene  *Scene
	Shapes *ShapeMeshes

	shader *PhongShader

	textures       [MaxTextureSlots]textureSlot
	loadedTextures int
	boundTextures  int

	materials MaterialList

	lights      [MaxLights]Light
	lightActive [MaxLights]bool

	current appearance
}

func NewSceneManager(scene *Scene, shader *PhongShader) *SceneManager {
	return &SceneManager{
		Scene:  scene,
		Shapes: NewShapeMeshes(),
		shader: shader,
		current: appearance{
			color:   White,
			uvScale: Vector{1, 1, 0},
		},
	}
}

// LoadTexture reads an image file and registers it in the next free
// texture slot under tag.
func (sm *SceneManager) LoadTexture(path, tag string) error {
	if sm.loadedTextures >= MaxTextureSlots {
		return fmt.Errorf("load texture %q: all %d texture slots in use", tag, MaxTextureSlots)
	}
	tex, err := LoadTexture(path)
	if err != nil {
		slog.Error("could not load texture image", "path", path, "tag", tag, "err", err)
		return fmt.Errorf("load texture %q: %w", tag, err)
	}
	it := tex.(*ImageTexture)
	slog.Info("loaded texture image",
		"path", path, "tag", tag, "width", it.Width, "height", it.Height)
	sm.textures[sm.loadedTextures] = textureSlot{tag, tex}
	sm.loadedTextures++
	return nil
}

// AddTexture registers an already-decoded texture under tag.
func (sm *SceneManager) AddTexture(tag string, tex Texture) error {
	if sm.loadedTextures >= MaxTextureSlots {
		return fmt.Errorf("add texture %q: all %d texture slots in use", tag, MaxTextureSlots)
	}
	sm.textures[sm.loadedTextures] = textureSlot{tag, tex}
	sm.loadedTextures++
	return nil
}

// BindTextures makes every loaded slot visible to subsequent draws.
// Textures loaded after the last bind are not sampled until bound.
func (sm *SceneManager) BindTextures() {
	sm.boundTextures = sm.loadedTextures
}

// DestroyTextures releases every slot so the scene can be prepared
// again.
func (sm *SceneManager) DestroyTextures() {
	for i := 0; i < sm.loadedTextures; i++ {
		sm.textures[i] = textureSlot{}
	}
	sm.loadedTextures = 0
	sm.boundTextures = 0
}

// FindTextureSlot returns the slot index registered under tag, or -1.
func (sm *SceneManager) FindTextureSlot(tag string) int {
	for i := 0; i < sm.loadedTextures; i++ {
		if sm.textures[i].tag == tag {
			return i
		}
	}
	return -1
}

// FindTexture returns the texture registered under tag, or nil.
func (sm *SceneManager) FindTexture(tag string) Texture {
	if i := sm.FindTextureSlot(tag); i >= 0 {
		return sm.textures[i].texture
	}
	return nil
}

// LoadedTextures returns the number of occupied texture slots.
func (sm *SceneManager) LoadedTextures() int {
	return sm.loadedTextures
}

// AddMaterial registers a material preset.
func (sm *SceneManager) AddMaterial(m Material) {
	sm.materials.Add(m)
}

// FindMaterial returns the preset registered under tag.
func (sm *SceneManager) FindMaterial(tag string) (Material, bool) {
	return sm.materials.Find(tag)
}

// SetLight places a light in the fixed light array. Index must be in
// [0, MaxLights).
func (sm *SceneManager) SetLight(index int, l Light) error {
	if index < 0 || index >= MaxLights {
		return fmt.Errorf("set light: index %d out of range [0, %d)", index, MaxLights)
	}
	sm.lights[index] = l
	sm.lightActive[index] = true
	sm.syncLights()
	return nil
}

// ClearLight removes a light from the array.
func (sm *SceneManager) ClearLight(index int) error {
	if index < 0 || index >= MaxLights {
		return fmt.Errorf("clear light: index %d out of range [0, %d)", index, MaxLights)
	}
	sm.lightActive[index] = false
	sm.syncLights()
	return nil
}

func (sm *SceneManager) syncLights() {
	lights := sm.shader.Lights[:0]
	for i := 0; i < MaxLights; i++ {
		if sm.lightActive[i] {
			lights = append(lights, sm.lights[i])
		}
	}
	sm.shader.Lights = lights
}

// SetGlobalAmbient sets the ambient light applied to every fragment.
func (sm *SceneManager) SetGlobalAmbient(c Color) {
	sm.shader.GlobalAmbient = c
}

// EnableLighting toggles the lighting model; with it off, draws use their
// color or texture unlit.
func (sm *SceneManager) EnableLighting(enable bool) {
	sm.shader.UseLighting = enable
}

// SetShaderColor makes the next draws use a flat color, disabling any
// previously set texture.
func (sm *SceneManager) SetShaderColor(r, g, b, a float64) {
	sm.current.color = Color{r, g, b, a}
	sm.current.useTexture = false
}

// SetShaderTexture makes the next draws sample the texture registered
// under tag.
func (sm *SceneManager) SetShaderTexture(tag string) {
	if sm.FindTextureSlot(tag) < 0 {
		slog.Warn("texture tag not registered", "tag", tag)
	}
	sm.current.textureTag = tag
	sm.current.useTexture = true
	sm.current.color = White
}

// SetTextureUVScale tiles the active texture u times across U and v
// times across V.
func (sm *SceneManager) SetTextureUVScale(u, v float64) {
	sm.current.uvScale = Vector{u, v, 0}
}

// SetShaderMaterial applies the material preset registered under tag to
// the next draws.
func (sm *SceneManager) SetShaderMaterial(tag string) {
	if _, ok := sm.materials.Find(tag); !ok {
		slog.Warn("material tag not registered", "tag", tag)
	}
	sm.current.materialTag = tag
}

// resolveTexture returns the texture for the current appearance, but
// only when its slot has been bound.
func (sm *SceneManager) resolveTexture() Texture {
	if !sm.current.useTexture {
		return nil
	}
	slot := sm.FindTextureSlot(sm.current.textureTag)
	if slot < 0 || slot >= sm.boundTextures {
		return nil
	}
	return sm.textures[slot].texture
}

// DrawShape places one of the primitive meshes into the scene with the
// current appearance.
func (sm *SceneManager) DrawShape(shape Shape, p Placement) *Object {
	return sm.DrawMesh(sm.Shapes.Mesh(shape), p)
}

// DrawMesh places an arbitrary mesh into the scene with the current
// appearance.
func (sm *SceneManager) DrawMesh(mesh *Mesh, p Placement) *Object {
	o := NewObjectFromMesh(mesh)
	o.Matrix = p.Matrix()
	o.Color = sm.current.color
	o.Texture = sm.resolveTexture()
	o.UVScale = sm.current.uvScale
	if m, ok := sm.materials.Find(sm.current.materialTag); ok {
		o.Material = m
	}
	sm.Scene.AddObject(o)
	return o
}

// Render draws the accumulated scene to a PNG file.
func (sm *SceneManager) Render(path string) error {
	return sm.Scene.Draw(false, path, nil)
}
