package scenery

// Material is a hand-tuned lighting preset, registered under a tag and
// applied per draw.
type Material struct {
	Tag             string
	AmbientColor    Color
	AmbientStrength float64
	DiffuseColor    Color
	SpecularColor   Color
	Shininess       float64
}

// DefaultMaterial is used for draws that never set a material tag.
func DefaultMaterial() Material {
	return Material{
		Tag:             "default",
		AmbientColor:    Gray(0.2),
		AmbientStrength: 0.5,
		DiffuseColor:    Gray(0.8),
		SpecularColor:   White,
		Shininess:       32,
	}
}

// MaterialList is a small fixed set of presets searched linearly by tag.
type MaterialList struct {
	materials []Material
}

func (l *MaterialList) Add(m Material) {
	l.materials = append(l.materials, m)
}

// Find returns the material registered under tag. The second return is
// false when no preset carries the tag.
func (l *MaterialList) Find(tag string) (Material, bool) {
	for _, m := range l.materials {
		if m.Tag == tag {
			return m, true
		}
	}
	return Material{}, false
}

func (l *MaterialList) Len() int {
	return len(l.materials)
}

func (l *MaterialList) Clear() {
	l.materials = nil
}
