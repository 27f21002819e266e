package scenery

// Box is an axis-aligned bounding box.
type Box struct {
	Min, Max Vector
}

// EmptyBox is the identity for Extend.
var EmptyBox = Box{}

func BoxForBoxes(boxes []Box) Box {
	if len(boxes) == 0 {
		return EmptyBox
	}
	box := boxes[0]
	for _, b := range boxes[1:] {
		box = box.Extend(b)
	}
	return box
}

func (b Box) Extend(o Box) Box {
	if b == EmptyBox {
		return o
	}
	if o == EmptyBox {
		return b
	}
	return Box{b.Min.Min(o.Min), b.Max.Max(o.Max)}
}

func (b Box) Size() Vector {
	return b.Max.Sub(b.Min)
}

func (b Box) Center() Vector {
	return b.Min.Lerp(b.Max, 0.5)
}

// Corners returns the eight corner points of the box.
func (b Box) Corners() []Vector {
	x0, y0, z0 := b.Min.X, b.Min.Y, b.Min.Z
	x1, y1, z1 := b.Max.X, b.Max.Y, b.Max.Z
	return []Vector{
		{x0, y0, z0},
		{x1, y0, z0},
		{x1, y1, z0},
		{x0, y1, z0},
		{x0, y0, z1},
		{x1, y0, z1},
		{x1, y1, z1},
		{x0, y1, z1},
	}
}

func (b Box) Contains(v Vector) bool {
	return v.X >= b.Min.X && v.X <= b.Max.X &&
		v.Y >= b.Min.Y && v.Y <= b.Max.Y &&
		v.Z >= b.Min.Z && v.Z <= b.Max.Z
}

func (b Box) Transform(m Matrix) Box {
	var out Box
	for i, corner := range b.Corners() {
		p := m.MulPosition(corner)
		if i == 0 {
			out = Box{p, p}
			continue
		}
		out.Min = out.Min.Min(p)
		out.Max = out.Max.Max(p)
	}
	return out
}
