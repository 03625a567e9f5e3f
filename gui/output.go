package gui

// TextureID names a panel texture across frames.
type TextureID uint32

// Vertex is a panel vertex in window pixels with its texture coordinate.
type Vertex struct {
	Position [2]float32
	UV       [2]float32
}

// VertexSize is the byte size of a Vertex in a vertex buffer.
const VertexSize = 16

// Primitive is a triangle list sampling one texture.
type Primitive struct {
	Texture  TextureID
	Vertices []Vertex
}

// quad returns the two triangles covering (x, y, w, h) and sampling the
// texture rectangle (0, 0)-(u, v).
func quad(id TextureID, x, y, w, h, u, v float32) Primitive {
	tl := Vertex{Position: [2]float32{x, y}, UV: [2]float32{0, 0}}
	tr := Vertex{Position: [2]float32{x + w, y}, UV: [2]float32{u, 0}}
	bl := Vertex{Position: [2]float32{x, y + h}, UV: [2]float32{0, v}}
	br := Vertex{Position: [2]float32{x + w, y + h}, UV: [2]float32{u, v}}
	return Primitive{Texture: id, Vertices: []Vertex{tl, tr, bl, bl, tr, br}}
}

// Image is premultiplied-alpha RGBA8 pixel data, row-major and tightly
// packed.
type Image struct {
	Width, Height int
	Pixels        []byte
}

// TextureSet uploads Image as the full content of texture ID, creating the
// texture when it does not exist yet.
type TextureSet struct {
	ID    TextureID
	Image Image
}

// TexturesDelta lists texture work for one frame. Set is applied before
// drawing; Free after the frame has been submitted.
type TexturesDelta struct {
	Set  []TextureSet
	Free []TextureID
}

// Empty reports whether there is nothing to upload or release.
func (d TexturesDelta) Empty() bool {
	return len(d.Set) == 0 && len(d.Free) == 0
}

// Output is what one panel frame needs from the compositor.
type Output struct {
	Primitives []Primitive
	Textures   TexturesDelta
}
