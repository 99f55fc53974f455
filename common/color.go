package common

// Color3 is an RGB color with float channels.
type Color3 struct {
	R, G, B float64
}

// Add returns the channel-wise sum of c and other.
func (c Color3) Add(other Color3) Color3 {
	return Color3{R: c.R + other.R, G: c.G + other.G, B: c.B + other.B}
}

// Sub returns the channel-wise difference of c and other.
func (c Color3) Sub(other Color3) Color3 {
	return Color3{R: c.R - other.R, G: c.G - other.G, B: c.B - other.B}
}

// Mult returns c scaled by s.
func (c Color3) Mult(s float64) Color3 {
	return Color3{R: c.R * s, G: c.G * s, B: c.B * s}
}

// Lerp interpolates each channel independently.
func (c Color3) Lerp(other Color3, t float64) Color3 {
	return Color3{
		R: Lerp(c.R, other.R, t),
		G: Lerp(c.G, other.G, t),
		B: Lerp(c.B, other.B, t),
	}
}

// Hermite evaluates the cubic Hermite basis per channel.
func (c Color3) Hermite(tangent1, value2, tangent2 Color3, s float64) Color3 {
	return Color3{
		R: Hermite(c.R, tangent1.R, value2.R, tangent2.R, s),
		G: Hermite(c.G, tangent1.G, value2.G, tangent2.G, s),
		B: Hermite(c.B, tangent1.B, value2.B, tangent2.B, s),
	}
}

// Color4 is an RGBA color with float channels.
type Color4 struct {
	R, G, B, A float64
}

// Add returns the channel-wise sum of c and other.
func (c Color4) Add(other Color4) Color4 {
	return Color4{R: c.R + other.R, G: c.G + other.G, B: c.B + other.B, A: c.A + other.A}
}

// Sub returns the channel-wise difference of c and other.
func (c Color4) Sub(other Color4) Color4 {
	return Color4{R: c.R - other.R, G: c.G - other.G, B: c.B - other.B, A: c.A - other.A}
}

// Mult returns c scaled by s.
func (c Color4) Mult(s float64) Color4 {
	return Color4{R: c.R * s, G: c.G * s, B: c.B * s, A: c.A * s}
}

// Lerp interpolates each channel independently.
func (c Color4) Lerp(other Color4, t float64) Color4 {
	return Color4{
		R: Lerp(c.R, other.R, t),
		G: Lerp(c.G, other.G, t),
		B: Lerp(c.B, other.B, t),
		A: Lerp(c.A, other.A, t),
	}
}

// Hermite evaluates the cubic Hermite basis per channel.
func (c Color4) Hermite(tangent1, value2, tangent2 Color4, s float64) Color4 {
	return Color4{
		R: Hermite(c.R, tangent1.R, value2.R, tangent2.R, s),
		G: Hermite(c.G, tangent1.G, value2.G, tangent2.G, s),
		B: Hermite(c.B, tangent1.B, value2.B, tangent2.B, s),
		A: Hermite(c.A, tangent1.A, value2.A, tangent2.A, s),
	}
}

// Size is a width/height pair.
type Size struct {
	Width, Height float64
}

// Add returns the dimension-wise sum of s and other.
func (s Size) Add(other Size) Size {
	return Size{Width: s.Width + other.Width, Height: s.Height + other.Height}
}

// Sub returns the dimension-wise difference of s and other.
func (s Size) Sub(other Size) Size {
	return Size{Width: s.Width - other.Width, Height: s.Height - other.Height}
}

// Mult returns s scaled by f.
func (s Size) Mult(f float64) Size {
	return Size{Width: s.Width * f, Height: s.Height * f}
}

// Lerp interpolates width and height independently.
func (s Size) Lerp(other Size, t float64) Size {
	return Size{
		Width:  Lerp(s.Width, other.Width, t),
		Height: Lerp(s.Height, other.Height, t),
	}
}

// Hermite evaluates the cubic Hermite basis per dimension.
func (s Size) Hermite(tangent1, value2, tangent2 Size, t float64) Size {
	return Size{
		Width:  Hermite(s.Width, tangent1.Width, value2.Width, tangent2.Width, t),
		Height: Hermite(s.Height, tangent1.Height, value2.Height, tangent2.Height, t),
	}
}
