package vecmath

import "golang.org/x/exp/constraints"

// Vec2 is a 2-component vector.
type Vec2[T constraints.Float] struct {
	X, Y T
}

// Vec3 is a 3-component vector.
type Vec3[T constraints.Float] struct {
	X, Y, Z T
}

// Vec4 is a 4-component vector.
type Vec4[T constraints.Float] struct {
	X, Y, Z, W T
}

func V2[T constraints.Float](x, y T) Vec2[T]       { return Vec2[T]{x, y} }
func V3[T constraints.Float](x, y, z T) Vec3[T]    { return Vec3[T]{x, y, z} }
func V4[T constraints.Float](x, y, z, w T) Vec4[T] { return Vec4[T]{x, y, z, w} }

// --- Vec2 ---

func (v Vec2[T]) Add(o Vec2[T]) Vec2[T] { return Vec2[T]{v.X + o.X, v.Y + o.Y} }
func (v Vec2[T]) Sub(o Vec2[T]) Vec2[T] { return Vec2[T]{v.X - o.X, v.Y - o.Y} }
func (v Vec2[T]) Scale(s T) Vec2[T]     { return Vec2[T]{v.X * s, v.Y * s} }
func (v Vec2[T]) AddScalar(s T) Vec2[T] { return Vec2[T]{v.X + s, v.Y + s} }
func (v Vec2[T]) Dot(o Vec2[T]) T       { return v.X*o.X + v.Y*o.Y }
func (v Vec2[T]) Floor() Vec2[T]        { return Vec2[T]{Floor(v.X), Floor(v.Y)} }
func (v Vec2[T]) Fract() Vec2[T]        { return Vec2[T]{Fract(v.X), Fract(v.Y)} }
func (v Vec2[T]) Abs() Vec2[T]          { return Vec2[T]{Abs(v.X), Abs(v.Y)} }
func (v Vec2[T]) Len() T                { return Sqrt(v.Dot(v)) }

func (v Vec2[T]) Min(o Vec2[T]) Vec2[T] { return Vec2[T]{min(v.X, o.X), min(v.Y, o.Y)} }
func (v Vec2[T]) Max(o Vec2[T]) Vec2[T] { return Vec2[T]{max(v.X, o.X), max(v.Y, o.Y)} }

// Mod applies the floored modulo per component.
func (v Vec2[T]) Mod(m Vec2[T]) Vec2[T] { return Vec2[T]{Mod(v.X, m.X), Mod(v.Y, m.Y)} }

func (v Vec2[T]) Lerp(o Vec2[T], t T) Vec2[T] {
	return Vec2[T]{Lerp(v.X, o.X, t), Lerp(v.Y, o.Y, t)}
}

// --- Vec3 ---

func (v Vec3[T]) Add(o Vec3[T]) Vec3[T] { return Vec3[T]{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3[T]) Sub(o Vec3[T]) Vec3[T] { return Vec3[T]{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3[T]) Scale(s T) Vec3[T]     { return Vec3[T]{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3[T]) AddScalar(s T) Vec3[T] { return Vec3[T]{v.X + s, v.Y + s, v.Z + s} }
func (v Vec3[T]) Dot(o Vec3[T]) T       { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }
func (v Vec3[T]) Floor() Vec3[T]        { return Vec3[T]{Floor(v.X), Floor(v.Y), Floor(v.Z)} }
func (v Vec3[T]) Fract() Vec3[T]        { return Vec3[T]{Fract(v.X), Fract(v.Y), Fract(v.Z)} }
func (v Vec3[T]) Abs() Vec3[T]          { return Vec3[T]{Abs(v.X), Abs(v.Y), Abs(v.Z)} }
func (v Vec3[T]) Len() T                { return Sqrt(v.Dot(v)) }

func (v Vec3[T]) Min(o Vec3[T]) Vec3[T] {
	return Vec3[T]{min(v.X, o.X), min(v.Y, o.Y), min(v.Z, o.Z)}
}

func (v Vec3[T]) Max(o Vec3[T]) Vec3[T] {
	return Vec3[T]{max(v.X, o.X), max(v.Y, o.Y), max(v.Z, o.Z)}
}

func (v Vec3[T]) Mod(m Vec3[T]) Vec3[T] {
	return Vec3[T]{Mod(v.X, m.X), Mod(v.Y, m.Y), Mod(v.Z, m.Z)}
}

func (v Vec3[T]) Lerp(o Vec3[T], t T) Vec3[T] {
	return Vec3[T]{Lerp(v.X, o.X, t), Lerp(v.Y, o.Y, t), Lerp(v.Z, o.Z, t)}
}

// --- Vec4 ---

func (v Vec4[T]) Add(o Vec4[T]) Vec4[T] {
	return Vec4[T]{v.X + o.X, v.Y + o.Y, v.Z + o.Z, v.W + o.W}
}

func (v Vec4[T]) Sub(o Vec4[T]) Vec4[T] {
	return Vec4[T]{v.X - o.X, v.Y - o.Y, v.Z - o.Z, v.W - o.W}
}

func (v Vec4[T]) Scale(s T) Vec4[T]     { return Vec4[T]{v.X * s, v.Y * s, v.Z * s, v.W * s} }
func (v Vec4[T]) AddScalar(s T) Vec4[T] { return Vec4[T]{v.X + s, v.Y + s, v.Z + s, v.W + s} }
func (v Vec4[T]) Dot(o Vec4[T]) T       { return v.X*o.X + v.Y*o.Y + v.Z*o.Z + v.W*o.W }
func (v Vec4[T]) Len() T                { return Sqrt(v.Dot(v)) }

func (v Vec4[T]) Floor() Vec4[T] {
	return Vec4[T]{Floor(v.X), Floor(v.Y), Floor(v.Z), Floor(v.W)}
}

func (v Vec4[T]) Fract() Vec4[T] {
	return Vec4[T]{Fract(v.X), Fract(v.Y), Fract(v.Z), Fract(v.W)}
}

func (v Vec4[T]) Abs() Vec4[T] {
	return Vec4[T]{Abs(v.X), Abs(v.Y), Abs(v.Z), Abs(v.W)}
}

func (v Vec4[T]) Clamp(lo, hi T) Vec4[T] {
	return Vec4[T]{Clamp(v.X, lo, hi), Clamp(v.Y, lo, hi), Clamp(v.Z, lo, hi), Clamp(v.W, lo, hi)}
}

func (v Vec4[T]) Mod(m Vec4[T]) Vec4[T] {
	return Vec4[T]{Mod(v.X, m.X), Mod(v.Y, m.Y), Mod(v.Z, m.Z), Mod(v.W, m.W)}
}
