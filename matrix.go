package orrery

import "math"

// Mat4 represents a 4x4 transformation matrix in row-major order:
//
//	| M[0]  M[1]  M[2]  M[3]  |
//	| M[4]  M[5]  M[6]  M[7]  |
//	| M[8]  M[9]  M[10] M[11] |
//	| M[12] M[13] M[14] M[15] |
//
// It is used for the camera's view and projection transforms. Points are
// treated as column vectors and multiplied on the right.
type Mat4 [16]float64

// Identity4 returns the identity transformation matrix.
func Identity4() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Multiply multiplies two matrices (m * other).
func (m Mat4) Multiply(other Mat4) Mat4 {
	var out Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			sum := 0.0
			for k := 0; k < 4; k++ {
				sum += m[row*4+k] * other[k*4+col]
			}
			out[row*4+col] = sum
		}
	}
	return out
}

// TransformPoint applies the transformation to a point and performs the
// perspective divide. The returned w is the clip-space w component before
// the divide; callers use it for depth ordering and near-plane culling.
func (m Mat4) TransformPoint(p Vec3) (out Vec3, w float64) {
	x := m[0]*p.X + m[1]*p.Y + m[2]*p.Z + m[3]
	y := m[4]*p.X + m[5]*p.Y + m[6]*p.Z + m[7]
	z := m[8]*p.X + m[9]*p.Y + m[10]*p.Z + m[11]
	w = m[12]*p.X + m[13]*p.Y + m[14]*p.Z + m[15]

	if w != 0 {
		return Vec3{X: x / w, Y: y / w, Z: z / w}, w
	}
	return Vec3{X: x, Y: y, Z: z}, w
}

// LookAt builds a view matrix for a camera at eye looking toward target,
// with up defining the camera roll.
func LookAt(eye, target, up Vec3) Mat4 {
	forward := target.Sub(eye).Normalize()
	right := forward.Cross(up).Normalize()
	trueUp := right.Cross(forward)

	// Rows are the camera basis vectors; the camera looks down -Z.
	return Mat4{
		right.X, right.Y, right.Z, -right.Dot(eye),
		trueUp.X, trueUp.Y, trueUp.Z, -trueUp.Dot(eye),
		-forward.X, -forward.Y, -forward.Z, forward.Dot(eye),
		0, 0, 0, 1,
	}
}

// Perspective builds a perspective projection matrix.
// fovY is the vertical field of view in radians.
func Perspective(fovY, aspect, near, far float64) Mat4 {
	f := 1 / math.Tan(fovY/2)
	return Mat4{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (far + near) / (near - far), 2 * far * near / (near - far),
		0, 0, -1, 0,
	}
}
