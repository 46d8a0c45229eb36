package engine

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/hupe1980/hepvec/convert"
	"github.com/hupe1980/hepvec/coords"
	"github.com/hupe1980/hepvec/resolve"
	"github.com/hupe1980/hepvec/vtype"
)

var (
	axisX = r3.Vec{X: 1}
	axisY = r3.Vec{Y: 1}
	axisZ = r3.Vec{Z: 1}
)

// DefaultEulerOrder is the axis order used by RotateEuler when none is given.
const DefaultEulerOrder = "zxz"

// withSpatial stores a rotated spatial part as x, y, z and passes the
// temporal slice through unchanged.
func withSpatial(v Vec, p r3.Vec) Vec {
	sys := coords.System{Azimuthal: coords.XY, Longitudinal: coords.Z, Temporal: v.Type.Temporal()}
	out := Vec{Type: vtype.Must(sys, v.Type.Flavor())}
	out.C = [4]float64{p.X, p.Y, p.Z, v.C[3]}
	return out
}

// RotateZ rotates v about the z axis. The coordinate kinds are kept: RhoPhi
// storage only turns phi.
func RotateZ(v Vec, angle float64) Vec {
	out := v
	if v.Type.Azimuthal() == coords.RhoPhi {
		out.C[1] = convert.Rectify(v.C[1] + angle)
		return out
	}
	s, c := math.Sincos(angle)
	out.C[0] = c*v.C[0] - s*v.C[1]
	out.C[1] = s*v.C[0] + c*v.C[1]
	return out
}

func rotateAbout(op string, v Vec, axis r3.Vec, angle float64) (Vec, error) {
	if err := requireDim(op, v, 3); err != nil {
		return Vec{}, err
	}
	return withSpatial(v, r3.NewRotation(angle, axis).Rotate(spatial(v))), nil
}

// RotateX rotates v about the x axis.
func RotateX(v Vec, angle float64) (Vec, error) {
	return rotateAbout("rotateX", v, axisX, angle)
}

// RotateY rotates v about the y axis.
func RotateY(v Vec, angle float64) (Vec, error) {
	return rotateAbout("rotateY", v, axisY, angle)
}

// RotateAxis rotates v by angle about the direction of axis; the magnitude
// of axis is ignored. A 2D axis is read with z = 0.
func RotateAxis(v, axis Vec, angle float64) (Vec, error) {
	return rotateAbout("rotate_axis", v, r3.Unit(spatial(axis)), angle)
}

func eulerAxis(c byte) r3.Vec {
	switch c {
	case 'x':
		return axisX
	case 'y':
		return axisY
	default:
		return axisZ
	}
}

// ValidEulerOrder reports whether order names one of the twelve proper or
// Tait-Bryan axis sequences, e.g. "zxz" or "xyz".
func ValidEulerOrder(order string) bool {
	if len(order) != 3 {
		return false
	}
	for i := 0; i < 3; i++ {
		if order[i] != 'x' && order[i] != 'y' && order[i] != 'z' {
			return false
		}
	}
	return order[0] != order[1] && order[1] != order[2]
}

// RotateEuler applies the Euler rotation (phi, theta, psi) with the given axis
// order. The vector is rotated by -phi about order[2], then by -theta about
// order[1] and finally by -psi about order[0]:
//
//	M = R_order[0](-psi) * R_order[1](-theta) * R_order[2](-phi)
func RotateEuler(v Vec, phi, theta, psi float64, order string) (Vec, error) {
	if order == "" {
		order = DefaultEulerOrder
	}
	if !ValidEulerOrder(order) {
		return Vec{}, argumentError("rotate_euler", fmt.Sprintf("invalid axis order %q", order), nil)
	}
	if err := requireDim("rotate_euler", v, 3); err != nil {
		return Vec{}, err
	}
	p := spatial(v)
	p = r3.NewRotation(-phi, eulerAxis(order[2])).Rotate(p)
	p = r3.NewRotation(-theta, eulerAxis(order[1])).Rotate(p)
	p = r3.NewRotation(-psi, eulerAxis(order[0])).Rotate(p)
	return withSpatial(v, p), nil
}

// RotateNautical applies yaw, pitch and roll, the "zyx" Euler sequence with
// roll applied first.
func RotateNautical(v Vec, yaw, pitch, roll float64) (Vec, error) {
	return RotateEuler(v, roll, pitch, yaw, "zyx")
}

// RotateQuaternion applies q v q* for q = u + i*I + j*J + k*K. The quaternion
// is not normalized, so a non-unit q also scales v by |q|^2.
func RotateQuaternion(v Vec, u, i, j, k float64) (Vec, error) {
	if err := requireDim("rotate_quaternion", v, 3); err != nil {
		return Vec{}, err
	}
	p := spatial(v)
	q := quat.Number{Real: u, Imag: i, Jmag: j, Kmag: k}
	r := quat.Mul(quat.Mul(q, quat.Number{Imag: p.X, Jmag: p.Y, Kmag: p.Z}), quat.Conj(q))
	return withSpatial(v, r3.Vec{X: r.Imag, Y: r.Jmag, Z: r.Kmag}), nil
}

// Transform applies the linear map m to the Cartesian components of v.
// m must be square with the dimension of v; the result is Cartesian.
func Transform(v Vec, m mat.Matrix) (Vec, error) {
	dim := v.Dim()
	if r, c := m.Dims(); r != dim || c != dim {
		return Vec{}, argumentError("transform", fmt.Sprintf("need a %dx%d matrix, got %dx%d", dim, dim, r, c), nil)
	}
	x, y, z, t := v.cartesian()
	in := [4]float64{x, y, z, t}
	var out [4]float64
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			out[i] += m.At(i, j) * in[j]
		}
	}
	res := Vec{Type: resolve.Cartesian(v.Type)}
	res.C = out
	return res, nil
}
