package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/hepvec/coords"
	"github.com/hupe1980/hepvec/vtype"
)

func TestPolicyDim(t *testing.T) {
	tests := []struct {
		policy Policy
		a, b   int
		want   int
	}{
		{Demote, 2, 2, 2},
		{Demote, 4, 2, 2},
		{Demote, 3, 4, 3},
		{ImputeZero, 4, 2, 3},
		{ImputeZero, 2, 3, 3},
		{ImputeZero, 4, 3, 3},
		{ImputeZero, 4, 4, 4},
		{ImputeZero, 2, 2, 2},
		{Spatial, 4, 4, 3},
		{Spatial, 3, 2, 3},
	}

	for _, tt := range tests {
		t.Run(tt.policy.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.policy.Dim(tt.a, tt.b))
			assert.Equal(t, tt.want, tt.policy.Dim(tt.b, tt.a))
		})
	}
}

func allDescriptors() []vtype.Descriptor {
	var out []vtype.Descriptor
	for _, sys := range coords.All() {
		out = append(out, vtype.Must(sys, coords.Geometric), vtype.Must(sys, coords.Momentum))
	}
	return out
}

func TestBinaryOrderIndependent(t *testing.T) {
	all := allDescriptors()
	for _, p := range []Policy{Demote, ImputeZero, Spatial} {
		for _, a := range all {
			for _, b := range all {
				ab, ba := Binary(a, b, p), Binary(b, a, p)
				require.Equal(t, ab, ba, "%s %s %s", p, a, b)
				require.Equal(t, p.Dim(a.Dim(), b.Dim()), ab.Dim())
			}
		}
	}
}

func TestBinaryKinds(t *testing.T) {
	tests := []struct {
		name   string
		a, b   vtype.Descriptor
		policy Policy
		want   vtype.Descriptor
	}{
		{
			"SameKindKept",
			vtype.Vector3D(coords.RhoPhi, coords.Eta), vtype.Vector3D(coords.RhoPhi, coords.Eta), Demote,
			vtype.Vector3D(coords.RhoPhi, coords.Eta),
		},
		{
			"MixedAzimuthalIsCartesian",
			vtype.Vector2D(coords.RhoPhi), vtype.Vector2D(coords.XY), Demote,
			vtype.Vector2D(coords.XY),
		},
		{
			"ThetaBeforeEta",
			vtype.Vector3D(coords.XY, coords.Eta), vtype.Vector3D(coords.XY, coords.Theta), Demote,
			vtype.Vector3D(coords.XY, coords.Theta),
		},
		{
			"DemoteDropsSlices",
			vtype.Vector4D(coords.RhoPhi, coords.Eta, coords.Tau), vtype.Vector2D(coords.RhoPhi), Demote,
			vtype.Vector2D(coords.RhoPhi),
		},
		{
			"ImputedSliceIsCartesian",
			vtype.Vector3D(coords.RhoPhi, coords.Eta), vtype.Vector2D(coords.RhoPhi), ImputeZero,
			vtype.Vector3D(coords.RhoPhi, coords.Z),
		},
		{
			"ImputeNeverAddsTime",
			vtype.Vector4D(coords.XY, coords.Z, coords.T), vtype.Vector2D(coords.XY), ImputeZero,
			vtype.Vector3D(coords.XY, coords.Z),
		},
		{
			"TauKeptWhenShared",
			vtype.Momentum4D(coords.RhoPhi, coords.Eta, coords.Tau), vtype.Momentum4D(coords.RhoPhi, coords.Eta, coords.Tau), Demote,
			vtype.Momentum4D(coords.RhoPhi, coords.Eta, coords.Tau),
		},
		{
			"SpatialFromFourVectors",
			vtype.Vector4D(coords.XY, coords.Z, coords.T), vtype.Vector4D(coords.XY, coords.Z, coords.T), Spatial,
			vtype.Vector3D(coords.XY, coords.Z),
		},
		{
			"SpatialFromTwoVector",
			vtype.Vector3D(coords.XY, coords.Theta), vtype.Vector2D(coords.XY), Spatial,
			vtype.Vector3D(coords.XY, coords.Z),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Binary(tt.a, tt.b, tt.policy))
		})
	}
}

func TestMomentumInfection(t *testing.T) {
	geo := vtype.Vector4D(coords.XY, coords.Z, coords.T)
	mom := vtype.Momentum4D(coords.XY, coords.Z, coords.T)

	assert.False(t, Binary(geo, geo, Demote).IsMomentum())
	assert.True(t, Binary(geo, mom, Demote).IsMomentum())
	assert.True(t, Binary(mom, geo, ImputeZero).IsMomentum())
	assert.True(t, Binary(mom, vtype.Vector2D(coords.XY), Demote).IsMomentum())
}

func TestCartesian(t *testing.T) {
	d := vtype.Momentum4D(coords.RhoPhi, coords.Eta, coords.Tau)
	assert.Equal(t, vtype.Momentum4D(coords.XY, coords.Z, coords.T), Cartesian(d))
	assert.Equal(t, vtype.Vector2D(coords.XY), Cartesian(vtype.Vector2D(coords.RhoPhi)))
}
