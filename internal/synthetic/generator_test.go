package synthetic

import (
	"testing"

	"github.com/banshee-data/kinectstreams/internal/raster"
	"github.com/banshee-data/kinectstreams/internal/skeleton"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallGenerator(seed int64) *Generator {
	g := NewGenerator(seed)
	g.ColorWidth, g.ColorHeight = 64, 36
	g.DepthWidth, g.DepthHeight = 32, 24
	return g
}

func TestGenerator_FramesAreValid(t *testing.T) {
	g := smallGenerator(1)
	fs := g.Next()

	for _, f := range []*raster.RawFrame{fs.Color, fs.Depth, fs.Infrared} {
		require.NotNil(t, f)
		require.NoError(t, f.Validate(), f.Kind.String())
		_, err := raster.Convert(f)
		require.NoError(t, err)
	}
	assert.Equal(t, 64, fs.Color.Width)
	assert.Equal(t, 24, fs.Depth.Height)
}

func TestGenerator_Bodies(t *testing.T) {
	g := smallGenerator(2)
	g.BodyCount = 2
	g.DropHead = true
	g.InferredFraction = 0

	fs := g.Next()
	require.Len(t, fs.Bodies, 2)
	for _, b := range fs.Bodies {
		assert.True(t, b.IsTracked)
		assert.Equal(t, skeleton.NotTracked, b.Skeleton[skeleton.Head].TrackingState)
		assert.Equal(t, skeleton.Tracked, b.Skeleton[skeleton.Neck].TrackingState)
		for i, j := range b.Skeleton {
			assert.Equal(t, skeleton.JointType(i), j.Type)
			assert.Greater(t, j.Position.Z, float32(1.5), "joint %v in front of sensor", j.Type)
		}
	}
	assert.NotEqual(t, fs.Bodies[0].Skeleton[skeleton.SpineBase].Position.X, fs.Bodies[1].Skeleton[skeleton.SpineBase].Position.X)
}

func TestGenerator_Deterministic(t *testing.T) {
	a, b := smallGenerator(7), smallGenerator(7)
	for i := 0; i < 3; i++ {
		fa, fb := a.Next(), b.Next()
		if diff := cmp.Diff(fa.Bodies, fb.Bodies); diff != "" {
			t.Fatalf("tick %d bodies differ (-a +b):\n%s", i, diff)
		}
		assert.Equal(t, fa.Depth.Samples, fb.Depth.Samples)
	}
}
