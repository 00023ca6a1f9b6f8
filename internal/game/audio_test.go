package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestADSREnvelope(t *testing.T) {
	// Silent at the very start, sustained in the middle, silent at the end.
	assert.InDelta(t, 0.0, adsr(0, 0.1, 0.1, 0.5, 0.2), 1e-9)
	assert.InDelta(t, 1.0, adsr(0.1, 0.1, 0.1, 0.5, 0.2), 1e-9)
	assert.InDelta(t, 0.5, adsr(0.5, 0.1, 0.1, 0.5, 0.2), 1e-9)
	assert.InDelta(t, 0.0, adsr(1.0, 0.1, 0.1, 0.5, 0.2), 1e-9)
}

func TestPutStereoF32WritesBothChannels(t *testing.T) {
	buf := make([]byte, 16)
	putStereoF32(buf, 1, 0.25)

	read := func(off int) float32 {
		bits := uint32(buf[off]) | uint32(buf[off+1])<<8 |
			uint32(buf[off+2])<<16 | uint32(buf[off+3])<<24
		return math.Float32frombits(bits)
	}
	assert.Equal(t, float32(0.25), read(8))
	assert.Equal(t, float32(0.25), read(12))
	// Frame 0 untouched.
	assert.Equal(t, float32(0), read(0))
}

func TestGenerateSoundLengths(t *testing.T) {
	for _, kind := range []SoundKind{SoundGenerate, SoundTick, SoundToggle} {
		buf := generateSound(kind)
		require.NotEmpty(t, buf)
		// Whole stereo float32 frames only.
		assert.Zero(t, len(buf)%8)
	}
	assert.Nil(t, generateSound(SoundKind(99)))
}

func TestSoundSamplesStayInRange(t *testing.T) {
	for _, kind := range []SoundKind{SoundGenerate, SoundTick, SoundToggle} {
		buf := generateSound(kind)
		for i := 0; i+4 <= len(buf); i += 4 {
			bits := uint32(buf[i]) | uint32(buf[i+1])<<8 |
				uint32(buf[i+2])<<16 | uint32(buf[i+3])<<24
			s := math.Float32frombits(bits)
			require.LessOrEqual(t, math.Abs(float64(s)), 1.0)
		}
	}
}
