package game

import (
	"io"
	"math"
	"time"

	"github.com/hajimehoshi/oto/v2"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
)

const sfxVolume = 0.5

// SoundKind identifies the UI sound effects.
type SoundKind int

const (
	SoundGenerate SoundKind = iota
	SoundTick
	SoundToggle
)

// AudioSystem plays short procedurally synthesized effects.
type AudioSystem struct {
	ctx   *oto.Context
	ready chan struct{}
}

var globalAudio *AudioSystem

// InitAudio initializes the audio system. Failures leave audio disabled but
// the rest of the app running.
func InitAudio() error {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return err
	}
	globalAudio = &AudioSystem{ctx: ctx, ready: ready}
	return nil
}

// PlaySound fires a sound effect without blocking the render loop.
func PlaySound(kind SoundKind) {
	if globalAudio == nil {
		return
	}
	select {
	case <-globalAudio.ready:
	default:
		return
	}
	samples := generateSound(kind)
	if len(samples) == 0 {
		return
	}
	go func() {
		reader := &soundReader{data: samples}
		player := globalAudio.ctx.NewPlayer(reader)
		player.SetVolume(sfxVolume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

func generateSound(kind SoundKind) []byte {
	switch kind {
	case SoundGenerate:
		return genGenerateChime()
	case SoundTick:
		return genTick()
	case SoundToggle:
		return genToggle()
	}
	return nil
}

// genGenerateChime is a rising two-note chime played when a city is built.
func genGenerateChime() []byte {
	const dur = 0.35
	n := int(dur * SampleRate)
	buf := make([]byte, n*8)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		freq := 523.25 // C5
		if p > 0.5 {
			freq = 783.99 // G5
		}
		env := adsr(p, 0.05, 0.1, 0.6, 0.3)
		s := math.Sin(2*math.Pi*freq*t) * env * 0.5
		s += math.Sin(4*math.Pi*freq*t) * env * 0.12
		putStereoF32(buf, i, s)
	}
	return buf
}

// genTick is a short click for parameter changes.
func genTick() []byte {
	const dur = 0.05
	n := int(dur * SampleRate)
	buf := make([]byte, n*8)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.02, 0.2, 0.3, 0.5)
		s := math.Sin(2*math.Pi*1200*t) * env * 0.35
		putStereoF32(buf, i, s)
	}
	return buf
}

// genToggle is a soft blip for the 2D/3D view switch.
func genToggle() []byte {
	const dur = 0.12
	n := int(dur * SampleRate)
	buf := make([]byte, n*8)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		// Downward sweep.
		freq := 900.0 - 400.0*p
		env := adsr(p, 0.05, 0.15, 0.5, 0.4)
		s := math.Sin(2*math.Pi*freq*t) * env * 0.4
		putStereoF32(buf, i, s)
	}
	return buf
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

// putStereoF32 writes a [-1,1] sample as float32 LE to both stereo channels at frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	buf[i*8] = byte(v)
	buf[i*8+1] = byte(v >> 8)
	buf[i*8+2] = byte(v >> 16)
	buf[i*8+3] = byte(v >> 24)
	buf[i*8+4] = byte(v)
	buf[i*8+5] = byte(v >> 8)
	buf[i*8+6] = byte(v >> 16)
	buf[i*8+7] = byte(v >> 24)
}

func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}
