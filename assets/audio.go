package assets

import (
	"encoding/binary"
	"math"

	cfg "github.com/automoto/goblin-siege/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// ToneBank plays the synthesized sound effects. PCM is generated once per
// sound and reused for every play.
type ToneBank struct {
	context *audio.Context
	pcm     map[cfg.SoundID][]byte
}

// NewToneBank renders every tone in cfg.Sound for the context's sample rate.
func NewToneBank(ctx *audio.Context) *ToneBank {
	b := &ToneBank{context: ctx, pcm: make(map[cfg.SoundID][]byte, len(cfg.Sound.Tones))}
	for id, tone := range cfg.Sound.Tones {
		b.pcm[id] = SynthesizeTone(tone, ctx.SampleRate())
	}
	return b
}

// Play starts a new player for the sound. Unknown ids are ignored.
func (b *ToneBank) Play(id cfg.SoundID, volume float64) {
	data, ok := b.pcm[id]
	if !ok {
		return
	}
	player := b.context.NewPlayerFromBytes(data)
	player.SetVolume(volume * cfg.Sound.Tones[id].Volume)
	player.Play()
}

// SynthesizeTone renders a square wave sweeping linearly from Frequency to
// EndFrequency as 16-bit little-endian stereo PCM, the format ebiten plays.
// The last tenth of the tone fades out to avoid a click.
func SynthesizeTone(t cfg.Tone, sampleRate int) []byte {
	n := int(t.Seconds * float64(sampleRate))
	if n <= 0 {
		return nil
	}
	out := make([]byte, n*4)
	fadeStart := n - n/10
	phase := 0.0
	for i := 0; i < n; i++ {
		progress := float64(i) / float64(n)
		freq := t.Frequency + (t.EndFrequency-t.Frequency)*progress
		phase += freq / float64(sampleRate)
		phase -= math.Floor(phase)

		amp := 0.3
		if phase >= 0.5 {
			amp = -amp
		}
		if i >= fadeStart {
			amp *= float64(n-i) / float64(n-fadeStart)
		}
		s := uint16(int16(amp * math.MaxInt16))
		binary.LittleEndian.PutUint16(out[i*4:], s)
		binary.LittleEndian.PutUint16(out[i*4+2:], s)
	}
	return out
}
