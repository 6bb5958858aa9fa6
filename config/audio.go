package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Combat sounds
	SoundSwing
	SoundPlayerHit
	SoundGoblinHit
	SoundPylonHit
	SoundGoblinDeath
	// Physics sounds
	SoundBounce
	// Wave sounds
	SoundWaveStart
)

// Tone is a synthesized sound effect: a square wave sliding from Frequency
// to EndFrequency.
type Tone struct {
	Frequency    float64
	EndFrequency float64
	Seconds      float64
	Volume       float64
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// SoundConfig maps sound IDs to their tones
type SoundConfig struct {
	Tones map[SoundID]Tone
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 0.5,
	}

	Sound = SoundConfig{
		Tones: map[SoundID]Tone{
			SoundSwing:       {Frequency: 880, EndFrequency: 440, Seconds: 0.08, Volume: 0.4},
			SoundPlayerHit:   {Frequency: 220, EndFrequency: 110, Seconds: 0.15, Volume: 0.8},
			SoundGoblinHit:   {Frequency: 330, EndFrequency: 200, Seconds: 0.1, Volume: 0.6},
			SoundPylonHit:    {Frequency: 150, EndFrequency: 140, Seconds: 0.2, Volume: 0.7},
			SoundGoblinDeath: {Frequency: 400, EndFrequency: 60, Seconds: 0.3, Volume: 0.6},
			SoundBounce:      {Frequency: 120, EndFrequency: 90, Seconds: 0.05, Volume: 0.3},
			SoundWaveStart:   {Frequency: 523, EndFrequency: 784, Seconds: 0.4, Volume: 0.5},
		},
	}
}
