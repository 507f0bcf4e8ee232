package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/mole-rush/constants"
)

const (
	sampleRate = beep.SampleRate(48000)
)

// SoundManager plays short synthesized cues for game events
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	muted       bool
	initialized bool
}

// NewSoundManager creates a sound manager; call Initialize before use
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the speaker. Failure leaves the manager usable in
// silent mode; callers may treat the error as informational
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops playback and closes the audio system
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Close()
	sm.initialized = false
}

// SetMuted toggles all cue playback
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
}

// Muted returns the current mute state
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// PlayPop plays the target-emerge blip
func (sm *SoundManager) PlayPop() {
	sm.play(NewEnvelope(
		NewOscillator(constants.PopSoundFreq, constants.PopSoundDuration, WaveSine, sampleRate),
		constants.PopSoundDuration, constants.PopSoundAttack, constants.PopSoundRelease, sampleRate))
}

// PlayHit plays the resolved-hit chime
func (sm *SoundManager) PlayHit() {
	sm.play(NewEnvelope(
		NewOscillator(constants.HitSoundFreq, constants.HitSoundDuration, WaveSine, sampleRate),
		constants.HitSoundDuration, constants.HitSoundAttack, constants.HitSoundRelease, sampleRate))
}

// PlayMiss plays the timeout buzz
func (sm *SoundManager) PlayMiss() {
	sm.play(NewEnvelope(
		NewOscillator(constants.MissSoundFreq, constants.MissSoundDuration, WaveSquare, sampleRate),
		constants.MissSoundDuration, constants.MissSoundAttack, constants.MissSoundRelease, sampleRate))
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}
