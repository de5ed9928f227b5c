package main

import (
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// Small synthesized effect set; PCM is generated once per effect and
// cached. Mirrors the settings volumes so the sliders act immediately.

type soundID uint8

const (
	sndClick soundID = iota
	sndLock
	sndHit
	sndExplosion
	sndJump
	sndDeal
	sndChip
)

const (
	sampleRate = 44100
	maxSounds  = 32
)

var (
	soundMu      sync.Mutex
	audioContext *audio.Context
	pcmCache     = make(map[soundID][]byte)
	soundPlayers = make(map[*audio.Player]struct{})
)

func initSoundContext() {
	audioContext = audio.NewContext(sampleRate)
}

// effectSpec is the tone recipe for one effect.
type effectSpec struct {
	freq  float64
	dur   float64
	decay bool
}

func specFor(id soundID) effectSpec {
	switch id {
	case sndClick:
		return effectSpec{freq: 880, dur: 0.04}
	case sndLock:
		return effectSpec{freq: 1320, dur: 0.12, decay: true}
	case sndHit:
		return effectSpec{freq: 220, dur: 0.08, decay: true}
	case sndExplosion:
		return effectSpec{freq: 90, dur: 0.5, decay: true}
	case sndJump:
		return effectSpec{freq: 520, dur: 0.35, decay: true}
	case sndDeal:
		return effectSpec{freq: 660, dur: 0.06}
	case sndChip:
		return effectSpec{freq: 1100, dur: 0.05}
	}
	return effectSpec{freq: 440, dur: 0.1}
}

// renderPCM synthesizes a 16-bit stereo sine burst.
func renderPCM(spec effectSpec) []byte {
	n := int(spec.dur * sampleRate)
	buf := make([]byte, n*4)
	for i := 0; i < n; i++ {
		amp := 0.6
		if spec.decay {
			amp *= 1 - float64(i)/float64(n)
		}
		v := int16(amp * math.MaxInt16 * math.Sin(2*math.Pi*spec.freq*float64(i)/sampleRate))
		buf[i*4] = byte(v)
		buf[i*4+1] = byte(v >> 8)
		buf[i*4+2] = byte(v)
		buf[i*4+3] = byte(v >> 8)
	}
	return buf
}

func playSound(id soundID) {
	if blockSound || audioContext == nil {
		return
	}
	vol := gs.MasterVolume * gs.EffectsVolume
	if vol <= 0 {
		return
	}

	soundMu.Lock()
	pcm, ok := pcmCache[id]
	if !ok {
		pcm = renderPCM(specFor(id))
		pcmCache[id] = pcm
	}
	for sp := range soundPlayers {
		if !sp.IsPlaying() {
			sp.Close()
			delete(soundPlayers, sp)
		}
	}
	if len(soundPlayers) >= maxSounds {
		soundMu.Unlock()
		return
	}
	p := audioContext.NewPlayerFromBytes(pcm)
	p.SetVolume(vol)
	soundPlayers[p] = struct{}{}
	soundMu.Unlock()

	p.Play()
}
