package systems

import (
	"math"

	"github.com/AGamesStudios/SAGE-Engine-sub003/internal/core/ecs"
	"github.com/AGamesStudios/SAGE-Engine-sub003/internal/core/ecs/components"
)

// AudioSystem handles 3D positional audio, sound effects, and background
// music. It processes entities with AudioComponent, driving playback
// through a pluggable AudioEngine with distance-based volume attenuation
// for entities that also carry a TransformComponent.
type AudioSystem struct {
	*BaseSystem

	listenerPosition ecs.Vector2
	masterVolume     float64
	audioEngine      AudioEngine
	activeSounds     map[string]*ActiveSound
}

// AudioEngine interface for audio playback abstraction.
type AudioEngine interface {
	PlaySound(soundID string, volume, pitch float64, loop bool) error
	StopSound(soundID string) error
	SetVolume(soundID string, volume float64) error
	IsPlaying(soundID string) bool
	LoadSound(soundID string, filePath string) error
	UnloadSound(soundID string) error
	SetListenerPosition(position ecs.Vector2) error
}

// ActiveSound represents a currently playing sound.
type ActiveSound struct {
	SoundID     string
	EntityID    ecs.EntityID
	Volume      float64
	Pitch       float64
	IsLoop      bool
	StartTime   int64
	Is3D        bool
	Position    ecs.Vector2
	MaxDistance float64
}

// NewAudioSystem creates a new audio system with full master volume and no
// engine attached (PlaySound/StopSound become no-ops until one is set).
func NewAudioSystem() *AudioSystem {
	return &AudioSystem{
		BaseSystem:       NewBaseSystem(string(ecs.SystemTypeAudio), AudioSystemPriority),
		listenerPosition: ecs.Vector2{X: 0, Y: 0},
		masterVolume:     1.0,
		activeSounds:     make(map[string]*ActiveSound),
	}
}

// GetRequiredComponents returns the components this system operates on.
func (as *AudioSystem) GetRequiredComponents() []ecs.ComponentType {
	return []ecs.ComponentType{ecs.ComponentTypeAudio}
}

// Update drives every AudioComponent's volume each frame: 3D-positioned
// sounds are attenuated by distance from the listener via an attached
// TransformComponent, then (re)started through the AudioEngine if flagged
// IsPlaying and not already active.
func (as *AudioSystem) Update(r *ecs.Registry, _ float64) error {
	if !as.IsActive() {
		return nil
	}

	return as.Track(func() error {
		var processed int64
		ecs.ForEach(r, ecs.ComponentTypeAudio, func(entity ecs.EntityID, audio *components.AudioComponent) {
			processed++
			if !audio.IsPlaying || audio.IsPaused {
				return
			}

			volume := audio.Volume
			if audio.Is3D {
				if transform, ok := ecs.GetComponent[components.TransformComponent](r, entity, ecs.ComponentTypeTransform); ok {
					volume = as.calculate3DVolume(transform.Position, audio.Volume, audio.MaxDistance)
				}
			} else {
				volume *= as.masterVolume
			}

			if _, active := as.activeSounds[audio.SoundID]; active {
				if as.audioEngine != nil {
					_ = as.audioEngine.SetVolume(audio.SoundID, volume)
				}
				return
			}

			as.activeSounds[audio.SoundID] = &ActiveSound{
				SoundID:     audio.SoundID,
				EntityID:    entity,
				Volume:      volume,
				Pitch:       audio.Pitch,
				IsLoop:      audio.IsLoop,
				StartTime:   audio.LastPlayTime,
				Is3D:        audio.Is3D,
				MaxDistance: audio.MaxDistance,
			}
			if as.audioEngine != nil {
				_ = as.audioEngine.PlaySound(audio.SoundID, volume, audio.Pitch, audio.IsLoop)
			}
		})
		as.AddProcessed(processed)
		return nil
	})
}

// SetAudioEngine sets the audio engine implementation.
func (as *AudioSystem) SetAudioEngine(engine AudioEngine) {
	as.audioEngine = engine
}

// GetAudioEngine returns the current audio engine.
func (as *AudioSystem) GetAudioEngine() AudioEngine {
	return as.audioEngine
}

// SetListener sets the audio listener position (usually the player).
func (as *AudioSystem) SetListener(position ecs.Vector2) {
	as.listenerPosition = position
	if as.audioEngine != nil {
		_ = as.audioEngine.SetListenerPosition(position)
	}
}

// GetListener returns the current listener position.
func (as *AudioSystem) GetListener() ecs.Vector2 {
	return as.listenerPosition
}

// SetMasterVolume sets the global volume multiplier, clamped to [0, 1].
func (as *AudioSystem) SetMasterVolume(volume float64) {
	as.masterVolume = math.Max(0.0, math.Min(1.0, volume))
}

// GetMasterVolume returns the current master volume.
func (as *AudioSystem) GetMasterVolume() float64 {
	return as.masterVolume
}

// PlaySound immediately plays a sound with given parameters, outside of
// any AudioComponent (e.g. a UI click).
func (as *AudioSystem) PlaySound(soundID string, volume, pitch float64, loop bool) error {
	if as.audioEngine == nil {
		return nil
	}
	finalVolume := volume * as.masterVolume
	return as.audioEngine.PlaySound(soundID, finalVolume, pitch, loop)
}

// StopSound stops a currently playing sound.
func (as *AudioSystem) StopSound(soundID string) error {
	if as.audioEngine == nil {
		return nil
	}
	delete(as.activeSounds, soundID)
	return as.audioEngine.StopSound(soundID)
}

// GetActiveSounds returns all currently playing sounds (a defensive copy).
func (as *AudioSystem) GetActiveSounds() map[string]*ActiveSound {
	sounds := make(map[string]*ActiveSound)
	for k, v := range as.activeSounds {
		soundCopy := *v
		sounds[k] = &soundCopy
	}
	return sounds
}

// calculate3DVolume computes volume based on distance from listener.
func (as *AudioSystem) calculate3DVolume(audioPos ecs.Vector2, baseVolume, maxDistance float64) float64 {
	distance := math.Sqrt(
		math.Pow(audioPos.X-as.listenerPosition.X, 2) +
			math.Pow(audioPos.Y-as.listenerPosition.Y, 2),
	)
	if maxDistance <= 0 || distance >= maxDistance {
		return 0.0
	}
	distanceRatio := 1.0 - (distance / maxDistance)
	return baseVolume * distanceRatio * as.masterVolume
}

// calculateDopplerPitch computes pitch based on relative velocity (a
// simplified Doppler effect).
func (as *AudioSystem) calculateDopplerPitch(velocity ecs.Vector2, basePitch float64) float64 {
	const speedOfSound = 343.0
	relativeVelocity := velocity.X + velocity.Y

	if math.Abs(relativeVelocity) < 0.1 {
		return basePitch
	}
	pitchShift := 1.0 + (relativeVelocity / speedOfSound * 0.1)
	return basePitch * pitchShift
}
