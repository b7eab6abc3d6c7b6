package webhost

import (
	"github.com/gogpu/webhost/platform"
)

// audioBootstrap owns the audio output context and the autoplay
// workaround. Construction failure is not fatal: the surface/input path
// does not need audio, so the failure is logged and audio reports itself
// unavailable.
type audioBootstrap struct {
	ctx     platform.AudioContext
	gesture platform.ListenerHandle
}

// initAudio constructs the audio context and, when the platform reports
// it suspended (the near-universal state until a user gesture occurs),
// arranges a one-shot resume on the first click or key press.
func initAudio(p platform.Platform) *audioBootstrap {
	b := &audioBootstrap{}

	ctx, err := p.NewAudioContext()
	if err != nil {
		Logger().Warn("webhost: audio context unavailable", "err", err)
		return b
	}
	b.ctx = ctx

	if ctx.State() == platform.AudioSuspended {
		b.gesture = p.OnUserGesture(func() {
			if err := ctx.Resume(); err != nil {
				Logger().Warn("webhost: audio resume failed", "err", err)
			} else {
				Logger().Info("webhost: audio context resumed")
			}
			// One-shot: the hook removes itself after the first gesture.
			if b.gesture != nil {
				b.gesture.Remove()
				b.gesture = nil
			}
		})
	}
	return b
}

// available reports whether an audio context was constructed.
func (b *audioBootstrap) available() bool { return b.ctx != nil }

// state returns the context's lifecycle phase, AudioClosed when no
// context exists.
func (b *audioBootstrap) state() platform.AudioState {
	if b.ctx == nil {
		return platform.AudioClosed
	}
	return b.ctx.State()
}

// teardown removes the gesture hook and closes the context synchronously.
// Safe to call repeatedly.
func (b *audioBootstrap) teardown() {
	if b.gesture != nil {
		b.gesture.Remove()
		b.gesture = nil
	}
	if b.ctx != nil {
		if err := b.ctx.Close(); err != nil {
			Logger().Warn("webhost: audio close failed", "err", err)
		}
		b.ctx = nil
	}
}
