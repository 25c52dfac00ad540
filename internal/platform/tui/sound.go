package tui

import (
	"github.com/charmbracelet/log"
)

// LogSoundSink reports sound cues as debug log lines. The terminal has no
// audio device; the cues still matter for debugging the event flow.
type LogSoundSink struct {
	Logger *log.Logger
}

func (s LogSoundSink) logf(cue string) {
	if s.Logger != nil {
		s.Logger.Debug("sound cue", "cue", cue)
	}
}

func (s LogSoundSink) PlayBounce()  { s.logf("bounce") }
func (s LogSoundSink) PlaySuccess() { s.logf("success") }
func (s LogSoundSink) PlayLevelUp() { s.logf("level_up") }
func (s LogSoundSink) PlayShuffle() { s.logf("shuffle") }
