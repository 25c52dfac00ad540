package tetris

// SoundSink receives game event cues. Implementations decide what a cue
// means: a terminal bell, a log line, nothing at all.
type SoundSink interface {
	PlayBounce()  // piece landed
	PlaySuccess() // one or more rows cleared
	PlayLevelUp() // level threshold crossed
	PlayShuffle() // piece rotated
}

// NopSoundSink discards every cue.
type NopSoundSink struct{}

func (NopSoundSink) PlayBounce()  {}
func (NopSoundSink) PlaySuccess() {}
func (NopSoundSink) PlayLevelUp() {}
func (NopSoundSink) PlayShuffle() {}

// PersistenceSink loads and stores the all-time high score. The game loop
// treats persistence failures as non-fatal.
type PersistenceSink interface {
	LoadHighScore() (uint64, error)
	SaveHighScore(score uint64) error
}

// NopPersistenceSink keeps no state; the high score lives only for the
// process lifetime.
type NopPersistenceSink struct{}

func (NopPersistenceSink) LoadHighScore() (uint64, error) { return 0, nil }
func (NopPersistenceSink) SaveHighScore(uint64) error     { return nil }
