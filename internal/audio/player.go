package audio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/vorbis"
	"github.com/faiface/beep/wav"
	"go.uber.org/zap"
)

var ErrUnsupported = errors.New("unsupported audio format")

type decodeFunc func(f *os.File) (beep.StreamSeekCloser, beep.Format, error)

var decoders = map[string]decodeFunc{
	".mp3": func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) { return mp3.Decode(f) },
	".ogg": func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) { return vorbis.Decode(f) },
	".wav": func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) { return wav.Decode(f) },
}

// Player plays the audio of one chart. It is started once, when the engine
// reaches song time zero.
type Player struct {
	streamer beep.StreamSeekCloser
	format   beep.Format
	log      *zap.Logger
	started  bool
}

func Open(path string, log *zap.Logger) (*Player, error) {
	decode, ok := decoders[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnsupported, path)
	}
	if nil == log {
		log = zap.NewNop()
	}

	f, err := os.Open(path)
	if nil != err {
		return nil, fmt.Errorf("unable to open audio: %w", err)
	}
	streamer, format, err := decode(f)
	if nil != err {
		f.Close()
		return nil, fmt.Errorf("unable to decode %v: %w", path, err)
	}
	log.Info("opened audio",
		zap.String("file", path),
		zap.Int("sample_rate", int(format.SampleRate)),
		zap.Int("channels", format.NumChannels),
		zap.Duration("length", format.SampleRate.D(streamer.Len())),
	)
	return &Player{streamer: streamer, format: format, log: log}, nil
}

func (p *Player) Length() time.Duration {
	return p.format.SampleRate.D(p.streamer.Len())
}

// Position is how far playback has progressed.
func (p *Player) Position() time.Duration {
	speaker.Lock()
	defer speaker.Unlock()
	return p.format.SampleRate.D(p.streamer.Position())
}

// Start initialises the speaker and begins playback. Later calls do nothing.
func (p *Player) Start() error {
	if p.started {
		return nil
	}
	if err := speaker.Init(p.format.SampleRate, p.format.SampleRate.N(time.Second/60)); nil != err {
		return fmt.Errorf("unable to initialise speaker: %w", err)
	}
	p.started = true
	speaker.Play(p.streamer)
	p.log.Debug("audio started")
	return nil
}

func (p *Player) Close() error {
	if p.started {
		speaker.Clear()
	}
	return p.streamer.Close()
}

var _ io.Closer = (*Player)(nil)
