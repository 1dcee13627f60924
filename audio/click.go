package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Click plays a short decaying tone each time a node settles. Opening a
// node sounds a fifth above closing it.
type Click struct {
	mu          sync.Mutex
	frequency   float64
	duration    time.Duration
	initialized bool
}

func NewClick(frequency float64, duration time.Duration) *Click {
	if frequency <= 0 {
		frequency = 880
	}
	if duration <= 0 {
		duration = 40 * time.Millisecond
	}
	return &Click{frequency: frequency, duration: duration}
}

// Init opens the speaker. Callers treat failure as non-fatal.
func (c *Click) Init() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	c.initialized = true
	return nil
}

// Configure updates pitch and length for subsequent clicks.
func (c *Click) Configure(frequency float64, duration time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if frequency > 0 {
		c.frequency = frequency
	}
	if duration > 0 {
		c.duration = duration
	}
}

// Play sounds the click for a node settling at settled (0 or 1).
func (c *Click) Play(settled float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	s, err := c.streamer(settled)
	if err != nil {
		return
	}
	speaker.Play(s)
}

func (c *Click) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	c.initialized = false
}

func (c *Click) streamer(settled float64) (beep.Streamer, error) {
	freq := c.frequency
	if settled >= 1 {
		freq *= 1.5
	}
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return nil, err
	}
	return decay(sampleRate.N(c.duration), sine), nil
}

// decay takes n samples from s with a linear fade to silence.
func decay(n int, s beep.Streamer) beep.Streamer {
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= n {
			return 0, false
		}
		want := len(samples)
		if rest := n - pos; want > rest {
			want = rest
		}
		got, ok := s.Stream(samples[:want])
		for i := 0; i < got; i++ {
			gain := 1 - float64(pos+i)/float64(n)
			samples[i][0] *= gain
			samples[i][1] *= gain
		}
		pos += got
		return got, ok || got > 0
	})
}
