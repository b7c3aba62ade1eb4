package profiler

import (
	"bytes"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-camera/engine/camera"
)

func TestProfilerTick(t *testing.T) {
	testCases := map[string]struct {
		interval time.Duration
		logged   bool
	}{
		"IntervalElapsed": {interval: 0, logged: true},
		"IntervalPending": {interval: time.Hour, logged: false},
	}

	for name, tt := range testCases {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			p := NewProfiler(WithLogger(log.New(&buf, "", 0)), WithUpdateInterval(tt.interval))

			got := p.Tick(camera.CacheStats{ViewRebuilds: 3, ProjectionRebuilds: 2})
			if got != tt.logged {
				t.Errorf("Tick() = %v, want %v", got, tt.logged)
			}
			if logged := buf.Len() > 0; logged != tt.logged {
				t.Errorf("expected output %v, got %q", tt.logged, buf.String())
			}
		})
	}
}

func TestProfilerReportsDeltas(t *testing.T) {
	var buf bytes.Buffer
	p := NewProfiler(WithLogger(log.New(&buf, "", 0)), WithUpdateInterval(0))

	p.Tick(camera.CacheStats{ProjectionRebuilds: 4, ViewPortRebuilds: 1})
	buf.Reset()
	p.Tick(camera.CacheStats{ProjectionRebuilds: 6, ViewPortRebuilds: 1})

	out := buf.String()
	for _, want := range []string{"[Profiler] FPS:", "Projection rebuilds: 2 ", "Viewport rebuilds: 0 "} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in %q", want, out)
		}
	}
}
