package benchmark

import (
	"github.com/philipp01105/logtargets/core"
	"github.com/philipp01105/logtargets/target"
)

// nopSink applies the threshold like every sink but writes nothing, so
// benchmarks using it measure dispatch alone.
type nopSink struct {
	key string
}

func newNopSink(key string) target.Sink {
	return &nopSink{key: key}
}

func (s *nopSink) Kind() target.Kind { return target.KindAPI }

func (s *nopSink) Key() string { return s.key }

func (s *nopSink) Emit(_ string, level, threshold core.Level) (bool, error) {
	return level.Enabled(threshold), nil
}
