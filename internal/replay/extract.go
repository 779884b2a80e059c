package replay

import (
	"io"
	"maps"

	"github.com/charmbracelet/log"
	"github.com/f3rmion/horalog/internal/mjai"
)

// Stats counts what an Extractor saw across all sources.
type Stats struct {
	Sources       int                    `json:"sources" yaml:"sources"`
	Lines         int                    `json:"lines" yaml:"lines"`                   // non-empty lines
	SkippedLines  int                    `json:"skipped_lines" yaml:"skipped_lines"`   // lines that did not decode
	SkippedEvents int                    `json:"skipped_events" yaml:"skipped_events"` // events the tracker could not apply
	Horas         int                    `json:"horas" yaml:"horas"`
	Events        map[mjai.EventType]int `json:"events" yaml:"events"`
}

// Extractor replays one or more logs and collects every win sample.
type Extractor struct {
	logger  *log.Logger
	samples []Sample
	stats   Stats
}

// NewExtractor creates an extractor. A nil logger discards log output.
func NewExtractor(logger *log.Logger) *Extractor {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Extractor{
		logger: logger,
		stats:  Stats{Events: make(map[mjai.EventType]int)},
	}
}

// ExtractFile opens path and replays it. Only a failure to open the source
// is returned; problems inside the log are skipped and counted.
func (x *Extractor) ExtractFile(path string) error {
	r, err := mjai.Open(path)
	if err != nil {
		return err
	}
	defer r.Close()

	x.Extract(path, r)
	return nil
}

// Extract replays an already opened reader with a fresh Tracker. source
// labels the samples and log lines.
func (x *Extractor) Extract(source string, r *mjai.Reader) {
	tracker := NewTracker()
	before := len(x.samples)
	x.stats.Sources++

	for res := range r.Results() {
		x.stats.Lines++
		if !res.OK() {
			x.stats.SkippedLines++
			x.logger.Debug("skipping line", "source", source, "line", res.Line, "reason", res.Skip)
			continue
		}

		ev := res.Event
		x.stats.Events[ev.Type]++
		if ev.Type == mjai.EventHora {
			x.stats.Horas++
		}

		sample, err := tracker.Apply(&ev)
		if err != nil {
			x.stats.SkippedEvents++
			x.logger.Debug("skipping event", "source", source, "line", res.Line, "reason", err)
			continue
		}
		if sample != nil {
			sample.Source = source
			sample.Line = res.Line
			x.samples = append(x.samples, *sample)
		}
	}

	if err := r.Err(); err != nil {
		x.logger.Warn("log ended early", "source", source, "err", err)
	}
	x.logger.Info("replayed log",
		"source", source,
		"compression", r.Compression(),
		"samples", len(x.samples)-before,
	)
}

// Samples returns the collected samples in capture order.
func (x *Extractor) Samples() []Sample {
	out := make([]Sample, len(x.samples))
	copy(out, x.samples)
	return out
}

// Stats returns a snapshot of the counters.
func (x *Extractor) Stats() Stats {
	s := x.stats
	s.Events = maps.Clone(x.stats.Events)
	return s
}

// ExtractSamples replays every path and returns all samples. It stops at the
// first source that cannot be opened.
func ExtractSamples(logger *log.Logger, paths ...string) ([]Sample, error) {
	x := NewExtractor(logger)
	for _, p := range paths {
		if err := x.ExtractFile(p); err != nil {
			return nil, err
		}
	}
	return x.Samples(), nil
}
