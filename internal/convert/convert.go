// Package convert is the application-level conversion service shared by the
// CLI and the HTTP server. It applies the sanitize boundary guard and the word
// limit, resolves the direction, runs the transliterator and optionally
// records the conversion in the history.
package convert

import (
	"context"

	"go.uber.org/zap"

	"codeberg.org/snonux/kirlot/internal/sanitize"
	"codeberg.org/snonux/kirlot/internal/script"
	"codeberg.org/snonux/kirlot/internal/translit"
)

// Recorder persists finished conversions.
type Recorder interface {
	Record(ctx context.Context, dir translit.Direction, source, result string) error
}

// Request describes one conversion.
type Request struct {
	Text      string
	Direction translit.Direction
	// MaxWords truncates the input to this many words; zero disables it.
	MaxWords int
}

// Result is the outcome of a conversion.
type Result struct {
	Text      string
	Direction translit.Direction
	Words     int
	Truncated bool
}

// Service converts text. It is safe for concurrent use when its Recorder is.
type Service struct {
	engine   *translit.Transliterator
	recorder Recorder
	logger   *zap.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithRecorder records every non-empty conversion through r.
func WithRecorder(r Recorder) Option {
	return func(s *Service) { s.recorder = r }
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewService creates a Service around engine. A nil engine gets a fresh one.
func NewService(engine *translit.Transliterator, opts ...Option) *Service {
	if engine == nil {
		engine = translit.New()
	}
	s := &Service{engine: engine, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Convert sanitizes req.Text, applies the word limit and converts it.
// Whitespace-only input yields an empty result. Recording failures are
// logged and never fail the conversion.
func (s *Service) Convert(ctx context.Context, req Request) (Result, error) {
	dir, err := translit.ParseDirection(string(req.Direction))
	if err != nil {
		return Result{}, err
	}

	text := sanitize.Sanitize(req.Text)
	text, truncated := sanitize.LimitWords(text, req.MaxWords)

	res := Result{
		Direction: translit.Resolve(dir, text),
		Words:     sanitize.WordCount(text),
		Truncated: truncated,
	}
	if script.Validate(text) != nil {
		return res, nil
	}

	res.Text = s.engine.Convert(text, res.Direction)

	s.logger.Debug("converted text",
		zap.String("direction", string(res.Direction)),
		zap.Int("words", res.Words),
		zap.Bool("truncated", truncated),
	)

	if s.recorder != nil {
		if err := s.recorder.Record(ctx, res.Direction, text, res.Text); err != nil {
			s.logger.Warn("failed to record conversion", zap.Error(err))
		}
	}

	return res, nil
}
