package query

import (
	"github.com/rs/zerolog"

	"github.com/kbukum/querykit/logger"
)

// Trace logs every value that passes through at debug level, plus one line
// when the sequence ends or fails. operator names the pipeline stage in the
// log output.
func (s *Sequence[T]) Trace(l *logger.Logger, operator string) *Sequence[T] {
	requireSequence("source", s)
	if l == nil {
		panic(argNotLogger())
	}
	log := l.WithFields(logger.Fields(logger.FieldOperator, operator))
	return derive(s, func(src Iterator[T]) Iterator[T] {
		return &traceIter[T]{source: src, log: log, verbose: log.Enabled(zerolog.DebugLevel)}
	})
}

type traceIter[T any] struct {
	source  Iterator[T]
	log     *logger.Logger
	verbose bool
	index   int
	ended   bool
}

func (it *traceIter[T]) Next() (T, bool, error) {
	val, ok, err := it.source.Next()
	switch {
	case err != nil:
		it.ended = true
		it.log.WithError(err).Error("sequence failed", logger.Fields(logger.FieldElements, it.index))
	case !ok:
		if !it.ended {
			it.ended = true
			it.log.Debug("sequence exhausted", logger.Fields(logger.FieldElements, it.index))
		}
	default:
		if it.verbose {
			it.log.Debug("element", logger.Fields(logger.FieldIndex, it.index, logger.FieldElement, val))
		}
		it.index++
	}
	return val, ok, err
}

func (it *traceIter[T]) Close() error { return it.source.Close() }
