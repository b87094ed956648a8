package dlxcc

import "github.com/rs/zerolog"

// Stats captures runtime statistics and optional tracing for a search,
// mirroring the teacher's ExactCoverStats (dancing_links_xcc.go) but
// logging through a zerolog.Logger instead of the global log package, so
// callers can route it into their own structured-logging pipeline.
type Stats struct {
	Nodes     int64 // number of search-tree nodes visited
	Solutions int64 // number of solutions emitted so far
	MaxLevel  int   // deepest level reached

	// Debug enables per-primitive tracing (cover/hide/purify/...) at
	// zerolog.DebugLevel. Progress enables periodic estimate-of-completion
	// logging at zerolog.InfoLevel, every Delta nodes (mirroring the
	// teacher's stats.Delta/stats.Theta threshold); Delta<=0 falls back to
	// logging a single estimate, on the first node visited. Verbosity>0
	// together with Debug makes a progress log also include a full
	// arena dump, same as the teacher's "if debug && stats.Verbosity > 0 {
	// dump() }" inside showProgress. All are no-ops, not merely filtered,
	// when Logger is the zero value (a disabled logger), matching the
	// teacher's "if debug { ... }" gating with zero overhead when off.
	Debug     bool
	Progress  bool
	Verbosity int
	Delta     int64
	Logger    zerolog.Logger

	levels []int // node count per level, grown lazily
	theta  int64 // next node count at which progress should fire
}

func (s *Stats) enterLevel(level int) {
	if s == nil {
		return
	}
	s.Nodes++
	for len(s.levels) <= level {
		s.levels = append(s.levels, 0)
	}
	s.levels[level]++
	if level > s.MaxLevel {
		s.MaxLevel = level
	}
}

func (s *Stats) solutionFound() {
	if s == nil {
		return
	}
	s.Solutions++
	if s.Debug {
		s.Logger.Debug().Int64("solutions", s.Solutions).Int64("nodes", s.Nodes).Msg("solution emitted")
	}
}

// progressDue reports whether s.Nodes has crossed the next Delta threshold,
// advancing the threshold as a side effect. It always fires on the very
// first call (Nodes==1) so a long search logs an initial estimate even
// before its first Delta nodes have elapsed, matching the teacher's
// showProgress() call right after C1's initialize().
func (s *Stats) progressDue() bool {
	if s == nil || !s.Progress {
		return false
	}
	if s.Delta <= 0 {
		return s.Nodes == 1
	}
	if s.Nodes >= s.theta {
		s.theta = s.Nodes + s.Delta
		return true
	}
	return false
}

func (s *Stats) debugf(msg string, args ...any) {
	if s == nil || !s.Debug {
		return
	}
	s.Logger.Debug().Msgf(msg, args...)
}

func (s *Stats) progressf(msg string, args ...any) {
	if s == nil || !s.Progress {
		return
	}
	s.Logger.Info().Msgf(msg, args...)
}

// dumpf logs a full arena dump at Debug level, gated the same way the
// teacher's dump() is: once unconditionally when Debug is set, and again
// from showProgress whenever Verbosity > 0.
func (s *Stats) dumpf(dump string) {
	if s == nil || !s.Debug {
		return
	}
	s.Logger.Debug().Msg(dump)
}
