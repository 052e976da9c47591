package lewis

import (
	"github.com/deepprinciple/golewis/bondmat"
	"go.uber.org/zap"
)

// frontier is the deduplicated pool of matrices found so far, ordered
// by discovery. The index maps positional hashes to candidate slots;
// an Equal check resolves the rare hash collision.
type frontier struct {
	mats   []*bondmat.Matrix
	scores []float64
	index  map[float64][]int
	best   float64
	stall  int
}

func newFrontier() *frontier {
	return &frontier{index: make(map[float64][]int)}
}

// insert appends m unless an equal matrix is already present. Returns
// whether m was new.
func (f *frontier) insert(m *bondmat.Matrix, score float64) bool {
	h := m.Hash()
	for _, at := range f.index[h] {
		if f.mats[at].Equal(m) {
			return false
		}
	}
	f.index[h] = append(f.index[h], len(f.mats))
	f.mats = append(f.mats, m)
	f.scores = append(f.scores, score)

	return true
}

func (f *frontier) len() int { return len(f.mats) }

// searchConfig holds the bounds of one exploration phase.
type searchConfig struct {
	patience int
	maxMats  int
	depthMax int
	greedy   bool
	window   float64
}

// searcher walks the move graph from every frontier matrix, inserting
// each acceptable neighbor and recursing into it.
type searcher struct {
	env      *molEnv
	score    scoreFunc
	reactive []int
	seps     [][]int
	radius   int
	cfg      searchConfig
	f        *frontier
	log      *zap.Logger
	stop     bool
}

// run explores from every matrix currently in the frontier.
func (s *searcher) run() {
	s.stop = false
	s.explore(0)
}

// explore expands the frontier in place: the snapshot of its length at
// entry bounds this level, and any matrix inserted here is expanded by
// the recursive call. Greedy phases accept a neighbor only while the
// running best keeps improving; windowed phases accept anything within
// the window above the best.
func (s *searcher) explore(depth int) {
	if depth >= s.cfg.depthMax {
		return
	}
	n := s.f.len()
	for at := 0; at < n; at++ {
		if s.stop {
			return
		}
		m := s.f.mats[at]
		for _, mv := range validMoves(m, s.env, s.reactive, s.seps, s.radius) {
			if s.stop {
				return
			}
			next := m.Clone()
			next.Apply(mv)
			sc := s.score(next)

			if sc <= s.f.best {
				s.f.best = sc
				s.f.stall = 0
			} else {
				s.f.stall++
				if s.f.stall >= s.cfg.patience {
					s.stop = true

					return
				}
			}

			accept := false
			if s.cfg.greedy {
				accept = s.f.stall == 0
			} else {
				accept = s.cfg.window == 0 || sc-s.f.best < s.cfg.window
			}
			if !accept {
				continue
			}
			if !s.f.insert(next, sc) {
				continue
			}
			if s.f.len() >= s.cfg.maxMats {
				s.log.Debug("matrix pool limit reached", zap.Int("limit", s.cfg.maxMats))
				s.stop = true

				return
			}
			s.explore(depth + 1)
			if s.stop {
				return
			}
		}
	}
}
