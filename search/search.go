package search

import (
	"github.com/dustin/go-humanize"
	"github.com/fernandosanchezjr/gomseq/sequence"
	log "github.com/sirupsen/logrus"
)

// cycleLength advances ms until the shift register revisits its starting
// state, up to one full period. It returns 0 if the starting state is
// never revisited within the period.
func cycleLength(ms *sequence.MSequence) uint32 {
	start := ms.State()
	for steps := uint32(1); steps <= ms.Length(); steps++ {
		ms.Advance()
		if ms.State() == start {
			return steps
		}
	}
	return 0
}

// Primitive finds generator polynomials of degree m whose shift register
// cycles through all (2^m)-1 nonzero states. Candidates are restricted to
// polynomials with a nonzero constant term; the rest can never be
// primitive. A limit of 0 returns every match.
func Primitive(m uint32, limit int) ([]uint32, error) {
	var found []uint32
	base := uint64(1) << m
	period := uint32(base - 1)
	for g := base + 1; g < base<<1; g += 2 {
		ms, err := sequence.New(m, uint32(g), 0x1)
		if err != nil {
			return nil, err
		}
		if cycleLength(ms) != period {
			continue
		}
		found = append(found, uint32(g))
		if limit > 0 && len(found) >= limit {
			break
		}
	}
	log.WithFields(log.Fields{
		"m":          m,
		"candidates": humanize.Comma(int64(base >> 1)),
		"period":     humanize.Comma(int64(period)),
		"found":      len(found),
	}).Infoln("Primitive polynomial search")
	return found, nil
}
