// Package score keeps the per-coin counters awarded for cleared cells.
package score

import (
	"strconv"
	"strings"

	"github.com/kamstrup/intmap"
	"github.com/plus3/coinfall/coin"
)

// DefaultMilestone is the DOGE count that unlocks the milestone event.
const DefaultMilestone = 20

// Board counts cleared cells per coin type for one session.
type Board struct {
	counts    *intmap.Map[coin.Type, int]
	threshold int
	fired     bool
}

// NewBoard creates an empty board whose milestone fires once DOGE reaches
// threshold.
func NewBoard(threshold int) *Board {
	return &Board{
		counts:    intmap.New[coin.Type, int](len(coin.All)),
		threshold: threshold,
	}
}

// Reset zeroes every counter and re-arms the milestone.
func (b *Board) Reset() {
	b.counts.Clear()
	b.fired = false
}

// RecordClear awards one point to c.
func (b *Board) RecordClear(c coin.Type) {
	if !c.Valid() {
		return
	}
	n, _ := b.counts.Get(c)
	b.counts.Put(c, n+1)
}

// Count returns the points awarded to c.
func (b *Board) Count(c coin.Type) int {
	n, _ := b.counts.Get(c)
	return n
}

// Total returns the sum of all counters.
func (b *Board) Total() int {
	total := 0
	for _, c := range coin.All {
		total += b.Count(c)
	}
	return total
}

// Milestone reports true the first time it is called with the DOGE count
// at or above the threshold, and false on every later call until Reset.
func (b *Board) Milestone() bool {
	if b.fired || b.Count(coin.DOGE) < b.threshold {
		return false
	}
	b.fired = true
	return true
}

// MilestoneFired reports whether the milestone already fired this session.
func (b *Board) MilestoneFired() bool {
	return b.fired
}

// String formats the scoreboard as BTC:n|ETH:n|DOGE:n|SOL:n|XRP:n.
func (b *Board) String() string {
	var sb strings.Builder
	for i, c := range coin.All {
		if i > 0 {
			sb.WriteByte('|')
		}
		sb.WriteString(c.String())
		sb.WriteByte(':')
		sb.WriteString(strconv.Itoa(b.Count(c)))
	}
	return sb.String()
}
