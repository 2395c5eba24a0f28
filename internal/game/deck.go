package game

import "math/rand/v2"

// deck deals secret words from a shuffled pool and reshuffles the full
// source list when the pool runs dry, avoiding handing out the same word
// twice in a row when it can.
type deck struct {
	source []string
	pool   []string
	last   string
}

func newDeck(source []string) *deck {
	d := &deck{source: source}
	d.pool = shuffled(source)
	return d
}

func shuffled(words []string) []string {
	out := make([]string, len(words))
	copy(out, words)
	rand.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

func (d *deck) draw() string {
	d.refresh()
	word := d.pool[0]
	d.pool = d.pool[1:]
	d.last = word
	return word
}

func (d *deck) refresh() {
	if len(d.pool) > 0 {
		return
	}
	d.pool = shuffled(d.source)
	if d.last == "" || len(d.pool) < 2 || d.pool[0] != d.last {
		return
	}
	for i, word := range d.pool {
		if word != d.last {
			d.pool[0], d.pool[i] = d.pool[i], d.pool[0]
			return
		}
	}
}

func (d *deck) reset() {
	d.pool = shuffled(d.source)
}
