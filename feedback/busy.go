package feedback

import "sync"

// BusyToken identifies one outstanding operation holding the busy indicator
type BusyToken uint64

// Busy is a reference-counted busy indicator. Every Show hands out a token; the indicator
// stays active until each token has been released, so overlapping operations cannot clear
// each other's busy state.
type Busy struct {
	mu          sync.Mutex
	next        BusyToken
	outstanding map[BusyToken]struct{}
	onChange    func(active bool)
}

// NewBusy creates an idle busy indicator. onChange, if set, runs whenever the indicator
// flips between idle and active.
func NewBusy(onChange func(active bool)) *Busy {
	return &Busy{
		outstanding: make(map[BusyToken]struct{}),
		onChange:    onChange,
	}
}

// Show marks one operation as in flight
func (b *Busy) Show() BusyToken {
	b.mu.Lock()
	b.next++
	tok := b.next
	b.outstanding[tok] = struct{}{}
	flipped := len(b.outstanding) == 1
	b.mu.Unlock()

	if flipped {
		b.notify(true)
	}
	return tok
}

// Hide releases tok. Releasing a token twice, or one never handed out, does nothing.
func (b *Busy) Hide(tok BusyToken) {
	b.mu.Lock()
	if _, ok := b.outstanding[tok]; !ok {
		b.mu.Unlock()
		return
	}
	delete(b.outstanding, tok)
	flipped := len(b.outstanding) == 0
	b.mu.Unlock()

	if flipped {
		b.notify(false)
	}
}

// Active reports whether any operation is in flight
func (b *Busy) Active() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.outstanding) > 0
}

// Outstanding returns the number of unreleased tokens
func (b *Busy) Outstanding() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.outstanding)
}

func (b *Busy) notify(active bool) {
	if b.onChange != nil {
		b.onChange(active)
	}
}
