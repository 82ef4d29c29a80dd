package console

import (
	"sync"
	"time"
)

type BannerKind string

const (
	BannerSuccess BannerKind = "success"
	BannerError   BannerKind = "error"
)

// DefaultBannerTTL is how long a message stays up before auto-hiding
const DefaultBannerTTL = 2400 * time.Millisecond

// BannerSnapshot is a point-in-time copy of the banner slot
type BannerSnapshot struct {
	Kind    BannerKind
	Message string
	Visible bool
}

// Banner is a single message slot. Each Show replaces the current message and
// restarts the hide timer; a timer only hides the message it was started for.
type Banner struct {
	mu      sync.Mutex
	ttl     time.Duration
	seq     uint64
	current BannerSnapshot
	timer   *time.Timer
}

func NewBanner(ttl time.Duration) *Banner {
	if ttl <= 0 {
		ttl = DefaultBannerTTL
	}
	return &Banner{ttl: ttl}
}

func (b *Banner) Show(kind BannerKind, message string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.seq++
	seq := b.seq
	b.current = BannerSnapshot{Kind: kind, Message: message, Visible: true}

	if b.timer != nil {
		b.timer.Stop()
	}
	b.timer = time.AfterFunc(b.ttl, func() { b.hide(seq) })
}

func (b *Banner) Success(message string) { b.Show(BannerSuccess, message) }

func (b *Banner) Error(message string) { b.Show(BannerError, message) }

// hide clears the slot if seq still identifies the visible message
func (b *Banner) hide(seq uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if seq != b.seq {
		return
	}
	b.current.Visible = false
}

func (b *Banner) Snapshot() BannerSnapshot {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.current
}
