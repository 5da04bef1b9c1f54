package core

import (
	"sort"
	"sync"
	"time"
)

// Banner is a type that provides details for a transient on-screen
// notification banner
type Banner interface {
	BannerPriority() Priority
	Cancel()
	// Done reports whether the banner should no longer be shown at now.
	Done(now time.Time) bool
}

// BannerService provides methods for creating and managing on-screen
// banners. Add is safe for concurrent use and never blocks; Top must be
// called from the UI goroutine.
type BannerService interface {
	// Add establishes a new banner managed by the service.
	Add(Banner)
	// Top returns the banner that should be displayed at now.
	Top(now time.Time) Banner
}

type bannerService struct {
	invalidate func()

	pendingLock sync.Mutex
	newBanners  []Banner

	banners []Banner
}

var _ BannerService = &bannerService{}

// NewBannerService constructs a BannerService. The invalidate function,
// if any, is called after every Add so the UI can redraw.
func NewBannerService(invalidate func()) BannerService {
	return &bannerService{
		invalidate: invalidate,
	}
}

// Add queues a banner to be picked up by the next call to Top.
func (b *bannerService) Add(banner Banner) {
	b.pendingLock.Lock()
	b.newBanners = append(b.newBanners, banner)
	b.pendingLock.Unlock()
	if b.invalidate != nil {
		b.invalidate()
	}
}

func (b *bannerService) Top(now time.Time) Banner {
	b.pendingLock.Lock()
	added := b.newBanners
	b.newBanners = nil
	b.pendingLock.Unlock()
	if len(added) > 0 {
		b.banners = append(b.banners, added...)
		// stable, so banners of equal priority show in arrival order
		sort.SliceStable(b.banners, func(i, j int) bool {
			return b.banners[i].BannerPriority() > b.banners[j].BannerPriority()
		})
	}
	for len(b.banners) > 0 && b.banners[0].Done(now) {
		b.banners = b.banners[1:]
	}
	if len(b.banners) < 1 {
		return nil
	}
	return b.banners[0]
}

type Priority uint8

const (
	Debug Priority = iota
	Info
	Warn
	Error
)

// TextBanner requests a banner displaying the provided text. It is
// removed when cancelled or, if Until is set, once Until has passed.
type TextBanner struct {
	Priority
	Text      string
	Until     time.Time
	cancelled bool
}

// NewTimedBanner returns a TextBanner that disappears after d.
func NewTimedBanner(priority Priority, text string, now time.Time, d time.Duration) *TextBanner {
	return &TextBanner{
		Priority: priority,
		Text:     text,
		Until:    now.Add(d),
	}
}

func (l *TextBanner) BannerPriority() Priority {
	return l.Priority
}

func (l *TextBanner) Cancel() {
	l.cancelled = true
}

func (l *TextBanner) Done(now time.Time) bool {
	if l.cancelled {
		return true
	}
	return !l.Until.IsZero() && !now.Before(l.Until)
}
