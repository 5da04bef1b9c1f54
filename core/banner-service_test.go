package core

import (
	"sync"
	"testing"
	"time"
)

func TestBannerServicePriority(t *testing.T) {
	invalidated := 0
	s := NewBannerService(func() { invalidated++ })
	now := time.Now()
	info := &TextBanner{Priority: Info, Text: "info"}
	warn := &TextBanner{Priority: Warn, Text: "warn"}
	laterWarn := &TextBanner{Priority: Warn, Text: "later"}
	s.Add(info)
	s.Add(warn)
	s.Add(laterWarn)
	if invalidated != 3 {
		t.Errorf("invalidated %d times, want 3", invalidated)
	}
	if top := s.Top(now); top != warn {
		t.Fatalf("Top() = %v, want warn", top)
	}
	warn.Cancel()
	if top := s.Top(now); top != laterWarn {
		t.Fatalf("Top() = %v, want later warn", top)
	}
	laterWarn.Cancel()
	if top := s.Top(now); top != info {
		t.Fatalf("Top() = %v, want info", top)
	}
	info.Cancel()
	if top := s.Top(now); top != nil {
		t.Fatalf("Top() = %v, want nil", top)
	}
}

func TestTimedBannerExpires(t *testing.T) {
	s := NewBannerService(nil)
	now := time.Now()
	b := NewTimedBanner(Info, "saved", now, time.Second)
	s.Add(b)
	if s.Top(now.Add(999*time.Millisecond)) != b {
		t.Fatalf("banner expired early")
	}
	if top := s.Top(now.Add(time.Second)); top != nil {
		t.Fatalf("banner still shown at its deadline")
	}
}

func TestUntimedBannerStays(t *testing.T) {
	b := &TextBanner{Priority: Error, Text: "offline"}
	if b.Done(time.Now().Add(24 * time.Hour)) {
		t.Errorf("banner without deadline expired")
	}
}

func TestBannerServiceAddFromUIGoroutine(t *testing.T) {
	s := NewBannerService(nil)
	now := time.Now()
	var first *TextBanner
	// Many adds within one frame, before Top ever runs.
	for i := 0; i < 100; i++ {
		b := &TextBanner{Priority: Info}
		if first == nil {
			first = b
		}
		s.Add(b)
	}
	urgent := &TextBanner{Priority: Error}
	s.Add(urgent)
	if top := s.Top(now); top != urgent {
		t.Fatalf("Top() = %v, want the error banner", top)
	}
	urgent.Cancel()
	if top := s.Top(now); top != first {
		t.Fatalf("Top() = %v, want the first info banner", top)
	}
}

func TestBannerServiceConcurrentAdd(t *testing.T) {
	s := NewBannerService(nil)
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Add(&TextBanner{Priority: Warn})
		}()
	}
	wg.Wait()
	if s.Top(time.Now()) == nil {
		t.Fatalf("no banner after concurrent adds")
	}
}
