package store

import (
	"sync"
	"testing"
	"time"
)

func TestChatConfigStore_Defaults(t *testing.T) {
	s := NewChatConfigStore()
	cfg := s.Get(123)

	if cfg.Mode != ModeAuto {
		t.Errorf("default mode = %v, want %v", cfg.Mode, ModeAuto)
	}
	if !cfg.BlockBots {
		t.Error("block_bots should default to true")
	}
	if !cfg.WarningsEnabled || cfg.WarningsLimit != 3 || cfg.WarningsAction != ActionMute {
		t.Errorf("unexpected warning defaults: %+v", cfg)
	}
	if cfg.WarningsMuteMinutes != 60 {
		t.Errorf("mute minutes = %d, want 60", cfg.WarningsMuteMinutes)
	}
	if !cfg.FloodEnabled || cfg.FloodMaxMsgs != 5 || cfg.FloodWindowSeconds != 10 {
		t.Errorf("unexpected flood defaults: %+v", cfg)
	}
	if cfg.RequireUsername || cfg.BlockLinks || cfg.StrictModeEnabled || cfg.SafeWelcomeEnabled {
		t.Errorf("optional filters should default off: %+v", cfg)
	}
}

func TestChatConfigStore_PutRoundTrip(t *testing.T) {
	s := NewChatConfigStore()
	cfg := s.Get(123)
	cfg.Mode = ModeFiltered
	cfg.BannedWords = []string{"casino"}
	if err := s.Put(cfg); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	got := s.Get(123)
	if got.Mode != ModeFiltered || len(got.BannedWords) != 1 {
		t.Errorf("round trip lost changes: %+v", got)
	}
}

func TestChatConfigStore_GetReturnsCopy(t *testing.T) {
	s := NewChatConfigStore()

	cfg := s.Get(123)
	cfg.Mode = ModeOff
	cfg.BannedWords = append(cfg.BannedWords, "casino")

	fresh := s.Get(123)
	if fresh.Mode != ModeAuto || len(fresh.BannedWords) != 0 {
		t.Errorf("mutating a returned config leaked into the store: %+v", fresh)
	}

	// Put stores its own copy too: later caller-side writes stay invisible.
	cfg.BannedWords = []string{"casino"}
	if err := s.Put(cfg); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	cfg.BannedWords[0] = "mutated"
	if got := s.Get(123).BannedWords[0]; got != "casino" {
		t.Errorf("stored word = %q, want casino", got)
	}
}

func TestChatConfigStore_ConcurrentAccess(t *testing.T) {
	s := NewChatConfigStore()

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				cfg := s.Get(123)
				cfg.BannedWords = append(cfg.BannedWords, "word")
				if err := s.Put(cfg); err != nil {
					t.Errorf("Put() error = %v", err)
				}
				s.RecordApproval(123)
				_ = s.Get(123).BannedWords
			}
		}()
	}
	wg.Wait()

	if got := s.Get(123).ApprovedTotal; got != 400 {
		t.Errorf("ApprovedTotal = %d, want 400", got)
	}
}

func TestChatConfigStore_DailyRollover(t *testing.T) {
	s := NewChatConfigStore()
	current := time.Date(2025, 6, 1, 23, 50, 0, 0, time.UTC)
	s.now = func() time.Time { return current }

	s.RecordApproval(123)
	s.RecordApproval(123)
	s.RecordDecline(123)

	cfg := s.Get(123)
	if cfg.ApprovedToday != 2 || cfg.DeclinedToday != 1 {
		t.Fatalf("today counters = %d/%d, want 2/1", cfg.ApprovedToday, cfg.DeclinedToday)
	}

	// Crossing midnight resets the daily window but never the totals.
	current = current.Add(20 * time.Minute)
	s.RecordDecline(123)

	cfg = s.Get(123)
	if cfg.ApprovedToday != 0 || cfg.DeclinedToday != 1 {
		t.Errorf("after rollover today = %d/%d, want 0/1", cfg.ApprovedToday, cfg.DeclinedToday)
	}
	if cfg.ApprovedTotal != 2 || cfg.DeclinedTotal != 2 {
		t.Errorf("totals = %d/%d, want 2/2", cfg.ApprovedTotal, cfg.DeclinedTotal)
	}
}

func TestWarningStore_IncrementReset(t *testing.T) {
	s := NewWarningStore()

	if got := s.Increment(1, 7); got != 1 {
		t.Errorf("first increment = %d, want 1", got)
	}
	if got := s.Increment(1, 7); got != 2 {
		t.Errorf("second increment = %d, want 2", got)
	}
	if got := s.Increment(1, 8); got != 1 {
		t.Errorf("other user increment = %d, want 1", got)
	}
	if got := s.Increment(2, 7); got != 1 {
		t.Errorf("other chat increment = %d, want 1", got)
	}

	s.Reset(1, 7)
	if got := s.Count(1, 7); got != 0 {
		t.Errorf("count after reset = %d, want 0", got)
	}
	if got := s.Count(1, 8); got != 1 {
		t.Errorf("reset leaked to another user: count = %d", got)
	}
}

func TestFloodStore_WindowPruning(t *testing.T) {
	s := NewFloodStore()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	window := 10 * time.Second

	for i := 0; i < 3; i++ {
		s.Touch(1, 7, base.Add(time.Duration(i)*time.Second), window)
	}
	if got := s.Touch(1, 7, base.Add(3*time.Second), window); got != 4 {
		t.Errorf("count inside window = %d, want 4", got)
	}
	if got := s.Touch(1, 7, base.Add(30*time.Second), window); got != 1 {
		t.Errorf("count after window elapsed = %d, want 1", got)
	}
}

func TestPendingStore_Expired(t *testing.T) {
	s := NewPendingStore()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	s.Put(PendingVerification{ChatID: 1, UserID: 7, Nonce: "a", Deadline: base.Add(time.Hour)})
	s.Put(PendingVerification{ChatID: 1, UserID: 8, Nonce: "b", Deadline: base.Add(-time.Hour)})
	s.Put(PendingVerification{ChatID: 2, UserID: 9, Nonce: "c", Deadline: base.Add(time.Hour)})

	expired := s.Expired(base)
	if len(expired) != 1 || expired[0].UserID != 8 {
		t.Errorf("Expired() = %+v, want only user 8", expired)
	}
	if got := s.Count(); got != 3 {
		t.Errorf("Count() = %d, want 3", got)
	}
	if got := s.CountChat(1); got != 2 {
		t.Errorf("CountChat(1) = %d, want 2", got)
	}

	s.Delete(1, 8)
	if _, ok := s.Get(1, 8); ok {
		t.Error("record still present after Delete")
	}
}

func TestKnownChatStore_Upsert(t *testing.T) {
	s := NewKnownChatStore()
	s.Upsert(KnownChat{ChatID: 2, Title: "Beta", Kind: "group"})
	s.Upsert(KnownChat{ChatID: 1, Title: "Alpha", Kind: "supergroup"})

	// An update without a title keeps the one we already know.
	s.Upsert(KnownChat{ChatID: 1, Kind: "supergroup"})

	all := s.All()
	if len(all) != 2 {
		t.Fatalf("All() returned %d chats, want 2", len(all))
	}
	if all[0].ChatID != 1 || all[0].Title != "Alpha" {
		t.Errorf("All()[0] = %+v, want chat 1 titled Alpha", all[0])
	}
	if all[1].ChatID != 2 {
		t.Errorf("All()[1] = %+v, want chat 2", all[1])
	}
}
