package store

import (
	"sort"
	"sync"
	"time"
)

// All state is process memory by design: a restart loses configuration,
// counters, warnings and pending verifications. Every table is guarded by its
// own mutex so correctness does not depend on the dispatcher serializing
// events per chat.

type userKey struct {
	chatID int64
	userID int64
}

type MemoryChatConfigStore struct {
	mu      sync.Mutex
	configs map[int64]*ChatConfig
	now     func() time.Time
}

func NewChatConfigStore() *MemoryChatConfigStore {
	return &MemoryChatConfigStore{
		configs: make(map[int64]*ChatConfig),
		now:     time.Now,
	}
}

func defaultChatConfig(chatID int64, today time.Time) *ChatConfig {
	return &ChatConfig{
		ChatID:              chatID,
		Mode:                ModeAuto,
		BlockBots:           true,
		WarningsEnabled:     true,
		WarningsLimit:       3,
		WarningsMuteMinutes: 60,
		WarningsAction:      ActionMute,
		FloodEnabled:        true,
		FloodMaxMsgs:        5,
		FloodWindowSeconds:  10,
		LastStatsDate:       today,
	}
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// cloneConfig deep-copies a config so callers never share memory with the
// stored object. The platform client dispatches each update on its own
// goroutine, so the stored config may be read and rolled over concurrently.
func cloneConfig(cfg *ChatConfig) *ChatConfig {
	clone := *cfg
	clone.BannedWords = append([]string(nil), cfg.BannedWords...)
	return &clone
}

func (s *MemoryChatConfigStore) Get(chatID int64) *ChatConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneConfig(s.getLocked(chatID))
}

func (s *MemoryChatConfigStore) getLocked(chatID int64) *ChatConfig {
	today := s.now()
	cfg, ok := s.configs[chatID]
	if !ok {
		cfg = defaultChatConfig(chatID, today)
		s.configs[chatID] = cfg
	}
	if !sameDate(cfg.LastStatsDate, today) {
		cfg.LastStatsDate = today
		cfg.ApprovedToday = 0
		cfg.DeclinedToday = 0
	}
	return cfg
}

func (s *MemoryChatConfigStore) Put(cfg *ChatConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.configs[cfg.ChatID] = cloneConfig(cfg)
	return nil
}

func (s *MemoryChatConfigStore) RecordApproval(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cfg := s.getLocked(chatID)
	cfg.ApprovedTotal++
	cfg.ApprovedToday++
}

func (s *MemoryChatConfigStore) RecordDecline(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cfg := s.getLocked(chatID)
	cfg.DeclinedTotal++
	cfg.DeclinedToday++
}

type MemoryWarningStore struct {
	mu     sync.Mutex
	counts map[userKey]int
}

func NewWarningStore() *MemoryWarningStore {
	return &MemoryWarningStore{counts: make(map[userKey]int)}
}

func (s *MemoryWarningStore) Increment(chatID, userID int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := userKey{chatID, userID}
	s.counts[key]++
	return s.counts[key]
}

func (s *MemoryWarningStore) Reset(chatID, userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.counts, userKey{chatID, userID})
}

func (s *MemoryWarningStore) Count(chatID, userID int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counts[userKey{chatID, userID}]
}

type MemoryFloodStore struct {
	mu      sync.Mutex
	windows map[userKey][]time.Time
}

func NewFloodStore() *MemoryFloodStore {
	return &MemoryFloodStore{windows: make(map[userKey][]time.Time)}
}

func (s *MemoryFloodStore) Touch(chatID, userID int64, now time.Time, window time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := userKey{chatID, userID}

	var valid []time.Time
	for _, t := range s.windows[key] {
		if now.Sub(t) <= window {
			valid = append(valid, t)
		}
	}
	valid = append(valid, now)
	s.windows[key] = valid
	return len(valid)
}

type MemoryPendingStore struct {
	mu      sync.Mutex
	pending map[userKey]PendingVerification
}

func NewPendingStore() *MemoryPendingStore {
	return &MemoryPendingStore{pending: make(map[userKey]PendingVerification)}
}

func (s *MemoryPendingStore) Put(rec PendingVerification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending[userKey{rec.ChatID, rec.UserID}] = rec
}

func (s *MemoryPendingStore) Get(chatID, userID int64) (PendingVerification, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.pending[userKey{chatID, userID}]
	return rec, ok
}

func (s *MemoryPendingStore) Delete(chatID, userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.pending, userKey{chatID, userID})
}

func (s *MemoryPendingStore) Expired(now time.Time) []PendingVerification {
	s.mu.Lock()
	defer s.mu.Unlock()
	var expired []PendingVerification
	for _, rec := range s.pending {
		if now.After(rec.Deadline) {
			expired = append(expired, rec)
		}
	}
	return expired
}

func (s *MemoryPendingStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

func (s *MemoryPendingStore) CountChat(chatID int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int
	for key := range s.pending {
		if key.chatID == chatID {
			n++
		}
	}
	return n
}

type MemoryKnownChatStore struct {
	mu    sync.Mutex
	chats map[int64]KnownChat
}

func NewKnownChatStore() *MemoryKnownChatStore {
	return &MemoryKnownChatStore{chats: make(map[int64]KnownChat)}
}

func (s *MemoryKnownChatStore) Upsert(chat KnownChat) {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.chats[chat.ChatID]
	if ok && chat.Title == "" {
		chat.Title = existing.Title
	}
	s.chats[chat.ChatID] = chat
}

func (s *MemoryKnownChatStore) Get(chatID int64) (KnownChat, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	chat, ok := s.chats[chatID]
	return chat, ok
}

func (s *MemoryKnownChatStore) All() []KnownChat {
	s.mu.Lock()
	defer s.mu.Unlock()
	all := make([]KnownChat, 0, len(s.chats))
	for _, chat := range s.chats {
		all = append(all, chat)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ChatID < all[j].ChatID })
	return all
}
