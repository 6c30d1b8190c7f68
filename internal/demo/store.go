// Package demo runs an in-process stand-in for the chatbot backend so the
// console can be tried without the real service. It keeps everything in
// memory and answers with canned replies.
package demo

import (
	"fmt"
	"strings"
	"sync"

	"github.com/zhubert/botconsole/internal/bot"
	"github.com/zhubert/botconsole/internal/errors"
)

// SeedTriggers are installed in every new store
var SeedTriggers = []bot.Trigger{
	{Name: "pricing", Keywords: []string{"pricing", "catalog", "products"}, Type: bot.KindImage, Path: "https://picsum.photos/seed/pricing/600/400"},
	{Name: "greeting", Keywords: []string{"hello", "hi", "hey"}, Type: bot.KindAudio, Path: "https://example.com/audio/greeting.mp3"},
}

// ErrDuplicate is returned when adding a trigger whose name is taken
var ErrDuplicate = errors.E(errors.Op("demo.AddTrigger"), errors.KindInvalid, "trigger already exists")

// ErrNotFound is returned when deleting an unknown trigger
var ErrNotFound = errors.E(errors.Op("demo.DeleteTrigger"), errors.KindInvalid, "trigger not found")

// Store is the stub backend's state
type Store struct {
	mu            sync.RWMutex
	triggers      []bot.Trigger
	delay         bot.DelaySettings
	sessions      map[string]struct{}
	conversations int
}

// NewStore returns a store holding the seed triggers and default delays
func NewStore() *Store {
	triggers := make([]bot.Trigger, len(SeedTriggers))
	copy(triggers, SeedTriggers)
	return &Store{
		triggers: triggers,
		delay:    bot.DelaySettings{}.WithDefaults(),
		sessions: make(map[string]struct{}),
	}
}

// Stats returns the distinct users seen and the number of chat messages handled
func (s *Store) Stats() bot.Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return bot.Stats{ActiveSessions: len(s.sessions), TotalConversations: s.conversations}
}

// Triggers returns a copy of the trigger list
func (s *Store) Triggers() []bot.Trigger {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]bot.Trigger, len(s.triggers))
	copy(out, s.triggers)
	return out
}

// Delay returns the current delay settings
func (s *Store) Delay() bot.DelaySettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.delay
}

// SetDelay replaces the delay settings
func (s *Store) SetDelay(d bot.DelaySettings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.delay = d
}

// AddTrigger appends t. Names are unique.
func (s *Store) AddTrigger(t bot.Trigger) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.triggers {
		if existing.Name == t.Name {
			return ErrDuplicate
		}
	}
	s.triggers = append(s.triggers, t)
	return nil
}

// DeleteTrigger removes the trigger called name
func (s *Store) DeleteTrigger(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range s.triggers {
		if t.Name == name {
			s.triggers = append(s.triggers[:i], s.triggers[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// Chat records a message from userID and returns the reply with its nominal
// typing delay in seconds.
func (s *Store) Chat(userID, message string) (string, float64) {
	s.mu.Lock()
	s.sessions[userID] = struct{}{}
	s.conversations++
	triggers := append([]bot.Trigger(nil), s.triggers...)
	delay := s.delay
	s.mu.Unlock()

	reply := replyFor(message, triggers)
	return reply, delay.Estimate(len(strings.Fields(reply)))
}

// replyFor picks a canned reply. A keyword match mentions the trigger the
// real backend would fire.
func replyFor(message string, triggers []bot.Trigger) string {
	words := strings.Fields(strings.ToLower(message))
	for _, t := range triggers {
		for _, kw := range t.Keywords {
			for _, w := range words {
				if strings.Trim(w, ".,!?") == strings.ToLower(kw) {
					return fmt.Sprintf("Sure! Sending our %s %s now.", t.Name, kindNoun(t.Type))
				}
			}
		}
	}
	return fmt.Sprintf("Thanks for your message! You said: %q. A teammate will follow up soon.", strings.TrimSpace(message))
}

func kindNoun(k bot.Kind) string {
	if k == bot.KindAudio {
		return "voice note"
	}
	return "image"
}
