package bot

import (
	"strings"

	"github.com/zhubert/botconsole/internal/errors"
)

// Trigger maps keywords to a media reply the backend sends automatically
type Trigger struct {
	Name     string   `json:"name"`
	Keywords []string `json:"keywords"`
	Type     Kind     `json:"type"`
	Path     string   `json:"path"`
}

// IsMediaKind reports whether k is a kind a trigger can carry
func IsMediaKind(k Kind) bool {
	return k == KindImage || k == KindAudio
}

// ParseKeywords splits a comma-separated keyword field into trimmed entries.
// Entries that are blank after trimming are dropped.
func ParseKeywords(s string) []string {
	parts := strings.Split(s, ",")
	keywords := make([]string, 0, len(parts))
	for _, p := range parts {
		if k := strings.TrimSpace(p); k != "" {
			keywords = append(keywords, k)
		}
	}
	return keywords
}

// NewTrigger builds a trigger from raw form input, enforcing required-field presence.
func NewTrigger(name, keywords string, kind Kind, path string) (Trigger, error) {
	const op = errors.Op("bot.NewTrigger")

	name = strings.TrimSpace(name)
	path = strings.TrimSpace(path)
	if name == "" {
		return Trigger{}, errors.FieldRequired(op, "name")
	}
	parsed := ParseKeywords(keywords)
	if len(parsed) == 0 {
		return Trigger{}, errors.FieldRequired(op, "keywords")
	}
	if path == "" {
		return Trigger{}, errors.FieldRequired(op, "url")
	}
	if !IsMediaKind(kind) {
		return Trigger{}, errors.E(op, errors.KindInvalid, "type must be image or audio")
	}
	return Trigger{Name: name, Keywords: parsed, Type: kind, Path: path}, nil
}

// KeywordList returns the keywords joined for display
func (t Trigger) KeywordList() string {
	return strings.Join(t.Keywords, ", ")
}

// PartitionTriggers splits triggers by kind, preserving backend order.
// Triggers of any other kind are ignored.
func PartitionTriggers(triggers []Trigger) (image, audio []Trigger) {
	for _, t := range triggers {
		switch t.Type {
		case KindImage:
			image = append(image, t)
		case KindAudio:
			audio = append(audio, t)
		}
	}
	return image, audio
}
