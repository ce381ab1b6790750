// Package dialogue implements the seller conversation as a topic-unlock
// machine. Topics start locked except for the openers; asking one reveals
// the seller's answer and may unlock follow-ups. The machine carries no
// financial logic: it only gates which questions are available.
package dialogue

import (
	"fmt"
	"sort"
)

// Category groups topics by conversation phase.
type Category string

const (
	CategoryGreeting  Category = "greeting"
	CategoryDiscovery Category = "discovery"
	CategoryFinancial Category = "financial"
	CategoryOffer     Category = "offer"
)

// Topic is one question the investor can ask, with the seller's canned
// response and the follow-up topics it unlocks.
type Topic struct {
	ID       string
	Category Category
	Prompt   string
	Response string
	Unlocks  []string
}

// Machine tracks which topics are available and which were already asked.
// One machine per scenario; it is not safe for concurrent use.
type Machine struct {
	topics    map[string]Topic
	available map[string]bool
	asked     map[string]bool
}

// New builds a machine from a topic list. Topics listed in openers start
// available; everything else waits to be unlocked.
func New(topics []Topic, openers []string) *Machine {
	m := &Machine{
		topics:    make(map[string]Topic, len(topics)),
		available: make(map[string]bool),
		asked:     make(map[string]bool),
	}
	for _, t := range topics {
		m.topics[t.ID] = t
	}
	for _, id := range openers {
		if _, ok := m.topics[id]; ok {
			m.available[id] = true
		}
	}
	return m
}

// Ask marks the topic as asked and unlocks its follow-ups. Returns the
// seller's response. Asking an unknown, locked or already-asked topic is
// an error.
func (m *Machine) Ask(id string) (string, error) {
	t, ok := m.topics[id]
	if !ok {
		return "", fmt.Errorf("dialogue.Ask: unknown topic %q", id)
	}
	if !m.available[id] {
		return "", fmt.Errorf("dialogue.Ask: topic %q not available yet", id)
	}
	if m.asked[id] {
		return "", fmt.Errorf("dialogue.Ask: topic %q already asked", id)
	}

	m.asked[id] = true
	for _, next := range t.Unlocks {
		if m.asked[next] {
			continue
		}
		if _, ok := m.topics[next]; ok {
			m.available[next] = true
		}
	}
	return t.Response, nil
}

// Available returns the topics that can be asked right now, sorted by
// category then ID for stable presentation.
func (m *Machine) Available() []Topic {
	var out []Topic
	for id := range m.available {
		if m.asked[id] {
			continue
		}
		out = append(out, m.topics[id])
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return categoryRank(out[i].Category) < categoryRank(out[j].Category)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// Asked reports whether the topic was already consumed.
func (m *Machine) Asked(id string) bool { return m.asked[id] }

// Exhausted reports whether no topics remain to ask.
func (m *Machine) Exhausted() bool {
	for id := range m.available {
		if !m.asked[id] {
			return false
		}
	}
	return true
}

func categoryRank(c Category) int {
	switch c {
	case CategoryGreeting:
		return 0
	case CategoryDiscovery:
		return 1
	case CategoryFinancial:
		return 2
	case CategoryOffer:
		return 3
	}
	return 4
}
