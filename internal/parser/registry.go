package parser

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Scores for how a verb phrase matched the start of the input.
const (
	scoreExact  = 1.0
	scoreAlias  = 0.97
	scorePrefix = 0.9
	scoreFuzzy  = 0.72
	// fuzzyEditCost is taken off scoreFuzzy per edit.
	fuzzyEditCost = 0.08
	maxAlternates = 4
)

// verbPhrase is one spelling of a verb: its canonical name or an alias, possibly several words.
type verbPhrase struct {
	verb  string
	text  string
	words []string
}

func (p verbPhrase) isAlias() bool { return p.text != p.verb }

// Registry maps typed verbs and their aliases onto command definitions.
type Registry struct {
	defs    map[string]CommandDef
	phrases []verbPhrase
}

func NewRegistry() *Registry {
	return &Registry{defs: make(map[string]CommandDef)}
}

func (r *Registry) RegisterCommand(c CommandDef) {
	c.Canonical = normaliseInput(c.Canonical)
	if c.Canonical == "" {
		return
	}
	if c.HandlerKey == "" {
		c.HandlerKey = c.Canonical
	}
	r.defs[c.Canonical] = c

	for _, spelling := range append([]string{c.Canonical}, c.Aliases...) {
		text := normaliseInput(spelling)
		if text == "" {
			continue
		}
		r.phrases = append(r.phrases, verbPhrase{verb: c.Canonical, text: text, words: tokenise(text)})
	}
}

func (r *Registry) command(canonical string) (CommandDef, bool) {
	def, ok := r.defs[normaliseInput(canonical)]
	return def, ok
}

// verbMatch is a candidate verb for the input and how many leading tokens it used.
type verbMatch struct {
	Canonical string
	Consumed  int
	Score     float64
}

// match scores every phrase against the leading tokens and returns the best verb plus
// up to maxAlternates runners-up with distinct verbs.
func (r *Registry) match(tokens []string) (verbMatch, []verbMatch) {
	if len(tokens) == 0 {
		return verbMatch{}, nil
	}
	input := strings.Join(tokens, " ")
	found := make([]verbMatch, 0, len(r.phrases))
	for _, p := range r.phrases {
		if m, ok := p.score(tokens, input); ok {
			found = append(found, m)
		}
	}
	if len(found) == 0 {
		return verbMatch{}, nil
	}

	sort.SliceStable(found, func(i, j int) bool {
		a, b := found[i], found[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.Consumed != b.Consumed {
			return a.Consumed > b.Consumed
		}
		return a.Canonical < b.Canonical
	})

	best := found[0]
	seen := map[string]bool{best.Canonical: true}
	var alts []verbMatch
	for _, m := range found[1:] {
		if len(alts) == maxAlternates {
			break
		}
		if !seen[m.Canonical] {
			seen[m.Canonical] = true
			alts = append(alts, m)
		}
	}
	return best, alts
}

// score tries, in order, an exact spelling, a prefix of a one-word verb ("upg"), and a
// levenshtein match for typos ("upgrde").
func (p verbPhrase) score(tokens []string, input string) (verbMatch, bool) {
	if len(p.words) == 0 {
		return verbMatch{}, false
	}
	n := min(len(tokens), len(p.words))
	head := strings.Join(tokens[:n], " ")
	m := verbMatch{Canonical: p.verb, Consumed: n}

	switch {
	case n == len(p.words) && head == p.text:
		m.Score = scoreExact
		if p.isAlias() {
			m.Score = scoreAlias
		}
		return m, true
	case len(p.words) == 1 && len(tokens[0]) >= 2 && strings.HasPrefix(p.text, tokens[0]):
		m.Consumed = 1
		m.Score = scorePrefix
		return m, true
	case len(head) < 3:
		return verbMatch{}, false
	}

	edits := levenshtein.ComputeDistance(head, p.text)
	if edits > maxEdits(len(p.text)) {
		return verbMatch{}, false
	}
	m.Score = scoreFuzzy - fuzzyEditCost*float64(edits)
	if strings.Contains(input, p.text) {
		m.Score += 0.04
	}
	if p.isAlias() {
		m.Score += 0.03
	}
	return m, true
}

// maxEdits allows one typo per four letters, up to three.
func maxEdits(length int) int {
	return min(3, (length+3)/4)
}

// DefaultRegistry holds the battle verbs plus the menu verbs the clients handle themselves.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	commands := []CommandDef{
		{Canonical: "help", Aliases: []string{"h", "commands", "?"}, MinArgs: 0, MaxArgs: 0, HandlerKey: "help"},
		{Canonical: "status", Aliases: []string{"stats", "info", "castle", "resources"}, MinArgs: 0, MaxArgs: 0, HandlerKey: "status"},
		{Canonical: "units", Aliases: []string{"army", "troops", "list units"}, MinArgs: 0, MaxArgs: 0, HandlerKey: "units"},
		{Canonical: "recruit", Aliases: []string{"train", "hire", "build", "summon", "r"}, MinArgs: 1, MaxArgs: 1, HandlerKey: "recruit"},
		{Canonical: "upgrade", Aliases: []string{"upgrade castle", "fortify", "improve castle", "u"}, MinArgs: 0, MaxArgs: 0, HandlerKey: "upgrade"},
		{Canonical: "select", Aliases: []string{"sel", "pick", "choose"}, MinArgs: 1, MaxArgs: 4, HandlerKey: "select"},
		{Canonical: "deselect", Aliases: []string{"unselect", "select none", "clear selection", "clear"}, MinArgs: 0, MaxArgs: 0, HandlerKey: "deselect"},
		{Canonical: "move", Aliases: []string{"go", "march", "walk", "send"}, MinArgs: 2, MaxArgs: 2, HandlerKey: "move"},
		{Canonical: "attack", Aliases: []string{"charge", "assault", "command attack", "siege"}, MinArgs: 0, MaxArgs: 0, HandlerKey: "attack"},
		{Canonical: "stop", Aliases: []string{"halt", "hold", "recall", "stand down"}, MinArgs: 0, MaxArgs: 0, HandlerKey: "stop"},
		{Canonical: "harvest", Aliases: []string{"gather", "collect", "mine", "chop"}, MinArgs: 2, MaxArgs: 2, HandlerKey: "harvest"},

		// Client verbs, never sent to the battle.
		{Canonical: "menu", Aliases: []string{"back", "retreat", "surrender"}, MinArgs: 0, MaxArgs: 0, HandlerKey: "menu"},
		{Canonical: "quit", Aliases: []string{"exit", "q"}, MinArgs: 0, MaxArgs: 0, HandlerKey: "quit"},
	}
	for _, cmd := range commands {
		r.RegisterCommand(cmd)
	}
	return r
}
