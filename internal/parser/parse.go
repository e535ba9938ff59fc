package parser

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/appengine-ltd/kingdom-heroes/internal/game"
)

// MaxRepeat caps how many commands one quantity expands to.
const MaxRepeat = 10

// unitAliases maps player words onto unit type names.
var unitAliases = map[string]string{
	"farmer":     string(game.UnitPeasant),
	"worker":     string(game.UnitPeasant),
	"villager":   string(game.UnitPeasant),
	"bowman":     string(game.UnitArcher),
	"bowmen":     string(game.UnitArcher),
	"horse":      string(game.UnitCavalry),
	"horseman":   string(game.UnitCavalry),
	"horsemen":   string(game.UnitCavalry),
	"rider":      string(game.UnitCavalry),
	"musketeer":  string(game.UnitMusket),
	"gunner":     string(game.UnitMusket),
	"artillery":  string(game.UnitCannon),
	"dragoon":    string(game.UnitDragoons),
	"general":    string(game.UnitCommander),
	"captain":    string(game.UnitCommander),
	"leader":     string(game.UnitCommander),
	"troll":      string(game.UnitGiant),
	"ogre":       string(game.UnitGiant),
	"siege":      string(game.UnitCatapult),
	"trebuchet":  string(game.UnitCatapult),
	"battalions": string(game.UnitBattalion),
}

type Parser struct {
	registry *Registry
}

func New() *Parser {
	return &Parser{registry: DefaultRegistry()}
}

func (p *Parser) RegisterCommand(c CommandDef) {
	p.registry.RegisterCommand(c)
}

func (p *Parser) Parse(ctx ParseContext, raw string) Intent {
	intent := Intent{
		Raw:        raw,
		Normalised: normaliseInput(raw),
		Kind:       Unknown,
		Confidence: 0,
	}
	if intent.Normalised == "" {
		intent.Clarify = &ClarifyQuestion{Prompt: "Enter a command.", Options: nil}
		return intent
	}

	tokens := tokenise(intent.Normalised)
	cmdMatch, alternates := p.registry.match(tokens)
	if cmdMatch.Canonical == "" || cmdMatch.Score < 0.5 {
		inferred := inferFreeTextIntent(ctx, intent.Raw, intent.Normalised)
		if inferred != nil {
			return *inferred
		}
		intent.Clarify = &ClarifyQuestion{
			Prompt: "I couldn't map that to a command. Try recruit, upgrade, select, move, attack, stop, harvest, status, units, help.",
		}
		return intent
	}

	if len(alternates) > 0 && (cmdMatch.Score-alternates[0].Score) < 0.05 && alternates[0].Score > 0.65 {
		options := []Intent{
			{
				Raw:        raw,
				Normalised: cmdMatch.Canonical,
				Kind:       commandKind(cmdMatch.Canonical),
				Verb:       cmdMatch.Canonical,
				Confidence: cmdMatch.Score,
			},
			{
				Raw:        raw,
				Normalised: alternates[0].Canonical,
				Kind:       commandKind(alternates[0].Canonical),
				Verb:       alternates[0].Canonical,
				Confidence: alternates[0].Score,
			},
		}
		intent.Clarify = &ClarifyQuestion{
			Prompt:  "Did you mean:",
			Options: options,
		}
		return intent
	}

	intent.Verb = cmdMatch.Canonical
	intent.Kind = commandKind(intent.Verb)
	intent.Confidence = clampScore(cmdMatch.Score)

	argsTokens := tokens
	if cmdMatch.Consumed > 0 && len(tokens) >= cmdMatch.Consumed {
		argsTokens = tokens[cmdMatch.Consumed:]
	}
	if intent.Verb == "recruit" {
		argsTokens, intent.Quantity = splitQuantity(argsTokens)
	}

	def, _ := p.registry.command(intent.Verb)
	resolvedArgs, clarify, argScore := p.resolveArgs(ctx, def, argsTokens)
	if clarify != nil {
		intent.Clarify = clarify
		intent.Confidence = 0.45
		return intent
	}
	intent.Args = resolvedArgs
	intent.Confidence = clampScore((intent.Confidence * 0.75) + (argScore * 0.25))

	if len(intent.Args) < def.MinArgs {
		if def.Canonical == "recruit" {
			intent.Clarify = &ClarifyQuestion{
				Prompt:  "Recruit which unit?",
				Options: recruitOptions(ctx, 5),
			}
			intent.Confidence = 0.46
			return intent
		}
		intent.Clarify = &ClarifyQuestion{Prompt: fmt.Sprintf("%s needs at least %d argument(s).", def.Canonical, def.MinArgs)}
		intent.Confidence = 0.42
		return intent
	}

	if len(intent.Args) > def.MaxArgs {
		intent.Args = append([]string(nil), intent.Args[:def.MaxArgs]...)
		intent.Confidence = clampScore(intent.Confidence - 0.05)
	}

	if intent.Confidence < 0.52 && intent.Clarify == nil {
		intent.Clarify = &ClarifyQuestion{Prompt: "I have low confidence in that parse. Please rephrase or pick a clearer command."}
	}
	return intent
}

func commandKind(verb string) IntentKind {
	switch verb {
	case "help":
		return Help
	case "status", "units":
		return Query
	default:
		return Command
	}
}

func splitQuantity(tokens []string) ([]string, *Quantity) {
	if len(tokens) == 0 {
		return nil, nil
	}
	out := make([]string, 0, len(tokens))
	var q *Quantity
	for _, token := range tokens {
		if q == nil {
			if candidate := parseQuantityToken(token); candidate != nil {
				q = candidate
				continue
			}
		}
		out = append(out, token)
	}
	return out, q
}

func (p *Parser) resolveArgs(ctx ParseContext, def CommandDef, args []string) ([]string, *ClarifyQuestion, float64) {
	if len(args) == 0 {
		return nil, nil, 0.9
	}

	resolved := make([]string, 0, len(args))
	score := 0.9
	for _, token := range args {
		if isFiller(token) {
			continue
		}
		switch def.HandlerKey {
		case "recruit":
			if isPronoun(token) {
				if strings.TrimSpace(ctx.LastUnitType) == "" {
					return nil, &ClarifyQuestion{Prompt: "Recruit which unit?", Options: recruitOptions(ctx, 5)}, 0.4
				}
				resolved = append(resolved, normaliseInput(ctx.LastUnitType))
				score -= 0.08
				continue
			}
			if len(resolved) > 0 {
				score -= 0.02
				continue
			}
			matches, confidence, tie := resolveUnitType(token, ctx)
			if tie && len(matches) >= 2 {
				options := make([]Intent, 0, 2)
				for idx := 0; idx < 2; idx++ {
					options = append(options, Intent{
						Kind:       Command,
						Verb:       "recruit",
						Args:       []string{matches[idx]},
						Confidence: confidence - float64(idx)*0.01,
					})
				}
				return nil, &ClarifyQuestion{Prompt: "Which unit did you mean?", Options: options}, 0.52
			}
			if len(matches) == 1 {
				resolved = append(resolved, matches[0])
				score = minScore(score, confidence)
				continue
			}
			resolved = append(resolved, token)
			score -= 0.2
		case "select":
			switch {
			case token == "all" || token == "everything" || token == "everyone" || token == "army":
				resolved = append(resolved, "all")
			case token == "add" || token == "shift" || token == "plus" || token == "also":
				resolved = append(resolved, "add")
			case isNumber(token):
				resolved = append(resolved, token)
			default:
				score -= 0.02
			}
		case "move", "harvest":
			if isNumber(token) {
				resolved = append(resolved, token)
				continue
			}
			score -= 0.02
		default:
			resolved = append(resolved, token)
			score -= 0.02
		}
	}
	return orderSelectArgs(def.HandlerKey, resolved), nil, clampScore(score)
}

// orderSelectArgs moves a trailing "add" behind the coordinates it modifies.
func orderSelectArgs(key string, args []string) []string {
	if key != "select" {
		return args
	}
	if len(args) > 0 && args[0] == "all" {
		return []string{"all"}
	}
	add := false
	out := make([]string, 0, len(args))
	for _, a := range args {
		if a == "add" {
			add = true
			continue
		}
		out = append(out, a)
	}
	if add && len(out) == 2 {
		out = append(out, "add")
	}
	return out
}

func unitTypeNames() []string {
	types := game.AllUnitTypes()
	out := make([]string, 0, len(types))
	for _, t := range types {
		out = append(out, string(t))
	}
	return out
}

func resolveUnitType(token string, ctx ParseContext) ([]string, float64, bool) {
	n := normaliseInput(token)
	if n == "" {
		return nil, 0, false
	}
	if alias, ok := unitAliases[n]; ok {
		return []string{alias}, 0.97, false
	}
	if alias, ok := unitAliases[singular(n)]; ok {
		return []string{alias}, 0.95, false
	}
	all := unitTypeNames()
	for _, name := range all {
		if n == name || singular(n) == name {
			return []string{name}, 1.0, false
		}
	}
	unlocked := make([]string, 0, len(ctx.Unlocked))
	for _, u := range ctx.Unlocked {
		if v := normaliseInput(u); v != "" {
			unlocked = append(unlocked, v)
		}
	}
	return bestMatches(n, all, unlocked)
}

func bestMatches(token string, all []string, boost []string) ([]string, float64, bool) {
	if len(all) == 0 {
		return nil, 0, false
	}
	type scored struct {
		val   string
		score float64
	}
	boostSet := make(map[string]bool, len(boost))
	for _, n := range boost {
		boostSet[n] = true
	}

	results := make([]scored, 0, len(all))
	for _, cand := range all {
		score := 0.0
		switch {
		case token == cand:
			score = 1.0
		case strings.HasPrefix(cand, token) && len(token) >= 2:
			score = 0.9
		default:
			dist := levenshtein.ComputeDistance(token, cand)
			if dist > maxEdits(len(cand)) {
				continue
			}
			score = 0.72 - (0.08 * float64(dist))
		}
		if boostSet[cand] {
			score += 0.08
		}
		results = append(results, scored{val: cand, score: clampScore(score)})
	}
	if len(results) == 0 {
		return nil, 0, false
	}
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].score == results[j].score {
			return results[i].val < results[j].val
		}
		return results[i].score > results[j].score
	})

	best := results[0]
	tie := len(results) > 1 && (best.score-results[1].score) < 0.05 && results[1].score > 0.6
	if tie {
		return []string{best.val, results[1].val}, best.score, true
	}
	return []string{best.val}, best.score, false
}

func recruitOptions(ctx ParseContext, maxOptions int) []Intent {
	pool := ctx.Unlocked
	if len(pool) == 0 {
		pool = unitTypeNames()
	}
	seen := map[string]bool{}
	options := make([]Intent, 0, maxOptions)
	for _, name := range pool {
		n := normaliseInput(name)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		options = append(options, Intent{
			Kind:       Command,
			Verb:       "recruit",
			Args:       []string{n},
			Confidence: 0.88,
		})
		if len(options) >= maxOptions {
			break
		}
	}
	return options
}

func inferFreeTextIntent(ctx ParseContext, raw string, normalised string) *Intent {
	n := normalised
	makeIntent := func(kind IntentKind, verb string, args []string, confidence float64) *Intent {
		return &Intent{
			Raw:        raw,
			Normalised: normalised,
			Kind:       kind,
			Verb:       verb,
			Args:       args,
			Confidence: clampScore(confidence),
		}
	}

	if containsAnyPhrase(n,
		"how much gold", "how many resources", "what do i have", "how is my castle", "how are we doing", "when is the next wave",
	) {
		return makeIntent(Query, "status", nil, 0.9)
	}
	if containsAnyPhrase(n, "how many units", "how big is my army", "who is fighting", "show my army") {
		return makeIntent(Query, "units", nil, 0.9)
	}
	if containsAnyPhrase(n, "level up the castle", "level up castle", "strengthen the castle", "make the castle stronger", "upgrade the castle") {
		return makeIntent(Command, "upgrade", nil, 0.86)
	}
	if containsAnyPhrase(n, "select everyone", "select everything", "select all units", "grab everyone", "all units") {
		return makeIntent(Command, "select", []string{"all"}, 0.86)
	}
	if containsAnyPhrase(n, "storm the castle", "take the castle", "destroy the castle") {
		return makeIntent(Command, "attack", nil, 0.84)
	}
	if containsAnyPhrase(n, "fall back", "stand down", "call off the attack", "cease fire") {
		return makeIntent(Command, "stop", nil, 0.84)
	}

	// "i need more archers", "we want two knights"
	if containsAnyPhrase(n, "i need", "we need", "i want", "we want", "give me") {
		tokens := tokenise(n)
		tokens, q := splitQuantity(tokens)
		for _, token := range tokens {
			if isFiller(token) {
				continue
			}
			matches, confidence, tie := resolveUnitType(token, ctx)
			if tie || len(matches) != 1 || confidence < 0.6 {
				continue
			}
			intent := makeIntent(Command, "recruit", matches, minScore(confidence, 0.82))
			intent.Quantity = q
			return intent
		}
	}

	return nil
}

func containsAnyPhrase(value string, phrases ...string) bool {
	for _, phrase := range phrases {
		if containsPhrase(value, phrase) {
			return true
		}
	}
	return false
}

func containsPhrase(value, phrase string) bool {
	p := normaliseInput(phrase)
	if p == "" {
		return false
	}
	return strings.Contains(" "+value+" ", " "+p+" ")
}

func minScore(a, b float64) float64 {
	if b < a {
		return b
	}
	return a
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func IntentToCommandString(intent Intent) string {
	verb := normaliseInput(intent.Verb)
	if verb == "" {
		return ""
	}
	args := make([]string, 0, len(intent.Args))
	for _, arg := range intent.Args {
		n := normaliseInput(arg)
		if n != "" {
			args = append(args, n)
		}
	}
	if len(args) == 0 {
		return verb
	}
	return verb + " " + strings.Join(args, " ")
}

// CommandStrings expands an intent into the command lines to run, repeating it for a
// quantity up to MaxRepeat times.
func CommandStrings(intent Intent) []string {
	cmd := IntentToCommandString(intent)
	if cmd == "" {
		return nil
	}
	n := 1
	if intent.Quantity != nil && intent.Quantity.N > 1 {
		n = min(intent.Quantity.N, MaxRepeat)
	}
	out := make([]string, n)
	for i := range out {
		out[i] = cmd
	}
	return out
}

// IsClientVerb reports verbs the clients handle instead of the battle.
func IsClientVerb(verb string) bool {
	return verb == "menu" || verb == "quit"
}
