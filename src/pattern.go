package nucleo

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"

	"github.com/helix-editor/nucleo/src/algo"
	"github.com/helix-editor/nucleo/src/util"
)

// Case denotes case-match preference
type Case int

// Case-match preferences
const (
	CaseSmart Case = iota
	CaseIgnore
	CaseRespect
)

// fuzzy
// 'substring-exact
// ^prefix-exact
// suffix-exact$
// ^equal-exact$
// !inverse-substring-exact
// !'inverse-fuzzy
// !^inverse-prefix-exact
// !inverse-suffix-exact$

type termType int

const (
	termFuzzy termType = iota
	termExact
	termPrefix
	termSuffix
	termEqual
)

type term struct {
	typ           termType
	inv           bool
	text          []rune
	caseSensitive bool
	normalize     bool
}

type termSet []term

// ErrBadPattern is returned when the query parses to no usable terms
var ErrBadPattern = errors.New("pattern contains no matchable terms")

// Pattern represents one parsed search query: a conjunction of term sets,
// where the terms of a set are alternatives (OR)
type Pattern struct {
	caseSensitive bool
	normalize     bool
	preferPrefix  bool
	text          []rune
	termSets      []termSet
	cacheable     bool
	cacheKey      string
	cache         *ChunkCache
	procFun       map[termType]algo.Algo
}

var _splitRegex *regexp.Regexp

func init() {
	_splitRegex = regexp.MustCompile(" +")
}

// BuildPattern builds Pattern object from the given arguments
func BuildPattern(cache *ChunkCache, patternCache map[string]*Pattern,
	fuzzy bool, caseMode Case, normalize bool, preferPrefix bool, runes []rune) *Pattern {

	asString := strings.TrimLeft(string(runes), " ")
	for strings.HasSuffix(asString, " ") && !strings.HasSuffix(asString, "\\ ") {
		asString = asString[:len(asString)-1]
	}

	// We can uniquely identify the pattern for a given string since
	// the search mode and caseMode do not change while the program is running
	cached, found := patternCache[asString]
	if found {
		return cached
	}

	caseSensitive := true
	cacheable := true
	termSets := parseTerms(fuzzy, caseMode, normalize, asString)
Loop:
	for _, termSet := range termSets {
		for idx, term := range termSet {
			// If the query contains inverse search terms or OR operators,
			// we cannot cache the search scope
			if idx > 0 || term.inv || fuzzy && term.typ != termFuzzy || !fuzzy && term.typ != termExact {
				cacheable = false
				break Loop
			}
		}
	}

	ptr := &Pattern{
		caseSensitive: caseSensitive,
		normalize:     normalize,
		preferPrefix:  preferPrefix,
		text:          []rune(asString),
		termSets:      termSets,
		cacheable:     cacheable,
		cache:         cache,
		procFun:       make(map[termType]algo.Algo)}

	ptr.cacheKey = ptr.buildCacheKey()
	ptr.procFun[termFuzzy] = algo.FuzzyMatchV2
	ptr.procFun[termEqual] = algo.EqualMatch
	ptr.procFun[termExact] = algo.ExactMatchNaive
	ptr.procFun[termPrefix] = algo.PrefixMatch
	ptr.procFun[termSuffix] = algo.SuffixMatch

	patternCache[asString] = ptr
	return ptr
}

func parseTerms(fuzzy bool, caseMode Case, normalize bool, str string) []termSet {
	str = strings.ReplaceAll(str, "\\ ", "\t")
	tokens := _splitRegex.Split(str, -1)
	sets := []termSet{}
	set := termSet{}
	switchSet := false
	afterBar := false
	for _, token := range tokens {
		typ, inv, text := termFuzzy, false, strings.ReplaceAll(token, "\t", " ")
		lowerText := strings.ToLower(text)
		caseSensitive := caseMode == CaseRespect ||
			caseMode == CaseSmart && text != lowerText
		if !caseSensitive {
			text = lowerText
		}
		if !fuzzy {
			typ = termExact
		}

		if len(set) > 0 && !afterBar && text == "|" {
			switchSet = false
			afterBar = true
			continue
		}
		afterBar = false

		if strings.HasPrefix(text, "!") {
			inv = true
			typ = termExact
			text = text[1:]
		}

		if text != "$" && strings.HasSuffix(text, "$") {
			typ = termSuffix
			text = text[:len(text)-1]
		}

		if strings.HasPrefix(text, "'") {
			// Flip exactness
			if fuzzy && !inv {
				typ = termExact
			} else {
				typ = termFuzzy
			}
			text = text[1:]
		} else if strings.HasPrefix(text, "^") {
			if typ == termSuffix {
				typ = termEqual
			} else {
				typ = termPrefix
			}
			text = text[1:]
		}

		if len(text) > 0 {
			if switchSet {
				sets = append(sets, set)
				set = termSet{}
			}
			textRunes := []rune(text)
			if normalize {
				// The needle is pre-normalized so that the per-haystack
				// path never has to normalize it again
				textRunes = algo.NormalizeRunes(textRunes)
			}
			set = append(set, term{
				typ:           typ,
				inv:           inv,
				text:          textRunes,
				caseSensitive: caseSensitive,
				normalize:     normalize})
			switchSet = true
		}
	}
	if len(set) > 0 {
		sets = append(sets, set)
	}
	return sets
}

// IsEmpty returns true if the pattern is effectively empty
func (p *Pattern) IsEmpty() bool {
	return len(p.termSets) == 0
}

// AsString returns the search query in string type
func (p *Pattern) AsString() string {
	return string(p.text)
}

func (p *Pattern) buildCacheKey() string {
	cacheableTerms := []string{}
	for _, termSet := range p.termSets {
		if len(termSet) == 1 && !termSet[0].inv && termSet[0].typ == termFuzzy {
			cacheableTerms = append(cacheableTerms, string(termSet[0].text))
		}
	}
	return strings.Join(cacheableTerms, "\t")
}

// CacheKey is used to build string to be used as the key of result cache
func (p *Pattern) CacheKey() string {
	return p.cacheKey
}

// Match returns the list of matches in the given Chunk
func (p *Pattern) Match(chunk *Chunk, slab *util.Slab) []Match {
	// ChunkCache: Exact match
	cacheKey := p.CacheKey()
	if p.cacheable {
		if cached, found := p.cache.Find(chunk, cacheKey); found {
			return cached
		}
	}

	matches := p.matchChunk(chunk, slab)

	if p.cacheable {
		p.cache.Add(chunk, cacheKey, matches)
	}
	return matches
}

func (p *Pattern) matchChunk(chunk *Chunk, slab *util.Slab) []Match {
	matches := []Match{}
	for idx := 0; idx < chunk.count; idx++ {
		if match, _ := p.MatchItem(&chunk.items[idx], false, slab); match != nil {
			matches = append(matches, *match)
		}
	}
	return matches
}

// MatchItem matches the Item against every term set and returns the Match
// with the accumulated score, or nil. When withPos is set, the matched
// grapheme indices are returned as well; fuzzy positions arrive in reverse
// order.
func (p *Pattern) MatchItem(item *Item, withPos bool, slab *util.Slab) (*Match, *[]int) {
	var allPos *[]int
	if withPos {
		allPos = &[]int{}
	}

	totalScore := 0
	matchedSets := 0
	minBegin := 0
	validOffset := false
	for _, termSet := range p.termSets {
		matched := false
		currentScore := 0
		for _, term := range termSet {
			pfun := p.procFun[term.typ]
			res, pos := pfun(term.caseSensitive, term.normalize, &item.text, term.text, withPos, slab)
			if res.Start >= 0 {
				if term.inv {
					continue
				}
				currentScore = res.Score
				matched = true
				if !validOffset || res.Start < minBegin {
					minBegin = res.Start
					validOffset = true
				}
				if withPos {
					if pos != nil {
						*allPos = append(*allPos, *pos...)
					} else {
						for idx := res.Start; idx < res.End; idx++ {
							*allPos = append(*allPos, idx)
						}
					}
				}
				break
			} else if term.inv {
				matched = true
				continue
			}
		}
		if matched {
			matchedSets++
			totalScore += currentScore
		}
	}
	if matchedSets != len(p.termSets) {
		return nil, nil
	}
	if p.preferPrefix && validOffset && minBegin == item.text.LeadingWhitespaces() {
		totalScore += int(algo.PrefixCredit)
	}
	return &Match{item: item, score: totalScore}, allPos
}
