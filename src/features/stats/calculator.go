package stats

import (
	"hash/fnv"
	"sort"
	"strings"

	"github.com/contre95/tourstats/src/tour"
	"github.com/gosimple/unidecode"
)

// DefaultLimit is the result-count cap for ranked-list statistics.
const DefaultLimit = 3

// DefaultDeepListLimit is the larger cap used by deep-list statistics such
// as most-common-songs-not-played.
const DefaultDeepListLimit = 20

// CommonlyPlayedThreshold is the lifetime play count at which a catalog song
// counts as "commonly played".
const CommonlyPlayedThreshold = 100

// Metadata describes a registered calculator.
type Metadata struct {
	Type       string // result field name, e.g. "longestSongs"
	Name       string // human-readable label
	DataSource string
	Enabled    bool
	Priority   int // display ordering, lower first
}

// Calculator is the capability every statistic implements. Calculate never
// panics on malformed per-show data; bad fields contribute nothing.
type Calculator interface {
	Meta() Metadata
	Calculate(shows []*tour.EnhancedShow, tourName string, sc *tour.StatsContext) any
	EmptyResult() any
}

// fourStage is the uniform workflow behind every calculator: validate the
// input, allocate a run-scoped accumulator, fold each show into it in input
// order, then turn the accumulator into the final sorted result.
type fourStage[A any, R any] interface {
	validateInput(shows []*tour.EnhancedShow) bool
	initAccumulator() A
	processShow(show *tour.EnhancedShow, acc A)
	generateResults(acc A, tourName string, sc *tour.StatsContext) R
	emptyResult() R
}

// runPipeline executes the four stages. Validation fails closed: an empty or
// unusable show list yields the calculator's empty shape, never an error.
func runPipeline[A any, R any](c fourStage[A, R], shows []*tour.EnhancedShow, tourName string, sc *tour.StatsContext) R {
	if len(shows) == 0 || !c.validateInput(shows) {
		return c.emptyResult()
	}
	acc := c.initAccumulator()
	for _, show := range shows {
		if show == nil {
			continue
		}
		c.processShow(show, acc)
	}
	return c.generateResults(acc, tourName, sc)
}

// canonicalKey normalizes a song name into a deduplication key: trimmed,
// ASCII-folded, lower-cased. Display names keep their original casing as
// stored values, never as keys.
func canonicalKey(name string) string {
	return strings.ToLower(strings.TrimSpace(unidecode.Unidecode(name)))
}

// titleCaseSong upper-cases the first letter of each word for display.
// Words already containing capitals (e.g. "McGrupp") are left alone.
func titleCaseSong(name string) string {
	words := strings.Fields(name)
	for i, w := range words {
		if w == strings.ToLower(w) {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

// hashSongID synthesizes a stable numeric id from a song name for songs the
// catalog never assigned one. FNV-32a over the canonical key, sign bit
// cleared so ids stay positive.
func hashSongID(name string) int {
	h := fnv.New32a()
	h.Write([]byte(canonicalKey(name)))
	return int(h.Sum32() & 0x7fffffff)
}

// songID returns the catalog id when present, otherwise a synthetic one.
func songID(id int, name string) int {
	if id != 0 {
		return id
	}
	return hashSongID(name)
}

// limitResults truncates a ranked list to at most n entries. n <= 0 means
// unlimited.
func limitResults[T any](results []T, n int) []T {
	if n > 0 && len(results) > n {
		return results[:n]
	}
	return results
}

// sortShowsByDate returns a copy of shows ordered ascending by show date.
// Chronology-dependent calculators sort defensively rather than trusting
// caller order. Dates are ISO-8601 strings, so string order is date order.
func sortShowsByDate(shows []*tour.EnhancedShow) []*tour.EnhancedShow {
	sorted := make([]*tour.EnhancedShow, len(shows))
	copy(sorted, shows)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ShowDate < sorted[j].ShowDate
	})
	return sorted
}

// round1 rounds to one decimal place.
func round1(v float64) float64 {
	if v < 0 {
		return float64(int(v*10-0.5)) / 10
	}
	return float64(int(v*10+0.5)) / 10
}
