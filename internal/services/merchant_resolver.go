package services

import (
	"regexp"
	"strings"
)

// Merchant resolution methods, reported to the metrics recorder.
const (
	ResolutionAlias      = "alias"
	ResolutionFuzzy      = "fuzzy"
	ResolutionUnresolved = "unresolved"
	ResolutionNone       = "none"
)

// DefaultFuzzyMaxDistance is the edit-distance ceiling for the fuzzy
// fallback. Tunable through configuration; 2 matches observed bank-SMS typos
// without collapsing short distinct brands into each other.
const DefaultFuzzyMaxDistance = 2

// merchantCandidateRe anchors a merchant capture on a transaction-indicator
// word and bounds it with a trailing metadata word, so reference numbers and
// card suffixes are not swallowed into the merchant text. RE2 has no
// lookahead; the terminator group is matched but not captured, which gives
// the same bounded capture.
var merchantCandidateRe = regexp.MustCompile(
	`(?i)(?:txn|transaction|purchase|spent|debit(?:ed)?|charged|pos|sale|auth|card purchase)` +
		`\s+(?:at|on|to)?\s*` +
		`([A-Za-z0-9][A-Za-z0-9 .&*/'_-]{1,38}?)` +
		`\s+(?:for|on|ref|at|with|card)\b`)

// AliasEntry maps a known merchant token to its canonical name. Entries are
// held in a slice, not a map: lookup order is part of the contract (first
// matching key wins) and must be deterministic across runs.
type AliasEntry struct {
	Key       string // uppercase token to look for
	Canonical string
}

// MerchantResolver locates a merchant candidate in a message body and
// resolves it against the alias table, falling back to edit-distance
// matching for near-misses.
type MerchantResolver struct {
	aliases     []AliasEntry
	maxDistance int
}

// NewMerchantResolver creates a resolver over the given alias table. A nil
// table gets the built-in defaults.
func NewMerchantResolver(aliases []AliasEntry, maxDistance int) *MerchantResolver {
	if aliases == nil {
		aliases = DefaultAliasTable()
	}
	if maxDistance <= 0 {
		maxDistance = DefaultFuzzyMaxDistance
	}
	return &MerchantResolver{aliases: aliases, maxDistance: maxDistance}
}

// Extract finds and resolves the merchant in a message body. The returned
// method distinguishes "unknown but present" (unresolved normalized text)
// from "no merchant found" (empty string, ResolutionNone).
func (r *MerchantResolver) Extract(body string) (merchant, method string) {
	match := merchantCandidateRe.FindStringSubmatch(body)
	if match == nil {
		return "", ResolutionNone
	}

	normalized := NormalizeMerchant(match[1])
	if normalized == "" {
		return "", ResolutionNone
	}

	return r.Resolve(normalized)
}

// Resolve maps normalized merchant text to a canonical name.
//  1. Substring match against the alias table, first key wins.
//  2. Fuzzy fallback: minimum Levenshtein distance over all keys, accepted
//     when within the configured ceiling.
//  3. The normalized text itself, unresolved.
func (r *MerchantResolver) Resolve(normalized string) (merchant, method string) {
	for _, entry := range r.aliases {
		if strings.Contains(normalized, entry.Key) {
			return entry.Canonical, ResolutionAlias
		}
	}

	best := -1
	bestCanonical := ""
	for _, entry := range r.aliases {
		d := Levenshtein(normalized, entry.Key)
		if best == -1 || d < best {
			best = d
			bestCanonical = entry.Canonical
		}
	}
	if best != -1 && best <= r.maxDistance {
		return bestCanonical, ResolutionFuzzy
	}

	return normalized, ResolutionUnresolved
}

// Levenshtein computes the classic dynamic-programming edit distance with
// unit insertion, deletion, and substitution costs. O(m·n) time and space.
// The exact distance matters here: the fuzzy threshold comparison is
// load-bearing, so no approximation.
func Levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	m, n := len(ra), len(rb)
	if m == 0 {
		return n
	}
	if n == 0 {
		return m
	}

	d := make([][]int, m+1)
	for i := range d {
		d[i] = make([]int, n+1)
		d[i][0] = i
	}
	for j := 0; j <= n; j++ {
		d[0][j] = j
	}

	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			deletion := d[i-1][j] + 1
			insertion := d[i][j-1] + 1
			substitution := d[i-1][j-1] + cost

			min := deletion
			if insertion < min {
				min = insertion
			}
			if substitution < min {
				min = substitution
			}
			d[i][j] = min
		}
	}

	return d[m][n]
}

// DefaultAliasTable returns the built-in merchant alias table. Keys are
// uppercase tokens as they appear in normalized bank-SMS text.
func DefaultAliasTable() []AliasEntry {
	return []AliasEntry{
		{Key: "AMAZON", Canonical: "AMAZON"},
		{Key: "AMZN", Canonical: "AMAZON"},
		{Key: "FLIPKART", Canonical: "FLIPKART"},
		{Key: "WALMART", Canonical: "WALMART"},
		{Key: "WAL-MART", Canonical: "WALMART"},
		{Key: "TARGET", Canonical: "TARGET"},
		{Key: "UBER", Canonical: "UBER"},
		{Key: "OLA", Canonical: "OLA"},
		{Key: "LYFT", Canonical: "LYFT"},
		{Key: "SWIGGY", Canonical: "SWIGGY"},
		{Key: "ZOMATO", Canonical: "ZOMATO"},
		{Key: "STARBUCKS", Canonical: "STARBUCKS"},
		{Key: "MCDONALD", Canonical: "MCDONALDS"},
		{Key: "DOMINO", Canonical: "DOMINOS"},
		{Key: "NETFLIX", Canonical: "NETFLIX"},
		{Key: "SPOTIFY", Canonical: "SPOTIFY"},
		{Key: "HOTSTAR", Canonical: "HOTSTAR"},
		{Key: "BIGBASKET", Canonical: "BIGBASKET"},
		{Key: "BLINKIT", Canonical: "BLINKIT"},
		{Key: "KROGER", Canonical: "KROGER"},
		{Key: "COSTCO", Canonical: "COSTCO"},
		{Key: "SHELL", Canonical: "SHELL"},
		{Key: "CHEVRON", Canonical: "CHEVRON"},
		{Key: "INDIANOIL", Canonical: "INDIAN OIL"},
		{Key: "IRCTC", Canonical: "IRCTC"},
		{Key: "MAKEMYTRIP", Canonical: "MAKEMYTRIP"},
		{Key: "AIRBNB", Canonical: "AIRBNB"},
		{Key: "BOOKMYSHOW", Canonical: "BOOKMYSHOW"},
		{Key: "APOLLO", Canonical: "APOLLO PHARMACY"},
		{Key: "MEDPLUS", Canonical: "MEDPLUS"},
		{Key: "IKEA", Canonical: "IKEA"},
		{Key: "MYNTRA", Canonical: "MYNTRA"},
		{Key: "PAYTM", Canonical: "PAYTM"},
		{Key: "PHONEPE", Canonical: "PHONEPE"},
	}
}
