// Package matching cross-references parsed transactions against client-name
// lists, broker-name lists and red-flag keywords, producing the three audit
// report sets.
package matching

import (
	"regexp"
	"sort"
	"strings"

	"github.com/cloudflare/ahocorasick"
	"github.com/shopspring/decimal"

	"github.com/mkpurohitt/bank-statement-audit/internal/logging"
	"github.com/mkpurohitt/bank-statement-audit/internal/models"
)

var log = logging.GetLogger()

// SetLogger replaces the package logger.
func SetLogger(logger logging.Logger) {
	if logger != nil {
		log = logger
	}
}

// minPartLen drops initials and short tokens from client names; matching on
// "K" or "S" would tag nearly every narration.
const minPartLen = 3

// ClientMatch is a transaction whose narration contains at least one client
// name part, with the sorted unique parts that hit.
type ClientMatch struct {
	Transaction models.Transaction
	Parts       []string
}

// Flag is a transaction whose narration contains a red-flag keyword or a
// broker name. Either field may be empty; never both.
type Flag struct {
	Transaction models.Transaction
	Keyword     string
	Broker      string
}

// Reports holds the three non-exclusive report sets. A transaction may appear
// in more than one.
type Reports struct {
	// Client lists every transaction matching a client name part.
	Client []ClientMatch
	// UnmatchedHighValue lists transactions above the amount threshold that
	// matched no client name part.
	UnmatchedHighValue []models.Transaction
	// Flagged lists transactions matching a keyword or a broker name.
	Flagged []Flag
}

// Analyzer matches narrations against the loaded lists. Client name parts and
// keywords match on word boundaries; broker names match as raw substrings so
// multi-word house names hit as full phrases.
type Analyzer struct {
	clientParts *regexp.Regexp
	keywords    *regexp.Regexp
	brokers     *ahocorasick.Matcher
	brokerNames []string
	threshold   decimal.Decimal
}

// New builds an Analyzer. Empty lists disable their matching dimension.
func New(clients, keywords, brokers []string, threshold decimal.Decimal) *Analyzer {
	a := &Analyzer{threshold: threshold}

	parts := clientNameParts(clients)
	if len(parts) == 0 {
		log.Warn("no client name parts extracted, client matching disabled")
	} else {
		a.clientParts = wordBoundaryPattern(parts)
	}
	if len(keywords) == 0 {
		log.Warn("no keywords configured, keyword matching disabled")
	} else {
		a.keywords = wordBoundaryPattern(keywords)
	}
	if len(brokers) == 0 {
		log.Warn("no broker names loaded, broker matching disabled")
	} else {
		a.brokerNames = brokers
		a.brokers = ahocorasick.NewStringMatcher(brokers)
	}
	return a
}

// Run produces the report sets for a batch of transactions.
func (a *Analyzer) Run(transactions []models.Transaction) Reports {
	var reports Reports
	for _, tx := range transactions {
		narration := strings.ToUpper(tx.Narration)

		parts := a.matchClientParts(narration)
		if len(parts) > 0 {
			reports.Client = append(reports.Client, ClientMatch{Transaction: tx, Parts: parts})
		} else if a.overThreshold(tx) {
			reports.UnmatchedHighValue = append(reports.UnmatchedHighValue, tx)
		}

		keyword := a.matchKeyword(narration)
		broker := a.matchBroker(narration)
		if keyword != "" || broker != "" {
			reports.Flagged = append(reports.Flagged, Flag{Transaction: tx, Keyword: keyword, Broker: broker})
		}
	}
	log.Info("analysis complete",
		logging.Field{Key: "transactions", Value: len(transactions)},
		logging.Field{Key: "client_matched", Value: len(reports.Client)},
		logging.Field{Key: "unmatched_high_value", Value: len(reports.UnmatchedHighValue)},
		logging.Field{Key: "flagged", Value: len(reports.Flagged)})
	return reports
}

func (a *Analyzer) matchClientParts(narration string) []string {
	if a.clientParts == nil {
		return nil
	}
	hits := a.clientParts.FindAllString(narration, -1)
	if len(hits) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(hits))
	var unique []string
	for _, hit := range hits {
		if _, dup := seen[hit]; !dup {
			seen[hit] = struct{}{}
			unique = append(unique, hit)
		}
	}
	sort.Strings(unique)
	return unique
}

func (a *Analyzer) matchKeyword(narration string) string {
	if a.keywords == nil {
		return ""
	}
	return a.keywords.FindString(narration)
}

// matchBroker returns the broker name occurring earliest in the narration.
func (a *Analyzer) matchBroker(narration string) string {
	if a.brokers == nil {
		return ""
	}
	hits := a.brokers.Match([]byte(narration))
	best := ""
	bestPos := -1
	for _, i := range hits {
		name := a.brokerNames[i]
		pos := strings.Index(narration, name)
		if pos == -1 {
			continue
		}
		if bestPos == -1 || pos < bestPos {
			best, bestPos = name, pos
		}
	}
	return best
}

func (a *Analyzer) overThreshold(tx models.Transaction) bool {
	return tx.Withdrawal.GreaterThan(a.threshold) || tx.Deposit.GreaterThan(a.threshold)
}

// clientNameParts splits client names into matchable word parts, dropping
// short tokens.
func clientNameParts(clients []string) []string {
	seen := make(map[string]struct{})
	var parts []string
	for _, name := range clients {
		for _, part := range strings.Fields(strings.ToUpper(name)) {
			if len(part) < minPartLen {
				continue
			}
			if _, dup := seen[part]; dup {
				continue
			}
			seen[part] = struct{}{}
			parts = append(parts, part)
		}
	}
	return parts
}

func wordBoundaryPattern(words []string) *regexp.Regexp {
	quoted := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		quoted = append(quoted, `\b`+regexp.QuoteMeta(strings.ToUpper(w))+`\b`)
	}
	if len(quoted) == 0 {
		return nil
	}
	return regexp.MustCompile(strings.Join(quoted, "|"))
}
