package ui

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"dossier/internal/terminal"
)

const accessLogPrefix = "access log "

// completions lists everything Tab can complete to: the command names plus
// one "access log <id>" per known log.
func completions(in *terminal.Interpreter) []string {
	out := append([]string(nil), in.Commands()...)
	for _, id := range in.LogIDs() {
		out = append(out, accessLogPrefix+id)
	}
	return out
}

// didYouMean returns the closest command to an unrecognized input, or "".
func didYouMean(input string, candidates []string) string {
	q := terminal.Normalize(input)
	if q == "" {
		return ""
	}
	if strings.HasPrefix(q, accessLogPrefix) {
		return ""
	}
	matches := fuzzy.Find(q, candidates)
	if len(matches) == 0 {
		// input with extra characters ("helpp") still lands on "help"
		best, bestScore, found := "", 0, false
		for _, c := range candidates {
			if m := fuzzy.Find(c, []string{q}); len(m) > 0 && (!found || m[0].Score > bestScore) {
				best, bestScore, found = c, m[0].Score, true
			}
		}
		return best
	}
	return matches[0].Str
}
