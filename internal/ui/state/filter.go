package state

import (
	"sort"
	"strings"

	"github.com/atomicstack/menu-maker/internal/menu"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// FilterCommands returns the command nodes matching the query, ranked
// fuzzy-first with a plain substring fallback over labels and commands. An
// empty query returns every command in display order.
func FilterCommands(all []*menu.Node, query string) []*menu.Node {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return append([]*menu.Node(nil), all...)
	}
	labels := make([]string, len(all))
	for i, node := range all {
		labels[i] = node.Label
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels)
	if len(ranks) > 0 {
		sort.Sort(ranks)
		matched := make([]*menu.Node, 0, len(ranks))
		for _, rank := range ranks {
			matched = append(matched, all[rank.OriginalIndex])
		}
		return matched
	}
	lower := strings.ToLower(trimmed)
	matched := make([]*menu.Node, 0, len(all))
	for _, node := range all {
		if strings.Contains(strings.ToLower(node.Label), lower) ||
			strings.Contains(strings.ToLower(node.Command), lower) {
			matched = append(matched, node)
		}
	}
	return matched
}
