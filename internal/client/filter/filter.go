package filter

import (
	"strings"

	"github.com/chromestatus/csclient/internal/client/models"
)

// Options tune what a text query looks at.
type Options struct {
	// IncludeSummary also matches text against the feature summary.
	IncludeSummary bool
}

// Apply returns the features of list that match q and category, in their
// original order. An empty query with no category returns list itself.
func Apply(list []models.Feature, q Query, category string, opts Options) []models.Feature {
	category = strings.TrimSpace(category)
	if q.Kind == KindEmpty && category == "" {
		return list
	}

	out := make([]models.Feature, 0, len(list))
	for _, f := range list {
		if category != "" && !strings.EqualFold(f.Category, category) {
			continue
		}
		if !q.Match(f, opts) {
			continue
		}
		out = append(out, f)
	}
	return out
}

// Match reports whether f satisfies q. Category is not considered.
func (q Query) Match(f models.Feature, opts Options) bool {
	switch q.Kind {
	case KindEmpty:
		return true
	case KindMilestone:
		for _, m := range f.Browsers.Chrome.ShippedMilestones() {
			if v, ok := m.Get(); ok && q.Op.Compare(v, q.Milestone) {
				return true
			}
		}
		return false
	case KindText:
		if q.matchText(f.Name) {
			return true
		}
		return opts.IncludeSummary && q.matchText(f.Summary)
	}
	return false
}

// Filter parses query and applies it.
func Filter(list []models.Feature, query, category string, opts Options) []models.Feature {
	return Apply(list, ParseQuery(query), category, opts)
}
