package mapping

import (
	"sort"

	"qa-board-sync/internal/model"
)

// Resolve returns the column an issue belongs to given its label set.
//
// Columns are scanned in fixed precedence: passed, then failed, then
// pending, then custom columns in their configured order. An issue can
// carry several status labels at once (the mapping cannot prevent that),
// so resolution has to be deterministic; the first column whose label is
// present wins. The second return is false when no column matches.
func Resolve(cols []model.Column, labels []string) (model.Column, bool) {
	set := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		set[l] = struct{}{}
	}

	for _, c := range orderByPrecedence(cols) {
		if _, ok := set[c.Label]; ok {
			return c, true
		}
	}
	return model.Column{}, false
}

// orderByPrecedence returns the columns in resolution order.
func orderByPrecedence(cols []model.Column) []model.Column {
	rank := func(t model.ColumnType) int {
		switch t {
		case model.ColumnTypePassed:
			return 0
		case model.ColumnTypeFailed:
			return 1
		case model.ColumnTypePending:
			return 2
		default:
			return 3
		}
	}

	ordered := make([]model.Column, len(cols))
	copy(ordered, cols)
	sort.SliceStable(ordered, func(i, j int) bool {
		ri, rj := rank(ordered[i].Type), rank(ordered[j].Type)
		if ri != rj {
			return ri < rj
		}
		return ordered[i].Order < ordered[j].Order
	})
	return ordered
}

// DefaultColumns is the three-column set used when a project has no
// saved mapping.
func DefaultColumns() []model.Column {
	return []model.Column{
		{ID: "pending", Order: 0, Label: "qa::ready", Type: model.ColumnTypePending},
		{ID: "passed", Order: 1, Label: "qa::passed", Type: model.ColumnTypePassed},
		{ID: "failed", Order: 2, Label: "qa::failed", Type: model.ColumnTypeFailed},
	}
}
