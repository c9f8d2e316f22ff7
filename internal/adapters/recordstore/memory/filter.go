package memory

import "github.com/SscSPs/pto_ledger_service/internal/models"

func matchesFilter(fields models.Fields, f models.Filter) bool {
	for _, c := range f.All {
		if !matchesCondition(fields[c.Field], c) {
			return false
		}
	}
	return true
}

func matchesCondition(stored any, c models.Condition) bool {
	switch c.Op {
	case models.OpEq:
		return models.Matches(stored, c.Value)
	case models.OpNotEq:
		return !models.Matches(stored, c.Value)
	case models.OpBlank:
		return models.IsBlank(stored)
	case models.OpNotBlank:
		return !models.IsBlank(stored)
	default:
		return false
	}
}
