package core

import "strings"

// ExportFilter selects which tasks an export covers.
type ExportFilter string

const (
	FilterPending ExportFilter = "pending"
	FilterDone    ExportFilter = "done"
	FilterAll     ExportFilter = "all"
)

func ParseExportFilter(s string) (ExportFilter, bool) {
	switch ExportFilter(strings.ToLower(strings.TrimSpace(s))) {
	case FilterPending:
		return FilterPending, true
	case FilterDone:
		return FilterDone, true
	case FilterAll:
		return FilterAll, true
	default:
		return "", false
	}
}
