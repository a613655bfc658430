package models

import (
	"fmt"
	"strings"
)

// SurveyorHeaderAliases are the header spellings accepted for the surveyor
// column. A non-empty value in this column marks the row as already
// surveyed. The first entry is the canonical spelling used when the tab is
// created by this service; the rest are spellings found in older tabs.
var SurveyorHeaderAliases = []string{
	"Relevado por",
	"Relevado por:",
	"Relevador",
	"Censado por",
}

// SurveyorColumn finds the surveyor column in a header row. Unlike the old
// dashboard, which silently skipped the check when no header matched, an
// absent column is an error: a worksheet without it cannot report
// surveyed/pending state.
func SurveyorColumn(headers []string) (int, error) {
	for i, h := range headers {
		h = strings.TrimSpace(h)
		for _, alias := range SurveyorHeaderAliases {
			if strings.EqualFold(h, alias) {
				return i, nil
			}
		}
	}
	return -1, fmt.Errorf("no surveyor column found; accepted headers: %s",
		strings.Join(SurveyorHeaderAliases, ", "))
}

// SheetNameColumn is the synthetic header appended to combined-view rows to
// record which worksheet each row came from.
const SheetNameColumn = "__HOJA__"
