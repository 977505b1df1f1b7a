package usecase

import (
	"fmt"
	"strconv"
	"strings"
)

// folioPrefix returns the year-scoped folio prefix, e.g. "VW-2024-".
func folioPrefix(year int) string {
	return fmt.Sprintf("VW-%d-", year)
}

// generateFolio formats the human-facing quote identifier, e.g.
// generateFolio(2024, 1) == "VW-2024-000001".
func generateFolio(year, sequence int) string {
	return fmt.Sprintf("%s%06d", folioPrefix(year), sequence)
}

// nextSequence derives the next folio sequence for a year from the existing
// folios: max parsed suffix + 1, or 1 when none parse. The sequence resets
// per year because the scan is prefix-scoped.
//
// This is read-then-write with no exclusivity guard: two concurrent
// creations can allocate the same sequence. Accepted at current volume.
func nextSequence(folios []string, year int) int {
	prefix := folioPrefix(year)

	max := 0
	for _, folio := range folios {
		if !strings.HasPrefix(folio, prefix) {
			continue
		}
		n, err := strconv.Atoi(strings.TrimPrefix(folio, prefix))
		if err != nil || n <= 0 {
			continue
		}
		if n > max {
			max = n
		}
	}
	return max + 1
}
