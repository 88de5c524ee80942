package requisition

import (
	"sort"
	"time"

	"github.com/almox360/almox-api/internal/domain/entity"
)

// SortFEFO ordena lotes por validade crescente (First-Expire-First-Out).
// Lotes com a mesma validade mantêm a ordem relativa de entrada.
func SortFEFO(batches []entity.Batch) {
	sort.SliceStable(batches, func(i, j int) bool {
		return batches[i].ExpiryDate.Before(batches[j].ExpiryDate)
	})
}

// ExpiringWithin filtra lotes cuja validade vence dentro da janela dada,
// contada a partir de now. Lotes já vencidos também são incluídos.
func ExpiringWithin(batches []entity.Batch, now time.Time, days int) []entity.Batch {
	limit := now.AddDate(0, 0, days)
	var out []entity.Batch
	for _, b := range batches {
		if !b.ExpiryDate.After(limit) {
			out = append(out, b)
		}
	}
	return out
}
