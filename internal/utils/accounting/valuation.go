package accounting

import (
	"sort"
	"time"

	"github.com/SscSPs/books_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

type itemState struct {
	debit, credit decimal.Decimal
	counted       bool
	lastCost      decimal.Decimal
	lastCostAt    time.Time
	hasCost       bool
}

// ValueStock values inventory at asOf from the item stock ledger.
//
// Quantities are netted per item over the entries the side admits. Each item
// is priced at the cost price of its most recent entry at or before asOf (last
// cost carried forward), on either side. A credit-netted item is kept with a
// negative quantity and reported as oversold.
func ValueStock(entries []domain.StockEntry, asOf time.Time, side domain.ValuationSide) domain.StockValuation {
	states := make(map[string]*itemState)
	for _, e := range entries {
		if e.CreatedDateTime.After(asOf) {
			continue
		}
		st, ok := states[e.ItemID]
		if !ok {
			st = &itemState{debit: decimal.Zero, credit: decimal.Zero, lastCost: decimal.Zero}
			states[e.ItemID] = st
		}
		if side.Includes(e.CreatedDateTime, asOf) {
			st.debit = st.debit.Add(e.DebitQuantity)
			st.credit = st.credit.Add(e.CreditQuantity)
			st.counted = true
		}
		// Ties on the timestamp keep the later entry in input order.
		if !st.hasCost || !e.CreatedDateTime.Before(st.lastCostAt) {
			st.lastCost = e.CostPrice
			st.lastCostAt = e.CreatedDateTime
			st.hasCost = true
		}
	}

	itemIDs := make([]string, 0, len(states))
	for id, st := range states {
		if st.counted {
			itemIDs = append(itemIDs, id)
		}
	}
	sort.Strings(itemIDs)

	result := domain.StockValuation{
		AsOf:          asOf,
		Side:          side,
		Items:         make([]domain.ItemValuation, 0, len(itemIDs)),
		Total:         decimal.Zero,
		OversoldItems: []string{},
	}
	for _, id := range itemIDs {
		st := states[id]
		netted := Net(st.debit, st.credit)
		qty := netted.Signed()
		line := domain.ItemValuation{
			ItemID:        id,
			Quantity:      qty,
			LastCostPrice: st.lastCost,
			Value:         qty.Mul(st.lastCost),
			Oversold:      netted.Credit.IsPositive(),
		}
		if line.Oversold {
			result.NegativeStock = true
			result.OversoldItems = append(result.OversoldItems, id)
		}
		result.Items = append(result.Items, line)
		result.Total = result.Total.Add(line.Value)
	}
	return result
}
