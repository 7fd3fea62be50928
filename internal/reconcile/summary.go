package reconcile

// Summary is the derived trip rollup served read-only to clients. It is
// recomputed from the snapshot on every request.
type Summary struct {
	TotalBirdsPurchased  int     `json:"total_birds_purchased"`
	TotalBirdsSold       int     `json:"total_birds_sold"`
	TotalWeightPurchased float64 `json:"total_weight_purchased"`
	TotalWeightSold      float64 `json:"total_weight_sold"`
	TotalBirdsInStock    int     `json:"total_birds_in_stock"`
	TotalWeightInStock   float64 `json:"total_weight_in_stock"`
	BirdsTransferred     int     `json:"birds_transferred"`
	WeightTransferred    float64 `json:"weight_transferred"`
	BirdsRemaining       int     `json:"birds_remaining"`
	WeightRemaining      float64 `json:"weight_remaining"`
	Mortality            int     `json:"mortality"`
	TotalPurchaseAmount  float64 `json:"total_purchase_amount"`
	TotalSalesAmount     float64 `json:"total_sales_amount"`
	TotalReceivedAmount  float64 `json:"total_received_amount"`
	StockValue           float64 `json:"stock_value"`
	TotalExpenses        float64 `json:"total_expenses"`
	TotalDiesel          float64 `json:"total_diesel"`
	NetProfit            float64 `json:"net_profit"`
	AvgPurchaseRate      float64 `json:"avg_purchase_rate"`
}

// Summarize rolls the snapshot up. mortality is the recorded figure (zero
// until completion); expenses and diesel feed the profit line only.
// On a completed trip the conservation invariant holds:
//
//	purchased = sold + stock + transferred + mortality
func Summarize(s TripSnapshot, mortality int, expenses, diesel float64) Summary {
	purchased := s.Purchased()
	sold := s.Sold()
	stocked := s.Stocked()
	remaining := s.Remaining()

	sum := Summary{
		TotalBirdsPurchased:  purchased.Birds,
		TotalBirdsSold:       sold.Birds,
		TotalWeightPurchased: Round2(purchased.Weight),
		TotalWeightSold:      Round2(sold.Weight),
		TotalBirdsInStock:    stocked.Birds,
		TotalWeightInStock:   Round2(stocked.Weight),
		BirdsTransferred:     s.Transferred.Birds,
		WeightTransferred:    Round2(s.Transferred.Weight),
		BirdsRemaining:       remaining.Birds,
		WeightRemaining:      Round2(remaining.Weight),
		Mortality:            mortality,
		TotalExpenses:        Round2(expenses),
		TotalDiesel:          Round2(diesel),
	}

	// Opening stock counts into the purchase cost at its carried rate.
	sum.TotalPurchaseAmount = s.Opening.Weight * s.OpeningRate
	for _, p := range s.Purchases {
		sum.TotalPurchaseAmount += p.Amount
	}
	sum.TotalPurchaseAmount = Round2(sum.TotalPurchaseAmount)

	// Receipts collect money against an old balance; they carry no
	// revenue of their own, only received cash.
	for _, l := range s.Sales {
		if !l.IsReceipt {
			sum.TotalSalesAmount += l.Amount
		}
		sum.TotalReceivedAmount += l.Received
	}
	sum.TotalSalesAmount = Round2(sum.TotalSalesAmount)
	sum.TotalReceivedAmount = Round2(sum.TotalReceivedAmount)

	for _, l := range s.Stocks {
		sum.StockValue += l.Value
	}
	sum.StockValue = Round2(sum.StockValue)

	if purchased.Weight > 0 {
		sum.AvgPurchaseRate = Round2(sum.TotalPurchaseAmount / purchased.Weight)
	}

	// Stock is carried at valuation, so it offsets cost until finalized.
	sum.NetProfit = Round2(sum.TotalSalesAmount + sum.StockValue - sum.TotalPurchaseAmount - sum.TotalExpenses - sum.TotalDiesel)
	return sum
}
