package reconcile

import "math"

// Round2 rounds to two decimal places, the precision every derived money
// and weight figure is carried at.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// SaleInput is everything the calculator needs for one sale or receipt.
// CustomerBalance is the customer's signed running balance BEFORE this
// transaction, fetched from the customer profile.
type SaleInput struct {
	Birds           int
	Weight          float64
	Rate            float64
	CashPaid        float64
	OnlinePaid      float64
	Discount        float64
	CustomerBalance float64

	// Receipts move no birds; Amount is the manually entered figure.
	IsReceipt bool
	Amount    float64
}

// SaleResult carries every derived field plus the overpayment facts the
// confirmation gate needs.
type SaleResult struct {
	AvgWeight      float64
	Amount         float64
	ReceivedAmount float64
	Balance        float64 // clamped at zero
	RawBalance     float64 // pre-clamp value
	Overpaid       bool    // payment exceeded debt + prior balance
	Excess         float64 // how far past zero the payment went
}

// ComputeSale derives the dependent fields in fixed order - avg weight,
// amount, received, balance - since each step feeds the next. The balance
// formula is the central contract:
//
//	balance = max(0, customerBalance + amount - onlinePaid - cashPaid - discount)
//
// Overpayment is clamped to zero rather than carried as customer credit;
// the pre-clamp deficit is reported so the caller can require explicit
// confirmation before submitting.
func ComputeSale(in SaleInput) SaleResult {
	var res SaleResult

	if in.IsReceipt {
		// No bird movement: quantity-derived fields are forced to zero
		// and the amount is whatever was entered by hand.
		res.Amount = Round2(in.Amount)
	} else {
		if in.Birds > 0 && in.Weight > 0 {
			res.AvgWeight = Round2(in.Weight / float64(in.Birds))
		}
		res.Amount = Round2(in.Weight * in.Rate)
	}

	res.ReceivedAmount = in.CashPaid + in.OnlinePaid
	res.RawBalance = in.CustomerBalance + res.Amount - in.OnlinePaid - in.CashPaid - in.Discount
	if res.RawBalance < 0 {
		res.Overpaid = true
		res.Excess = -res.RawBalance
		res.Balance = 0
	} else {
		res.Balance = res.RawBalance
	}
	return res
}

// ComputePurchase derives avg weight and amount for a purchase entry.
func ComputePurchase(birds int, weight, rate float64) (avgWeight, amount float64) {
	if birds > 0 && weight > 0 {
		avgWeight = Round2(weight / float64(birds))
	}
	amount = Round2(weight * rate)
	return
}

// ComputeStockValue values retained birds at the given rate.
func ComputeStockValue(weight, rate float64) float64 {
	return Round2(weight * rate)
}
