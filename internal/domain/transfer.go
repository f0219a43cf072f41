package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransferDirection is the movement direction from the customer's account.
type TransferDirection string

const (
	DirectionIn  TransferDirection = "in"
	DirectionOut TransferDirection = "out"
)

// TransferType is the controlled vocabulary of transfer kinds (spec.md §6).
type TransferType string

const (
	TransferSalaryIn            TransferType = "salary_in"
	TransferStipendIn           TransferType = "stipend_in"
	TransferFamilyIn            TransferType = "family_in"
	TransferCardIn              TransferType = "card_in"
	TransferP2POut              TransferType = "p2p_out"
	TransferATMWithdrawal       TransferType = "atm_withdrawal"
	TransferLoanPaymentOut      TransferType = "loan_payment_out"
	TransferCCRepaymentOut      TransferType = "cc_repayment_out"
	TransferInstallmentOut      TransferType = "installment_payment_out"
	TransferDepositTopupOut     TransferType = "deposit_topup_out"
	TransferDepositWithdrawIn   TransferType = "deposit_withdraw_in"
	TransferDepositFXTopupOut   TransferType = "deposit_fx_topup_out"
	TransferDepositFXWithdrawIn TransferType = "deposit_fx_withdraw_in"
	TransferFXBuy               TransferType = "fx_buy"
	TransferFXSell              TransferType = "fx_sell"
	TransferInvestIn            TransferType = "invest_in"
	TransferInvestOut           TransferType = "invest_out"
	TransferGoldBuyOut          TransferType = "gold_buy_out"
	TransferGoldSellIn          TransferType = "gold_sell_in"
)

// IsFX reports whether the transfer type is FX-class regardless of direction.
func (t TransferType) IsFX() bool {
	return t == TransferFXBuy || t == TransferFXSell
}

// accumulationIntentTypes is the controlled set used for accumulation-intent counting.
var accumulationIntentTypes = map[TransferType]bool{
	TransferDepositTopupOut:   true,
	TransferDepositFXTopupOut: true,
	TransferInvestIn:          true,
}

// IsAccumulationIntent reports whether the transfer counts toward accumulation-intent.
func (t TransferType) IsAccumulationIntent() bool {
	return accumulationIntentTypes[t]
}

// creditActivityTypes is the controlled set used for credit-activity counting.
var creditActivityTypes = map[TransferType]bool{
	TransferLoanPaymentOut: true,
	TransferCCRepaymentOut: true,
	TransferInstallmentOut: true,
}

// IsCreditActivity reports whether the transfer counts toward credit-activity.
func (t TransferType) IsCreditActivity() bool {
	return creditActivityTypes[t]
}

// Transfer is a directed money movement. Amount is non-negative.
type Transfer struct {
	ClientCode int
	Date       time.Time
	Type       TransferType
	Direction  TransferDirection
	Amount     decimal.Decimal
	Currency   Currency
}
