package models

type TransactionType string

const (
	TransactionTypeFee        TransactionType = "Fee"
	TransactionTypeCommission TransactionType = "Commission"
	TransactionTypeRefund     TransactionType = "Refund"
	TransactionTypePayout     TransactionType = "Payout"
)

type TransactionStatus string

const (
	TransactionStatusPending TransactionStatus = "Pending"
	TransactionStatusSuccess TransactionStatus = "Success"
)

// Agency fee model (amounts in rupees).
const (
	InitialProcessFee       = 100
	AccountOpeningFee       = 500
	AgencyCommissionPercent = 40 // share of one month salary on a closed placement
	ReferralBonusAmount     = 500
	ReferralEligibilityDays = 30
	ContractDurationMonths  = 6
)
