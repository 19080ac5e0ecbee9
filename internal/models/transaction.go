package models

import "time"

// TransactionStatus is the lifecycle state of an order
type TransactionStatus string

const (
	TransactionPending   TransactionStatus = "PENDING"
	TransactionPaid      TransactionStatus = "PAID"
	TransactionExpired   TransactionStatus = "EXPIRED"
	TransactionRejected  TransactionStatus = "REJECTED"
	TransactionCancelled TransactionStatus = "CANCELLED"
	TransactionCompleted TransactionStatus = "COMPLETED"
)

// TransactionStatuses lists every status in display order
var TransactionStatuses = []TransactionStatus{
	TransactionPending,
	TransactionPaid,
	TransactionExpired,
	TransactionRejected,
	TransactionCancelled,
	TransactionCompleted,
}

// Valid reports whether s is a known status
func (s TransactionStatus) Valid() bool {
	for _, v := range TransactionStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// Transaction is one order of a billboard
type Transaction struct {
	BaseModel   `yaml:",inline"`
	BuyerID     string            `json:"buyerId" yaml:"buyerId"`
	MerchantID  string            `json:"merchantId" yaml:"merchantId"`
	BillboardID string            `json:"billboardId" yaml:"billboardId"`
	DesignID    *string           `json:"designId,omitempty" yaml:"designId,omitempty"`
	Payment     *string           `json:"payment,omitempty" yaml:"payment,omitempty"`
	Status      TransactionStatus `json:"status" yaml:"status"`
	TotalPrice  Money             `json:"totalPrice" yaml:"totalPrice"`
	StartDate   time.Time         `json:"startDate" yaml:"startDate"`
	EndDate     *time.Time        `json:"endDate,omitempty" yaml:"endDate,omitempty"`

	Buyer     *TransactionParty `json:"buyer,omitempty" yaml:"buyer,omitempty"`
	Merchant  *TransactionParty `json:"merchant,omitempty" yaml:"merchant,omitempty"`
	Design    *TransactionParty `json:"design,omitempty" yaml:"design,omitempty"`
	Billboard *TransactionParty `json:"billboard,omitempty" yaml:"billboard,omitempty"`
}

// TransactionParty is any relation joined onto a transaction
type TransactionParty struct {
	ID        string `json:"id" yaml:"id"`
	Username  string `json:"username,omitempty" yaml:"username,omitempty"`
	Email     string `json:"email,omitempty" yaml:"email,omitempty"`
	StoreName string `json:"storeName,omitempty" yaml:"storeName,omitempty"`
	UserID    string `json:"userId,omitempty" yaml:"userId,omitempty"`
	Name      string `json:"name,omitempty" yaml:"name,omitempty"`
	Location  string `json:"location,omitempty" yaml:"location,omitempty"`
	Size      string `json:"size,omitempty" yaml:"size,omitempty"`
}

// BuyerLabel mirrors the grid: username, email, then the raw id
func (t Transaction) BuyerLabel() string {
	if t.Buyer != nil {
		if t.Buyer.Username != "" {
			return t.Buyer.Username
		}
		if t.Buyer.Email != "" {
			return t.Buyer.Email
		}
	}
	return t.BuyerID
}

// MerchantLabel returns the store name or the raw id
func (t Transaction) MerchantLabel() string {
	if t.Merchant != nil && t.Merchant.StoreName != "" {
		return t.Merchant.StoreName
	}
	return t.MerchantID
}

// BillboardLabel returns the billboard location or the raw id
func (t Transaction) BillboardLabel() string {
	if t.Billboard != nil && t.Billboard.Location != "" {
		return t.Billboard.Location
	}
	return t.BillboardID
}

// DesignLabel returns the design name, the raw id, or an empty string
func (t Transaction) DesignLabel() string {
	if t.Design != nil && t.Design.Name != "" {
		return t.Design.Name
	}
	if t.DesignID != nil {
		return *t.DesignID
	}
	return ""
}
