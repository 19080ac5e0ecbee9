package models

import "time"

// Seller is one row of the sellers grid
type Seller struct {
	BaseModel     `yaml:",inline"`
	UserID        string `json:"userId" yaml:"userId"`
	Fullname      string `json:"fullname" yaml:"fullname"`
	CompanyName   string `json:"companyName" yaml:"companyName"`
	KTP           string `json:"ktp" yaml:"ktp"`
	NPWP          string `json:"npwp" yaml:"npwp"`
	KTPAddress    string `json:"ktpAddress" yaml:"ktpAddress"`
	OfficeAddress string `json:"officeAddress" yaml:"officeAddress"`
}

// SellerDetail is a seller with its account and billboards
type SellerDetail struct {
	Seller     `yaml:",inline"`
	User       *UserSummary       `json:"user,omitempty" yaml:"user,omitempty"`
	Billboards []BillboardSummary `json:"billboards" yaml:"billboards"`
}

// UserSummary is the account joined onto a seller or merchant
type UserSummary struct {
	ID             string    `json:"id" yaml:"id"`
	Username       string    `json:"username" yaml:"username"`
	Email          string    `json:"email" yaml:"email"`
	Phone          *string   `json:"phone,omitempty" yaml:"phone,omitempty"`
	Level          string    `json:"level" yaml:"level"`
	Provider       string    `json:"provider,omitempty" yaml:"provider,omitempty"`
	ProfilePicture *string   `json:"profilePicture,omitempty" yaml:"profilePicture,omitempty"`
	CreatedAt      time.Time `json:"createdAt,omitempty" yaml:"createdAt,omitempty"`
}

// BillboardSummary is the short billboard shape listed under a seller
type BillboardSummary struct {
	ID        string    `json:"id" yaml:"id"`
	Location  *string   `json:"location,omitempty" yaml:"location,omitempty"`
	Size      *string   `json:"size,omitempty" yaml:"size,omitempty"`
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`
}

// Merchant is a seller as exposed by the merchant listing
type Merchant struct {
	Seller     `yaml:",inline"`
	User       *UserSummary       `json:"user,omitempty" yaml:"user,omitempty"`
	Billboards []BillboardSummary `json:"billboards,omitempty" yaml:"billboards,omitempty"`
}
