package models

// Level is the role of a user account
type Level string

const (
	LevelAdmin    Level = "ADMIN"
	LevelMerchant Level = "MERCHANT"
	LevelBuyer    Level = "BUYER"
)

// User is one row of the users grid
type User struct {
	BaseModel      `yaml:",inline"`
	Username       string       `json:"username" yaml:"username"`
	Email          string       `json:"email" yaml:"email"`
	Phone          *string      `json:"phone,omitempty" yaml:"phone,omitempty"`
	Level          Level        `json:"level" yaml:"level"`
	Provider       string       `json:"provider" yaml:"provider"`
	ProfilePicture *string      `json:"profilePicture,omitempty" yaml:"profilePicture,omitempty"`
	Merchant       *MerchantRef `json:"merchant,omitempty" yaml:"merchant,omitempty"`
}

// MerchantRef is the merchant summary joined onto a user
type MerchantRef struct {
	ID          string `json:"id" yaml:"id"`
	Fullname    string `json:"fullname" yaml:"fullname"`
	CompanyName string `json:"companyName" yaml:"companyName"`
}

// UserInput is the create/edit form of a user. The password rules depend
// on whether the account is created or edited and are checked by the
// users service.
type UserInput struct {
	Username        string `json:"username,omitempty" validate:"required"`
	Email           string `json:"email,omitempty" validate:"required,email"`
	Phone           string `json:"phone,omitempty" validate:"required"`
	Level           Level  `json:"level,omitempty" validate:"required,oneof=ADMIN BUYER MERCHANT"`
	Password        string `json:"password,omitempty"`
	ConfirmPassword string `json:"confirmPassword,omitempty"`
}
