package models

import "time"

// Billboard statuses and modes used by the forms
const (
	BillboardAvailable    = "Available"
	BillboardNotAvailable = "NotAvailable"
	ModeBuy               = "Buy"
	ModeRent              = "Rent"
)

// Billboard is one row of the billboards and recommendations grids
type Billboard struct {
	BaseModel     `yaml:",inline"`
	OwnerID       string  `json:"ownerId" yaml:"ownerId"`
	CategoryID    string  `json:"categoryId" yaml:"categoryId"`
	Description   string  `json:"description" yaml:"description"`
	Location      string  `json:"location" yaml:"location"`
	CityID        string  `json:"cityId" yaml:"cityId"`
	ProvinceID    string  `json:"provinceId" yaml:"provinceId"`
	CityName      *string `json:"cityName,omitempty" yaml:"cityName,omitempty"`
	ProvinceName  *string `json:"provinceName,omitempty" yaml:"provinceName,omitempty"`
	Status        string  `json:"status" yaml:"status"`
	Mode          string  `json:"mode" yaml:"mode"`
	Size          string  `json:"size" yaml:"size"`
	Orientation   string  `json:"orientation" yaml:"orientation"`
	Display       string  `json:"display" yaml:"display"`
	Lighting      string  `json:"lighting" yaml:"lighting"`
	Tax           string  `json:"tax" yaml:"tax"`
	LandOwnership string  `json:"landOwnership,omitempty" yaml:"landOwnership,omitempty"`

	RentPrice    Money `json:"rentPrice" yaml:"rentPrice"`
	SellPrice    Money `json:"sellPrice" yaml:"sellPrice"`
	ServicePrice Money `json:"servicePrice" yaml:"servicePrice"`

	IsDeleted   bool       `json:"isDeleted,omitempty" yaml:"isDeleted,omitempty"`
	DeletedAt   *time.Time `json:"deletedAt,omitempty" yaml:"deletedAt,omitempty"`
	DeletedByID *string    `json:"deletedById,omitempty" yaml:"deletedById,omitempty"`

	View    int        `json:"view,omitempty" yaml:"view,omitempty"`
	Score   *float64   `json:"score,omitempty" yaml:"score,omitempty"`
	ScoreAt *time.Time `json:"scoreAt,omitempty" yaml:"scoreAt,omitempty"`

	Category *Ref            `json:"category,omitempty" yaml:"category,omitempty"`
	Owner    *BillboardOwner `json:"owner,omitempty" yaml:"owner,omitempty"`
	Image    []Image         `json:"image" yaml:"image"`
	City     *City           `json:"city,omitempty" yaml:"city,omitempty"`

	AverageRating *float64 `json:"averageRating,omitempty" yaml:"averageRating,omitempty"`
}

// BillboardOwner is the merchant joined onto a billboard
type BillboardOwner struct {
	ID          string `json:"id" yaml:"id"`
	UserID      string `json:"userId" yaml:"userId"`
	Fullname    string `json:"fullname" yaml:"fullname"`
	CompanyName string `json:"companyName" yaml:"companyName"`
}

// City is a city with its province
type City struct {
	ID         string `json:"id" yaml:"id"`
	Name       string `json:"name" yaml:"name"`
	ProvinceID string `json:"provinceId" yaml:"provinceId"`
	Province   *Ref   `json:"province,omitempty" yaml:"province,omitempty"`
}

// CityLabel prefers the joined city over the flattened name
func (b Billboard) CityLabel() string {
	if b.City != nil && b.City.Name != "" {
		return b.City.Name
	}
	if b.CityName != nil {
		return *b.CityName
	}
	return ""
}

// ProvinceLabel prefers the joined province over the flattened name
func (b Billboard) ProvinceLabel() string {
	if b.City != nil && b.City.Province != nil && b.City.Province.Name != "" {
		return b.City.Province.Name
	}
	if b.ProvinceName != nil {
		return *b.ProvinceName
	}
	return ""
}

// CategoryLabel returns the joined category name
func (b Billboard) CategoryLabel() string {
	if b.Category != nil {
		return b.Category.Name
	}
	return ""
}

// BillboardDetail is a billboard with its transactions
type BillboardDetail struct {
	Billboard   `yaml:",inline"`
	Transaction []Transaction `json:"transaction,omitempty" yaml:"transaction,omitempty"`
}

// BillboardInput is the create/edit form of a billboard. Prices are display
// strings; Images are local file paths.
type BillboardInput struct {
	CategoryID      string `validate:"required"`
	Description     string `validate:"required"`
	Location        string `validate:"required"`
	CityID          string `validate:"required"`
	ProvinceID      string `validate:"required"`
	Status          string `validate:"required"`
	Mode            string `validate:"required"`
	Size            string `validate:"required"`
	Orientation     string `validate:"required"`
	Display         string `validate:"required"`
	Lighting        string `validate:"required"`
	Tax             string `validate:"required"`
	LandOwnership   string
	RentPrice       string   `validate:"omitempty,currency"`
	SellPrice       string   `validate:"omitempty,currency"`
	ServicePrice    string   `validate:"omitempty,currency"`
	Images          []string `validate:"dive,file"`
	ImagesDeleteIDs []string
}

// RecomputeResult is returned by the recommendation recompute endpoint
type RecomputeResult struct {
	Updated int `json:"updated" yaml:"updated"`
}
