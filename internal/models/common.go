package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BaseModel contains common fields for all models
type BaseModel struct {
	ID        string    `json:"id" yaml:"id"`
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" yaml:"updatedAt"`
}

// Image is an uploaded picture attached to a billboard or a design
type Image struct {
	ID          string    `json:"id" yaml:"id"`
	URL         string    `json:"url" yaml:"url"`
	Type        string    `json:"type" yaml:"type"`
	BillboardID *string   `json:"billboardId,omitempty" yaml:"billboardId,omitempty"`
	DesignID    *string   `json:"designId,omitempty" yaml:"designId,omitempty"`
	CreatedAt   time.Time `json:"createdAt" yaml:"createdAt"`
}

// Ref is the minimal {id, name} shape of a joined relation
type Ref struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// Money is an amount in rupiah. The backend sends it as a string or a number.
type Money = decimal.NullDecimal
