package models

// Design is a print design buyers can order with a billboard
type Design struct {
	BaseModel   `yaml:",inline"`
	Name        string  `json:"name" yaml:"name"`
	Description string  `json:"description" yaml:"description"`
	Price       Money   `json:"price" yaml:"price"`
	Image       []Image `json:"image" yaml:"image"`
}

// DesignInput is the create/edit form of a design. Price is the display
// string typed by the operator.
type DesignInput struct {
	Name        string   `validate:"required,notblank"`
	Description string   `validate:"required,notblank"`
	Price       string   `validate:"required,notblank,currency"`
	Images      []string `validate:"dive,file"`
}
