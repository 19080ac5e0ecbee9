package models

// Category groups billboards
type Category struct {
	BaseModel `yaml:",inline"`
	Name      string `json:"name" yaml:"name"`
}

// CategoryInput is the create/edit form of a category
type CategoryInput struct {
	Name string `json:"name"`
}
