package category

import (
	"errors"
	"strings"
)

var ErrEmptyName = errors.New("category name cannot be empty")

// Category groups products and promotions.
type Category struct {
	ID          int64
	Name        string
	Description string
}

func New(name, description string) (*Category, error) {
	c := &Category{Name: strings.TrimSpace(name), Description: description}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Category) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrEmptyName
	}
	return nil
}
