package game

import (
	"fmt"
	"strings"

	"github.com/pixil98/go-errors"
)

// ItemType defines the category of an item.
type ItemType int

const (
	ItemTypeUnknown ItemType = iota
	ItemTypeOther
	ItemTypeBeamer
)

// ItemSpec defines an item loaded from asset files.
// Each room that lists the spec gets its own instance.
type ItemSpec struct {
	// Name is what players type to pick the item up (e.g., "cookie").
	// Names do not need to be unique.
	Name string `json:"name"`

	// Description completes the sentence "<name>: <description> that weighs ..."
	Description string `json:"description"`

	// Weight in kilograms.
	Weight float64 `json:"weight"`

	// TypeStr is the item type from JSON ("other" or "beamer").
	TypeStr string `json:"type"`
}

// Type returns the parsed ItemType from TypeStr.
func (s *ItemSpec) Type() ItemType {
	switch strings.ToLower(s.TypeStr) {
	case "other":
		return ItemTypeOther
	case "beamer":
		return ItemTypeBeamer
	default:
		return ItemTypeUnknown
	}
}

// Validate satisfies storage.ValidatingSpec.
func (s *ItemSpec) Validate() error {
	el := errors.NewErrorList()
	if s.Name == "" {
		el.Add(fmt.Errorf("item name is required"))
	}
	if s.Description == "" {
		el.Add(fmt.Errorf("item description is required"))
	}
	if s.Weight < 0 {
		el.Add(fmt.Errorf("item weight must not be negative"))
	}
	if s.TypeStr == "" {
		el.Add(fmt.Errorf("item type is required"))
	} else if s.Type() == ItemTypeUnknown {
		el.Add(fmt.Errorf("item type %q is invalid", s.TypeStr))
	}
	return el.Err()
}

// Instantiate creates a new item from the spec.
func (s *ItemSpec) Instantiate() Holdable {
	if s.Type() == ItemTypeBeamer {
		return NewBeamer(s.Name, s.Description, s.Weight)
	}
	return NewItem(s.Name, s.Description, s.Weight)
}
