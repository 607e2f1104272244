package valueobjects

import "fmt"

// Category is the in-game role a ticket relates to.
type Category string

const (
	CategoryDPS     Category = "DPS"
	CategoryHeal    Category = "Heal"
	CategoryTank    Category = "Tank"
	CategorySupport Category = "Support"
	CategoryBM      Category = "BM"
)

// DefaultCategory is assigned when a ticket is created without one.
const DefaultCategory = CategoryDPS

var validCategories = map[Category]bool{
	CategoryDPS:     true,
	CategoryHeal:    true,
	CategoryTank:    true,
	CategorySupport: true,
	CategoryBM:      true,
}

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	return validCategories[c]
}

func NewCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", fmt.Errorf("invalid category: %s", s)
	}
	return c, nil
}
