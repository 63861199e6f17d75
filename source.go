package ambient

import (
	"fmt"
	"strconv"
	"strings"
)

// Category identifies an independent noise mechanism.
type Category int

const (
	// CategoryRain is noise from rainfall on the surface.
	CategoryRain Category = iota

	// CategorySea is wind-driven surface agitation, graded by sea state.
	CategorySea

	// CategoryShipping is distant shipping traffic.
	CategoryShipping
)

// Categories lists every category in composition order.
var Categories = []Category{CategorySea, CategoryRain, CategoryShipping}

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryRain:
		return "rain"
	case CategorySea:
		return "sea"
	case CategoryShipping:
		return "shipping"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

// HasAbsentLevel reports whether level 0 of the category means "no noise".
func (c Category) HasAbsentLevel() bool {
	return c == CategoryRain || c == CategoryShipping
}

// Source is one category at one level.
type Source interface {
	Category() Category
	Level() int
	String() string
}

// IsAbsent reports whether src contributes nothing.
func IsAbsent(src Source) bool {
	return src.Category().HasAbsentLevel() && src.Level() == 0
}

// Rain is the rainfall intensity.
type Rain int

const (
	RainNone      Rain = iota
	RainLight          // 1 mm/h
	RainModerate       // 5 mm/h
	RainHeavy          // 10 mm/h
	RainVeryHeavy      // 100 mm/h
)

var rainNames = []string{"none", "light", "moderate", "heavy", "very heavy"}

// Category implements Source.
func (Rain) Category() Category { return CategoryRain }

// Level implements Source.
func (r Rain) Level() int { return int(r) }

func (r Rain) String() string {
	switch {
	case r == RainNone:
		return "without rain"
	case r > RainNone && r <= RainVeryHeavy:
		return rainNames[r] + " rain"
	default:
		return fmt.Sprintf("Rain(%d)", int(r))
	}
}

// ParseRain accepts "none", "light", "moderate", "heavy", "very_heavy"
// (or "very heavy") and the numeric levels 0-4.
func ParseRain(s string) (Rain, error) {
	key := normalizeLevelName(s)
	for i, name := range rainNames {
		if key == name {
			return Rain(i), nil
		}
	}
	if n, err := strconv.Atoi(key); err == nil && n >= int(RainNone) && n <= int(RainVeryHeavy) {
		return Rain(n), nil
	}
	return 0, fmt.Errorf("%w: rain %q", ErrUnknownLevel, s)
}

// Sea is the sea state. Every sea state contributes noise.
type Sea int

const (
	SeaState0 Sea = iota
	SeaState1
	SeaState2
	SeaState3
	SeaState4
	SeaState5
	SeaState6
)

// Category implements Source.
func (Sea) Category() Category { return CategorySea }

// Level implements Source.
func (s Sea) Level() int { return int(s) }

func (s Sea) String() string {
	return "sea state " + strconv.Itoa(int(s))
}

// ParseSea accepts "0"-"6", "state 3", "state_3" or "sea state 3".
func ParseSea(s string) (Sea, error) {
	key := strings.TrimPrefix(normalizeLevelName(s), "sea ")
	key = strings.TrimPrefix(key, "state ")
	if n, err := strconv.Atoi(key); err == nil && n >= int(SeaState0) && n <= int(SeaState6) {
		return Sea(n), nil
	}
	return 0, fmt.Errorf("%w: sea state %q", ErrUnknownLevel, s)
}

// Shipping is the density of distant shipping traffic.
type Shipping int

const (
	ShippingNone Shipping = iota
	ShippingLevel1
	ShippingLevel2
	ShippingLevel3
	ShippingLevel4
	ShippingLevel5
	ShippingLevel6
	ShippingLevel7
)

// Category implements Source.
func (Shipping) Category() Category { return CategoryShipping }

// Level implements Source.
func (s Shipping) Level() int { return int(s) }

func (s Shipping) String() string {
	if s == ShippingNone {
		return "without shipping noise"
	}
	return "shipping noise level " + strconv.Itoa(int(s))
}

// ParseShipping accepts "none", "0"-"7", "level 3" or "level_3".
func ParseShipping(s string) (Shipping, error) {
	key := normalizeLevelName(s)
	if key == "none" {
		return ShippingNone, nil
	}
	key = strings.TrimPrefix(key, "level ")
	if n, err := strconv.Atoi(key); err == nil && n >= int(ShippingNone) && n <= int(ShippingLevel7) {
		return Shipping(n), nil
	}
	return 0, fmt.Errorf("%w: shipping %q", ErrUnknownLevel, s)
}

func normalizeLevelName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("_", " ", "-", " ").Replace(s)
}
