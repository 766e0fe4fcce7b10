// Package orbs tracks collected orbs per element and the abilities they unlock.
package orbs

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownElement = errors.New("orbs: unknown element")

// Element is a collectible orb kind.
type Element int

const (
	Earth Element = iota
	Water
	Fire
	Air

	ElementCount
)

var elementNames = [ElementCount]string{
	Earth: "earth",
	Water: "water",
	Fire:  "fire",
	Air:   "air",
}

func (e Element) Valid() bool {
	return e >= 0 && e < ElementCount
}

func (e Element) String() string {
	if !e.Valid() {
		return fmt.Sprintf("Element(%d)", int(e))
	}
	return elementNames[e]
}

// ParseElement maps a case-insensitive element name to its Element.
func ParseElement(name string) (Element, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for e, n := range elementNames {
		if n == name {
			return Element(e), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownElement, name)
}

// Elements returns every element in declaration order.
func Elements() []Element {
	out := make([]Element, 0, ElementCount)
	for e := Element(0); e < ElementCount; e++ {
		out = append(out, e)
	}
	return out
}

// Thresholds are the counts at which the first, second and third ability of
// an element unlock.
type Thresholds struct {
	First, Second, Third int
}

// DefaultThresholds unlock on the first, second and third orb.
var DefaultThresholds = Thresholds{First: 1, Second: 2, Third: 3}

// Abilities are the unlocks derived from the current counts.
type Abilities struct {
	// Earth
	DoubleJump  bool
	HeavyRanged bool
	Glide       bool

	// Water
	LightRanged bool
	Illuminate  bool
	Dash        bool
}

// ExtraJumps is the number of air jumps granted by the abilities.
func (a Abilities) ExtraJumps() int {
	if a.DoubleJump {
		return 1
	}
	return 0
}

// Collection holds one count per element. The zero value has every count at zero.
type Collection struct {
	counts     [ElementCount]int
	thresholds Thresholds
	abilities  Abilities
}

// NewCollection returns an empty collection using t as unlock thresholds.
func NewCollection(t Thresholds) *Collection {
	return &Collection{thresholds: t}
}

// Get returns the count for e. Elements outside the enumeration read as zero.
func (c *Collection) Get(e Element) int {
	if c == nil || !e.Valid() {
		return 0
	}
	return c.counts[e]
}

// Set stores amount for e and re-evaluates abilities.
func (c *Collection) Set(e Element, amount int) error {
	if !e.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownElement, int(e))
	}
	c.counts[e] = amount
	c.updateAbilities()
	return nil
}

// Collect adds one orb of element e and returns the new count.
func (c *Collection) Collect(e Element) (int, error) {
	n := c.Get(e) + 1
	if err := c.Set(e, n); err != nil {
		return 0, err
	}
	return n, nil
}

// Counts returns a copy of every count keyed by element.
func (c *Collection) Counts() [ElementCount]int {
	if c == nil {
		return [ElementCount]int{}
	}
	return c.counts
}

// Abilities returns the abilities unlocked by the current counts.
func (c *Collection) Abilities() Abilities {
	if c == nil {
		return Abilities{}
	}
	return c.abilities
}

func (c *Collection) updateAbilities() {
	t := c.thresholds
	if t == (Thresholds{}) {
		t = DefaultThresholds
	}

	earth := c.counts[Earth]
	water := c.counts[Water]
	c.abilities = Abilities{
		DoubleJump:  earth >= t.First,
		HeavyRanged: earth >= t.Second,
		Glide:       earth >= t.Third,

		LightRanged: water >= t.First,
		Illuminate:  water >= t.Second,
		Dash:        water >= t.Third,
	}
}
