package page

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Menu is the mobile navigation menu and its three-line hamburger icon.
type Menu struct {
	Panel *ClassList
	Line1 *ClassList
	Line2 *ClassList
	Line3 *ClassList
}

// NewMenu returns a collapsed menu.
func NewMenu() *Menu {
	return &Menu{
		Panel: NewClassList("h-0"),
		Line1: NewClassList(),
		Line2: NewClassList("mt-1.5"),
		Line3: NewClassList("mt-1.5"),
	}
}

var crossLineClasses = []string{"absolute", "top-[50%]", "left-[50%]", "translate-x-[-50%]", "translate-y-[-50%]"}

// Toggle opens a collapsed menu or collapses an open one, turning the
// hamburger into a cross and back. It reports whether the menu is open.
func (m *Menu) Toggle() bool {
	m.Panel.ToggleAll("h-0", "h-[12rem]")
	m.Line1.ToggleAll(crossLineClasses...)
	m.Line1.Toggle("rotate-45")
	m.Line2.ToggleAll("opacity-0", "mt-1.5")
	m.Line3.ToggleAll(crossLineClasses...)
	m.Line3.ToggleAll("rotate-[-45deg]", "mt-1.5")
	return m.Open()
}

func (m *Menu) Open() bool {
	return !m.Panel.Contains("h-0")
}

// Period is a billing period shown by the pricing switch.
type Period string

const (
	Monthly Period = "Monthly"
	Yearly  Period = "Yearly"
)

// ParsePeriod accepts a switch button label.
func ParsePeriod(label string) (Period, error) {
	switch p := Period(strings.TrimSpace(label)); p {
	case Monthly, Yearly:
		return p, nil
	default:
		return "", fmt.Errorf("unknown billing period %q", label)
	}
}

// Plan is a priced offering. MonthlyPrice is the price as written on the page.
type Plan struct {
	Name         string
	MonthlyPrice string
}

// Pricing is the state of the pricing section.
type Pricing struct {
	Period      Period
	Label       *ClassList
	LabelText   string
	PeriodLabel string
	Plans       []Plan
	Prices      []string
}

// NewPricing returns the pricing section showing monthly prices.
func NewPricing(plans []Plan) *Pricing {
	p := &Pricing{Label: NewClassList("left-2"), Plans: plans}
	// Monthly prices are shown as written and never fail.
	_ = p.Switch(Monthly)
	return p
}

// Switch shows prices for period. The slider label sits on the left for
// monthly billing and on the right for yearly billing.
func (p *Pricing) Switch(period Period) error {
	prices := make([]string, len(p.Plans))
	for i, plan := range p.Plans {
		if period != Yearly {
			prices[i] = plan.MonthlyPrice
			continue
		}
		yearly, err := YearlyPrice(plan.MonthlyPrice)
		if err != nil {
			return fmt.Errorf("pricing plan %q: %w", plan.Name, err)
		}
		prices[i] = yearly
	}

	p.Period = period
	p.Prices = prices
	p.LabelText = string(period)
	p.PeriodLabel = "/ " + string(period)
	if period == Yearly {
		p.Label.Remove("left-2")
		p.Label.Add("left-[49%]")
	} else {
		p.Label.Remove("left-[49%]")
		p.Label.Add("left-2")
	}
	return nil
}

// YearlyPrice is ten months of the monthly price, written with two decimals
// and a trailing zero turned into a nine: 9.99 becomes 99.99.
func YearlyPrice(monthly string) (string, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(monthly), 64)
	if err != nil {
		return "", fmt.Errorf("parsing price %q: %w", monthly, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "", fmt.Errorf("parsing price %q: not a finite number", monthly)
	}
	s := toFixed2(v * 10)
	if strings.HasSuffix(s, "0") {
		s = s[:len(s)-1] + "9"
	}
	return s, nil
}

// toFixed2 writes x with two decimals, rounding halves away from zero.
func toFixed2(x float64) string {
	scaled := new(big.Float).SetPrec(128).SetFloat64(math.Abs(x))
	scaled.Mul(scaled, big.NewFloat(100))
	n, _ := scaled.Int(nil)
	frac := new(big.Float).SetPrec(128).Sub(scaled, new(big.Float).SetInt(n))
	if frac.Cmp(big.NewFloat(0.5)) >= 0 {
		n.Add(n, big.NewInt(1))
	}

	digits := n.String()
	for len(digits) < 3 {
		digits = "0" + digits
	}
	s := digits[:len(digits)-2] + "." + digits[len(digits)-2:]
	if x < 0 && n.Sign() != 0 {
		s = "-" + s
	}
	return s
}

// Rect is an element's bounding box origin in viewport coordinates.
type Rect struct {
	Left float64
	Top  float64
}

// TileGlow returns the custom properties that centre a tile's radial glow on
// the pointer.
func TileGlow(clientX, clientY float64, tile Rect) map[string]string {
	return map[string]string{
		"--mouse-x": strconv.FormatFloat(clientX-tile.Left, 'f', -1, 64) + "px",
		"--mouse-y": strconv.FormatFloat(clientY-tile.Top, 'f', -1, 64) + "px",
	}
}
