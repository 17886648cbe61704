package display

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/weaveworks/shopctl/pkg/catalog"
)

// Currency is appended to every rendered price.
const Currency = "₽"

var hundred = decimal.NewFromInt(100)

// DiscountedPrice applies the product's percentage discount, rounded to
// two places. A zero discount returns the list price.
func DiscountedPrice(p catalog.Product) decimal.Decimal {
	if p.Discount <= 0 {
		return p.Price
	}
	factor := hundred.Sub(decimal.NewFromInt(int64(p.Discount))).Div(hundred)
	return p.Price.Mul(factor).Round(2)
}

// FormatPrice renders an amount with two decimals and the currency sign.
func FormatPrice(d decimal.Decimal) string {
	return d.StringFixed(2) + Currency
}

// Row is a single list line for a product.
type Row struct {
	Title    string
	Subtitle string
}

// ProductRow builds the list line shown for p.
func ProductRow(p catalog.Product) Row {
	title := fmt.Sprintf("%s - %s", p.Name, FormatPrice(p.Price))
	if p.Discount > 0 {
		title = fmt.Sprintf("%s (%d%% OFF - %s)", p.Name, p.Discount, FormatPrice(DiscountedPrice(p)))
	}

	var parts []string
	if p.Category != "" {
		parts = append(parts, p.Category)
	}
	if p.StockQuantity > 0 {
		parts = append(parts, fmt.Sprintf("In stock: %d pcs.", p.StockQuantity))
	}
	return Row{Title: title, Subtitle: strings.Join(parts, " • ")}
}

// ProductDetail renders the full description of p.
func ProductDetail(p catalog.Product) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", p.Name)
	fmt.Fprintf(&b, "Price: %s\n", FormatPrice(p.Price))
	if p.Discount > 0 {
		fmt.Fprintf(&b, "Discount: %d%%\n", p.Discount)
		fmt.Fprintf(&b, "Discounted price: %s\n", FormatPrice(DiscountedPrice(p)))
	}
	fmt.Fprintf(&b, "Category: %s\n", p.Category)
	fmt.Fprintf(&b, "In stock: %d pcs.\n\n", p.StockQuantity)
	if p.Description != "" {
		fmt.Fprintf(&b, "Description: %s", p.Description)
	} else {
		b.WriteString("No description")
	}
	return b.String()
}

// FindProduct returns the product with the given id.
func FindProduct(products []catalog.Product, id string) (catalog.Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return catalog.Product{}, false
}
