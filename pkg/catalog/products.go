package catalog

import (
	"context"
	"net/url"
	"strings"
)

// ListProducts fetches every product.
func (c *Client) ListProducts(ctx context.Context) (ProductList, error) {
	return fetchList(ctx, c, "products", "", decodeProduct)
}

// SearchProducts fetches the products matching query. The query is sent as
// is, including when empty; matching is up to the server.
func (c *Client) SearchProducts(ctx context.Context, query string) (ProductList, error) {
	return fetchList(ctx, c, "search", searchQuery(query), decodeProduct)
}

// searchQuery percent-encodes query as the q parameter, spaces as %20.
func searchQuery(query string) string {
	return "q=" + strings.ReplaceAll(url.QueryEscape(query), "+", "%20")
}
