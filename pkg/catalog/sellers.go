package catalog

import "context"

// ListSellers fetches every seller.
func (c *Client) ListSellers(ctx context.Context) (SellerList, error) {
	return fetchList(ctx, c, "sellers", "", decodeSeller)
}
