package async

import (
	"context"

	"github.com/weaveworks/shopctl/pkg/catalog"
	"github.com/weaveworks/shopctl/pkg/executor"
)

// Catalog is the synchronous API the async client dispatches to.
//
//go:generate counterfeiter -o fakes/fake_catalog.go . Catalog
type Catalog interface {
	ListProducts(ctx context.Context) (catalog.ProductList, error)
	SearchProducts(ctx context.Context, query string) (catalog.ProductList, error)
	ListStories(ctx context.Context) (catalog.StoryList, error)
	ListSellers(ctx context.Context) (catalog.SellerList, error)
	CheckHealth(ctx context.Context) (string, error)
}

// Client runs catalog calls on its own worker pool and hands back futures.
// Calls are independent and complete in no particular order.
type Client struct {
	catalog Catalog
	pool    *executor.Pool
}

// New creates a Client owning a pool of the given size.
func New(c Catalog, workers int) *Client {
	return &Client{
		catalog: c,
		pool:    executor.New(workers),
	}
}

// Close stops accepting calls and waits for the ones in flight.
func (c *Client) Close() {
	c.pool.Shutdown()
	c.pool.Wait()
}

func dispatch[T any](pool *executor.Pool, call func(context.Context) (T, error)) (*Future[T], error) {
	f := newFuture[T]()
	// Dispatched calls are not cancellable; they end on completion or timeout.
	err := pool.Submit(func() {
		f.resolve(call(context.Background()))
	})
	if err != nil {
		return nil, err
	}
	return f, nil
}

// ListProducts dispatches catalog.ListProducts. It returns
// executor.ErrPoolClosed after Close.
func (c *Client) ListProducts() (*Future[catalog.ProductList], error) {
	return dispatch(c.pool, c.catalog.ListProducts)
}

// SearchProducts dispatches catalog.SearchProducts.
func (c *Client) SearchProducts(query string) (*Future[catalog.ProductList], error) {
	return dispatch(c.pool, func(ctx context.Context) (catalog.ProductList, error) {
		return c.catalog.SearchProducts(ctx, query)
	})
}

// ListStories dispatches catalog.ListStories.
func (c *Client) ListStories() (*Future[catalog.StoryList], error) {
	return dispatch(c.pool, c.catalog.ListStories)
}

// ListSellers dispatches catalog.ListSellers.
func (c *Client) ListSellers() (*Future[catalog.SellerList], error) {
	return dispatch(c.pool, c.catalog.ListSellers)
}

// CheckHealth dispatches catalog.CheckHealth.
func (c *Client) CheckHealth() (*Future[string], error) {
	return dispatch(c.pool, c.catalog.CheckHealth)
}
