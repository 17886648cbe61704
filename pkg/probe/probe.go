package probe

import (
	"context"
	"fmt"

	"github.com/weaveworks/shopctl/pkg/async"
	"github.com/weaveworks/shopctl/pkg/catalog"
	"github.com/weaveworks/shopctl/pkg/display"
)

// DefaultQuery is the search term used when none is given.
const DefaultQuery = "iPhone"

// Reporter receives progress for each step.
type Reporter interface {
	Actionf(format string, a ...interface{})
	Successf(format string, a ...interface{})
	Failuref(format string, a ...interface{})
}

// StepError names the step that stopped the check.
type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// Result holds what each step returned.
type Result struct {
	Health   string
	Products catalog.ProductList
	Stories  catalog.StoryList
	Sellers  catalog.SellerList
	Search   catalog.ProductList
}

// Run checks the API end to end. Each step waits for the previous one and the
// first failure ends the check. ctx bounds how long each step is waited for.
func Run(ctx context.Context, api *async.Client, query string, r Reporter) (Result, error) {
	if query == "" {
		query = DefaultQuery
	}
	var (
		res Result
		err error
	)

	r.Actionf("checking API health")
	if res.Health, err = await(ctx, "health check", r, api.CheckHealth); err != nil {
		return res, err
	}
	r.Successf("API health check: %s", res.Health)

	r.Actionf("loading products")
	if res.Products, err = await(ctx, "products", r, api.ListProducts); err != nil {
		return res, err
	}
	r.Successf("products loaded successfully: %d items", len(res.Products.Items))
	for _, p := range res.Products.Items {
		r.Successf("product: %s, price: %s, discount: %d%%", p.Name, display.FormatPrice(p.Price), p.Discount)
	}

	r.Actionf("loading stories")
	if res.Stories, err = await(ctx, "stories", r, api.ListStories); err != nil {
		return res, err
	}
	r.Successf("stories loaded successfully: %d items", len(res.Stories.Items))
	for _, s := range res.Stories.Items {
		r.Successf("story: %s, link: %s", s.Title, s.Link)
	}

	r.Actionf("loading sellers")
	if res.Sellers, err = await(ctx, "sellers", r, api.ListSellers); err != nil {
		return res, err
	}
	r.Successf("sellers loaded successfully: %d items", len(res.Sellers.Items))
	for _, s := range res.Sellers.Items {
		r.Successf("seller: %s, telegram: %s", s.Name, s.TelegramURL)
	}

	r.Actionf("searching for %q", query)
	search := func() (*async.Future[catalog.ProductList], error) { return api.SearchProducts(query) }
	if res.Search, err = await(ctx, "search", r, search); err != nil {
		return res, err
	}
	r.Successf("search results: %d items found", len(res.Search.Items))
	for _, p := range res.Search.Items {
		r.Successf("found: %s, price: %s", p.Name, display.FormatPrice(p.Price))
	}
	return res, nil
}

func await[T any](ctx context.Context, step string, r Reporter, dispatch func() (*async.Future[T], error)) (T, error) {
	var zero T
	future, err := dispatch()
	if err != nil {
		r.Failuref("%s: %v", step, err)
		return zero, &StepError{Step: step, Err: err}
	}
	v, err := future.Wait(ctx)
	if err != nil {
		r.Failuref("%s: %v", step, err)
		return zero, &StepError{Step: step, Err: err}
	}
	return v, nil
}
