package catalog_test

import (
	"context"
	"fmt"
	"net/http"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"

	"github.com/weaveworks/shopctl/pkg/catalog"
	"github.com/weaveworks/shopctl/pkg/catalog/fakes"
)

var _ = Describe("Products", func() {
	var (
		fakeHTTPClient *fakes.FakeHTTPClient
		catalogClient  *catalog.Client
		ctx            context.Context
	)

	BeforeEach(func() {
		var err error
		ctx = context.Background()
		fakeHTTPClient = new(fakes.FakeHTTPClient)
		catalogClient, err = catalog.New(catalog.Options{
			BaseURL:    "http://example.catalog/api",
			HTTPClient: fakeHTTPClient,
		})
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("ListProducts", func() {
		When("every product is well formed", func() {
			It("returns them in order", func() {
				fakeHTTPClient.DoReturns(jsonResponse(http.StatusOK, `{
	"success": true,
	"data": [
		{"id": "p1", "name": "Phone", "image_url": "https://img/1", "price": 100.00, "discount": 25,
		 "category": "phones", "stock_quantity": 4, "description": "A phone", "seller_id": "s1"},
		{"id": "p2", "name": "Case", "image_url": "https://img/2", "price": "9.99"}
	]
}`), nil)

				list, err := catalogClient.ListProducts(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeHTTPClient.DoCallCount()).To(Equal(1))
				req := fakeHTTPClient.DoArgsForCall(0)
				Expect(req.Method).To(Equal(http.MethodGet))
				Expect(req.URL.String()).To(Equal("http://example.catalog/api/products"))
				Expect(req.Header.Get("Accept")).To(Equal("application/json"))
				Expect(req.Header.Get("Content-Type")).To(Equal("application/json"))

				Expect(list.Diagnostics).To(BeEmpty())
				Expect(list.Items).To(HaveLen(2))
				Expect(list.Items[0].ID).To(Equal("p1"))
				Expect(list.Items[0].Price.Equal(decimal.NewFromInt(100))).To(BeTrue())
				Expect(list.Items[0].Discount).To(Equal(25))
				Expect(list.Items[0].StockQuantity).To(Equal(4))
				Expect(list.Items[0].SellerID).To(Equal("s1"))
				Expect(list.Items[1].ID).To(Equal("p2"))
				Expect(list.Items[1].Price.String()).To(Equal("9.99"))
				Expect(list.Items[1].Discount).To(BeZero())
				Expect(list.Items[1].StockQuantity).To(BeZero())
				Expect(list.Items[1].Category).To(BeEmpty())
			})
		})

		When("a product is missing a required field", func() {
			It("drops only that product and reports it", func() {
				fakeHTTPClient.DoReturns(jsonResponse(http.StatusOK, `{"success": true, "data": [
					{"id": "p1", "name": "One", "image_url": "u", "price": 1},
					{"id": "p2", "image_url": "u", "price": 2},
					{"id": "p3", "name": "Three", "image_url": "u", "price": 3}
				]}`), nil)

				list, err := catalogClient.ListProducts(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(list.Items).To(HaveLen(2))
				Expect(list.Items[0].ID).To(Equal("p1"))
				Expect(list.Items[1].ID).To(Equal("p3"))
				Expect(list.Diagnostics).To(ConsistOf(catalog.Diagnostic{
					Index:  1,
					ID:     "p2",
					Reason: `missing required field "name"`,
				}))
			})
		})

		When("products break the model invariants", func() {
			It("drops each of them", func() {
				fakeHTTPClient.DoReturns(jsonResponse(http.StatusOK, `{"success": true, "data": [
					{"id": "neg", "name": "n", "image_url": "u", "price": -1},
					{"id": "disc", "name": "n", "image_url": "u", "price": 1, "discount": 150},
					{"id": "", "name": "n", "image_url": "u", "price": 1},
					{"id": "stock", "name": "n", "image_url": "u", "price": 1, "stock_quantity": -2},
					{"id": "bad-price", "name": "n", "image_url": "u", "price": "cheap"},
					"not an object",
					{"id": "ok", "name": "n", "image_url": "u", "price": 1, "seller_id": "nobody"},
					{"id": "ok", "name": "again", "image_url": "u", "price": 2}
				]}`), nil)

				list, err := catalogClient.ListProducts(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(list.Items).To(HaveLen(1))
				Expect(list.Items[0].ID).To(Equal("ok"))
				Expect(list.Items[0].SellerID).To(Equal("nobody"))
				Expect(list.Diagnostics).To(HaveLen(7))
				Expect(list.Diagnostics[0].Reason).To(Equal("price -1 is negative"))
				Expect(list.Diagnostics[1].Reason).To(Equal("discount 150 is outside [0,100]"))
				Expect(list.Diagnostics[2].Reason).To(Equal(`field "id" is empty`))
				Expect(list.Diagnostics[3].Reason).To(Equal("stock quantity -2 is negative"))
				Expect(list.Diagnostics[4].Reason).To(Equal(`field "price" is not a number`))
				Expect(list.Diagnostics[5].Reason).To(Equal("not a json object"))
				Expect(list.Diagnostics[6]).To(Equal(catalog.Diagnostic{Index: 7, ID: "ok", Reason: "duplicate id"}))
			})
		})

		When("optional fields are null or of the wrong type", func() {
			It("falls back to the defaults", func() {
				fakeHTTPClient.DoReturns(jsonResponse(http.StatusOK, `{"success": true, "data": [
					{"id": "p1", "name": "n", "image_url": "u", "price": 5, "discount": null, "stock_quantity": "many", "category": true}
				]}`), nil)

				list, err := catalogClient.ListProducts(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(list.Items).To(HaveLen(1))
				Expect(list.Items[0].Discount).To(BeZero())
				Expect(list.Items[0].StockQuantity).To(BeZero())
				Expect(list.Items[0].Category).To(BeEmpty())
			})
		})

		When("string fields arrive as numbers", func() {
			It("keeps the number's text", func() {
				fakeHTTPClient.DoReturns(jsonResponse(http.StatusOK, `{"success": true, "data": [
					{"id": 5, "name": 2024, "image_url": "u", "price": 5, "seller_id": 12}
				]}`), nil)

				list, err := catalogClient.ListProducts(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(list.Diagnostics).To(BeEmpty())
				Expect(list.Items).To(HaveLen(1))
				Expect(list.Items[0].ID).To(Equal("5"))
				Expect(list.Items[0].Name).To(Equal("2024"))
				Expect(list.Items[0].SellerID).To(Equal("12"))
			})
		})

		When("an integer field does not fit in 32 bits", func() {
			It("drops the product with an out of range reason", func() {
				fakeHTTPClient.DoReturns(jsonResponse(http.StatusOK, `{"success": true, "data": [
					{"id": "big", "name": "n", "image_url": "u", "price": 5, "discount": 1e20},
					{"id": "huge-stock", "name": "n", "image_url": "u", "price": 5, "stock_quantity": -3e9},
					{"id": "ok", "name": "n", "image_url": "u", "price": 5, "stock_quantity": 2147483647}
				]}`), nil)

				list, err := catalogClient.ListProducts(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(list.Items).To(HaveLen(1))
				Expect(list.Items[0].StockQuantity).To(Equal(2147483647))
				Expect(list.Diagnostics).To(Equal([]catalog.Diagnostic{
					{Index: 0, ID: "big", Reason: `field "discount" is out of range`},
					{Index: 1, ID: "huge-stock", Reason: `field "stock_quantity" is out of range`},
				}))
			})
		})

		When("data is absent", func() {
			It("returns an empty list", func() {
				fakeHTTPClient.DoReturns(jsonResponse(http.StatusOK, `{"success": true}`), nil)

				list, err := catalogClient.ListProducts(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(list.Items).To(BeEmpty())
			})
		})

		When("data is not an array", func() {
			It("returns a decode error", func() {
				fakeHTTPClient.DoReturns(jsonResponse(http.StatusOK, `{"success": true, "data": {"id": "p1"}}`), nil)

				_, err := catalogClient.ListProducts(ctx)
				Expect(catalog.Kind(err)).To(Equal(catalog.KindDecode))
				Expect(err).To(MatchError(ContainSubstring("data is not an array")))
			})
		})

		When("the API reports a failure", func() {
			It("returns a remote error carrying the error field", func() {
				fakeHTTPClient.DoReturns(jsonResponse(http.StatusOK, `{"success": false, "error": "database unavailable"}`), nil)

				_, err := catalogClient.ListProducts(ctx)
				var remoteErr *catalog.RemoteError
				Expect(err).To(BeAssignableToTypeOf(remoteErr))
				Expect(err.(*catalog.RemoteError).Message).To(Equal("database unavailable"))
				Expect(err).To(MatchError("remote error: database unavailable"))
			})

			It("falls back to the default message", func() {
				fakeHTTPClient.DoReturns(jsonResponse(http.StatusOK, `{"success": false}`), nil)

				_, err := catalogClient.ListProducts(ctx)
				Expect(catalog.Kind(err)).To(Equal(catalog.KindRemote))
				Expect(err.(*catalog.RemoteError).Message).To(Equal(catalog.DefaultRemoteMessage))
			})
		})

		When("http request returns a non-2xx code", func() {
			It("returns a transport error with the status", func() {
				fakeHTTPClient.DoReturns(jsonResponse(http.StatusBadGateway, `!20342 totally n:ot json "`), nil)

				_, err := catalogClient.ListProducts(ctx)
				Expect(catalog.Kind(err)).To(Equal(catalog.KindTransport))
				Expect(err.(*catalog.TransportError).StatusCode).To(Equal(http.StatusBadGateway))
				Expect(err).To(MatchError("failed to fetch http://example.catalog/api/products: status code 502"))
			})
		})

		When("http request fails", func() {
			It("returns a transport error without a status", func() {
				fakeHTTPClient.DoReturns(nil, fmt.Errorf("epic fail"))

				_, err := catalogClient.ListProducts(ctx)
				Expect(catalog.Kind(err)).To(Equal(catalog.KindTransport))
				Expect(err.(*catalog.TransportError).StatusCode).To(BeZero())
				Expect(err).To(MatchError(ContainSubstring("failed to do request: epic fail")))
			})
		})

		When("the body isn't valid json", func() {
			It("returns a decode error", func() {
				fakeHTTPClient.DoReturns(jsonResponse(http.StatusOK, `!20342 totally n:ot json "`), nil)

				_, err := catalogClient.ListProducts(ctx)
				Expect(catalog.Kind(err)).To(Equal(catalog.KindDecode))
				Expect(err).To(MatchError(ContainSubstring("failed to parse response")))
			})
		})

		When("the envelope has no success flag", func() {
			It("returns a decode error", func() {
				fakeHTTPClient.DoReturns(jsonResponse(http.StatusOK, `{"data": []}`), nil)

				_, err := catalogClient.ListProducts(ctx)
				Expect(catalog.Kind(err)).To(Equal(catalog.KindDecode))
			})
		})
	})

	Describe("SearchProducts", func() {
		BeforeEach(func() {
			fakeHTTPClient.DoReturns(jsonResponse(http.StatusOK, `{"success": true, "data": []}`), nil)
		})

		It("percent-encodes the query", func() {
			_, err := catalogClient.SearchProducts(ctx, "iPhone 15 & case+cover")
			Expect(err).NotTo(HaveOccurred())

			req := fakeHTTPClient.DoArgsForCall(0)
			Expect(req.URL.Path).To(Equal("/api/search"))
			Expect(req.URL.RawQuery).To(Equal("q=iPhone%2015%20%26%20case%2Bcover"))
			Expect(req.URL.Query().Get("q")).To(Equal("iPhone 15 & case+cover"))
		})

		It("round-trips unicode queries", func() {
			_, err := catalogClient.SearchProducts(ctx, "чехол для телефона")
			Expect(err).NotTo(HaveOccurred())
			Expect(fakeHTTPClient.DoArgsForCall(0).URL.Query().Get("q")).To(Equal("чехол для телефона"))
		})

		It("passes an empty query through", func() {
			_, err := catalogClient.SearchProducts(ctx, "")
			Expect(err).NotTo(HaveOccurred())
			Expect(fakeHTTPClient.DoArgsForCall(0).URL.RawQuery).To(Equal("q="))
		})
	})
})
