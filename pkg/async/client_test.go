package async_test

import (
	"context"
	"errors"
	"runtime"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/weaveworks/shopctl/pkg/async"
	"github.com/weaveworks/shopctl/pkg/async/fakes"
	"github.com/weaveworks/shopctl/pkg/catalog"
	"github.com/weaveworks/shopctl/pkg/executor"
)

// goroutineID reads the current goroutine's id from its stack header.
func goroutineID() uint64 {
	buf := make([]byte, 64)
	buf = buf[:runtime.Stack(buf, false)]
	fields := strings.Fields(strings.TrimPrefix(string(buf), "goroutine "))
	id, _ := strconv.ParseUint(fields[0], 10, 64)
	return id
}

var _ = Describe("Client", func() {
	var (
		fakeCatalog *fakes.FakeCatalog
		client      *async.Client
		ctx         context.Context
	)

	BeforeEach(func() {
		fakeCatalog = new(fakes.FakeCatalog)
		client = async.New(fakeCatalog, 4)
		ctx = context.Background()
	})

	AfterEach(func() {
		client.Close()
	})

	It("runs the call off the caller's goroutine", func() {
		release := make(chan struct{})
		fakeCatalog.ListProductsCalls(func(context.Context) (catalog.ProductList, error) {
			<-release
			return catalog.ProductList{Items: []catalog.Product{{ID: "p1"}}}, nil
		})

		future, err := client.ListProducts()
		Expect(err).NotTo(HaveOccurred())
		Consistently(future.Done(), 50*time.Millisecond).ShouldNot(BeClosed())

		close(release)
		list, err := future.Wait(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(list.Items).To(HaveLen(1))
	})

	It("delivers to a completion handler exactly once", func() {
		release := make(chan struct{})
		fakeCatalog.CheckHealthCalls(func(context.Context) (string, error) {
			<-release
			return "API is running", nil
		})

		future, err := client.CheckHealth()
		Expect(err).NotTo(HaveOccurred())

		var calls int32
		got := make(chan string, 1)
		future.Then(func(msg string, err error) {
			atomic.AddInt32(&calls, 1)
			got <- msg
		})
		close(release)

		Eventually(got).Should(Receive(Equal("API is running")))
		Consistently(func() int32 { return atomic.LoadInt32(&calls) }, 50*time.Millisecond).Should(Equal(int32(1)))
	})

	It("runs a late handler once, off the caller's goroutine", func() {
		fakeCatalog.ListSellersReturns(catalog.SellerList{}, errors.New("boom"))

		future, err := client.ListSellers()
		Expect(err).NotTo(HaveOccurred())
		Eventually(future.Done()).Should(BeClosed())

		var calls int32
		handlerGoroutine := make(chan uint64, 1)
		seen := make(chan error, 1)
		future.Then(func(_ catalog.SellerList, err error) {
			atomic.AddInt32(&calls, 1)
			handlerGoroutine <- goroutineID()
			seen <- err
		})

		Eventually(seen).Should(Receive(MatchError("boom")))
		Expect(<-handlerGoroutine).NotTo(Equal(goroutineID()))
		Consistently(func() int32 { return atomic.LoadInt32(&calls) }, 50*time.Millisecond).Should(Equal(int32(1)))
	})

	It("runs an early handler on a worker goroutine", func() {
		release := make(chan struct{})
		fakeCatalog.ListStoriesCalls(func(context.Context) (catalog.StoryList, error) {
			<-release
			return catalog.StoryList{}, nil
		})

		future, err := client.ListStories()
		Expect(err).NotTo(HaveOccurred())

		handlerGoroutine := make(chan uint64, 1)
		future.Then(func(catalog.StoryList, error) {
			handlerGoroutine <- goroutineID()
		})
		close(release)

		var id uint64
		Eventually(handlerGoroutine).Should(Receive(&id))
		Expect(id).NotTo(Equal(goroutineID()))
	})

	It("keeps serving calls chained from completion handlers", func() {
		single := async.New(fakeCatalog, 1)
		defer single.Close()
		fakeCatalog.CheckHealthReturns("API is running", nil)

		first, err := single.CheckHealth()
		Expect(err).NotTo(HaveOccurred())

		var chained int32
		queued := make(chan struct{})
		first.Then(func(string, error) {
			defer close(queued)
			for i := 0; i < 40; i++ {
				if _, err := single.CheckHealth(); err == nil {
					atomic.AddInt32(&chained, 1)
				}
			}
		})
		for i := 0; i < 16; i++ {
			_, err := single.CheckHealth()
			Expect(err).NotTo(HaveOccurred())
		}

		Eventually(queued, 2*time.Second).Should(BeClosed())
		last, err := single.CheckHealth()
		Expect(err).NotTo(HaveOccurred())
		Eventually(last.Done(), 2*time.Second).Should(BeClosed())
		Expect(atomic.LoadInt32(&chained)).To(Equal(int32(40)))
	})

	It("passes the query through to search", func() {
		fakeCatalog.SearchProductsReturns(catalog.ProductList{}, nil)

		future, err := client.SearchProducts("iPhone 15")
		Expect(err).NotTo(HaveOccurred())
		_, err = future.Wait(ctx)
		Expect(err).NotTo(HaveOccurred())
		_, query := fakeCatalog.SearchProductsArgsForCall(0)
		Expect(query).To(Equal("iPhone 15"))
	})

	It("runs independent calls concurrently", func() {
		var inFlight, peak int32
		fakeCatalog.ListStoriesCalls(func(context.Context) (catalog.StoryList, error) {
			n := atomic.AddInt32(&inFlight, 1)
			for {
				p := atomic.LoadInt32(&peak)
				if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
					break
				}
			}
			time.Sleep(20 * time.Millisecond)
			atomic.AddInt32(&inFlight, -1)
			return catalog.StoryList{}, nil
		})

		var futures []*async.Future[catalog.StoryList]
		for i := 0; i < 4; i++ {
			f, err := client.ListStories()
			Expect(err).NotTo(HaveOccurred())
			futures = append(futures, f)
		}
		for _, f := range futures {
			_, err := f.Wait(ctx)
			Expect(err).NotTo(HaveOccurred())
		}
		Expect(atomic.LoadInt32(&peak)).To(BeNumerically(">", 1))
	})

	It("stops waiting when the wait context ends", func() {
		release := make(chan struct{})
		defer close(release)
		fakeCatalog.ListProductsCalls(func(context.Context) (catalog.ProductList, error) {
			<-release
			return catalog.ProductList{}, nil
		})

		future, err := client.ListProducts()
		Expect(err).NotTo(HaveOccurred())

		waitCtx, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
		defer cancel()
		_, err = future.Wait(waitCtx)
		Expect(err).To(MatchError(context.DeadlineExceeded))
	})

	When("the client has been closed", func() {
		It("rejects every call", func() {
			client.Close()

			_, err := client.ListProducts()
			Expect(err).To(MatchError(executor.ErrPoolClosed))
			_, err = client.SearchProducts("x")
			Expect(err).To(MatchError(executor.ErrPoolClosed))
			_, err = client.ListStories()
			Expect(err).To(MatchError(executor.ErrPoolClosed))
			_, err = client.ListSellers()
			Expect(err).To(MatchError(executor.ErrPoolClosed))
			_, err = client.CheckHealth()
			Expect(err).To(MatchError(executor.ErrPoolClosed))
			Expect(fakeCatalog.Invocations()).To(BeEmpty())
		})
	})
})
