package log_test

import (
	"bytes"
	"encoding/json"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/weaveworks/shopctl/pkg/config"
	"github.com/weaveworks/shopctl/pkg/log"
)

var _ = Describe("StderrLogger", func() {
	var (
		buf    *bytes.Buffer
		logger log.StderrLogger
	)

	BeforeEach(func() {
		buf = &bytes.Buffer{}
		logger = log.StderrLogger{Stderr: buf}
	})

	It("logs a warning with a marker", func() {
		logger.Warningf("test-%s", "warning")
		Expect(buf.String()).To(Equal("⚠️ test-warning\n"))
	})

	It("logs action, success and failure markers", func() {
		logger.Actionf("go")
		logger.Successf("ok")
		logger.Failuref("no")
		Expect(buf.String()).To(Equal("► go\n✔ ok\n✗ no\n"))
	})
})

var _ = Describe("New", func() {
	It("writes json lines in production", func() {
		buf := &bytes.Buffer{}
		logger := log.New(log.Options{Level: "warn", Environment: config.Production, Out: buf})

		logger.Info().Msg("dropped")
		logger.Warn().Str("record", "p1").Msg("kept")

		var line map[string]interface{}
		Expect(json.Unmarshal(buf.Bytes(), &line)).To(Succeed())
		Expect(line).To(HaveKeyWithValue("message", "kept"))
		Expect(line).To(HaveKeyWithValue("record", "p1"))
		Expect(line).To(HaveKeyWithValue("level", "warn"))
	})

	It("falls back to info on an unknown level", func() {
		buf := &bytes.Buffer{}
		logger := log.New(log.Options{Level: "chatty", Out: buf})

		logger.Debug().Msg("hidden")
		Expect(buf.Len()).To(BeZero())
		logger.Info().Msg("visible")
		Expect(buf.String()).To(ContainSubstring("visible"))
	})
})
