package report_test

import (
	"fmt"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/errors/domains"
	"github.com/cockroachdb/errors/markers"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/veedubyou/stem-curator/src/curator/internal/report"
	"github.com/veedubyou/stem-curator/src/shared/lib/cerr"
	"github.com/veedubyou/stem-curator/src/shared/lib/errors/mark"
)

var _ = Describe("Summary", func() {
	var summary *report.Summary

	BeforeEach(func() {
		summary = report.NewSummary("split-test-set")
	})

	Describe("With only successes", func() {
		BeforeEach(func() {
			summary.OK("vocal", 2)
			summary.Skip("empty")
		})

		It("has no error", func() {
			Expect(summary.Err()).NotTo(HaveOccurred())
			Expect(summary.Failed()).To(BeEmpty())
		})

		It("counts units and files", func() {
			Expect(summary.Counts()).To(Equal(report.Counts{OK: 1, Skipped: 1, Files: 2}))
		})
	})

	Describe("With failures", func() {
		testMark := domains.New("test_mark")

		BeforeEach(func() {
			summary.Fail("zither", errors.New("zither broke"))
			summary.OK("guitar", 1)
			summary.Fail("bass", mark.Message(testMark, "bass broke"))
		})

		It("orders units by name", func() {
			names := []string{}
			for _, unit := range summary.Units() {
				names = append(names, unit.Name)
			}
			Expect(names).To(Equal([]string{"bass", "guitar", "zither"}))
		})

		It("wraps the first failure by name", func() {
			err := summary.Err()
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("bass broke"))
			Expect(markers.Is(err, testMark)).To(BeTrue())
			Expect(cerr.CollectFields(err)).To(HaveKeyWithValue("failed", 2))
		})

		It("keeps the other failures in the detailed output", func() {
			Expect(fmt.Sprintf("%+v", summary.Err())).To(ContainSubstring("zither broke"))
		})
	})

	It("accepts units from many goroutines", func() {
		wg := sync.WaitGroup{}
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				summary.OK(fmt.Sprintf("unit-%02d", i), 1)
			}(i)
		}
		wg.Wait()

		Expect(summary.Counts().OK).To(Equal(50))
		Expect(summary.Counts().Files).To(Equal(50))
	})
})
