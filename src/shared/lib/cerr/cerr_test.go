package cerr_test

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/errors/domains"
	"github.com/cockroachdb/errors/markers"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/veedubyou/stem-curator/src/shared/lib/cerr"
	"github.com/veedubyou/stem-curator/src/shared/lib/errors/mark"
)

var _ = Describe("Cerr", func() {
	Describe("Error", func() {
		It("uses the message", func() {
			err := cerr.Error("Nothing to do")
			Expect(err).To(MatchError("Nothing to do"))
		})

		It("prefixes a wrapped cause", func() {
			cause := errors.New("exit status 2")
			err := cerr.Wrap(cause).Error("Failed to run sox")

			Expect(err).To(MatchError("Failed to run sox: exit status 2"))
			Expect(errors.Is(err, cause)).To(BeTrue())
		})
	})

	Describe("CollectFields", func() {
		It("finds fields at every level of the chain", func() {
			inner := cerr.Field("path", "a.wav").Error("Failed to trim")
			outer := cerr.Field("dir", "train/guitar").Wrap(inner).Error("Failed to normalize")

			Expect(cerr.CollectFields(outer)).To(Equal(cerr.F{
				"path": "a.wav",
				"dir":  "train/guitar",
			}))
		})

		It("prefers the outermost value for a repeated key", func() {
			inner := cerr.Field("stage", "trim").Error("inner")
			outer := cerr.Field("stage", "normalize").Wrap(inner).Error("outer")

			Expect(cerr.CollectFields(outer)).To(HaveKeyWithValue("stage", "normalize"))
		})

		It("does not share field maps between derived contexts", func() {
			base := cerr.Field("a", 1)
			first := base.Field("b", 2).Error("first")
			second := base.Field("c", 3).Error("second")

			Expect(cerr.CollectFields(first)).NotTo(HaveKey("c"))
			Expect(cerr.CollectFields(second)).NotTo(HaveKey("b"))
		})

		It("is empty for plain errors", func() {
			Expect(cerr.CollectFields(errors.New("plain"))).To(BeEmpty())
		})
	})

	Describe("marks", func() {
		var testMark = domains.New("test_mark")

		It("survive being wrapped with context", func() {
			marked := mark.Message(testMark, "Directory is empty")
			err := cerr.Field("dir", "x").Wrap(marked).Error("Failed to normalize")

			Expect(markers.Is(err, testMark)).To(BeTrue())
		})

		It("are not found on unmarked errors", func() {
			Expect(markers.Is(cerr.Error("unmarked"), testMark)).To(BeFalse())
		})
	})
})
