package normalize_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/veedubyou/stem-curator/src/curator/internal/normalize"
)

var _ = Describe("Duration formatting", func() {
	It("keeps a fractional part on whole seconds", func() {
		Expect(normalize.FormatSeconds(2)).To(Equal("2.0"))
		Expect(normalize.FormatSeconds(0)).To(Equal("0.0"))
		Expect(normalize.FormatSeconds(100)).To(Equal("100.0"))
	})

	It("uses the shortest round trip digits", func() {
		Expect(normalize.FormatSeconds(0.25)).To(Equal("0.25"))
		Expect(normalize.FormatSeconds(1.0 / 3)).To(Equal("0.3333333333333333"))

		a, b := 0.1, 0.2
		Expect(normalize.FormatSeconds(a + b)).To(Equal("0.30000000000000004"))
	})

	It("switches to exponent form for very small and very large values", func() {
		Expect(normalize.FormatSeconds(0.0001)).To(Equal("0.0001"))
		Expect(normalize.FormatSeconds(0.00001)).To(Equal("1e-05"))
		Expect(normalize.FormatSeconds(1e16)).To(Equal("1e+16"))
	})

	It("embeds the length before the extension", func() {
		Expect(normalize.TrimmedName("guitar.wav", "2.0")).To(Equal("guitar_2.0s.wav"))
		Expect(normalize.TrimmedName("a.b.wav", "0.5")).To(Equal("a.b_0.5s.wav"))
		Expect(normalize.TrimmedName("noext", "1.0")).To(Equal("noext_1.0s"))
	})

	Describe("PerFileLength", func() {
		It("divides the total evenly", func() {
			Expect(normalize.PerFileLength(8, 4)).To(Equal(2.0))
			Expect(normalize.PerFileLength(1, 3)).To(BeNumerically("~", 1.0/3))
		})
	})
})
