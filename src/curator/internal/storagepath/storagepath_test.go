package storagepath_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/veedubyou/stem-curator/src/curator/internal/storagepath"
)

var _ = Describe("Generator", func() {
	It("joins the parts under the host", func() {
		generator := storagepath.Generator{Host: "https://storage.googleapis.com/", Bucket: "corpus", Prefix: "train"}
		Expect(generator.GeneratePath("guitar", "a.wav")).To(Equal("https://storage.googleapis.com/corpus/train/guitar/a.wav"))
	})

	It("skips an empty prefix", func() {
		generator := storagepath.Generator{Host: "http://localhost:4443", Bucket: "corpus"}
		Expect(generator.GeneratePath("guitar", "a.wav")).To(Equal("http://localhost:4443/corpus/guitar/a.wav"))
	})

	It("splits a generated URL back apart", func() {
		bucket, object, err := storagepath.SplitURL("http://localhost:4443", "http://localhost:4443/corpus/train/guitar/a.wav")
		Expect(err).NotTo(HaveOccurred())
		Expect(bucket).To(Equal("corpus"))
		Expect(object).To(Equal("train/guitar/a.wav"))
	})

	It("rejects URLs on another host or without an object", func() {
		_, _, err := storagepath.SplitURL("http://localhost:4443", "http://elsewhere/corpus/a.wav")
		Expect(err).To(HaveOccurred())

		_, _, err = storagepath.SplitURL("http://localhost:4443", "http://localhost:4443/corpus")
		Expect(err).To(HaveOccurred())
	})
})
