package partition_test

import (
	"math/rand"

	"github.com/cockroachdb/errors/markers"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/veedubyou/stem-curator/src/curator/internal/partition"
	. "github.com/veedubyou/stem-curator/src/shared/testing"
)

var _ = Describe("Policy", func() {
	Describe("ParsePolicy", func() {
		It("accepts the three policies in any case", func() {
			Expect(ExpectSuccess(partition.ParsePolicy("first"))).To(Equal(partition.First))
			Expect(ExpectSuccess(partition.ParsePolicy("LAST"))).To(Equal(partition.Last))
			Expect(ExpectSuccess(partition.ParsePolicy(" random "))).To(Equal(partition.Random))
		})

		It("rejects anything else", func() {
			_, err := partition.ParsePolicy("middle")
			Expect(markers.Is(err, partition.UnknownPolicy)).To(BeTrue())
		})
	})

	Describe("Select", func() {
		var (
			files []string
			rng   *rand.Rand
		)

		BeforeEach(func() {
			files = []string{"a.wav", "b.wav", "c.wav"}
			rng = rand.New(rand.NewSource(1))
		})

		It("takes from the front for first", func() {
			Expect(ExpectSuccess(partition.Select(files, partition.First, 2, rng))).To(Equal([]string{"a.wav", "b.wav"}))
		})

		It("takes from the back for last", func() {
			Expect(ExpectSuccess(partition.Select(files, partition.Last, 2, rng))).To(Equal([]string{"b.wav", "c.wav"}))
		})

		It("returns every file when first or last asks for too many", func() {
			Expect(ExpectSuccess(partition.Select(files, partition.First, 5, rng))).To(HaveLen(3))
			Expect(ExpectSuccess(partition.Select(files, partition.Last, 5, rng))).To(HaveLen(3))
		})

		It("samples distinct files for random", func() {
			for i := 0; i < 20; i++ {
				selected := ExpectSuccess(partition.Select(files, partition.Random, 2, rng))
				Expect(selected).To(HaveLen(2))
				Expect(selected[0]).NotTo(Equal(selected[1]))
				Expect(files).To(ContainElements(selected))
			}
		})

		It("is reproducible for the same seed", func() {
			first := ExpectSuccess(partition.Select(files, partition.Random, 1, rand.New(rand.NewSource(42))))
			second := ExpectSuccess(partition.Select(files, partition.Random, 1, rand.New(rand.NewSource(42))))
			Expect(first).To(Equal(second))
		})

		It("fails random when there are too few files", func() {
			_, err := partition.Select(files, partition.Random, 4, rng)
			Expect(markers.Is(err, partition.InsufficientFiles)).To(BeTrue())
		})

		It("rejects a count below one", func() {
			_, err := partition.Select(files, partition.Last, 0, rng)
			Expect(markers.Is(err, partition.InvalidCount)).To(BeTrue())
		})
	})
})
