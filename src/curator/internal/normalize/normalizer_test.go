package normalize_test

import (
	"context"
	"math"
	"path/filepath"

	"github.com/cockroachdb/errors/markers"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/veedubyou/stem-curator/src/curator/internal/dummy"
	"github.com/veedubyou/stem-curator/src/curator/internal/normalize"
	"github.com/veedubyou/stem-curator/src/curator/internal/sox"
	. "github.com/veedubyou/stem-curator/src/shared/testing"
)

var _ = Describe("Normalizer", func() {
	var (
		root        string
		soxExecutor *dummy.SoxExecutor
		normalizer  normalize.Normalizer
		ctx         context.Context
	)

	BeforeEach(func() {
		root = GinkgoT().TempDir()
		soxExecutor = dummy.NewSoxExecutor()
		normalizer = normalize.NewNormalizer(sox.NewTool("sox", soxExecutor), nil)
		ctx = context.Background()
	})

	Describe("Normalize", func() {
		var dir string

		BeforeEach(func() {
			dir = filepath.Join(root, "guitar")
		})

		Describe("With four files and eight seconds", func() {
			BeforeEach(func() {
				MakeTree(root, Tree{"guitar": {"a.wav", "b.wav", "c.wav", "d.wav"}})
			})

			It("replaces every file with a two second copy", func() {
				replaced := ExpectSuccess(normalizer.Normalize(ctx, dir, 8))
				Expect(replaced).To(Equal(4))
				Expect(FileNames(dir)).To(Equal([]string{"a_2.0s.wav", "b_2.0s.wav", "c_2.0s.wav", "d_2.0s.wav"}))
			})

			It("passes the same length to sox", func() {
				ExpectSuccess(normalizer.Normalize(ctx, dir, 8))
				for _, call := range soxExecutor.Calls() {
					Expect(call[len(call)-1]).To(Equal("2.0"))
				}
				Expect(ReadFile(filepath.Join(dir, "a_2.0s.wav"))).To(Equal("trimmed 2.0:guitar/a.wav"))
			})
		})

		Describe("With a non-integer share", func() {
			BeforeEach(func() {
				MakeTree(root, Tree{"guitar": {"a.wav", "b.wav", "c.wav"}})
			})

			It("keeps the fractional length in the name", func() {
				ExpectSuccess(normalizer.Normalize(ctx, dir, 1))
				Expect(FileNames(dir)).To(ContainElement("a_0.3333333333333333s.wav"))
			})
		})

		Describe("With an empty directory", func() {
			BeforeEach(func() {
				MakeTree(root, Tree{"guitar": {"notes.txt"}})
			})

			It("is a precondition error", func() {
				_, err := normalizer.Normalize(ctx, dir, 8)
				Expect(err).To(HaveOccurred())
				Expect(markers.Is(err, normalize.EmptyDirectory)).To(BeTrue())
				Expect(soxExecutor.Calls()).To(BeEmpty())
			})
		})

		Describe("When one trim fails", func() {
			BeforeEach(func() {
				MakeTree(root, Tree{"guitar": {"a.wav", "b.wav"}})
				soxExecutor.FailFor["a.wav"] = true
			})

			It("keeps that original and replaces the rest", func() {
				replaced, err := normalizer.Normalize(ctx, dir, 4)
				Expect(err).To(HaveOccurred())
				Expect(markers.Is(err, sox.ToolFailed)).To(BeTrue())
				Expect(replaced).To(Equal(1))
				Expect(FileNames(dir)).To(Equal([]string{"a.wav", "b_2.0s.wav"}))
				Expect(ReadFile(filepath.Join(dir, "a.wav"))).To(Equal("guitar/a.wav"))
			})
		})

		Describe("When a trimmed name is taken by a sibling", func() {
			BeforeEach(func() {
				MakeTree(root, Tree{"guitar": {"a.wav", "a_1.0s.wav"}})
			})

			It("keeps the file and leaves the sibling to be trimmed itself", func() {
				replaced, err := normalizer.Normalize(ctx, dir, 2)
				Expect(markers.Is(err, normalize.NameTaken)).To(BeTrue())
				Expect(replaced).To(Equal(1))

				Expect(FileNames(dir)).To(Equal([]string{"a.wav", "a_1.0s_1.0s.wav"}))
				Expect(ReadFile(filepath.Join(dir, "a.wav"))).To(Equal("guitar/a.wav"))
				Expect(ReadFile(filepath.Join(dir, "a_1.0s_1.0s.wav"))).To(Equal("trimmed 1.0:guitar/a_1.0s.wav"))
				Expect(soxExecutor.Calls()).To(HaveLen(1))
			})
		})

		It("rejects a non-positive total", func() {
			MakeTree(root, Tree{"guitar": {"a.wav"}})

			for _, total := range []float64{0, -1, math.NaN(), math.Inf(1)} {
				_, err := normalizer.Normalize(ctx, dir, total)
				Expect(markers.Is(err, normalize.InvalidDuration)).To(BeTrue())
			}
			Expect(FileNames(dir)).To(Equal([]string{"a.wav"}))
		})
	})

	Describe("NormalizeTree", func() {
		BeforeEach(func() {
			MakeTree(root, Tree{
				"guitar": {"a.wav", "b.wav"},
				"vocal":  {"v.wav"},
				"empty":  {},
			})
		})

		It("normalizes each category on its own", func() {
			summary := ExpectSuccess(normalizer.NormalizeTree(ctx, root, 1))

			Expect(FileNames(filepath.Join(root, "guitar"))).To(Equal([]string{"a_0.5s.wav", "b_0.5s.wav"}))
			Expect(FileNames(filepath.Join(root, "vocal"))).To(Equal([]string{"v_1.0s.wav"}))

			failed := summary.Failed()
			Expect(failed).To(HaveLen(1))
			Expect(failed[0].Name).To(Equal("empty"))
			Expect(markers.Is(failed[0].Err, normalize.EmptyDirectory)).To(BeTrue())
			Expect(summary.Counts().Files).To(Equal(3))
		})

		It("rejects an invalid total before touching anything", func() {
			_, err := normalizer.NormalizeTree(ctx, root, 0)
			Expect(markers.Is(err, normalize.InvalidDuration)).To(BeTrue())
			Expect(soxExecutor.Calls()).To(BeEmpty())
		})
	})
})
