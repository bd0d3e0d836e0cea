package matcher_test

import (
	"bytes"
	"dvorakwords/pkg/dvorak"
	"dvorakwords/pkg/index"
	"dvorakwords/pkg/matcher"
	"dvorakwords/pkg/model"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Matcher", func() {
	tr, _ := dvorak.New(dvorak.QwertyToDvorak(), dvorak.Excluded())

	find := func(words ...string) ([]model.Match, error) {
		return matcher.New(index.New(words), tr).Find(words)
	}

	Describe("Find", func() {
		Describe("If a converted word is in the list", func() {
			It("should return the pair", func() {
				matches, err := find("cab", "jax", "rat", "kit")
				Expect(err).ToNot(HaveOccurred())
				Expect(matches).To(Equal([]model.Match{{Original: "cab", Transformed: "jax"}}))
			})
		})
		Describe("If a converted word isn't in the list", func() {
			It("should return nothing for it", func() {
				matches, err := find("cab", "rat", "kit")
				Expect(err).ToNot(HaveOccurred())
				Expect(matches).To(BeEmpty())
			})
		})
		Describe("If several words match", func() {
			It("should keep the order of the list", func() {
				matches, err := find("rat", "pay", "cab", "jax")
				Expect(err).ToNot(HaveOccurred())
				Expect(matches).To(Equal([]model.Match{
					{Original: "rat", Transformed: "pay"},
					{Original: "cab", Transformed: "jax"},
				}))
			})
		})
		Describe("If a word is repeated", func() {
			It("should report it once", func() {
				matches, err := find("cab", "cab", "jax", "cab")
				Expect(err).ToNot(HaveOccurred())
				Expect(matches).To(HaveLen(1))
			})
		})
		Describe("If the converted word holds excluded characters", func() {
			It("should still find it in the index", func() {
				matches, err := find("dab", "eax")
				Expect(err).ToNot(HaveOccurred())
				Expect(matches).To(Equal([]model.Match{{Original: "dab", Transformed: "eax"}}))
			})
		})
		Describe("If case differs", func() {
			It("should only match the same case", func() {
				matches, err := find("Cab", "jax")
				Expect(err).ToNot(HaveOccurred())
				Expect(matches).To(BeEmpty())
				matches, err = find("Cab", "Jax")
				Expect(err).ToNot(HaveOccurred())
				Expect(matches).To(Equal([]model.Match{{Original: "Cab", Transformed: "Jax"}}))
			})
		})
		Describe("If a word can't be converted", func() {
			It("should return an error and no match", func() {
				matches, err := find("cab", "jax", "it's")
				Expect(errors.Is(err, dvorak.ErrMappingGap)).To(BeTrue())
				Expect(matches).To(BeNil())
			})
		})
	})

	Describe("Write", func() {
		It("should print one line per match", func() {
			var buf bytes.Buffer
			err := matcher.Write(&buf, []model.Match{
				{Original: "rat", Transformed: "pay"},
				{Original: "cab", Transformed: "jax"},
			})
			Expect(err).ToNot(HaveOccurred())
			Expect(buf.String()).To(Equal("rat -> pay\ncab -> jax\n"))
		})
		It("should print nothing without matches", func() {
			var buf bytes.Buffer
			Expect(matcher.Write(&buf, nil)).To(Succeed())
			Expect(buf.Len()).To(BeZero())
		})
	})
})
