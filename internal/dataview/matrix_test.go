package dataview_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/sheetview/internal/dataview"
)

var _ = Describe("Matrix", func() {
	It("rejects empty shapes", func() {
		_, err := dataview.NewMatrix(0, 3)
		Expect(err).To(MatchError(dataview.ErrShape))

		_, err = dataview.MatrixFrom(nil)
		Expect(err).To(MatchError(dataview.ErrShape))
	})

	It("rejects ragged rows", func() {
		_, err := dataview.MatrixFrom([][]float64{{1, 2}, {3}})
		Expect(err).To(MatchError(dataview.ErrShape))
	})

	It("stores values row-major", func() {
		m := grid([]float64{1, 2, 3}, []float64{4, 5, 6})
		rows, cols := m.Shape()
		Expect(rows).To(Equal(2))
		Expect(cols).To(Equal(3))
		Expect(m.At(1, 0)).To(Equal(4.0))
		Expect(m.Rowwise()).To(Equal([][]float64{{1, 2, 3}, {4, 5, 6}}))
	})

	It("clones independently", func() {
		m := grid([]float64{1, 2})
		c := m.Clone()
		c.Set(0, 0, 9)
		Expect(m.At(0, 0)).To(Equal(1.0))
		Expect(m.Equal(c)).To(BeFalse())
		Expect(m.Equal(m.Clone())).To(BeTrue())
	})

	It("fills a constant", func() {
		m, err := dataview.Fill(2, 2, 0.5)
		Expect(err).NotTo(HaveOccurred())
		Expect(m.Rowwise()).To(Equal([][]float64{{0.5, 0.5}, {0.5, 0.5}}))
		Expect(m.Contains(1, 1)).To(BeTrue())
		Expect(m.Contains(2, 0)).To(BeFalse())
		Expect(m.Contains(0, -1)).To(BeFalse())
	})
})
