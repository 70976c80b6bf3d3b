package dataview_test

import (
	"bytes"
	"log/slog"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/sheetview/internal/dataview"
	"github.com/san-kum/sheetview/internal/sheet"
)

var _ = Describe("DataView", func() {
	var (
		bounds sheet.Bounds
		view   *dataview.Cartesian2D
	)

	BeforeEach(func() {
		bounds = sheet.NewBounds(0, 0, 2, 2)
		var err error
		view, err = dataview.NewCartesian2D(bounds, dataview.DefaultOptions())
		Expect(err).NotTo(HaveOccurred())
	})

	Context("before anything is recorded", func() {
		It("fails to sample", func() {
			_, err := view.Sample(sheet.Point{X: 0.5, Y: 0.5})
			Expect(err).To(MatchError(dataview.ErrEmpty))
		})

		It("fails to view", func() {
			m, b, err := view.View()
			Expect(err).To(MatchError(dataview.ErrEmpty))
			Expect(m).To(BeNil())
			Expect(b).To(Equal(bounds))
		})

		It("is empty", func() {
			Expect(view.Len()).To(Equal(0))
			_, ok := view.Timestamp()
			Expect(ok).To(BeFalse())
			_, ok = view.ROI()
			Expect(ok).To(BeFalse())
		})
	})

	It("samples the cell under a coordinate", func() {
		Expect(view.Record(grid([]float64{1, 2}, []float64{3, 4}))).To(Succeed())

		for _, tc := range []struct {
			p    sheet.Point
			want float64
		}{
			{sheet.Point{X: 0.5, Y: 1.5}, 1},
			{sheet.Point{X: 1.5, Y: 1.5}, 2},
			{sheet.Point{X: 0.5, Y: 0.5}, 3},
			{sheet.Point{X: 1.5, Y: 0.5}, 4},
		} {
			Expect(view.Sample(tc.p)).To(Equal(tc.want), "point %v", tc.p)
		}
	})

	It("uses per-axis density for non-square data", func() {
		Expect(view.Record(grid([]float64{1, 2, 3, 4}, []float64{5, 6, 7, 8}))).To(Succeed())
		Expect(view.Sample(sheet.Point{X: 1.75, Y: 0.25})).To(Equal(8.0))
		Expect(view.Sample(sheet.Point{X: 0.6, Y: 1.9})).To(Equal(2.0))
	})

	It("replaces the snapshot on every record", func() {
		Expect(view.Record(grid([]float64{1, 1}, []float64{1, 1}))).To(Succeed())
		second := grid([]float64{2, 2}, []float64{2, 2})
		Expect(view.Record(second)).To(Succeed())

		m, b, err := view.View()
		Expect(err).NotTo(HaveOccurred())
		Expect(m.Equal(second)).To(BeTrue())
		Expect(b).To(Equal(bounds))
		Expect(view.Len()).To(Equal(1))
	})

	It("keeps its own copy of recorded data", func() {
		data := grid([]float64{1, 2}, []float64{3, 4})
		Expect(view.Record(data)).To(Succeed())
		data.Set(0, 0, 100)
		Expect(view.Sample(sheet.Point{X: 0.5, Y: 1.5})).To(Equal(1.0))
	})

	It("rejects nil data without losing the current snapshot", func() {
		Expect(view.Record(grid([]float64{7}))).To(Succeed())
		Expect(view.Record(nil)).To(MatchError(dataview.ErrNilData))
		Expect(view.Len()).To(Equal(1))
	})

	It("reports samples outside the matrix", func() {
		Expect(view.Record(grid([]float64{1, 2}, []float64{3, 4}))).To(Succeed())
		_, err := view.Sample(sheet.Point{X: 3, Y: 1})
		Expect(err).To(MatchError(dataview.ErrOutOfRange))

		var rangeErr *dataview.RangeError
		Expect(err).To(BeAssignableToTypeOf(rangeErr))
	})

	It("needs a mapper to sample", func() {
		base, err := dataview.New(bounds, nil, dataview.DefaultOptions())
		Expect(err).NotTo(HaveOccurred())
		Expect(base.Record(grid([]float64{1}))).To(Succeed())

		_, err = base.Sample(sheet.Point{X: 1, Y: 1})
		Expect(err).To(MatchError(dataview.ErrNotImplemented))
	})

	It("warns when sampling outside the region of interest", func() {
		var buf bytes.Buffer
		opts := dataview.DefaultOptions()
		opts.ROI = ptr(sheet.NewBounds(0, 0, 1, 1))
		opts.Logger = slog.New(slog.NewTextHandler(&buf, nil))

		v, err := dataview.NewCartesian2D(bounds, opts)
		Expect(err).NotTo(HaveOccurred())
		Expect(v.Record(grid([]float64{1, 2}, []float64{3, 4}))).To(Succeed())

		Expect(v.Sample(sheet.Point{X: 0.5, Y: 0.5})).To(Equal(3.0))
		Expect(buf.String()).To(BeEmpty())

		Expect(v.Sample(sheet.Point{X: 1.5, Y: 1.5})).To(Equal(2.0))
		Expect(buf.String()).To(ContainSubstring("sample outside region of interest"))
	})
})
