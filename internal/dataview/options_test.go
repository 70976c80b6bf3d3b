package dataview_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/sheetview/internal/dataview"
	"github.com/san-kum/sheetview/internal/index"
	"github.com/san-kum/sheetview/internal/sheet"
)

var _ = Describe("Options", func() {
	bounds := sheet.Radius(0.5)

	It("defaults to an ascending time index", func() {
		opts := dataview.DefaultOptions()
		Expect(opts.IndexedFeature).To(Equal("time"))
		Expect(opts.IndexedAscending).To(BeTrue())
		Expect(opts.Validate(bounds)).To(Succeed())
	})

	DescribeTable("rejects out of range values",
		func(mutate func(*dataview.Options), b sheet.Bounds) {
			opts := dataview.DefaultOptions()
			mutate(&opts)
			Expect(opts.Validate(b)).To(MatchError(dataview.ErrParameterBounds))
		},
		Entry("degenerate bounds", func(*dataview.Options) {}, sheet.NewBounds(0, 0, 0, 1)),
		Entry("zero cyclic interval", func(o *dataview.Options) { o.CyclicInterval = ptr(0.0) }, bounds),
		Entry("negative cyclic interval", func(o *dataview.Options) { o.CyclicInterval = ptr(-math.Pi) }, bounds),
		Entry("NaN timestamp", func(o *dataview.Options) { o.Timestamp = ptr(math.NaN()) }, bounds),
		Entry("degenerate roi", func(o *dataview.Options) { o.ROI = ptr(sheet.NewBounds(1, 1, 0, 0)) }, bounds),
		Entry("unnamed feature", func(o *dataview.Options) { o.IndexedFeature = "" }, bounds),
		Entry("unknown backend", func(o *dataview.Options) { o.Backend = "heap" }, bounds),
		Entry("unordered btree", func(o *dataview.Options) {
			o.Backend = index.BTreeBackend
			o.IndexedAscending = false
		}, bounds),
	)

	It("is validated by constructors", func() {
		opts := dataview.DefaultOptions()
		opts.CyclicInterval = ptr(-1.0)

		_, err := dataview.NewCartesian2D(bounds, opts)
		Expect(err).To(MatchError(dataview.ErrParameterBounds))
		_, err = dataview.NewCartesian2Dx(bounds, opts)
		Expect(err).To(MatchError(dataview.ErrParameterBounds))
	})

	It("copies metadata so callers cannot change it afterwards", func() {
		labels := map[string]any{"sheet": "V1"}
		opts := dataview.DefaultOptions()
		opts.Labels = labels
		opts.CyclicInterval = ptr(math.Pi)

		v, err := dataview.NewCartesian2D(bounds, opts)
		Expect(err).NotTo(HaveOccurred())

		labels["sheet"] = "LGN"
		*opts.CyclicInterval = 1
		Expect(v.Labels()).To(HaveKeyWithValue("sheet", "V1"))
		period, ok := v.CyclicInterval()
		Expect(ok).To(BeTrue())
		Expect(period).To(Equal(math.Pi))

		got := v.Labels()
		got["sheet"] = "changed"
		Expect(v.Labels()).To(HaveKeyWithValue("sheet", "V1"))

		v.SetLabel("density", 24)
		Expect(v.Labels()).To(HaveKeyWithValue("density", 24))
		Expect(v.Style()).To(BeEmpty())
	})
})
