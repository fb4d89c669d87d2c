package ranking

import (
	"errors"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestRanking(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Ranking Suite")
}

func rec(country string, values map[string]float64) Record {
	return Record{Country: country, Values: values}
}

func countries(records []Record) []string {
	var names []string
	for _, r := range records {
		names = append(names, r.Country)
	}
	return names
}

var _ = Describe("TopN", func() {
	var table *Table

	BeforeEach(func() {
		table = &Table{
			Types: []string{"X", "Y"},
			Records: []Record{
				rec("A", map[string]float64{"X": 10, "Y": 1}),
				rec("B", map[string]float64{"X": 30, "Y": 1}),
				rec("C", map[string]float64{"X": 20, "Y": 1}),
			},
		}
	})

	It("returns the largest values first", func() {
		top, err := TopN(table, "X", 2)
		Expect(err).NotTo(HaveOccurred())
		Expect(top).To(HaveLen(2))
		Expect(top[0].Country).To(Equal("B"))
		Expect(top[0].Values["X"]).To(Equal(30.0))
		Expect(top[1].Country).To(Equal("C"))
		Expect(top[1].Values["X"]).To(Equal(20.0))
	})

	It("returns the whole table sorted when n exceeds its size", func() {
		top, err := TopN(table, "X", 10)
		Expect(err).NotTo(HaveOccurred())
		Expect(countries(top)).To(Equal([]string{"B", "C", "A"}))
	})

	It("keeps table order among equal values", func() {
		top, err := TopN(table, "Y", 2)
		Expect(err).NotTo(HaveOccurred())
		Expect(countries(top)).To(Equal([]string{"A", "B"}))
	})

	It("does not reorder the input table", func() {
		_, err := TopN(table, "X", 3)
		Expect(err).NotTo(HaveOccurred())
		Expect(countries(table.Records)).To(Equal([]string{"A", "B", "C"}))
	})

	It("returns the same result when called twice", func() {
		first, err := TopN(table, "X", 2)
		Expect(err).NotTo(HaveOccurred())
		second, err := TopN(table, "X", 2)
		Expect(err).NotTo(HaveOccurred())
		Expect(second).To(Equal(first))
	})

	It("places missing values after present ones, in table order", func() {
		table.Records = append(table.Records,
			rec("D", map[string]float64{"Y": 2}),
			rec("E", map[string]float64{"X": 5}),
			rec("F", map[string]float64{}),
		)
		top, err := TopN(table, "X", 6)
		Expect(err).NotTo(HaveOccurred())
		Expect(countries(top)).To(Equal([]string{"B", "C", "A", "E", "D", "F"}))
	})

	It("returns an empty result for an empty table", func() {
		top, err := TopN(&Table{Types: []string{"X"}}, "X", 10)
		Expect(err).NotTo(HaveOccurred())
		Expect(top).To(BeEmpty())
	})

	It("returns an empty result when n is not positive", func() {
		top, err := TopN(table, "X", 0)
		Expect(err).NotTo(HaveOccurred())
		Expect(top).To(BeEmpty())
	})

	It("fails with a schema mismatch for an unknown type", func() {
		_, err := TopN(table, "INFP", 10)
		var sm *SchemaMismatchError
		Expect(errors.As(err, &sm)).To(BeTrue())
		Expect(sm.Column).To(Equal("INFP"))
		Expect(err.Error()).To(ContainSubstring(`"INFP"`))
	})

	It("fails with a schema mismatch for a nil table", func() {
		_, err := TopN(nil, "X", 10)
		Expect(err).To(BeAssignableToTypeOf(&SchemaMismatchError{}))
	})

	DescribeTable("result length is min(n, rows)",
		func(n, expected int) {
			top, err := TopN(table, "X", n)
			Expect(err).NotTo(HaveOccurred())
			Expect(top).To(HaveLen(expected))
			for i := 1; i < len(top); i++ {
				Expect(top[i-1].Values["X"]).To(BeNumerically(">=", top[i].Values["X"]))
			}
		},
		Entry("n smaller than table", 1, 1),
		Entry("n equal to table", 3, 3),
		Entry("n larger than table", 10, 3),
	)

	Describe("all-equal values", func() {
		It("returns the first n rows in table order", func() {
			equal := &Table{Types: []string{"X"}}
			for _, c := range []string{"K", "L", "M", "N", "O"} {
				equal.Records = append(equal.Records, rec(c, map[string]float64{"X": 6.25}))
			}
			top, err := TopN(equal, "X", 3)
			Expect(err).NotTo(HaveOccurred())
			Expect(countries(top)).To(Equal([]string{"K", "L", "M"}))
		})
	})
})

var _ = Describe("Table", func() {
	It("reports its type columns", func() {
		t := &Table{Types: []string{"INTJ", "ENFP"}}
		Expect(t.HasType("INTJ")).To(BeTrue())
		Expect(t.HasType("Country")).To(BeFalse())
		Expect(t.Len()).To(Equal(0))
	})

	It("reports missing cells", func() {
		r := rec("A", map[string]float64{"X": 1})
		_, ok := r.Value("Y")
		Expect(ok).To(BeFalse())
		v, ok := r.Value("X")
		Expect(ok).To(BeTrue())
		Expect(v).To(Equal(1.0))
	})
})
