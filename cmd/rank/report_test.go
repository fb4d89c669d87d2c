package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/worldmbti/insights/dashboard"
	"gopkg.in/yaml.v3"
)

func TestRank(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Rank Suite")
}

const tableCSV = `Country,INTJ,INFP
Korea,4.2,9.1
Japan,3.1,12.0
Brazil,,6.3
`

var _ = Describe("rank", func() {
	var tempDir, file string
	var out bytes.Buffer

	BeforeEach(func() {
		var err error
		tempDir, err = os.MkdirTemp("", "rank-test")
		Expect(err).NotTo(HaveOccurred())
		file = filepath.Join(tempDir, "table.csv")
		Expect(os.WriteFile(file, []byte(tableCSV), 0600)).To(Succeed())
		out.Reset()
	})

	AfterEach(func() {
		os.RemoveAll(tempDir)
	})

	Describe("run", func() {
		It("prints the first type by default", func() {
			Expect(run(&out, options{file: file, n: 10, format: formatText})).To(Succeed())
			text := out.String()
			Expect(text).To(ContainSubstring("Source: table.csv (3 countries, 2 types)"))
			Expect(text).To(ContainSubstring("INTJ 비율이 높은 국가 TOP 10"))
			Expect(text).To(ContainSubstring("  1 | Korea  | "))
			Expect(text).To(ContainSubstring("4.2"))
			Expect(text).To(ContainSubstring("  3 | Brazil | -"))
		})

		It("honours the type and count", func() {
			Expect(run(&out, options{file: file, typeName: "INFP", n: 1, format: formatText})).To(Succeed())
			text := out.String()
			Expect(text).To(ContainSubstring("  1 | Japan | "))
			Expect(text).To(ContainSubstring("12.0"))
			Expect(text).NotTo(ContainSubstring("Korea"))
		})

		It("prints every type with all", func() {
			Expect(run(&out, options{file: file, n: 2, all: true, format: formatJSON})).To(Succeed())
			var views []dashboard.View
			Expect(json.Unmarshal(out.Bytes(), &views)).To(Succeed())
			Expect(views).To(HaveLen(2))
			Expect(views[0].Type).To(Equal("INTJ"))
			Expect(views[1].Type).To(Equal("INFP"))
			Expect(views[1].Bars[0].Country).To(Equal("Japan"))
		})

		It("writes YAML", func() {
			Expect(run(&out, options{file: file, typeName: "INFP", n: 2, format: formatYAML})).To(Succeed())
			var views []map[string]any
			Expect(yaml.Unmarshal(out.Bytes(), &views)).To(Succeed())
			Expect(views).To(HaveLen(1))
			Expect(views[0]["type"]).To(Equal("INFP"))
			Expect(views[0]["bars"]).To(HaveLen(2))
		})

		It("fails for an unknown type", func() {
			err := run(&out, options{file: file, typeName: "ESTP", n: 10, format: formatText})
			Expect(err).To(MatchError(ContainSubstring("ESTP")))
		})

		It("fails for an unknown format", func() {
			err := run(&out, options{file: file, n: 10, format: "xml"})
			Expect(err).To(MatchError(ContainSubstring("unknown format")))
		})

		It("fails for an out of range count", func() {
			err := run(&out, options{file: file, n: 0, format: formatText})
			Expect(err).To(MatchError(ContainSubstring("n must be between")))
		})

		It("fails for a missing file", func() {
			err := run(&out, options{file: filepath.Join(tempDir, "missing.csv"), n: 10, format: formatText})
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("printView", func() {
		It("aligns wide country names", func() {
			printView(&out, dashboard.View{Title: "T", Bars: []dashboard.Bar{
				{Rank: 1, Country: "대한민국", Value: 2},
				{Rank: 2, Country: "Peru", Value: 1},
			}})
			lines := strings.Split(strings.TrimSpace(out.String()), "\n")
			Expect(lines).To(HaveLen(3))
			Expect(lines[1]).To(HavePrefix("  1 | 대한민국 | "))
			Expect(lines[2]).To(HavePrefix("  2 | Peru     | "))
		})
	})

	DescribeTable("bar",
		func(value, maxValue float64, cells int) {
			Expect(bar(value, maxValue)).To(Equal(strings.Repeat("█", cells)))
		},
		Entry("maximum", 10.0, 10.0, barWidth),
		Entry("half", 5.0, 10.0, barWidth/2),
		Entry("tiny values keep one cell", 0.01, 10.0, 1),
		Entry("zero", 0.0, 10.0, 0),
		Entry("no maximum", 1.0, 0.0, 0),
	)

	Describe("command", func() {
		It("reads flags", func() {
			cmd := newRootCmd()
			cmd.SetOut(&out)
			cmd.SetArgs([]string{"--file", file, "--type", "INFP", "-n", "2", "-o", "json"})
			Expect(cmd.Execute()).To(Succeed())
			var views []dashboard.View
			Expect(json.Unmarshal(out.Bytes(), &views)).To(Succeed())
			Expect(views[0].Bars).To(HaveLen(2))
		})

		It("uses the configured count", func() {
			cfgPath := filepath.Join(tempDir, "config.yaml")
			Expect(os.WriteFile(cfgPath, []byte("top_n: 1\ndata_file: "+file+"\n"), 0600)).To(Succeed())
			cmd := newRootCmd()
			cmd.SetOut(&out)
			cmd.SetArgs([]string{"--config", cfgPath, "--format", "json"})
			Expect(cmd.Execute()).To(Succeed())
			var views []dashboard.View
			Expect(json.Unmarshal(out.Bytes(), &views)).To(Succeed())
			Expect(views[0].Bars).To(HaveLen(1))
			Expect(views[0].Bars[0].Country).To(Equal("Korea"))
		})
	})
})
