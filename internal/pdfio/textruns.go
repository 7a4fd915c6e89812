package pdfio

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/Wen-Qualtu/kt-datacards/internal/model"
)

var (
	fontSizeRe = regexp.MustCompile(`font-size:\s*([0-9.]+)pt`)
	topRe      = regexp.MustCompile(`top:\s*(-?[0-9.]+)pt`)
	leftRe     = regexp.MustCompile(`left:\s*(-?[0-9.]+)pt`)
)

// ParseTextRuns parses MuPDF's HTML rendering of a page into TextRuns.
// Each paragraph carries its position in the style attribute; each span
// inside it carries the font size. Spans too short to be a word (<=3
// characters after trimming) are dropped at the source, matching the
// layout convention the classifier ranks over.
func ParseTextRuns(html string) ([]model.TextRun, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse page html: %w", err)
	}

	var runs []model.TextRun
	doc.Find("p").Each(func(_ int, p *goquery.Selection) {
		pStyle, _ := p.Attr("style")
		x := styleValue(leftRe, pStyle)
		y := styleValue(topRe, pStyle)
		pSize := styleValue(fontSizeRe, pStyle)

		spans := p.Find("span")
		if spans.Length() == 0 {
			appendRun(&runs, p.Text(), pSize, x, y)
			return
		}
		spans.Each(func(_ int, span *goquery.Selection) {
			size := pSize
			if style, ok := span.Attr("style"); ok {
				if s := styleValue(fontSizeRe, style); s > 0 {
					size = s
				}
			}
			appendRun(&runs, span.Text(), size, x, y)
		})
	})

	return runs, nil
}

func appendRun(runs *[]model.TextRun, text string, size, x, y float64) {
	trimmed := strings.TrimSpace(text)
	if len(trimmed) <= 3 {
		return
	}
	*runs = append(*runs, model.TextRun{Content: trimmed, FontSize: size, X: x, Y: y})
}

func styleValue(re *regexp.Regexp, style string) float64 {
	m := re.FindStringSubmatch(style)
	if len(m) != 2 {
		return 0
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0
	}
	return v
}
