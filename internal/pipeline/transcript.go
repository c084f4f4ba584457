package pipeline

import (
	"fmt"

	"github.com/gomutex/godocx"
)

const (
	transcriptFont     = "Times New Roman"
	transcriptFontSize = 13
	transcriptHeadSize = 15
	transcriptTitle    = 16
)

// WriteTranscript writes the run's narration texts to a docx file, one
// section per page. Cached pages carry no narration from this run and are
// marked as reused.
func WriteTranscript(title string, results []PageResult, outPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("create transcript document: %w", err)
	}

	doc.AddParagraph("").AddText(title).Font(transcriptFont).Size(transcriptTitle).Color("000000").Bold(true)
	doc.AddParagraph("")

	for _, res := range results {
		heading := doc.AddParagraph("")
		heading.AddText(fmt.Sprintf("Page %d", res.Index+1)).Font(transcriptFont).Size(transcriptHeadSize).Color("000000").Bold(true)

		body := doc.AddParagraph("")
		switch {
		case res.Narration != "":
			body.AddText(res.Narration).Font(transcriptFont).Size(transcriptFontSize).Color("000000")
		case res.State == StateSkipped:
			body.AddText("(clip reused from a previous run)").Font(transcriptFont).Size(transcriptFontSize).Color("000000")
		default:
			body.AddText("(no narration produced)").Font(transcriptFont).Size(transcriptFontSize).Color("000000")
		}
	}

	if err := doc.SaveTo(outPath); err != nil {
		return fmt.Errorf("save transcript %s: %w", outPath, err)
	}
	return nil
}
