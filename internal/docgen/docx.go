package docgen

import (
	"fmt"
	"io"
	"strings"

	"swiftdoc/internal/domain"
)

const docxContentTypes = `<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
<Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>
</Types>`

const docxRootRels = `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

const docxDocumentRels = `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>
</Relationships>`

// Paragraph styles for title page and section headings. Word falls back to
// defaults for anything not defined here.
const docxStyles = `<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:style w:type="paragraph" w:styleId="Title">
<w:name w:val="Title"/>
<w:pPr><w:spacing w:after="300"/></w:pPr>
<w:rPr><w:b/><w:sz w:val="56"/></w:rPr>
</w:style>
<w:style w:type="paragraph" w:styleId="Subtitle">
<w:name w:val="Subtitle"/>
<w:pPr><w:spacing w:after="360"/></w:pPr>
<w:rPr><w:i/><w:color w:val="595959"/><w:sz w:val="28"/></w:rPr>
</w:style>
<w:style w:type="paragraph" w:styleId="Heading1">
<w:name w:val="heading 1"/>
<w:pPr><w:spacing w:before="360" w:after="160"/><w:outlineLvl w:val="0"/></w:pPr>
<w:rPr><w:b/><w:sz w:val="32"/></w:rPr>
</w:style>
</w:styles>`

// WriteDocx composes a Word document: title heading, topic subtitle, then one
// level-1 heading per section followed by its rendered content.
func WriteDocx(w io.Writer, project *domain.Project, sections []domain.Section) error {
	var body strings.Builder

	body.WriteString(styledParagraph("Title", project.Title))
	body.WriteString(styledParagraph("Subtitle", project.Topic))

	for i := range sections {
		sec := &sections[i]
		body.WriteString(styledParagraph("Heading1", sec.Title))
		if !sec.HasContent() {
			body.WriteString(styledParagraph("", "[No content]"))
			continue
		}
		for _, line := range ParseContent(sec.Content) {
			body.WriteString(docxParagraph(line))
		}
	}

	document := fmt.Sprintf(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body>
%s<w:sectPr><w:pgSz w:w="12240" w:h="15840"/><w:pgMar w:top="1440" w:right="1440" w:bottom="1440" w:left="1440"/></w:sectPr>
</w:body>
</w:document>`, body.String())

	return writePackage(w, []part{
		{"[Content_Types].xml", docxContentTypes},
		{"_rels/.rels", docxRootRels},
		{"word/_rels/document.xml.rels", docxDocumentRels},
		{"word/styles.xml", docxStyles},
		{"word/document.xml", document},
	})
}

// styledParagraph renders a plain paragraph, optionally with a paragraph style.
func styledParagraph(style, text string) string {
	var pPr string
	if style != "" {
		pPr = fmt.Sprintf(`<w:pPr><w:pStyle w:val=%q/></w:pPr>`, style)
	}
	return fmt.Sprintf("<w:p>%s<w:r><w:t xml:space=\"preserve\">%s</w:t></w:r></w:p>\n", pPr, xmlEscape(text))
}

// docxParagraph renders one parsed content line. Bullets carry a glyph prefix
// and a left indent that grows with nesting depth; plain paragraphs get
// 12pt spacing after, bullets none, matching the exported look of the
// generated markdown.
func docxParagraph(line Line) string {
	var sb strings.Builder
	sb.WriteString("<w:p><w:pPr>")

	if line.Bullet {
		// 0.25" per level, one extra so sub-points sit right of their parent
		indent := 360 * (line.Indent + 1)
		fmt.Fprintf(&sb, `<w:spacing w:after="0"/><w:ind w:left="%d"/>`, indent)
	} else {
		sb.WriteString(`<w:spacing w:after="240"/>`)
	}
	sb.WriteString("</w:pPr>")

	if line.Bullet {
		sb.WriteString(`<w:r><w:t xml:space="preserve">` + "• " + `</w:t></w:r>`)
	}

	for _, run := range line.Runs {
		sb.WriteString("<w:r>")
		if run.Bold || run.Italic {
			sb.WriteString("<w:rPr>")
			if run.Bold {
				sb.WriteString("<w:b/>")
			}
			if run.Italic {
				sb.WriteString("<w:i/>")
			}
			sb.WriteString("</w:rPr>")
		}
		fmt.Fprintf(&sb, `<w:t xml:space="preserve">%s</w:t>`, xmlEscape(run.Text))
		sb.WriteString("</w:r>")
	}

	sb.WriteString("</w:p>\n")
	return sb.String()
}
