package export

import (
	"fmt"
	"strings"

	"classkit/internal/models"
)

// Assignment renders a .docx worksheet. includeAnswers switches between the
// student hand-out and the teacher answer key: the key adds the banner, the
// inline answers with explanations, the rubric page and the footer marker.
func Assignment(a *models.Assignment, includeAnswers bool) ([]byte, error) {
	if a == nil {
		a = &models.Assignment{}
	}

	title := a.AssignmentTitle
	if title == "" {
		title = "Assignment"
	}

	var body strings.Builder

	body.WriteString(styledPara("Title", `<w:jc w:val="center"/>`, run("", title)))
	if includeAnswers {
		body.WriteString(para(`<w:jc w:val="center"/>`, run(`<w:b/><w:color w:val="FF0000"/>`, "TEACHER COPY - ANSWER KEY")))
	}
	body.WriteString(para("", run("", a.Instructions)))
	body.WriteString(para("", run("", strings.Repeat("_", 50))))

	for i, q := range a.Questions {
		body.WriteString(styledPara("Heading2", "", run("", fmt.Sprintf("Q%d: %s", i+1, q.Prompt))))

		switch q.Type {
		case models.QuestionMCQ:
			for _, choice := range q.Choices {
				body.WriteString(bulletPara(run("", "[ ] "+choice)))
			}
		default:
			body.WriteString(para("", run("", "__________________________")))
		}

		if includeAnswers {
			body.WriteString(para("",
				run(`<w:b/>`, "Answer: "+q.Answer)+
					`<w:r><w:br/></w:r>`+
					run("", "Explanation: "+q.Explanation)))
		}
	}

	if includeAnswers && len(a.Rubric) > 0 {
		body.WriteString(para("", `<w:r><w:br w:type="page"/></w:r>`))
		body.WriteString(styledPara("Heading1", "", run("", "Rubric")))
		for _, r := range a.Rubric {
			body.WriteString(bulletPara(run("", r)))
		}
	}

	footer := Attribution
	if includeAnswers {
		footer += " | TEACHER COPY"
	}

	parts := []zipPart{
		{"[Content_Types].xml", docxContentTypes},
		{"_rels/.rels", docxRootRels},
		{"word/document.xml", documentXML(body.String())},
		{"word/_rels/document.xml.rels", docxDocumentRels},
		{"word/styles.xml", docxStyles},
		{"word/numbering.xml", docxNumbering},
		{"word/footer1.xml", footerXML(footer)},
	}

	return writeArchive(parts)
}

const wordNS = `xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships"`

func run(props, text string) string {
	var b strings.Builder
	b.WriteString(`<w:r>`)
	if props != "" {
		b.WriteString(`<w:rPr>` + props + `</w:rPr>`)
	}
	b.WriteString(`<w:t xml:space="preserve">` + esc(text) + `</w:t></w:r>`)
	return b.String()
}

func para(props, content string) string {
	var b strings.Builder
	b.WriteString(`<w:p>`)
	if props != "" {
		b.WriteString(`<w:pPr>` + props + `</w:pPr>`)
	}
	b.WriteString(content)
	b.WriteString(`</w:p>`)
	return b.String()
}

func styledPara(style, extraProps, content string) string {
	return para(`<w:pStyle w:val="`+style+`"/>`+extraProps, content)
}

func bulletPara(content string) string {
	return para(`<w:pStyle w:val="ListBullet"/><w:numPr><w:ilvl w:val="0"/><w:numId w:val="1"/></w:numPr>`, content)
}

func documentXML(body string) string {
	return xmlHeader +
		`<w:document ` + wordNS + `><w:body>` +
		body +
		`<w:sectPr><w:footerReference w:type="default" r:id="rId3"/>` +
		`<w:pgSz w:w="11906" w:h="16838"/>` +
		`<w:pgMar w:top="1440" w:right="1440" w:bottom="1440" w:left="1440" w:header="720" w:footer="720"/>` +
		`</w:sectPr>` +
		`</w:body></w:document>`
}

func footerXML(text string) string {
	return xmlHeader +
		`<w:ftr ` + wordNS + `>` +
		para(`<w:jc w:val="center"/>`, run(`<w:i/><w:color w:val="808080"/><w:sz w:val="18"/>`, text)) +
		`</w:ftr>`
}

const docxContentTypes = xmlHeader +
	`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
	`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` +
	`<Default Extension="xml" ContentType="application/xml"/>` +
	`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>` +
	`<Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>` +
	`<Override PartName="/word/numbering.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.numbering+xml"/>` +
	`<Override PartName="/word/footer1.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.footer+xml"/>` +
	`</Types>`

const docxRootRels = xmlHeader +
	`<Relationships xmlns="` + relsNS + `">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>` +
	`</Relationships>`

const docxDocumentRels = xmlHeader +
	`<Relationships xmlns="` + relsNS + `">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>` +
	`<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/numbering" Target="numbering.xml"/>` +
	`<Relationship Id="rId3" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/footer" Target="footer1.xml"/>` +
	`</Relationships>`

const docxStyles = xmlHeader +
	`<w:styles ` + wordNS + `>` +
	`<w:style w:type="paragraph" w:default="1" w:styleId="Normal"><w:name w:val="Normal"/><w:rPr><w:sz w:val="22"/></w:rPr></w:style>` +
	`<w:style w:type="paragraph" w:styleId="Title"><w:name w:val="Title"/><w:basedOn w:val="Normal"/>` +
	`<w:pPr><w:spacing w:after="240"/></w:pPr><w:rPr><w:b/><w:sz w:val="52"/></w:rPr></w:style>` +
	`<w:style w:type="paragraph" w:styleId="Heading1"><w:name w:val="heading 1"/><w:basedOn w:val="Normal"/>` +
	`<w:pPr><w:spacing w:before="240" w:after="120"/><w:outlineLvl w:val="0"/></w:pPr><w:rPr><w:b/><w:sz w:val="32"/></w:rPr></w:style>` +
	`<w:style w:type="paragraph" w:styleId="Heading2"><w:name w:val="heading 2"/><w:basedOn w:val="Normal"/>` +
	`<w:pPr><w:spacing w:before="200" w:after="100"/><w:outlineLvl w:val="1"/></w:pPr><w:rPr><w:b/><w:sz w:val="26"/></w:rPr></w:style>` +
	`<w:style w:type="paragraph" w:styleId="ListBullet"><w:name w:val="List Bullet"/><w:basedOn w:val="Normal"/>` +
	`<w:pPr><w:ind w:left="360"/></w:pPr></w:style>` +
	`</w:styles>`

const docxNumbering = xmlHeader +
	`<w:numbering ` + wordNS + `>` +
	`<w:abstractNum w:abstractNumId="0">` +
	`<w:lvl w:ilvl="0"><w:start w:val="1"/><w:numFmt w:val="bullet"/><w:lvlText w:val="&#8226;"/>` +
	`<w:lvlJc w:val="left"/><w:pPr><w:ind w:left="360" w:hanging="180"/></w:pPr></w:lvl>` +
	`</w:abstractNum>` +
	`<w:num w:numId="1"><w:abstractNumId w:val="0"/></w:num>` +
	`</w:numbering>`
