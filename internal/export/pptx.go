package export

import (
	"fmt"
	"strings"

	"classkit/internal/models"
)

// Slides renders a deck as a .pptx archive: a lead title slide with the deck
// title and attribution, then one slide per entry. Entries of type "title"
// get a title-only slide, everything else a title+bullets slide. Speaker
// notes become a notes slide when present.
func Slides(deck *models.SlideDeck) ([]byte, error) {
	if deck == nil {
		deck = &models.SlideDeck{}
	}

	title := deck.DeckTitle
	if title == "" {
		title = "Untitled"
	}

	type slideSpec struct {
		xml       string
		layout    int // 1 = title only, 2 = title and content
		notes     string
		notesPart int // 0 when the slide has no notes
	}

	specs := []slideSpec{{xml: leadSlideXML(title), layout: 1}}
	for _, s := range deck.Slides {
		layout := 2
		if s.Type == models.SlideTitle {
			layout = 1
		}
		specs = append(specs, slideSpec{
			xml:    contentSlideXML(s.Title, s.Bullets, layout == 1),
			layout: layout,
			notes:  s.SpeakerNotes,
		})
	}

	notesCount := 0
	for i := range specs {
		if specs[i].notes != "" {
			notesCount++
			specs[i].notesPart = notesCount
		}
	}

	parts := []zipPart{
		{"[Content_Types].xml", pptxContentTypes(len(specs), notesCount)},
		{"_rels/.rels", pptxRootRels},
		{"ppt/presentation.xml", presentationXML(len(specs))},
		{"ppt/_rels/presentation.xml.rels", presentationRels(len(specs))},
		{"ppt/slideMasters/slideMaster1.xml", slideMasterXML},
		{"ppt/slideMasters/_rels/slideMaster1.xml.rels", slideMasterRels},
		{"ppt/slideLayouts/slideLayout1.xml", slideLayoutXML("title", "Title Slide")},
		{"ppt/slideLayouts/_rels/slideLayout1.xml.rels", slideLayoutRels},
		{"ppt/slideLayouts/slideLayout2.xml", slideLayoutXML("obj", "Title and Content")},
		{"ppt/slideLayouts/_rels/slideLayout2.xml.rels", slideLayoutRels},
		{"ppt/notesMasters/notesMaster1.xml", notesMasterXML},
		{"ppt/notesMasters/_rels/notesMaster1.xml.rels", notesMasterRels},
		{"ppt/theme/theme1.xml", themeXML},
	}

	for i, spec := range specs {
		n := i + 1
		parts = append(parts,
			zipPart{fmt.Sprintf("ppt/slides/slide%d.xml", n), spec.xml},
			zipPart{fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", n), slideRels(spec.layout, spec.notesPart)},
		)
	}
	for i, spec := range specs {
		if spec.notesPart == 0 {
			continue
		}
		parts = append(parts,
			zipPart{fmt.Sprintf("ppt/notesSlides/notesSlide%d.xml", spec.notesPart), notesSlideXML(spec.notes)},
			zipPart{fmt.Sprintf("ppt/notesSlides/_rels/notesSlide%d.xml.rels", spec.notesPart), notesSlideRels(i + 1)},
		)
	}

	return writeArchive(parts)
}

const xmlHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

const pptxNamespaces = `xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main"`

const relsNS = `http://schemas.openxmlformats.org/package/2006/relationships`

func pptxContentTypes(slides, notes int) string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">`)
	b.WriteString(`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>`)
	b.WriteString(`<Default Extension="xml" ContentType="application/xml"/>`)
	b.WriteString(`<Override PartName="/ppt/presentation.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml"/>`)
	b.WriteString(`<Override PartName="/ppt/slideMasters/slideMaster1.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slideMaster+xml"/>`)
	b.WriteString(`<Override PartName="/ppt/slideLayouts/slideLayout1.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slideLayout+xml"/>`)
	b.WriteString(`<Override PartName="/ppt/slideLayouts/slideLayout2.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slideLayout+xml"/>`)
	b.WriteString(`<Override PartName="/ppt/notesMasters/notesMaster1.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.notesMaster+xml"/>`)
	b.WriteString(`<Override PartName="/ppt/theme/theme1.xml" ContentType="application/vnd.openxmlformats-officedocument.theme+xml"/>`)
	for i := 1; i <= slides; i++ {
		fmt.Fprintf(&b, `<Override PartName="/ppt/slides/slide%d.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slide+xml"/>`, i)
	}
	for i := 1; i <= notes; i++ {
		fmt.Fprintf(&b, `<Override PartName="/ppt/notesSlides/notesSlide%d.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.notesSlide+xml"/>`, i)
	}
	b.WriteString(`</Types>`)
	return b.String()
}

const pptxRootRels = xmlHeader +
	`<Relationships xmlns="` + relsNS + `">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="ppt/presentation.xml"/>` +
	`</Relationships>`

func presentationXML(slides int) string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<p:presentation ` + pptxNamespaces + `>`)
	b.WriteString(`<p:sldMasterIdLst><p:sldMasterId id="2147483648" r:id="rId1"/></p:sldMasterIdLst>`)
	b.WriteString(`<p:notesMasterIdLst><p:notesMasterId r:id="rId2"/></p:notesMasterIdLst>`)
	b.WriteString(`<p:sldIdLst>`)
	for i := 1; i <= slides; i++ {
		fmt.Fprintf(&b, `<p:sldId id="%d" r:id="rId%d"/>`, 255+i, 2+i)
	}
	b.WriteString(`</p:sldIdLst>`)
	b.WriteString(`<p:sldSz cx="9144000" cy="6858000" type="screen4x3"/>`)
	b.WriteString(`<p:notesSz cx="6858000" cy="9144000"/>`)
	b.WriteString(`</p:presentation>`)
	return b.String()
}

func presentationRels(slides int) string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<Relationships xmlns="` + relsNS + `">`)
	b.WriteString(`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideMaster" Target="slideMasters/slideMaster1.xml"/>`)
	b.WriteString(`<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/notesMaster" Target="notesMasters/notesMaster1.xml"/>`)
	for i := 1; i <= slides; i++ {
		fmt.Fprintf(&b, `<Relationship Id="rId%d" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide" Target="slides/slide%d.xml"/>`, 2+i, i)
	}
	b.WriteString(`</Relationships>`)
	return b.String()
}

const emptySpTreeHeader = `<p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr>` +
	`<p:grpSpPr><a:xfrm><a:off x="0" y="0"/><a:ext cx="0" cy="0"/><a:chOff x="0" y="0"/><a:chExt cx="0" cy="0"/></a:xfrm></p:grpSpPr>`

const slideMasterXML = xmlHeader +
	`<p:sldMaster ` + pptxNamespaces + `>` +
	`<p:cSld><p:spTree>` + emptySpTreeHeader + `</p:spTree></p:cSld>` +
	`<p:clrMap bg1="lt1" tx1="dk1" bg2="lt2" tx2="dk2" accent1="accent1" accent2="accent2" accent3="accent3" accent4="accent4" accent5="accent5" accent6="accent6" hlink="hlink" folHlink="folHlink"/>` +
	`<p:sldLayoutIdLst>` +
	`<p:sldLayoutId id="2147483649" r:id="rId1"/>` +
	`<p:sldLayoutId id="2147483650" r:id="rId2"/>` +
	`</p:sldLayoutIdLst>` +
	`</p:sldMaster>`

const slideMasterRels = xmlHeader +
	`<Relationships xmlns="` + relsNS + `">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout" Target="../slideLayouts/slideLayout1.xml"/>` +
	`<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout" Target="../slideLayouts/slideLayout2.xml"/>` +
	`<Relationship Id="rId3" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/theme" Target="../theme/theme1.xml"/>` +
	`</Relationships>`

func slideLayoutXML(layoutType, name string) string {
	return xmlHeader +
		`<p:sldLayout ` + pptxNamespaces + ` type="` + layoutType + `" preserve="1">` +
		`<p:cSld name="` + esc(name) + `"><p:spTree>` + emptySpTreeHeader + `</p:spTree></p:cSld>` +
		`<p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr>` +
		`</p:sldLayout>`
}

const slideLayoutRels = xmlHeader +
	`<Relationships xmlns="` + relsNS + `">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideMaster" Target="../slideMasters/slideMaster1.xml"/>` +
	`</Relationships>`

const notesMasterXML = xmlHeader +
	`<p:notesMaster ` + pptxNamespaces + `>` +
	`<p:cSld><p:spTree>` + emptySpTreeHeader + `</p:spTree></p:cSld>` +
	`<p:clrMap bg1="lt1" tx1="dk1" bg2="lt2" tx2="dk2" accent1="accent1" accent2="accent2" accent3="accent3" accent4="accent4" accent5="accent5" accent6="accent6" hlink="hlink" folHlink="folHlink"/>` +
	`</p:notesMaster>`

const notesMasterRels = xmlHeader +
	`<Relationships xmlns="` + relsNS + `">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/theme" Target="../theme/theme1.xml"/>` +
	`</Relationships>`

// leadSlideXML is the deck's cover: the deck title plus an attribution text
// box (not a placeholder, so it needs its own geometry).
func leadSlideXML(deckTitle string) string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<p:sld ` + pptxNamespaces + `><p:cSld><p:spTree>`)
	b.WriteString(emptySpTreeHeader)
	b.WriteString(titleShape(deckTitle, "4400"))
	b.WriteString(`<p:sp>`)
	b.WriteString(`<p:nvSpPr><p:cNvPr id="3" name="Subtitle 2"/><p:cNvSpPr txBox="1"/><p:nvPr/></p:nvSpPr>`)
	b.WriteString(`<p:spPr><a:xfrm><a:off x="1143000" y="3429000"/><a:ext cx="6858000" cy="914400"/></a:xfrm><a:prstGeom prst="rect"><a:avLst/></a:prstGeom></p:spPr>`)
	b.WriteString(`<p:txBody><a:bodyPr/><a:lstStyle/><a:p><a:pPr algn="ctr"/><a:r><a:rPr lang="en-US" sz="1800"/><a:t>Generated by ClassKit Studio</a:t></a:r></a:p></p:txBody>`)
	b.WriteString(`</p:sp>`)
	b.WriteString(`</p:spTree></p:cSld><p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr></p:sld>`)
	return b.String()
}

func contentSlideXML(title string, bullets []string, titleOnly bool) string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<p:sld ` + pptxNamespaces + `><p:cSld><p:spTree>`)
	b.WriteString(emptySpTreeHeader)
	b.WriteString(titleShape(title, "3200"))
	if !titleOnly {
		b.WriteString(`<p:sp>`)
		b.WriteString(`<p:nvSpPr><p:cNvPr id="3" name="Content 2"/><p:cNvSpPr><a:spLocks noGrp="1"/></p:cNvSpPr><p:nvPr><p:ph type="body" idx="1"/></p:nvPr></p:nvSpPr>`)
		b.WriteString(`<p:spPr><a:xfrm><a:off x="457200" y="1600200"/><a:ext cx="8229600" cy="4525963"/></a:xfrm><a:prstGeom prst="rect"><a:avLst/></a:prstGeom></p:spPr>`)
		b.WriteString(`<p:txBody><a:bodyPr/><a:lstStyle/>`)
		if len(bullets) == 0 {
			b.WriteString(`<a:p><a:endParaRPr lang="en-US"/></a:p>`)
		}
		for _, bullet := range bullets {
			b.WriteString(`<a:p><a:pPr lvl="0"/><a:r><a:rPr lang="en-US" sz="2000"/><a:t>` + esc(bullet) + `</a:t></a:r></a:p>`)
		}
		b.WriteString(`</p:txBody></p:sp>`)
	}
	b.WriteString(`</p:spTree></p:cSld><p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr></p:sld>`)
	return b.String()
}

func titleShape(text, size string) string {
	return `<p:sp>` +
		`<p:nvSpPr><p:cNvPr id="2" name="Title 1"/><p:cNvSpPr><a:spLocks noGrp="1"/></p:cNvSpPr><p:nvPr><p:ph type="title"/></p:nvPr></p:nvSpPr>` +
		`<p:spPr><a:xfrm><a:off x="457200" y="274638"/><a:ext cx="8229600" cy="1143000"/></a:xfrm><a:prstGeom prst="rect"><a:avLst/></a:prstGeom></p:spPr>` +
		`<p:txBody><a:bodyPr/><a:lstStyle/><a:p><a:r><a:rPr lang="en-US" sz="` + size + `" b="1"/><a:t>` + esc(text) + `</a:t></a:r></a:p></p:txBody>` +
		`</p:sp>`
}

func slideRels(layout, notesPart int) string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<Relationships xmlns="` + relsNS + `">`)
	fmt.Fprintf(&b, `<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout" Target="../slideLayouts/slideLayout%d.xml"/>`, layout)
	if notesPart > 0 {
		fmt.Fprintf(&b, `<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/notesSlide" Target="../notesSlides/notesSlide%d.xml"/>`, notesPart)
	}
	b.WriteString(`</Relationships>`)
	return b.String()
}

func notesSlideXML(notes string) string {
	return xmlHeader +
		`<p:notes ` + pptxNamespaces + `><p:cSld><p:spTree>` +
		emptySpTreeHeader +
		`<p:sp>` +
		`<p:nvSpPr><p:cNvPr id="2" name="Notes Placeholder 1"/><p:cNvSpPr><a:spLocks noGrp="1"/></p:cNvSpPr><p:nvPr><p:ph type="body" idx="1"/></p:nvPr></p:nvSpPr>` +
		`<p:spPr><a:xfrm><a:off x="685800" y="4572000"/><a:ext cx="5486400" cy="4114800"/></a:xfrm><a:prstGeom prst="rect"><a:avLst/></a:prstGeom></p:spPr>` +
		`<p:txBody><a:bodyPr/><a:lstStyle/><a:p><a:r><a:rPr lang="en-US"/><a:t>` + esc(notes) + `</a:t></a:r></a:p></p:txBody>` +
		`</p:sp>` +
		`</p:spTree></p:cSld><p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr></p:notes>`
}

func notesSlideRels(slide int) string {
	return xmlHeader +
		`<Relationships xmlns="` + relsNS + `">` +
		`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/notesMaster" Target="../notesMasters/notesMaster1.xml"/>` +
		fmt.Sprintf(`<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide" Target="../slides/slide%d.xml"/>`, slide) +
		`</Relationships>`
}
