// Package extractor turns source files into the plain text the chunking
// engine consumes.
//
// Extraction is dispatched on file extension:
//
//	doc, err := extractor.Extract("report.pdf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// doc.Text, doc.Pages, doc.Author, doc.Title
//
// PDF files are read page by page with pages joined by blank lines, so the
// paragraph-aware strategies see page boundaries as paragraph breaks.
// Markdown is flattened through its AST with block boundaries preserved as
// blank lines. Anything else is read verbatim as UTF-8 text.
//
// The engine never sees extraction failures; a malformed source document is
// this package's error to report.
package extractor
