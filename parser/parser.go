package parser

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/advancedlogic/GoOse/pkg/goose"
	"github.com/go-shiori/go-readability"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// nonContentSelector matches elements that never carry article content.
const nonContentSelector = "script, style, nav, footer, header, aside, iframe"

// ExtractText is the default extractor: it drops non-content elements and
// returns the remaining visible text joined by single spaces, trimmed.
func ExtractText(htmlStr string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlStr))
	if err != nil {
		return "", err
	}

	doc.Find(nonContentSelector).Remove()

	// Fields collapses all runs of whitespace, which also joins text from
	// adjacent elements with a single space.
	return strings.Join(strings.Fields(doc.Text()), " "), nil
}

// ExtractTextWithReadability runs go-readability's article extraction.
func ExtractTextWithReadability(htmlStr string) (string, error) {
	doc, err := html.Parse(strings.NewReader(htmlStr))
	if err != nil {
		return "", err
	}

	article, err := readability.FromDocument(doc, nil)
	if err != nil {
		return "", err
	}
	return article.TextContent, nil
}

func ExtractTextWithTrafilatura(htmlStr string) (string, error) {
	article, err := trafilatura.Extract(strings.NewReader(htmlStr), trafilatura.Options{})
	if err != nil {
		return "", err
	}
	return article.ContentText, nil
}

func ExtractTextWithGoose(htmlStr string) (string, error) {
	g := goose.New()
	article, err := g.ExtractFromRawHTML(htmlStr, "")
	if err != nil {
		return "", err
	}
	return article.CleanedText, nil
}

// ExtractWithStrategy dispatches on the configured extractor name.
// An empty name selects the default strip extractor.
func ExtractWithStrategy(strategy, htmlStr string) (string, error) {
	switch strategy {
	case "", "strip":
		return ExtractText(htmlStr)
	case "readability":
		return ExtractTextWithReadability(htmlStr)
	case "trafilatura":
		return ExtractTextWithTrafilatura(htmlStr)
	case "goose":
		return ExtractTextWithGoose(htmlStr)
	default:
		return "", fmt.Errorf("unknown extractor strategy %q", strategy)
	}
}
