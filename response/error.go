// response/error.go
// Error body parsing for the Amadeus REST API.
package response

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/goccy/go-json"
	"golang.org/x/net/html"
)

// APIErrorDetail is one entry of the "errors" array returned by Amadeus on failure.
type APIErrorDetail struct {
	Status int          `json:"status,omitempty"`
	Code   int          `json:"code,omitempty"`
	Title  string       `json:"title,omitempty"`
	Detail string       `json:"detail,omitempty"`
	Source *ErrorSource `json:"source,omitempty"`
}

// ErrorSource points at the part of the request an error refers to.
type ErrorSource struct {
	Pointer   string `json:"pointer,omitempty"`
	Parameter string `json:"parameter,omitempty"`
	Example   string `json:"example,omitempty"`
}

// String renders a detail as "[status] title: detail (parameter)".
func (d APIErrorDetail) String() string {
	var b strings.Builder
	if d.Status != 0 {
		fmt.Fprintf(&b, "[%d] ", d.Status)
	}
	b.WriteString(d.Title)
	if d.Detail != "" {
		if d.Title != "" {
			b.WriteString(": ")
		}
		b.WriteString(d.Detail)
	}
	if d.Source != nil {
		switch {
		case d.Source.Parameter != "":
			fmt.Fprintf(&b, " (parameter %s)", d.Source.Parameter)
		case d.Source.Pointer != "":
			fmt.Fprintf(&b, " (%s)", d.Source.Pointer)
		}
	}
	return strings.TrimSpace(b.String())
}

// jsonErrorBody covers both the resource error shape and the OAuth2 token error shape.
type jsonErrorBody struct {
	Errors           []APIErrorDetail `json:"errors"`
	Error            string           `json:"error"`
	ErrorDescription string           `json:"error_description"`
	Title            string           `json:"title"`
	Code             int              `json:"code"`
}

// ParseErrorBody extracts the error details and a human readable message from an error response body.
// JSON bodies yield structured details; HTML, XML and text bodies only a message.
// The message is empty when nothing useful was found.
func ParseErrorBody(contentType string, body []byte) ([]APIErrorDetail, string) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, ""
	}

	mimeType, _ := parseHeader(contentType)
	switch {
	case IsJSONContentType(contentType):
		return parseJSONError(body)
	case mimeType == "application/xml" || mimeType == "text/xml":
		return nil, parseXMLError(body)
	case mimeType == "text/html":
		return nil, parseHTMLError(body)
	default:
		// Amadeus occasionally omits the content type on JSON errors.
		if details, message := parseJSONError(body); message != "" {
			return details, message
		}
		return nil, strings.TrimSpace(string(body))
	}
}

func parseJSONError(body []byte) ([]APIErrorDetail, string) {
	var parsed jsonErrorBody
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, ""
	}

	if len(parsed.Errors) > 0 {
		messages := make([]string, 0, len(parsed.Errors))
		for _, detail := range parsed.Errors {
			messages = append(messages, detail.String())
		}
		return parsed.Errors, strings.Join(messages, "; ")
	}

	if parsed.Error != "" {
		detail := APIErrorDetail{Code: parsed.Code, Title: parsed.Error, Detail: parsed.ErrorDescription}
		return []APIErrorDetail{detail}, detail.String()
	}

	return nil, ""
}

// parseXMLError joins every non-empty text node of the document.
func parseXMLError(body []byte) string {
	doc, err := xmlquery.Parse(bytes.NewReader(body))
	if err != nil {
		return strings.TrimSpace(string(body))
	}

	var messages []string
	var traverse func(*xmlquery.Node)
	traverse = func(n *xmlquery.Node) {
		if n.Type == xmlquery.TextNode && strings.TrimSpace(n.Data) != "" {
			messages = append(messages, strings.TrimSpace(n.Data))
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			traverse(c)
		}
	}
	traverse(doc)

	return strings.Join(messages, "; ")
}

// parseHTMLError concatenates the text of every <p> element, gateway error pages being the usual source.
// Falls back to the <title> when there are no paragraphs.
func parseHTMLError(body []byte) string {
	doc, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return ""
	}

	var paragraphs []string
	var title string
	var parse func(*html.Node)
	parse = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "p":
				if text := nodeText(n); text != "" {
					paragraphs = append(paragraphs, text)
				}
				return
			case "title":
				title = nodeText(n)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			parse(c)
		}
	}
	parse(doc)

	if len(paragraphs) > 0 {
		return strings.Join(paragraphs, "; ")
	}
	return title
}

func nodeText(n *html.Node) string {
	var content strings.Builder
	var walk func(*html.Node)
	walk = func(c *html.Node) {
		if c.Type == html.TextNode {
			if text := strings.TrimSpace(c.Data); text != "" {
				if content.Len() > 0 {
					content.WriteByte(' ')
				}
				content.WriteString(text)
			}
		}
		for child := c.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return content.String()
}
