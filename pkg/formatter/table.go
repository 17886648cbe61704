package formatter

import (
	"bytes"
	"errors"

	"github.com/olekukonko/tablewriter"
)

// TableContents is what a table getter returns. Headers may be empty for
// key/value listings.
type TableContents struct {
	Headers []string
	Data    [][]string
}

type tableFormatter struct{}

// NewTableFormatter renders TableContents as tab separated columns.
func NewTableFormatter() tableFormatter {
	return tableFormatter{}
}

// Format renders the contents into a fresh table on every call.
func (tableFormatter) Format(contentFunc func() interface{}) (string, error) {
	contents, ok := contentFunc().(TableContents)
	if !ok {
		return "", errors.New("func returned wrong type for table formatter. wanted formatter.TableContents")
	}

	var buf bytes.Buffer
	table := plainTable(&buf)
	if len(contents.Headers) > 0 {
		table.SetHeader(contents.Headers)
	}
	table.AppendBulk(contents.Data)
	table.Render()
	return buf.String(), nil
}

// plainTable draws no borders or separators, only tab padded cells.
func plainTable(buf *bytes.Buffer) *tablewriter.Table {
	table := tablewriter.NewWriter(buf)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	table.SetHeaderLine(false)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetTablePadding("\t")
	table.SetNoWhiteSpace(true)
	return table
}
