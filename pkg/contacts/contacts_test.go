package contacts_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"outreach/pkg/contacts"
	"outreach/pkg/domain"
)

func TestIsCSV(t *testing.T) {
	require.True(t, contacts.IsCSV("https://cdn.example.com/raw/upload/list.CSV"))
	require.True(t, contacts.IsCSV("contacts.csv?v=2"))
	require.False(t, contacts.IsCSV("https://cdn.example.com/list.xlsx"))
}

func TestParse_CSVHeaderMatching(t *testing.T) {
	in := "\ufeffCustomer Name,Mobile Number,City\n" +
		"Ana,+1 555 0100,Lisbon\n" +
		",,\n" +
		"Bob,555-0101,\n"

	rows, err := contacts.Parse("list.csv", strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, contacts.Cell{Header: "Customer Name", Value: "Ana"}, rows[0][0])

	got := contacts.Extract(rows)
	require.Equal(t, []domain.Contact{
		{Name: "Ana", Phone: "+1 555 0100"},
		{Name: "Bob", Phone: "555-0101"},
	}, got)
}

func TestExtract_RegexFallbackAndDefaults(t *testing.T) {
	rows := []contacts.Row{
		{{Header: "Who", Value: "Cara"}, {Header: "Notes", Value: "call +1 (555) 123-4567 after 5"}},
		{{Header: "Notes", Value: "0044 20 7946 0958"}},
		{{Header: "Name", Value: "Dan"}, {Header: "Notes", Value: "no number"}},
	}

	got := contacts.Extract(rows)
	require.Equal(t, []domain.Contact{
		{Name: contacts.UnknownName, Phone: "+1 (555) 123-4567"},
		{Name: contacts.UnknownName, Phone: "0044 20 7946 0958"},
	}, got)
}

func TestExtract_NameWinsOverContactHeader(t *testing.T) {
	rows := []contacts.Row{
		{{Header: "Contact Name", Value: "Eve"}, {Header: "Tel", Value: "5550199"}},
	}

	require.Equal(t, []domain.Contact{{Name: "Eve", Phone: "5550199"}}, contacts.Extract(rows))
}

func TestParse_Excel(t *testing.T) {
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]any{"Name", "Phone"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]any{"Fay", "5550142"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A3", &[]any{"Gus", 5550143}))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	require.NoError(t, f.Close())

	rows, err := contacts.Parse("https://cdn.example.com/list.xlsx", bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)

	require.Equal(t, []domain.Contact{
		{Name: "Fay", Phone: "5550142"},
		{Name: "Gus", Phone: "5550143"},
	}, contacts.Extract(rows))
}

func TestParse_EmptyAndBroken(t *testing.T) {
	_, err := contacts.Parse("empty.csv", strings.NewReader(""))
	require.ErrorIs(t, err, contacts.ErrEmptySheet)

	_, err = contacts.Parse("list.xlsx", strings.NewReader("not a zip"))
	require.Error(t, err)
}
