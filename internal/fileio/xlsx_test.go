package fileio

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	excelize "github.com/xuri/excelize/v2"
)

func TestReadAnyMapsXLSXCleansCellPadding(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetCellValue(sheet, "A1", "produto"))
	require.NoError(t, f.SetCellValue(sheet, "B1", "qtd"))
	require.NoError(t, f.SetCellValue(sheet, "A2", " DSL "))
	require.NoError(t, f.SetCellValue(sheet, "B2", "5.000,00"))

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	require.NoError(t, f.Close())

	rows, err := ReadAnyMaps(bytes.NewReader(buf.Bytes()), "scanc.xlsx", 1)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	// padded cells parse the same as the XLS path
	assert.Equal(t, "DSL", rows[0]["produto"])
	assert.Equal(t, "5.000,00", rows[0]["qtd"])
}
