package printer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDocumentInitializes(t *testing.T) {
	d := NewDocument(48)
	assert.True(t, bytes.HasPrefix(d.Bytes(), []byte{escByte, '@'}))
}

func TestKeyValueAlignment(t *testing.T) {
	d := NewDocument(20)
	d.Reset()
	d.KeyValue("TOTAL", "150.00")

	// skip the init sequence
	line := string(d.Bytes()[2:])
	assert.Equal(t, 21, len(line)) // 20 chars + LF
	assert.Equal(t, "TOTAL         150.00\n", line)
}

func TestItemLineTruncatesLongNames(t *testing.T) {
	d := NewDocument(20)
	d.Reset()
	d.ItemLine(2, "A very long item name that overflows", "40.00")

	line := string(d.Bytes()[2:])
	assert.Equal(t, 21, len(line))
	assert.Contains(t, line, "40.00\n")
}

func TestMoney(t *testing.T) {
	assert.Equal(t, "150.00", Money(15000))
	assert.Equal(t, "0.05", Money(5))
	assert.Equal(t, "0.00", Money(0))
}

func TestNewPrinterFromConfig(t *testing.T) {
	p, err := NewPrinterFromConfig("none", "", "")
	assert.NoError(t, err)
	assert.Equal(t, "none", p.Status().Type)

	_, err = NewPrinterFromConfig("usb", "", "")
	assert.Error(t, err)

	_, err = NewPrinterFromConfig("network", "", "")
	assert.Error(t, err)

	_, err = NewPrinterFromConfig("laser", "", "")
	assert.Error(t, err)

	p, err = NewPrinterFromConfig("network", "", "192.168.1.50:9100")
	assert.NoError(t, err)
	assert.Equal(t, "network", p.Status().Type)
}

func TestNullPrinterPrints(t *testing.T) {
	p := NewNullPrinter()
	assert.NoError(t, p.Print([]byte("hello")))
	assert.NoError(t, p.Close())
	assert.False(t, p.Status().Connected)
}
