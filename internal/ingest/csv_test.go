package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCSVBasic(t *testing.T) {
	input := "room,subject,students,capacity,slot,campus\n" +
		"R1,Math,10,30,2026-08-03-AM,North\n" +
		"R2,Physics,5,10,2026-08-03-AM,North\n"

	rows, err := parseCSV(strings.NewReader(input))

	assert.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.Equal(t, "R1", rows[0].RoomID)
	assert.Equal(t, "Math", rows[0].SubjectID)
	assert.Equal(t, 10, rows[0].Students)
	assert.Equal(t, 30, rows[0].Capacity)
	assert.Equal(t, "North", rows[0].Campus)
}

func TestParseCSVOptionalCampus(t *testing.T) {
	input := "room,subject,students,capacity,slot\n" +
		"R1,Math,10,30,2026-08-03-AM\n"

	rows, err := parseCSV(strings.NewReader(input))

	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, "", rows[0].Campus)
}

func TestParseCSVMissingRequiredColumn(t *testing.T) {
	input := "room,subject,students,slot\nR1,Math,10,2026-08-03-AM\n"

	_, err := parseCSV(strings.NewReader(input))

	assert.Error(t, err)
}

func TestParseCSVMalformedNumber(t *testing.T) {
	input := "room,subject,students,capacity,slot\nR1,Math,abc,30,2026-08-03-AM\n"

	_, err := parseCSV(strings.NewReader(input))

	assert.Error(t, err)
}

func TestParseCSVHeaderIsCaseInsensitive(t *testing.T) {
	input := "ROOM,Subject,Students,CAPACITY,Slot\nR1,Math,10,30,AM\n"

	rows, err := parseCSV(strings.NewReader(input))

	assert.NoError(t, err)
	assert.Equal(t, "R1", rows[0].RoomID)
}
