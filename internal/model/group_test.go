package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDuplicateSet_SurvivorAndDoomed(t *testing.T) {
	set := DuplicateSet{Hash: "AA", Files: []FileRecord{{Path: "/a"}, {Path: "/b"}, {Path: "/c"}}}

	assert.Equal(t, 3, set.Len())
	assert.Equal(t, Path("/c"), set.Survivor().Path)
	assert.Equal(t, []FileRecord{{Path: "/a"}, {Path: "/b"}}, set.Doomed())
	assert.Nil(t, DuplicateSet{}.Doomed())
}

func TestScanIndex_Files(t *testing.T) {
	index := ScanIndex{Groups: []DigestGroup{
		{Hash: "0A", Files: []FileRecord{{Path: "/a"}}},
		{Hash: "B1", Files: []FileRecord{{Path: "/b"}, {Path: "/c"}}},
	}}

	assert.Equal(t, 2, index.Groups[1].Len())
	assert.Equal(t, 3, index.Files())
	assert.Zero(t, ScanIndex{}.Files())
}

func TestOutcome(t *testing.T) {
	o := Outcome{Sets: []DuplicateSet{{}, {}}}
	assert.Equal(t, 2, o.SetCount())
	assert.False(t, o.Exported())

	o.ExportPath = "/out.txt"
	assert.True(t, o.Exported())

	o.ExportErr = NewError(ErrExportWrite, "/out.txt", "write report", nil)
	assert.False(t, o.Exported())
}

func TestMode_String(t *testing.T) {
	assert.Equal(t, "report", ModeReport.String())
	assert.Equal(t, "move", ModeMove.String())
	assert.Equal(t, "delete", ModeDelete.String())
}
