package common

import (
	"time"

	"reseq/internal/sequence"
	"reseq/pkg/types"
)

type Mode int

const (
	Normal Mode = iota
	Visual
	Prefix
	Confirm
)

func (m Mode) String() string {
	switch m {
	case Visual:
		return "VISUAL"
	case Prefix:
		return "PREFIX"
	case Confirm:
		return "CONFIRM"
	}
	return "NORMAL"
}

// ModelReader defines the interface that views use to read model state
type ModelReader interface {
	Folder() string
	Rows() []Row
	IsSelected(i int) bool
	Cursor() int
	Mode() Mode
	Order() types.OrderMode
	Params() sequence.Params
	DryRun() bool
}

// Row is one line of the preview
type Row struct {
	OldName string
	NewName string
	Size    int64
	ModTime time.Time
}

// Changes reports whether the row is renamed
func (r Row) Changes() bool {
	return r.OldName != r.NewName
}
