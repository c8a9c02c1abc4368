package app

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hexaaagon/tugascollecter/internal/files"
	"github.com/hexaaagon/tugascollecter/internal/store"
)

func TestMessageFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "nil error",
			err:  nil,
			want: "",
		},
		{
			name: "homework load",
			err:  store.NewError(store.CodeHomeworkLoad, "bad json", errors.New("unexpected end of input")),
			want: MsgHomeworkLoadFailed,
		},
		{
			name: "wrapped homework save",
			err:  fmt.Errorf("saving: %w", store.NewError(store.CodeHomeworkSave, "kv write failed", errors.New("disk full"))),
			want: MsgHomeworkSaveFailed,
		},
		{
			name: "theme save maps to settings",
			err:  store.NewError(store.CodeThemeSave, "kv write failed", nil),
			want: MsgSettingsFailed,
		},
		{
			name: "attachment missing",
			err:  files.NewError(files.CodeNotFound, "no file with prefix", nil),
			want: MsgAttachmentMissing,
		},
		{
			name: "import invalid",
			err:  files.NewError(files.CodeImport, "missing version field", nil),
			want: MsgImportInvalid,
		},
		{
			name: "unknown error falls back",
			err:  errors.New("some transient failure"),
			want: MsgOperationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MessageFor(tt.err))
		})
	}
}
