package parse

import (
	"testing"

	"github.com/napalu/dispatch/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnmarshalTag(t *testing.T) {
	tests := []struct {
		name    string
		tag     string
		want    *TagConfig
		wantErr error
	}{
		{
			name: "empty",
			tag:  "",
			want: &TagConfig{},
		},
		{
			name: "all keys",
			tag:  "kind:option;name:count;short:c;desc:How often;default:1",
			want: &TagConfig{
				Kind: types.Option, HasKind: true, Name: "count", Short: "c",
				Help: "How often", Default: "1", HasDefault: true,
			},
		},
		{
			name: "value containing colons",
			tag:  "default:10:30;desc:Start time",
			want: &TagConfig{Default: "10:30", HasDefault: true, Help: "Start time"},
		},
		{
			name: "empty default is still a default",
			tag:  "default:",
			want: &TagConfig{HasDefault: true},
		},
		{
			name: "kind alias and trailing separator",
			tag:  "kind:arg;",
			want: &TagConfig{Kind: types.Argument, HasKind: true},
		},
		{
			name:    "missing separator",
			tag:     "kind",
			wantErr: ErrInvalidTagFormat,
		},
		{
			name:    "unknown kind",
			tag:     "kind:command",
			wantErr: ErrInvalidKind,
		},
		{
			name:    "unknown key",
			tag:     "required:true",
			wantErr: ErrUnknownTagKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := UnmarshalTag(tt.tag)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
