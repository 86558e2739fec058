package webhook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestExtractChanges(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		payload string
		want    []Change
		wantErr bool
	}{
		{
			name:    "message preferred over text",
			payload: `{"entry":[{"changes":[{"value":{"from":{"id":"1"},"message":"m","text":"t"}}]}]}`,
			want:    []Change{{SenderID: "1", Message: "m"}},
		},
		{
			name:    "empty message falls back to text",
			payload: `{"entry":[{"changes":[{"value":{"from":{"id":"1"},"message":"","text":"t"}}]}]}`,
			want:    []Change{{SenderID: "1", Message: "t"}},
		},
		{
			name:    "numeric sender id",
			payload: `{"entry":[{"changes":[{"value":{"from":{"id":42},"message":"m"}}]}]}`,
			want:    []Change{{SenderID: "42", Message: "m"}},
		},
		{
			name:    "mistyped nested fields are absent",
			payload: `{"entry":[{"changes":[{"value":"x"},{"value":{"from":"x","message":7}},"x"]},"x"]}`,
			want:    []Change{{}, {}, {}},
		},
		{
			name:    "several entries",
			payload: `{"entry":[{"changes":[{"value":{"from":{"id":"1"},"message":"a"}}]},{"changes":[{"value":{"from":{"id":"2"},"text":"b"}}]}]}`,
			want:    []Change{{SenderID: "1", Message: "a"}, {SenderID: "2", Message: "b"}},
		},
		{
			name:    "no entries",
			payload: `{"object":"group"}`,
		},
		{
			name:    "top level array",
			payload: `[1]`,
			wantErr: true,
		},
		{
			name:    "entry is not an array",
			payload: `{"entry":{"changes":[]}}`,
			wantErr: true,
		},
		{
			name:    "entry is null",
			payload: `{"entry":null}`,
			wantErr: true,
		},
		{
			name:    "changes is not an array",
			payload: `{"entry":[{"changes":"x"}]}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := extractChanges(gjson.Parse(tt.payload))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestChange_Mentions(t *testing.T) {
	t.Parallel()

	assert.True(t, Change{SenderID: "1", Message: "hi 1234"}.Mentions("1234"))
	// naive substring match
	assert.True(t, Change{SenderID: "1", Message: "order 9912345"}.Mentions("1234"))
	assert.False(t, Change{SenderID: "1", Message: "hi"}.Mentions("1234"))
	assert.False(t, Change{SenderID: "", Message: "hi 1234"}.Mentions("1234"))
	assert.False(t, Change{SenderID: "1", Message: ""}.Mentions("1234"))
	assert.False(t, Change{SenderID: "1", Message: "anything"}.Mentions(""))
}

func TestParseCommandRequest(t *testing.T) {
	t.Parallel()

	req := parseCommandRequest(gjson.Parse(`{"secret":"s","admin_id":12,"command":" Ping ","args":["x"]}`))
	assert.Equal(t, CommandRequest{Secret: "s", AdminID: "12", Command: " Ping "}, req)
}
