package notify

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaskPhone(t *testing.T) {
	cases := map[string]string{
		"9876543210":     "******3210",
		" +919876543210": "*********3210",
		"123":            "***",
		"":               "",
	}
	for in, want := range cases {
		assert.Equal(t, want, MaskPhone(in), in)
	}
}

func TestSend_RevealsCodeOnlyWhenAsked(t *testing.T) {
	for _, reveal := range []bool{true, false} {
		var buf bytes.Buffer
		ctx := zerolog.New(&buf).WithContext(context.Background())

		err := NewLogOTPSender(reveal).Send(ctx, "9876543210", "482913")
		require.NoError(t, err)

		out := buf.String()
		assert.Contains(t, out, "******3210")
		assert.NotContains(t, out, "9876543210")
		if reveal {
			assert.Contains(t, out, "482913")
		} else {
			assert.NotContains(t, out, "482913")
		}
	}
}
