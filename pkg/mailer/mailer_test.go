package mailer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecipient_WithName(t *testing.T) {
	t.Parallel()

	require.Equal(t, "张三 <zhang@example.com>", Recipient("张三", "zhang@example.com"))
}

func TestRecipient_WithoutName(t *testing.T) {
	t.Parallel()

	require.Equal(t, "zhang@example.com", Recipient("", "zhang@example.com"))
}
