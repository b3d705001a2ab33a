package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateName(t *testing.T) {
	req := require.New(t)

	req.NoError(ValidateName("alice"))
	req.NoError(ValidateName(strings.Repeat("a", MaxNameLen)))

	req.ErrorIs(ValidateName(""), ErrNameEmpty)
	req.ErrorIs(ValidateName(strings.Repeat("a", MaxNameLen+1)), ErrNameTooLong)
}
