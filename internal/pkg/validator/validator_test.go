package validator

import (
	"testing"

	"github.com/MirrorChyan/macdl/internal/pkg/errs"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func TestSlug(t *testing.T) {

	type Slug struct {
		S string `validate:"slug"`
	}

	testCases := []struct {
		Name     string
		Value    string
		Expected bool
	}{
		{
			Name:     "valid",
			Value:    "version-6ced3f7b78bf439c",
			Expected: true,
		},
		{
			Name:     "underscore",
			Value:    "valid_slug_123",
			Expected: true,
		},
		{
			Name:     "path traversal",
			Value:    "../etc",
			Expected: false,
		},
		{
			Name:     "invalid",
			Value:    "invalid/!?",
			Expected: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {

			err := Validate.Struct(&Slug{
				S: tc.Value,
			})

			if tc.Expected {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
			}
		})
	}
}

func TestStruct(t *testing.T) {

	type Query struct {
		Version string `validate:"omitempty,slug"`
	}

	require.NoError(t, Struct(&Query{}))

	err := Struct(&Query{Version: "a b"})
	require.ErrorIs(t, err, errs.ErrInvalidParams)

	var e *errs.Error
	require.ErrorAs(t, err, &e)

	details, ok := e.Details().(fiber.Map)
	require.True(t, ok)

	violations, ok := details["violations"].([]*ValidationError)
	require.True(t, ok)
	require.Len(t, violations, 1)
	require.Equal(t, "Version", violations[0].Field)
	require.Equal(t, "slug", violations[0].Violation)
	require.Equal(t, "Version must be alphanumeric, underscore, or hyphen", violations[0].Message)
}
