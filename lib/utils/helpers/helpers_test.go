package helpers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToSnakeCase(t *testing.T) {
	require.Equal(t, "title", ToSnakeCase("Title"))
	require.Equal(t, "sort_order", ToSnakeCase("SortOrder"))
	require.Equal(t, "employment_type", ToSnakeCase("EmploymentType"))
	require.Equal(t, "date_posted", ToSnakeCase("DatePosted"))
}
