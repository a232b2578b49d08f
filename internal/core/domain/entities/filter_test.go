package entities_test

import (
	"testing"

	"task-list/internal/core/domain/entities"
	"task-list/internal/core/domain/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFilter(t *testing.T) {
	cases := []struct {
		name string
		want entities.Filter
	}{
		{name: "", want: entities.FilterAll},
		{name: "all", want: entities.FilterAll},
		{name: "Active", want: entities.FilterActive},
		{name: " COMPLETED ", want: entities.FilterCompleted},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := entities.ParseFilter(tc.name)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseFilterRejectsUnknownNames(t *testing.T) {
	for _, name := range []string{"done", "activeOnly", "*"} {
		_, err := entities.ParseFilter(name)
		assert.ErrorIs(t, err, exceptions.ErrInvalidFilter, name)
	}
}

func TestFilterMatches(t *testing.T) {
	open := entities.NewTask("1", "open", false)
	done := entities.NewTask("2", "done", true)

	assert.True(t, entities.FilterAll.Matches(open))
	assert.True(t, entities.FilterAll.Matches(done))
	assert.True(t, entities.FilterActive.Matches(open))
	assert.False(t, entities.FilterActive.Matches(done))
	assert.False(t, entities.FilterCompleted.Matches(open))
	assert.True(t, entities.FilterCompleted.Matches(done))
}
