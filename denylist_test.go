package dealerfinder_test

import (
	"testing"

	dealerfinder "github.com/ammanabbasi/used-car-dealer-finder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDenylist_Matches(t *testing.T) {
	t.Parallel()

	d := dealerfinder.DefaultDenylist()

	assert.True(t, d.Matches("CarMax"))
	assert.True(t, d.Matches("CARMAX Auto Superstore"))
	assert.True(t, d.Matches("Springfield Toyota Certified Pre-Owned"))
	assert.False(t, d.Matches("Joe's Auto Sales"))
	assert.False(t, d.Matches("Valley Independent Motors"))
}

func TestDenylist_Filter(t *testing.T) {
	t.Parallel()

	d := dealerfinder.DefaultDenylist()
	in := []*dealerfinder.Listing{
		{Name: "Joe's Auto Sales", Address: "a"},
		{Name: "CarMax", Address: "b"},
		{Name: "Valley Independent Motors", Address: "c"},
	}

	out := d.Filter(in)

	require.Len(t, out, 2)
	assert.Equal(t, "Joe's Auto Sales", out[0].Name)
	assert.Equal(t, "Valley Independent Motors", out[1].Name)
}

func TestDenylist_Filter_PreservesOrderAndEmpty(t *testing.T) {
	t.Parallel()

	d := dealerfinder.Denylist{"chain"}

	out := d.Filter(nil)
	assert.Empty(t, out)

	out = d.Filter([]*dealerfinder.Listing{{Name: "Big Chain Motors"}})
	assert.Empty(t, out)
}
