package browse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescribe(t *testing.T) {
	t.Run("filters render in key order", func(t *testing.T) {
		filters := map[string]string{"status": "Available", "city": "Bandung", "categoryId": "c1"}
		want := `search "braga", categoryId=c1, city=Bandung, status=Available`
		for i := 0; i < 20; i++ {
			assert.Equal(t, want, describe("braga", filters))
		}
	})

	t.Run("nothing set", func(t *testing.T) {
		assert.Equal(t, "", describe("", nil))
	})
}

func TestIntArg(t *testing.T) {
	n, err := intArg([]string{"3"})
	assert.NoError(t, err)
	assert.Equal(t, 3, n)

	_, err = intArg(nil)
	assert.EqualError(t, err, "want one number")
}
