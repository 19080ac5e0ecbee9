package services

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/billboardhub/bbadmin/internal/api"
)

func sentQuery(t *testing.T, c recorded) url.Values {
	t.Helper()
	v, err := url.ParseQuery(c.query)
	require.NoError(t, err)
	return v
}

func TestSellers(t *testing.T) {
	t.Run("list and detail paths", func(t *testing.T) {
		c, calls := backend(t, `{"data":[{"id":"s-1","fullname":"Dewi"}]}`)
		res, err := NewSellers(c).Fetcher()(context.Background(), api.ListQuery{Page: 2, PageSize: 5})
		require.NoError(t, err)
		require.Len(t, res.Data, 1)
		assert.Equal(t, "/seller/all", (*calls)[0].path)
		assert.Equal(t, "2", sentQuery(t, (*calls)[0]).Get("page"))

		c, calls = backend(t, `{"data":{"id":"s-1","fullname":"Dewi","companyName":"PT Reklame"}}`)
		d, err := NewSellers(c).Get(context.Background(), "s-1")
		require.NoError(t, err)
		assert.Equal(t, "/seller/detail/s-1", (*calls)[0].path)
		assert.Equal(t, "PT Reklame", d.Data.CompanyName)
	})

	t.Run("delete goes to the id path", func(t *testing.T) {
		c, calls := backend(t, `{"status":true,"message":"Seller deleted"}`)
		st, err := NewSellers(c).Delete(context.Background(), "s-1")
		require.NoError(t, err)
		assert.Equal(t, "Seller deleted", st.Message)
		require.Len(t, *calls, 1)
		assert.Equal(t, http.MethodDelete, (*calls)[0].method)
		assert.Equal(t, "/seller/id/s-1", (*calls)[0].path)
	})

	t.Run("rejected delete", func(t *testing.T) {
		c, _ := backend(t, `{"status":false,"message":"Seller still has billboards"}`)
		_, err := NewSellers(c).Delete(context.Background(), "s-1")
		var rej *api.BackendRejection
		require.ErrorAs(t, err, &rej)
		assert.Equal(t, "Seller still has billboards", rej.Message)
	})
}

func TestMerchants(t *testing.T) {
	t.Run("joins are always sent", func(t *testing.T) {
		c, calls := backend(t, `{"data":[]}`)
		m := NewMerchants(c)

		_, err := m.ListMerchants(context.Background(), api.ListQuery{Page: 1}, MerchantJoins{User: true})
		require.NoError(t, err)
		_, err = m.Fetcher(MerchantJoins{Billboards: true})(context.Background(), api.ListQuery{Page: 1})
		require.NoError(t, err)

		require.Len(t, *calls, 2)
		assert.Equal(t, "/merchant", (*calls)[0].path)
		first := sentQuery(t, (*calls)[0])
		assert.Equal(t, "true", first.Get("includeUser"))
		assert.Equal(t, "false", first.Get("includeBillboards"))
		second := sentQuery(t, (*calls)[1])
		assert.Equal(t, "false", second.Get("includeUser"))
		assert.Equal(t, "true", second.Get("includeBillboards"))
	})

	t.Run("detail path", func(t *testing.T) {
		c, calls := backend(t, `{"data":{"id":"m-1","companyName":"PT Reklame"}}`)
		_, err := NewMerchants(c).Get(context.Background(), "m-1")
		require.NoError(t, err)
		assert.Equal(t, "/merchant/detail/m-1", (*calls)[0].path)
	})
}
