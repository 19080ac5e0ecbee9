package services

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/billboardhub/bbadmin/internal/api"
	"github.com/billboardhub/bbadmin/internal/models"
	"github.com/billboardhub/bbadmin/internal/utils"
)

type recorded struct {
	method string
	path   string
	query  string
	body   string
}

func backend(t *testing.T, reply string) (*api.Client, *[]recorded) {
	t.Helper()
	var calls []recorded
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		calls = append(calls, recorded{method: r.Method, path: r.URL.Path, query: r.URL.RawQuery, body: string(b)})
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, reply)
	}))
	t.Cleanup(srv.Close)
	return api.NewClient(srv.URL), &calls
}

func TestBillboards(t *testing.T) {
	t.Run("scopes map to their list paths", func(t *testing.T) {
		c, calls := backend(t, `{"data":[]}`)
		b := NewBillboards(c)

		for _, scope := range []string{ScopeAll, ScopeRecycleBin, ScopeMine} {
			_, err := b.Fetcher(scope)(context.Background(), api.ListQuery{Page: 1, PageSize: 10})
			require.NoError(t, err)
		}
		require.Len(t, *calls, 3)
		assert.Equal(t, "/billboard/all", (*calls)[0].path)
		assert.Equal(t, "/billboard/recycle-bin", (*calls)[1].path)
		assert.Equal(t, "/billboard/myBillboards", (*calls)[2].path)
		assert.Equal(t, "page=1&pageSize=10&sortBy=createdAt&sortDir=desc", (*calls)[0].query)
	})

	t.Run("unknown scope", func(t *testing.T) {
		_, err := NewBillboards(api.NewClient("http://backend.invalid")).ListScope(context.Background(), "archived", api.ListQuery{})
		assert.EqualError(t, err, `unknown billboard scope "archived"`)
	})

	t.Run("detail folds the average rating in", func(t *testing.T) {
		c, _ := backend(t, `{"data":{"id":"bb-1","location":"Braga","transaction":[{"id":"tx-1","status":"PAID"}]},"averageRating":4.25}`)
		d, err := NewBillboards(c).GetDetail(context.Background(), "bb-1")
		require.NoError(t, err)
		require.NotNil(t, d.AverageRating)
		assert.Equal(t, 4.25, *d.AverageRating)
		require.Len(t, d.Transaction, 1)
		assert.Equal(t, models.TransactionPaid, d.Transaction[0].Status)
	})

	t.Run("purge confirms explicitly", func(t *testing.T) {
		c, calls := backend(t, `{"status":true,"message":"Billboard purged"}`)
		st, err := NewBillboards(c).Purge(context.Background(), "bb-1")
		require.NoError(t, err)
		assert.Equal(t, "Billboard purged", st.Message)
		assert.Equal(t, recorded{method: http.MethodDelete, path: "/billboard/bb-1/purge", query: "confirm=true"}, (*calls)[0])
	})

	t.Run("restore failure", func(t *testing.T) {
		c, _ := backend(t, `{"status":false}`)
		_, err := NewBillboards(c).Restore(context.Background(), "bb-1")
		assert.EqualError(t, err, "Restore failed")
	})
}

func TestTransactions(t *testing.T) {
	t.Run("status filter travels as a parameter", func(t *testing.T) {
		c, calls := backend(t, `{"data":[],"meta":{"total":0}}`)
		tx := NewTransactions(c)

		_, err := tx.ListScope(context.Background(), ScopeSales, api.ListQuery{Page: 1}, models.TransactionPending)
		require.NoError(t, err)
		assert.Equal(t, "/transaction/mySales", (*calls)[0].path)
		assert.Contains(t, (*calls)[0].query, "status=PENDING")

		_, err = tx.Fetcher(ScopeMine)(context.Background(), api.ListQuery{Page: 1, Filters: map[string]string{"status": "PAID"}})
		require.NoError(t, err)
		assert.Equal(t, "/transaction/myTransactions", (*calls)[1].path)
		assert.Contains(t, (*calls)[1].query, "status=PAID")
	})

	t.Run("status update is normalized", func(t *testing.T) {
		c, calls := backend(t, `{"data":{"id":"tx-1","status":"COMPLETED"}}`)
		out, err := NewTransactions(c).UpdateStatus(context.Background(), "tx-1", "completed")
		require.NoError(t, err)
		assert.Equal(t, models.TransactionCompleted, out.Status)

		var body map[string]string
		require.NoError(t, json.Unmarshal([]byte((*calls)[0].body), &body))
		assert.Equal(t, map[string]string{"status": "COMPLETED"}, body)
		assert.Equal(t, http.MethodPatch, (*calls)[0].method)
	})

	t.Run("unknown status never reaches the backend", func(t *testing.T) {
		c, calls := backend(t, `{}`)
		_, err := NewTransactions(c).UpdateStatus(context.Background(), "tx-1", "shipped")
		assert.Error(t, err)
		assert.Empty(t, *calls)
	})
}

func TestCategoriesSave(t *testing.T) {
	t.Run("blank name is rejected locally", func(t *testing.T) {
		c, calls := backend(t, `{}`)
		_, err := NewCategories(c).Save(context.Background(), "", models.CategoryInput{Name: "   "})
		var ve *utils.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "Name", ve.Field)
		assert.EqualError(t, err, "Name is required")
		assert.Empty(t, *calls)
	})

	t.Run("empty id creates, otherwise updates", func(t *testing.T) {
		c, calls := backend(t, `{"data":{"id":"c-1","name":"LED"}}`)
		cats := NewCategories(c)

		_, err := cats.Save(context.Background(), "", models.CategoryInput{Name: " LED "})
		require.NoError(t, err)
		_, err = cats.Save(context.Background(), "c-1", models.CategoryInput{Name: "LED"})
		require.NoError(t, err)

		assert.Equal(t, http.MethodPost, (*calls)[0].method)
		assert.JSONEq(t, `{"name":"LED"}`, (*calls)[0].body)
		assert.Equal(t, http.MethodPatch, (*calls)[1].method)
		assert.Equal(t, "/category/c-1", (*calls)[1].path)
	})
}
