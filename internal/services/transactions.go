package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/billboardhub/bbadmin/internal/api"
	"github.com/billboardhub/bbadmin/internal/models"
	"github.com/billboardhub/bbadmin/internal/utils"
)

// TransactionSort is the sort contract of the transaction grids
var TransactionSort = createdAtSort("status", "totalPrice", "startDate")

// Transaction list scopes
const (
	ScopeSales = "sales"
)

var transactionScopes = map[string]string{
	ScopeAll:   "/transaction/all",
	ScopeMine:  "/transaction/myTransactions",
	ScopeSales: "/transaction/mySales",
}

// Transactions manages billboard orders
type Transactions struct {
	*api.Resource[models.Transaction, models.Transaction]
}

// NewTransactions creates the transactions resource
func NewTransactions(c *api.Client) *Transactions {
	return &Transactions{api.NewResource[models.Transaction, models.Transaction](c, api.ResourceSpec{
		Name:       "transactions",
		ListPath:   transactionScopes[ScopeAll],
		DetailPath: "/transaction/detail/%s",
		ItemPath:   "/transaction/%s",
		Sort:       TransactionSort,
	})}
}

// ListScope fetches a page of one scope, optionally restricted to a status
func (t *Transactions) ListScope(ctx context.Context, scope string, q api.ListQuery, status models.TransactionStatus) (api.ListResult[models.Transaction], error) {
	path, ok := transactionScopes[scope]
	if !ok {
		return api.ListResult[models.Transaction]{}, fmt.Errorf("unknown transaction scope %q", scope)
	}
	return t.ListAt(ctx, path, q, map[string]string{"status": string(status)})
}

// Fetcher adapts ListScope to a page controller. A status staged on the
// controller filters is forwarded as is.
func (t *Transactions) Fetcher(scope string) Fetcher[models.Transaction] {
	return func(ctx context.Context, q api.ListQuery) (api.ListResult[models.Transaction], error) {
		return t.ListScope(ctx, scope, q, "")
	}
}

// ParseStatus validates a status typed by the operator
func ParseStatus(s string) (models.TransactionStatus, error) {
	st := models.TransactionStatus(strings.ToUpper(strings.TrimSpace(s)))
	if !st.Valid() {
		names := make([]string, len(models.TransactionStatuses))
		for i, v := range models.TransactionStatuses {
			names[i] = string(v)
		}
		return "", utils.NewValidationError("Status", fmt.Sprintf("Status must be one of %s", strings.Join(names, ", ")))
	}
	return st, nil
}

// UpdateStatus moves a transaction to status
func (t *Transactions) UpdateStatus(ctx context.Context, id string, status models.TransactionStatus) (models.Transaction, error) {
	st, err := ParseStatus(string(status))
	if err != nil {
		return models.Transaction{}, err
	}
	return t.Update(ctx, id, map[string]string{"status": string(st)})
}
