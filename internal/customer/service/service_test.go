package service

import (
	"context"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/dukaankhata/dukaankhata/internal/customer/domain"
	"github.com/dukaankhata/dukaankhata/internal/customer/repository"
	"github.com/dukaankhata/dukaankhata/internal/ownerctx"
	"github.com/dukaankhata/dukaankhata/pkg/db"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(t *testing.T) domain.Service {
	t.Helper()

	dbConn, err := db.NewTest()
	require.NoError(t, err)
	require.NoError(t, dbConn.AutoMigrate(&domain.Customer{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	return New(Params{
		DB:    dbConn,
		Log:   zap.NewNop(),
		GenID: node,
		Repo:  repository.Provide(),
	})
}

func ownerContext(ownerID int64) context.Context {
	return ownerctx.WithOwnerID(context.Background(), snowflake.ID(ownerID))
}

func TestCreateRequiresOwner(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Create(context.Background(), domain.CreateCustomerRequest{Name: "Ali"})
	require.ErrorIs(t, err, domain.ErrInvalidOwner)
}

func TestCreateRequiresName(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Create(ownerContext(10), domain.CreateCustomerRequest{Name: "   "})
	require.ErrorIs(t, err, domain.ErrInvalidName)
}

func TestListIsOwnerScoped(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Create(ownerContext(10), domain.CreateCustomerRequest{Name: "Ali"})
	require.NoError(t, err)
	_, err = svc.Create(ownerContext(20), domain.CreateCustomerRequest{Name: "Bano"})
	require.NoError(t, err)

	resp, err := svc.List(ownerContext(10))
	require.NoError(t, err)
	require.Len(t, resp.Customers, 1)
	require.Equal(t, "Ali", resp.Customers[0].Name)
}

func TestUpdateOtherOwnersCustomerIsNotFound(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.Create(ownerContext(10), domain.CreateCustomerRequest{Name: "Ali"})
	require.NoError(t, err)

	name := "Changed"
	_, err = svc.Update(ownerContext(20), domain.UpdateCustomerRequest{
		ID:   created.ID.String(),
		Name: &name,
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateFields(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.Create(ownerContext(10), domain.CreateCustomerRequest{
		Name:  "Ali",
		Phone: "0300-1234567",
	})
	require.NoError(t, err)

	status := "inactive"
	updated, err := svc.Update(ownerContext(10), domain.UpdateCustomerRequest{
		ID:     created.ID.String(),
		Status: &status,
	})
	require.NoError(t, err)
	require.Equal(t, domain.StatusInactive, updated.Status)
	require.Equal(t, "Ali", updated.Name)
	require.Equal(t, "0300-1234567", updated.Phone)

	bad := "archived"
	_, err = svc.Update(ownerContext(10), domain.UpdateCustomerRequest{
		ID:     created.ID.String(),
		Status: &bad,
	})
	require.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestDelete(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.Create(ownerContext(10), domain.CreateCustomerRequest{Name: "Ali"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ownerContext(10), created.ID.String()))

	resp, err := svc.List(ownerContext(10))
	require.NoError(t, err)
	require.Empty(t, resp.Customers)

	require.ErrorIs(t, svc.Delete(ownerContext(10), created.ID.String()), domain.ErrNotFound)
}
