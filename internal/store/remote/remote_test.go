package remote

import (
	"context"
	"testing"

	pubsub "cloud.google.com/go/pubsub/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/tiendalocal/storefront-backend/internal/events"
	"github.com/tiendalocal/storefront-backend/internal/store"
	"github.com/tiendalocal/storefront-backend/pkg/db/models"
	"github.com/tiendalocal/storefront-backend/pkg/enums"
	pkgerrors "github.com/tiendalocal/storefront-backend/pkg/errors"
)

type capturePublisher struct {
	messages []*pubsub.Message
}

func (p *capturePublisher) Publish(_ context.Context, msg *pubsub.Message) *pubsub.PublishResult {
	p.messages = append(p.messages, msg)
	return nil
}

type stubUploader struct {
	bucket string
	object string
	fail   error
}

func (u *stubUploader) Upload(_ context.Context, bucket, objectName, _ string, _ []byte) (string, error) {
	u.bucket = bucket
	u.object = objectName
	if u.fail != nil {
		return "", u.fail
	}
	return "https://storage.googleapis.com/" + bucket + "/" + objectName, nil
}

func newTestStore(t *testing.T) (*Store, *capturePublisher, *stubUploader) {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(
		&models.Product{}, &models.Category{}, &models.User{},
		&models.Order{}, &models.OrderItem{}, &models.WishlistEntry{},
		&models.Banner{}, &models.PaymentMethod{}, &models.StoreSetting{},
	))
	pub := &capturePublisher{}
	up := &stubUploader{}
	return New(conn, up, pub, nil), pub, up
}

func seedUser(t *testing.T, s *Store, email string) *models.User {
	t.Helper()
	user, err := s.RegisterUser(context.Background(), email, "pw")
	require.NoError(t, err)
	return user
}

func TestProductLifecycle(t *testing.T) {
	s, _, _ := newTestStore(t)
	ctx := context.Background()

	product := models.Product{
		SKU:      "SKU-1",
		Name:     "Martillo",
		Price:    decimal.NewFromInt(1000),
		Category: "Herramientas",
		IsActive: true,
	}
	require.NoError(t, s.CreateProduct(ctx, &product))
	require.NotEmpty(t, product.ID)

	got, err := s.GetProductByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, "Martillo", got.Name)

	product.Name = "Martillo grande"
	require.NoError(t, s.UpdateProduct(ctx, &product))
	got, err = s.GetProductByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, "Martillo grande", got.Name)

	require.NoError(t, s.DeleteProduct(ctx, product.ID))
	_, err = s.GetProductByID(ctx, product.ID)
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeNotFound))
}

func TestLoginUserOrderOfChecks(t *testing.T) {
	s, _, _ := newTestStore(t)
	ctx := context.Background()
	user := seedUser(t, s, "login@example.com")

	got, err := s.LoginUser(ctx, "login@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = s.LoginUser(ctx, "missing@example.com", "pw")
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeNotFound))

	_, err = s.LoginUser(ctx, "login@example.com", "bad")
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeInvalidCredential))
}

func TestRegisterUserDuplicateEmail(t *testing.T) {
	s, _, _ := newTestStore(t)
	seedUser(t, s, "dup@example.com")
	_, err := s.RegisterUser(context.Background(), "dup@example.com", "pw")
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeAlreadyExists))
}

func TestCreateOrderAndRead(t *testing.T) {
	s, _, _ := newTestStore(t)
	ctx := context.Background()
	user := seedUser(t, s, "buyer@example.com")

	product := models.Product{SKU: "SKU-O", Name: "Taladro", Price: decimal.NewFromInt(1250), Category: "Herramientas", IsActive: true}
	require.NoError(t, s.CreateProduct(ctx, &product))

	items := []store.NewOrderItem{{ProductID: product.ID, Quantity: 2, Price: product.Price}}
	orderID, err := s.CreateOrder(ctx, user.ID, items, store.ComputeTotal(items))
	require.NoError(t, err)

	orders, err := s.GetOrdersByUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, orderID, orders[0].ID)
	assert.Equal(t, enums.OrderStatusPending, orders[0].Status)
	assert.True(t, orders[0].Total.Equal(decimal.NewFromInt(2500)))
	require.Len(t, orders[0].Items, 1)
	require.NotNil(t, orders[0].Items[0].ProductName)
	assert.Equal(t, "Taladro", *orders[0].Items[0].ProductName)
}

func TestUpdateOrderStatusPublishesEvent(t *testing.T) {
	s, pub, _ := newTestStore(t)
	ctx := context.Background()
	user := seedUser(t, s, "events@example.com")

	product := models.Product{SKU: "SKU-E", Name: "Sierra", Price: decimal.NewFromInt(500), Category: "Herramientas", IsActive: true}
	require.NoError(t, s.CreateProduct(ctx, &product))
	items := []store.NewOrderItem{{ProductID: product.ID, Quantity: 1, Price: product.Price}}
	orderID, err := s.CreateOrder(ctx, user.ID, items, store.ComputeTotal(items))
	require.NoError(t, err)

	require.NoError(t, s.UpdateOrderStatus(ctx, orderID, enums.OrderStatusShipped))

	require.Len(t, pub.messages, 1)
	msg := pub.messages[0]
	assert.Equal(t, events.TypeOrderStatusChanged, msg.Attributes["event_type"])
	assert.Equal(t, orderID, msg.Attributes["order_id"])

	envelope, err := events.DecodeOrderStatusChanged(msg.Data)
	require.NoError(t, err)
	assert.Equal(t, orderID, envelope.OrderID)
	assert.Equal(t, user.ID, envelope.UserID)
	assert.Equal(t, string(enums.OrderStatusShipped), envelope.Status)
	assert.NotEmpty(t, envelope.EventID)
}

func TestUpdateOrderStatusRejectsUnknown(t *testing.T) {
	s, pub, _ := newTestStore(t)
	err := s.UpdateOrderStatus(context.Background(), "ord_missing", enums.OrderStatus("bogus"))
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeValidation))
	assert.Empty(t, pub.messages)
}

func TestDeleteUserCascades(t *testing.T) {
	s, _, _ := newTestStore(t)
	ctx := context.Background()
	user := seedUser(t, s, "gone@example.com")

	product := models.Product{SKU: "SKU-G", Name: "Llave", Price: decimal.NewFromInt(100), Category: "Herramientas", IsActive: true}
	require.NoError(t, s.CreateProduct(ctx, &product))
	require.NoError(t, s.AddToWishlist(ctx, user.ID, product.ID))
	items := []store.NewOrderItem{{ProductID: product.ID, Quantity: 1, Price: product.Price}}
	_, err := s.CreateOrder(ctx, user.ID, items, store.ComputeTotal(items))
	require.NoError(t, err)

	require.NoError(t, s.DeleteUser(ctx, user.ID))

	_, err = s.GetCurrentUser(ctx, user.ID)
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeNotFound))

	orders, err := s.GetOrdersByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, orders)

	ids, err := s.GetWishlist(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestUploadFile(t *testing.T) {
	s, _, up := newTestStore(t)
	ctx := context.Background()

	url, err := s.UploadFile(ctx, store.UploadInput{
		ObjectName:  "products/p1.png",
		ContentType: "image/png",
		Data:        []byte("img"),
	})
	require.NoError(t, err)
	assert.Equal(t, "https://storage.googleapis.com/company-assets/products/p1.png", url)
	assert.Equal(t, "company-assets", up.bucket)

	_, err = s.UploadFile(ctx, store.UploadInput{ObjectName: "x", Data: nil})
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeValidation))

	_, err = s.UploadFile(ctx, store.UploadInput{Data: []byte("img")})
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeValidation))
}

func TestUploadFileWithoutStorage(t *testing.T) {
	s, _, _ := newTestStore(t)
	s.uploads = nil
	_, err := s.UploadFile(context.Background(), store.UploadInput{ObjectName: "x", Data: []byte("d")})
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeDependency))
}

func TestStoreSettingUpsert(t *testing.T) {
	s, _, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.UpdateStoreSetting(ctx, "store_name", "Tienda Local"))
	v, err := s.GetStoreSetting(ctx, "store_name")
	require.NoError(t, err)
	assert.Equal(t, "Tienda Local", v)

	require.NoError(t, s.UpdateStoreSetting(ctx, "store_name", "Renombrada"))
	v, err = s.GetStoreSetting(ctx, "store_name")
	require.NoError(t, err)
	assert.Equal(t, "Renombrada", v)
}
