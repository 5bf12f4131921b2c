package local

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tiendalocal/storefront-backend/internal/store"
	"github.com/tiendalocal/storefront-backend/pkg/blob"
	"github.com/tiendalocal/storefront-backend/pkg/config"
	"github.com/tiendalocal/storefront-backend/pkg/db/models"
	"github.com/tiendalocal/storefront-backend/pkg/enums"
	pkgerrors "github.com/tiendalocal/storefront-backend/pkg/errors"
)

func testConfig(dir string) config.LocalStoreConfig {
	return config.LocalStoreConfig{
		BlobKey: "storefront_db",
		WorkDir: filepath.Join(dir, "work"),
	}
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	blobs, err := blob.NewFileStore(filepath.Join(dir, "blobs"))
	require.NoError(t, err)
	s, err := Open(context.Background(), testConfig(dir), blobs, nil)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenSeedsFreshDatabase(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	categories, err := s.GetCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 11)

	products, err := s.GetProducts(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, products)

	admin, err := s.GetUserByEmail(ctx, "juan.perez@example.com")
	require.NoError(t, err)
	assert.Equal(t, enums.UserRoleAdmin, admin.Role)

	settings, err := s.GetStoreSettings(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, settings)
}

func TestReopenRestoresSnapshot(t *testing.T) {
	dir := t.TempDir()
	blobs, err := blob.NewFileStore(filepath.Join(dir, "blobs"))
	require.NoError(t, err)
	ctx := context.Background()

	s, err := Open(ctx, testConfig(dir), blobs, nil)
	require.NoError(t, err)

	require.NoError(t, s.CreateProduct(ctx, &models.Product{
		SKU:      "SKU-RESTORE",
		Name:     "Persisted product",
		Price:    decimal.NewFromInt(99),
		Category: "Herramientas",
		IsActive: true,
	}))
	var created models.Product
	require.NoError(t, s.db.First(&created, "sku = ?", "SKU-RESTORE").Error)
	require.NoError(t, s.Close())

	reopened, err := Open(ctx, testConfig(dir), blobs, nil)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.GetProductByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Persisted product", got.Name)

	// Reopen must not re-seed on top of restored data.
	categories, err := reopened.GetCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 11)
}

func TestMigrateIsIdempotent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.migrate(ctx, false))
	require.NoError(t, s.migrate(ctx, false))

	banners, err := s.GetAllBanners(ctx)
	require.NoError(t, err)
	assert.Len(t, banners, 2)

	methods, err := s.GetAllPaymentMethods(ctx)
	require.NoError(t, err)
	assert.Len(t, methods, 2)
}

func TestLoginUser(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	user, err := s.LoginUser(ctx, "juan.perez@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)

	_, err = s.LoginUser(ctx, "nobody@example.com", "password123")
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeNotFound))

	_, err = s.LoginUser(ctx, "juan.perez@example.com", "wrong")
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeInvalidCredential))

	require.NoError(t, s.UpdateUserDetails(ctx, &models.User{
		ID:       "u1",
		Name:     user.Name,
		Email:    user.Email,
		IsActive: false,
		Role:     user.Role,
	}))
	_, err = s.LoginUser(ctx, "juan.perez@example.com", "password123")
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeAccountInactive))
}

func TestRegisterUser(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	user, err := s.RegisterUser(ctx, "ana.gomez@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "ana.gomez", user.Name)
	assert.Equal(t, enums.UserRoleUser, user.Role)
	assert.True(t, user.IsActive)

	_, err = s.RegisterUser(ctx, "ana.gomez@example.com", "other")
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeAlreadyExists))
}

func TestUpdateUserPasswordClearsForcedChange(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	created, err := s.CreateUserAdmin(ctx, store.CreateUserParams{
		Name:               "Temp",
		Email:              "temp@example.com",
		Password:           "provisional",
		Role:               enums.UserRoleUser,
		IsActive:           true,
		MustChangePassword: true,
	})
	require.NoError(t, err)

	require.NoError(t, s.UpdateUserPassword(ctx, created.ID, "chosen"))

	user, err := s.GetCurrentUser(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, user.MustChangePassword)
	assert.Equal(t, "chosen", user.Password)
}

func TestCreateOrderSnapshotsPrices(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	hammer := models.Product{SKU: "SKU-H", Name: "Martillo", Price: decimal.NewFromInt(1000), Category: "Herramientas", IsActive: true}
	tape := models.Product{SKU: "SKU-T", Name: "Cinta", Price: decimal.NewFromInt(500), Category: "Herramientas", IsActive: true}
	require.NoError(t, s.CreateProduct(ctx, &hammer))
	require.NoError(t, s.CreateProduct(ctx, &tape))

	items := []store.NewOrderItem{
		{ProductID: hammer.ID, Quantity: 2, Price: hammer.Price},
		{ProductID: tape.ID, Quantity: 1, Price: tape.Price},
	}
	total := store.ComputeTotal(items)
	assert.True(t, total.Equal(decimal.NewFromInt(2500)))

	orderID, err := s.CreateOrder(ctx, "u1", items, total)
	require.NoError(t, err)

	// Raising the catalog price after checkout must not change the order.
	hammer.Price = decimal.NewFromInt(9999)
	require.NoError(t, s.UpdateProduct(ctx, &hammer))

	orders, err := s.GetOrdersByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	order := orders[0]
	assert.Equal(t, orderID, order.ID)
	assert.Equal(t, enums.OrderStatusPending, order.Status)
	assert.True(t, order.Total.Equal(decimal.NewFromInt(2500)))
	require.Len(t, order.Items, 2)
	for _, line := range order.Items {
		if line.ProductID == hammer.ID {
			assert.True(t, line.Price.Equal(decimal.NewFromInt(1000)))
			require.NotNil(t, line.ProductName)
			assert.Equal(t, "Martillo", *line.ProductName)
		}
	}
}

func TestOrderLinesSurviveProductDeletion(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	product := models.Product{SKU: "SKU-D", Name: "Efímero", Price: decimal.NewFromInt(300), Category: "Herramientas", IsActive: true}
	require.NoError(t, s.CreateProduct(ctx, &product))

	items := []store.NewOrderItem{{ProductID: product.ID, Quantity: 1, Price: product.Price}}
	_, err := s.CreateOrder(ctx, "u1", items, store.ComputeTotal(items))
	require.NoError(t, err)

	require.NoError(t, s.DeleteProduct(ctx, product.ID))

	orders, err := s.GetOrdersByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	require.Len(t, orders[0].Items, 1)
	line := orders[0].Items[0]
	assert.Nil(t, line.ProductName)
	assert.Nil(t, line.ProductImage)
	assert.True(t, line.Price.Equal(decimal.NewFromInt(300)))
}

func TestCreateOrderRejectsEmptyCart(t *testing.T) {
	s := newTestStore(t)
	_, err := s.CreateOrder(context.Background(), "u1", nil, decimal.Zero)
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeValidation))
}

func TestDeleteUserCascades(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	user, err := s.RegisterUser(ctx, "cascade@example.com", "pw")
	require.NoError(t, err)

	product := models.Product{SKU: "SKU-C", Name: "Taladro", Price: decimal.NewFromInt(200), Category: "Herramientas", IsActive: true}
	require.NoError(t, s.CreateProduct(ctx, &product))
	require.NoError(t, s.AddToWishlist(ctx, user.ID, product.ID))

	items := []store.NewOrderItem{{ProductID: product.ID, Quantity: 1, Price: product.Price}}
	_, err = s.CreateOrder(ctx, user.ID, items, store.ComputeTotal(items))
	require.NoError(t, err)

	require.NoError(t, s.DeleteUser(ctx, user.ID))

	_, err = s.GetCurrentUser(ctx, user.ID)
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeNotFound))

	var count int64
	require.NoError(t, s.db.Model(&models.WishlistEntry{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, s.db.Model(&models.Order{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, s.db.Table("order_items").
		Joins("LEFT JOIN orders ON orders.id = order_items.order_id").
		Where("orders.id IS NULL").Count(&count).Error)
	assert.Zero(t, count, "no orphan line items")
}

func TestDeleteOrderRemovesLinesFirst(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	product := models.Product{SKU: "SKU-O", Name: "Llave", Price: decimal.NewFromInt(150), Category: "Herramientas", IsActive: true}
	require.NoError(t, s.CreateProduct(ctx, &product))
	items := []store.NewOrderItem{{ProductID: product.ID, Quantity: 3, Price: product.Price}}
	orderID, err := s.CreateOrder(ctx, "u1", items, store.ComputeTotal(items))
	require.NoError(t, err)

	require.NoError(t, s.DeleteOrder(ctx, orderID))

	var count int64
	require.NoError(t, s.db.Model(&models.OrderItem{}).Where("order_id = ?", orderID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestWishlistToggle(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	product := models.Product{SKU: "SKU-W", Name: "Sierra", Price: decimal.NewFromInt(700), Category: "Herramientas", IsActive: true}
	require.NoError(t, s.CreateProduct(ctx, &product))

	require.NoError(t, s.AddToWishlist(ctx, "u1", product.ID))
	require.NoError(t, s.AddToWishlist(ctx, "u1", product.ID))

	ids, err := s.GetWishlist(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{product.ID}, ids)

	in, err := s.IsInWishlist(ctx, "u1", product.ID)
	require.NoError(t, err)
	assert.True(t, in)

	wishProducts, err := s.GetWishlistProducts(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, wishProducts, 1)
	assert.Equal(t, product.ID, wishProducts[0].ID)

	require.NoError(t, s.RemoveFromWishlist(ctx, "u1", product.ID))
	in, err = s.IsInWishlist(ctx, "u1", product.ID)
	require.NoError(t, err)
	assert.False(t, in)
}

func TestGetBannersFiltersInactive(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.CreateBanner(ctx, &models.Banner{
		Title:     "Oculto",
		IsActive:  false,
		SortOrder: 0,
		Style:     enums.BannerStyleSplit,
	}))

	active, err := s.GetBanners(ctx)
	require.NoError(t, err)
	for _, b := range active {
		assert.True(t, b.IsActive)
	}

	all, err := s.GetAllBanners(ctx)
	require.NoError(t, err)
	assert.Len(t, all, len(active)+1)
}

func TestStoreSettingUpsert(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	name, err := s.GetStoreSetting(ctx, "store_name")
	require.NoError(t, err)
	assert.NotEmpty(t, name)

	require.NoError(t, s.UpdateStoreSetting(ctx, "store_name", "Mi Tienda"))
	name, err = s.GetStoreSetting(ctx, "store_name")
	require.NoError(t, err)
	assert.Equal(t, "Mi Tienda", name)

	require.NoError(t, s.UpdateStoreSetting(ctx, "brand_new_key", "v"))
	v, err := s.GetStoreSetting(ctx, "brand_new_key")
	require.NoError(t, err)
	assert.Equal(t, "v", v)

	_, err = s.GetStoreSetting(ctx, "missing")
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeNotFound))
}

func TestUploadFileIsOfflineUnavailable(t *testing.T) {
	s := newTestStore(t)
	_, err := s.UploadFile(context.Background(), store.UploadInput{ObjectName: "a.png"})
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeOfflineUnavailable))
}

type failingBlobStore struct{ err error }

func (f *failingBlobStore) Put(ctx context.Context, key string, data []byte) error { return f.err }
func (f *failingBlobStore) Get(ctx context.Context, key string) ([]byte, error)    { return nil, f.err }
func (f *failingBlobStore) Delete(ctx context.Context, key string) error           { return f.err }

func TestOpenClassifiesSnapshotLoadFailure(t *testing.T) {
	dir := t.TempDir()
	blobs := &failingBlobStore{err: errors.New("bucket unreachable")}

	_, err := Open(context.Background(), testConfig(dir), blobs, nil)
	require.Error(t, err)
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeLocalStore))
}

func TestCreateProductKeepsInactiveFlag(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	product := &models.Product{
		SKU:      "SKU-PAUSED",
		Name:     "Producto pausado",
		Price:    decimal.NewFromInt(10),
		Category: "Herramientas",
		IsActive: false,
	}
	require.NoError(t, s.CreateProduct(ctx, product))

	got, err := s.GetProductByID(ctx, product.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)
}

func TestSimulatedLatencyHonorsContext(t *testing.T) {
	s := newTestStore(t)
	s.latency = 5 * time.Second

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := s.GetProducts(ctx)
	require.NoError(t, err) // degraded read: context error logged, empty result
}
