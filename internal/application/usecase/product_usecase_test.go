package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jhoicas/minimart-api/internal/application/dto"
	"github.com/jhoicas/minimart-api/internal/domain"
)

func newProductUseCase() (*ProductUseCase, *fakeProductRepo, *fakeCategoryRepo, *fakeSupplierRepo) {
	products := newFakeProductRepo()
	categories := newFakeCategoryRepo()
	suppliers := newFakeSupplierRepo()
	uc := NewProductUseCase(products, NewCategoryUseCase(categories), NewSupplierUseCase(suppliers))
	return uc, products, categories, suppliers
}

func TestProductCreate(t *testing.T) {
	uc, _, _, _ := newProductUseCase()
	categoryID := primitive.NewObjectID()
	supplierID := primitive.NewObjectID()

	resp, err := uc.Create(dto.CreateProductRequest{
		Name:       "Arroz 1kg",
		CategoryID: categoryID.Hex(),
		SupplierID: supplierID.Hex(),
		Stock:      10,
		Price:      3.5,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "Arroz 1kg", resp.Name)
	assert.Equal(t, categoryID.Hex(), resp.CategoryID)
	assert.Equal(t, 10, resp.Stock)
	assert.Equal(t, 3.5, resp.Price)
}

func TestProductCreateLimitesInclusivos(t *testing.T) {
	// Cero es válido para stock y price; el rechazo empieza en negativos.
	uc, _, _, _ := newProductUseCase()
	categoryID := primitive.NewObjectID().Hex()
	supplierID := primitive.NewObjectID().Hex()

	resp, err := uc.Create(dto.CreateProductRequest{
		Name:       "Muestra gratis",
		CategoryID: categoryID,
		SupplierID: supplierID,
		Stock:      0,
		Price:      0.0,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Stock)
	assert.Equal(t, 0.0, resp.Price)

	_, err = uc.Create(dto.CreateProductRequest{
		Name:       "Stock negativo",
		CategoryID: categoryID,
		SupplierID: supplierID,
		Stock:      -1,
		Price:      1.0,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(dto.CreateProductRequest{
		Name:       "Precio negativo",
		CategoryID: categoryID,
		SupplierID: supplierID,
		Stock:      1,
		Price:      -0.01,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductCreateCamposRequeridos(t *testing.T) {
	uc, _, _, _ := newProductUseCase()

	cases := []struct {
		name string
		in   dto.CreateProductRequest
	}{
		{"sin nombre", dto.CreateProductRequest{CategoryID: primitive.NewObjectID().Hex(), SupplierID: primitive.NewObjectID().Hex()}},
		{"sin categoria", dto.CreateProductRequest{Name: "x", SupplierID: primitive.NewObjectID().Hex()}},
		{"categoria invalida", dto.CreateProductRequest{Name: "x", CategoryID: "zzz", SupplierID: primitive.NewObjectID().Hex()}},
		{"sin proveedor", dto.CreateProductRequest{Name: "x", CategoryID: primitive.NewObjectID().Hex()}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Create(tc.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestProductRegisterResuelveNombres(t *testing.T) {
	uc, _, categories, suppliers := newProductUseCase()
	catID, err := categories.Insert(categoryFixture("Abarrotes"))
	require.NoError(t, err)
	supID, err := suppliers.Insert(supplierFixture("Distribuidora Sur"))
	require.NoError(t, err)

	resp, err := uc.Register(dto.RegisterProductRequest{
		Name:         "Azúcar 1kg",
		CategoryName: "Abarrotes",
		SupplierName: "Distribuidora Sur",
		Stock:        5,
		Price:        2.2,
	})
	require.NoError(t, err)
	assert.Equal(t, catID.Hex(), resp.CategoryID)
	assert.Equal(t, supID.Hex(), resp.SupplierID)
}

func TestProductRegisterNombreNoResuelve(t *testing.T) {
	// Un nombre inexistente es culpa del caller: ErrInvalidInput, no 404 ni 500.
	uc, _, categories, suppliers := newProductUseCase()
	_, err := categories.Insert(categoryFixture("Abarrotes"))
	require.NoError(t, err)
	_, err = suppliers.Insert(supplierFixture("Distribuidora Sur"))
	require.NoError(t, err)

	_, err = uc.Register(dto.RegisterProductRequest{
		Name:         "Azúcar 1kg",
		CategoryName: "No Existe",
		SupplierName: "Distribuidora Sur",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.NotErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Register(dto.RegisterProductRequest{
		Name:         "Azúcar 1kg",
		CategoryName: "Abarrotes",
		SupplierName: "No Existe",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductCreateFalloDeStorage(t *testing.T) {
	uc, products, _, _ := newProductUseCase()
	products.err = domain.ErrStorageUnavailable

	_, err := uc.Create(dto.CreateProductRequest{
		Name:       "Arroz 1kg",
		CategoryID: primitive.NewObjectID().Hex(),
		SupplierID: primitive.NewObjectID().Hex(),
		Stock:      1,
		Price:      1.0,
	})
	require.Error(t, err)

	// El fallo cruza la capa de servicio envuelto en ServiceError y conserva
	// la causa para errors.Is.
	var svcErr *domain.ServiceError
	assert.True(t, errors.As(err, &svcErr))
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
}

func TestProductGetByIDNoEncontrado(t *testing.T) {
	uc, _, _, _ := newProductUseCase()

	_, err := uc.GetByID(primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductListVacia(t *testing.T) {
	uc, _, _, _ := newProductUseCase()

	list, err := uc.List()
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestProductListByCategory(t *testing.T) {
	uc, _, categories, suppliers := newProductUseCase()
	catID, err := categories.Insert(categoryFixture("Abarrotes"))
	require.NoError(t, err)
	_, err = suppliers.Insert(supplierFixture("Distribuidora Sur"))
	require.NoError(t, err)

	_, err = uc.Register(dto.RegisterProductRequest{
		Name: "Azúcar 1kg", CategoryName: "Abarrotes", SupplierName: "Distribuidora Sur", Stock: 5, Price: 2.2,
	})
	require.NoError(t, err)

	list, err := uc.ListByCategory(catID.Hex())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Azúcar 1kg", list[0].Name)

	otra, err := uc.ListByCategory(primitive.NewObjectID().Hex())
	require.NoError(t, err)
	assert.Empty(t, otra)
}
