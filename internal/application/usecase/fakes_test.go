package usecase

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jhoicas/minimart-api/internal/domain"
	"github.com/jhoicas/minimart-api/internal/domain/entity"
)

// Fakes en memoria de los puertos de persistencia. Cada uno permite forzar un
// error para simular fallos del storage.

func categoryFixture(name string) *entity.Category {
	return &entity.Category{Name: name, Details: "detalles de " + name}
}

func supplierFixture(name string) *entity.Supplier {
	return &entity.Supplier{
		Name:          name,
		Address:       "Av. Principal 123",
		ContactNumber: "999888777",
		Email:         "contacto@example.com",
	}
}

type fakeCategoryRepo struct {
	byID   map[primitive.ObjectID]*entity.Category
	byName map[string]*entity.Category
	err    error
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{
		byID:   map[primitive.ObjectID]*entity.Category{},
		byName: map[string]*entity.Category{},
	}
}

func (f *fakeCategoryRepo) Insert(c *entity.Category) (primitive.ObjectID, error) {
	if f.err != nil {
		return primitive.NilObjectID, f.err
	}
	id := primitive.NewObjectID()
	stored := *c
	stored.ID = id
	f.byID[id] = &stored
	f.byName[stored.Name] = &stored
	return id, nil
}

func (f *fakeCategoryRepo) GetByID(id primitive.ObjectID) (*entity.Category, error) {
	if f.err != nil {
		return nil, f.err
	}
	c, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

func (f *fakeCategoryRepo) GetByName(name string) (*entity.Category, error) {
	if f.err != nil {
		return nil, f.err
	}
	c, ok := f.byName[name]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

func (f *fakeCategoryRepo) GetAll() ([]*entity.Category, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*entity.Category, 0, len(f.byID))
	for _, c := range f.byID {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeCategoryRepo) Delete(id primitive.ObjectID) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	if _, ok := f.byID[id]; !ok {
		return false, domain.ErrNotFound
	}
	delete(f.byID, id)
	return true, nil
}

type fakeSupplierRepo struct {
	byID   map[primitive.ObjectID]*entity.Supplier
	byName map[string]*entity.Supplier
	err    error
}

func newFakeSupplierRepo() *fakeSupplierRepo {
	return &fakeSupplierRepo{
		byID:   map[primitive.ObjectID]*entity.Supplier{},
		byName: map[string]*entity.Supplier{},
	}
}

func (f *fakeSupplierRepo) Insert(s *entity.Supplier) (primitive.ObjectID, error) {
	if f.err != nil {
		return primitive.NilObjectID, f.err
	}
	id := primitive.NewObjectID()
	stored := *s
	stored.ID = id
	f.byID[id] = &stored
	f.byName[stored.Name] = &stored
	return id, nil
}

func (f *fakeSupplierRepo) GetByID(id primitive.ObjectID) (*entity.Supplier, error) {
	if f.err != nil {
		return nil, f.err
	}
	s, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return s, nil
}

func (f *fakeSupplierRepo) GetByName(name string) (*entity.Supplier, error) {
	if f.err != nil {
		return nil, f.err
	}
	s, ok := f.byName[name]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return s, nil
}

func (f *fakeSupplierRepo) GetAll() ([]*entity.Supplier, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*entity.Supplier, 0, len(f.byID))
	for _, s := range f.byID {
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeSupplierRepo) Delete(id primitive.ObjectID) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	if _, ok := f.byID[id]; !ok {
		return false, domain.ErrNotFound
	}
	delete(f.byID, id)
	return true, nil
}

type fakeEmployeeRepo struct {
	byID map[primitive.ObjectID]*entity.Employee
	err  error
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{byID: map[primitive.ObjectID]*entity.Employee{}}
}

func (f *fakeEmployeeRepo) Insert(e *entity.Employee) (primitive.ObjectID, error) {
	if f.err != nil {
		return primitive.NilObjectID, f.err
	}
	id := primitive.NewObjectID()
	stored := *e
	stored.ID = id
	f.byID[id] = &stored
	return id, nil
}

func (f *fakeEmployeeRepo) GetByID(id primitive.ObjectID) (*entity.Employee, error) {
	if f.err != nil {
		return nil, f.err
	}
	e, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return e, nil
}

func (f *fakeEmployeeRepo) GetByUserID(userID primitive.ObjectID) (*entity.Employee, error) {
	for _, e := range f.byID {
		if e.UserID == userID {
			return e, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeEmployeeRepo) GetAll() ([]*entity.Employee, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*entity.Employee, 0, len(f.byID))
	for _, e := range f.byID {
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeEmployeeRepo) Delete(id primitive.ObjectID) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	if _, ok := f.byID[id]; !ok {
		return false, domain.ErrNotFound
	}
	delete(f.byID, id)
	return true, nil
}

type fakeManagerRepo struct {
	byID map[primitive.ObjectID]*entity.Manager
	err  error
}

func newFakeManagerRepo() *fakeManagerRepo {
	return &fakeManagerRepo{byID: map[primitive.ObjectID]*entity.Manager{}}
}

func (f *fakeManagerRepo) Insert(m *entity.Manager) (primitive.ObjectID, error) {
	if f.err != nil {
		return primitive.NilObjectID, f.err
	}
	id := primitive.NewObjectID()
	stored := *m
	stored.ID = id
	f.byID[id] = &stored
	return id, nil
}

func (f *fakeManagerRepo) GetByID(id primitive.ObjectID) (*entity.Manager, error) {
	if f.err != nil {
		return nil, f.err
	}
	m, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return m, nil
}

func (f *fakeManagerRepo) GetByUserID(userID primitive.ObjectID) (*entity.Manager, error) {
	for _, m := range f.byID {
		if m.UserID == userID {
			return m, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeManagerRepo) GetAll() ([]*entity.Manager, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*entity.Manager, 0, len(f.byID))
	for _, m := range f.byID {
		out = append(out, m)
	}
	return out, nil
}

func (f *fakeManagerRepo) Delete(id primitive.ObjectID) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	if _, ok := f.byID[id]; !ok {
		return false, domain.ErrNotFound
	}
	delete(f.byID, id)
	return true, nil
}

type fakeProductRepo struct {
	byID map[primitive.ObjectID]*entity.Product
	err  error
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{byID: map[primitive.ObjectID]*entity.Product{}}
}

func (f *fakeProductRepo) Insert(p *entity.Product) (primitive.ObjectID, error) {
	if f.err != nil {
		return primitive.NilObjectID, f.err
	}
	id := primitive.NewObjectID()
	stored := *p
	stored.ID = id
	f.byID[id] = &stored
	return id, nil
}

func (f *fakeProductRepo) GetByID(id primitive.ObjectID) (*entity.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

func (f *fakeProductRepo) GetByCategory(categoryID primitive.ObjectID) ([]*entity.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*entity.Product, 0)
	for _, p := range f.byID {
		if p.CategoryID == categoryID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) GetBySupplier(supplierID primitive.ObjectID) ([]*entity.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*entity.Product, 0)
	for _, p := range f.byID {
		if p.SupplierID == supplierID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) GetAll() ([]*entity.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*entity.Product, 0, len(f.byID))
	for _, p := range f.byID {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProductRepo) Delete(id primitive.ObjectID) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	if _, ok := f.byID[id]; !ok {
		return false, domain.ErrNotFound
	}
	delete(f.byID, id)
	return true, nil
}
