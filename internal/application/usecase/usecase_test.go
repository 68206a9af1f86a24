package usecase

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-ledger/internal/application/dto"
	"github.com/jhoicas/stock-ledger/internal/domain"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
)

type fakeProductRepo struct {
	items []*entity.Product
}

func (r *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	p.ID = int64(len(r.items) + 1)
	cp := *p
	r.items = append(r.items, &cp)
	return nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	for _, p := range r.items {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeProductRepo) DecrementQuantity(context.Context, int64, int64) error { return nil }

func (r *fakeProductRepo) List(_ context.Context, limit, offset int) ([]*entity.Product, error) {
	if offset >= len(r.items) {
		return nil, nil
	}
	end := offset + limit
	if end > len(r.items) {
		end = len(r.items)
	}
	return r.items[offset:end], nil
}

type fakeUserRepo struct {
	items []*entity.User
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	for _, existing := range r.items {
		if existing.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	u.ID = int64(len(r.items) + 1)
	cp := *u
	r.items = append(r.items, &cp)
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*entity.User, error) {
	for _, u := range r.items {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) List(context.Context, int, int) ([]*entity.User, error) {
	return r.items, nil
}

func TestProductUseCase_CreateYGetByID(t *testing.T) {
	uc := NewProductUseCase(&fakeProductRepo{}, zerolog.Nop())
	ctx := context.Background()

	created, err := uc.Create(ctx, dto.CreateProductRequest{Name: " Chocolate Ice Pop ", Quantity: 100, UnitPrice: decimal.RequireFromString("2.5")})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	got, err := uc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, " Chocolate Ice Pop ", got.Name, "el nombre se guarda tal cual")
	assert.Equal(t, int64(100), got.Quantity)
	assert.True(t, decimal.RequireFromString("2.5").Equal(got.UnitPrice))

	missing, err := uc.GetByID(ctx, 99)
	require.NoError(t, err)
	assert.Nil(t, missing, "producto inexistente no es error")
}

func TestProductUseCase_NegativosSeAceptanConAdvertencia(t *testing.T) {
	var buf bytes.Buffer
	uc := NewProductUseCase(&fakeProductRepo{}, zerolog.New(&buf))

	out, err := uc.Create(context.Background(), dto.CreateProductRequest{Name: "Backorder", Quantity: -5, UnitPrice: decimal.NewFromInt(-1)})
	require.NoError(t, err)
	assert.Equal(t, int64(-5), out.Quantity)
	assert.Contains(t, buf.String(), `"level":"warn"`)
}

func TestProductUseCase_NombreVacioSeAcepta(t *testing.T) {
	uc := NewProductUseCase(&fakeProductRepo{}, zerolog.Nop())
	out, err := uc.Create(context.Background(), dto.CreateProductRequest{Name: ""})
	require.NoError(t, err)
	assert.Equal(t, "", out.Name)
	assert.NotZero(t, out.ID)
}

func TestProductUseCase_ListAplicaPaginacion(t *testing.T) {
	repo := &fakeProductRepo{}
	uc := NewProductUseCase(repo, zerolog.Nop())
	for i := 0; i < 3; i++ {
		_, err := uc.Create(context.Background(), dto.CreateProductRequest{Name: "p", Quantity: 1})
		require.NoError(t, err)
	}

	out, err := uc.List(context.Background(), dto.PageRequest{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, out.Items, 2)
	assert.Equal(t, 2, out.Page.Limit)
}

func TestUserUseCase_EmailDuplicado(t *testing.T) {
	repo := &fakeUserRepo{}
	uc := NewUserUseCase(repo)
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateUserRequest{Name: "A", Email: "dup@x.com"})
	require.NoError(t, err)
	_, err = uc.Create(ctx, dto.CreateUserRequest{Name: "B", Email: "dup@x.com"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	assert.Len(t, repo.items, 1)
}

func TestUserUseCase_DatosSeGuardanTalCual(t *testing.T) {
	uc := NewUserUseCase(&fakeUserRepo{})
	out, err := uc.Create(context.Background(), dto.CreateUserRequest{Name: " Ann ", Email: "Ann@X.io"})
	require.NoError(t, err)
	assert.Equal(t, " Ann ", out.Name)
	assert.Equal(t, "Ann@X.io", out.Email)
}
