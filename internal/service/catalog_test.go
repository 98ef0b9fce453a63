package service

import (
	"context"
	"testing"

	"shopbot/internal/domain"
	"shopbot/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_ListChildren(t *testing.T) {
	t.Run("category with children", func(t *testing.T) {
		mockRepo := new(testutil.MockCatalogRepository)
		parent := testutil.NewTestCategory(1, nil, "Elektronika", "Электроника")
		child := testutil.NewTestCategory(2, testutil.Int64Ptr(1), "Telefonlar", "Телефоны")
		mockRepo.On("GetCategory", mock.Anything, int64(1)).Return(parent, nil)
		mockRepo.On("ChildCategories", mock.Anything, int64(1)).Return([]domain.Category{*child}, nil)

		service := NewCatalogService(mockRepo, 10)

		category, children, err := service.ListChildren(context.Background(), 1)

		require.NoError(t, err)
		assert.Equal(t, int64(1), category.ID)
		require.Len(t, children, 1)
		assert.Equal(t, "Телефоны", children[0].Name.In(domain.LangRU))
		mockRepo.AssertExpectations(t)
	})

	t.Run("inactive category", func(t *testing.T) {
		mockRepo := new(testutil.MockCatalogRepository)
		mockRepo.On("GetCategory", mock.Anything, int64(9)).Return(nil, domain.ErrCategoryNotFound)

		service := NewCatalogService(mockRepo, 10)

		_, _, err := service.ListChildren(context.Background(), 9)

		assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
		mockRepo.AssertNotCalled(t, "ChildCategories", mock.Anything, mock.Anything)
	})
}

func TestCatalogService_ListProducts(t *testing.T) {
	tests := []struct {
		name          string
		pageSize      int
		limit         int
		expectedLimit int
	}{
		{name: "explicit limit", pageSize: 10, limit: 3, expectedLimit: 3},
		{name: "configured page size", pageSize: 5, limit: 0, expectedLimit: 5},
		{name: "default page size", pageSize: 0, limit: 0, expectedLimit: DefaultProductPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockCatalogRepository)
			products := []domain.Product{*testutil.NewTestProduct(7, "iPhone", "iPhone")}
			mockRepo.On("ProductsByCategory", mock.Anything, int64(2), tt.expectedLimit).Return(products, nil)

			service := NewCatalogService(mockRepo, tt.pageSize)

			result, err := service.ListProducts(context.Background(), 2, tt.limit)

			require.NoError(t, err)
			assert.Len(t, result, 1)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestCatalogService_ListColors(t *testing.T) {
	t.Run("active product", func(t *testing.T) {
		mockRepo := new(testutil.MockCatalogRepository)
		product := testutil.NewTestProduct(7, "iPhone", "iPhone")
		colors := []domain.ProductColor{*testutil.NewTestColor(70, 7, "Qora", "Черный", 15000000)}
		mockRepo.On("GetProduct", mock.Anything, int64(7)).Return(product, nil)
		mockRepo.On("ColorsByProduct", mock.Anything, int64(7)).Return(colors, nil)

		service := NewCatalogService(mockRepo, 10)

		p, result, err := service.ListColors(context.Background(), 7)

		require.NoError(t, err)
		assert.Equal(t, product, p)
		assert.Equal(t, colors, result)
		mockRepo.AssertExpectations(t)
	})

	t.Run("inactive product", func(t *testing.T) {
		mockRepo := new(testutil.MockCatalogRepository)
		mockRepo.On("GetProduct", mock.Anything, int64(8)).Return(nil, domain.ErrProductNotFound)

		service := NewCatalogService(mockRepo, 10)

		_, _, err := service.ListColors(context.Background(), 8)

		assert.ErrorIs(t, err, domain.ErrProductNotFound)
		mockRepo.AssertNotCalled(t, "ColorsByProduct", mock.Anything, mock.Anything)
	})
}
