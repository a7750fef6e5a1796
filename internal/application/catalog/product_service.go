package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopfront/backend/internal/domain/catalog"
	"github.com/shopfront/backend/internal/domain/shared"
)

// ProductService handles product-related business operations for the
// store owner's admin surface
type ProductService struct {
	productRepo catalog.ProductRepository
}

// NewProductService creates a new ProductService
func NewProductService(productRepo catalog.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// Create creates a new product in the store's catalog
func (s *ProductService) Create(ctx context.Context, storeID uuid.UUID, req CreateProductRequest) (*ProductResponse, error) {
	product, err := catalog.NewProduct(storeID, req.Title, req.Price)
	if err != nil {
		return nil, err
	}

	if req.Description != "" {
		if err := product.Update(req.Title, req.Description); err != nil {
			return nil, err
		}
	}
	if req.ImageURL != "" {
		if err := product.SetImageURL(req.ImageURL); err != nil {
			return nil, err
		}
	}
	if req.Category != "" {
		if err := product.SetCategory(req.Category); err != nil {
			return nil, err
		}
	}
	if req.Visible != nil && !*req.Visible {
		product.Hide()
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// GetByID retrieves a product by ID within the store
func (s *ProductService) GetByID(ctx context.Context, storeID, productID uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByIDForStore(ctx, storeID, productID)
	if err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// List retrieves the store's products with filtering and pagination
func (s *ProductService) List(ctx context.Context, storeID uuid.UUID, filter ProductListFilter) ([]ProductResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.OrderBy == "" {
		filter.OrderBy = "created_at"
	}
	if filter.OrderDir == "" {
		filter.OrderDir = "desc"
	}

	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
		Search:   filter.Search,
		Filters:  make(map[string]interface{}),
	}
	if filter.Category != "" {
		domainFilter.Filters[catalog.FilterCategory] = filter.Category
	}
	if filter.Visible != nil {
		domainFilter.Filters[catalog.FilterVisible] = *filter.Visible
	}

	products, err := s.productRepo.FindAllForStore(ctx, storeID, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.productRepo.CountForStore(ctx, storeID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]ProductResponse, 0, len(products))
	for i := range products {
		responses = append(responses, ToProductResponse(&products[i]))
	}
	return responses, total, nil
}

// Update applies a partial update to a product
func (s *ProductService) Update(ctx context.Context, storeID, productID uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByIDForStore(ctx, storeID, productID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil || req.Description != nil {
		title := product.Title
		description := product.Description
		if req.Title != nil {
			title = *req.Title
		}
		if req.Description != nil {
			description = *req.Description
		}
		if err := product.Update(title, description); err != nil {
			return nil, err
		}
	}
	if req.Price != nil {
		if err := product.SetPrice(*req.Price); err != nil {
			return nil, err
		}
	}
	if req.ImageURL != nil {
		if err := product.SetImageURL(*req.ImageURL); err != nil {
			return nil, err
		}
	}
	if req.Category != nil {
		if err := product.SetCategory(*req.Category); err != nil {
			return nil, err
		}
	}
	if req.Visible != nil {
		if *req.Visible {
			product.Show()
		} else {
			product.Hide()
		}
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// SetVisibility shows or hides a product on the public storefront
func (s *ProductService) SetVisibility(ctx context.Context, storeID, productID uuid.UUID, visible bool) (*ProductResponse, error) {
	product, err := s.productRepo.FindByIDForStore(ctx, storeID, productID)
	if err != nil {
		return nil, err
	}

	if visible {
		product.Show()
	} else {
		product.Hide()
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// Delete removes a product from the catalog
func (s *ProductService) Delete(ctx context.Context, storeID, productID uuid.UUID) error {
	if _, err := s.productRepo.FindByIDForStore(ctx, storeID, productID); err != nil {
		return err
	}
	return s.productRepo.DeleteForStore(ctx, storeID, productID)
}
