package seed

import (
	"context"
	"testing"

	"github.com/peterldowns/testy/assert"
	"github.com/peterldowns/testy/check"

	"github.com/skavtech/ict-platform/internal/catalog/domain"
	"github.com/skavtech/ict-platform/internal/catalog/repository"
)

func TestReferenceProductsAreValid(t *testing.T) {
	for _, cmd := range ReferenceProducts() {
		p := domain.Product{
			Name:           cmd.Name,
			Brand:          cmd.Brand,
			Category:       cmd.Category,
			Condition:      cmd.Condition,
			Price:          cmd.Price,
			OriginalPrice:  cmd.OriginalPrice,
			Specifications: []byte(cmd.Specifications),
			WarrantyYears:  *cmd.WarrantyYears,
			StockQuantity:  cmd.StockQuantity,
		}
		check.NoError(t, p.Validate())

		specs, ok := domain.ParseSpecifications(p.Specifications)
		check.True(t, ok)
		check.Equal(t, "processor", specs[0].Key)
	}
}

func TestRunSeedsEmptyCatalog(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryProductRepository()

	res, err := Run(ctx, repo, false)
	assert.NoError(t, err)
	check.Equal(t, len(ReferenceProducts()), res.Created)
	check.Equal(t, 0, res.Failed)
	check.False(t, res.Skipped)

	n, err := repo.Count(ctx, domain.ListFilter{})
	assert.NoError(t, err)
	check.Equal(t, int64(len(ReferenceProducts())), n)
}

func TestRunSkipsPopulatedCatalog(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryProductRepository(domain.Product{
		Name: "Existing", Brand: "HP", Category: domain.CategoryLaptops, Condition: domain.ConditionNew, Price: 100,
	})

	res, err := Run(ctx, repo, false)
	assert.NoError(t, err)
	check.True(t, res.Skipped)
	check.Equal(t, 0, res.Created)

	res, err = Run(ctx, repo, true)
	assert.NoError(t, err)
	check.Equal(t, len(ReferenceProducts()), res.Created)
}
