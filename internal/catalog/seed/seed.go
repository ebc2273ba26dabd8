// Package seed loads the reference catalog into an empty product store.
package seed

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/skavtech/ict-platform/internal/catalog/domain"
	"github.com/skavtech/ict-platform/internal/catalog/usecase/command"
	"github.com/skavtech/ict-platform/pkg/logger"
)

const (
	imgServer  = "https://images.unsplash.com/photo-1558494949-ef010cbdcc31?auto=format&fit=crop&w=800&h=400"
	imgLaptop  = "https://images.unsplash.com/photo-1496181133206-80ce9b88a853?auto=format&fit=crop&w=800&h=400"
	imgDesktop = "https://images.unsplash.com/photo-1587831990711-23ca6441447b?auto=format&fit=crop&w=800&h=400"
	imgMacBook = "https://images.unsplash.com/photo-1541807084-5c52b6b3adef?auto=format&fit=crop&w=800&h=400"
	imgGaming  = "https://images.unsplash.com/photo-1603302576837-37561b2e2302?auto=format&fit=crop&w=800&h=400"
)

func price(v float64) *float64 { return &v }
func years(v int) *int         { return &v }

// specs keeps the key order of the literal, which is the order shown in
// comparisons.
func specs(kv ...string) json.RawMessage {
	buf := []byte{'{'}
	for i := 0; i+1 < len(kv); i += 2 {
		if i > 0 {
			buf = append(buf, ',')
		}
		k, _ := json.Marshal(kv[i])
		v, _ := json.Marshal(kv[i+1])
		buf = append(append(append(buf, k...), ':'), v...)
	}
	return append(buf, '}')
}

// ReferenceProducts is the starter catalog.
func ReferenceProducts() []command.CreateProductCommand {
	return []command.CreateProductCommand{
		{
			Name: "Dell PowerEdge R750", Brand: "Dell", Category: domain.CategoryServers, Condition: domain.ConditionRefurbished,
			Price: 4299, OriginalPrice: price(6500),
			Description:    "Enterprise-grade server with dual Xeon processors and 64GB RAM",
			Specifications: specs("processor", "Dual Intel Xeon", "ram", "64GB", "storage", "2TB SSD", "ports", "Multiple USB, Ethernet"),
			WarrantyYears:  years(2), StockQuantity: 5, ImageURL: imgServer,
		},
		{
			Name: "Lenovo ThinkPad T14", Brand: "Lenovo", Category: domain.CategoryLaptops, Condition: domain.ConditionNew,
			Price:          1299,
			Description:    "Business laptop with Intel i7, 16GB RAM, and 512GB SSD",
			Specifications: specs("processor", "Intel i7", "ram", "16GB", "storage", "512GB SSD", "screen", "14-inch Full HD"),
			WarrantyYears:  years(3), StockQuantity: 12, ImageURL: imgLaptop,
		},
		{
			Name: "HP EliteDesk 800 G6", Brand: "HP", Category: domain.CategoryDesktops, Condition: domain.ConditionRefurbished,
			Price: 549, OriginalPrice: price(899),
			Description:    "Compact business desktop with Intel i5 and 8GB RAM",
			Specifications: specs("processor", "Intel i5", "ram", "8GB", "storage", "256GB SSD", "ports", "Multiple USB, DisplayPort"),
			WarrantyYears:  years(1), StockQuantity: 8, ImageURL: imgDesktop,
		},
		{
			Name: `Apple MacBook Pro 14"`, Brand: "Apple", Category: domain.CategoryLaptops, Condition: domain.ConditionNew,
			Price:          1999,
			Description:    "Professional laptop with M2 chip, 16GB RAM, and 512GB SSD",
			Specifications: specs("processor", "Apple M2", "ram", "16GB", "storage", "512GB SSD", "screen", "14.2-inch Liquid Retina XDR"),
			WarrantyYears:  years(1), StockQuantity: 6, ImageURL: imgMacBook,
		},
		{
			Name: "Dell PowerEdge R450", Brand: "Dell", Category: domain.CategoryServers, Condition: domain.ConditionRefurbished,
			Price: 2899, OriginalPrice: price(4200),
			Description:    "Mid-range server with single Xeon processor and 32GB RAM",
			Specifications: specs("processor", "Intel Xeon", "ram", "32GB", "storage", "1TB SSD", "ports", "USB, Ethernet, VGA"),
			WarrantyYears:  years(2), StockQuantity: 3, ImageURL: imgServer,
		},
		{
			Name: "ASUS ROG Strix G15", Brand: "ASUS", Category: domain.CategoryLaptops, Condition: domain.ConditionNew,
			Price:          1499,
			Description:    "Gaming laptop with AMD Ryzen 7, 16GB RAM, and RTX 3060",
			Specifications: specs("processor", "AMD Ryzen 7", "ram", "16GB", "storage", "512GB SSD", "graphics", "NVIDIA RTX 3060", "screen", "15.6-inch Full HD 144Hz"),
			WarrantyYears:  years(2), StockQuantity: 4, ImageURL: imgGaming,
		},
		{
			Name: "HP EliteBook 840 G8", Brand: "HP", Category: domain.CategoryLaptops, Condition: domain.ConditionRefurbished,
			Price: 899, OriginalPrice: price(1299),
			Description:    "Business laptop with Intel i5, 16GB RAM, and 256GB SSD",
			Specifications: specs("processor", "Intel i5", "ram", "16GB", "storage", "256GB SSD", "screen", "14-inch Full HD"),
			WarrantyYears:  years(1), StockQuantity: 7, ImageURL: imgLaptop,
		},
		{
			Name: "Lenovo ThinkCentre M70q", Brand: "Lenovo", Category: domain.CategoryDesktops, Condition: domain.ConditionNew,
			Price:          699,
			Description:    "Compact business desktop with Intel i5 and 16GB RAM",
			Specifications: specs("processor", "Intel i5", "ram", "16GB", "storage", "512GB SSD", "ports", "USB-C, USB, HDMI"),
			WarrantyYears:  years(3), StockQuantity: 9, ImageURL: imgDesktop,
		},
		{
			Name: "Cisco UCS C240 M5", Brand: "Cisco", Category: domain.CategoryServers, Condition: domain.ConditionRefurbished,
			Price: 3499, OriginalPrice: price(5200),
			Description:    "Enterprise server with dual Xeon processors and 64GB RAM",
			Specifications: specs("processor", "Dual Intel Xeon", "ram", "64GB", "storage", "2x 1TB SSD", "ports", "Multiple Ethernet, USB"),
			WarrantyYears:  years(2), StockQuantity: 2, ImageURL: imgServer,
		},
		{
			Name: "Dell Inspiron 15 3000", Brand: "Dell", Category: domain.CategoryLaptops, Condition: domain.ConditionNew,
			Price:          599,
			Description:    "Budget laptop with Intel i3, 8GB RAM, and 256GB SSD",
			Specifications: specs("processor", "Intel i3", "ram", "8GB", "storage", "256GB SSD", "screen", "15.6-inch HD"),
			WarrantyYears:  years(1), StockQuantity: 15, ImageURL: imgLaptop,
		},
	}
}

// Result summarises a seeding run.
type Result struct {
	Created int  `json:"created"`
	Failed  int  `json:"failed"`
	Skipped bool `json:"skipped"`
}

// Run inserts the reference products. A catalog that already holds products
// is left alone unless force is set. Individual failures are logged and
// counted; the run continues with the next product.
func Run(ctx context.Context, repo domain.ProductRepository, force bool) (Result, error) {
	if !force {
		n, err := repo.Count(ctx, domain.ListFilter{})
		if err != nil {
			return Result{}, fmt.Errorf("count products: %w", err)
		}
		if n > 0 {
			logger.Info(ctx).Int64("existing", n).Msg("Catalog not empty, skipping seed")
			return Result{Skipped: true}, nil
		}
	}

	create := command.NewCreateProductHandler(repo)
	var res Result
	for _, cmd := range ReferenceProducts() {
		p, err := create.Handle(ctx, cmd)
		if err != nil {
			res.Failed++
			logger.Error(ctx).Err(err).Str("product", cmd.Name).Msg("Failed to seed product")
			continue
		}
		res.Created++
		logger.Info(ctx).Uint("id", p.ID).Str("product", p.Name).Msg("Seeded product")
	}
	return res, nil
}
