// Package productrepo maps product aggregates to the products table.
package productrepo

import (
	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductDTO is the row of the products table.
type ProductDTO struct {
	ID    uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name  string          `gorm:"type:varchar(255);not null"`
	Price decimal.Decimal `gorm:"type:decimal(19,2);not null"`
}

func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(p *product.Product) ProductDTO {
	return ProductDTO{
		ID:    p.ID().Bytes(),
		Name:  p.Name().String(),
		Price: p.Price().Amount(),
	}
}

// toDomain restores a product. The stored name passed the content policy when
// the product was created and is not checked again.
func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewPrice(dto.Price)
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(id, kernel.RestoreDisplayName(dto.Name), price)
}
