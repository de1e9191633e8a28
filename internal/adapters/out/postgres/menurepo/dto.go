// Package menurepo maps menu aggregates to the menus and menu_products tables.
package menurepo

import (
	"sort"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menu"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type MenuDTO struct {
	ID           uuid.UUID        `gorm:"type:uuid;primaryKey"`
	Name         string           `gorm:"type:varchar(255);not null"`
	Price        decimal.Decimal  `gorm:"type:decimal(19,2);not null"`
	Displayed    bool             `gorm:"not null;index"`
	MenuGroupID  uuid.UUID        `gorm:"type:uuid;not null;index"`
	MenuProducts []MenuProductDTO `gorm:"foreignKey:MenuID;constraint:OnDelete:CASCADE"`
}

func (MenuDTO) TableName() string {
	return "menus"
}

// MenuProductDTO is one menu line with the product price captured when the line
// was created or last repriced.
type MenuProductDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	MenuID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Position  int             `gorm:"type:int;not null"`
	Quantity  int64           `gorm:"type:bigint;not null"`
	Price     decimal.Decimal `gorm:"type:decimal(19,2);not null"`
}

func (MenuProductDTO) TableName() string {
	return "menu_products"
}

func fromDomain(m *menu.Menu) MenuDTO {
	menuID := m.ID().Bytes()
	lines := make([]MenuProductDTO, 0, len(m.Products()))

	for i, mp := range m.Products() {
		lines = append(lines, MenuProductDTO{
			ID:        mp.ID().Bytes(),
			MenuID:    menuID,
			ProductID: mp.ProductID().Bytes(),
			Position:  i,
			Quantity:  mp.Quantity(),
			Price:     mp.Price().Amount(),
		})
	}

	return MenuDTO{
		ID:           menuID,
		Name:         m.Name().String(),
		Price:        m.Price().Amount(),
		Displayed:    m.IsDisplayed(),
		MenuGroupID:  m.MenuGroupID().Bytes(),
		MenuProducts: lines,
	}
}

func toDomain(dto MenuDTO) (*menu.Menu, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	groupID, err := kernel.UUIDFromBytes(dto.MenuGroupID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewPrice(dto.Price)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(dto.MenuProducts, func(i, j int) bool {
		return dto.MenuProducts[i].Position < dto.MenuProducts[j].Position
	})

	lines := make([]*menu.MenuProduct, 0, len(dto.MenuProducts))
	for _, lineDTO := range dto.MenuProducts {
		line, lineErr := menuProductToDomain(lineDTO)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return menu.RestoreMenu(id, kernel.RestoreDisplayName(dto.Name), price, dto.Displayed, groupID, lines)
}

func menuProductToDomain(dto MenuProductDTO) (*menu.MenuProduct, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewPrice(dto.Price)
	if err != nil {
		return nil, err
	}

	return menu.NewMenuProduct(id, productID, dto.Quantity, price)
}
