package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ProductSpecs struct {
	gorm.Model
	Label     string `json:"label" binding:"required"`
	Value     string `json:"value" binding:"required"`
	ProductID int    `json:"productId" binding:"required"`
}

type ProductImage struct {
	gorm.Model
	Url       string `json:"url" binding:"required"`
	ProductID int    `json:"productId" binding:"required"`
}

type Product struct {
	gorm.Model
	Brand          string          `json:"brand" binding:"required"`
	Name           string          `json:"name" binding:"required"`
	Description    string          `json:"description" binding:"required"`
	Price          decimal.Decimal `json:"price" binding:"required" gorm:"type:decimal(10,2)"`
	Category       string          `json:"category" binding:"required"`
	CountInStock   int             `json:"countInStock"`
	Rating         float64         `json:"rating"`
	NumReviews     int             `json:"numReviews"`
	Colors         datatypes.JSON  `json:"colors"`
	Specifications []ProductSpecs  `json:"specifications" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Images         []ProductImage  `json:"images" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}
