package models

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson"
)

// ErrNoFields is returned when a partial update carries no usable field.
var ErrNoFields = errors.New("no fields to update")

// OliveOilProduct is a bottle or tin in the olive oil catalog.
type OliveOilProduct struct {
	ID            string `bson:"id" json:"id"`
	SKU           string `bson:"sku" json:"sku"`
	NameEN        string `bson:"name_en" json:"name_en"`
	NameFR        string `bson:"name_fr" json:"name_fr"`
	Size          string `bson:"size" json:"size"`
	DescriptionEN string `bson:"description_en" json:"description_en"`
	DescriptionFR string `bson:"description_fr" json:"description_fr"`
	Image         string `bson:"image" json:"image"`
	Active        bool   `bson:"active" json:"active"`
	Order         int    `bson:"order" json:"order"`
}

// WithID returns a copy of the product carrying id.
func (p OliveOilProduct) WithID(id string) OliveOilProduct {
	p.ID = id
	return p
}

// OliveOilProductCreate is the admin payload for a new olive oil product.
type OliveOilProductCreate struct {
	SKU           string `json:"sku" validate:"min=1,max=50"`
	NameEN        string `json:"name_en" validate:"min=1,max=200"`
	NameFR        string `json:"name_fr" validate:"min=1,max=200"`
	Size          string `json:"size" validate:"min=1,max=100"`
	DescriptionEN string `json:"description_en" validate:"min=1,max=2000"`
	DescriptionFR string `json:"description_fr" validate:"min=1,max=2000"`
	Image         string `json:"image" validate:"required,url,max=2048"`
	Active        *bool  `json:"active"`
	Order         int    `json:"order" validate:"gte=0"`
}

func (c OliveOilProductCreate) ToProduct(id string) OliveOilProduct {
	return OliveOilProduct{
		ID:            id,
		SKU:           c.SKU,
		NameEN:        c.NameEN,
		NameFR:        c.NameFR,
		Size:          c.Size,
		DescriptionEN: c.DescriptionEN,
		DescriptionFR: c.DescriptionFR,
		Image:         c.Image,
		Active:        c.Active == nil || *c.Active,
		Order:         c.Order,
	}
}

// OliveOilProductUpdate is a partial update; nil fields are left untouched.
type OliveOilProductUpdate struct {
	SKU           *string `json:"sku" validate:"omitempty,min=1,max=50"`
	NameEN        *string `json:"name_en" validate:"omitempty,min=1,max=200"`
	NameFR        *string `json:"name_fr" validate:"omitempty,min=1,max=200"`
	Size          *string `json:"size" validate:"omitempty,min=1,max=100"`
	DescriptionEN *string `json:"description_en" validate:"omitempty,min=1,max=2000"`
	DescriptionFR *string `json:"description_fr" validate:"omitempty,min=1,max=2000"`
	Image         *string `json:"image" validate:"omitempty,url,max=2048"`
	Active        *bool   `json:"active"`
	Order         *int    `json:"order" validate:"omitempty,gte=0"`
}

// Changes returns the fields to $set.
func (u OliveOilProductUpdate) Changes() (bson.M, error) {
	changes := fieldSet{}
	changes.setString("sku", u.SKU)
	changes.setString("name_en", u.NameEN)
	changes.setString("name_fr", u.NameFR)
	changes.setString("size", u.Size)
	changes.setString("description_en", u.DescriptionEN)
	changes.setString("description_fr", u.DescriptionFR)
	changes.setString("image", u.Image)
	changes.setBool("active", u.Active)
	changes.setInt("order", u.Order)
	return changes.result()
}

// KitchenwareProduct is a handcrafted olive wood item.
type KitchenwareProduct struct {
	ID            string  `bson:"id" json:"id"`
	Reference     string  `bson:"reference" json:"reference"`
	NameEN        string  `bson:"name_en" json:"name_en"`
	NameFR        string  `bson:"name_fr" json:"name_fr"`
	Dimensions    *string `bson:"dimensions" json:"dimensions"`
	DescriptionEN string  `bson:"description_en" json:"description_en"`
	DescriptionFR string  `bson:"description_fr" json:"description_fr"`
	Image         string  `bson:"image" json:"image"`
	Active        bool    `bson:"active" json:"active"`
	Order         int     `bson:"order" json:"order"`
}

func (p KitchenwareProduct) WithID(id string) KitchenwareProduct {
	p.ID = id
	return p
}

// KitchenwareProductCreate is the admin payload for a new kitchenware product.
type KitchenwareProductCreate struct {
	Reference     string  `json:"reference" validate:"min=1,max=50"`
	NameEN        string  `json:"name_en" validate:"min=1,max=200"`
	NameFR        string  `json:"name_fr" validate:"min=1,max=200"`
	Dimensions    *string `json:"dimensions" validate:"omitempty,max=100"`
	DescriptionEN string  `json:"description_en" validate:"min=1,max=2000"`
	DescriptionFR string  `json:"description_fr" validate:"min=1,max=2000"`
	Image         string  `json:"image" validate:"required,url,max=2048"`
	Active        *bool   `json:"active"`
	Order         int     `json:"order" validate:"gte=0"`
}

func (c KitchenwareProductCreate) ToProduct(id string) KitchenwareProduct {
	return KitchenwareProduct{
		ID:            id,
		Reference:     c.Reference,
		NameEN:        c.NameEN,
		NameFR:        c.NameFR,
		Dimensions:    c.Dimensions,
		DescriptionEN: c.DescriptionEN,
		DescriptionFR: c.DescriptionFR,
		Image:         c.Image,
		Active:        c.Active == nil || *c.Active,
		Order:         c.Order,
	}
}

// KitchenwareProductUpdate is a partial update; nil fields are left untouched.
type KitchenwareProductUpdate struct {
	Reference     *string `json:"reference" validate:"omitempty,min=1,max=50"`
	NameEN        *string `json:"name_en" validate:"omitempty,min=1,max=200"`
	NameFR        *string `json:"name_fr" validate:"omitempty,min=1,max=200"`
	Dimensions    *string `json:"dimensions" validate:"omitempty,max=100"`
	DescriptionEN *string `json:"description_en" validate:"omitempty,min=1,max=2000"`
	DescriptionFR *string `json:"description_fr" validate:"omitempty,min=1,max=2000"`
	Image         *string `json:"image" validate:"omitempty,url,max=2048"`
	Active        *bool   `json:"active"`
	Order         *int    `json:"order" validate:"omitempty,gte=0"`
}

// Changes returns the fields to $set.
func (u KitchenwareProductUpdate) Changes() (bson.M, error) {
	changes := fieldSet{}
	changes.setString("reference", u.Reference)
	changes.setString("name_en", u.NameEN)
	changes.setString("name_fr", u.NameFR)
	changes.setString("dimensions", u.Dimensions)
	changes.setString("description_en", u.DescriptionEN)
	changes.setString("description_fr", u.DescriptionFR)
	changes.setString("image", u.Image)
	changes.setBool("active", u.Active)
	changes.setInt("order", u.Order)
	return changes.result()
}

// ProductList wraps catalog listings.
type ProductList[P any] struct {
	Products []P `json:"products"`
}

// fieldSet collects the non-nil fields of a partial update.
type fieldSet bson.M

func (f fieldSet) setString(key string, value *string) {
	if value != nil {
		f[key] = *value
	}
}

func (f fieldSet) setBool(key string, value *bool) {
	if value != nil {
		f[key] = *value
	}
}

func (f fieldSet) setInt(key string, value *int) {
	if value != nil {
		f[key] = *value
	}
}

func (f fieldSet) result() (bson.M, error) {
	if len(f) == 0 {
		return nil, ErrNoFields
	}
	return bson.M(f), nil
}
