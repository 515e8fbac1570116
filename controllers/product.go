package controllers

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"huile-de-sfax/models"
	"huile-de-sfax/store"
	"huile-de-sfax/utils"
)

// ProductInput builds a new catalog entry from an admin payload.
type ProductInput[P any] interface {
	ToProduct(id string) P
}

// ProductUpdate yields the fields a partial update sets.
type ProductUpdate interface {
	Changes() (bson.M, error)
}

// CatalogController serves one product catalog. P is the stored product, C its
// create payload and U its partial update payload.
type CatalogController[P any, C ProductInput[P], U ProductUpdate] struct {
	Collection store.Collection
	defaults   func() []P
	validator  *utils.Validator
	logger     *zap.Logger
}

type (
	OliveOilController    = CatalogController[models.OliveOilProduct, models.OliveOilProductCreate, models.OliveOilProductUpdate]
	KitchenwareController = CatalogController[models.KitchenwareProduct, models.KitchenwareProductCreate, models.KitchenwareProductUpdate]
)

// NewOliveOilController creates the olive oil catalog controller
func NewOliveOilController(db store.Database, validator *utils.Validator, logger *zap.Logger) *OliveOilController {
	return &OliveOilController{
		Collection: db.Collection(store.OliveOilProducts),
		defaults:   models.DefaultOliveOilProducts,
		validator:  validator,
		logger:     logger.With(zap.String("catalog", store.OliveOilProducts)),
	}
}

// NewKitchenwareController creates the kitchenware catalog controller
func NewKitchenwareController(db store.Database, validator *utils.Validator, logger *zap.Logger) *KitchenwareController {
	return &KitchenwareController{
		Collection: db.Collection(store.KitchenwareProducts),
		defaults:   models.DefaultKitchenwareProducts,
		validator:  validator,
		logger:     logger.With(zap.String("catalog", store.KitchenwareProducts)),
	}
}

var byOrder = store.FindOptions{SortField: "order", SortOrder: store.Ascending}

// ListActive returns the active products in display order. While the collection
// holds no document at all, the built-in catalog is served instead; nothing is written.
func (pc *CatalogController[P, C, U]) ListActive(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := storeContext(r)
	defer cancel()

	count, err := pc.Collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		internalError(w, pc.logger, "count products", err)
		return
	}
	if count == 0 {
		writeJSON(w, http.StatusOK, models.ProductList[P]{Products: pc.defaults()})
		return
	}

	products := []P{}
	if err := pc.Collection.Find(ctx, bson.M{"active": true}, byOrder, &products); err != nil {
		internalError(w, pc.logger, "list active products", err)
		return
	}
	writeJSON(w, http.StatusOK, models.ProductList[P]{Products: products})
}

// ListAll returns every product, active or not, as a bare array (Admin only)
func (pc *CatalogController[P, C, U]) ListAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := storeContext(r)
	defer cancel()

	products := []P{}
	if err := pc.Collection.Find(ctx, bson.M{}, byOrder, &products); err != nil {
		internalError(w, pc.logger, "list products", err)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

// CreateProduct handles adding a new product (Admin only)
func (pc *CatalogController[P, C, U]) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var input C
	if !decodeAndValidate(w, r, pc.validator, &input) {
		return
	}

	product := input.ToProduct(utils.NewID())

	ctx, cancel := storeContext(r)
	defer cancel()
	if err := pc.Collection.InsertOne(ctx, product); err != nil {
		internalError(w, pc.logger, "create product", err)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// UpdateProduct applies the supplied fields to a product (Admin only)
func (pc *CatalogController[P, C, U]) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var input U
	if !decodeAndValidate(w, r, pc.validator, &input) {
		return
	}
	changes, err := input.Changes()
	if errors.Is(err, models.ErrNoFields) {
		writeDetail(w, http.StatusBadRequest, "No fields to update")
		return
	}

	ctx, cancel := storeContext(r)
	defer cancel()

	matched, err := pc.Collection.UpdateOne(ctx, bson.M{"id": id}, changes)
	if err != nil {
		internalError(w, pc.logger, "update product", err)
		return
	}
	if matched == 0 {
		writeDetail(w, http.StatusNotFound, "Product not found")
		return
	}

	var product P
	if err := pc.Collection.FindOne(ctx, bson.M{"id": id}, &product); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeDetail(w, http.StatusNotFound, "Product not found")
			return
		}
		internalError(w, pc.logger, "reload product", err)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

// DeleteProduct handles deleting a product (Admin only)
func (pc *CatalogController[P, C, U]) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	ctx, cancel := storeContext(r)
	defer cancel()

	deleted, err := pc.Collection.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		internalError(w, pc.logger, "delete product", err)
		return
	}
	if deleted == 0 {
		writeDetail(w, http.StatusNotFound, "Product not found")
		return
	}
	writeJSON(w, http.StatusOK, successResponse{Success: true, Message: "Product deleted"})
}
