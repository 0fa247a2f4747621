// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"slices"

	"github.com/MKhiriev/go-session-auth/models"
)

// productService serves a fixed catalogue.
type productService struct {
	catalogue []models.Product
}

func NewProductService(catalogue ...models.Product) ProductService {
	if len(catalogue) == 0 {
		catalogue = DefaultProducts()
	}

	return &productService{catalogue: catalogue}
}

// DefaultProducts is the catalogue served when none is given.
func DefaultProducts() []models.Product {
	return []models.Product{
		{ID: 123, Name: "Chicken Breast", Price: 12.99},
	}
}

func (p *productService) List(_ context.Context) []models.Product {
	return slices.Clone(p.catalogue)
}
