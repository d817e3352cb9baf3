// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-med-keeper/models"
)

var errNotPositive = errors.New("must be at least 1")

// listQueryFrom reads ?page, ?limit, ?sortBy and ?sortOrder. Missing
// parameters are left zero so the service applies its defaults.
func listQueryFrom(r *http.Request) (models.ListQuery, error) {
	values := r.URL.Query()
	q := models.ListQuery{
		SortBy:    values.Get("sortBy"),
		SortOrder: values.Get("sortOrder"),
	}

	var err error
	if q.Page, err = positiveParam(values.Get("page")); err != nil {
		return q, fmt.Errorf("%w: page: %w", ErrInvalidQuery, err)
	}
	if q.Limit, err = positiveParam(values.Get("limit")); err != nil {
		return q, fmt.Errorf("%w: limit: %w", ErrInvalidQuery, err)
	}

	return q, nil
}

func positiveParam(raw string) (uint64, error) {
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, errNotPositive
	}
	return n, nil
}
