// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the JWT claim set issued to actors of the API. The subject
// claim carries the actor's user id and Role carries the authorization role.
type Claims struct {
	jwt.RegisteredClaims
	Role Role `json:"role"`
}

// Token wraps a parsed or freshly signed JWT.
type Token struct {
	// Token is the underlying JWT. Only the compact string form is
	// meaningful outside the server process.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS form (header.payload.signature).
	SignedString string `json:"token"`

	// Viewer is the actor the token was issued to.
	Viewer Viewer `json:"-"`
}

// ViewerFromClaims validates the subject and role claims and converts
// them into a Viewer.
func ViewerFromClaims(c *Claims) (Viewer, error) {
	sub, err := c.GetSubject()
	if err != nil {
		return Viewer{}, fmt.Errorf("error extracting subject from token: %w", err)
	}
	if sub == "" {
		return Viewer{}, fmt.Errorf("empty subject in token")
	}
	if !c.Role.Valid() {
		return Viewer{}, fmt.Errorf("unknown role %q in token", c.Role)
	}

	return Viewer{UserID: sub, Role: c.Role}, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
