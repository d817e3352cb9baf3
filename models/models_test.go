// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatient_TierFor(t *testing.T) {
	p := &Patient{ID: "p1", UserID: "u-owner"}

	tests := []struct {
		name   string
		viewer Viewer
		want   AccessTier
	}{
		{"admin", Viewer{UserID: "a", Role: RoleAdmin}, TierAdmin},
		{"owning patient", Viewer{UserID: "u-owner", Role: RolePatient}, TierOwner},
		{"other patient", Viewer{UserID: "u-other", Role: RolePatient}, TierOther},
		{"doctor", Viewer{UserID: "d", Role: RoleDoctor}, TierAssignedStaff},
		{"unknown role", Viewer{UserID: "u-owner", Role: "nurse"}, TierOther},
		{"anonymous", Viewer{}, TierOther},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.TierFor(tt.viewer))
		})
	}
}

func TestMedicalSummary_TierFor(t *testing.T) {
	m := &MedicalSummary{ID: "m1", PatientUserID: "pat", DoctorUserID: "doc"}

	assert.Equal(t, TierOwner, m.TierFor(Viewer{UserID: "pat", Role: RolePatient}))
	assert.Equal(t, TierAssignedStaff, m.TierFor(Viewer{UserID: "doc", Role: RoleDoctor}))
	assert.Equal(t, TierOther, m.TierFor(Viewer{UserID: "doc2", Role: RoleDoctor}))
	assert.Equal(t, TierAdmin, m.TierFor(Viewer{UserID: "x", Role: RoleAdmin}))
}

func TestAccessTier_Authorized(t *testing.T) {
	assert.True(t, TierOwner.Authorized())
	assert.True(t, TierAssignedStaff.Authorized())
	assert.True(t, TierAdmin.Authorized())
	assert.False(t, TierOther.Authorized())
}

func TestPatient_CloneIsDeep(t *testing.T) {
	p := &Patient{
		ID:               "p1",
		Address:          "123 Main St",
		EmergencyContact: &EmergencyContact{Name: "Jane", Phone: "555"},
		MedicalHistory:   []string{"asthma"},
	}

	c := p.Clone()
	c.EmergencyContact.Name = "changed"
	c.MedicalHistory[0] = "changed"
	c.Address = "changed"

	assert.Equal(t, "Jane", p.EmergencyContact.Name)
	assert.Equal(t, "asthma", p.MedicalHistory[0])
	assert.Equal(t, "123 Main St", p.Address)
	assert.Nil(t, (*Patient)(nil).Clone())
}

func TestPatient_SensitiveFields(t *testing.T) {
	p := &Patient{Address: "a", MedicalHistory: []string{"x"}}

	fields := p.SensitiveFields()
	require.Len(t, fields, 2, "emergency contact is absent")
	assert.Equal(t, "address", fields[0].Path)
	assert.False(t, fields[0].IsList())
	assert.True(t, fields[1].IsList())

	*fields[0].Value = "written through"
	assert.Equal(t, "written through", p.Address)

	p.EmergencyContact = &EmergencyContact{}
	assert.Len(t, p.SensitiveFields(), 4)
}

func TestDesignatedFields_ReturnsCopy(t *testing.T) {
	fields := DesignatedFields(EntityMedicalSummary)
	require.Len(t, fields, 3)
	fields[0].Path = "mutated"

	assert.Equal(t, "notes", DesignatedFields(EntityMedicalSummary)[0].Path)
	assert.Empty(t, DesignatedFields(EntityAppointment))
}

func TestViewerFromClaims(t *testing.T) {
	c := &Claims{Role: RoleDoctor}
	c.Subject = "doc-1"

	v, err := ViewerFromClaims(c)
	require.NoError(t, err)
	assert.Equal(t, Viewer{UserID: "doc-1", Role: RoleDoctor}, v)

	_, err = ViewerFromClaims(&Claims{Role: RoleDoctor})
	assert.Error(t, err)

	bad := &Claims{Role: "nurse"}
	bad.Subject = "x"
	_, err = ViewerFromClaims(bad)
	assert.Error(t, err)
}

func TestListQuery_WithDefaults(t *testing.T) {
	tests := []struct {
		name       string
		in         ListQuery
		want       ListQuery
		wantOffset uint64
	}{
		{
			name:       "zero value",
			in:         ListQuery{},
			want:       ListQuery{Page: 1, Limit: 10, SortBy: SortByCreatedAt, SortOrder: SortDesc},
			wantOffset: 0,
		},
		{
			name:       "explicit values kept",
			in:         ListQuery{Page: 3, Limit: 25, SortBy: SortByUpdatedAt, SortOrder: SortAsc},
			want:       ListQuery{Page: 3, Limit: 25, SortBy: SortByUpdatedAt, SortOrder: SortAsc},
			wantOffset: 50,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.WithDefaults()
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOffset, got.Offset())
		})
	}
}

func TestNewPage(t *testing.T) {
	tests := []struct {
		name      string
		data      []string
		total     uint64
		wantPages uint64
		wantLen   int
	}{
		{name: "empty result", data: nil, total: 0, wantPages: 0, wantLen: 0},
		{name: "exact pages", data: []string{"a", "b"}, total: 20, wantPages: 2, wantLen: 2},
		{name: "partial last page", data: []string{"a"}, total: 21, wantPages: 3, wantLen: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := NewPage(tt.data, ListQuery{Page: 1, Limit: 10}, tt.total)
			require.NotNil(t, page.Data)
			assert.Len(t, page.Data, tt.wantLen)
			assert.Equal(t, tt.total, page.Meta.Total)
			assert.Equal(t, tt.wantPages, page.Meta.TotalPages)
			assert.Equal(t, uint64(10), page.Meta.Limit)
		})
	}
}
