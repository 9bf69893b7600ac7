package service

import (
	"context"
	"testing"

	"github.com/feliperufini/felskys-manager-api/internal/apierror"
	"github.com/feliperufini/felskys-manager-api/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOrganizationSanitizesDocument(t *testing.T) {
	orgRepo := newStubOrgRepo()
	svc := NewOrganizationService(orgRepo)

	resp, err := svc.Create(context.Background(), dto.CreateOrganizationRequest{
		LegalName:    "Felskys Tecnologia LTDA",
		BusinessName: "Felskys",
		Document:     "12.345.678/0001-90",
	})
	require.NoError(t, err)
	assert.Equal(t, "12345678000190", resp.Document)
	assert.True(t, resp.IsActive)
}

func TestCreateOrganizationRejectsBadDocument(t *testing.T) {
	svc := NewOrganizationService(newStubOrgRepo())

	_, err := svc.Create(context.Background(), dto.CreateOrganizationRequest{
		LegalName:    "X",
		BusinessName: "X",
		Document:     "123",
	})
	require.Error(t, err)
	assert.Equal(t, apierror.KindValidation, apierror.KindOf(err))
}
