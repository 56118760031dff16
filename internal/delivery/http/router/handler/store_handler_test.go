package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"ratehub/internal/domain/entity"
	"ratehub/internal/domain/repository"
	mockUsecase "ratehub/internal/mocks/usecase"
	"ratehub/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateStoreRequest_OwnerIDNormalization(t *testing.T) {
	three := uint(3)

	tests := []struct {
		name    string
		raw     string
		want    *uint
		wantErr bool
	}{
		{name: "absent", raw: `{}`, want: nil},
		{name: "null", raw: `{"owner_id":null}`, want: nil},
		{name: "empty string", raw: `{"owner_id":""}`, want: nil},
		{name: "number", raw: `{"owner_id":3}`, want: &three},
		{name: "numeric string", raw: `{"owner_id":"3"}`, want: &three},
		{name: "garbage string", raw: `{"owner_id":"abc"}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req CreateStoreRequest
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &req))

			got, err := req.ownerID()
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			if tt.want == nil {
				assert.Nil(t, got)
			} else {
				require.NotNil(t, got)
				assert.Equal(t, *tt.want, *got)
			}
		})
	}
}

func TestStoreHandler_CreateStore_EmptyOwnerBecomesNil(t *testing.T) {
	storeUC := &mockUsecase.MockStoreUsecase{}
	h := &StoreHandler{storeUC: storeUC, logger: discardLogger()}

	body := `{"name":"Ownerless Store","email":"new@store.com","address":"1 Side Street","owner_id":""}`
	c, rec := newTestContext(http.MethodPost, "/api/stores", body)

	storeUC.On("CreateStore", mock.Anything, mock.MatchedBy(func(input *usecase.CreateStoreInput) bool {
		return input.OwnerID == nil && input.Email == "new@store.com"
	})).Return(&entity.Store{ID: 1, Email: "new@store.com"}, nil)

	require.NoError(t, h.CreateStore(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	storeUC.AssertExpectations(t)
}

func TestStoreHandler_GetStore_InvalidID(t *testing.T) {
	h := &StoreHandler{storeUC: &mockUsecase.MockStoreUsecase{}, logger: discardLogger()}

	c, rec := newTestContext(http.MethodGet, "/", "")
	c.SetParamNames("storeId")
	c.SetParamValues("not-a-number")

	require.NoError(t, h.GetStore(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStoreHandler_ListStores_PassesFilter(t *testing.T) {
	storeUC := &mockUsecase.MockStoreUsecase{}
	h := &StoreHandler{storeUC: storeUC, logger: discardLogger()}

	c, rec := newTestContext(http.MethodGet, "/api/stores?name=fashion&sortBy=average_rating&sortOrder=desc", "")

	expected := repository.StoreFilter{Name: "fashion", SortBy: "average_rating", SortOrder: "desc"}
	storeUC.On("ListStores", mock.Anything, expected).
		Return([]*entity.Store{{ID: 2, Name: "Fashion Forward Boutique Store", AverageRating: 4}}, nil)

	require.NoError(t, h.ListStores(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Fashion Forward Boutique Store")
}
