package deleteImage_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	"imageUploader/internal/http-server/handlers/image/deleteImage"
	"imageUploader/internal/http-server/handlers/image/deleteImage/mocks"
	"imageUploader/internal/models"
)

func TestDeleteImage(t *testing.T) {
	log := slog.New(slog.NewJSONHandler(bytes.NewBuffer(nil), nil))

	testUUID, _ := uuid.NewRandom()

	testImage := &models.Image{
		ID:         testUUID,
		Filename:   "test.jpg",
		Path:       "/uploads/test.jpg",
		UploadedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	notFoundErr := fmt.Errorf("storage.mongo.GetImage: image with ID %s not found: %w", testUUID, mongo.ErrNoDocuments)

	tests := []struct {
		name           string
		imageID        string
		mockGetImage   *models.Image
		mockGetErr     error
		callRemove     bool
		mockRemoveErr  error
		callDelete     bool
		mockDeleteErr  error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Success",
			imageID:        testUUID.String(),
			mockGetImage:   testImage,
			callRemove:     true,
			callDelete:     true,
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","message":"image deleted successfully from database and folder"}`,
		},
		{
			name:           "Invalid UUID",
			imageID:        "invalid-uuid",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid image ID"}`,
		},
		{
			name:           "Not Found",
			imageID:        testUUID.String(),
			mockGetErr:     notFoundErr,
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"image not found"}`,
		},
		{
			name:           "Lookup Error",
			imageID:        testUUID.String(),
			mockGetErr:     errors.New("db error"),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to delete image"}`,
		},
		{
			name:           "File Removal Error",
			imageID:        testUUID.String(),
			mockGetImage:   testImage,
			callRemove:     true,
			mockRemoveErr:  errors.New("permission denied"),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"error deleting file from folder"}`,
		},
		{
			name:           "Record Removal Error",
			imageID:        testUUID.String(),
			mockGetImage:   testImage,
			callRemove:     true,
			callDelete:     true,
			mockDeleteErr:  errors.New("db error"),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to delete image"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			imageRemoverMock := mocks.NewImageRemover(t)
			fileRemoverMock := mocks.NewFileRemover(t)

			if tt.mockGetImage != nil || tt.mockGetErr != nil {
				imageRemoverMock.On("GetImage", mock.Anything, testUUID).
					Return(tt.mockGetImage, tt.mockGetErr).Once()
			}
			if tt.callRemove {
				fileRemoverMock.On("Remove", testImage.Filename).
					Return(tt.mockRemoveErr).Once()
			}
			if tt.callDelete {
				imageRemoverMock.On("DeleteImage", mock.Anything, testUUID).
					Return(tt.mockDeleteErr).Once()
			}

			req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/delete-image/%s", tt.imageID), nil)

			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.imageID)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			rr := httptest.NewRecorder()

			handler := deleteImage.New(log, imageRemoverMock, fileRemoverMock)
			handler.ServeHTTP(rr, req)

			require.Equal(t, tt.expectedStatus, rr.Code)

			actualBody := rr.Body.String()
			var actualMap, expectedMap map[string]interface{}
			err := json.Unmarshal([]byte(actualBody), &actualMap)
			require.NoError(t, err)
			err = json.Unmarshal([]byte(tt.expectedBody), &expectedMap)
			require.NoError(t, err)
			require.Equal(t, expectedMap, actualMap)
		})
	}
}

// A record whose file was already removed by hand still deletes cleanly:
// the disk layer reports a missing file as success.
func TestDeleteImageMissingFile(t *testing.T) {
	log := slog.New(slog.NewJSONHandler(bytes.NewBuffer(nil), nil))

	testUUID, _ := uuid.NewRandom()

	imageRemoverMock := mocks.NewImageRemover(t)
	fileRemoverMock := mocks.NewFileRemover(t)

	imageRemoverMock.On("GetImage", mock.Anything, testUUID).
		Return(&models.Image{ID: testUUID, Filename: "gone.png", Path: "/uploads/gone.png"}, nil).Once()
	fileRemoverMock.On("Remove", "gone.png").Return(nil).Once()
	imageRemoverMock.On("DeleteImage", mock.Anything, testUUID).Return(nil).Once()

	req := httptest.NewRequest(http.MethodDelete, "/api/delete-image/"+testUUID.String(), nil)

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", testUUID.String())
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

	rr := httptest.NewRecorder()

	handler := deleteImage.New(log, imageRemoverMock, fileRemoverMock)
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
}
