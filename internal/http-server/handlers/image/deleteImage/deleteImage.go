package deleteImage

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"

	"imageUploader/internal/lib/api/response"
	"imageUploader/internal/lib/logger/sl"
	"imageUploader/internal/models"
)

type Response struct {
	response.Response
	Message string `json:"message"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ImageRemover
type ImageRemover interface {
	GetImage(ctx context.Context, id uuid.UUID) (*models.Image, error)
	DeleteImage(ctx context.Context, id uuid.UUID) error
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=FileRemover
type FileRemover interface {
	Remove(filename string) error
}

// New deletes an image by id.
// @Summary      Deletes an image
// @Description  Removes the stored file (a missing file is tolerated) and then the database record
// @Tags         images
// @Produce      json
// @Param        id   path      string  true  "Image ID"
// @Success      200  {object}  deleteImage.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /api/delete-image/{id} [delete]
func New(log *slog.Logger, imageRemover ImageRemover, fileRemover FileRemover) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.image.deleteImage.New"

		log = log.With(slog.String("op", op))

		idStr := chi.URLParam(r, "id")
		imageID, err := uuid.Parse(idStr)
		if err != nil {
			log.Error("failed to parse image ID", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid image ID"))
			return
		}

		log.Info("attempting to delete image", slog.String("image_id", imageID.String()))

		image, err := imageRemover.GetImage(r.Context(), imageID)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				log.Warn("image not found for deletion", slog.String("image_id", imageID.String()))
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("image not found"))
				return
			}

			log.Error("failed to get image from storage", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to delete image"))
			return
		}

		// File first, record second. When file removal fails the record is
		// kept, so the two stores stay consistent and the caller sees the
		// failure.
		if err = fileRemover.Remove(image.Filename); err != nil {
			log.Error("failed to delete file from disk", slog.String("filename", image.Filename), sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("error deleting file from folder"))
			return
		}

		if err = imageRemover.DeleteImage(r.Context(), imageID); err != nil {
			log.Error("failed to delete image from storage", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to delete image"))
			return
		}

		log.Info("image deleted successfully", slog.String("image_id", imageID.String()))

		render.JSON(w, r, Response{
			Response: response.OK(),
			Message:  "image deleted successfully from database and folder",
		})
	}
}
