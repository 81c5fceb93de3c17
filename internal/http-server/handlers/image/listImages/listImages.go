package listImages

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"imageUploader/internal/lib/api/response"
	"imageUploader/internal/lib/logger/sl"
	"imageUploader/internal/models"
)

type Response struct {
	response.Response
	Images []models.Image `json:"images"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ImagesProvider
type ImagesProvider interface {
	ListImages(ctx context.Context) ([]models.Image, error)
}

// New lists every uploaded image.
// @Summary      Lists all images
// @Description  Returns every image record, most recently uploaded first
// @Tags         images
// @Produce      json
// @Success      200  {object}  listImages.Response
// @Failure      500  {object}  response.Response
// @Router       /getAllImage [get]
func New(log *slog.Logger, imagesProvider ImagesProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.image.listImages.New"

		log = log.With(slog.String("op", op))

		images, err := imagesProvider.ListImages(r.Context())
		if err != nil {
			log.Error("failed to list images from storage", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("internal server error"))
			return
		}

		log.Info("images listed successfully", slog.Int("count", len(images)))

		render.JSON(w, r, Response{
			Response: response.OK(),
			Images:   images,
		})
	}
}
