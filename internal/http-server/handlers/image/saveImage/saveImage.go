package saveImage

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"

	"github.com/go-chi/render"
	"github.com/google/uuid"

	"imageUploader/internal/kafka/producer"
	"imageUploader/internal/lib/api/response"
	"imageUploader/internal/lib/logger/sl"
	"imageUploader/internal/models"
	"imageUploader/internal/storage/disk"
)

type Response struct {
	response.Response
	Message string       `json:"message"`
	Data    models.Image `json:"data"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ImageSaver
type ImageSaver interface {
	SaveImage(ctx context.Context, filename string, path string) (*models.Image, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=FileSaver
type FileSaver interface {
	SaveUpload(filename, contentType string, r io.Reader) (string, error)
}

// New uploads an image.
// @Summary      Uploads an image
// @Description  Accepts one multipart file under the "image" field, stores it on disk and records it in the database
// @Tags         images
// @Accept       multipart/form-data
// @Produce      json
// @Param        image  formData  file  true  "Image file to upload"
// @Success      200  {object}  saveImage.Response
// @Failure      400  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /api/upload [post]
func New(log *slog.Logger, fileSaver FileSaver, imageSaver ImageSaver, kafkaProducer producer.ProducerIface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.image.saveImage.New"

		log = log.With(
			slog.String("op", op),
		)

		file, header, err := r.FormFile("image")
		if err != nil {
			log.Error("failed to get file from request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("no file uploaded"))
			return
		}
		defer func(file multipart.File) {
			err = file.Close()
			if err != nil {
				return
			}
		}(file)

		filename, err := fileSaver.SaveUpload(header.Filename, header.Header.Get("Content-Type"), file)
		if err != nil {
			if errors.Is(err, disk.ErrUnsupportedFileType) {
				log.Warn("rejected upload", slog.String("filename", header.Filename), sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("unsupported file type"))
				return
			}

			log.Error("failed to save file on disk", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to save file"))
			return
		}

		// File write and record insert are not transactional: if the insert
		// fails, the file stays on disk as an orphan.
		image, err := imageSaver.SaveImage(r.Context(), filename, "/uploads/"+filename)
		if err != nil {
			log.Error("failed to save image to database", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to save image to database"))
			return
		}

		log.Info("image saved successfully", slog.String("image_id", image.ID.String()))

		publishUploadEvent(r.Context(), log, kafkaProducer, image)

		render.JSON(w, r, Response{
			Response: response.OK(),
			Message:  "image uploaded and saved to database successfully",
			Data:     *image,
		})
	}
}

// publishUploadEvent notifies downstream consumers about a new upload. The
// upload has already been persisted, so a publish failure is only logged.
func publishUploadEvent(ctx context.Context, log *slog.Logger, kafkaProducer producer.ProducerIface, image *models.Image) {
	event := struct {
		ImageID  uuid.UUID `json:"image_id"`
		Filename string    `json:"filename"`
		Path     string    `json:"path"`
	}{
		ImageID:  image.ID,
		Filename: image.Filename,
		Path:     image.Path,
	}

	message, err := json.Marshal(event)
	if err != nil {
		log.Error("failed to marshal upload event", sl.Err(err))
		return
	}

	if err = kafkaProducer.SendMessage(ctx, message); err != nil {
		log.Error("failed to publish upload event", sl.Err(err))
	}
}
