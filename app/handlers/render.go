package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/TheCodister/badminton-shop-api/app/helpers"
	"github.com/go-playground/validator/v10"
	"github.com/unrolled/render"
)

func respondError(rnd *render.Render, w http.ResponseWriter, err error) {
	status := helpers.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		log.Printf("internal error: %v", err)
	}
	_ = rnd.JSON(w, status, map[string]string{"message": helpers.ErrorMessage(err)})
}

func respondValidationError(rnd *render.Render, w http.ResponseWriter, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		_ = rnd.JSON(w, http.StatusBadRequest, map[string]interface{}{
			"message": "Validation failed",
			"errors":  helpers.FormatValidationErrors(verrs),
		})
		return
	}
	respondError(rnd, w, helpers.NewValidation("Invalid request body"))
}

func respondMessage(rnd *render.Render, w http.ResponseWriter, status int, message string) {
	_ = rnd.JSON(w, status, map[string]string{"message": message})
}
