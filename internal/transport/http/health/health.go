package health

import (
	"net/http"
	"time"

	"github.com/MadeByDW91/gokartpartpicker/internal/transport/http/response"
	apiv1 "github.com/MadeByDW91/gokartpartpicker/pkg/api/v1"
)

func HealthCheck(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, r, http.StatusOK, apiv1.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
	})
}
