package courier_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"geleverd/internal/dto"
	"geleverd/internal/entities"
	"geleverd/internal/service/courier"
	"geleverd/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var courierModifyDTO dto.CourierUpdate
	err := json.NewDecoder(r.Body).Decode(&courierModifyDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	courierModifyEntity := entities.CourierModify{
		ID: &id,
	}

	if courierModifyDTO.Name != nil {
		courierModifyEntity.Name = courierModifyDTO.Name
	}
	if courierModifyDTO.Email != nil {
		courierModifyEntity.Email = courierModifyDTO.Email
	}
	if courierModifyDTO.Phone != nil {
		courierModifyEntity.Phone = courierModifyDTO.Phone
	}
	if courierModifyDTO.VehicleType != nil {
		vehicleType := entities.VehicleType(*courierModifyDTO.VehicleType)
		courierModifyEntity.VehicleType = &vehicleType
	}
	if courierModifyDTO.LicensePlate != nil {
		courierModifyEntity.LicensePlate = courierModifyDTO.LicensePlate
	}
	if courierModifyDTO.Status != nil {
		statusType := entities.CourierStatusType(*courierModifyDTO.Status)
		courierModifyEntity.Status = &statusType
	}
	if courierModifyDTO.IsActive != nil {
		courierModifyEntity.IsActive = courierModifyDTO.IsActive
	}

	res, err := h.service.UpdateCourier(r.Context(), courierModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, courier.ErrMissingRequiredFields),
			errors.Is(err, courier.ErrInvalidName),
			errors.Is(err, courier.ErrInvalidEmail),
			errors.Is(err, courier.ErrInvalidPhone),
			errors.Is(err, courier.ErrInvalidStatus),
			errors.Is(err, courier.ErrInvalidVehicleType):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, courier.ErrCourierNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, courier.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.CourierFromEntity(res)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
