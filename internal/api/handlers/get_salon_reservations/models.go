package get_salon_reservations

import (
	"net/url"
	"strconv"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/service/reservations/models"
)

// ToServiceRequest создает запрос сервиса из path и query параметров
// Поддерживаемые query параметры: staffId, startDate, endDate, date (шорткат
// для startDate=endDate), status, includeInactive
func ToServiceRequest(salonID int64, query url.Values) (*models.GetSalonReservationsRequest, error) {
	req := &models.GetSalonReservationsRequest{
		SalonID: salonID,
	}

	if v := query.Get("staffId"); v != "" {
		staffID, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, err
		}
		req.StaffID = &staffID
	}

	if v := query.Get("date"); v != "" {
		date, err := time.ParseInLocation(domain.DateFormat, v, time.UTC)
		if err != nil {
			return nil, err
		}
		req.StartDate = &date
		req.EndDate = &date
	}

	if v := query.Get("startDate"); v != "" {
		startDate, err := time.ParseInLocation(domain.DateFormat, v, time.UTC)
		if err != nil {
			return nil, err
		}
		req.StartDate = &startDate
	}

	if v := query.Get("endDate"); v != "" {
		endDate, err := time.ParseInLocation(domain.DateFormat, v, time.UTC)
		if err != nil {
			return nil, err
		}
		req.EndDate = &endDate
	}

	if v := query.Get("status"); v != "" {
		req.Status = &v
	}

	if v := query.Get("includeInactive"); v != "" {
		includeInactive, err := strconv.ParseBool(v)
		if err != nil {
			return nil, err
		}
		req.IncludeInactive = includeInactive
	}

	return req, nil
}
