package get_available_slots

import (
	"net/url"
	"strconv"

	getAvailableSlots "github.com/m04kA/SMC-SalonService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	SalonID int64        `json:"salonId"`
	Date    string       `json:"date"`
	Mode    string       `json:"mode"`
	Staffs  []StaffSlots `json:"staffs"`
}

// StaffSlots слоты одного мастера
type StaffSlots struct {
	StaffID     int64           `json:"staffId"`
	DisplayName string          `json:"displayName"`
	Slots       []AvailableSlot `json:"slots"`
}

// AvailableSlot модель доступного слота
type AvailableSlot struct {
	StartTime  int64 `json:"startTime"`
	EndTime    int64 `json:"endTime"`
	HasOverlap bool  `json:"hasOverlap,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	staffs := make([]StaffSlots, len(resp.Staffs))
	for i, staff := range resp.Staffs {
		slots := make([]AvailableSlot, len(staff.Slots))
		for j, slot := range staff.Slots {
			slots[j] = AvailableSlot{
				StartTime:  slot.StartTime,
				EndTime:    slot.EndTime,
				HasOverlap: slot.HasOverlap,
			}
		}
		staffs[i] = StaffSlots{
			StaffID:     staff.StaffID,
			DisplayName: staff.DisplayName,
			Slots:       slots,
		}
	}

	return &AvailableSlotsResponse{
		SalonID: resp.SalonID,
		Date:    resp.Date,
		Mode:    resp.Mode,
		Staffs:  staffs,
	}
}

// ToUseCaseRequest создает запрос use case из path и query параметров
func ToUseCaseRequest(salonID int64, query url.Values) (*getAvailableSlots.Request, error) {
	req := &getAvailableSlots.Request{
		SalonID: salonID,
		Date:    query.Get("date"),
		Mode:    query.Get("mode"),
	}

	if v := query.Get("staffId"); v != "" {
		staffID, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, err
		}
		req.StaffID = &staffID
	}

	if v := query.Get("durationMinutes"); v != "" {
		duration, err := strconv.Atoi(v)
		if err != nil {
			return nil, err
		}
		req.DurationMinutes = duration
	}

	if v := query.Get("slotSize"); v != "" {
		slotSize, err := strconv.Atoi(v)
		if err != nil {
			return nil, err
		}
		req.SlotSizeMinutes = slotSize
	}

	if v := query.Get("layer"); v != "" {
		layer, err := strconv.Atoi(v)
		if err != nil {
			return nil, err
		}
		req.Layer = layer
	}

	if v := query.Get("disableBackSlots"); v != "" {
		disable, err := strconv.ParseBool(v)
		if err != nil {
			return nil, err
		}
		req.DisableBackSlots = disable
	}

	if v := query.Get("allowOverlap"); v != "" {
		allowOverlap, err := strconv.Atoi(v)
		if err != nil {
			return nil, err
		}
		req.AllowOverlapMinutes = allowOverlap
	}

	return req, nil
}
