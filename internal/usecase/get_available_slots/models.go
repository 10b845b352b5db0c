package get_available_slots

// Режимы генерации слотов
const (
	ModeDense = "dense"
	ModeOnion = "onion"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	SalonID         int64  // ID салона
	StaffID         *int64 // ID мастера (опционально, если nil - топ мастеров по приоритету)
	Date            string // Дата в формате "2006-01-02"
	DurationMinutes int    // Длительность услуги в минутах
	Mode            string // Режим генерации: dense или onion (по умолчанию dense)

	// Параметры режима onion (игнорируются в dense)
	SlotSizeMinutes     int  // Шаг якорей, по умолчанию 60
	Layer               int  // Количество слоев от каждого края, по умолчанию 2
	DisableBackSlots    bool // Не генерировать слоты от конца окна
	AllowOverlapMinutes int  // Допустимый выход последнего слота за окно
}

// Response модель ответа со слотами по мастерам
type Response struct {
	SalonID int64        // ID салона
	Date    string       // Дата, на которую запрашивались слоты
	Mode    string       // Использованный режим генерации
	Staffs  []StaffSlots // Слоты по каждому мастеру
}

// StaffSlots доступные слоты одного мастера
type StaffSlots struct {
	StaffID     int64  // ID мастера
	DisplayName string // Отображаемое имя мастера
	Slots       []Slot // Слоты, отсортированные по времени начала
}

// Slot модель доступного слота
type Slot struct {
	StartTime  int64 // Время начала (unix-секунды)
	EndTime    int64 // Время окончания (unix-секунды)
	HasOverlap bool  // Слот частично выходит за время работы (только onion)
}
