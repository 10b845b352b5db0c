package check_slot

// Request модель запроса проверки доступности слота
type Request struct {
	SalonID   int64  // ID салона
	StaffID   int64  // ID мастера
	Date      string // Дата в формате "2006-01-02"
	StartTime int64  // Начало слота (unix-секунды)
	EndTime   int64  // Конец слота (unix-секунды)
}

// Response модель ответа проверки доступности слота
type Response struct {
	Available bool // Можно ли занять слот
}
