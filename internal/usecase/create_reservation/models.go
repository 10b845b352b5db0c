package create_reservation

import "time"

// Request модель запроса на создание бронирования
type Request struct {
	CustomerID int64   // ID клиента (из заголовка авторизации)
	SalonID    int64   // ID салона
	StaffID    int64   // ID мастера
	Date       string  // Дата визита в формате "2006-01-02"
	StartTime  int64   // Начало слота (unix-секунды)
	EndTime    int64   // Конец слота (unix-секунды)
	MenuName   string  // Название услуги
	MenuPrice  float64 // Цена услуги
	Notes      *string // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID         int64  // ID созданного бронирования
	SalonID    int64  // ID салона
	StaffID    int64  // ID мастера
	CustomerID int64  // ID клиента
	Date       string // Дата визита
	StartTime  int64  // Начало слота (unix-секунды)
	EndTime    int64  // Конец слота (unix-секунды)
	Status     string // Статус бронирования

	// Денормализованные данные
	MenuName     string  // Название услуги
	MenuPrice    float64 // Цена услуги
	CustomerName *string // Имя клиента (nil при деградации CustomerService)
	Notes        *string // Заметки

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
