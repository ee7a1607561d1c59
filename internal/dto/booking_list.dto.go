package dto

import "time"

type BookingListDTO struct {
	ID           uint      `json:"id"`
	Reference    string    `json:"reference"`
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	Status       string    `json:"status"`
	CustomerName string    `json:"customer_name"`
	ServiceName  string    `json:"service_name"`
}
