package bookings

type Booking struct {
	Id         int64 `json:"id"`
	EventId    int64 `json:"event_id"`
	CustomerId int64 `json:"customer_id"`
}
