package domain

// DTO внешних коллабораторов (backend API и геолокация устройства).
// Формы полей повторяют JSON бэкенда, сами структуры бэкенд-нейтральны.

// Customer — карточка клиента из GET /customers/{id}.
type Customer struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}

// RestaurantStatus — режим работы ресторана из GET /business/status.
type RestaurantStatus struct {
	IsOpen       bool          `json:"isOpen"`
	Message      string        `json:"message,omitempty"`
	NextOpening  string        `json:"nextOpening,omitempty"`
	ActiveOrders []ActiveOrder `json:"activeOrders,omitempty"`
}

// ActiveOrder — незавершённый заказ клиента; список передаёт вызывающая
// сторона, и при закрытом ресторане непустой список разблокирует конвейер.
type ActiveOrder struct {
	ID     string `json:"id"`
	Status string `json:"status,omitempty"`
}

// Coordinates — позиция устройства.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ZoneDecision — вердикт геозоны из POST /geofencing/validate-delivery-zone.
type ZoneDecision struct {
	Within  bool   `json:"withinDeliveryZone"`
	Reason  string `json:"reason,omitempty"`
	Message string `json:"message,omitempty"`
	City    string `json:"city,omitempty"`
	Zone    string `json:"zone,omitempty"`
}

// LocationReport — снимок геолокации устройства, переданный клиентом
// вместе с запросом: поддержка, координаты либо код сбоя
// (permission_denied | position_unavailable | timeout).
type LocationReport struct {
	Supported   bool         `json:"supported"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
	Failure     string       `json:"failure,omitempty"`
}

// StepPayload — полезные данные одного прошедшего шага. Типизированное
// объединение: заполняется ровно та часть, которую шаг произвёл.
type StepPayload struct {
	Customer    *Customer         `json:"customer,omitempty"`
	Restaurant  *RestaurantStatus `json:"restaurant,omitempty"`
	Coordinates *Coordinates      `json:"coordinates,omitempty"`
	Zone        *ZoneDecision     `json:"zone,omitempty"`
}

// Empty — шаг прошёл без полезных данных.
func (p StepPayload) Empty() bool {
	return p.Customer == nil && p.Restaurant == nil && p.Coordinates == nil && p.Zone == nil
}

// Clone — глубокая копия, чтобы внешние изменения не отражались на данных
// внутри кэша и снимков состояния.
func (p StepPayload) Clone() StepPayload {
	out := StepPayload{}
	if p.Customer != nil {
		c := *p.Customer
		out.Customer = &c
	}
	if p.Restaurant != nil {
		r := *p.Restaurant
		if p.Restaurant.ActiveOrders != nil {
			r.ActiveOrders = append([]ActiveOrder(nil), p.Restaurant.ActiveOrders...)
		}
		out.Restaurant = &r
	}
	if p.Coordinates != nil {
		c := *p.Coordinates
		out.Coordinates = &c
	}
	if p.Zone != nil {
		z := *p.Zone
		out.Zone = &z
	}
	return out
}

// RunData — накопленные данные конвейера: не более одной записи на каждый
// пройденный шаг.
type RunData map[Step]StepPayload

// Clone — копия карты вместе с полезными данными.
func (d RunData) Clone() RunData {
	if d == nil {
		return nil
	}
	out := make(RunData, len(d))
	for step, payload := range d {
		out[step] = payload.Clone()
	}
	return out
}
