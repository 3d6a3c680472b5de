package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// --- Packages ---

type partyRequest struct {
	Name    string `json:"name"    validate:"required,max=200"`
	Email   string `json:"email"   validate:"required,email"`
	Phone   string `json:"phone"   validate:"required,max=50"`
	Address string `json:"address" validate:"required,max=500"`
}

type shipmentInfoRequest struct {
	Origin      string  `json:"origin"      validate:"required,max=200"`
	Destination string  `json:"destination" validate:"required,max=200"`
	Weight      float64 `json:"weight"      validate:"required,gt=0"`
	ETA         string  `json:"eta"         validate:"required,isodate"`
}

type registerPackageRequest struct {
	Sender       partyRequest        `json:"sender"       validate:"required"`
	Receiver     partyRequest        `json:"receiver"     validate:"required"`
	ShipmentInfo shipmentInfoRequest `json:"shipmentInfo" validate:"required"`
}

type registerPackageResponse struct {
	Message        string `json:"message"`
	TrackingNumber string `json:"trackingNumber"`
	Status         string `json:"status"`
	CreatedAt      string `json:"createdAt"`
}

type updateStatusRequest struct {
	TrackingNumber string `json:"trackingNumber" validate:"required,alphanum,max=32"`
	Status         string `json:"status"         validate:"required,oneof=pending in-transit out-for-delivery delivered on-hold cancelled"`
	Location       string `json:"location"       validate:"required,max=200"`
	Description    string `json:"description"    validate:"max=1000"`
	Override       bool   `json:"override"`
}

type updateDetailsRequest struct {
	Sender       *partyRequest        `json:"sender"       validate:"omitempty"`
	Receiver     *partyRequest        `json:"receiver"     validate:"omitempty"`
	ShipmentInfo *shipmentInfoRequest `json:"shipmentInfo" validate:"omitempty"`
}

type packageResponse struct {
	TrackingNumber string                `json:"trackingNumber"`
	Sender         partyResponse         `json:"sender"`
	Receiver       partyResponse         `json:"receiver"`
	ShipmentInfo   shipmentInfoResponse  `json:"shipmentInfo"`
	Status         string                `json:"status"`
	Location       string                `json:"location"`
	History        []historyItemResponse `json:"history"`
	CreatedAt      string                `json:"createdAt"`
	UpdatedAt      string                `json:"updatedAt"`
}

type partyResponse struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type shipmentInfoResponse struct {
	Origin      string  `json:"origin"`
	Destination string  `json:"destination"`
	Weight      float64 `json:"weight"`
	ETA         string  `json:"eta"`
}

type coordinatesResponse struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Geohash string  `json:"geohash,omitempty"`
}

type historyItemResponse struct {
	Status      string               `json:"status"`
	Location    string               `json:"location"`
	Description string               `json:"description"`
	Timestamp   string               `json:"timestamp"`
	Coordinates *coordinatesResponse `json:"coordinates"`
}

type trackingResponse struct {
	TrackingNumber string                `json:"trackingNumber"`
	Sender         partyResponse         `json:"sender"`
	Receiver       partyResponse         `json:"receiver"`
	ShipmentInfo   shipmentInfoResponse  `json:"shipmentInfo"`
	Status         string                `json:"status"`
	Location       string                `json:"location"`
	Coordinates    *coordinatesResponse  `json:"coordinates"`
	History        []historyItemResponse `json:"history"`
	RemainingKm    *float64              `json:"remainingKm,omitempty"`
}

// --- Contact ---

type contactRequest struct {
	Name    string `json:"name"    validate:"required,max=200"`
	Email   string `json:"email"   validate:"required,email"`
	Message string `json:"message" validate:"required,max=5000"`
}

type contactResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

// --- Geo ---

type resolveResponse struct {
	Resolved   map[string]coordinatesResponse `json:"resolved"`
	Unresolved []string                       `json:"unresolved"`
}

type distanceResponse struct {
	From       coordinatesResponse `json:"from"`
	To         coordinatesResponse `json:"to"`
	DistanceKm float64             `json:"distanceKm"`
}
