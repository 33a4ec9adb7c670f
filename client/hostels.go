package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"hostelhub_client/domain"
)

// HostelPayload is the fully assembled hostel submission. Wizards only put
// active fields in here, the encoders below transmit exactly what is set.
type HostelPayload struct {
	Name            string             `json:"name"`
	Description     string             `json:"description"`
	City            string             `json:"city"`
	Address         string             `json:"address"`
	NearbyLocations []string           `json:"nearbyLocations,omitempty"`
	RoomTypes       []RoomTypePayload  `json:"roomTypes"`
	Facilities      FacilitiesPayload  `json:"facilities"`
	SeoKeywords     []string           `json:"seoKeywords,omitempty"`
	Images          []FilePart         `json:"-"`
}

// Conditional numeric fields are pointers: nil means the field is inactive
// and is never transmitted, a set zero is a real value and always is.
type RoomTypePayload struct {
	Type           domain.RoomTypeKind `json:"type"`
	TotalRooms     int                 `json:"totalRooms"`
	PersonsInRoom  int                 `json:"personsInRoom"`
	Price          int                 `json:"price"`
	AvailableRooms int                 `json:"availableRooms"`
	FullRoomPrice  *int                `json:"fullRoomPrice,omitempty"`
}

type FacilitiesPayload struct {
	Wifi                   bool               `json:"wifi"`
	WifiSpeed              string             `json:"wifiSpeed,omitempty"`
	WifiMaxUsers           *int               `json:"wifiMaxUsers,omitempty"`
	ElectricityBilling     domain.BillingType `json:"electricityBilling"`
	ElectricityRatePerUnit *float64           `json:"electricityRatePerUnit,omitempty"`
	Laundry                bool               `json:"laundry"`
	Mess                   bool               `json:"mess"`
	MessMenu               string             `json:"messMenu,omitempty"`
	CustomFacilities       []string           `json:"customFacilities,omitempty"`
}

// CreateHostel sends the structured fields as one JSON "data" part plus the
// raw file parts. Updates use bracketed-index fields instead, the backend
// expects the two formats exactly this way.
func (c *Client) CreateHostel(ctx context.Context, payload HostelPayload) (*domain.Hostel, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	body, contentType, err := encodeMultipart(
		map[string]string{"data": string(data)},
		imageParts(payload.Images),
	)
	if err != nil {
		return nil, err
	}

	raw, err := c.do(ctx, http.MethodPost, "/hostels", contentType, body)
	if err != nil {
		return nil, err
	}
	var hostel domain.Hostel
	if err := json.Unmarshal(raw, &hostel); err != nil {
		return nil, err
	}
	return &hostel, nil
}

func (c *Client) UpdateHostel(ctx context.Context, id string, payload HostelPayload) error {
	body, contentType, err := encodeMultipart(
		payload.bracketedFields(),
		imageParts(payload.Images),
	)
	if err != nil {
		return err
	}
	_, err = c.do(ctx, http.MethodPatch, "/hostels/"+id, contentType, body)
	return err
}

func (c *Client) DeleteHostel(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/hostels/"+id, "", nil)
	return err
}

func (c *Client) MyHostels(ctx context.Context) ([]domain.Hostel, error) {
	var hostels []domain.Hostel
	if err := c.getJSON(ctx, "/hostels/my", &hostels); err != nil {
		return nil, err
	}
	return hostels, nil
}

func (c *Client) GetHostel(ctx context.Context, id string) (*domain.Hostel, error) {
	var hostel domain.Hostel
	if err := c.getJSON(ctx, "/hostels/"+id, &hostel); err != nil {
		return nil, err
	}
	return &hostel, nil
}

func imageParts(images []FilePart) []FilePart {
	parts := make([]FilePart, 0, len(images))
	for _, img := range images {
		img.Field = "images"
		parts = append(parts, img)
	}
	return parts
}

// bracketedFields flattens the payload into the array convention the PATCH
// endpoint expects: roomTypes[0][type], facilities[customFacilities][0], ...
// Inactive conditional fields were never set by the wizard and stay absent.
func (p *HostelPayload) bracketedFields() map[string]string {
	fields := map[string]string{
		"name":        p.Name,
		"description": p.Description,
		"city":        p.City,
		"address":     p.Address,
	}

	for i, loc := range p.NearbyLocations {
		fields[fmt.Sprintf("nearbyLocations[%d]", i)] = loc
	}
	for i, kw := range p.SeoKeywords {
		fields[fmt.Sprintf("seoKeywords[%d]", i)] = kw
	}

	for i, rt := range p.RoomTypes {
		prefix := fmt.Sprintf("roomTypes[%d]", i)
		fields[prefix+"[type]"] = string(rt.Type)
		fields[prefix+"[totalRooms]"] = strconv.Itoa(rt.TotalRooms)
		fields[prefix+"[personsInRoom]"] = strconv.Itoa(rt.PersonsInRoom)
		fields[prefix+"[price]"] = strconv.Itoa(rt.Price)
		fields[prefix+"[availableRooms]"] = strconv.Itoa(rt.AvailableRooms)
		if rt.FullRoomPrice != nil {
			fields[prefix+"[fullRoomPrice]"] = strconv.Itoa(*rt.FullRoomPrice)
		}
	}

	f := p.Facilities
	fields["facilities[wifi]"] = strconv.FormatBool(f.Wifi)
	if f.Wifi {
		fields["facilities[wifiSpeed]"] = f.WifiSpeed
		if f.WifiMaxUsers != nil {
			fields["facilities[wifiMaxUsers]"] = strconv.Itoa(*f.WifiMaxUsers)
		}
	}
	fields["facilities[electricityBilling]"] = string(f.ElectricityBilling)
	if f.ElectricityRatePerUnit != nil {
		fields["facilities[electricityRatePerUnit]"] = strconv.FormatFloat(*f.ElectricityRatePerUnit, 'f', -1, 64)
	}
	fields["facilities[laundry]"] = strconv.FormatBool(f.Laundry)
	fields["facilities[mess]"] = strconv.FormatBool(f.Mess)
	if f.Mess && f.MessMenu != "" {
		fields["facilities[messMenu]"] = f.MessMenu
	}
	for i, cf := range f.CustomFacilities {
		fields[fmt.Sprintf("facilities[customFacilities][%d]", i)] = cf
	}

	return fields
}
